package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strconv"
	"sync"
	"time"

	"web3explorer/models"
	"web3explorer/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -destination=./mocks/mock_repository.go -package=mocks web3explorer/service Repository

type Repository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByID(ctx context.Context, id int) (models.User, error)
	GetUserByAddress(ctx context.Context, address string) (models.User, error)
	FindByCredentials(ctx context.Context, username, password string) (models.User, error)
	CreateUser(ctx context.Context, candidate models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	UpdateUsers(ctx context.Context, users []models.User) error
	SetCurrentUser(ctx context.Context, user models.User) error
	ClearCurrentUser(ctx context.Context) error
	GetFaucetState(ctx context.Context, address string) (models.FaucetState, error)
	SaveFaucetState(ctx context.Context, address string, st models.FaucetState) error
	GetContracts(ctx context.Context, address string) ([]models.DeployedContract, error)
	SaveContracts(ctx context.Context, address string, contracts []models.DeployedContract) error
	GetCapsules(ctx context.Context) ([]models.TimeCapsule, error)
	SaveCapsules(ctx context.Context, capsules []models.TimeCapsule) error
}

var ErrBadCredentials = errors.New("неверные учетные данные")

// Service выполняет все операции симулятора. Если два вызова для одного
// пользователя идут параллельно, побеждает последняя запись.
type Service struct {
	repo      Repository
	clock     Clock
	notifier  Notifier
	jwtSecret string
	latency   time.Duration

	mu       sync.Mutex
	pending  map[string]pendingTx
	sessions map[string]*gameSession
}

func NewService(
	repo Repository,
	clock Clock,
	notifier Notifier,
	jwtSecret string,
	latency time.Duration,
) *Service {
	return &Service{
		repo:      repo,
		clock:     clock,
		notifier:  notifier,
		jwtSecret: jwtSecret,
		latency:   latency,
		pending:   make(map[string]pendingTx),
		sessions:  make(map[string]*gameSession),
	}
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (string, models.User, error) {
	user, err := s.repo.FindByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", models.User{}, ErrBadCredentials
		}
		return "", models.User{}, err
	}
	if err := s.repo.SetCurrentUser(ctx, user); err != nil {
		return "", models.User{}, err
	}
	token, err := s.generateJWT(user)
	if err != nil {
		return "", models.User{}, err
	}
	user.PasswordHash = ""
	return token, user, nil
}

func (s *Service) Signup(ctx context.Context, username, password, email, phoneNumber string) (string, models.User, error) {
	if len(username) < 3 || password == "" {
		return "", models.User{}, ErrInvalidProfile
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", models.User{}, err
	}
	user, err := s.repo.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		PhoneNumber:  phoneNumber,
		EthBalance:   "0.00",
		TokenBalance: 0,
		GameTokens:   0,
		NFTs:         []models.NFT{},
		Avatar:       "https://via.placeholder.com/50",
	})
	if err != nil {
		return "", models.User{}, err
	}
	if err := s.repo.SetCurrentUser(ctx, user); err != nil {
		return "", models.User{}, err
	}
	token, err := s.generateJWT(user)
	if err != nil {
		return "", models.User{}, err
	}
	user.PasswordHash = ""
	return token, user, nil
}

func (s *Service) Logout(ctx context.Context) error {
	return s.repo.ClearCurrentUser(ctx)
}

func (s *Service) GetUser(ctx context.Context, userID int) (models.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}

// Transfer списывает и зачисляет токены одной записью в хранилище:
// либо применяются оба изменения, либо ни одного.
func (s *Service) Transfer(ctx context.Context, senderID int, toAddress string, amount int) (models.User, error) {
	if err := s.clock.Sleep(ctx, s.latency); err != nil {
		return models.User{}, err
	}

	sender, err := s.repo.GetUserByID(ctx, senderID)
	if err != nil {
		return models.User{}, err
	}
	if sender.Address == toAddress {
		return models.User{}, ErrSelfTransfer
	}
	recipient, err := s.repo.GetUserByAddress(ctx, toAddress)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return models.User{}, ErrRecipientNotFound
		}
		return models.User{}, err
	}

	updatedSender, updatedRecipient, err := applyTransfer(sender, recipient, amount)
	if err != nil {
		return models.User{}, err
	}
	if err := s.repo.UpdateUsers(ctx, []models.User{updatedSender, updatedRecipient}); err != nil {
		return models.User{}, err
	}
	updatedSender.PasswordHash = ""
	return updatedSender, nil
}

func (s *Service) FaucetClaim(ctx context.Context, address string) (models.FaucetState, error) {
	if address == "" {
		return models.FaucetState{}, ErrWalletNotActive
	}
	st, err := s.repo.GetFaucetState(ctx, address)
	if err != nil {
		return models.FaucetState{}, err
	}
	updated, err := applyFaucetClaim(st, s.clock.Now().UnixMilli())
	if err != nil {
		return models.FaucetState{}, err
	}
	if err := s.repo.SaveFaucetState(ctx, address, updated); err != nil {
		return models.FaucetState{}, err
	}
	return updated, nil
}

func (s *Service) FaucetStatus(ctx context.Context, address string) (models.FaucetState, error) {
	if address == "" {
		return models.FaucetState{}, ErrWalletNotActive
	}
	return s.repo.GetFaucetState(ctx, address)
}

func (s *Service) MintNFT(ctx context.Context, userID int, name string) (models.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	seed, err := randomHex(8)
	if err != nil {
		return models.User{}, err
	}
	image := fmt.Sprintf("https://picsum.photos/seed/%s/200/200", seed)
	updated, err := applyMintNFT(user, name, image)
	if err != nil {
		return models.User{}, err
	}
	if err := s.repo.UpdateUser(ctx, updated); err != nil {
		return models.User{}, err
	}
	updated.PasswordHash = ""
	return updated, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int, username, email, phoneNumber, avatar string) (models.User, error) {
	if err := validateProfile(username, email, phoneNumber); err != nil {
		return models.User{}, err
	}
	if _, err := url.ParseRequestURI(avatar); err != nil {
		return models.User{}, ErrInvalidProfile
	}
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if username != user.Username {
		if _, err := s.repo.GetUserByUsername(ctx, username); err == nil {
			return models.User{}, repository.ErrUsernameTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return models.User{}, err
		}
	}
	user.Username = username
	user.Email = email
	user.PhoneNumber = phoneNumber
	user.Avatar = avatar
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return models.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) DeployContract(ctx context.Context, walletAddress, name, symbol string) (models.DeployedContract, models.FaucetState, error) {
	if walletAddress == "" {
		return models.DeployedContract{}, models.FaucetState{}, ErrWalletNotActive
	}
	if err := s.clock.Sleep(ctx, s.latency); err != nil {
		return models.DeployedContract{}, models.FaucetState{}, err
	}

	st, err := s.repo.GetFaucetState(ctx, walletAddress)
	if err != nil {
		return models.DeployedContract{}, models.FaucetState{}, err
	}
	contractAddr, err := randomHex(20)
	if err != nil {
		return models.DeployedContract{}, models.FaucetState{}, err
	}
	updatedState, contract, err := applyDeployContract(st, name, symbol, uuid.NewString(), "0x"+contractAddr, DeploymentFee)
	if err != nil {
		return models.DeployedContract{}, models.FaucetState{}, err
	}

	contracts, err := s.repo.GetContracts(ctx, walletAddress)
	if err != nil {
		return models.DeployedContract{}, models.FaucetState{}, err
	}
	if err := s.repo.SaveContracts(ctx, walletAddress, append(contracts, contract)); err != nil {
		return models.DeployedContract{}, models.FaucetState{}, err
	}
	if err := s.repo.SaveFaucetState(ctx, walletAddress, updatedState); err != nil {
		return models.DeployedContract{}, models.FaucetState{}, err
	}
	return contract, updatedState, nil
}

func (s *Service) ListContracts(ctx context.Context, walletAddress string) ([]models.DeployedContract, error) {
	if walletAddress == "" {
		return nil, ErrWalletNotActive
	}
	return s.repo.GetContracts(ctx, walletAddress)
}

func (s *Service) DeleteContract(ctx context.Context, walletAddress, id string) error {
	contracts, err := s.repo.GetContracts(ctx, walletAddress)
	if err != nil {
		return err
	}
	kept := contracts[:0]
	found := false
	for _, c := range contracts {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return ErrContractNotFound
	}
	return s.repo.SaveContracts(ctx, walletAddress, kept)
}

func (s *Service) CreateCapsule(ctx context.Context, creator, message, category string) (models.TimeCapsule, error) {
	if creator == "" {
		return models.TimeCapsule{}, ErrWalletNotActive
	}
	if message == "" {
		return models.TimeCapsule{}, ErrEmptyMessage
	}
	valid := false
	for _, c := range models.CapsuleCategories {
		if c == category {
			valid = true
			break
		}
	}
	if !valid {
		return models.TimeCapsule{}, ErrInvalidCategory
	}

	if err := s.clock.Sleep(ctx, s.latency); err != nil {
		return models.TimeCapsule{}, err
	}

	nowMs := s.clock.Now().UnixMilli()
	sum := sha256.Sum256([]byte(message + strconv.FormatInt(nowMs, 10)))
	capsule := models.TimeCapsule{
		ID:         hex.EncodeToString(sum[:]),
		Message:    message,
		UnlockDate: nowMs + capsuleUnlockDelay.Milliseconds(),
		Creator:    creator,
		Category:   category,
		IsOpened:   false,
	}

	capsules, err := s.repo.GetCapsules(ctx)
	if err != nil {
		return models.TimeCapsule{}, err
	}
	if err := s.repo.SaveCapsules(ctx, append(capsules, capsule)); err != nil {
		return models.TimeCapsule{}, err
	}
	return capsule, nil
}

func (s *Service) ListCapsules(ctx context.Context) ([]models.TimeCapsule, error) {
	return s.repo.GetCapsules(ctx)
}

// OpenCapsule переводит капсулу в открытое состояние ровно один раз и только
// после наступления unlockDate. Повторное открытие просто возвращает капсулу.
func (s *Service) OpenCapsule(ctx context.Context, id string) (models.TimeCapsule, error) {
	capsules, err := s.repo.GetCapsules(ctx)
	if err != nil {
		return models.TimeCapsule{}, err
	}

	updated, opened, err := applyOpenCapsule(capsules, id, s.clock.Now().UnixMilli())
	if err != nil {
		return models.TimeCapsule{}, err
	}

	if err := s.clock.Sleep(ctx, s.latency); err != nil {
		return models.TimeCapsule{}, err
	}
	if err := s.repo.SaveCapsules(ctx, updated); err != nil {
		return models.TimeCapsule{}, err
	}
	return opened, nil
}

func (s *Service) generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		jwt.MapClaims{
			"user_id":  user.ID,
			"username": user.Username,
			"exp":      s.clock.Now().Add(24 * time.Hour).Unix(),
		},
	)
	return token.SignedString([]byte(s.jwtSecret))
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func randomInt(max int64) (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}
