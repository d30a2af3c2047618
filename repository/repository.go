package repository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"web3explorer/models"
	"web3explorer/storage"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound  = errors.New("пользователь не найден")
	ErrUsernameTaken = errors.New("имя пользователя уже занято")
)

// KVRepository хранит канонический список пользователей и вспомогательные
// коллекции в key-value хранилище, полностью перезаписывая ключ при записи.
type KVRepository struct {
	store storage.Store
}

func NewKVRepository(store storage.Store) KVRepository {
	return KVRepository{store: store}
}

func (r KVRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.store.Load(ctx, storage.KeyUsers, &users)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r KVRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r KVRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r KVRepository) GetUserByAddress(ctx context.Context, address string) (models.User, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Address == address {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r KVRepository) FindByCredentials(ctx context.Context, username, password string) (models.User, error) {
	user, err := r.GetUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// CreateUser присваивает новый id, генерирует уникальный адрес кошелька и
// дописывает запись в конец списка. Имя пользователя обязано быть уникальным.
func (r KVRepository) CreateUser(ctx context.Context, candidate models.User) (models.User, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return models.User{}, err
	}

	maxID := 0
	for _, u := range users {
		if u.Username == candidate.Username {
			return models.User{}, ErrUsernameTaken
		}
		if u.ID > maxID {
			maxID = u.ID
		}
	}

	candidate.ID = maxID + 1
	if candidate.Address == "" {
		addr, err := randomAddress()
		if err != nil {
			return models.User{}, err
		}
		candidate.Address = addr
	}
	if candidate.NFTs == nil {
		candidate.NFTs = []models.NFT{}
	}

	users = append(users, candidate)
	if err := r.store.Save(ctx, storage.KeyUsers, users); err != nil {
		return models.User{}, err
	}
	return candidate, nil
}

// UpdateUser заменяет запись с тем же id, сохраняя порядок списка, и
// синхронизирует сессионного пользователя, если его id совпадает.
func (r KVRepository) UpdateUser(ctx context.Context, updated models.User) error {
	return r.UpdateUsers(ctx, []models.User{updated})
}

// UpdateUsers применяет несколько замен одной записью в хранилище, поэтому
// перевод списывает и зачисляет токены атомарно.
func (r KVRepository) UpdateUsers(ctx context.Context, updates []models.User) error {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return err
	}

	byID := make(map[int]models.User, len(updates))
	for _, u := range updates {
		byID[u.ID] = u
	}

	found := 0
	for i, u := range users {
		if repl, ok := byID[u.ID]; ok {
			users[i] = repl
			found++
		}
	}
	if found != len(byID) {
		return ErrUserNotFound
	}

	if err := r.store.Save(ctx, storage.KeyUsers, users); err != nil {
		return err
	}

	current, err := r.GetCurrentUser(ctx)
	if err == nil {
		if repl, ok := byID[current.ID]; ok {
			return r.SetCurrentUser(ctx, repl)
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return nil
}

func (r KVRepository) GetCurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := r.store.Load(ctx, storage.KeyCurrentUser, &user); err != nil {
		return models.User{}, err
	}
	if user.ID == 0 {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (r KVRepository) SetCurrentUser(ctx context.Context, user models.User) error {
	return r.store.Save(ctx, storage.KeyCurrentUser, user)
}

func (r KVRepository) ClearCurrentUser(ctx context.Context) error {
	return r.store.Save(ctx, storage.KeyCurrentUser, nil)
}

func (r KVRepository) GetFaucetState(ctx context.Context, address string) (models.FaucetState, error) {
	var st models.FaucetState
	err := r.store.Load(ctx, storage.KeyTokenBalance(address), &st.Balance)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return models.FaucetState{}, err
	}
	err = r.store.Load(ctx, storage.KeyLastRequestTime(address), &st.LastRequestTime)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return models.FaucetState{}, err
	}
	return st, nil
}

func (r KVRepository) SaveFaucetState(ctx context.Context, address string, st models.FaucetState) error {
	if err := r.store.Save(ctx, storage.KeyTokenBalance(address), st.Balance); err != nil {
		return err
	}
	return r.store.Save(ctx, storage.KeyLastRequestTime(address), st.LastRequestTime)
}

func (r KVRepository) GetContracts(ctx context.Context, address string) ([]models.DeployedContract, error) {
	var contracts []models.DeployedContract
	err := r.store.Load(ctx, storage.KeyDeployedContracts(address), &contracts)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r KVRepository) SaveContracts(ctx context.Context, address string, contracts []models.DeployedContract) error {
	return r.store.Save(ctx, storage.KeyDeployedContracts(address), contracts)
}

// Капсулы времени хранятся под общим ключом, а не по адресам кошельков.
func (r KVRepository) GetCapsules(ctx context.Context) ([]models.TimeCapsule, error) {
	var capsules []models.TimeCapsule
	err := r.store.Load(ctx, storage.KeyTimeCapsules, &capsules)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return capsules, nil
}

func (r KVRepository) SaveCapsules(ctx context.Context, capsules []models.TimeCapsule) error {
	return r.store.Save(ctx, storage.KeyTimeCapsules, capsules)
}

// Seed создаёт демо-пользователей при первом запуске с пустым хранилищем.
func (r KVRepository) Seed(ctx context.Context) error {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	seed := []struct {
		user     models.User
		password string
	}{
		{
			user: models.User{
				Username:     "alice",
				Address:      "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
				EthBalance:   "2.5",
				TokenBalance: 1000,
				GameTokens:   500,
				NFTs:         []models.NFT{{ID: 1, Name: "Alice's NFT #1", Image: "https://via.placeholder.com/150"}},
				Avatar:       "https://via.placeholder.com/50",
			},
			password: "pass123",
		},
		{
			user: models.User{
				Username:     "bob",
				Address:      "0x37Ec9a8aBFa094b24054422564e68B08aF3114B4",
				EthBalance:   "1.8",
				TokenBalance: 750,
				GameTokens:   300,
				NFTs:         []models.NFT{{ID: 2, Name: "Bob's NFT #1", Image: "https://via.placeholder.com/150"}},
				Avatar:       "https://via.placeholder.com/50",
			},
			password: "pass456",
		},
	}

	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		s.user.PasswordHash = string(hash)
		if _, err := r.CreateUser(ctx, s.user); err != nil {
			return err
		}
	}
	return nil
}

func randomAddress() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(buf), nil
}
