package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"web3explorer/models"
)

const (
	FaucetAmount   = 100
	FaucetCooldown = time.Hour
	DeploymentFee  = 10

	MaxContractNameLen   = 50
	MaxContractSymbolLen = 11
	MaxDepositAmount     = 10000

	capsuleUnlockDelay = time.Minute
)

// Исполнители операций — чистые функции над снимками записей: они никогда не
// меняют вход, а возвращают обновлённые копии либо ошибку без побочных эффектов.

func applyTransfer(sender, recipient models.User, amount int) (models.User, models.User, error) {
	if amount <= 0 {
		return models.User{}, models.User{}, ErrInvalidAmount
	}
	if sender.Address == recipient.Address {
		return models.User{}, models.User{}, ErrSelfTransfer
	}
	if sender.TokenBalance < amount {
		return models.User{}, models.User{}, ErrInsufficientFunds
	}
	sender.TokenBalance -= amount
	recipient.TokenBalance += amount
	return sender, recipient, nil
}

func applyEthChange(user models.User, delta float64, places int) (models.User, error) {
	balance, err := strconv.ParseFloat(user.EthBalance, 64)
	if err != nil {
		return models.User{}, fmt.Errorf("повреждённый баланс ETH: %w", err)
	}
	updated := balance + delta
	if updated < 0 {
		return models.User{}, ErrInsufficientEth
	}
	user.EthBalance = strconv.FormatFloat(updated, 'f', places, 64)
	return user, nil
}

func applyFaucetClaim(st models.FaucetState, nowMs int64) (models.FaucetState, error) {
	if nowMs-st.LastRequestTime < FaucetCooldown.Milliseconds() {
		return models.FaucetState{}, ErrCooldownActive
	}
	st.Balance += FaucetAmount
	st.LastRequestTime = nowMs
	return st, nil
}

func applyGameWithdraw(user models.User, amount int) (models.User, error) {
	if amount <= 0 {
		return models.User{}, ErrInvalidAmount
	}
	if amount > user.GameTokens {
		return models.User{}, ErrInsufficientGameTokens
	}
	user.GameTokens -= amount
	user.TokenBalance += amount
	return user, nil
}

func applyMintNFT(user models.User, name, image string) (models.User, error) {
	if name == "" {
		return models.User{}, ErrEmptyName
	}
	for _, nft := range user.NFTs {
		if strings.EqualFold(nft.Name, name) {
			return models.User{}, ErrDuplicateName
		}
	}
	minted := models.NFT{
		ID:    len(user.NFTs) + 1,
		Name:  name,
		Image: image,
	}
	nfts := make([]models.NFT, len(user.NFTs), len(user.NFTs)+1)
	copy(nfts, user.NFTs)
	user.NFTs = append(nfts, minted)
	return user, nil
}

func applyDeployContract(
	st models.FaucetState,
	name, symbol, id, address string,
	fee int,
) (models.FaucetState, models.DeployedContract, error) {
	if name == "" || symbol == "" {
		return models.FaucetState{}, models.DeployedContract{}, ErrEmptyName
	}
	if len(name) > MaxContractNameLen {
		return models.FaucetState{}, models.DeployedContract{}, ErrNameTooLong
	}
	if len(symbol) > MaxContractSymbolLen {
		return models.FaucetState{}, models.DeployedContract{}, ErrSymbolTooLong
	}
	if st.Balance < fee {
		return models.FaucetState{}, models.DeployedContract{}, ErrInsufficientBalance
	}
	st.Balance -= fee
	contract := models.DeployedContract{
		ID:            id,
		Address:       address,
		Name:          name,
		Symbol:        strings.ToUpper(symbol),
		DeploymentFee: fee,
	}
	return st, contract, nil
}

func applyOpenCapsule(capsules []models.TimeCapsule, id string, nowMs int64) ([]models.TimeCapsule, models.TimeCapsule, error) {
	for i, c := range capsules {
		if c.ID != id {
			continue
		}
		if nowMs < c.UnlockDate {
			remaining := time.Duration(c.UnlockDate-nowMs) * time.Millisecond
			return nil, models.TimeCapsule{}, fmt.Errorf("%w: осталось %s", ErrCapsuleLocked, remaining.Round(time.Second))
		}
		updated := make([]models.TimeCapsule, len(capsules))
		copy(updated, capsules)
		updated[i].IsOpened = true
		return updated, updated[i], nil
	}
	return nil, models.TimeCapsule{}, ErrCapsuleNotFound
}

type BankDetails struct {
	BankName      string
	AccountNumber string
	IFSCCode      string
}

func validateBankDetails(d BankDetails) error {
	if len(d.BankName) == 0 || len(d.AccountNumber) != 10 || len(d.IFSCCode) != 11 {
		return ErrInvalidBankDetails
	}
	for _, r := range d.AccountNumber {
		if r < '0' || r > '9' {
			return ErrInvalidBankDetails
		}
	}
	return nil
}

func validateProfile(username, email, phone string) error {
	if len(username) < 3 || len(username) > 20 {
		return ErrInvalidProfile
	}
	at := strings.Index(email, "@")
	if at < 1 || !strings.Contains(email[at:], ".") {
		return ErrInvalidProfile
	}
	if len(phone) != 10 {
		return ErrInvalidProfile
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return ErrInvalidProfile
		}
	}
	return nil
}
