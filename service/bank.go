package service

import (
	"context"
	"fmt"
	"strconv"

	"web3explorer/models"

	"github.com/google/uuid"
)

const (
	TxDeposit  = "deposit"
	TxWithdraw = "withdraw"
)

type pendingTx struct {
	userID int
	kind   string
	amount float64
	code   string
}

// InitiateBankTransaction — первая фаза банковской операции: проверка суммы и
// реквизитов, генерация шестизначного кода и отложенное состояние. Баланс на
// этой фазе не меняется.
func (s *Service) InitiateBankTransaction(
	ctx context.Context,
	userID int,
	kind string,
	amount float64,
	details BankDetails,
) (string, error) {
	if kind != TxDeposit && kind != TxWithdraw {
		return "", ErrInvalidAmount
	}
	if amount <= 0 {
		return "", ErrInvalidAmount
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if kind == TxWithdraw {
		balance, err := strconv.ParseFloat(user.EthBalance, 64)
		if err != nil {
			return "", fmt.Errorf("повреждённый баланс ETH: %w", err)
		}
		if amount > balance {
			return "", ErrInsufficientEth
		}
	}

	// Имитация проверки реквизитов банком.
	if err := s.clock.Sleep(ctx, s.latency); err != nil {
		return "", err
	}
	if err := validateBankDetails(details); err != nil {
		return "", err
	}

	code, err := s.generateOTP()
	if err != nil {
		return "", err
	}
	challengeID := uuid.NewString()

	s.mu.Lock()
	s.pending[challengeID] = pendingTx{userID: userID, kind: kind, amount: amount, code: code}
	s.mu.Unlock()

	message := fmt.Sprintf("Ваш одноразовый код для операции %s на %g ETH: %s", kind, amount, code)
	s.notifier.Notify("sms", user.PhoneNumber, message)
	s.notifier.Notify("email", user.Email, message)

	return challengeID, nil
}

// ConfirmBankTransaction — вторая фаза: баланс меняется только при точном
// совпадении кода. Несовпадение оставляет состояние нетронутым, число
// попыток не ограничено.
func (s *Service) ConfirmBankTransaction(ctx context.Context, challengeID, code string) (models.User, error) {
	s.mu.Lock()
	tx, ok := s.pending[challengeID]
	s.mu.Unlock()
	if !ok {
		return models.User{}, ErrChallengeNotFound
	}
	if code != tx.code {
		return models.User{}, ErrInvalidCode
	}

	if err := s.clock.Sleep(ctx, s.latency); err != nil {
		return models.User{}, err
	}

	user, err := s.repo.GetUserByID(ctx, tx.userID)
	if err != nil {
		return models.User{}, err
	}

	delta := tx.amount
	if tx.kind == TxWithdraw {
		delta = -tx.amount
	}
	// Двухфазный поток исторически округляет до двух знаков.
	updated, err := applyEthChange(user, delta, 2)
	if err != nil {
		return models.User{}, err
	}
	if err := s.repo.UpdateUser(ctx, updated); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	delete(s.pending, challengeID)
	s.mu.Unlock()

	message := fmt.Sprintf("Операция %s на %g ETH выполнена успешно.", tx.kind, tx.amount)
	s.notifier.Notify("sms", updated.PhoneNumber, message)
	s.notifier.Notify("email", updated.Email, message)

	updated.PasswordHash = ""
	return updated, nil
}

// AddFunds — прямое пополнение без кода подтверждения, альтернативный поток
// с округлением до четырёх знаков.
func (s *Service) AddFunds(ctx context.Context, userID int, amount float64, details BankDetails) (models.User, error) {
	if amount <= 0 || amount > MaxDepositAmount {
		return models.User{}, ErrInvalidAmount
	}
	if err := validateBankDetails(details); err != nil {
		return models.User{}, err
	}
	if err := s.clock.Sleep(ctx, s.latency); err != nil {
		return models.User{}, err
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	updated, err := applyEthChange(user, amount, 4)
	if err != nil {
		return models.User{}, err
	}
	if err := s.repo.UpdateUser(ctx, updated); err != nil {
		return models.User{}, err
	}

	message := fmt.Sprintf("%g ETH зачислены на ваш кошелёк.", amount)
	s.notifier.Notify("email", updated.Email, message)
	s.notifier.Notify("sms", updated.PhoneNumber, message)

	updated.PasswordHash = ""
	return updated, nil
}

func (s *Service) WithdrawFunds(ctx context.Context, userID int, amount float64, destinationAccount string) (models.User, error) {
	if amount <= 0 {
		return models.User{}, ErrInvalidAmount
	}
	if destinationAccount == "" {
		return models.User{}, ErrInvalidBankDetails
	}
	if err := s.clock.Sleep(ctx, s.latency); err != nil {
		return models.User{}, err
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	updated, err := applyEthChange(user, -amount, 4)
	if err != nil {
		return models.User{}, err
	}
	if err := s.repo.UpdateUser(ctx, updated); err != nil {
		return models.User{}, err
	}

	message := fmt.Sprintf("%g ETH выведены на счёт %s.", amount, destinationAccount)
	s.notifier.Notify("email", updated.Email, message)
	s.notifier.Notify("sms", updated.PhoneNumber, message)

	updated.PasswordHash = ""
	return updated, nil
}

func (s *Service) generateOTP() (string, error) {
	n, err := randomInt(900000)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(100000+n, 10), nil
}
