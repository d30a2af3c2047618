package service

import "errors"

// Категории ошибок: валидация входных данных, конфликт состояния, нехватка
// средств и несовпадение одноразового кода. Ни одна из них не меняет состояние.
var (
	ErrInvalidAmount      = errors.New("укажите корректную сумму")
	ErrInvalidBankDetails = errors.New("проверка банковских реквизитов не пройдена")
	ErrInvalidCategory    = errors.New("неизвестная категория капсулы")
	ErrEmptyMessage       = errors.New("сообщение не может быть пустым")
	ErrEmptyName          = errors.New("укажите имя")
	ErrNameTooLong        = errors.New("имя токена не длиннее 50 символов")
	ErrSymbolTooLong      = errors.New("символ токена не длиннее 11 символов")
	ErrInvalidProfile     = errors.New("некорректные данные профиля")

	ErrSelfTransfer      = errors.New("нельзя перевести средства на собственный адрес")
	ErrRecipientNotFound = errors.New("получатель не найден")
	ErrDuplicateName     = errors.New("NFT с таким именем уже существует")
	ErrCapsuleNotFound   = errors.New("капсула не найдена")
	ErrCapsuleLocked     = errors.New("капсула ещё заблокирована")
	ErrContractNotFound  = errors.New("контракт не найден")
	ErrSessionNotFound   = errors.New("игровая сессия не найдена")
	ErrChallengeNotFound = errors.New("операция не найдена или уже завершена")
	ErrWalletNotActive   = errors.New("сначала подключите кошелёк")

	ErrInsufficientFunds      = errors.New("недостаточно токенов на счёте")
	ErrInsufficientEth        = errors.New("недостаточно ETH для вывода")
	ErrInsufficientGameTokens = errors.New("недостаточно игровых токенов")
	ErrInsufficientBalance    = errors.New("недостаточно тестовых токенов для развёртывания")
	ErrCooldownActive         = errors.New("кран ещё на перезарядке")

	ErrInvalidCode = errors.New("неверный одноразовый код")
)

func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidBankDetails),
		errors.Is(err, ErrInvalidCategory),
		errors.Is(err, ErrEmptyMessage),
		errors.Is(err, ErrEmptyName),
		errors.Is(err, ErrNameTooLong),
		errors.Is(err, ErrSymbolTooLong),
		errors.Is(err, ErrInvalidProfile):
		return true
	}
	return false
}

func IsStateConflictError(err error) bool {
	switch {
	case errors.Is(err, ErrSelfTransfer),
		errors.Is(err, ErrRecipientNotFound),
		errors.Is(err, ErrDuplicateName),
		errors.Is(err, ErrCapsuleNotFound),
		errors.Is(err, ErrCapsuleLocked),
		errors.Is(err, ErrContractNotFound),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrChallengeNotFound),
		errors.Is(err, ErrWalletNotActive):
		return true
	}
	return false
}

func IsInsufficientResourceError(err error) bool {
	switch {
	case errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrInsufficientEth),
		errors.Is(err, ErrInsufficientGameTokens),
		errors.Is(err, ErrInsufficientBalance),
		errors.Is(err, ErrCooldownActive):
		return true
	}
	return false
}

func IsChallengeMismatchError(err error) bool {
	return errors.Is(err, ErrInvalidCode)
}
