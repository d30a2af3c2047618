package storage

import (
	"context"
	"errors"
)

// Store хранит структуры в формате JSON под фиксированными ключами.
// Save полностью перезаписывает значение, Load кладёт результат в dest.
type Store interface {
	Save(ctx context.Context, key string, value interface{}) error
	Load(ctx context.Context, key string, dest interface{}) error
}

var ErrNotFound = errors.New("ключ не найден")

const (
	KeyUsers        = "users"
	KeyCurrentUser  = "currentUser"
	KeyTimeCapsules = "timeCapsules"
)

func KeyTokenBalance(address string) string {
	return "testTokenBalance_" + address
}

func KeyLastRequestTime(address string) string {
	return "lastRequestTime_" + address
}

func KeyDeployedContracts(address string) string {
	return "deployedContracts_" + address
}
