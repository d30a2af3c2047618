package walletconn

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"
)

var ErrNotConnected = errors.New("кошелёк не подключен")

type Block struct {
	Number       int64    `json:"number"`
	Timestamp    int64    `json:"timestamp"`
	GasUsed      int64    `json:"gasUsed"`
	Transactions []string `json:"transactions"`
}

type Transaction struct {
	Hash  string `json:"hash"`
	From  string `json:"from"`
	To    string `json:"to"`
	Value string `json:"value"`
}

// Library — read-only доступ к данным цепочки для обзорной страницы.
// Ядро симулятора в неё не пишет.
type Library interface {
	GetBalance(ctx context.Context, address string) (*big.Int, error)
	GetBlockNumber(ctx context.Context) (int64, error)
	GetBlock(ctx context.Context, number int64) (Block, error)
	GetTransaction(ctx context.Context, hash string) (Transaction, error)
}

// Connector повторяет интерфейс кошелькового провайдера:
// activate/deactivate, активность и адрес текущего аккаунта.
type Connector struct {
	mu      sync.Mutex
	account string
	active  bool
	library Library
}

func NewConnector(library Library) *Connector {
	return &Connector{library: library}
}

func (c *Connector) Activate(account string) error {
	if account == "" {
		return ErrNotConnected
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.account = account
	c.active = true
	return nil
}

func (c *Connector) Deactivate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.account = ""
	c.active = false
}

func (c *Connector) Account() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.account
}

func (c *Connector) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *Connector) Library() Library {
	return c.library
}

// SimulatedChain генерирует детерминированные псевдоблоки: номер блока растёт
// раз в двенадцать секунд от момента создания цепочки.
type SimulatedChain struct {
	genesis time.Time
}

func NewSimulatedChain(genesis time.Time) SimulatedChain {
	return SimulatedChain{genesis: genesis}
}

func (s SimulatedChain) GetBalance(ctx context.Context, address string) (*big.Int, error) {
	sum := sha256.Sum256([]byte("balance:" + address))
	wei := new(big.Int).SetBytes(sum[:6])
	return wei, nil
}

func (s SimulatedChain) GetBlockNumber(ctx context.Context) (int64, error) {
	elapsed := time.Since(s.genesis)
	return int64(elapsed / (12 * time.Second)), nil
}

func (s SimulatedChain) GetBlock(ctx context.Context, number int64) (Block, error) {
	if number < 0 {
		return Block{}, fmt.Errorf("нет блока с номером %d", number)
	}
	txCount := int(number%3) + 1
	txs := make([]string, 0, txCount)
	for i := 0; i < txCount; i++ {
		txs = append(txs, txHash(number, i))
	}
	return Block{
		Number:       number,
		Timestamp:    s.genesis.Unix() + number*12,
		GasUsed:      21000 * int64(txCount),
		Transactions: txs,
	}, nil
}

func (s SimulatedChain) GetTransaction(ctx context.Context, hash string) (Transaction, error) {
	from := sha256.Sum256([]byte("from:" + hash))
	to := sha256.Sum256([]byte("to:" + hash))
	value := new(big.Int).SetBytes([]byte(hash)[:4])
	return Transaction{
		Hash:  hash,
		From:  "0x" + hex.EncodeToString(from[:20]),
		To:    "0x" + hex.EncodeToString(to[:20]),
		Value: value.String(),
	}, nil
}

func txHash(blockNumber int64, index int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("tx:%d:%d", blockNumber, index)))
	return "0x" + hex.EncodeToString(sum[:])
}
