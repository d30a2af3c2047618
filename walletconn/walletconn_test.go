package walletconn_test

import (
	"context"
	"testing"
	"time"

	"web3explorer/walletconn"

	"github.com/stretchr/testify/require"
)

func TestConnector(t *testing.T) {
	c := walletconn.NewConnector(walletconn.NewSimulatedChain(time.Now()))

	require.False(t, c.Active())
	require.Empty(t, c.Account())

	require.ErrorIs(t, c.Activate(""), walletconn.ErrNotConnected)

	require.NoError(t, c.Activate("0xaaa"))
	require.True(t, c.Active())
	require.Equal(t, "0xaaa", c.Account())

	c.Deactivate()
	require.False(t, c.Active())
	require.Empty(t, c.Account())
}

func TestSimulatedChain_BlockNumberGrowth(t *testing.T) {
	ctx := context.Background()

	// Один блок в двенадцать секунд от генезиса.
	chain := walletconn.NewSimulatedChain(time.Now().Add(-2 * time.Minute))
	number, err := chain.GetBlockNumber(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(10), number)
}

func TestSimulatedChain_Determinism(t *testing.T) {
	ctx := context.Background()
	genesis := time.Unix(1700000000, 0)
	chain := walletconn.NewSimulatedChain(genesis)

	block, err := chain.GetBlock(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, int64(7), block.Number)
	require.Equal(t, genesis.Unix()+7*12, block.Timestamp)
	require.NotEmpty(t, block.Transactions)
	require.Equal(t, int64(21000)*int64(len(block.Transactions)), block.GasUsed)

	again, err := chain.GetBlock(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, block, again)

	_, err = chain.GetBlock(ctx, -1)
	require.Error(t, err)

	tx, err := chain.GetTransaction(ctx, block.Transactions[0])
	require.NoError(t, err)
	require.Equal(t, block.Transactions[0], tx.Hash)
	require.Len(t, tx.From, 42)
	require.Len(t, tx.To, 42)
	require.NotEmpty(t, tx.Value)

	balance, err := chain.GetBalance(ctx, "0xaaa")
	require.NoError(t, err)
	balanceAgain, err := chain.GetBalance(ctx, "0xaaa")
	require.NoError(t, err)
	require.Equal(t, balance, balanceAgain)
}
