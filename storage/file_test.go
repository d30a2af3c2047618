package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"web3explorer/models"
	"web3explorer/storage"

	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	users := []models.User{
		{
			ID:           1,
			Username:     "alice",
			Address:      "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
			EthBalance:   "2.5",
			TokenBalance: 1000,
			GameTokens:   500,
			NFTs:         []models.NFT{{ID: 1, Name: "Alice's NFT #1", Image: "https://via.placeholder.com/150"}},
			Avatar:       "https://via.placeholder.com/50",
		},
	}
	capsules := []models.TimeCapsule{
		{
			ID:         "abc123",
			Message:    "привет из прошлого",
			UnlockDate: 1700000060000,
			Creator:    "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
			Category:   "Prediction",
			IsOpened:   false,
		},
	}
	contracts := []models.DeployedContract{
		{ID: "c-1", Address: "0xdeadbeef", Name: "Token", Symbol: "TKN", DeploymentFee: 10},
	}
	faucet := models.FaucetState{Balance: 100, LastRequestTime: 1700000000000}

	require.NoError(t, store.Save(ctx, storage.KeyUsers, users))
	require.NoError(t, store.Save(ctx, storage.KeyTimeCapsules, capsules))
	require.NoError(t, store.Save(ctx, storage.KeyDeployedContracts("0xdead"), contracts))
	require.NoError(t, store.Save(ctx, storage.KeyTokenBalance("0xdead"), faucet))

	var gotUsers []models.User
	require.NoError(t, store.Load(ctx, storage.KeyUsers, &gotUsers))
	require.Equal(t, users, gotUsers)

	var gotCapsules []models.TimeCapsule
	require.NoError(t, store.Load(ctx, storage.KeyTimeCapsules, &gotCapsules))
	require.Equal(t, capsules, gotCapsules)

	var gotContracts []models.DeployedContract
	require.NoError(t, store.Load(ctx, storage.KeyDeployedContracts("0xdead"), &gotContracts))
	require.Equal(t, contracts, gotContracts)

	var gotFaucet models.FaucetState
	require.NoError(t, store.Load(ctx, storage.KeyTokenBalance("0xdead"), &gotFaucet))
	require.Equal(t, faucet, gotFaucet)
}

func TestFileStore_LoadMissingKey(t *testing.T) {
	store := storage.NewMemoryStore()
	var dest []models.User
	err := store.Load(context.Background(), "users", &dest)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFileStore_OverwriteIsLastWriterWins(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	require.NoError(t, store.Save(ctx, storage.KeyCurrentUser, models.User{ID: 1, Username: "alice"}))
	require.NoError(t, store.Save(ctx, storage.KeyCurrentUser, models.User{ID: 2, Username: "bob"}))

	var got models.User
	require.NoError(t, store.Load(ctx, storage.KeyCurrentUser, &got))
	require.Equal(t, 2, got.ID)
	require.Equal(t, "bob", got.Username)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.json")

	store, err := storage.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, storage.KeyUsers, []models.User{{ID: 7, Username: "carol", Address: "0xabc"}}))

	_, err = os.Stat(path)
	require.NoError(t, err)

	reopened, err := storage.NewFileStore(path)
	require.NoError(t, err)

	var got []models.User
	require.NoError(t, reopened.Load(ctx, storage.KeyUsers, &got))
	require.Len(t, got, 1)
	require.Equal(t, "carol", got[0].Username)
}
