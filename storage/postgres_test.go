package storage_test

import (
	"context"
	"encoding/json"
	"testing"

	"web3explorer/models"
	"web3explorer/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	faucet := models.FaucetState{Balance: 100, LastRequestTime: 1700000000000}
	raw, err := json.Marshal(faucet)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs("testTokenBalance_0xabc", raw).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := storage.NewPostgresStore(db)
	err = store.Save(context.Background(), storage.KeyTokenBalance("0xabc"), faucet)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Load(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	capsules := []models.TimeCapsule{
		{ID: "cap-1", Message: "hi", UnlockDate: 42, Creator: "0xabc", Category: "Prediction"},
	}
	raw, err := json.Marshal(capsules)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT value FROM kv_entries").
		WithArgs("timeCapsules").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(raw))

	store := storage.NewPostgresStore(db)
	var got []models.TimeCapsule
	err = store.Load(context.Background(), storage.KeyTimeCapsules, &got)
	require.NoError(t, err)
	require.Equal(t, capsules, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadMissingKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv_entries").
		WithArgs("currentUser").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	store := storage.NewPostgresStore(db)
	var got models.User
	err = store.Load(context.Background(), storage.KeyCurrentUser, &got)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
