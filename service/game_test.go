package service_test

import (
	"context"
	"testing"

	"web3explorer/models"
	"web3explorer/service"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestService_ClickerGame(t *testing.T) {
	env := newTestEnv(t)
	player := models.User{ID: 1, Username: "alice", TokenBalance: 50, GameTokens: 5}
	env.repo.EXPECT().GetUserByID(gomock.Any(), 1).Return(player, nil).Times(2)

	state, err := env.svc.StartGame(context.Background(), 1, service.GameClicker)
	require.NoError(t, err)
	require.True(t, state.Active)
	require.Equal(t, 30, state.TicksLeft)

	for i := 0; i < 7; i++ {
		state, err = env.svc.ClickGame(state.ID)
		require.NoError(t, err)
	}
	require.Equal(t, 7, state.Score)

	for i := 0; i < 30; i++ {
		state, err = env.svc.TickGame(state.ID)
		require.NoError(t, err)
	}
	require.False(t, state.Active)

	// Клики после конца раунда не засчитываются.
	state, err = env.svc.ClickGame(state.ID)
	require.NoError(t, err)
	require.Equal(t, 7, state.Score)

	env.repo.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated models.User) error {
			require.Equal(t, 12, updated.GameTokens)
			require.Equal(t, 57, updated.TokenBalance)
			return nil
		})

	updated, earned, err := env.svc.FinishGame(context.Background(), state.ID)
	require.NoError(t, err)
	require.Equal(t, 7, earned)
	require.Equal(t, 12, updated.GameTokens)

	_, _, err = env.svc.FinishGame(context.Background(), state.ID)
	require.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestService_GuessGame(t *testing.T) {
	env := newTestEnv(t)
	player := models.User{ID: 1, Username: "alice"}
	env.repo.EXPECT().GetUserByID(gomock.Any(), 1).Return(player, nil).Times(2)

	state, err := env.svc.StartGame(context.Background(), 1, service.GameGuess)
	require.NoError(t, err)

	// Ищем загаданное число двоичным поиском по подсказкам.
	lo, hi := 1, 100
	guesses := 0
	for {
		guess := (lo + hi) / 2
		var hint string
		state, hint, err = env.svc.GuessGame(state.ID, guess)
		require.NoError(t, err)
		guesses++
		require.LessOrEqual(t, guesses, 7)
		if hint == "Угадали!" {
			break
		}
		if hint == "Слишком много!" {
			hi = guess - 1
		} else {
			lo = guess + 1
		}
	}
	require.False(t, state.Active)
	require.Equal(t, 100, state.Score)

	env.repo.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated models.User) error {
			// Победа в угадывании даёт фиксированные 20 игровых токенов
			// и не трогает основной баланс.
			require.Equal(t, 20, updated.GameTokens)
			require.Equal(t, 0, updated.TokenBalance)
			return nil
		})

	_, earned, err := env.svc.FinishGame(context.Background(), state.ID)
	require.NoError(t, err)
	require.Equal(t, 20, earned)
}

func TestService_GuessGameScoreFloor(t *testing.T) {
	env := newTestEnv(t)
	env.repo.EXPECT().GetUserByID(gomock.Any(), 1).Return(models.User{ID: 1}, nil)

	state, err := env.svc.StartGame(context.Background(), 1, service.GameGuess)
	require.NoError(t, err)

	// Число из [1; 100] — ноль гарантированно мимо, счёт остаётся на нуле.
	state, _, err = env.svc.GuessGame(state.ID, 0)
	require.NoError(t, err)
	require.Equal(t, 0, state.Score)
}

func TestService_TimedGame(t *testing.T) {
	env := newTestEnv(t)
	player := models.User{ID: 1, Username: "alice", TokenBalance: 10}
	env.repo.EXPECT().GetUserByID(gomock.Any(), 1).Return(player, nil).Times(2)

	state, err := env.svc.StartGame(context.Background(), 1, service.GameTimed)
	require.NoError(t, err)
	require.Equal(t, 10, state.TicksLeft)

	for i := 0; i < 10; i++ {
		state, err = env.svc.TickGame(state.ID)
		require.NoError(t, err)
	}
	require.False(t, state.Active)
	// Каждый тик приносит от 1 до 10 токенов.
	require.GreaterOrEqual(t, state.Score, 10)
	require.LessOrEqual(t, state.Score, 100)

	score := state.Score
	env.repo.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated models.User) error {
			require.Equal(t, score, updated.GameTokens)
			require.Equal(t, 10+score, updated.TokenBalance)
			return nil
		})

	_, earned, err := env.svc.FinishGame(context.Background(), state.ID)
	require.NoError(t, err)
	require.Equal(t, score, earned)
}

func TestService_StartGameUnknownKind(t *testing.T) {
	env := newTestEnv(t)
	env.repo.EXPECT().GetUserByID(gomock.Any(), 1).Return(models.User{ID: 1}, nil)

	_, err := env.svc.StartGame(context.Background(), 1, "chess")
	require.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestService_GameWithdraw(t *testing.T) {
	type args struct {
		gameTokens int
		amount     int
	}
	tests := []struct {
		name           string
		args           args
		wantErr        error
		wantGameTokens int
		wantBalance    int
	}{
		{
			name:           "Full withdrawal",
			args:           args{gameTokens: 40, amount: 40},
			wantGameTokens: 0,
			wantBalance:    140,
		},
		{
			name:    "More than earned",
			args:    args{gameTokens: 40, amount: 41},
			wantErr: service.ErrInsufficientGameTokens,
		},
		{
			name:    "Non-positive amount",
			args:    args{gameTokens: 40, amount: 0},
			wantErr: service.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.repo.EXPECT().
				GetUserByID(gomock.Any(), 1).
				Return(models.User{ID: 1, TokenBalance: 100, GameTokens: tt.args.gameTokens}, nil)
			if tt.wantErr == nil {
				env.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)
			}

			updated, err := env.svc.GameWithdraw(context.Background(), 1, tt.args.amount)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantGameTokens, updated.GameTokens)
			require.Equal(t, tt.wantBalance, updated.TokenBalance)
		})
	}
}
