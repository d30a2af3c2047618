package service_test

import (
	"context"
	"testing"
	"time"

	"web3explorer/service"

	"github.com/stretchr/testify/require"
)

func TestRealClock_Sleep(t *testing.T) {
	clock := service.RealClock{}

	require.NoError(t, clock.Sleep(context.Background(), 0))
	require.NoError(t, clock.Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := clock.Sleep(ctx, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
}
