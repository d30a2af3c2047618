package service

import (
	"context"
	"time"
)

//go:generate mockgen -destination=./mocks/mock_clock.go -package=mocks web3explorer/service Clock

// Clock — единственный источник текущего времени для исполнителей операций.
// Sleep моделирует сетевую задержку и прерывается при отмене контекста.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
