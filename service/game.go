package service

import (
	"context"

	"web3explorer/models"

	"github.com/google/uuid"
)

const (
	GameClicker = "clicker"
	GameGuess   = "guessNumber"
	GameTimed   = "playToEarn"

	clickerTicks = 30
	timedTicks   = 10
)

// Игровые сессии продвигаются явными тиками, а не таймерами: источником
// времени выступает вызывающая сторона, поэтому логика проверяется без
// реального ожидания.
type gameSession struct {
	id        string
	userID    int
	kind      string
	score     int
	ticksLeft int
	target    int
	finished  bool
}

type GameState struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Score     int    `json:"score"`
	TicksLeft int    `json:"ticksLeft"`
	Active    bool   `json:"active"`
}

func (g *gameSession) state() GameState {
	return GameState{
		ID:        g.id,
		Kind:      g.kind,
		Score:     g.score,
		TicksLeft: g.ticksLeft,
		Active:    !g.finished,
	}
}

func (s *Service) StartGame(ctx context.Context, userID int, kind string) (GameState, error) {
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		return GameState{}, err
	}

	session := &gameSession{
		id:     uuid.NewString(),
		userID: userID,
		kind:   kind,
	}
	switch kind {
	case GameClicker:
		session.ticksLeft = clickerTicks
	case GameTimed:
		session.ticksLeft = timedTicks
	case GameGuess:
		target, err := randomInt(100)
		if err != nil {
			return GameState{}, err
		}
		session.target = int(target) + 1
		session.ticksLeft = clickerTicks
	default:
		return GameState{}, ErrSessionNotFound
	}

	s.mu.Lock()
	s.sessions[session.id] = session
	s.mu.Unlock()
	return session.state(), nil
}

// Tick продвигает сессию на один шаг игрового времени.
func (s *Service) TickGame(sessionID string) (GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return GameState{}, ErrSessionNotFound
	}
	if session.finished || session.ticksLeft == 0 {
		session.finished = true
		return session.state(), nil
	}

	session.ticksLeft--
	if session.kind == GameTimed {
		n, err := randomInt(10)
		if err != nil {
			return GameState{}, err
		}
		session.score += int(n) + 1
	}
	if session.ticksLeft == 0 {
		session.finished = true
	}
	return session.state(), nil
}

func (s *Service) ClickGame(sessionID string) (GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok || session.kind != GameClicker {
		return GameState{}, ErrSessionNotFound
	}
	if !session.finished {
		session.score++
	}
	return session.state(), nil
}

// GuessGame возвращает подсказку «больше/меньше»; попадание завершает сессию
// со счётом 100, промах отнимает 10 очков, но не ниже нуля.
func (s *Service) GuessGame(sessionID string, guess int) (GameState, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok || session.kind != GameGuess {
		return GameState{}, "", ErrSessionNotFound
	}
	if session.finished {
		return session.state(), "", nil
	}

	hint := ""
	switch {
	case guess == session.target:
		session.score = 100
		session.finished = true
		hint = "Угадали!"
	case guess > session.target:
		hint = "Слишком много!"
		session.score -= 10
	default:
		hint = "Слишком мало!"
		session.score -= 10
	}
	if session.score < 0 {
		session.score = 0
	}
	return session.state(), hint, nil
}

// FinishGame начисляет награду по правилу игры и удаляет сессию.
// Кликер и таймерная игра зачисляют счёт и в игровые, и в обычные токены,
// угадывание числа даёт фиксированные 20 игровых токенов за победу.
func (s *Service) FinishGame(ctx context.Context, sessionID string) (models.User, int, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()
	if !ok {
		return models.User{}, 0, ErrSessionNotFound
	}

	user, err := s.repo.GetUserByID(ctx, session.userID)
	if err != nil {
		return models.User{}, 0, err
	}

	earned := 0
	switch session.kind {
	case GameClicker, GameTimed:
		earned = session.score
		user.GameTokens += earned
		user.TokenBalance += earned
	case GameGuess:
		if session.score > 0 {
			earned = 20
		}
		user.GameTokens += earned
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return models.User{}, 0, err
	}
	user.PasswordHash = ""
	return user, earned, nil
}

// GameWithdraw переводит игровые токены в кошелёк с имитацией
// блокчейн-транзакции.
func (s *Service) GameWithdraw(ctx context.Context, userID, amount int) (models.User, error) {
	if err := s.clock.Sleep(ctx, s.latency); err != nil {
		return models.User{}, err
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	updated, err := applyGameWithdraw(user, amount)
	if err != nil {
		return models.User{}, err
	}
	if err := s.repo.UpdateUser(ctx, updated); err != nil {
		return models.User{}, err
	}
	updated.PasswordHash = ""
	return updated, nil
}
