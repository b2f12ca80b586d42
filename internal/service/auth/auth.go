package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"rider/internal/entities"
	"rider/internal/storage/session"
	"rider/pkg/logger"
)

// State описывает жизненный цикл сессии:
// unknown → loading → {authenticated, anonymous}.
// Назад в loading контроллер не возвращается до перезапуска процесса.
type State string

const (
	StateUnknown       State = "unknown"
	StateLoading       State = "loading"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

type Subscriber func(state State, current *entities.Rider)

// Controller владеет сессией райдера: восстановление при старте, вход,
// регистрация, выход. Ошибки хранилища не покидают контроллер — повреждённая
// или нечитаемая сессия равносильна её отсутствию.
type Controller struct {
	log     serviceLogger
	storage Storage
	api     API
	syncer  TokenSyncer

	mu      sync.RWMutex
	state   State
	current *entities.Rider
	subs    []Subscriber
}

func New(log serviceLogger, storage Storage, api API, syncer TokenSyncer) *Controller {
	return &Controller{
		log:     log,
		storage: storage,
		api:     api,
		syncer:  syncer,
		state:   StateUnknown,
	}
}

// RestoreSession читает сохранённую сессию и публикует текущего райдера.
// Никогда не возвращает ошибку: любой сбой чтения означает «нет сессии».
func (c *Controller) RestoreSession(ctx context.Context) {
	c.publish(StateLoading, nil)

	rider, _, err := c.storage.LoadSession(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			c.log.Warn("session restore failed, treating as signed out",
				logger.NewField("error", err),
			)
		}
		c.publish(StateAnonymous, nil)
		return
	}

	normalized := rider.Normalized()
	if normalized.RiderID == "" {
		// Запись без канонического идентификатора — не сессия.
		c.publish(StateAnonymous, nil)
		return
	}

	if err := c.storage.SaveRider(ctx, normalized); err != nil {
		c.log.Warn("failed to re-persist normalized session record",
			logger.NewField("error", err),
		)
	}

	c.publish(StateAuthenticated, &normalized)
}

// Login выполняет вход. При успехе порядок строгий: сначала запись в
// хранилище, затем публикация текущего райдера, затем синхронизация
// push-токена. При отказе сохранённая сессия не изменяется.
func (c *Controller) Login(ctx context.Context, phone, password string) error {
	if phone == "" || password == "" {
		return ErrMissingCredentials
	}

	rider, token, err := c.api.Login(ctx, phone, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	return c.establishSession(ctx, rider, token)
}

// Register создаёт аккаунт райдера; контракт идентичен Login.
func (c *Controller) Register(ctx context.Context, reg entities.RiderRegistration) error {
	if reg.Name == "" || reg.Phone == "" || reg.Password == "" ||
		reg.VehicleType == "" || reg.VehicleNumber == "" {
		return ErrMissingRequiredFields
	}

	rider, token, err := c.api.Register(ctx, reg)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	return c.establishSession(ctx, rider, token)
}

func (c *Controller) establishSession(ctx context.Context, rider entities.Rider, token string) error {
	normalized := rider.Normalized()

	if err := c.storage.SaveSession(ctx, normalized, token); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	c.publish(StateAuthenticated, &normalized)
	c.syncer.SyncToken(ctx)
	return nil
}

// Logout очищает запись сессии и токен вместе и публикует «нет райдера».
func (c *Controller) Logout(ctx context.Context) {
	if err := c.storage.Clear(ctx); err != nil {
		c.log.Error("failed to clear stored session",
			logger.NewField("error", err),
		)
	}
	c.publish(StateAnonymous, nil)
}

func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// CurrentUser возвращает копию текущего райдера, nil если не аутентифицирован.
func (c *Controller) CurrentUser() *entities.Rider {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return nil
	}
	rider := *c.current
	return &rider
}

// Subscribe регистрирует наблюдателя смены состояния сессии. Наблюдатель
// всегда видит уже сохранённую запись.
func (c *Controller) Subscribe(fn Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

func (c *Controller) publish(state State, current *entities.Rider) {
	c.mu.Lock()
	c.state = state
	c.current = current
	subs := make([]Subscriber, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(state, current)
	}
}
