package order_refresh

import (
	"context"
	"fmt"
	"sync"
	"time"

	"rider/internal/entities"
	"rider/internal/service/auth"
	"rider/pkg/logger"
)

// Task периодически обновляет снимок активных заказов райдера. Каждый
// запуск ограничен по времени интервалом опроса, поэтому в полёте не
// бывает больше одного обновления и устаревший ответ не может затереть
// более свежий. Без активной сессии запуск пропускается.
type Task struct {
	log    taskLogger
	auth   Auth
	orders Orders
	ttl    time.Duration

	mu        sync.RWMutex
	snapshot  []entities.Order
	updatedAt time.Time
}

func New(log taskLogger, authController Auth, orders Orders, ttl time.Duration) *Task {
	return &Task{
		log:    log,
		auth:   authController,
		orders: orders,
		ttl:    ttl,
	}
}

func (t *Task) TTL() time.Duration {
	return t.ttl
}

func (t *Task) Info() string {
	return "order_refresh"
}

func (t *Task) Do(ctx context.Context) error {
	if t.auth.State() != auth.StateAuthenticated {
		t.log.Debug("order refresh skipped, no authenticated session")
		return nil
	}
	current := t.auth.CurrentUser()
	if current == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, t.ttl)
	defer cancel()

	active, err := t.orders.ActiveOrders(ctx, current.RiderID)
	if err != nil {
		return fmt.Errorf("refresh active orders: %w", err)
	}

	t.mu.Lock()
	t.snapshot = active
	t.updatedAt = time.Now()
	t.mu.Unlock()

	t.log.Debug("active orders snapshot refreshed",
		logger.NewField("riderId", current.RiderID),
		logger.NewField("count", len(active)),
	)

	return nil
}

// Nudge запускает внеочередное обновление, не дожидаясь тика: например,
// по входящему push-сообщению о новом заказе. Ошибка только логируется.
func (t *Task) Nudge(ctx context.Context) {
	if err := t.Do(ctx); err != nil {
		t.log.Warn("nudged order refresh failed",
			logger.NewField("error", err),
		)
	}
}

// Snapshot возвращает последний успешный список активных заказов и время
// его получения. До первого обновления список пуст.
func (t *Task) Snapshot() ([]entities.Order, time.Time) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	orders := make([]entities.Order, len(t.snapshot))
	copy(orders, t.snapshot)
	return orders, t.updatedAt
}
