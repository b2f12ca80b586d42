package local

import (
	"context"
	"fmt"
	"sync"

	"rider/internal/entities"
	"rider/pkg/logger"
)

var ErrUnknownChannel = fmt.Errorf("unknown notification channel")

// Notifier отображает локальные уведомления записью в структурированный лог.
// Каналы регистрируются идемпотентно: повторная регистрация существующего
// канала не меняет его параметры и не считается ошибкой.
type Notifier struct {
	log adapterLogger

	mu       sync.Mutex
	channels map[string]entities.NotificationChannel
}

func New(log adapterLogger) *Notifier {
	return &Notifier{
		log:      log,
		channels: make(map[string]entities.NotificationChannel),
	}
}

func (n *Notifier) RequestPermission(context.Context) error {
	return nil
}

func (n *Notifier) EnsureChannel(_ context.Context, channel entities.NotificationChannel) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.channels[channel.ID]; ok {
		return nil
	}
	n.channels[channel.ID] = channel

	n.log.Info("notification channel registered",
		logger.NewField("channel", channel.ID),
		logger.NewField("name", channel.Name),
	)
	return nil
}

func (n *Notifier) Display(_ context.Context, notification entities.LocalNotification) error {
	n.mu.Lock()
	_, ok := n.channels[notification.ChannelID]
	n.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownChannel, notification.ChannelID)
	}

	n.log.Info("notification displayed",
		logger.NewField("channel", notification.ChannelID),
		logger.NewField("title", notification.Title),
		logger.NewField("body", notification.Body),
		logger.NewField("data", notification.Data),
	)
	displayedTotal.WithLabelValues(notification.ChannelID).Inc()

	return nil
}

// Channel возвращает зарегистрированный канал по идентификатору.
func (n *Notifier) Channel(id string) (entities.NotificationChannel, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	channel, ok := n.channels[id]
	return channel, ok
}
