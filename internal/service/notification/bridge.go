package notification

import (
	"context"
	"sync"
	"time"

	"rider/internal/entities"
	"rider/pkg/logger"
	retrierconfig "rider/pkg/retrier"
	"rider/pkg/retrier/backoff_adapter"
)

const (
	channelID   = "orders_channel"
	channelName = "Order Notifications"

	defaultTitle = "New Order"
	defaultBody  = "You have a new order assignment"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Callback func(msg entities.RemoteMessage)

// Bridge связывает провайдера push-сообщений со слоем отображения локальных
// уведомлений и хранилищем сессии. Вся функциональность вспомогательная:
// любой сбой логируется и гасится, до вызывающего кода ошибки не доходят.
type Bridge struct {
	log       serviceLogger
	messaging Messaging
	notifier  Notifier
	storage   Storage
	api       API
	retrier   retrier

	mu        sync.Mutex
	listening bool
	unsubs    []func()
	callback  Callback
}

func New(log serviceLogger, messaging Messaging, notifier Notifier, storage Storage, api API) *Bridge {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil,
	}

	return &Bridge{
		log:       log,
		messaging: messaging,
		notifier:  notifier,
		storage:   storage,
		api:       api,
		retrier:   backoff_adapter.New(retryConfig),
	}
}

// SetOnNotificationCallback задаёт единственный внешний приёмник входящих
// сообщений. Он получает сообщение независимо от пути доставки:
// передний план, открытие из фона или холодный старт.
func (b *Bridge) SetOnNotificationCallback(fn Callback) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.callback = fn
}

// RequestPermission запрашивает разрешение на уведомления. Отказ —
// терминальное и не фатальное состояние: никаких дальнейших действий.
func (b *Bridge) RequestPermission(ctx context.Context) {
	granted, err := b.messaging.RequestPermission(ctx)
	if err != nil {
		b.log.Error("notification permission request failed",
			logger.NewField("error", err),
		)
		return
	}
	if !granted {
		b.log.Info("notification permission denied")
		return
	}

	// Runtime-разрешение слоя отображения запрашивается только после
	// согласия провайдера; его сбой не блокирует синхронизацию токена.
	if err := b.notifier.RequestPermission(ctx); err != nil {
		b.log.Warn("notifier runtime permission request failed",
			logger.NewField("error", err),
		)
	}

	b.SyncToken(ctx)
}

// SyncToken получает текущий токен устройства, сохраняет его локально и,
// только при активной сессии, регистрирует на сервере. Идемпотентен:
// повторный вызов с тем же токеном даёт то же состояние сервера.
func (b *Bridge) SyncToken(ctx context.Context) {
	token, err := b.messaging.Token(ctx)
	if err != nil {
		b.log.Error("failed to obtain push token",
			logger.NewField("error", err),
		)
		return
	}
	if token == "" {
		return
	}

	if err := b.storage.SavePushToken(ctx, token); err != nil {
		b.log.Error("failed to persist push token",
			logger.NewField("error", err),
		)
		return
	}

	rider, _, err := b.storage.LoadSession(ctx)
	if err != nil || !rider.HasIdentity() {
		b.log.Debug("no active session, push token kept locally")
		return
	}
	riderID := rider.Normalized().RiderID

	err = b.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return b.api.RegisterPushToken(ctx, riderID, token)
	})
	if err != nil {
		b.log.Error("failed to register push token on server",
			logger.NewField("riderId", riderID),
			logger.NewField("error", err),
		)
		return
	}

	b.log.Info("push token registered",
		logger.NewField("riderId", riderID),
	)
}

// Listen регистрирует слушателей провайдера ровно один раз и проверяет
// сообщение холодного старта. Повторный вызов без Unlisten — no-op:
// дублирование слушателей удваивало бы каждое входящее сообщение.
func (b *Bridge) Listen(ctx context.Context) {
	b.mu.Lock()
	if b.listening {
		b.mu.Unlock()
		b.log.Debug("notification listeners already registered")
		return
	}
	b.listening = true
	b.unsubs = []func(){
		b.messaging.OnMessage(b.handleForeground),
		b.messaging.OnNotificationOpened(b.deliver),
		b.messaging.OnTokenRefresh(b.handleTokenRefresh),
	}
	b.mu.Unlock()

	initial, err := b.messaging.InitialNotification(ctx)
	if err != nil {
		b.log.Warn("failed to check launch notification",
			logger.NewField("error", err),
		)
	} else if initial != nil {
		b.deliver(*initial)
	}

	b.log.Info("notification listeners registered")
}

// Unlisten снимает всех слушателей и сбрасывает защиту от повторной
// регистрации. Безопасен, когда слушателей нет.
func (b *Bridge) Unlisten() {
	b.mu.Lock()
	unsubs := b.unsubs
	b.unsubs = nil
	b.listening = false
	b.mu.Unlock()

	for _, unsub := range unsubs {
		unsub()
	}

	b.log.Info("notification listeners unregistered")
}

// DisplayNotification гарантирует существование канала и отображает
// локальное уведомление. Заголовок и текст берутся по цепочке:
// явное уведомление → data-поля → фиксированные значения по умолчанию.
func (b *Bridge) DisplayNotification(ctx context.Context, msg entities.RemoteMessage) {
	channel := entities.NotificationChannel{
		ID:         channelID,
		Name:       channelName,
		Importance: 4,
		Sound:      "default",
		Vibration:  true,
	}
	if err := b.notifier.EnsureChannel(ctx, channel); err != nil {
		b.log.Error("failed to ensure notification channel",
			logger.NewField("channel", channelID),
			logger.NewField("error", err),
		)
		return
	}

	title := msg.Notification.Title
	if title == "" {
		title = msg.Data["title"]
	}
	if title == "" {
		title = defaultTitle
	}

	body := msg.Notification.Body
	if body == "" {
		body = msg.Data["body"]
	}
	if body == "" {
		body = defaultBody
	}

	err := b.notifier.Display(ctx, entities.LocalNotification{
		ChannelID: channelID,
		Title:     title,
		Body:      body,
		Data:      msg.Data,
	})
	if err != nil {
		b.log.Error("failed to display notification",
			logger.NewField("error", err),
		)
	}
}

func (b *Bridge) handleForeground(msg entities.RemoteMessage) {
	b.DisplayNotification(context.Background(), msg)
	b.deliver(msg)
}

func (b *Bridge) handleTokenRefresh(string) {
	b.SyncToken(context.Background())
}

func (b *Bridge) deliver(msg entities.RemoteMessage) {
	b.mu.Lock()
	callback := b.callback
	b.mu.Unlock()

	if callback != nil {
		callback(msg)
	}
}
