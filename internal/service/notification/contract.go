//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"rider/internal/entities"
	"rider/pkg/logger"
)

type serviceLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Messaging — внешний провайдер push-сообщений. Подписки возвращают
// функцию отписки; InitialNotification отдаёт сообщение, с которым
// процесс был запущен из выгруженного состояния, если оно было.
type Messaging interface {
	RequestPermission(ctx context.Context) (bool, error)
	Token(ctx context.Context) (string, error)
	OnMessage(fn func(msg entities.RemoteMessage)) (unsubscribe func())
	OnNotificationOpened(fn func(msg entities.RemoteMessage)) (unsubscribe func())
	OnTokenRefresh(fn func(token string)) (unsubscribe func())
	InitialNotification(ctx context.Context) (*entities.RemoteMessage, error)
}

// Notifier — слой отображения локальных уведомлений.
// EnsureChannel идемпотентен: повторное создание канала не ошибка.
type Notifier interface {
	RequestPermission(ctx context.Context) error
	EnsureChannel(ctx context.Context, channel entities.NotificationChannel) error
	Display(ctx context.Context, notification entities.LocalNotification) error
}

type Storage interface {
	SavePushToken(ctx context.Context, token string) error
	LoadSession(ctx context.Context) (entities.Rider, string, error)
}

type API interface {
	RegisterPushToken(ctx context.Context, riderID, token string) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
