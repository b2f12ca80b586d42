package entities

// RemoteMessage — входящее push-сообщение от провайдера доставки уведомлений.
type RemoteMessage struct {
	Notification MessageNotification
	Data         map[string]string
}

type MessageNotification struct {
	Title string
	Body  string
}

// NotificationChannel — группа локальных уведомлений на уровне ОС.
type NotificationChannel struct {
	ID         string
	Name       string
	Importance int
	Sound      string
	Vibration  bool
}

// LocalNotification — локальное уведомление, готовое к отображению.
type LocalNotification struct {
	ChannelID string
	Title     string
	Body      string
	Data      map[string]string
}
