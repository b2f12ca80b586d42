package webhook

import "rider/internal/entities"

type notificationDTO struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type messageDTO struct {
	Notification notificationDTO   `json:"notification"`
	Data         map[string]string `json:"data"`
}

type tokenDTO struct {
	Token string `json:"token"`
}

func toDomainMessage(dto messageDTO) entities.RemoteMessage {
	return entities.RemoteMessage{
		Notification: entities.MessageNotification{
			Title: dto.Notification.Title,
			Body:  dto.Notification.Body,
		},
		Data: dto.Data,
	}
}
