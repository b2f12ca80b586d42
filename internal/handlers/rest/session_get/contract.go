//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_get_test
package session_get

import (
	"rider/internal/entities"
	"rider/internal/service/auth"
	"rider/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	State() auth.State
	CurrentUser() *entities.Rider
}
