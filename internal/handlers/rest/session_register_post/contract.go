//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_register_post_test
package session_register_post

import (
	"context"

	"rider/internal/entities"
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
	Register(ctx context.Context, reg entities.RiderRegistration) error
	CurrentUser() *entities.Rider
}
