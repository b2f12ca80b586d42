//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"rider/internal/entities"
	"rider/pkg/logger"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Storage interface {
	SaveSession(ctx context.Context, rider entities.Rider, token string) error
	SaveRider(ctx context.Context, rider entities.Rider) error
	LoadSession(ctx context.Context) (entities.Rider, string, error)
	Clear(ctx context.Context) error
}

type API interface {
	Login(ctx context.Context, phone, password string) (entities.Rider, string, error)
	Register(ctx context.Context, reg entities.RiderRegistration) (entities.Rider, string, error)
}

// TokenSyncer дергается после успешного входа, чтобы зарегистрировать
// push-токен устройства за вошедшим райдером.
type TokenSyncer interface {
	SyncToken(ctx context.Context)
}
