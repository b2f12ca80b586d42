//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_put_test
package profile_put

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

type Auth interface {
	CurrentUser() *entities.Rider
}

type Service interface {
	Update(ctx context.Context, riderID string, modify entities.RiderModify) (entities.Rider, error)
}
