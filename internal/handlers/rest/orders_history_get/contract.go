//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_history_get_test
package orders_history_get

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
	History(ctx context.Context, riderID string) ([]entities.Order, error)
}
