//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_refresh_test
package order_refresh

import (
	"context"

	"rider/internal/entities"
	"rider/internal/service/auth"
	"rider/pkg/logger"
)

type taskLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Auth interface {
	State() auth.State
	CurrentUser() *entities.Rider
}

type Orders interface {
	ActiveOrders(ctx context.Context, riderID string) ([]entities.Order, error)
}
