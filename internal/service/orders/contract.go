//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_test
package orders

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

type API interface {
	AssignedOrders(ctx context.Context, riderID string) ([]entities.Order, error)
	ReadyOrders(ctx context.Context, riderID string) ([]entities.Order, error)
	OrderHistory(ctx context.Context, riderID string) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error)
}
