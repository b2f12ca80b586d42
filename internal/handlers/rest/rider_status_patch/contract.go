//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_status_patch_test
package rider_status_patch

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
	SetStatus(ctx context.Context, riderID string, status entities.RiderStatusType) error
}
