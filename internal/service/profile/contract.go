//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_test
package profile

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
	Profile(ctx context.Context, riderID string) (entities.Rider, error)
	UpdateProfile(ctx context.Context, riderID string, modify entities.RiderModify) (entities.Rider, error)
	UpdateRiderStatus(ctx context.Context, riderID string, status entities.RiderStatusType) error
}

type Storage interface {
	SaveRider(ctx context.Context, rider entities.Rider) error
	LoadSession(ctx context.Context) (entities.Rider, string, error)
}
