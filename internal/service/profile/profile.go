package profile

import (
	"context"
	"fmt"

	"rider/internal/entities"
	"rider/pkg/logger"
)

// Service работает с профилем райдера и его рабочим статусом. Сервер —
// источник истины; локальная запись сессии обновляется вслед за успешным
// ответом, чтобы восстановление после перезапуска видело свежие данные.
type Service struct {
	log     serviceLogger
	api     API
	storage Storage
}

func New(log serviceLogger, api API, storage Storage) *Service {
	return &Service{
		log:     log,
		api:     api,
		storage: storage,
	}
}

func (s *Service) Get(ctx context.Context, riderID string) (entities.Rider, error) {
	if riderID == "" {
		return entities.Rider{}, ErrEmptyRiderID
	}

	rider, err := s.api.Profile(ctx, riderID)
	if err != nil {
		return entities.Rider{}, fmt.Errorf("get profile: %w", err)
	}

	return rider.Normalized(), nil
}

// Update применяет частичное изменение профиля и переписывает локальную
// запись сессии ответом сервера. Сбой локальной записи не считается ошибкой
// операции: сервер уже принял изменение.
func (s *Service) Update(ctx context.Context, riderID string, modify entities.RiderModify) (entities.Rider, error) {
	if riderID == "" {
		return entities.Rider{}, ErrEmptyRiderID
	}
	if isEmptyModify(modify) {
		return entities.Rider{}, ErrNoFieldsToUpdate
	}

	rider, err := s.api.UpdateProfile(ctx, riderID, modify)
	if err != nil {
		return entities.Rider{}, fmt.Errorf("update profile: %w", err)
	}
	rider = rider.Normalized()

	if err := s.storage.SaveRider(ctx, rider); err != nil {
		s.log.Warn("failed to refresh stored session after profile update",
			logger.NewField("riderId", riderID),
			logger.NewField("error", err),
		)
	}

	s.log.Info("profile updated",
		logger.NewField("riderId", riderID),
	)

	return rider, nil
}

// SetStatus переключает рабочий статус райдера. Локальная запись сессии
// обновляется по тем же правилам, что и при изменении профиля.
func (s *Service) SetStatus(ctx context.Context, riderID string, status entities.RiderStatusType) error {
	if riderID == "" {
		return ErrEmptyRiderID
	}
	if status != entities.RiderOnline && status != entities.RiderOffline {
		return fmt.Errorf("%w: %q", ErrUnsupportedStatus, status)
	}

	if err := s.api.UpdateRiderStatus(ctx, riderID, status); err != nil {
		return fmt.Errorf("update rider status: %w", err)
	}

	if rider, _, err := s.storage.LoadSession(ctx); err == nil && rider.HasIdentity() {
		rider = rider.Normalized()
		rider.Status = status
		if err := s.storage.SaveRider(ctx, rider); err != nil {
			s.log.Warn("failed to refresh stored session after status change",
				logger.NewField("riderId", riderID),
				logger.NewField("error", err),
			)
		}
	}

	s.log.Info("rider status updated",
		logger.NewField("riderId", riderID),
		logger.NewField("status", status.String()),
	)

	return nil
}

func isEmptyModify(modify entities.RiderModify) bool {
	return modify.Name == nil &&
		modify.Email == nil &&
		modify.VehicleType == nil &&
		modify.VehicleNumber == nil
}
