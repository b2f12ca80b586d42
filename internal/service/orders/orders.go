package orders

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"rider/internal/entities"
	"rider/pkg/logger"
)

const (
	earningsShare    = 0.10
	earningsFallback = 20
)

// Service отвечает за список заказов райдера: активные, история и смена
// статуса. Данные всегда берутся с сервера, локального кэша заказов нет.
type Service struct {
	log serviceLogger
	api API
}

func New(log serviceLogger, api API) *Service {
	return &Service{
		log: log,
		api: api,
	}
}

// ActiveOrders объединяет назначенные и готовые к выдаче заказы.
// Назначенные идут первыми; дубликаты по идентификатору отбрасываются.
func (s *Service) ActiveOrders(ctx context.Context, riderID string) ([]entities.Order, error) {
	if riderID == "" {
		return nil, ErrEmptyRiderID
	}

	assigned, err := s.api.AssignedOrders(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("get assigned orders: %w", err)
	}

	ready, err := s.api.ReadyOrders(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("get ready orders: %w", err)
	}

	seen := make(map[string]struct{}, len(assigned)+len(ready))
	merged := make([]entities.Order, 0, len(assigned)+len(ready))
	for _, order := range append(assigned, ready...) {
		if _, ok := seen[order.ID]; ok {
			continue
		}
		seen[order.ID] = struct{}{}
		merged = append(merged, order)
	}

	s.log.Debug("active orders fetched",
		logger.NewField("riderId", riderID),
		logger.NewField("count", len(merged)),
	)

	return merged, nil
}

// History возвращает доставленные заказы, новые первыми. Для заказов без
// заработка подставляется доля от суммы, а при нулевой сумме — фиксированная
// величина: сервер исторически не хранил это поле для старых записей.
func (s *Service) History(ctx context.Context, riderID string) ([]entities.Order, error) {
	if riderID == "" {
		return nil, ErrEmptyRiderID
	}

	history, err := s.api.OrderHistory(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("get order history: %w", err)
	}

	for i := range history {
		if history[i].RiderEarnings == 0 {
			history[i].RiderEarnings = estimateEarnings(history[i].TotalAmount)
		}
	}

	sort.SliceStable(history, func(i, j int) bool {
		return completedAt(history[i]).After(completedAt(history[j]))
	})

	return history, nil
}

// UpdateStatus переводит заказ в один из статусов жизненного цикла доставки.
// Множество допустимых статусов закрыто, остальные отклоняются до обращения
// к серверу.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error) {
	if orderID == "" {
		return nil, ErrEmptyOrderID
	}
	if !isUpdatableStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStatus, status)
	}

	order, err := s.api.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	s.log.Info("order status updated",
		logger.NewField("orderId", orderID),
		logger.NewField("status", status.String()),
	)

	return order, nil
}

func isUpdatableStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderAccepted, entities.OrderPickedUp, entities.OrderInTransit, entities.OrderDelivered:
		return true
	}
	return false
}

func estimateEarnings(total float64) float64 {
	if total > 0 {
		// Доля от мелкого чека может округлиться до нуля,
		// тогда действует минимальная ставка.
		if share := math.Round(total * earningsShare); share > 0 {
			return share
		}
	}
	return earningsFallback
}

func completedAt(order entities.Order) time.Time {
	if !order.DeliveredAt.IsZero() {
		return order.DeliveredAt
	}
	return order.CreatedAt
}
