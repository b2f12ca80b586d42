package entities

import "time"

type Order struct {
	ID            string
	Customer      Customer
	Items         []OrderItem
	TotalAmount   float64
	PaymentStatus string
	PaymentMethod string
	Status        OrderStatusType
	Distance      string
	RiderEarnings float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeliveredAt   time.Time
}

type Customer struct {
	Name    string
	Address string
	Phone   string
}

type OrderItem struct {
	Name     string
	Quantity int
	Price    float64
	SubItems []OrderItem
}

type OrderStatusType string

const (
	// OrderAssigned — заказ назначен райдеру, но ещё не принят ("inProgress" на сервере).
	OrderAssigned  OrderStatusType = "inProgress"
	OrderReady     OrderStatusType = "ready"
	OrderAccepted  OrderStatusType = "accepted"
	OrderPickedUp  OrderStatusType = "picked_up"
	OrderInTransit OrderStatusType = "in_transit"
	OrderDelivered OrderStatusType = "delivered"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Label возвращает человекочитаемое название статуса.
func (s OrderStatusType) Label() string {
	switch s {
	case OrderAssigned:
		return "In Progress"
	case OrderReady:
		return "Ready"
	case OrderAccepted:
		return "Accepted"
	case OrderPickedUp:
		return "Picked Up"
	case OrderInTransit:
		return "In Transit"
	case OrderDelivered:
		return "Delivered"
	}
	return string(s)
}

// Color возвращает цвет бейджа статуса для слоя представления.
func (s OrderStatusType) Color() string {
	switch s {
	case OrderAccepted:
		return "#FFB800"
	case OrderPickedUp:
		return "#2D7A4F"
	case OrderInTransit:
		return "#3498DB"
	case OrderDelivered:
		return "#27AE60"
	case OrderAssigned, OrderReady:
		return "#95A5A6"
	}
	return "#95A5A6"
}
