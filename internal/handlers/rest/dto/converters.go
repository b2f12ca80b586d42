package dto

import (
	"time"

	"rider/internal/entities"
)

func FromRider(rider entities.Rider) Rider {
	return Rider{
		RiderID:       rider.RiderID,
		Name:          rider.Name,
		Phone:         rider.Phone,
		Email:         rider.Email,
		VehicleType:   rider.VehicleType,
		VehicleNumber: rider.VehicleNumber,
		Status:        rider.Status.String(),
	}
}

func FromOrder(order entities.Order) Order {
	return Order{
		ID: order.ID,
		Customer: Customer{
			Name:    order.Customer.Name,
			Address: order.Customer.Address,
			Phone:   order.Customer.Phone,
		},
		Items:         fromOrderItems(order.Items),
		TotalAmount:   order.TotalAmount,
		PaymentStatus: order.PaymentStatus,
		PaymentMethod: order.PaymentMethod,
		Status:        order.Status.String(),
		StatusLabel:   order.Status.Label(),
		StatusColor:   order.Status.Color(),
		Distance:      order.Distance,
		RiderEarnings: order.RiderEarnings,
		CreatedAt:     optionalTime(order.CreatedAt),
		DeliveredAt:   optionalTime(order.DeliveredAt),
	}
}

func FromOrders(orders []entities.Order) OrdersResponse {
	converted := make([]Order, 0, len(orders))
	for _, order := range orders {
		converted = append(converted, FromOrder(order))
	}
	return OrdersResponse{
		Orders: converted,
		Count:  len(converted),
	}
}

func fromOrderItems(items []entities.OrderItem) []OrderItem {
	if len(items) == 0 {
		return nil
	}
	converted := make([]OrderItem, 0, len(items))
	for _, item := range items {
		converted = append(converted, OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			SubItems: fromOrderItems(item.SubItems),
		})
	}
	return converted
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
