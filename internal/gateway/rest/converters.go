package rest

import (
	"time"

	"rider/internal/entities"
)

type riderDTO struct {
	RiderID       string `json:"riderId,omitempty"`
	ID            string `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	VehicleType   string `json:"vehicleType,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty"`
	Status        string `json:"status,omitempty"`
}

type customerDTO struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type orderItemDTO struct {
	Name     string         `json:"name"`
	Quantity int            `json:"quantity"`
	Price    float64        `json:"price"`
	Items    []orderItemDTO `json:"items,omitempty"`
}

type orderDTO struct {
	ID            string         `json:"id"`
	Customer      customerDTO    `json:"customer"`
	Items         []orderItemDTO `json:"items"`
	TotalAmount   float64        `json:"totalAmount"`
	PaymentStatus string         `json:"paymentStatus"`
	PaymentMethod string         `json:"paymentMethod"`
	Status        string         `json:"status"`
	Distance      string         `json:"distance"`
	RiderEarnings float64        `json:"riderEarnings"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeliveredAt   time.Time      `json:"deliveredAt"`
}

type authDataDTO struct {
	Rider riderDTO `json:"rider"`
	Token string   `json:"token"`
}

type ordersDataDTO struct {
	Orders []orderDTO `json:"orders"`
	Count  int        `json:"count"`
}

type orderDataDTO struct {
	Order *orderDTO `json:"order"`
}

type profileDataDTO struct {
	Rider riderDTO `json:"rider"`
}

func toDomainRider(dto riderDTO) entities.Rider {
	return entities.Rider{
		RiderID:       dto.RiderID,
		ID:            dto.ID,
		Name:          dto.Name,
		Phone:         dto.Phone,
		Email:         dto.Email,
		VehicleType:   dto.VehicleType,
		VehicleNumber: dto.VehicleNumber,
		Status:        entities.RiderStatusType(dto.Status),
	}
}

func toDomainOrder(dto orderDTO) entities.Order {
	return entities.Order{
		ID:            dto.ID,
		Customer:      entities.Customer(dto.Customer),
		Items:         toDomainItems(dto.Items),
		TotalAmount:   dto.TotalAmount,
		PaymentStatus: dto.PaymentStatus,
		PaymentMethod: dto.PaymentMethod,
		Status:        entities.OrderStatusType(dto.Status),
		Distance:      dto.Distance,
		RiderEarnings: dto.RiderEarnings,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
		DeliveredAt:   dto.DeliveredAt,
	}
}

func toDomainItems(dtos []orderItemDTO) []entities.OrderItem {
	if len(dtos) == 0 {
		return nil
	}
	items := make([]entities.OrderItem, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, entities.OrderItem{
			Name:     dto.Name,
			Quantity: dto.Quantity,
			Price:    dto.Price,
			SubItems: toDomainItems(dto.Items),
		})
	}
	return items
}

func toDomainOrders(dtos []orderDTO) []entities.Order {
	orders := make([]entities.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, toDomainOrder(dto))
	}
	return orders
}
