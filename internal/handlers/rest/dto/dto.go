// Package dto содержит тела запросов и ответов локального управляющего API.
package dto

import "time"

type Error struct {
	Message string `json:"message"`
}

type Rider struct {
	RiderID       string `json:"riderId"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	VehicleType   string `json:"vehicleType,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty"`
	Status        string `json:"status,omitempty"`
}

type Session struct {
	State string `json:"state"`
	Rider *Rider `json:"rider,omitempty"`
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Password      string `json:"password"`
	VehicleType   string `json:"vehicleType"`
	VehicleNumber string `json:"vehicleNumber"`
}

type ProfileUpdateRequest struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	VehicleType   *string `json:"vehicleType,omitempty"`
	VehicleNumber *string `json:"vehicleNumber,omitempty"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type OrderItem struct {
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
	Price    float64     `json:"price"`
	SubItems []OrderItem `json:"items,omitempty"`
}

type Order struct {
	ID            string      `json:"id"`
	Customer      Customer    `json:"customer"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	PaymentStatus string      `json:"paymentStatus,omitempty"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	Status        string      `json:"status"`
	StatusLabel   string      `json:"statusLabel"`
	StatusColor   string      `json:"statusColor"`
	Distance      string      `json:"distance,omitempty"`
	RiderEarnings float64     `json:"riderEarnings"`
	CreatedAt     *time.Time  `json:"createdAt,omitempty"`
	DeliveredAt   *time.Time  `json:"deliveredAt,omitempty"`
}

type OrdersResponse struct {
	Orders []Order `json:"orders"`
	Count  int     `json:"count"`
}
