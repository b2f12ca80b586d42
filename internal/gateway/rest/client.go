package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"rider/internal/entities"
)

const serviceName = "rider-api"

// Client — шлюз к удалённому rider API. Все вызовы идут на фиксированный
// базовый адрес с ограничением времени на запрос. Ретраев на этом уровне
// нет — решение о повторе принимает вызывающая сторона.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http:    &http.Client{},
	}
}

func (c *Client) Login(ctx context.Context, phone, password string) (entities.Rider, string, error) {
	req := map[string]string{"phone": phone, "password": password}

	var data authDataDTO
	if err := c.call(ctx, "Login", http.MethodPost, "/rider/auth/login", req, &data); err != nil {
		return entities.Rider{}, "", fmt.Errorf("gateway rest, login: %w", err)
	}

	return toDomainRider(data.Rider), data.Token, nil
}

func (c *Client) Register(ctx context.Context, reg entities.RiderRegistration) (entities.Rider, string, error) {
	req := map[string]string{
		"name":          reg.Name,
		"phone":         reg.Phone,
		"password":      reg.Password,
		"vehicleType":   reg.VehicleType,
		"vehicleNumber": reg.VehicleNumber,
	}

	var data authDataDTO
	if err := c.call(ctx, "Register", http.MethodPost, "/rider/auth/register", req, &data); err != nil {
		return entities.Rider{}, "", fmt.Errorf("gateway rest, register: %w", err)
	}

	return toDomainRider(data.Rider), data.Token, nil
}

func (c *Client) AssignedOrders(ctx context.Context, riderID string) ([]entities.Order, error) {
	return c.ordersByStatus(ctx, "AssignedOrders", riderID, entities.OrderAssigned)
}

func (c *Client) ReadyOrders(ctx context.Context, riderID string) ([]entities.Order, error) {
	return c.ordersByStatus(ctx, "ReadyOrders", riderID, entities.OrderReady)
}

func (c *Client) OrderHistory(ctx context.Context, riderID string) ([]entities.Order, error) {
	return c.ordersByStatus(ctx, "OrderHistory", riderID, entities.OrderDelivered)
}

func (c *Client) ordersByStatus(ctx context.Context, method, riderID string, status entities.OrderStatusType) ([]entities.Order, error) {
	path := fmt.Sprintf("/orders?riderId=%s&status=%s", url.QueryEscape(riderID), url.QueryEscape(status.String()))

	var data ordersDataDTO
	if err := c.call(ctx, method, http.MethodGet, path, nil, &data); err != nil {
		return nil, fmt.Errorf("gateway rest, orders %s: %w", status, err)
	}

	return toDomainOrders(data.Orders), nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error) {
	req := map[string]string{"status": status.String()}
	path := fmt.Sprintf("/orders/%s/status", url.PathEscape(orderID))

	var data orderDataDTO
	if err := c.call(ctx, "UpdateOrderStatus", http.MethodPatch, path, req, &data); err != nil {
		return nil, fmt.Errorf("gateway rest, update order %s: %w", orderID, err)
	}

	if data.Order == nil {
		return nil, nil
	}
	order := toDomainOrder(*data.Order)
	return &order, nil
}

func (c *Client) Profile(ctx context.Context, riderID string) (entities.Rider, error) {
	path := fmt.Sprintf("/riders/%s", url.PathEscape(riderID))

	var data profileDataDTO
	if err := c.call(ctx, "Profile", http.MethodGet, path, nil, &data); err != nil {
		return entities.Rider{}, fmt.Errorf("gateway rest, profile: %w", err)
	}

	return toDomainRider(data.Rider), nil
}

func (c *Client) UpdateProfile(ctx context.Context, riderID string, modify entities.RiderModify) (entities.Rider, error) {
	req := map[string]any{}
	if modify.Name != nil {
		req["name"] = *modify.Name
	}
	if modify.Email != nil {
		req["email"] = *modify.Email
	}
	if modify.VehicleType != nil {
		req["vehicleType"] = *modify.VehicleType
	}
	if modify.VehicleNumber != nil {
		req["vehicleNumber"] = *modify.VehicleNumber
	}
	path := fmt.Sprintf("/riders/%s", url.PathEscape(riderID))

	var data profileDataDTO
	if err := c.call(ctx, "UpdateProfile", http.MethodPut, path, req, &data); err != nil {
		return entities.Rider{}, fmt.Errorf("gateway rest, update profile: %w", err)
	}

	return toDomainRider(data.Rider), nil
}

func (c *Client) UpdateRiderStatus(ctx context.Context, riderID string, status entities.RiderStatusType) error {
	req := map[string]string{"status": status.String()}
	path := fmt.Sprintf("/riders/%s/status", url.PathEscape(riderID))

	if err := c.call(ctx, "UpdateRiderStatus", http.MethodPatch, path, req, nil); err != nil {
		return fmt.Errorf("gateway rest, update rider status: %w", err)
	}
	return nil
}

func (c *Client) RegisterPushToken(ctx context.Context, riderID, token string) error {
	req := map[string]string{"riderId": riderID, "fcmToken": token}

	if err := c.call(ctx, "RegisterPushToken", http.MethodPost, "/rider/auth/fcm", req, nil); err != nil {
		return fmt.Errorf("gateway rest, register push token: %w", err)
	}
	return nil
}

// envelope — обёртка каждого ответа удалённого API.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) call(ctx context.Context, method, httpMethod, path string, body, out any) error {
	start := time.Now()
	err := c.do(ctx, httpMethod, path, body, out)
	GatewayRequestDuration.WithLabelValues(serviceName, method, errKind(err)).Observe(time.Since(start).Seconds())
	return err
}

func (c *Client) do(ctx context.Context, httpMethod, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: KindNetwork, Message: err.Error()}
		}
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, c.baseURL+path, reqBody)
	if err != nil {
		return &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransportErr(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	// Не-2xx — отказ сервера независимо от тела: прокси может отдать
	// HTML вместо конверта, и это не сетевая ошибка.
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := env.Message
		if msg == "" {
			msg = "API request failed"
		}
		return &APIError{Kind: KindServer, Message: msg}
	}

	if decodeErr != nil {
		return classifyTransportErr(decodeErr)
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "API request failed"
		}
		return &APIError{Kind: KindServer, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &APIError{Kind: KindNetwork, Message: err.Error()}
		}
	}
	return nil
}

func classifyTransportErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return &APIError{Kind: KindTimeout, Message: "request timeout, check your connection"}
	}
	return &APIError{Kind: KindNetwork, Message: err.Error()}
}

func errKind(err error) string {
	if err == nil {
		return "OK"
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return string(apiErr.Kind)
	}
	return "unknown"
}
