package rest

import (
	"errors"
	"fmt"
)

// Сентинелы для классификации ошибок вызова удалённого API.
// Таймаут отличим от сетевой ошибки и от бизнес-отказа сервера.
var (
	ErrTimeout = errors.New("request timeout")
	ErrNetwork = errors.New("network failure")
	ErrServer  = errors.New("server rejected request")
)

type ErrorKind string

const (
	KindTimeout ErrorKind = "timeout"
	KindNetwork ErrorKind = "network"
	KindServer  ErrorKind = "server"
)

// APIError — размеченный результат неуспешного вызова API.
// Message содержит текст сервера, если тот его прислал.
type APIError struct {
	Kind    ErrorKind
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Kind {
	case KindTimeout:
		return ErrTimeout
	case KindNetwork:
		return ErrNetwork
	case KindServer:
		return ErrServer
	}
	return nil
}

// ServerMessage возвращает текст бизнес-отказа сервера, если ошибка им является.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Kind == KindServer {
		return apiErr.Message, true
	}
	return "", false
}
