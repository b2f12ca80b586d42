package session_get

import (
	"encoding/json"
	"net/http"

	"rider/internal/handlers/rest/dto"
	"rider/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session := dto.Session{
		State: string(h.service.State()),
	}
	if current := h.service.CurrentUser(); current != nil {
		rider := dto.FromRider(*current)
		session.Rider = &rider
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(session)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
