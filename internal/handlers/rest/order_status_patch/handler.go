package order_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"rider/internal/entities"
	"rider/internal/gateway/rest"
	"rider/internal/handlers/rest/dto"
	"rider/internal/service/orders"
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
	orderID := mux.Vars(r)["id"]

	var statusDTO dto.StatusUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), orderID, entities.OrderStatusType(statusDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrEmptyOrderID),
			errors.Is(err, orders.ErrUnsupportedStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rest.ErrServer):
			message, _ := rest.ServerMessage(err)
			h.writeJSON(w, http.StatusUnprocessableEntity, dto.Error{Message: message})
		case errors.Is(err, rest.ErrTimeout):
			w.WriteHeader(http.StatusGatewayTimeout)
		case errors.Is(err, rest.ErrNetwork):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// Сервер может подтвердить смену статуса без тела заказа в ответе.
	if order == nil {
		w.WriteHeader(http.StatusBadGateway)
		return
	}

	h.writeJSON(w, http.StatusOK, dto.FromOrder(*order))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
