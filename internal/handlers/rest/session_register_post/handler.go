package session_register_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"rider/internal/entities"
	"rider/internal/gateway/rest"
	"rider/internal/handlers/rest/dto"
	"rider/internal/service/auth"
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
	var registerDTO dto.RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&registerDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reg := entities.RiderRegistration{
		Name:          registerDTO.Name,
		Phone:         registerDTO.Phone,
		Password:      registerDTO.Password,
		VehicleType:   registerDTO.VehicleType,
		VehicleNumber: registerDTO.VehicleNumber,
	}

	err = h.service.Register(r.Context(), reg)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingRequiredFields):
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

	current := h.service.CurrentUser()
	if current == nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusCreated, dto.FromRider(*current))
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
