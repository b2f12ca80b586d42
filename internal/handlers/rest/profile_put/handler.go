package profile_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"rider/internal/entities"
	"rider/internal/gateway/rest"
	"rider/internal/handlers/rest/dto"
	"rider/internal/service/profile"
	"rider/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	auth    Auth
	service Service
}

func New(log handlerLogger, auth Auth, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		auth:    auth,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	current := h.auth.CurrentUser()
	if current == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var updateDTO dto.ProfileUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	modify := entities.RiderModify{
		Name:          updateDTO.Name,
		Email:         updateDTO.Email,
		VehicleType:   updateDTO.VehicleType,
		VehicleNumber: updateDTO.VehicleNumber,
	}

	rider, err := h.service.Update(r.Context(), current.RiderID, modify)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrNoFieldsToUpdate):
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

	h.writeJSON(w, http.StatusOK, dto.FromRider(rider))
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
