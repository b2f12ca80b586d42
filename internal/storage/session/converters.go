package session

import "rider/internal/entities"

// sessionRecord — сериализуемая форма записи сессии. Поле id сохраняется
// рядом с riderId, чтобы нормализация при восстановлении могла подставить
// альтернативный идентификатор.
type sessionRecord struct {
	RiderID       string `json:"riderId,omitempty"`
	ID            string `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	VehicleType   string `json:"vehicleType,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty"`
	Status        string `json:"status,omitempty"`
}

func toRecord(rider entities.Rider) sessionRecord {
	return sessionRecord{
		RiderID:       rider.RiderID,
		ID:            rider.ID,
		Name:          rider.Name,
		Phone:         rider.Phone,
		Email:         rider.Email,
		VehicleType:   rider.VehicleType,
		VehicleNumber: rider.VehicleNumber,
		Status:        rider.Status.String(),
	}
}

func toDomain(rec sessionRecord) entities.Rider {
	return entities.Rider{
		RiderID:       rec.RiderID,
		ID:            rec.ID,
		Name:          rec.Name,
		Phone:         rec.Phone,
		Email:         rec.Email,
		VehicleType:   rec.VehicleType,
		VehicleNumber: rec.VehicleNumber,
		Status:        entities.RiderStatusType(rec.Status),
	}
}
