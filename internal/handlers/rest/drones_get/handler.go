package drones_get

import (
	"encoding/json"
	"net/http"

	"fleet/internal/entities"
	"fleet/internal/generated/dto"
	"fleet/pkg/logger"
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
	droneEntities, err := h.service.GetDrones(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		encodeErr := json.NewEncoder(w).Encode(dto.Error{Error: err.Error()})
		if encodeErr != nil {
			h.log.With(
				logger.NewField("error", encodeErr),
			).Error("encode JSON response")
		}
		return
	}

	response := make([]dto.Drone, 0, len(droneEntities))
	for _, droneEntity := range droneEntities {
		response = append(response, toDroneDTO(droneEntity))
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDroneDTO(droneEntity entities.Drone) dto.Drone {
	droneDTO := dto.Drone{
		ID:           droneEntity.ID,
		DroneID:      droneEntity.Code,
		Status:       droneEntity.Status.String(),
		BatteryLevel: droneEntity.BatteryLevel,
		MaxPayload:   droneEntity.MaxPayload,
		CreatedAt:    droneEntity.CreatedAt,
		UpdatedAt:    droneEntity.UpdatedAt,
	}
	if droneEntity.Location != nil {
		droneDTO.CurrentLocation = &dto.GeoPoint{
			Latitude:  droneEntity.Location.Latitude,
			Longitude: droneEntity.Location.Longitude,
		}
	}
	if droneEntity.LastMaintenance != nil || droneEntity.NextMaintenance != nil {
		droneDTO.MaintenanceSchedule = &dto.MaintenanceSchedule{
			LastMaintenance: droneEntity.LastMaintenance,
			NextMaintenance: droneEntity.NextMaintenance,
		}
	}
	return droneDTO
}
