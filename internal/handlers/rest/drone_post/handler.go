package drone_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/entities"
	"fleet/internal/generated/dto"
	"fleet/internal/service/drone"
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
	var droneCreateDTO dto.DroneCreate
	err := json.NewDecoder(r.Body).Decode(&droneCreateDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	droneModifyEntity := entities.DroneModify{
		Code:         &droneCreateDTO.DroneID,
		BatteryLevel: &droneCreateDTO.BatteryLevel,
		MaxPayload:   &droneCreateDTO.MaxPayload,
	}
	if droneCreateDTO.Status != nil {
		statusType := entities.DroneStatusType(*droneCreateDTO.Status)
		droneModifyEntity.Status = &statusType
	}
	if droneCreateDTO.CurrentLocation != nil {
		droneModifyEntity.Location = &entities.GeoPoint{
			Latitude:  droneCreateDTO.CurrentLocation.Latitude,
			Longitude: droneCreateDTO.CurrentLocation.Longitude,
		}
	}
	if droneCreateDTO.MaintenanceSchedule != nil {
		droneModifyEntity.LastMaintenance = droneCreateDTO.MaintenanceSchedule.LastMaintenance
		droneModifyEntity.NextMaintenance = droneCreateDTO.MaintenanceSchedule.NextMaintenance
	}

	droneEntity, err := h.service.CreateDrone(r.Context(), droneModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, drone.ErrMissingRequiredFields),
			errors.Is(err, drone.ErrInvalidCode),
			errors.Is(err, drone.ErrInvalidStatus),
			errors.Is(err, drone.ErrInvalidBatteryLevel),
			errors.Is(err, drone.ErrInvalidMaxPayload),
			errors.Is(err, drone.ErrInvalidLocation):
			h.writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, drone.ErrConflict):
			h.writeError(w, http.StatusConflict, err.Error())
		default:
			h.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response := toDroneDTO(*droneEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(dto.Error{Error: message})
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
