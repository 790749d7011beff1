package drone_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid drone id")
		return
	}

	var droneUpdateDTO dto.DroneUpdate
	err = json.NewDecoder(r.Body).Decode(&droneUpdateDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	droneModifyEntity := entities.DroneModify{
		ID:           &id,
		Code:         droneUpdateDTO.DroneID,
		BatteryLevel: droneUpdateDTO.BatteryLevel,
		MaxPayload:   droneUpdateDTO.MaxPayload,
	}
	if droneUpdateDTO.Status != nil {
		statusType := entities.DroneStatusType(*droneUpdateDTO.Status)
		droneModifyEntity.Status = &statusType
	}
	if droneUpdateDTO.CurrentLocation != nil {
		droneModifyEntity.Location = &entities.GeoPoint{
			Latitude:  droneUpdateDTO.CurrentLocation.Latitude,
			Longitude: droneUpdateDTO.CurrentLocation.Longitude,
		}
	}
	if droneUpdateDTO.MaintenanceSchedule != nil {
		droneModifyEntity.LastMaintenance = droneUpdateDTO.MaintenanceSchedule.LastMaintenance
		droneModifyEntity.NextMaintenance = droneUpdateDTO.MaintenanceSchedule.NextMaintenance
	}

	droneEntity, err := h.service.UpdateDrone(r.Context(), droneModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, drone.ErrMissingRequiredFields),
			errors.Is(err, drone.ErrInvalidDroneID),
			errors.Is(err, drone.ErrInvalidCode),
			errors.Is(err, drone.ErrInvalidStatus),
			errors.Is(err, drone.ErrInvalidBatteryLevel),
			errors.Is(err, drone.ErrInvalidMaxPayload),
			errors.Is(err, drone.ErrInvalidLocation):
			h.writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, drone.ErrDroneNotFound):
			h.writeError(w, http.StatusNotFound, "Drone not found")
		case errors.Is(err, drone.ErrConflict):
			h.writeError(w, http.StatusConflict, err.Error())
		default:
			h.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response := toDroneDTO(*droneEntity)

	w.Header().Set("Content-Type", "application/json")
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
