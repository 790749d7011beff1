package drone_delete

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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

	err = h.service.DeleteDrone(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, drone.ErrInvalidDroneID):
			h.writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, drone.ErrDroneNotFound):
			h.writeError(w, http.StatusNotFound, "Drone not found")
		default:
			h.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response := dto.Message{
		Message: "Drone deleted",
	}

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
