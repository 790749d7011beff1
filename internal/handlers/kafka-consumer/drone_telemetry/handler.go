package drone_telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"fleet/internal/entities"
	droneservice "fleet/internal/service/drone"
	"fleet/pkg/logger"
)

// telemetryEvent это сообщение из топика drone.telemetry, его шлют сами борта.
type telemetryEvent struct {
	DroneID      string `json:"droneId"`
	BatteryLevel *int   `json:"batteryLevel"`
	Location     *struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"currentLocation"`
}

type Handler struct {
	droneService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, droneService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		droneService:             droneService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("drone.telemetry: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("drone.telemetry: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event telemetryEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("drone.telemetry handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("drone", event.DroneID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("drone.telemetry processing")

	telemetry := entities.DroneTelemetry{
		Code:         event.DroneID,
		BatteryLevel: event.BatteryLevel,
	}
	if event.Location != nil {
		telemetry.Location = &entities.GeoPoint{
			Latitude:  event.Location.Latitude,
			Longitude: event.Location.Longitude,
		}
	}

	drone, err := h.droneService.ApplyTelemetry(ctx, telemetry)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("drone.telemetry handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, droneservice.ErrDroneNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("drone.telemetry handler unknown drone")

		case errors.Is(err, droneservice.ErrInvalidBatteryLevel),
			errors.Is(err, droneservice.ErrInvalidLocation):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("drone.telemetry handler rejected telemetry values")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("drone.telemetry handler failed to process telemetry")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("drone", drone.Code),
		logger.NewField("battery", drone.BatteryLevel),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("drone.telemetry: processed")

	sess.MarkMessage(message, "")
	return false
}
