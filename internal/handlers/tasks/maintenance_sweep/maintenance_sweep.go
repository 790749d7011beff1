package maintenance_sweep

import (
	"context"
	"time"

	"fleet/pkg/logger"
)

type Service interface {
	SweepMaintenanceDue(ctx context.Context) (int64, error)
}

type MaintenanceSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewMaintenanceSweep(log logger.Logger, service Service, interval time.Duration) *MaintenanceSweep {
	return &MaintenanceSweep{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (m *MaintenanceSweep) TTL() time.Duration {
	return m.interval
}

func (m *MaintenanceSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	rowsAffected, err := m.service.SweepMaintenanceDue(ctxWithTimeout)

	if rowsAffected > 0 {
		m.log.With(
			logger.NewField("grounded_drones", rowsAffected),
		).Info("maintenance sweep")
	}

	return err
}

func (m *MaintenanceSweep) Info() string {
	return "maintenance sweep"
}
