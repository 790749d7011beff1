//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"fleet/internal/handlers/tasks/maintenance_sweep"
	"fleet/internal/pkg/config"
	droneRepo "fleet/internal/repository/drone"
	orderRepo "fleet/internal/repository/order"
	droneService "fleet/internal/service/drone"
	orderService "fleet/internal/service/order"
	"fleet/pkg/logger"
	"fleet/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSweepInterval,

		provideDroneRepository,
		provideOrderRepository,

		provideServiceDrone,
		provideServiceOrder,

		provideMaintenanceSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDrone), new(*droneService.Drone)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),

		wire.Bind(new(droneService.Repository), new(*droneRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.DroneService), new(*droneService.Drone)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(maintenance_sweep.Service), new(*droneService.Drone)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-drone-telemetry)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideDroneRepository,

		provideServiceDrone,

		wire.Bind(new(droneService.Repository), new(*droneRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
