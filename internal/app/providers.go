package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fleet/internal/handlers/rest/drone_delete"
	"fleet/internal/handlers/rest/drone_get"
	"fleet/internal/handlers/rest/drone_post"
	"fleet/internal/handlers/rest/drone_put"
	"fleet/internal/handlers/rest/drone_status_patch"
	"fleet/internal/handlers/rest/drones_get"
	"fleet/internal/handlers/rest/order_assign_put"
	"fleet/internal/handlers/rest/order_post"
	"fleet/internal/handlers/rest/order_put"
	"fleet/internal/handlers/rest/order_status_put"
	"fleet/internal/handlers/rest/orders_assigned_get"
	"fleet/internal/handlers/rest/orders_by_drone_get"
	"fleet/internal/handlers/rest/orders_by_restaurant_get"
	"fleet/internal/handlers/rest/orders_delivered_get"
	"fleet/internal/handlers/rest/orders_my_get"
	"fleet/internal/handlers/rest/orders_unassigned_get"
	"fleet/internal/handlers/tasks/maintenance_sweep"
	"fleet/internal/pkg/config"
	droneRepo "fleet/internal/repository/drone"
	orderRepo "fleet/internal/repository/order"
	droneService "fleet/internal/service/drone"
	orderService "fleet/internal/service/order"
	"fleet/pkg/background"
	"fleet/pkg/logger"
	"fleet/pkg/querier"
	"fleet/pkg/tx"
)

type (
	SweepInterval time.Duration
)

type Application struct {
	ServiceDrone      ServiceDrone
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceDrone interface {
	drone_post.Service
	drones_get.Service
	drone_get.Service
	drone_put.Service
	drone_status_patch.Service
	drone_delete.Service
}

type ServiceOrder interface {
	order_post.Service
	order_put.Service
	order_status_put.Service
	order_assign_put.Service
	orders_by_restaurant_get.Service
	orders_by_drone_get.Service
	orders_unassigned_get.Service
	orders_assigned_get.Service
	orders_delivered_get.Service
	orders_my_get.Service
}

// KafkaWorkerApp для воркера телеметрии (cmd/worker-drone-telemetry)
type KafkaWorkerApp struct {
	DroneService *droneService.Drone
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDroneRepository(querier *querier.Querier) *droneRepo.Repository {
	return droneRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideServiceDrone(repository droneService.Repository) *droneService.Drone {
	return droneService.New(repository)
}

func provideServiceOrder(
	repository orderService.Repository,
	drones orderService.DroneService,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, drones, txManager)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.MaintenanceSweepInterval)
}

func provideMaintenanceSweepTask(
	log logger.Logger,
	droneService maintenance_sweep.Service,
	interval SweepInterval,
) *maintenance_sweep.MaintenanceSweep {
	return maintenance_sweep.NewMaintenanceSweep(log, droneService, time.Duration(interval))
}

func provideTaskList(
	maintenanceSweepTask *maintenance_sweep.MaintenanceSweep,
) []background.Task {
	return []background.Task{
		maintenanceSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
