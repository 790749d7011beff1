//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=drone_test
package drone

import (
	"context"

	"fleet/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, droneModifyEntity entities.DroneModify) (*entities.Drone, error)
	GetByID(ctx context.Context, id int64) (*entities.Drone, error)
	GetByCode(ctx context.Context, code string) (*entities.Drone, error)
	GetAll(ctx context.Context) ([]entities.Drone, error)
	Update(ctx context.Context, droneModifyEntity entities.DroneModify) (*entities.Drone, error)
	Delete(ctx context.Context, id int64) error

	UpdateStatusWhereCurrent(ctx context.Context, id int64, current, next entities.DroneStatusType) (int64, error)
	UpdateMaintenanceWhereDue(ctx context.Context) (int64, error)
}
