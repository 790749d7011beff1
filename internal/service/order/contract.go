//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"fleet/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
}

type DroneService interface {
	AcquireForDelivery(ctx context.Context, id int64) error
	Release(ctx context.Context, id int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
