//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=drone_delete_test
package drone_delete

import (
	"context"

	"fleet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteDrone(ctx context.Context, id int64) error
}
