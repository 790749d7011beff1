package drone

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fleet/internal/entities"
	"fleet/internal/repository"
	"fleet/internal/service/drone"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const droneColumns = `id, code, status, battery_level, max_payload, latitude, longitude,
		last_maintenance, next_maintenance, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, droneModifyEntity entities.DroneModify) (*entities.Drone, error) {
	droneModifyModel := FromDomainModify(&droneModifyEntity)

	query := `INSERT INTO drones (code, status, battery_level, max_payload, latitude, longitude,
			last_maintenance, next_maintenance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + droneColumns

	var droneModel DroneDB
	err := r.querier.QueryRow(
		ctx,
		query,
		droneModifyModel.Code,
		droneModifyModel.Status,
		droneModifyModel.BatteryLevel,
		droneModifyModel.MaxPayload,
		droneModifyModel.Latitude,
		droneModifyModel.Longitude,
		droneModifyModel.LastMaintenance,
		droneModifyModel.NextMaintenance,
	).Scan(
		&droneModel.ID,
		&droneModel.Code,
		&droneModel.Status,
		&droneModel.BatteryLevel,
		&droneModel.MaxPayload,
		&droneModel.Latitude,
		&droneModel.Longitude,
		&droneModel.LastMaintenance,
		&droneModel.NextMaintenance,
		&droneModel.CreatedAt,
		&droneModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, drone.ErrConflict
		}
		return nil, fmt.Errorf("unexpected drone repository create error: %w", err)
	}

	return ToDomain(&droneModel), nil
}

func (r *Repository) Update(ctx context.Context, droneModifyEntity entities.DroneModify) (*entities.Drone, error) {
	droneModifyModel := FromDomainModify(&droneModifyEntity)

	builder := qb.
		Update("drones")

	// опциональные поля
	if droneModifyModel.Code != nil {
		builder = builder.Set("code", droneModifyModel.Code)
	}
	if droneModifyModel.Status != nil {
		builder = builder.Set("status", droneModifyModel.Status)
	}
	if droneModifyModel.BatteryLevel != nil {
		builder = builder.Set("battery_level", droneModifyModel.BatteryLevel)
	}
	if droneModifyModel.MaxPayload != nil {
		builder = builder.Set("max_payload", droneModifyModel.MaxPayload)
	}
	if droneModifyModel.Latitude != nil {
		builder = builder.
			Set("latitude", droneModifyModel.Latitude).
			Set("longitude", droneModifyModel.Longitude)
	}
	if droneModifyModel.LastMaintenance != nil {
		builder = builder.Set("last_maintenance", droneModifyModel.LastMaintenance)
	}
	if droneModifyModel.NextMaintenance != nil {
		builder = builder.Set("next_maintenance", droneModifyModel.NextMaintenance)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": droneModifyModel.ID}).
		Suffix("RETURNING " + droneColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected drone repository update error: %w", err)
	}

	var droneModel DroneDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&droneModel.ID,
			&droneModel.Code,
			&droneModel.Status,
			&droneModel.BatteryLevel,
			&droneModel.MaxPayload,
			&droneModel.Latitude,
			&droneModel.Longitude,
			&droneModel.LastMaintenance,
			&droneModel.NextMaintenance,
			&droneModel.CreatedAt,
			&droneModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, drone.ErrDroneNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, drone.ErrConflict
		}

		return nil, fmt.Errorf("unexpected drone repository update error: %w", err)
	}

	return ToDomain(&droneModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Drone, error) {
	query := `SELECT ` + droneColumns + `
		FROM drones
		WHERE id = $1`

	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByCode(ctx context.Context, code string) (*entities.Drone, error) {
	query := `SELECT ` + droneColumns + `
		FROM drones
		WHERE code = $1`

	return r.getOne(ctx, query, code)
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Drone, error) {
	query := `
	SELECT ` + droneColumns + `
	FROM drones
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected drone repository getall error: %w", err)
	}
	defer rows.Close()

	droneModels := make([]DroneDB, 0, 8)
	for rows.Next() {
		var droneModel DroneDB
		err := rows.Scan(
			&droneModel.ID,
			&droneModel.Code,
			&droneModel.Status,
			&droneModel.BatteryLevel,
			&droneModel.MaxPayload,
			&droneModel.Latitude,
			&droneModel.Longitude,
			&droneModel.LastMaintenance,
			&droneModel.NextMaintenance,
			&droneModel.CreatedAt,
			&droneModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected drone repository getall error: %w", err)
		}
		droneModels = append(droneModels, droneModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected drone repository getall error: %w", err)
	}

	return ToDomainList(droneModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM drones WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected drone repository delete error: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return drone.ErrDroneNotFound
	}

	return nil
}

// UpdateStatusWhereCurrent это атомарный условный переход статуса: строка
// меняется только если статус всё ещё current. RowsAffected == 0 значит
// гонку выиграл кто-то другой либо дрона нет.
func (r *Repository) UpdateStatusWhereCurrent(ctx context.Context, id int64, current, next entities.DroneStatusType) (int64, error) {
	query := `
        UPDATE drones
        SET status = $1,
            updated_at = NOW()
        WHERE id = $2
          AND status = $3
    `

	result, err := r.querier.Exec(ctx, query, next.String(), id, current.String())
	if err != nil {
		return 0, fmt.Errorf("unexpected drone repository conditional status update error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) UpdateMaintenanceWhereDue(ctx context.Context) (int64, error) {
	query := `
        UPDATE drones
        SET status = $1,
            updated_at = NOW()
        WHERE status = $2
          AND next_maintenance IS NOT NULL
          AND next_maintenance <= NOW()
    `

	result, err := r.querier.Exec(ctx, query,
		entities.DroneMaintenance.String(),
		entities.DroneAvailable.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected drone repository maintenance sweep error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Drone, error) {
	var droneModel DroneDB
	err := r.querier.QueryRow(ctx, query, arg).
		Scan(
			&droneModel.ID,
			&droneModel.Code,
			&droneModel.Status,
			&droneModel.BatteryLevel,
			&droneModel.MaxPayload,
			&droneModel.Latitude,
			&droneModel.Longitude,
			&droneModel.LastMaintenance,
			&droneModel.NextMaintenance,
			&droneModel.CreatedAt,
			&droneModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, drone.ErrDroneNotFound
		}

		return nil, fmt.Errorf("unexpected drone repository get error: %w", err)
	}

	return ToDomain(&droneModel), nil
}
