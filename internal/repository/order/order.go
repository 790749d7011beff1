package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fleet/internal/entities"
	"fleet/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, customer_id, restaurant_id, payment_id, address_id, items,
		total_amount, status, drone_id, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel, err := FromDomainModify(&orderModifyEntity)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	if orderModifyModel.Items == nil {
		orderModifyModel.Items = []byte("[]")
	}

	query := `INSERT INTO orders (customer_id, restaurant_id, payment_id, address_id, items,
			total_amount, status, drone_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err = r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.CustomerID,
		orderModifyModel.RestaurantID,
		orderModifyModel.PaymentID,
		orderModifyModel.AddressID,
		orderModifyModel.Items,
		orderModifyModel.TotalAmount,
		orderModifyModel.Status,
		orderModifyModel.DroneID,
	).Scan(
		&orderModel.ID,
		&orderModel.CustomerID,
		&orderModel.RestaurantID,
		&orderModel.PaymentID,
		&orderModel.AddressID,
		&orderModel.Items,
		&orderModel.TotalAmount,
		&orderModel.Status,
		&orderModel.DroneID,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return toDomainOrErr(&orderModel)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&orderModel.ID,
			&orderModel.CustomerID,
			&orderModel.RestaurantID,
			&orderModel.PaymentID,
			&orderModel.AddressID,
			&orderModel.Items,
			&orderModel.TotalAmount,
			&orderModel.Status,
			&orderModel.DroneID,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return toDomainOrErr(&orderModel)
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel, err := FromDomainModify(&orderModifyEntity)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModifyModel.Items != nil {
		builder = builder.Set("items", orderModifyModel.Items)
	}
	if orderModifyModel.TotalAmount != nil {
		builder = builder.Set("total_amount", orderModifyModel.TotalAmount)
	}
	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}
	if orderModifyModel.DroneID != nil {
		builder = builder.Set("drone_id", orderModifyModel.DroneID)
	}
	if orderModifyModel.AddressID != nil {
		builder = builder.Set("address_id", orderModifyModel.AddressID)
	}
	if orderModifyModel.PaymentID != nil {
		builder = builder.Set("payment_id", orderModifyModel.PaymentID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&orderModel.ID,
			&orderModel.CustomerID,
			&orderModel.RestaurantID,
			&orderModel.PaymentID,
			&orderModel.AddressID,
			&orderModel.Items,
			&orderModel.TotalAmount,
			&orderModel.Status,
			&orderModel.DroneID,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return toDomainOrErr(&orderModel)
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select("id", "customer_id", "restaurant_id", "payment_id", "address_id", "items",
			"total_amount", "status", "drone_id", "created_at", "updated_at").
		From("orders").
		OrderBy("id")

	if filter.CustomerID != nil {
		builder = builder.Where(sq.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.RestaurantID != nil {
		builder = builder.Where(sq.Eq{"restaurant_id": *filter.RestaurantID})
	}
	if filter.DroneID != nil {
		builder = builder.Where(sq.Eq{"drone_id": *filter.DroneID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.StatusNot != nil {
		builder = builder.Where(sq.NotEq{"status": filter.StatusNot.String()})
	}
	if filter.DroneAssigned != nil {
		if *filter.DroneAssigned {
			builder = builder.Where(sq.NotEq{"drone_id": nil})
		} else {
			builder = builder.Where(sq.Eq{"drone_id": nil})
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.CustomerID,
			&orderModel.RestaurantID,
			&orderModel.PaymentID,
			&orderModel.AddressID,
			&orderModel.Items,
			&orderModel.TotalAmount,
			&orderModel.Status,
			&orderModel.DroneID,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	orders, err := ToDomainList(orderModels)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	return orders, nil
}

func toDomainOrErr(orderModel *OrderDB) (*entities.Order, error) {
	orderEntity, err := ToDomain(orderModel)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository convert error: %w", err)
	}
	return orderEntity, nil
}
