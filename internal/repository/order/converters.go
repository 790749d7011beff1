package order

import (
	"encoding/json"
	"fmt"

	"fleet/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	items, err := itemsToDomain(o.Items)
	if err != nil {
		return nil, err
	}

	return &entities.Order{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		RestaurantID: o.RestaurantID,
		PaymentID:    o.PaymentID,
		AddressID:    o.AddressID,
		Items:        items,
		TotalAmount:  o.TotalAmount,
		Status:       entities.OrderStatusType(o.Status),
		DroneID:      o.DroneID,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}, nil
}

func FromDomainModify(orderModify *entities.OrderModify) (*OrderModifyDB, error) {
	if orderModify == nil {
		return nil, nil
	}
	orderDB := &OrderModifyDB{}

	if orderModify.ID != nil {
		orderDB.ID = orderModify.ID
	}
	if orderModify.CustomerID != nil {
		orderDB.CustomerID = orderModify.CustomerID
	}
	if orderModify.RestaurantID != nil {
		orderDB.RestaurantID = orderModify.RestaurantID
	}
	if orderModify.PaymentID != nil {
		orderDB.PaymentID = orderModify.PaymentID
	}
	if orderModify.AddressID != nil {
		orderDB.AddressID = orderModify.AddressID
	}
	if orderModify.Items != nil {
		raw, err := itemsFromDomain(orderModify.Items)
		if err != nil {
			return nil, err
		}
		orderDB.Items = raw
	}
	if orderModify.TotalAmount != nil {
		orderDB.TotalAmount = orderModify.TotalAmount
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}
	if orderModify.DroneID != nil {
		orderDB.DroneID = orderModify.DroneID
	}

	return orderDB, nil
}

func ToDomainList(ordersDB []OrderDB) ([]entities.Order, error) {
	if len(ordersDB) == 0 {
		return []entities.Order{}, nil
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		orderEntity, err := ToDomain(&orderDB)
		if err != nil {
			return nil, err
		}
		result[i] = *orderEntity
	}
	return result, nil
}

func itemsToDomain(raw []byte) ([]entities.OrderItem, error) {
	if len(raw) == 0 {
		return []entities.OrderItem{}, nil
	}

	var itemsDB []OrderItemDB
	if err := json.Unmarshal(raw, &itemsDB); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}

	items := make([]entities.OrderItem, len(itemsDB))
	for i, itemDB := range itemsDB {
		items[i] = entities.OrderItem{
			DishName: itemDB.DishName,
			Price:    itemDB.Price,
			Quantity: itemDB.Quantity,
		}
	}
	return items, nil
}

func itemsFromDomain(items []entities.OrderItem) ([]byte, error) {
	itemsDB := make([]OrderItemDB, len(items))
	for i, item := range items {
		itemsDB[i] = OrderItemDB{
			DishName: item.DishName,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	raw, err := json.Marshal(itemsDB)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}
	return raw, nil
}
