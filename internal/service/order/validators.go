package order

import (
	"strings"

	"fleet/internal/entities"
)

func isValidStatus(status string) bool {
	switch entities.OrderStatusType(status) {
	case entities.OrderPreparing, entities.OrderReady,
		entities.OrderOutForDelivery, entities.OrderDelivered:
		return true
	default:
		return false
	}
}

// пустой список позиций допустим, проверяем только содержимое заполненных
func isValidItems(items []entities.OrderItem) bool {
	for _, item := range items {
		if strings.TrimSpace(item.DishName) == "" {
			return false
		}
		if item.Price < 0 || item.Quantity <= 0 {
			return false
		}
	}
	return true
}

func isValidTotalAmount(amount float64) bool {
	return amount >= 0
}
