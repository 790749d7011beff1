package access

import (
	"errors"

	"fleet/internal/entities"
)

var (
	ErrNoIdentity = errors.New("no actor identity resolved")
	ErrForbidden  = errors.New("operation is not permitted for role")
)

// Operation это операция жизненного цикла, на которую проверяется роль.
type Operation string

const (
	OpCreateOrder      Operation = "order.create"
	OpRestaurantUpdate Operation = "order.restaurant_update"
	OpDeliveryProgress Operation = "order.delivery_progress"
	OpAssignDrone      Operation = "order.assign_drone"

	OpListByRestaurant Operation = "order.list_by_restaurant"
	OpListByCustomer   Operation = "order.list_by_customer"
	OpListByDrone      Operation = "order.list_by_drone"
	OpListUnassigned   Operation = "order.list_unassigned"
	OpListAssigned     Operation = "order.list_assigned"
	OpListDelivered    Operation = "order.list_delivered"
)

// матрица роль -> операции, держим плоской чтобы её было видно целиком
var permissions = map[entities.ActorRole]map[Operation]struct{}{
	entities.RoleCustomer: {
		OpCreateOrder:    {},
		OpListByCustomer: {},
	},
	entities.RoleRestaurant: {
		OpRestaurantUpdate: {},
		OpListByRestaurant: {},
	},
	entities.RoleDeliveryOperator: {
		OpDeliveryProgress: {},
		OpAssignDrone:      {},
		OpListByDrone:      {},
		OpListUnassigned:   {},
		OpListAssigned:     {},
		OpListDelivered:    {},
	},
}

// Allowed чистая функция без состояния, так её можно тестировать без транспорта.
func Allowed(role entities.ActorRole, op Operation) bool {
	ops, ok := permissions[role]
	if !ok {
		return false
	}
	_, ok = ops[op]
	return ok
}

// Check возвращает ErrNoIdentity если личность не зарезолвлена,
// ErrForbidden если роль не имеет права на операцию.
func Check(actor entities.Actor, op Operation) error {
	if actor.IsZero() {
		return ErrNoIdentity
	}
	if !Allowed(actor.Role, op) {
		return ErrForbidden
	}
	return nil
}
