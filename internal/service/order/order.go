package order

import (
	"context"
	"fmt"

	"fleet/internal/entities"
	"fleet/internal/service/access"
)

type Order struct {
	repository   Repository
	droneService DroneService
	txManager    TxManager
}

func New(repository Repository, droneService DroneService, txManager TxManager) *Order {
	return &Order{
		repository:   repository,
		droneService: droneService,
		txManager:    txManager,
	}
}

func (s *Order) CreateOrder(ctx context.Context, actor entities.Actor, orderModify entities.OrderModify) (*entities.Order, error) {
	if err := access.Check(actor, access.OpCreateOrder); err != nil {
		return nil, err
	}

	if orderModify.RestaurantID == nil ||
		orderModify.PaymentID == nil ||
		orderModify.AddressID == nil ||
		orderModify.TotalAmount == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidItems(orderModify.Items) {
		return nil, ErrInvalidItems
	}
	if !isValidTotalAmount(*orderModify.TotalAmount) {
		return nil, ErrInvalidTotalAmount
	}

	// заказчик и стартовый статус не берутся из запроса
	initialStatus := entities.OrderPreparing
	orderModify.CustomerID = &actor.ID
	orderModify.Status = &initialStatus
	orderModify.DroneID = nil

	created, err := s.repository.Create(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return created, nil
}

func (s *Order) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return found, nil
}

// UpdateOrderStatusByRestaurant это переход со стороны ресторана, обычно
// Preparing -> Ready. Граф переходов не ограничен, ресторан может выставить
// любой валидный статус напрямую.
func (s *Order) UpdateOrderStatusByRestaurant(ctx context.Context, actor entities.Actor, orderID int64, status entities.OrderStatusType) (*entities.Order, error) {
	if err := access.Check(actor, access.OpRestaurantUpdate); err != nil {
		return nil, err
	}

	return s.setOrderStatus(ctx, orderID, status)
}

// ProgressDelivery это переход со стороны оператора доставки:
// Out for delivery и Delivered.
func (s *Order) ProgressDelivery(ctx context.Context, actor entities.Actor, orderID int64, status entities.OrderStatusType) (*entities.Order, error) {
	if err := access.Check(actor, access.OpDeliveryProgress); err != nil {
		return nil, err
	}

	return s.setOrderStatus(ctx, orderID, status)
}

// AssignDrone привязывает дрона к заказу. Захват дрона идёт условным
// апдейтом AVAILABLE -> IN_DELIVERY внутри одной транзакции с записью
// заказа: если захват не удался, заказ остаётся нетронутым.
func (s *Order) AssignDrone(ctx context.Context, actor entities.Actor, orderID, droneID int64) (*entities.Order, error) {
	if err := access.Check(actor, access.OpAssignDrone); err != nil {
		return nil, err
	}
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if droneID <= 0 {
		return nil, ErrInvalidDroneID
	}

	var assigned *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repository.GetByID(ctx, orderID); err != nil {
			return fmt.Errorf("get order for assignment: %w", err)
		}

		if err := s.droneService.AcquireForDelivery(ctx, droneID); err != nil {
			return fmt.Errorf("acquire drone: %w", err)
		}

		orderModify := entities.OrderModify{
			ID:      &orderID,
			DroneID: &droneID,
		}

		updated, err := s.repository.Update(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("bind drone to order: %w", err)
		}

		assigned = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

func (s *Order) GetOrdersByRestaurant(ctx context.Context, actor entities.Actor, restaurantID int64) ([]entities.Order, error) {
	if err := access.Check(actor, access.OpListByRestaurant); err != nil {
		return nil, err
	}

	return s.listOrders(ctx, entities.OrderFilter{RestaurantID: &restaurantID})
}

// GetOrdersByCustomer возвращает заказы текущего заказчика, чужой
// идентификатор подставить нельзя.
func (s *Order) GetOrdersByCustomer(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if err := access.Check(actor, access.OpListByCustomer); err != nil {
		return nil, err
	}

	return s.listOrders(ctx, entities.OrderFilter{CustomerID: &actor.ID})
}

func (s *Order) GetOrdersByDrone(ctx context.Context, actor entities.Actor, droneID int64) ([]entities.Order, error) {
	if err := access.Check(actor, access.OpListByDrone); err != nil {
		return nil, err
	}

	return s.listOrders(ctx, entities.OrderFilter{DroneID: &droneID})
}

// GetUnassignedOrders возвращает заказы Ready без привязанного дрона,
// это рабочая очередь оператора.
func (s *Order) GetUnassignedOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if err := access.Check(actor, access.OpListUnassigned); err != nil {
		return nil, err
	}

	readyStatus := entities.OrderReady
	unassigned := false
	return s.listOrders(ctx, entities.OrderFilter{
		Status:        &readyStatus,
		DroneAssigned: &unassigned,
	})
}

// GetAssignedOrders возвращает заказы с дроном, ещё не доставленные.
func (s *Order) GetAssignedOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if err := access.Check(actor, access.OpListAssigned); err != nil {
		return nil, err
	}

	deliveredStatus := entities.OrderDelivered
	assigned := true
	return s.listOrders(ctx, entities.OrderFilter{
		StatusNot:     &deliveredStatus,
		DroneAssigned: &assigned,
	})
}

func (s *Order) GetDeliveredOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if err := access.Check(actor, access.OpListDelivered); err != nil {
		return nil, err
	}

	deliveredStatus := entities.OrderDelivered
	return s.listOrders(ctx, entities.OrderFilter{Status: &deliveredStatus})
}

// setOrderStatus применяет статус напрямую. Единственный связанный побочный
// эффект: на Delivered привязанный дрон безусловно возвращается в AVAILABLE.
func (s *Order) setOrderStatus(ctx context.Context, orderID int64, status entities.OrderStatusType) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if !isValidStatus(status.String()) {
		return nil, ErrInvalidStatus
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order for status update: %w", err)
		}

		orderModify := entities.OrderModify{
			ID:     &orderID,
			Status: &status,
		}

		updated, err = s.repository.Update(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		if status == entities.OrderDelivered && current.DroneID != nil {
			if err := s.droneService.Release(ctx, *current.DroneID); err != nil {
				return fmt.Errorf("release drone on delivery: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Order) listOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	orders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}
