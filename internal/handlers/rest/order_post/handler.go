package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/entities"
	"fleet/internal/generated/dto"
	"fleet/internal/pkg/middlewares/auth"
	"fleet/internal/service/access"
	"fleet/internal/service/order"
	"fleet/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	orderModifyEntity := entities.OrderModify{
		RestaurantID: &orderCreateDTO.Restaurant,
		PaymentID:    &orderCreateDTO.PaymentID,
		AddressID:    &orderCreateDTO.DeliveryAddress,
		Items:        toOrderItems(orderCreateDTO.OrderItems),
		TotalAmount:  &orderCreateDTO.TotalAmount,
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), actor, orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidItems),
			errors.Is(err, order.ErrInvalidTotalAmount):
			h.writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, access.ErrForbidden):
			h.writeError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, access.ErrNoIdentity):
			h.writeError(w, http.StatusUnauthorized, "Unauthorized")
		default:
			h.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response := toOrderDTO(*orderEntity)

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(dto.Error{Error: message})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderItems(itemDTOs []dto.OrderItem) []entities.OrderItem {
	items := make([]entities.OrderItem, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		items = append(items, entities.OrderItem{
			DishName: itemDTO.Item.DishName,
			Price:    itemDTO.Item.Price,
			Quantity: itemDTO.Quantity,
		})
	}
	return items
}

func toOrderDTO(orderEntity entities.Order) dto.Order {
	items := make([]dto.OrderItem, 0, len(orderEntity.Items))
	for _, item := range orderEntity.Items {
		items = append(items, dto.OrderItem{
			Item: dto.OrderItemDescriptor{
				DishName: item.DishName,
				Price:    item.Price,
			},
			Quantity: item.Quantity,
		})
	}
	return dto.Order{
		ID:              orderEntity.ID,
		User:            orderEntity.CustomerID,
		Restaurant:      orderEntity.RestaurantID,
		PaymentID:       orderEntity.PaymentID,
		DeliveryAddress: orderEntity.AddressID,
		OrderItems:      items,
		TotalAmount:     orderEntity.TotalAmount,
		OrderStatus:     orderEntity.Status.String(),
		Drone:           orderEntity.DroneID,
		CreatedAt:       orderEntity.CreatedAt,
		UpdatedAt:       orderEntity.UpdatedAt,
	}
}
