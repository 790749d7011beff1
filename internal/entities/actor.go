package entities

// Actor это аутентифицированный вызывающий, резолвится auth-коллаборатором
// (JWT middleware), ядро ему доверяет.
type Actor struct {
	ID   int64
	Role ActorRole
}

type ActorRole string

const (
	RoleCustomer         ActorRole = "customer"
	RoleRestaurant       ActorRole = "restaurant"
	RoleDeliveryOperator ActorRole = "delivery operator"
)

func (r ActorRole) String() string {
	return string(r)
}

func (a Actor) IsZero() bool {
	return a.ID == 0 && a.Role == ""
}
