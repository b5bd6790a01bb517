package ports

import "github.com/orgsuite/admin-console/internal/core/domain"

// UserPatch carries a partial update for a user. Nil fields are left
// unchanged (merge semantics).
type UserPatch struct {
	Email          *string
	Name           *string
	Role           *domain.Role
	OrganizationID *string
}

// OrganizationPatch carries a partial update for an organization.
type OrganizationPatch struct {
	Name        *string
	Description *string
}

// OrderPatch carries a partial update for an order.
type OrderPatch struct {
	Title          *string
	Description    *string
	Status         *domain.OrderStatus
	UserID         *string
	OrganizationID *string
}

// EntityStore owns the three in-memory collections. All reads return
// value copies; mutations are immediately visible to subsequent reads in
// the same process and trigger an asynchronous full-snapshot persist.
// Delete reports found/not-found; Update returns the entity's not-found
// sentinel when the id is unknown.
type EntityStore interface {
	ListUsers() []domain.User
	GetUser(id string) (domain.User, error)
	GetUserByEmail(email string) (domain.User, error)
	CreateUser(u domain.User) domain.User
	UpdateUser(id string, patch UserPatch) (domain.User, error)
	DeleteUser(id string) bool

	ListOrganizations() []domain.Organization
	GetOrganization(id string) (domain.Organization, error)
	CreateOrganization(o domain.Organization) domain.Organization
	UpdateOrganization(id string, patch OrganizationPatch) (domain.Organization, error)
	DeleteOrganization(id string) bool

	ListOrders() []domain.Order
	GetOrder(id string) (domain.Order, error)
	CreateOrder(o domain.Order) domain.Order
	UpdateOrder(id string, patch OrderPatch) (domain.Order, error)
	DeleteOrder(id string) bool

	// Snapshot returns a value copy of all collections.
	Snapshot() Snapshot
}
