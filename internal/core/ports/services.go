package ports

import (
	"context"

	"github.com/orgsuite/admin-console/internal/core/domain"
)

// CreateUserInput carries all data needed to create a user.
type CreateUserInput struct {
	Email          string
	Name           string
	Role           domain.Role
	OrganizationID string
}

// CreateOrganizationInput carries all data needed to create an organization.
type CreateOrganizationInput struct {
	Name        string
	Description string
}

// CreateOrderInput carries all data needed to create an order. UserID and
// OrganizationID are advisory: for org_user actors they are overridden
// with the actor's own identity, for org_admin actors they must fall
// within the actor's organization.
type CreateOrderInput struct {
	Title          string
	Description    string
	Status         domain.OrderStatus
	UserID         string
	OrganizationID string
}

// UserService defines role-scoped use-case operations over users.
type UserService interface {
	List(ctx context.Context, actor domain.Actor) ([]domain.User, error)
	Get(ctx context.Context, actor domain.Actor, id string) (domain.User, error)
	Create(ctx context.Context, actor domain.Actor, in CreateUserInput) (domain.User, error)
	Update(ctx context.Context, actor domain.Actor, id string, patch UserPatch) (domain.User, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

// OrganizationService defines role-scoped use-case operations over
// organizations.
type OrganizationService interface {
	List(ctx context.Context, actor domain.Actor) ([]domain.Organization, error)
	Get(ctx context.Context, actor domain.Actor, id string) (domain.Organization, error)
	Create(ctx context.Context, actor domain.Actor, in CreateOrganizationInput) (domain.Organization, error)
	Update(ctx context.Context, actor domain.Actor, id string, patch OrganizationPatch) (domain.Organization, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

// OrderService defines role-scoped use-case operations over orders.
type OrderService interface {
	List(ctx context.Context, actor domain.Actor) ([]domain.Order, error)
	Get(ctx context.Context, actor domain.Actor, id string) (domain.Order, error)
	Create(ctx context.Context, actor domain.Actor, in CreateOrderInput) (domain.Order, error)
	Update(ctx context.Context, actor domain.Actor, id string, patch OrderPatch) (domain.Order, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
