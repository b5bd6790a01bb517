package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/orgsuite/admin-console/internal/core/domain"
	"github.com/orgsuite/admin-console/internal/core/ports"
)

// OrderService applies role scoping and ownership validation to orders.
// An order's organization always matches its assigned user's
// organization; the invariant is enforced on create and update.
type OrderService struct {
	store ports.EntityStore
	log   zerolog.Logger
}

func NewOrderService(store ports.EntityStore, log zerolog.Logger) *OrderService {
	return &OrderService{store: store, log: log}
}

func (s *OrderService) List(ctx context.Context, actor domain.Actor) ([]domain.Order, error) {
	return actor.VisibleOrders(s.store.ListOrders()), nil
}

func (s *OrderService) Get(ctx context.Context, actor domain.Actor, id string) (domain.Order, error) {
	o, err := s.store.GetOrder(id)
	if err != nil {
		return domain.Order{}, err
	}
	if !actor.CanViewOrder(o) {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return o, nil
}

func (s *OrderService) Create(ctx context.Context, actor domain.Actor, in ports.CreateOrderInput) (domain.Order, error) {
	switch actor.Role {
	case domain.RoleOrgUser:
		// Ownership is pinned to the caller: whatever references the
		// request carried are discarded.
		in.UserID = actor.UserID
		in.OrganizationID = actor.OrganizationID
	case domain.RoleOrgAdmin:
		if in.OrganizationID == "" {
			in.OrganizationID = actor.OrganizationID
		}
		if in.UserID == "" {
			in.UserID = actor.UserID
		}
		if in.OrganizationID != actor.OrganizationID {
			return domain.Order{}, domain.ErrForbidden
		}
	case domain.RoleSuperAdmin:
		// Free assignment, validated below.
	default:
		return domain.Order{}, domain.ErrForbidden
	}

	if in.Status == "" {
		in.Status = domain.StatusPending
	}

	candidate := domain.Order{
		Title:          in.Title,
		Description:    in.Description,
		Status:         in.Status,
		UserID:         in.UserID,
		OrganizationID: in.OrganizationID,
	}
	if err := s.validateOrder(candidate); err != nil {
		return domain.Order{}, err
	}
	if !actor.CanManageOrder(candidate) {
		return domain.Order{}, domain.ErrForbidden
	}

	created := s.store.CreateOrder(candidate)
	s.log.Info().Str("order_id", created.ID).Str("user_id", created.UserID).Msg("order created")
	return created, nil
}

func (s *OrderService) Update(ctx context.Context, actor domain.Actor, id string, patch ports.OrderPatch) (domain.Order, error) {
	existing, err := s.store.GetOrder(id)
	if err != nil {
		return domain.Order{}, err
	}
	if !actor.CanViewOrder(existing) {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	if !actor.CanManageOrder(existing) {
		return domain.Order{}, domain.ErrForbidden
	}

	// Reassignment is an admin operation; org users keep their orders.
	if actor.Role == domain.RoleOrgUser && (patch.UserID != nil || patch.OrganizationID != nil) {
		return domain.Order{}, domain.ErrForbidden
	}

	merged := existing
	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.Status != nil {
		merged.Status = *patch.Status
	}
	if patch.UserID != nil {
		merged.UserID = *patch.UserID
	}
	if patch.OrganizationID != nil {
		merged.OrganizationID = *patch.OrganizationID
	}

	if err := s.validateOrder(merged); err != nil {
		return domain.Order{}, err
	}
	// The merged record must still fall inside the actor's scope.
	if !actor.CanManageOrder(merged) {
		return domain.Order{}, domain.ErrForbidden
	}

	return s.store.UpdateOrder(id, patch)
}

func (s *OrderService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	existing, err := s.store.GetOrder(id)
	if err != nil {
		return err
	}
	if !actor.CanViewOrder(existing) {
		return domain.ErrOrderNotFound
	}
	if !actor.CanManageOrder(existing) {
		return domain.ErrForbidden
	}
	if !s.store.DeleteOrder(id) {
		return domain.ErrOrderNotFound
	}
	s.log.Info().Str("order_id", id).Msg("order deleted")
	return nil
}

// validateOrder checks field presence, status membership, that the owning
// user exists and that the order's organization equals that user's
// organization.
func (s *OrderService) validateOrder(o domain.Order) error {
	if o.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !o.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, o.Status)
	}
	if o.UserID == "" {
		return fmt.Errorf("%w: user reference is required", domain.ErrValidation)
	}
	if o.OrganizationID == "" {
		return fmt.Errorf("%w: organization reference is required", domain.ErrValidation)
	}

	owner, err := s.store.GetUser(o.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("%w: user %s does not exist", domain.ErrValidation, o.UserID)
		}
		return err
	}
	if owner.OrganizationID != o.OrganizationID {
		return fmt.Errorf("%w: order organization must match the assigned user's organization", domain.ErrValidation)
	}
	return nil
}
