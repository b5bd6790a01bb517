package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/orgsuite/admin-console/internal/core/domain"
	"github.com/orgsuite/admin-console/internal/core/ports"
)

func TestOrderService_ListScoping(t *testing.T) {
	svc := NewOrderService(newSeededStore(), zerolog.Nop())
	super, admin, member := seedActors()
	ctx := context.Background()

	if got, _ := svc.List(ctx, super); len(got) != 2 {
		t.Fatalf("super admin should see both seed orders, got %d", len(got))
	}
	if got, _ := svc.List(ctx, admin); len(got) != 2 {
		t.Fatalf("org admin should see both tenant orders, got %d", len(got))
	}
	if got, _ := svc.List(ctx, member); len(got) != 2 {
		t.Fatalf("org user owns both seed orders, got %d", len(got))
	}

	outsider := domain.Actor{UserID: "user-x", OrganizationID: "org-2", Role: domain.RoleOrgAdmin}
	if got, _ := svc.List(ctx, outsider); len(got) != 0 {
		t.Fatalf("foreign admin should see no orders, got %d", len(got))
	}
	if _, err := svc.Get(ctx, outsider, "order-1"); err != domain.ErrOrderNotFound {
		t.Fatalf("out-of-scope read must be not found, got %v", err)
	}
}

func TestOrderService_CreatePinsOwnershipForOrgUser(t *testing.T) {
	svc := NewOrderService(newSeededStore(), zerolog.Nop())
	_, _, member := seedActors()
	ctx := context.Background()

	// Whatever references the request carries, the order lands on the
	// caller.
	created, err := svc.Create(ctx, member, ports.CreateOrderInput{
		Title:          "New order",
		UserID:         "user-1",
		OrganizationID: "org-2",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.UserID != "user-3" || created.OrganizationID != "org-1" {
		t.Fatalf("ownership not pinned to caller: %+v", created)
	}
	if created.Status != domain.StatusPending {
		t.Fatalf("status not defaulted to pending: %q", created.Status)
	}
}

func TestOrderService_CreateOrgAdmin(t *testing.T) {
	svc := NewOrderService(newSeededStore(), zerolog.Nop())
	_, admin, _ := seedActors()
	ctx := context.Background()

	created, err := svc.Create(ctx, admin, ports.CreateOrderInput{
		Title:  "Assigned",
		UserID: "user-3",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.OrganizationID != "org-1" || created.UserID != "user-3" {
		t.Fatalf("unexpected assignment: %+v", created)
	}

	if _, err := svc.Create(ctx, admin, ports.CreateOrderInput{
		Title:          "Foreign",
		UserID:         "user-3",
		OrganizationID: "org-2",
	}); err != domain.ErrForbidden {
		t.Fatalf("cross-tenant create: expected ErrForbidden, got %v", err)
	}
}

func TestOrderService_CreateValidation(t *testing.T) {
	svc := NewOrderService(newSeededStore(), zerolog.Nop())
	super, _, _ := seedActors()
	ctx := context.Background()

	cases := []struct {
		name string
		in   ports.CreateOrderInput
	}{
		{"missing title", ports.CreateOrderInput{UserID: "user-3", OrganizationID: "org-1"}},
		{"unknown status", ports.CreateOrderInput{Title: "t", Status: "archived", UserID: "user-3", OrganizationID: "org-1"}},
		{"unknown user", ports.CreateOrderInput{Title: "t", UserID: "user-404", OrganizationID: "org-1"}},
		{"org mismatch", ports.CreateOrderInput{Title: "t", UserID: "user-3", OrganizationID: "org-2"}},
		{"missing user", ports.CreateOrderInput{Title: "t", OrganizationID: "org-1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, super, tc.in); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestOrderService_UpdateReassignmentRules(t *testing.T) {
	svc := NewOrderService(newSeededStore(), zerolog.Nop())
	super, _, member := seedActors()
	ctx := context.Background()

	// Org users may progress their own orders but not move them.
	status := domain.StatusCompleted
	updated, err := svc.Update(ctx, member, "order-1", ports.OrderPatch{Status: &status})
	if err != nil {
		t.Fatalf("status update: %v", err)
	}
	if updated.Status != domain.StatusCompleted {
		t.Fatalf("status not applied: %+v", updated)
	}

	otherUser := "user-2"
	if _, err := svc.Update(ctx, member, "order-1", ports.OrderPatch{UserID: &otherUser}); err != domain.ErrForbidden {
		t.Fatalf("org user reassignment: expected ErrForbidden, got %v", err)
	}

	// Reassignment to a user in another organization breaks the ownership
	// invariant even for a super admin.
	superID := "user-1"
	if _, err := svc.Update(ctx, super, "order-1", ports.OrderPatch{UserID: &superID}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("org mismatch via update: expected validation error, got %v", err)
	}
}

func TestOrderService_Delete(t *testing.T) {
	svc := NewOrderService(newSeededStore(), zerolog.Nop())
	_, admin, _ := seedActors()
	ctx := context.Background()

	outsider := domain.Actor{UserID: "user-x", OrganizationID: "org-2", Role: domain.RoleOrgAdmin}
	if err := svc.Delete(ctx, outsider, "order-1"); err != domain.ErrOrderNotFound {
		t.Fatalf("out-of-scope delete must read as not found, got %v", err)
	}

	if err := svc.Delete(ctx, admin, "order-1"); err != nil {
		t.Fatalf("tenant delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, admin, "order-1"); err != domain.ErrOrderNotFound {
		t.Fatalf("deleted order still readable: %v", err)
	}
}
