package service

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/orgsuite/admin-console/internal/core/domain"
	"github.com/orgsuite/admin-console/internal/core/ports"
)

// countingPersister records every snapshot it receives, synchronously.
type countingPersister struct {
	mu    sync.Mutex
	snaps []ports.Snapshot
}

func (p *countingPersister) Persist(snap ports.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snaps = append(p.snaps, snap)
}

func (p *countingPersister) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.snaps)
}

func (p *countingPersister) last() ports.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snaps[len(p.snaps)-1]
}

func newTestStore() (*Store, *countingPersister) {
	p := &countingPersister{}
	return NewStore(p, zerolog.Nop()), p
}

func TestStore_CreateThenGet(t *testing.T) {
	s, _ := newTestStore()

	created := s.CreateUser(domain.User{
		Email:          "eve@techcorp.com",
		Name:           "Eve",
		Role:           domain.RoleOrgUser,
		OrganizationID: "org-1",
	})
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("created and updated timestamps must match on create")
	}

	got, err := s.GetUser(created.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got != created {
		t.Fatalf("round-trip mismatch: %+v vs %+v", got, created)
	}
}

func TestStore_IDUniqueness(t *testing.T) {
	s, _ := newTestStore()

	// Rapid successive creates must never collide, unlike a
	// clock-derived id.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		u := s.CreateUser(domain.User{Email: "x", Name: "x", Role: domain.RoleOrgUser, OrganizationID: "org-1"})
		if seen[u.ID] {
			t.Fatalf("duplicate id %s after %d creates", u.ID, i)
		}
		seen[u.ID] = true
	}
}

func TestStore_UpdateMergesAndRefreshesTimestamp(t *testing.T) {
	s, _ := newTestStore()
	created := s.CreateUser(domain.User{Email: "a@b.c", Name: "Before", Role: domain.RoleOrgUser, OrganizationID: "org-1"})

	name := "After"
	updated, err := s.UpdateUser(created.ID, ports.UserPatch{Name: &name})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.Name != "After" {
		t.Fatalf("patched field not applied")
	}
	if updated.Email != created.Email || updated.Role != created.Role || updated.OrganizationID != created.OrganizationID {
		t.Fatalf("unpatched fields changed: %+v", updated)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("updated timestamp went backwards")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created timestamp must not change on update")
	}
}

func TestStore_UpdateUnknownID(t *testing.T) {
	s, _ := newTestStore()
	name := "x"
	if _, err := s.UpdateUser("missing", ports.UserPatch{Name: &name}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	s, _ := newTestStore()
	created := s.CreateOrder(domain.Order{Title: "t", Status: domain.StatusPending, UserID: "user-3", OrganizationID: "org-1"})

	if !s.DeleteOrder(created.ID) {
		t.Fatalf("expected delete to report found")
	}
	if _, err := s.GetOrder(created.ID); err != domain.ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound after delete, got %v", err)
	}
	if s.DeleteOrder(created.ID) {
		t.Fatalf("second delete should report not found")
	}
	if len(s.ListOrders()) != 0 {
		t.Fatalf("collection altered by failed delete")
	}
}

func TestStore_MutationsTriggerPersist(t *testing.T) {
	s, p := newTestStore()

	u := s.CreateUser(domain.User{Email: "a@b.c", Name: "A", Role: domain.RoleOrgUser, OrganizationID: "org-1"})
	name := "B"
	if _, err := s.UpdateUser(u.ID, ports.UserPatch{Name: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}
	s.DeleteUser(u.ID)

	if p.count() != 3 {
		t.Fatalf("expected 3 persisted snapshots, got %d", p.count())
	}
	if len(p.last().Users) != 0 {
		t.Fatalf("final snapshot should reflect the delete")
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	s, _ := newTestStore()
	s.Replace(ports.Snapshot{Users: domain.SeedUsers()})

	list := s.ListUsers()
	list[0].Name = "mutated"

	got, err := s.GetUser("user-1")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Name == "mutated" {
		t.Fatalf("caller mutation leaked into store")
	}
}
