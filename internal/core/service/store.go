package service

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/orgsuite/admin-console/internal/api/metrics"
	"github.com/orgsuite/admin-console/internal/core/domain"
	"github.com/orgsuite/admin-console/internal/core/ports"
)

// Store owns the in-memory collections. Mutations are applied under lock
// and are immediately visible to subsequent reads; durability happens
// afterwards through the snapshot persister and is never waited on, so a
// concurrent process may observe a stale external store until the write
// lands (last writer wins).
type Store struct {
	mu            sync.RWMutex
	users         []domain.User
	organizations []domain.Organization
	orders        []domain.Order

	persister ports.SnapshotPersister
	log       zerolog.Logger
}

// NewStore returns an empty Store. Collections are populated by the
// bootstrapper before any read is issued.
func NewStore(persister ports.SnapshotPersister, log zerolog.Logger) *Store {
	return &Store{persister: persister, log: log}
}

// newID returns a collision-free identifier with the given prefix. A
// random token replaces the clock-based ids this scheme grew out of,
// which could collide under rapid successive creates.
func newID(prefix string) string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("store: rand.Read failed: %v", err))
	}
	return fmt.Sprintf("%s-%x", prefix, b)
}

// Replace swaps in fully resolved collections. Used by the bootstrapper;
// does not trigger a persist.
func (s *Store) Replace(snap ports.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]domain.User(nil), snap.Users...)
	s.organizations = append([]domain.Organization(nil), snap.Organizations...)
	s.orders = append([]domain.Order(nil), snap.Orders...)
}

// Snapshot returns a value copy of all collections.
func (s *Store) Snapshot() ports.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() ports.Snapshot {
	return ports.Snapshot{
		Users:         append([]domain.User(nil), s.users...),
		Organizations: append([]domain.Organization(nil), s.organizations...),
		Orders:        append([]domain.Order(nil), s.orders...),
	}
}

// persistLocked hands the current snapshot to the persister. Must be
// called with the write lock held so the snapshot matches the mutation
// that triggered it.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	s.persister.Persist(s.snapshotLocked())
}

// --- Users ---

func (s *Store) ListUsers() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User(nil), s.users...)
}

func (s *Store) GetUser(id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (s *Store) GetUserByEmail(email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (s *Store) CreateUser(u domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	u.ID = newID("user")
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users = append(s.users, u)
	s.persistLocked()
	metrics.EntityMutationsTotal.WithLabelValues(ports.KindUsers, "create").Inc()
	return u
}

func (s *Store) UpdateUser(id string, patch ports.UserPatch) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		u := &s.users[i]
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.OrganizationID != nil {
			u.OrganizationID = *patch.OrganizationID
		}
		u.UpdatedAt = time.Now().UTC()
		s.persistLocked()
		metrics.EntityMutationsTotal.WithLabelValues(ports.KindUsers, "update").Inc()
		return *u, nil
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (s *Store) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			s.persistLocked()
			metrics.EntityMutationsTotal.WithLabelValues(ports.KindUsers, "delete").Inc()
			return true
		}
	}
	return false
}

// --- Organizations ---

func (s *Store) ListOrganizations() []domain.Organization {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Organization(nil), s.organizations...)
}

func (s *Store) GetOrganization(id string) (domain.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.organizations {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Organization{}, domain.ErrOrganizationNotFound
}

func (s *Store) CreateOrganization(o domain.Organization) domain.Organization {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	o.ID = newID("org")
	o.CreatedAt = now
	o.UpdatedAt = now
	s.organizations = append(s.organizations, o)
	s.persistLocked()
	metrics.EntityMutationsTotal.WithLabelValues(ports.KindOrganizations, "create").Inc()
	return o
}

func (s *Store) UpdateOrganization(id string, patch ports.OrganizationPatch) (domain.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.organizations {
		if s.organizations[i].ID != id {
			continue
		}
		o := &s.organizations[i]
		if patch.Name != nil {
			o.Name = *patch.Name
		}
		if patch.Description != nil {
			o.Description = *patch.Description
		}
		o.UpdatedAt = time.Now().UTC()
		s.persistLocked()
		metrics.EntityMutationsTotal.WithLabelValues(ports.KindOrganizations, "update").Inc()
		return *o, nil
	}
	return domain.Organization{}, domain.ErrOrganizationNotFound
}

func (s *Store) DeleteOrganization(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.organizations {
		if s.organizations[i].ID == id {
			s.organizations = append(s.organizations[:i], s.organizations[i+1:]...)
			s.persistLocked()
			metrics.EntityMutationsTotal.WithLabelValues(ports.KindOrganizations, "delete").Inc()
			return true
		}
	}
	return false
}

// --- Orders ---

func (s *Store) ListOrders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Order(nil), s.orders...)
}

func (s *Store) GetOrder(id string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, domain.ErrOrderNotFound
}

func (s *Store) CreateOrder(o domain.Order) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	o.ID = newID("order")
	o.CreatedAt = now
	o.UpdatedAt = now
	s.orders = append(s.orders, o)
	s.persistLocked()
	metrics.EntityMutationsTotal.WithLabelValues(ports.KindOrders, "create").Inc()
	return o
}

func (s *Store) UpdateOrder(id string, patch ports.OrderPatch) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		o := &s.orders[i]
		if patch.Title != nil {
			o.Title = *patch.Title
		}
		if patch.Description != nil {
			o.Description = *patch.Description
		}
		if patch.Status != nil {
			o.Status = *patch.Status
		}
		if patch.UserID != nil {
			o.UserID = *patch.UserID
		}
		if patch.OrganizationID != nil {
			o.OrganizationID = *patch.OrganizationID
		}
		o.UpdatedAt = time.Now().UTC()
		s.persistLocked()
		metrics.EntityMutationsTotal.WithLabelValues(ports.KindOrders, "update").Inc()
		return *o, nil
	}
	return domain.Order{}, domain.ErrOrderNotFound
}

func (s *Store) DeleteOrder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			s.persistLocked()
			metrics.EntityMutationsTotal.WithLabelValues(ports.KindOrders, "delete").Inc()
			return true
		}
	}
	return false
}
