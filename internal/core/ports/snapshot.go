package ports

import (
	"context"

	"github.com/orgsuite/admin-console/internal/core/domain"
)

// Collection kinds used as keys at every snapshot-store boundary.
const (
	KindUsers         = "users"
	KindOrganizations = "organizations"
	KindOrders        = "orders"
)

// Snapshot is a full value copy of all three collections, taken after
// every mutation and written out as a unit.
type Snapshot struct {
	Users         []domain.User
	Organizations []domain.Organization
	Orders        []domain.Order
}

// SnapshotStore is the blob-store boundary: an opaque key-value area
// holding one serialized JSON array per collection kind. Put replaces the
// stored payload for a kind wholesale. Get returns a nil payload when the
// kind has never been stored.
type SnapshotStore interface {
	Put(ctx context.Context, kind string, payload []byte) error
	Get(ctx context.Context, kind string) ([]byte, error)
}

// SnapshotPersister receives the full snapshot after each mutation.
// Implementations write asynchronously; callers never wait on durability.
type SnapshotPersister interface {
	Persist(snap Snapshot)
}

// SessionStore is the durable storage for the single session blob, read
// once when the session holder is constructed. Get returns nil when no
// session is stored.
type SessionStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
	Clear(ctx context.Context) error
}
