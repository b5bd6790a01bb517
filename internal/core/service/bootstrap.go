package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/orgsuite/admin-console/internal/api/metrics"
	"github.com/orgsuite/admin-console/internal/core/domain"
	"github.com/orgsuite/admin-console/internal/core/ports"
)

// Bootstrapper resolves the initial collections through the persistence
// fallback chain: external snapshot store, then local mirror, then the
// fixed seed, per kind independently. Store faults are logged and
// treated as "no data"; Initialize never fails.
type Bootstrapper struct {
	store     *Store
	external  ports.SnapshotStore
	mirror    ports.SnapshotStore
	persister ports.SnapshotPersister
	log       zerolog.Logger

	once  sync.Once
	ready chan struct{}
}

// NewBootstrapper wires the fallback chain. The persister is used to
// write the resolved snapshot back to both tiers after resolution.
func NewBootstrapper(store *Store, external, mirror ports.SnapshotStore, persister ports.SnapshotPersister, log zerolog.Logger) *Bootstrapper {
	return &Bootstrapper{
		store:     store,
		external:  external,
		mirror:    mirror,
		persister: persister,
		log:       log,
		ready:     make(chan struct{}),
	}
}

// Initialize populates the entity store and re-persists the resolved
// snapshot so both tiers see a consistent state. Idempotent: a second
// call against unchanged stores resolves the same collections.
func (b *Bootstrapper) Initialize(ctx context.Context) {
	users, src := resolveKind(ctx, b, ports.KindUsers, domain.SeedUsers)
	b.logResolved(ports.KindUsers, src, len(users))

	orgs, src := resolveKind(ctx, b, ports.KindOrganizations, domain.SeedOrganizations)
	b.logResolved(ports.KindOrganizations, src, len(orgs))

	orders, src := resolveKind(ctx, b, ports.KindOrders, domain.SeedOrders)
	b.logResolved(ports.KindOrders, src, len(orders))

	snap := ports.Snapshot{Users: users, Organizations: orgs, Orders: orders}
	b.store.Replace(snap)

	if b.persister != nil {
		b.persister.Persist(snap)
	}

	b.once.Do(func() { close(b.ready) })
}

// Ready is closed once Initialize has completed at least once. Readers
// must wait on it before touching the entity store.
func (b *Bootstrapper) Ready() <-chan struct{} {
	return b.ready
}

// WaitReady blocks until initialization completes or ctx is cancelled.
func (b *Bootstrapper) WaitReady(ctx context.Context) error {
	select {
	case <-b.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Bootstrapper) logResolved(kind, source string, n int) {
	metrics.BootstrapSourceTotal.WithLabelValues(kind, source).Inc()
	b.log.Info().Str("kind", kind).Str("source", source).Int("records", n).Msg("collection resolved")
}

// resolveKind walks the chain for one kind. An unreachable store, a
// malformed payload and an empty collection all fall through to the next
// tier.
func resolveKind[T any](ctx context.Context, b *Bootstrapper, kind string, seed func() []T) ([]T, string) {
	if recs, ok := loadKind[T](ctx, b.external, kind, b.log, "external"); ok {
		return recs, "external"
	}
	if recs, ok := loadKind[T](ctx, b.mirror, kind, b.log, "mirror"); ok {
		return recs, "mirror"
	}
	return seed(), "defaults"
}

func loadKind[T any](ctx context.Context, store ports.SnapshotStore, kind string, log zerolog.Logger, tier string) ([]T, bool) {
	if store == nil {
		return nil, false
	}
	payload, err := store.Get(ctx, kind)
	if err != nil {
		log.Warn().Err(err).Str("kind", kind).Str("tier", tier).Msg("snapshot read failed, falling back")
		return nil, false
	}
	if len(payload) == 0 {
		return nil, false
	}
	var recs []T
	if err := json.Unmarshal(payload, &recs); err != nil {
		log.Warn().Err(err).Str("kind", kind).Str("tier", tier).Msg("snapshot payload malformed, falling back")
		return nil, false
	}
	if len(recs) == 0 {
		return nil, false
	}
	return recs, true
}
