package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/orgsuite/admin-console/internal/api/metrics"
	"github.com/orgsuite/admin-console/internal/core/ports"
)

const (
	channelBuffer = 64
	writeTimeout  = 10 * time.Second
)

// Persister writes entity snapshots to the external store and the local
// mirror in the background. Each snapshot is a whole-collection
// replacement, so pending writes are coalesced: only the most recent
// snapshot matters and the last writer wins. Write failures are logged
// and swallowed; the in-memory state is authoritative either way.
type Persister struct {
	jobs     chan ports.Snapshot
	external ports.SnapshotStore
	mirror   ports.SnapshotStore
	log      zerolog.Logger
}

// NewPersister creates a Persister over the two snapshot stores. Either
// store may be nil, in which case that tier is skipped.
func NewPersister(external, mirror ports.SnapshotStore, log zerolog.Logger) *Persister {
	return &Persister{
		jobs:     make(chan ports.Snapshot, channelBuffer),
		external: external,
		mirror:   mirror,
		log:      log,
	}
}

// Start launches the worker goroutine. The worker stops when ctx is
// cancelled.
func (p *Persister) Start(ctx context.Context) {
	go p.run(ctx)
}

// Persist enqueues a snapshot without blocking. If the buffer is full the
// oldest pending snapshot is dropped: it is superseded anyway.
func (p *Persister) Persist(snap ports.Snapshot) {
	for {
		select {
		case p.jobs <- snap:
			return
		default:
		}
		select {
		case <-p.jobs:
		default:
		}
	}
}

func (p *Persister) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case snap := <-p.jobs:
			// Coalesce any snapshots queued behind this one.
			for {
				select {
				case next := <-p.jobs:
					snap = next
					continue
				default:
				}
				break
			}
			p.writeSnapshot(ctx, snap)
		}
	}
}

// writeSnapshot pushes all three kinds to both tiers.
func (p *Persister) writeSnapshot(ctx context.Context, snap ports.Snapshot) {
	payloads, err := encodeSnapshot(snap)
	if err != nil {
		p.log.Error().Err(err).Msg("snapshot encode failed")
		return
	}

	p.writeTier(ctx, "external", p.external, payloads)
	p.writeTier(ctx, "mirror", p.mirror, payloads)
}

func (p *Persister) writeTier(ctx context.Context, tier string, store ports.SnapshotStore, payloads map[string][]byte) {
	if store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	for kind, payload := range payloads {
		if err := store.Put(ctx, kind, payload); err != nil {
			metrics.SnapshotPersistTotal.WithLabelValues(tier, "error").Inc()
			p.log.Warn().Err(err).Str("tier", tier).Str("kind", kind).Msg("snapshot write failed")
			continue
		}
		metrics.SnapshotPersistTotal.WithLabelValues(tier, "ok").Inc()
	}
}

func encodeSnapshot(snap ports.Snapshot) (map[string][]byte, error) {
	users, err := json.Marshal(snap.Users)
	if err != nil {
		return nil, err
	}
	orgs, err := json.Marshal(snap.Organizations)
	if err != nil {
		return nil, err
	}
	orders, err := json.Marshal(snap.Orders)
	if err != nil {
		return nil, err
	}
	return map[string][]byte{
		ports.KindUsers:         users,
		ports.KindOrganizations: orgs,
		ports.KindOrders:        orders,
	}, nil
}
