package queue

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/orgsuite/admin-console/internal/core/domain"
	"github.com/orgsuite/admin-console/internal/core/ports"
)

type fakeStore struct {
	mu   sync.Mutex
	data map[string][]byte
	fail bool
	puts int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

func (f *fakeStore) Put(_ context.Context, kind string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	if f.fail {
		return errors.New("write refused")
	}
	f.data[kind] = append([]byte(nil), payload...)
	return nil
}

func (f *fakeStore) Get(_ context.Context, kind string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[kind], nil
}

func seedSnapshot() ports.Snapshot {
	return ports.Snapshot{
		Users:         domain.SeedUsers(),
		Organizations: domain.SeedOrganizations(),
		Orders:        domain.SeedOrders(),
	}
}

func TestPersister_WritesAllKindsToBothTiers(t *testing.T) {
	external := newFakeStore()
	mirror := newFakeStore()
	p := NewPersister(external, mirror, zerolog.Nop())

	p.writeSnapshot(context.Background(), seedSnapshot())

	for _, store := range []*fakeStore{external, mirror} {
		for _, kind := range []string{ports.KindUsers, ports.KindOrganizations, ports.KindOrders} {
			payload, _ := store.Get(context.Background(), kind)
			if len(payload) == 0 {
				t.Fatalf("kind %s missing from tier", kind)
			}
		}
	}

	var users []domain.User
	payload, _ := external.Get(context.Background(), ports.KindUsers)
	if err := json.Unmarshal(payload, &users); err != nil {
		t.Fatalf("stored payload not valid JSON: %v", err)
	}
	if len(users) != 3 || users[0].ID != "user-1" {
		t.Fatalf("unexpected stored users: %+v", users)
	}
}

func TestPersister_FailingTierDoesNotBlockTheOther(t *testing.T) {
	external := newFakeStore()
	external.fail = true
	mirror := newFakeStore()
	p := NewPersister(external, mirror, zerolog.Nop())

	p.writeSnapshot(context.Background(), seedSnapshot())

	if external.puts != 3 {
		t.Fatalf("failing tier should still be attempted per kind, got %d puts", external.puts)
	}
	payload, _ := mirror.Get(context.Background(), ports.KindUsers)
	if len(payload) == 0 {
		t.Fatalf("healthy tier skipped after the other failed")
	}
}

func TestPersister_NilTiersSkipped(t *testing.T) {
	mirror := newFakeStore()
	p := NewPersister(nil, mirror, zerolog.Nop())

	p.writeSnapshot(context.Background(), seedSnapshot())

	payload, _ := mirror.Get(context.Background(), ports.KindOrders)
	if len(payload) == 0 {
		t.Fatalf("mirror not written when external tier is absent")
	}
}

func TestPersister_PersistNeverBlocks(t *testing.T) {
	// No worker running: the buffer fills and further calls must still
	// return, dropping superseded snapshots.
	p := NewPersister(newFakeStore(), newFakeStore(), zerolog.Nop())

	for i := 0; i < channelBuffer*3; i++ {
		p.Persist(ports.Snapshot{})
	}
	if len(p.jobs) != channelBuffer {
		t.Fatalf("expected a full buffer, got %d", len(p.jobs))
	}
}

func TestPersister_WorkerDrainsQueue(t *testing.T) {
	external := newFakeStore()
	p := NewPersister(external, nil, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	p.Persist(seedSnapshot())

	// The worker is asynchronous; poll until the write lands.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		payload, _ := external.Get(context.Background(), ports.KindUsers)
		if len(payload) > 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("snapshot never written by the worker")
}
