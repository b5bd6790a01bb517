package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const snapshotCollection = "snapshots"

// SnapshotStore is the external blob store: one document per collection
// kind, holding the serialized JSON array as an opaque payload.
type SnapshotStore struct {
	coll *mongo.Collection
}

func NewSnapshotStore(db *mongo.Database) *SnapshotStore {
	return &SnapshotStore{coll: db.Collection(snapshotCollection)}
}

type snapshotDoc struct {
	Kind      string           `bson:"_id"`
	Payload   primitive.Binary `bson:"payload"`
	UpdatedAt int64            `bson:"updated_at"`
}

// Put replaces the stored payload for kind wholesale.
func (s *SnapshotStore) Put(ctx context.Context, kind string, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := snapshotDoc{
		Kind:      kind,
		Payload:   primitive.Binary{Data: payload},
		UpdatedAt: time.Now().UTC().Unix(),
	}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": kind}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("put snapshot %s: %w", kind, err)
	}
	return nil
}

// Get returns the stored payload for kind, or nil when the kind has never
// been stored.
func (s *SnapshotStore) Get(ctx context.Context, kind string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc snapshotDoc
	if err := s.coll.FindOne(ctx, bson.M{"_id": kind}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot %s: %w", kind, err)
	}
	return doc.Payload.Data, nil
}
