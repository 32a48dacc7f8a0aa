package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carepoint/clinic-admin/internal/core/domain"
)

const collectionAudit = "audit_events"

// AuditRepository persists the audit trail.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAudit)}
}

// Insert appends an entry to the audit_events collection.
func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	doc := bson.M{
		"actor_id":       entry.ActorID,
		"actor_username": entry.ActorUsername,
		"action":         entry.Action,
		"resource":       entry.Resource,
		"at":             entry.At.UTC(),
		"processed_at":   time.Now().UTC(),
	}
	if entry.ResourceID != "" {
		doc["resource_id"] = entry.ResourceID
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}

// Recent returns the newest entries first.
func (r *AuditRepository) Recent(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if limit <= 0 || limit > 500 {
		limit = 50
	}
	opts := options.Find().SetSort(bson.D{{Key: "at", Value: -1}}).SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var out []*domain.AuditEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
