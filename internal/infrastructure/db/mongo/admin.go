package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Admin implements ports.DatabaseAdmin over the application database.
type Admin struct {
	db *mongo.Database
}

func NewAdmin(db *mongo.Database) *Admin {
	return &Admin{db: db}
}

var collections = []string{
	collectionUsers,
	collectionPatients,
	collectionStaff,
	collectionPayroll,
	collectionExpenses,
	collectionPayments,
	collectionSettings,
	collectionAudit,
}

// CollectionCounts returns an estimated document count per collection.
func (a *Admin) CollectionCounts(ctx context.Context) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	out := make(map[string]int64, len(collections))
	for _, name := range collections {
		n, err := a.db.Collection(name).EstimatedDocumentCount(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", name, err)
		}
		out[name] = n
	}
	return out, nil
}

// EnsureIndexes creates the indexes every repository query relies on.
// Existing indexes with the same keys are left alone by the server.
func (a *Admin) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		collectionUsers: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionPatients: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "admitted_at", Value: -1}}},
			{Keys: bson.D{{Key: "ward", Value: 1}}},
			{Keys: bson.D{{Key: "discharged_at", Value: 1}}},
		},
		collectionStaff: {
			{Keys: bson.D{{Key: "department", Value: 1}, {Key: "full_name", Value: 1}}},
		},
		collectionPayroll: {
			{Keys: bson.D{{Key: "period", Value: 1}, {Key: "staff_id", Value: 1}}},
		},
		collectionExpenses: {
			{Keys: bson.D{{Key: "spent_at", Value: -1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		collectionPayments: {
			{Keys: bson.D{{Key: "patient_id", Value: 1}}},
			{Keys: bson.D{{Key: "received_at", Value: -1}}},
		},
		collectionAudit: {
			{Keys: bson.D{{Key: "at", Value: -1}}},
			{Keys: bson.D{{Key: "actor_id", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := a.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("indexes on %s: %w", name, err)
		}
	}
	return nil
}
