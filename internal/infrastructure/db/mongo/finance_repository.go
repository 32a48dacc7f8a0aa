package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

const (
	collectionExpenses = "expenses"
	collectionPayments = "payments"
)

type ExpenseRepository struct {
	col *mongo.Collection
}

func NewExpenseRepository(db *mongo.Database) *ExpenseRepository {
	return &ExpenseRepository{col: db.Collection(collectionExpenses)}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, e)
	return err
}

func (r *ExpenseRepository) List(ctx context.Context, f ports.ExpenseFilter) ([]*domain.Expense, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if rng := openRange(f.From, f.To); len(rng) > 0 {
		filter["spent_at"] = rng
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "spent_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var out []*domain.Expense
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ExpenseRepository) Total(ctx context.Context, from, to time.Time) (int64, error) {
	return sumAmount(ctx, r.col, bson.M{"spent_at": between(from, to)})
}

type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection(collectionPayments)}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *PaymentRepository) List(ctx context.Context, patientID string) ([]*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if patientID != "" {
		filter["patient_id"] = patientID
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "received_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var out []*domain.Payment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PaymentRepository) Total(ctx context.Context, from, to time.Time) (int64, error) {
	return sumAmount(ctx, r.col, bson.M{"received_at": between(from, to)})
}

// sumAmount totals amount_cents over the documents matching filter.
func sumAmount(ctx context.Context, col *mongo.Collection, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount_cents"}}}},
	}
	cur, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var rows []struct {
		Total int64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

func openRange(from, to time.Time) bson.M {
	rng := bson.M{}
	if !from.IsZero() {
		rng["$gte"] = from.UTC()
	}
	if !to.IsZero() {
		rng["$lte"] = to.UTC()
	}
	return rng
}
