package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

const collectionPayroll = "payroll_adjustments"

type PayrollRepository struct {
	col *mongo.Collection
}

func NewPayrollRepository(db *mongo.Database) *PayrollRepository {
	return &PayrollRepository{col: db.Collection(collectionPayroll)}
}

func (r *PayrollRepository) Create(ctx context.Context, a *domain.PayrollAdjustment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *PayrollRepository) List(ctx context.Context, f ports.PayrollFilter) ([]*domain.PayrollAdjustment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.StaffID != "" {
		filter["staff_id"] = f.StaffID
	}
	if f.Period != "" {
		filter["period"] = f.Period
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var out []*domain.PayrollAdjustment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Totals relies on YYYY-MM periods sorting lexically.
func (r *PayrollRepository) Totals(ctx context.Context, fromPeriod, toPeriod string) (ports.PayrollTotals, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"period": bson.M{"$gte": fromPeriod, "$lte": toPeriod}}}},
		{{Key: "$group", Value: bson.M{"_id": "$kind", "total": bson.M{"$sum": "$amount_cents"}}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return ports.PayrollTotals{}, err
	}
	var rows []struct {
		Kind  string `bson:"_id"`
		Total int64  `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return ports.PayrollTotals{}, err
	}

	var t ports.PayrollTotals
	for _, row := range rows {
		switch domain.AdjustmentKind(row.Kind) {
		case domain.AdjustmentBonus:
			t.BonusCents = row.Total
		case domain.AdjustmentDeduction:
			t.DeductionCents = row.Total
		}
	}
	return t, nil
}
