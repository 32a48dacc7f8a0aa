package mongo

import (
	"context"
	"errors"
	"math"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

const collectionPatients = "patients"

type PatientRepository struct {
	col *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) *PatientRepository {
	return &PatientRepository{col: db.Collection(collectionPatients)}
}

// Create inserts a new admission document.
func (r *PatientRepository) Create(ctx context.Context, p *domain.Patient) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *PatientRepository) FindByID(ctx context.Context, id string) (*domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Patient
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Discharge flips status only while the document is still admitted, so two
// concurrent discharges cannot both succeed.
func (r *PatientRepository) Discharge(ctx context.Context, id string, at time.Time, notes string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "status": string(domain.PatientAdmitted)}
	update := bson.M{"$set": bson.M{
		"status":          string(domain.PatientDischarged),
		"discharged_at":   at.UTC(),
		"discharge_notes": notes,
	}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 1 {
		return nil
	}

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return domain.ErrAlreadyDischarged
}

func (r *PatientRepository) List(ctx context.Context, f ports.ListPatientsFilter) ([]*domain.Patient, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Ward != "" {
		filter["ward"] = f.Ward
	}
	if f.Search != "" {
		filter["full_name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "admitted_at", Value: -1}}).
		SetSkip(pageSkip(f.Page, f.Limit)).
		SetLimit(int64(f.Limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	var out []*domain.Patient
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PatientRepository) CountAdmittedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return r.count(ctx, bson.M{"admitted_at": between(from, to)})
}

func (r *PatientRepository) CountDischargedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return r.count(ctx, bson.M{"discharged_at": between(from, to)})
}

func (r *PatientRepository) CountByStatus(ctx context.Context, status domain.PatientStatus) (int64, error) {
	return r.count(ctx, bson.M{"status": string(status)})
}

func (r *PatientRepository) count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, filter)
}

func between(from, to time.Time) bson.M {
	return bson.M{"$gte": from.UTC(), "$lte": to.UTC()}
}

// pageSkip converts a 1-based page into a document offset without
// overflowing on large page numbers.
func pageSkip(page, limit int) int64 {
	if page <= 1 || limit <= 0 {
		return 0
	}
	skip := (int64(page) - 1) * int64(limit)
	if skip < 0 || skip/int64(limit) != int64(page)-1 {
		return math.MaxInt64
	}
	return skip
}
