package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carepoint/clinic-admin/internal/core/domain"
)

const collectionStaff = "staff"

type StaffRepository struct {
	col *mongo.Collection
}

func NewStaffRepository(db *mongo.Database) *StaffRepository {
	return &StaffRepository{col: db.Collection(collectionStaff)}
}

func (r *StaffRepository) Create(ctx context.Context, s *domain.StaffMember) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, s)
	return err
}

func (r *StaffRepository) FindByID(ctx context.Context, id string) (*domain.StaffMember, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.StaffMember
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns staff sorted by name, optionally restricted to a department.
func (r *StaffRepository) List(ctx context.Context, department string) ([]*domain.StaffMember, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if department != "" {
		filter["department"] = department
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "full_name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var out []*domain.StaffMember
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
