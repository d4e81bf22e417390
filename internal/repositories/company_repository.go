package repositories

import (
	"context"
	"fmt"

	"microcredit/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CompanyRepository struct {
	db *mongo.Database
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) collection() *mongo.Collection {
	return r.db.Collection(models.CompanyCollection)
}

// Insert stores one document and returns the assigned id as a hex string.
func (r *CompanyRepository) Insert(ctx context.Context, doc any) (string, error) {
	res, err := r.collection().InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert company: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// Find returns documents matching the filter, capped at limit.
func (r *CompanyRepository) Find(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error) {
	cur, err := r.collection().Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find companies: %w", err)
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode companies: %w", err)
	}
	return docs, nil
}

// FindAll scans the whole collection. Stats are computed over this snapshot,
// so the call is unbounded on purpose.
func (r *CompanyRepository) FindAll(ctx context.Context) ([]bson.M, error) {
	return r.Find(ctx, bson.M{}, 0)
}

// Ping reports store reachability for the diagnostic endpoint.
func (r *CompanyRepository) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, nil)
}

// Collections lists up to max collection names for the diagnostic endpoint.
func (r *CompanyRepository) Collections(ctx context.Context, max int) ([]string, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	if max > 0 && len(names) > max {
		names = names[:max]
	}
	return names, nil
}

// DatabaseName exposes the configured database name for diagnostics.
func (r *CompanyRepository) DatabaseName() string {
	return r.db.Name()
}
