package services

import (
	"context"

	"microcredit/internal/apperrors"
	"microcredit/internal/models"
	"microcredit/internal/repositories"

	"go.mongodb.org/mongo-driver/bson"
)

// CompanyStore is the record-store surface the service needs. The Mongo
// repository satisfies it; tests substitute an in-memory fake.
type CompanyStore interface {
	Insert(ctx context.Context, doc any) (string, error)
	Find(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error)
	FindAll(ctx context.Context) ([]bson.M, error)
}

type CompanyService struct {
	// Store is nil when the database is not configured; every operation
	// then fails with apperrors.ErrStoreUnavailable.
	Store CompanyStore
}

func NewCompanyService(store CompanyStore) *CompanyService {
	return &CompanyService{Store: store}
}

// List queries companies matching the optional filters, serialized for the
// wire and capped at limit.
func (s *CompanyService) List(ctx context.Context, name, country, status string, limit int64) ([]map[string]any, error) {
	if s.Store == nil {
		return nil, apperrors.ErrStoreUnavailable
	}

	filter := repositories.BuildCompanyFilter(name, country, status)
	docs, err := s.Store.Find(ctx, filter, limit)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		out = append(out, SerializeDocument(d))
	}
	return out, nil
}

// Create validates the company and inserts it, returning the assigned id.
// Nothing is persisted when validation fails.
func (s *CompanyService) Create(ctx context.Context, company *models.Company) (string, error) {
	if s.Store == nil {
		return "", apperrors.ErrStoreUnavailable
	}

	company.ApplyDefaults()
	if verr := company.Validate(); verr != nil {
		return "", verr
	}
	return s.Store.Insert(ctx, company)
}

// Stats scans the full collection and computes the dashboard aggregates.
func (s *CompanyService) Stats(ctx context.Context) (models.CompanyStats, error) {
	if s.Store == nil {
		return models.CompanyStats{}, apperrors.ErrStoreUnavailable
	}

	docs, err := s.Store.FindAll(ctx)
	if err != nil {
		return models.CompanyStats{}, err
	}
	return AggregateCompanyStats(docs), nil
}
