package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *mockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *mockCache) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	args := m.Called(ctx, prefix)
	return args.Int(0), args.Error(1)
}

type mockRecommender struct {
	mock.Mock
}

func (m *mockRecommender) Recommend(responses *entities.PatientResponses) (*entities.Recommendation, error) {
	args := m.Called(responses)
	rec, _ := args.Get(0).(*entities.Recommendation)
	return rec, args.Error(1)
}

type panickingRecommender struct{}

func (panickingRecommender) Recommend(*entities.PatientResponses) (*entities.Recommendation, error) {
	panic("malformed catalog entry")
}

type mockCatalogWriter struct {
	mock.Mock
}

func (m *mockCatalogWriter) ReplaceAll(ctx context.Context, entries []entities.CatalogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

type stubRepository struct {
	entries []entities.CatalogEntry
	err     error
}

func (s stubRepository) LoadEntries(context.Context) ([]entities.CatalogEntry, error) {
	return s.entries, s.err
}
