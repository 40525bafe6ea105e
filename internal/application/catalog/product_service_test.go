package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/noorboutique/backend/internal/domain/catalog"
	"github.com/noorboutique/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, category string) ([]catalog.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func sampleProducts() []catalog.Product {
	return []catalog.Product{
		{
			ID:       "recB",
			Name:     "Hijab Soie",
			Price:    decimal.NewFromInt(1200),
			Category: "Hijabs",
			Stock:    3,
			Image:    "https://cdn.example.com/hijab.jpg",
		},
		{
			ID:       "recA",
			Name:     "Abaya Classique",
			Price:    decimal.NewFromInt(4500),
			Category: "Abayas",
			Stock:    0,
		},
	}
}

func TestProductServiceListSortsByName(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("FindAll", mock.Anything).Return(sampleProducts(), nil)
	svc := NewProductService(repo)

	resp, err := svc.List(context.Background(), "")

	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Abaya Classique", resp.Products[0].Name)
	assert.Equal(t, "Hijab Soie", resp.Products[1].Name)
	assert.False(t, resp.Products[0].InStock)
	assert.True(t, resp.Products[1].InStock)
	repo.AssertExpectations(t)
}

func TestProductServiceListByCategory(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("FindByCategory", mock.Anything, "Hijabs").Return(sampleProducts()[:1], nil)
	svc := NewProductService(repo)

	resp, err := svc.List(context.Background(), "Hijabs")

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "recB", resp.Products[0].ID)
	repo.AssertExpectations(t)
}

func TestProductServiceGetByIDNotFound(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("FindByID", mock.Anything, "recMissing").Return(nil, shared.ErrNotFound)
	svc := NewProductService(repo)

	_, err := svc.GetByID(context.Background(), "recMissing")

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProductServiceVariants(t *testing.T) {
	repo := new(MockProductRepository)
	p := sampleProducts()[0]
	repo.On("FindByID", mock.Anything, "recB").Return(&p, nil)
	svc := NewProductService(repo)

	variants, err := svc.Variants(context.Background(), "recB")

	require.NoError(t, err)
	require.Len(t, variants, 5)
	assert.Equal(t, "S", variants[0].Size)
	assert.Equal(t, "XXL", variants[4].Size)
	for _, v := range variants {
		assert.Equal(t, "recB", v.ProductID)
		assert.True(t, v.Price.Equal(decimal.NewFromInt(1200)))
		assert.True(t, v.InStock)
	}
}

type fakeImageCache struct {
	entries map[string]string
}

func newFakeImageCache() *fakeImageCache {
	return &fakeImageCache{entries: map[string]string{}}
}

func (c *fakeImageCache) Get(category string) (string, bool) {
	v, ok := c.entries[category]
	return v, ok
}

func (c *fakeImageCache) Set(category, image string) {
	c.entries[category] = image
}

func TestCategoryImageServiceResolvesAndCaches(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("FindByCategory", mock.Anything, "Hijabs").Return(sampleProducts(), nil).Once()
	cache := newFakeImageCache()
	svc := NewCategoryImageService(repo, cache, zap.NewNop())

	resp, err := svc.Resolve(context.Background(), "Hijabs")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/hijab.jpg", resp.Image)

	// second resolve is served from the cache
	resp2, err := svc.Resolve(context.Background(), "Hijabs")
	require.NoError(t, err)
	assert.Equal(t, resp.Image, resp2.Image)
	repo.AssertExpectations(t)
}

func TestCategoryImageServiceCachesEmptyResult(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("FindByCategory", mock.Anything, "Shoes").Return([]catalog.Product{}, nil).Once()
	cache := newFakeImageCache()
	svc := NewCategoryImageService(repo, cache, zap.NewNop())

	resp, err := svc.Resolve(context.Background(), "Shoes")
	require.NoError(t, err)
	assert.Empty(t, resp.Image)

	resp2, err := svc.Resolve(context.Background(), "Shoes")
	require.NoError(t, err)
	assert.Empty(t, resp2.Image)
	repo.AssertExpectations(t)
}

func TestCategoryImageServiceUpstreamError(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("FindByCategory", mock.Anything, "Hijabs").Return(nil, errors.New("upstream down"))
	svc := NewCategoryImageService(repo, newFakeImageCache(), zap.NewNop())

	_, err := svc.Resolve(context.Background(), "Hijabs")

	assert.Error(t, err)
}
