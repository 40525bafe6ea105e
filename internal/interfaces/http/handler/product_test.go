package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	appcatalog "github.com/noorboutique/backend/internal/application/catalog"
	"github.com/noorboutique/backend/internal/domain/catalog"
	"github.com/noorboutique/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

type noopImageCache struct{}

func (noopImageCache) Get(string) (string, bool) { return "", false }
func (noopImageCache) Set(string, string)        {}

func newCatalogRouter(repo catalog.ProductRepository) *gin.Engine {
	products := appcatalog.NewProductService(repo)
	images := appcatalog.NewCategoryImageService(repo, noopImageCache{}, zap.NewNop())
	h := NewProductHandler(products, images)

	r := gin.New()
	g := r.Group("/api/v1/catalog")
	g.GET("/products", h.List)
	g.GET("/products/:id", h.GetByID)
	g.GET("/products/:id/variants", h.Variants)
	g.GET("/categories/:category/image", h.CategoryImage)
	return r
}

func testProduct(id, name, category string) catalog.Product {
	return catalog.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.NewFromInt(3500),
		Category: category,
		Stock:    4,
		Image:    "https://dl.airtable.com/" + id + ".jpg",
	}
}

func TestProductHandlerList(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("FindAll", mock.Anything).Return([]catalog.Product{
		testProduct("recB", "Hijab Soie", "Hijabs"),
		testProduct("recA", "Abaya Noire", "Abayas"),
	}, nil)

	r := newCatalogRouter(repo)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/catalog/products", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                           `json:"success"`
		Data    appcatalog.ProductListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Data.Total)
	// sorted by name
	assert.Equal(t, "Abaya Noire", resp.Data.Products[0].Name)
	assert.Equal(t, "Hijab Soie", resp.Data.Products[1].Name)
	repo.AssertExpectations(t)
}

func TestProductHandlerListByCategory(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("FindByCategory", mock.Anything, "hijabs").Return([]catalog.Product{
		testProduct("recB", "Hijab Soie", "Hijabs"),
	}, nil)

	r := newCatalogRouter(repo)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/catalog/products?category=hijabs", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data appcatalog.ProductListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.Total)
	assert.Equal(t, "Hijabs", resp.Data.Products[0].Category)
	repo.AssertExpectations(t)
}

func TestProductHandlerGetByID(t *testing.T) {
	p := testProduct("recPROD123", "Abaya Noire", "Abayas")
	repo := new(MockProductRepository)
	repo.On("FindByID", mock.Anything, "recPROD123").Return(&p, nil)

	r := newCatalogRouter(repo)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/catalog/products/recPROD123", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data appcatalog.ProductResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "recPROD123", resp.Data.ID)
	assert.True(t, resp.Data.InStock)
}

func TestProductHandlerGetByIDNotFound(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("FindByID", mock.Anything, "recMISSING").Return(nil, shared.ErrNotFound)

	r := newCatalogRouter(repo)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/catalog/products/recMISSING", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "ERR_NOT_FOUND", resp.Error.Code)
}

func TestProductHandlerVariants(t *testing.T) {
	p := testProduct("recPROD123", "Abaya Noire", "Abayas")
	repo := new(MockProductRepository)
	repo.On("FindByID", mock.Anything, "recPROD123").Return(&p, nil)

	r := newCatalogRouter(repo)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/catalog/products/recPROD123/variants", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []appcatalog.VariantResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 5)
	assert.Equal(t, "S", resp.Data[0].Size)
	assert.Equal(t, "recPROD123", resp.Data[0].ProductID)
	assert.True(t, resp.Data[0].InStock)
}

func TestProductHandlerCategoryImage(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("FindByCategory", mock.Anything, "abayas").Return([]catalog.Product{
		testProduct("recA", "Abaya Noire", "Abayas"),
	}, nil)

	r := newCatalogRouter(repo)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/catalog/categories/abayas/image", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data appcatalog.CategoryImageResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "abayas", resp.Data.Category)
	assert.Equal(t, "https://dl.airtable.com/recA.jpg", resp.Data.Image)
}
