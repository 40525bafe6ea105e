package airtable

import (
	"context"
	"fmt"
	"strings"

	"github.com/noorboutique/backend/internal/domain/catalog"
)

// ProductRepository reads the catalog from the products table
type ProductRepository struct {
	client *Client
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{client: client}
}

// FindAll returns every product in the table
func (r *ProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	records, err := r.client.listRecords(ctx, r.client.config.ProductsTable, "")
	if err != nil {
		return nil, err
	}
	return toProducts(records), nil
}

// FindByID returns one product by record id
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	rec, err := r.client.getRecord(ctx, r.client.config.ProductsTable, id)
	if err != nil {
		return nil, err
	}
	p := toProduct(*rec)
	return &p, nil
}

// FindByCategory returns products filed under a category. Matching is
// case-insensitive and runs in the store via a filter formula, so a category
// page never transfers the whole table.
func (r *ProductRepository) FindByCategory(ctx context.Context, category string) ([]catalog.Product, error) {
	formula := fmt.Sprintf("LOWER({%s}) = %q", fieldCategory, strings.ToLower(category))
	records, err := r.client.listRecords(ctx, r.client.config.ProductsTable, formula)
	if err != nil {
		return nil, err
	}
	return toProducts(records), nil
}

func toProducts(records []record) []catalog.Product {
	products := make([]catalog.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, toProduct(rec))
	}
	return products
}

func toProduct(rec record) catalog.Product {
	images := attachmentURLs(rec.Fields, fieldProductImages)
	image := ""
	if len(images) > 0 {
		image = images[0]
	}
	return catalog.Product{
		ID:          rec.ID,
		Name:        stringField(rec.Fields, fieldProductName),
		Description: stringField(rec.Fields, fieldDescription),
		Price:       decimalField(rec.Fields, fieldPrice),
		Category:    stringField(rec.Fields, fieldCategory),
		Size:        stringField(rec.Fields, fieldSize),
		Colors:      stringsField(rec.Fields, fieldColor),
		Stock:       intField(rec.Fields, fieldStockQuantity),
		SKU:         stringField(rec.Fields, fieldSKU),
		Image:       image,
		Images:      images,
	}
}
