package catalog

import (
	"github.com/shopspring/decimal"
)

// Product is the internal representation of a catalog item. It is produced
// by the record-store translation boundary; display-string attribute names
// never leak past that mapping.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Size        string
	Colors      []string
	Stock       int
	SKU         string
	Image       string
	Images      []string
}

// InStock returns true if the product has remaining stock
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// PrimaryColor returns the first listed color, if any
func (p *Product) PrimaryColor() string {
	if len(p.Colors) == 0 {
		return ""
	}
	return p.Colors[0]
}

// HasImage returns true if the product carries at least one image attachment
func (p *Product) HasImage() bool {
	return p.Image != ""
}
