package airtable

import "errors"

// DefaultBaseURL is the production Airtable REST endpoint
const DefaultBaseURL = "https://api.airtable.com/v0"

// Errors for Airtable configuration
var (
	ErrConfigMissingAPIKey = errors.New("airtable: api key is required")
	ErrConfigMissingBaseID = errors.New("airtable: base id is required")
)

// Config holds configuration for the Airtable record store
type Config struct {
	// APIKey is the personal access token used as a bearer token
	APIKey string
	// BaseID identifies the Airtable base holding the store's tables
	BaseID string
	// ProductsTable is the products table name or id
	ProductsTable string
	// OrdersTable is the orders table name or id
	OrdersTable string
	// CustomersTable is the customers table name or id
	CustomersTable string
	// BaseURL is the API endpoint, overridable for tests
	BaseURL string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
}

// NewConfig creates an Airtable configuration with defaults
func NewConfig(apiKey, baseID string) *Config {
	return &Config{
		APIKey:         apiKey,
		BaseID:         baseID,
		ProductsTable:  "Products",
		OrdersTable:    "Orders",
		CustomersTable: "Customers",
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: 30,
	}
}

// Validate validates the configuration and fills defaults. A missing API key
// is reported, not fatal; the server boots without a record store and the
// order endpoint answers with a configuration error until one is provided.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	if c.ProductsTable == "" {
		c.ProductsTable = "Products"
	}
	if c.OrdersTable == "" {
		c.OrdersTable = "Orders"
	}
	if c.CustomersTable == "" {
		c.CustomersTable = "Customers"
	}
	if c.APIKey == "" {
		return ErrConfigMissingAPIKey
	}
	if c.BaseID == "" {
		return ErrConfigMissingBaseID
	}
	return nil
}
