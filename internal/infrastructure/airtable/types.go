package airtable

import "encoding/json"

// Airtable field names. These match the column headers in the production
// base and must not be changed without migrating the base itself.
const (
	fieldProductName   = "Product Name"
	fieldDescription   = "Description"
	fieldPrice         = "Price"
	fieldCategory      = "Category"
	fieldSize          = "Size"
	fieldColor         = "Color"
	fieldStockQuantity = "Stock Quantity"
	fieldSKU           = "SKU"
	fieldProductImages = "Product Images"

	fieldCustomerName = "Customer Name"
	fieldPhoneNumber  = "Phone Number"
	fieldWilaya       = "Wilaya"
	fieldCommune      = "Commune"
	fieldDeliveryType = "Delivery Type"
	fieldOrderSize    = "size"
	fieldOrderDate    = "Order Date"
	fieldOrderStatus  = "Order Status"
)

// Delivery method display strings as stored in the orders table
const (
	deliveryHomeDisplay   = "Home Delivery"
	deliveryBureauDisplay = "Bureau (Office/Pickup Point)"
)

// record is one Airtable record envelope
type record struct {
	ID          string                     `json:"id"`
	CreatedTime string                     `json:"createdTime,omitempty"`
	Fields      map[string]json.RawMessage `json:"fields"`
}

// recordList is the response of a table listing call
type recordList struct {
	Records []record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

// createRecordRequest is the body of a record creation call
type createRecordRequest struct {
	Fields map[string]any `json:"fields"`
}

// apiError is Airtable's error envelope. The error field is a bare string on
// some endpoints and an object on others.
type apiError struct {
	Error json.RawMessage `json:"error"`
}

type apiErrorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// attachment is one entry of an attachment-type field
type attachment struct {
	ID  string `json:"id,omitempty"`
	URL string `json:"url"`
}
