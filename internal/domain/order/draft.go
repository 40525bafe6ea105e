package order

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// DeliveryType is the shopper's chosen delivery method
type DeliveryType string

const (
	// DeliveryHome is door-to-door home delivery
	DeliveryHome DeliveryType = "home"
	// DeliveryBureau is delivery to a pickup point / office
	DeliveryBureau DeliveryType = "bureau"
)

// IsValid checks if the delivery type is a known value
func (d DeliveryType) IsValid() bool {
	return d == DeliveryHome || d == DeliveryBureau
}

// String returns the string representation of DeliveryType
func (d DeliveryType) String() string {
	return string(d)
}

// Sizes is the fixed garment size set offered by the storefront
var Sizes = []string{"S", "M", "L", "XL", "XXL"}

// IsValidSize reports whether s is one of the offered sizes
func IsValidSize(s string) bool {
	for _, size := range Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Draft field names, used as keys in ValidationErrorSet and mirrored by the
// JSON field names on the order submission endpoint.
const (
	FieldCustomerName = "customerName"
	FieldPhoneNumber  = "phoneNumber"
	FieldWilaya       = "wilaya"
	FieldCommune      = "commune"
	FieldDeliveryType = "deliveryType"
	FieldProductName  = "productName"
	FieldProductPrice = "productPrice"
	FieldProductID    = "productId"
	FieldSize         = "size"
)

// Validation messages shown to the shopper, Arabic first per the RTL UI
const (
	MsgNameRequired    = "الاسم مطلوب / Name is required"
	MsgPhoneRequired   = "رقم الهاتف مطلوب / Phone number is required"
	MsgPhoneInvalid    = "رقم هاتف جزائري صحيح مطلوب / Valid Algerian phone number required"
	MsgWilayaRequired  = "الولاية مطلوبة / Wilaya is required"
	MsgCommuneRequired = "البلدية مطلوبة / Commune is required"
	MsgSizeRequired    = "الحجم مطلوب / Size is required"
)

// phonePattern matches the Algerian mobile numbering plan: optional +213
// country code or leading 0, operator prefix 5-7, then 8 digits. The
// acceptance set is load-bearing; UI, API and record store all rely on it.
var phonePattern = regexp.MustCompile(`^(\+213|0)[5-7][0-9]{8}$`)

// whitespaceStripper removes every whitespace rune, so "0555 123 456"
// validates the same as "0555123456"
var whitespaceStripper = strings.NewReplacer(" ", "", "\t", "", " ", "")

// StripPhoneWhitespace removes all whitespace from a phone number
func StripPhoneWhitespace(number string) string {
	return whitespaceStripper.Replace(number)
}

// ValidPhoneNumber reports whether the number, with internal whitespace
// stripped, matches the Algerian mobile pattern
func ValidPhoneNumber(number string) bool {
	return phonePattern.MatchString(StripPhoneWhitespace(number))
}

// ProductSnapshot is the product data captured when the shopper opens the
// order dialog. It is copied, not referenced: later catalog changes must not
// alter an open draft.
type ProductSnapshot struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Image     string
}

// Draft is the shopper's in-progress order for one checkout session.
// It is mutated field-by-field as the shopper fills the form and discarded
// on successful submission or dialog close.
type Draft struct {
	CustomerName string
	PhoneNumber  string
	Wilaya       string
	Commune      string
	DeliveryType DeliveryType
	Size         string
	Product      ProductSnapshot
}

// NewDraft creates an empty draft carrying the product snapshot.
// Home delivery is the pre-selected default.
func NewDraft(snapshot ProductSnapshot) Draft {
	return Draft{
		DeliveryType: DeliveryHome,
		Product:      snapshot,
	}
}

// ValidationErrorSet maps failing field names to shopper-facing messages.
// An empty set means the draft is submittable.
type ValidationErrorSet map[string]string

// IsEmpty reports whether every field passed validation
func (v ValidationErrorSet) IsEmpty() bool {
	return len(v) == 0
}

// Has reports whether the given field failed validation
func (v ValidationErrorSet) Has(field string) bool {
	_, ok := v[field]
	return ok
}

// Validate runs every field check and accumulates all failures. Checks never
// short-circuit: the UI highlights every failing field at once, not the
// first one encountered.
func (d *Draft) Validate() ValidationErrorSet {
	errs := ValidationErrorSet{}

	if strings.TrimSpace(d.CustomerName) == "" {
		errs[FieldCustomerName] = MsgNameRequired
	}

	if strings.TrimSpace(d.PhoneNumber) == "" {
		errs[FieldPhoneNumber] = MsgPhoneRequired
	} else if !ValidPhoneNumber(d.PhoneNumber) {
		errs[FieldPhoneNumber] = MsgPhoneInvalid
	}

	if !IsValidWilaya(d.Wilaya) {
		errs[FieldWilaya] = MsgWilayaRequired
	}

	if strings.TrimSpace(d.Commune) == "" {
		errs[FieldCommune] = MsgCommuneRequired
	}

	if !IsValidSize(strings.TrimSpace(d.Size)) {
		errs[FieldSize] = MsgSizeRequired
	}

	return errs
}
