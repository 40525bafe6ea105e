package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	d := NewDraft(ProductSnapshot{
		ProductID: "recPROD123",
		Name:      "Abaya Classique",
		Price:     decimal.NewFromInt(4500),
		Image:     "https://cdn.example.com/abaya.jpg",
	})
	d.CustomerName = "Amina Benali"
	d.PhoneNumber = "0551234567"
	d.Wilaya = "Alger"
	d.Commune = "Bab El Oued"
	d.Size = "M"
	return d
}

func TestValidPhoneNumber(t *testing.T) {
	cases := []struct {
		number string
		valid  bool
	}{
		{"0551234567", true},
		{"0661234567", true},
		{"0771234567", true},
		{"+213551234567", true},
		{"0555 123 456", true},
		{"+213 661 234 567", true},
		{"0455123456", false},
		{"0851234567", false},
		{"551234567", false},
		{"055123456", false},
		{"05512345678", false},
		{"+21355123456", false},
		{"", false},
		{"abcdefghij", false},
	}
	for _, tc := range cases {
		t.Run(tc.number, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidPhoneNumber(tc.number))
		})
	}
}

func TestDraftValidateAccumulatesAllErrors(t *testing.T) {
	d := NewDraft(ProductSnapshot{ProductID: "recPROD123"})

	errs := d.Validate()

	require.False(t, errs.IsEmpty())
	assert.Len(t, errs, 5)
	assert.Equal(t, MsgNameRequired, errs[FieldCustomerName])
	assert.Equal(t, MsgPhoneRequired, errs[FieldPhoneNumber])
	assert.Equal(t, MsgWilayaRequired, errs[FieldWilaya])
	assert.Equal(t, MsgCommuneRequired, errs[FieldCommune])
	assert.Equal(t, MsgSizeRequired, errs[FieldSize])
}

func TestDraftValidateValid(t *testing.T) {
	d := validDraft()
	errs := d.Validate()
	assert.True(t, errs.IsEmpty())
}

func TestDraftValidatePhoneFormat(t *testing.T) {
	d := validDraft()
	d.PhoneNumber = "12345"

	errs := d.Validate()

	require.True(t, errs.Has(FieldPhoneNumber))
	assert.Equal(t, MsgPhoneInvalid, errs[FieldPhoneNumber])
	assert.Len(t, errs, 1)
}

func TestDraftValidateWhitespaceOnlyFields(t *testing.T) {
	d := validDraft()
	d.CustomerName = "   "
	d.Commune = "\t"

	errs := d.Validate()

	assert.True(t, errs.Has(FieldCustomerName))
	assert.True(t, errs.Has(FieldCommune))
}

func TestCanonicalWilaya(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Alger", "Alger"},
		{"alger", "Alger"},
		{"ALGER", "Alger"},
		{"Béjaïa", "Béjaïa"},
		{"bejaia", "Béjaïa"},
		{"M'Sila", "M'Sila"},
		{"msila", "M'Sila"},
		{"ghardaia", "Ghardaïa"},
		{"  Oran  ", "Oran"},
	}
	for _, tc := range cases {
		got, ok := CanonicalWilaya(tc.in)
		require.True(t, ok, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestCanonicalWilayaUnknown(t *testing.T) {
	_, ok := CanonicalWilaya("Atlantis")
	assert.False(t, ok)
	assert.False(t, IsValidWilaya(""))
}

func TestWilayaCount(t *testing.T) {
	assert.Len(t, Wilayas, 58)
}

func TestFromDraftNormalizes(t *testing.T) {
	d := validDraft()
	d.PhoneNumber = "0551 234 567"
	d.Wilaya = "bejaia"
	placedAt := time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)

	o := FromDraft(d, placedAt)

	assert.Equal(t, "0551234567", o.PhoneNumber)
	assert.Equal(t, "Béjaïa", o.Wilaya)
	assert.Equal(t, "recPROD123", o.ProductID)
	assert.Equal(t, StatusNew, o.Status)
	assert.Equal(t, placedAt, o.PlacedAt)
	assert.True(t, o.ProductPrice.Equal(decimal.NewFromInt(4500)))
}
