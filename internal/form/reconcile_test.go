package form

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileDefaultsMissingPrices(t *testing.T) {
	pf, warnings := Reconcile(Document{
		"category_name":  "Kazanlar",
		"name":           "Çay Kazanı 100L",
		"purchase_price": nil,
		"sale_price":     "",
	})

	assert.Equal(t, 0, pf.PurchasePrice)
	assert.Equal(t, 0, pf.SalePrice)
	assert.Equal(t, 0, pf.NegotiationMargin)
	assert.Equal(t, "amount", pf.NegotiationType)
	assert.ElementsMatch(t, []string{
		"Alış fiyatı belirtilmemiş - 0 olarak ayarlandı",
		"Satış fiyatı belirtilmemiş - 0 olarak ayarlandı",
	}, warnings)
}

func TestReconcileKeepsGivenPrices(t *testing.T) {
	pf, warnings := Reconcile(Document{
		"category_name":  "Kazanlar",
		"name":           "Kazan",
		"purchase_price": json.Number("1500"),
		"sale_price":     json.Number("2000"),
	})

	assert.Equal(t, json.Number("1500"), pf.PurchasePrice)
	assert.Equal(t, json.Number("2000"), pf.SalePrice)
	assert.Empty(t, warnings)
}

func TestReconcileFiltersUnknownSpecFields(t *testing.T) {
	pf, warnings := Reconcile(Document{
		"category_name": "Kazanlar",
		"name":          "Kazan",
		"extra_specs": map[string]any{
			"capacity_liters": json.Number("100"),
			"bogus_field":     "x",
			"energy_type":     nil,
		},
	})

	assert.Equal(t, map[string]any{"capacity_liters": json.Number("100")}, pf.ExtraSpecs)
	assert.Contains(t, warnings, "Tanımsız teknik alan atlandı: bogus_field")
}

func TestReconcileDropsEmptySpecValues(t *testing.T) {
	pf, _ := Reconcile(Document{
		"category_name": "Fırınlar",
		"extra_specs": map[string]any{
			"tray_count":  json.Number("10"),
			"energy_type": "",
			"tray_size":   "null",
		},
	})

	assert.Equal(t, map[string]any{"tray_count": json.Number("10")}, pf.ExtraSpecs)
}

func TestReconcileUnknownCategoryKeepsSpecNames(t *testing.T) {
	// No form template means no allowlist; only empty values are dropped.
	pf, warnings := Reconcile(Document{
		"category_name":  "Mikserler",
		"purchase_price": json.Number("1000"),
		"sale_price":     json.Number("1500"),
		"extra_specs": map[string]any{
			"bowl_liters": json.Number("20"),
			"speed_count": nil,
		},
	})

	assert.Equal(t, map[string]any{"bowl_liters": json.Number("20")}, pf.ExtraSpecs)
	assert.Empty(t, warnings)
}

func TestReconcileProductTypeSpellings(t *testing.T) {
	pf, _ := Reconcile(Document{"product_type_value": "cay_kazani"})
	assert.Equal(t, "cay_kazani", pf.ProductTypeValue)

	pf, _ = Reconcile(Document{"product_type": "cay_kazani"})
	assert.Equal(t, "cay_kazani", pf.ProductTypeValue)
}

func TestReconcileIdempotent(t *testing.T) {
	first, warnings := Reconcile(Document{
		"category_name": "Kazanlar",
		"name":          "Kazan",
		"extra_specs": map[string]any{
			"capacity_liters": json.Number("100"),
			"bogus_field":     "x",
		},
	})
	require.NotEmpty(t, warnings)

	second, warnings2 := Reconcile(first.Document())
	assert.Empty(t, warnings2)
	assert.Equal(t, first, second)
}

func TestNumber(t *testing.T) {
	cases := []struct {
		in   any
		want float64
		ok   bool
	}{
		{json.Number("42"), 42, true},
		{json.Number("3.5"), 3.5, true},
		{float64(7), 7, true},
		{int(7), 7, true},
		{"7", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}
	for _, c := range cases {
		n, ok := Number(c.in)
		assert.Equal(t, c.ok, ok, "in=%v", c.in)
		if ok {
			assert.Equal(t, c.want, n, "in=%v", c.in)
		}
	}
}

func TestIsInteger(t *testing.T) {
	assert.True(t, IsInteger(json.Number("10")))
	assert.True(t, IsInteger(int(10)))
	assert.False(t, IsInteger(json.Number("10.5")))
	assert.False(t, IsInteger("10"))
	assert.False(t, IsInteger(nil))
}
