package form

import (
	"fmt"

	"product-agent/internal/specs"
)

// ProductForm is the reconciled product record. Prices are always
// non-nil after reconciliation; extra specs only contain keys the
// resolved category's form template defines (when a template exists).
type ProductForm struct {
	CategoryName      string            `json:"category_name"`
	ProductTypeValue  string            `json:"product_type_value"`
	Name              string            `json:"name"`
	PurchasePrice     any               `json:"purchase_price"`
	SalePrice         any               `json:"sale_price"`
	NegotiationMargin any               `json:"negotiation_margin"`
	NegotiationType   string            `json:"negotiation_type"`
	Material          string            `json:"material"`
	Notes             string            `json:"notes"`
	ExtraSpecs        map[string]any    `json:"extra_specs"`
	Status            string            `json:"status,omitempty"`
	StockStatus       string            `json:"stock_status,omitempty"`
	FieldConfidence   map[string]string `json:"field_confidence,omitempty"`
}

// Reconcile maps an untrusted document onto a ProductForm using the
// schema catalog for the document's claimed category. Missing prices
// become 0 with a warning each; extra specs are stripped of empty
// values and, when the category resolves to a form template, of any
// field name the template does not define. Each step is idempotent:
// reconciling an already reconciled form changes nothing.
func Reconcile(doc Document) (*ProductForm, []string) {
	var warnings []string

	categoryName := doc.String("category_name")

	f := &ProductForm{
		CategoryName:     categoryName,
		ProductTypeValue: productType(doc),
		Name:             doc.String("name"),
		Material:         doc.String("material"),
		Notes:            doc.String("notes"),
		Status:           doc.String("status"),
		StockStatus:      doc.String("stock_status"),
		FieldConfidence:  doc.StringMap("field_confidence"),
	}

	f.PurchasePrice = doc["purchase_price"]
	if isBlank(f.PurchasePrice) {
		f.PurchasePrice = 0
		warnings = append(warnings, "Alış fiyatı belirtilmemiş - 0 olarak ayarlandı")
	}
	f.SalePrice = doc["sale_price"]
	if isBlank(f.SalePrice) {
		f.SalePrice = 0
		warnings = append(warnings, "Satış fiyatı belirtilmemiş - 0 olarak ayarlandı")
	}

	f.NegotiationMargin = doc["negotiation_margin"]
	if isBlank(f.NegotiationMargin) {
		f.NegotiationMargin = 0
	}
	f.NegotiationType = doc.String("negotiation_type")
	if f.NegotiationType == "" {
		f.NegotiationType = "amount"
	}

	f.ExtraSpecs, warnings = filterSpecs(doc.Map("extra_specs"), categoryName, warnings)

	return f, warnings
}

// filterSpecs drops empty values, then applies the category's field
// allowlist. An unresolved category has no allowlist, so only the
// empty-value filtering applies; the model's field names are then taken
// as-is rather than rejected wholesale.
func filterSpecs(raw map[string]any, categoryName string, warnings []string) (map[string]any, []string) {
	filtered := make(map[string]any)
	if raw == nil {
		return filtered, warnings
	}

	tpl := specs.Template(categoryName)

	for key, val := range raw {
		if val == nil || val == "" || val == "null" {
			continue
		}
		if tpl != nil && !fieldAllowed(tpl, key) {
			warnings = append(warnings, fmt.Sprintf("Tanımsız teknik alan atlandı: %s", key))
			continue
		}
		filtered[key] = val
	}
	return filtered, warnings
}

func fieldAllowed(tpl *specs.FormTemplate, name string) bool {
	for _, f := range tpl.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// productType reads the model's type value from either of the two key
// spellings seen in the wild.
func productType(doc Document) string {
	if v := doc.String("product_type_value"); v != "" {
		return v
	}
	return doc.String("product_type")
}

func isBlank(v any) bool {
	return v == nil || v == ""
}

// Document converts the form back into its untrusted-document shape,
// e.g. for validation or for re-reconciling caller-edited forms.
func (f *ProductForm) Document() Document {
	doc := Document{
		"category_name":      f.CategoryName,
		"product_type_value": f.ProductTypeValue,
		"name":               f.Name,
		"purchase_price":     f.PurchasePrice,
		"sale_price":         f.SalePrice,
		"negotiation_margin": f.NegotiationMargin,
		"negotiation_type":   f.NegotiationType,
		"material":           f.Material,
		"notes":              f.Notes,
	}
	if f.Status != "" {
		doc["status"] = f.Status
	}
	if f.StockStatus != "" {
		doc["stock_status"] = f.StockStatus
	}
	specsCopy := make(map[string]any, len(f.ExtraSpecs))
	for k, v := range f.ExtraSpecs {
		specsCopy[k] = v
	}
	doc["extra_specs"] = specsCopy
	if f.FieldConfidence != nil {
		conf := make(map[string]any, len(f.FieldConfidence))
		for k, v := range f.FieldConfidence {
			conf[k] = v
		}
		doc["field_confidence"] = conf
	}
	return doc
}
