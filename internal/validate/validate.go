// Package validate checks a reconciled product form against the schema
// rules. It is a pure function of its input: no I/O and no model calls,
// so it cannot flake and every rule is evaluated on every run.
//
// The error/warning split encodes a policy: the pipeline prefers a
// best-effort, partially filled form flagged for human review over a
// rejection. Only conditions that would corrupt the record (negative
// prices, wrong types, unknown enum values) are errors; everything
// ambiguous downgrades to a warning.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"product-agent/internal/form"
)

var (
	validStatus          = []string{"working", "broken", "repair"}
	validStockStatus     = []string{"available", "sold", "reserved"}
	validNegotiationType = []string{"amount", "percentage"}
)

// Result is the outcome of one validation pass. Valid is true iff
// Errors is empty; warnings never affect validity. Form carries the
// checked document with trivial repairs (the synthesized name) applied,
// and is only set when the document is valid.
type Result struct {
	Valid               bool          `json:"valid"`
	Errors              []string      `json:"errors"`
	Warnings            []string      `json:"warnings"`
	LowConfidenceFields []string      `json:"low_confidence_fields"`
	Form                form.Document `json:"validated_form,omitempty"`
}

// Validate runs every rule against doc and accumulates the results.
// Evaluation never short-circuits: a form with three problems reports
// all three.
func Validate(doc form.Document) Result {
	res := Result{
		Errors:   []string{},
		Warnings: []string{},
	}

	checked := make(form.Document, len(doc))
	for k, v := range doc {
		checked[k] = v
	}

	extraSpecs := checked.Map("extra_specs")

	checkName(checked, extraSpecs, &res)
	checkPrices(checked, &res)
	checkEnums(checked, &res)
	checkPriceConsistency(checked, &res)
	checkCategoryID(checked, &res)
	checkExtraSpecs(extraSpecs, &res)
	checkConfidence(checked, &res)

	res.Valid = len(res.Errors) == 0
	if res.Valid {
		res.Form = checked
	}
	return res
}

// checkName requires a non-blank name but never fails the form over it:
// when absent or blank it first tries to synthesize one from the brand
// and the product type, and otherwise asks a human to supply it. Both
// outcomes are warnings.
func checkName(doc form.Document, extraSpecs map[string]any, res *Result) {
	if strings.TrimSpace(doc.String("name")) != "" {
		return
	}

	var parts []string
	if extraSpecs != nil {
		if brand, ok := extraSpecs["brand"].(string); ok && brand != "" {
			parts = append(parts, brand)
		}
	}
	if pt := productTypeOf(doc); pt != "" {
		parts = append(parts, pt)
	}
	if len(parts) > 0 {
		name := strings.Join(parts, " ")
		doc["name"] = name
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("Ürün adı otomatik oluşturuldu: '%s' - düzenlemeniz önerilir", name))
		return
	}
	if _, present := doc["name"]; present && doc["name"] != nil {
		res.Warnings = append(res.Warnings, "Zorunlu alan boş: name - kullanıcı tarafından girilmeli")
		return
	}
	res.Warnings = append(res.Warnings, "Zorunlu alan eksik: name - kullanıcı tarafından girilmeli")
}

func productTypeOf(doc form.Document) string {
	if s := doc.String("product_type"); s != "" {
		return s
	}
	return doc.String("product_type_value")
}

func checkPrices(doc form.Document, res *Result) {
	for _, field := range []string{"purchase_price", "sale_price"} {
		v, present := doc[field]
		if !present || v == nil {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("%s belirtilmemiş - kullanıcıdan istenecek", field))
			continue
		}
		n, ok := form.Number(v)
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("%s sayısal bir değer olmalıdır", field))
			continue
		}
		if n < 0 {
			res.Errors = append(res.Errors, fmt.Sprintf("%s negatif olamaz", field))
		}
	}

	if v, present := doc["negotiation_margin"]; present && v != nil {
		if n, ok := form.Number(v); ok && n < 0 {
			res.Errors = append(res.Errors, "negotiation_margin negatif olamaz")
		}
	}
}

func checkEnums(doc form.Document, res *Result) {
	checkEnum(doc, "status", validStatus, res)
	checkEnum(doc, "stock_status", validStockStatus, res)
	checkEnum(doc, "negotiation_type", validNegotiationType, res)
}

func checkEnum(doc form.Document, field string, allowed []string, res *Result) {
	v, present := doc[field]
	if !present || v == nil || v == "" {
		return
	}
	s, _ := v.(string)
	for _, a := range allowed {
		if s == a {
			return
		}
	}
	res.Errors = append(res.Errors,
		fmt.Sprintf("Geçersiz %s değeri: '%v'. Geçerli: %s", field, v, strings.Join(allowed, ", ")))
}

// checkPriceConsistency questions a sale price below the purchase price.
// That can be legitimate (clearance, damaged stock), so it is a
// heuristic warning, never an error.
func checkPriceConsistency(doc form.Document, res *Result) {
	purchase, okP := form.Number(doc["purchase_price"])
	sale, okS := form.Number(doc["sale_price"])
	if okP && okS && sale < purchase {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("Satış fiyatı (%v) alış fiyatından (%v) düşük - emin misiniz?", sale, purchase))
	}
}

func checkCategoryID(doc form.Document, res *Result) {
	v, present := doc["category_id"]
	if !present || v == nil {
		return
	}
	if !form.IsInteger(v) {
		res.Errors = append(res.Errors, "category_id integer olmalıdır")
	}
}

// checkExtraSpecs applies the technical-field rules. Null values always
// pass; dimension/weight/volume suffixes are expected positive but a
// violation only warns, while count fields must be non-negative integers.
func checkExtraSpecs(extraSpecs map[string]any, res *Result) {
	if extraSpecs == nil {
		return
	}

	keys := make([]string, 0, len(extraSpecs))
	for k := range extraSpecs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := extraSpecs[key]
		if value == nil {
			continue
		}

		if strings.HasSuffix(key, "_cm") || strings.HasSuffix(key, "_kg") || strings.HasSuffix(key, "_lt") {
			if n, ok := form.Number(value); ok && n <= 0 {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("%s değeri pozitif olmalıdır (şu an: %v)", key, value))
			}
		}

		if strings.HasSuffix(key, "_count") {
			if !form.IsInteger(value) {
				res.Errors = append(res.Errors, fmt.Sprintf("%s tam sayı (integer) olmalıdır", key))
			} else if n, _ := form.Number(value); n < 0 {
				res.Errors = append(res.Errors, fmt.Sprintf("%s negatif olamaz", key))
			}
		}

		if key == "production_year" && form.IsInteger(value) {
			if n, _ := form.Number(value); n < 1950 || n > 2030 {
				res.Warnings = append(res.Warnings, fmt.Sprintf("Üretim yılı şüpheli: %v", value))
			}
		}
	}
}

// checkConfidence collects fields the extraction step marked "low".
// Low confidence is a review hint, never a validity gate.
func checkConfidence(doc form.Document, res *Result) {
	conf := doc.StringMap("field_confidence")
	if conf == nil {
		return
	}
	var low []string
	for field, level := range conf {
		if level == "low" {
			low = append(low, field)
		}
	}
	if len(low) == 0 {
		return
	}
	sort.Strings(low)
	res.LowConfidenceFields = low
	res.Warnings = append(res.Warnings,
		fmt.Sprintf("Düşük güvenilirlikli alanlar (kullanıcıya sorulmalı): %s", strings.Join(low, ", ")))
}
