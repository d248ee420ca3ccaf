// Package prompt renders the unified analysis instruction sent to the
// model. Rendering is pure string assembly: identical inputs produce
// byte-identical output, which keeps the downstream pipeline testable
// independently of the template text.
package prompt

import (
	"strings"

	"product-agent/internal/specs"
)

const unifiedTemplate = `Sen endüstriyel mutfak ekipmanları uzmanısın. Kullanıcının ürün açıklamasını analiz edip form verisi oluştur.

## MEVCUT KATEGORİLER VE ÜRÜN ÇEŞİTLERİ
{category_types_desc}

## KULLANICI AÇIKLAMASI
{user_description}

## KURALLAR
1. Sadece açıklamada GEÇEN bilgileri kullan, UYDURMA
2. category_name: Tam olarak yukarıdaki kategori adlarından birini seç
3. product_type_value: Tam olarak yukarıdaki type değerlerinden birini seç (snake_case olanları)
4. extra_specs alanlarında SADECE o kategorinin tanımlı field isimlerini kullan
5. energy_type değerleri: "Gazlı", "Elektrikli" gibi Türkçe (select seçenek)
6. Fiyatları sayı yaz, birim dönüşümü yap
7. Bilmediğin alanları BOŞ BIRAK (null yazma, hiç ekleme)

## ÇIKTI (SADECE JSON)
{
    "category_name": "Kategori adı (yukarıdakilerden biri)",
    "product_type_value": "urun_tipi_snake_case",
    "name": "Ürün adı",
    "purchase_price": 0,
    "sale_price": 0,
    "negotiation_margin": 0,
    "negotiation_type": "amount",
    "material": "",
    "notes": "",
    "extra_specs": {
        "alan_adi": "deger"
    }
}`

// CategoryTypesDescription renders one line per form-template category:
// its product-type values, its field names, and its energy options.
func CategoryTypesDescription() string {
	var b strings.Builder
	for _, t := range specs.Templates() {
		b.WriteString("- ")
		b.WriteString(t.Category)
		b.WriteString(": types=[")
		b.WriteString(strings.Join(t.Types, ", "))
		b.WriteString("], fields=[")
		b.WriteString(strings.Join(t.Fields, ", "))
		b.WriteString("]")
		if len(t.EnergyOptions) > 0 {
			b.WriteString(" (energy_type seçenekleri: ")
			b.WriteString(strings.Join(t.EnergyOptions, ", "))
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Render substitutes the category description and the user's free-text
// description into the unified template.
func Render(categoryTypesDesc, userDescription string) string {
	r := strings.NewReplacer(
		"{category_types_desc}", categoryTypesDesc,
		"{user_description}", userDescription,
	)
	return r.Replace(unifiedTemplate)
}
