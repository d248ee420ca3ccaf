package specs

// generalFields are the entity-level product attributes present for every
// category (the products table surface).
var generalFields = NewFieldSet(
	FieldSpec{Name: "name", Type: TypeString, Label: "Ürün Adı", Required: true},
	FieldSpec{Name: "category_id", Type: TypeInteger, Label: "Kategori ID"},
	FieldSpec{Name: "product_type", Type: TypeString, Label: "Ürün Çeşidi"},
	FieldSpec{Name: "purchase_price", Type: TypeNumber, Label: "Alış Fiyatı (TL)", Required: true},
	FieldSpec{Name: "sale_price", Type: TypeNumber, Label: "Satış Fiyatı (TL)", Required: true},
	FieldSpec{Name: "negotiation_margin", Type: TypeNumber, Label: "Pazarlık Payı", Default: 0.0},
	FieldSpec{Name: "negotiation_type", Type: TypeString, Label: "Pazarlık Tipi", Options: []string{"amount", "percentage"}, Default: "amount"},
	FieldSpec{Name: "material", Type: TypeString, Label: "Ana Malzeme"},
	FieldSpec{Name: "status", Type: TypeString, Label: "Durum", Options: []string{"working", "broken", "repair"}, Default: "working"},
	FieldSpec{Name: "stock_status", Type: TypeString, Label: "Stok Durumu", Options: []string{"available", "sold", "reserved"}, Default: "available"},
	FieldSpec{Name: "notes", Type: TypeString, Label: "Notlar"},
)

// commonSpecs apply to every category's extra_specs.
var commonSpecs = NewFieldSet(
	FieldSpec{Name: "width_cm", Type: TypeNumber, Label: "Genişlik (cm)", Unit: "cm"},
	FieldSpec{Name: "depth_cm", Type: TypeNumber, Label: "Derinlik (cm)", Unit: "cm"},
	FieldSpec{Name: "height_cm", Type: TypeNumber, Label: "Yükseklik (cm)", Unit: "cm"},
	FieldSpec{Name: "weight_kg", Type: TypeNumber, Label: "Ağırlık (kg)", Unit: "kg"},
	FieldSpec{Name: "brand", Type: TypeString, Label: "Marka"},
	FieldSpec{Name: "model_name", Type: TypeString, Label: "Model"},
	FieldSpec{Name: "production_year", Type: TypeInteger, Label: "Üretim Yılı"},
	FieldSpec{Name: "condition", Type: TypeString, Label: "Durumu", Options: []string{"sıfır", "ikinci el", "yenilenmiş"}},
	FieldSpec{Name: "color", Type: TypeString, Label: "Renk"},
)
