package specs

// typeSpecs is the type tier: only product types that add fields beyond
// their category appear here. A field with the same name as a common or
// category field overrides it entirely.
var typeSpecs = []categoryFields{
	{"Konveksiyonlu Fırın", NewFieldSet(
		FieldSpec{Name: "has_steam", Type: TypeBoolean, Label: "Buhar Fonksiyonu"},
		FieldSpec{Name: "has_grill", Type: TypeBoolean, Label: "Izgara Fonksiyonu"},
		FieldSpec{Name: "has_timer", Type: TypeBoolean, Label: "Zamanlayıcılı mı"},
		FieldSpec{Name: "fan_speed_count", Type: TypeInteger, Label: "Fan Hız Kademesi"},
	)},
	{"Pastane Fırını", NewFieldSet(
		FieldSpec{Name: "has_steam", Type: TypeBoolean, Label: "Buhar Fonksiyonu"},
		FieldSpec{Name: "deck_count", Type: TypeInteger, Label: "Kat Sayısı"},
		FieldSpec{Name: "stone_base", Type: TypeBoolean, Label: "Taş Tabanlı mı"},
	)},
	{"Rotary Fırın", NewFieldSet(
		FieldSpec{Name: "rack_type", Type: TypeString, Label: "Arabalı Tipi"},
		FieldSpec{Name: "rotation_speed", Type: TypeString, Label: "Dönüş Hızı"},
	)},
	{"Wok Ocağı", NewFieldSet(
		FieldSpec{Name: "wok_ring_size_cm", Type: TypeNumber, Label: "Wok Ring Çapı (cm)", Unit: "cm"},
		FieldSpec{Name: "btu_rating", Type: TypeNumber, Label: "BTU Değeri"},
	)},
	{"Şoklama Buzdolabı", NewFieldSet(
		FieldSpec{Name: "shock_capacity_kg", Type: TypeNumber, Label: "Şoklama Kapasitesi (kg)", Unit: "kg"},
		FieldSpec{Name: "core_probe", Type: TypeBoolean, Label: "Çekirdek Prob Var mı"},
	)},
	{"Pilav Arabası", NewFieldSet(
		FieldSpec{Name: "bain_marie_included", Type: TypeBoolean, Label: "Benmari Dahil mi"},
		FieldSpec{Name: "gas_tube_connection", Type: TypeBoolean, Label: "Tüp Bağlantısı Var mı"},
		FieldSpec{Name: "serving_capacity", Type: TypeInteger, Label: "Servis Kapasitesi (kişi)"},
	)},
	{"Kokoreç Arabası", NewFieldSet(
		FieldSpec{Name: "grill_type", Type: TypeString, Label: "Izgara Tipi"},
		FieldSpec{Name: "has_charcoal_tray", Type: TypeBoolean, Label: "Kömür Tepsili mi"},
		FieldSpec{Name: "bread_warmer", Type: TypeBoolean, Label: "Ekmek Isıtıcı Var mı"},
	)},
	{"Tantuni Arabası", NewFieldSet(
		FieldSpec{Name: "sac_diameter_cm", Type: TypeNumber, Label: "Saç Çapı (cm)", Unit: "cm"},
		FieldSpec{Name: "has_side_counter", Type: TypeBoolean, Label: "Yan Tezgah Var mı"},
	)},
	{"Döner Arabası", NewFieldSet(
		FieldSpec{Name: "has_doner_motor", Type: TypeBoolean, Label: "Döner Motor Dahil mi"},
		FieldSpec{Name: "gas_tube_connection", Type: TypeBoolean, Label: "Tüp Bağlantısı Var mı"},
	)},
	{"Damlalıklı Evye", NewFieldSet(
		FieldSpec{Name: "drainboard_count", Type: TypeInteger, Label: "Damlalık Sayısı"},
	)},
	{"Köşe Evye", NewFieldSet(
		FieldSpec{Name: "angle_degree", Type: TypeNumber, Label: "Köşe Açısı (derece)"},
	)},
	{"Kuru Benmari", NewFieldSet(
		FieldSpec{Name: "gn_pan_count", Type: TypeInteger, Label: "GN Küvet Sayısı"},
		FieldSpec{Name: "gn_pan_size", Type: TypeString, Label: "GN Küvet Boyutu", Options: []string{"GN 1/1", "GN 1/2", "GN 1/3"}},
	)},
	{"Sulu Benmari", NewFieldSet(
		FieldSpec{Name: "gn_pan_count", Type: TypeInteger, Label: "GN Küvet Sayısı"},
		FieldSpec{Name: "gn_pan_size", Type: TypeString, Label: "GN Küvet Boyutu", Options: []string{"GN 1/1", "GN 1/2", "GN 1/3"}},
		FieldSpec{Name: "water_level_indicator", Type: TypeBoolean, Label: "Su Seviye Göstergesi Var mı"},
	)},
}

var typeSpecIndex = func() map[string]*FieldSet {
	idx := make(map[string]*FieldSet, len(typeSpecs))
	for _, t := range typeSpecs {
		idx[t.name] = t.fields
	}
	return idx
}()

// productTypes registers the product-type labels sold under each
// category. Kept in sync with the category tier by hand.
var productTypes = map[string][]string{
	"Fırınlar":                  {"Konveksiyonlu Fırın", "Pastane Fırını", "Pizza Fırını", "Döner Fırını", "Tünel Fırın", "Rotary Fırın"},
	"Ocaklar":                   {"Gazlı Ocak", "Elektrikli Ocak", "İndüksiyonlu Ocak", "Wok Ocağı", "Pasta Ocağı", "Krep Ocağı"},
	"Tezgahlar":                 {"Paslanmaz Çelik Tezgah", "Granit Tezgah", "Mermer Tezgah", "Kesme Tezgahı", "Hazırlık Tezgahı"},
	"Buzdolapları":              {"Tek Kapılı Buzdolabı", "Çift Kapılı Buzdolabı", "Dikey Donduruculu Buzdolabı", "Şoklama Buzdolabı", "Vitrini Buzdolabı"},
	"Dondurucular":              {"Dikey Dondurucu", "Yatay Dondurucu", "Şoklama Dondurucu", "Dondurma Dondurucu"},
	"Aspiratörler":              {"Duvar Tipi Aspiratör", "Ada Tipi Aspiratör", "Tavan Tipi Aspiratör", "Kanallı Aspiratör"},
	"Kazanlar":                  {"Buhar Kazanı", "Çift Cidarlı Kazan", "Tencere Kazan", "Çay Kazanı", "Çorba Kazanı"},
	"Kesme Makineleri":          {"Et Kıyma Makinesi", "Sebze Doğrama Makinesi", "Ekmek Dilimleme Makinesi", "Et Dilimleme Makinesi"},
	"Mikserler":                 {"Planet Mikser", "Spiral Mikser", "Çırpma Makinesi", "Hamur Yoğurma Makinesi"},
	"Fritözler":                 {"Basınçlı Fritöz", "Klasik Fritöz", "Elektrikli Fritöz", "Gazlı Fritöz"},
	"Izgaralar":                 {"Gazlı Izgara", "Elektrikli Izgara", "Kontakt Izgara", "Tavuk Izgara"},
	"Tost Makineleri":           {"Sandviç Tost Makinesi", "Krep Tost Makinesi", "Panini Makinesi"},
	"Kahve Makineleri":          {"Espresso Makinesi", "Filtre Kahve Makinesi", "Türk Kahvesi Makinesi", "Otomatik Kahve Makinesi"},
	"Çay Kazanları":             {"Elektrikli Çay Kazanı", "Gazlı Çay Kazanı", "Termos Çay Kazanı"},
	"Bulaşık Makineleri":        {"Bulaşık Yıkama Makinesi", "Bulaşık Kurutma Makinesi", "Tünel Tipi Bulaşık Makinesi"},
	"Ekmek Kızartma Makineleri": {"Ekmek Kızartma Makinesi", "Çoklu Ekmek Kızartma Makinesi"},
	"Döner Makineleri":          {"Elektrikli Döner Makinesi", "Gazlı Döner Makinesi", "Dikey Döner Makinesi"},
	"Pizza Fırınları":           {"Taş Fırın", "Elektrikli Pizza Fırını", "Tünel Pizza Fırını"},
	"Krep Makineleri":           {"Krep Tavası", "Elektrikli Krep Makinesi", "Gazlı Krep Makinesi"},
	"Waffle Makineleri":         {"Elektrikli Waffle Makinesi", "Gazlı Waffle Makinesi"},
	"Evyeler":                   {"Tek Gözlü Evye", "Çift Gözlü Evye", "Üç Gözlü Evye", "Damlalıklı Evye", "Köşe Evye"},
	"Arabalar":                  {"Pilav Arabası", "Kokoreç Arabası", "Tantuni Arabası", "Döner Arabası", "Servis Arabası", "Taşıma Arabası"},
	"Raflar":                    {"Düz Raf", "Köşe Raf", "Duvar Rafı", "Delikli Raf"},
	"Benmari":                   {"Elektrikli Benmari", "Gazlı Benmari", "Kuru Benmari", "Sulu Benmari"},
}
