package specs

// FormTemplate mirrors the inventory form for one category: the
// snake_case product-type values the model must choose from, the
// extra_specs field names the form actually renders, and the
// energy-type select options when the form has that field.
type FormTemplate struct {
	Category      string
	Types         []string
	Fields        []string
	EnergyOptions []string
}

// formTemplates lists the categories the form UI supports, in prompt
// order. Field names here are the reconciliation allowlist.
var formTemplates = []FormTemplate{
	{
		Category:      "Kazanlar",
		Types:         []string{"buhar_kazani", "cift_cidarli_kazan", "tencere_kazan", "cay_kazani", "corba_kazani"},
		Fields:        []string{"capacity_liters", "energy_type", "diameter_cm", "height_cm"},
		EnergyOptions: []string{"Gazlı", "Elektrikli"},
	},
	{
		Category:      "Fırınlar",
		Types:         []string{"konveksiyonlu_firin", "pastane_firini", "pizza_firini", "doner_firini", "tunnel_firin", "rotary_firin"},
		Fields:        []string{"energy_type", "tray_count", "tray_size", "length_cm", "width_cm", "height_cm"},
		EnergyOptions: []string{"Gazlı", "Elektrikli"},
	},
	{
		Category:      "Ocaklar",
		Types:         []string{"gazli_ocak", "elektrikli_ocak", "induksiyonlu_ocak", "wok_ocagi", "pasta_ocagi", "krep_ocagi"},
		Fields:        []string{"burner_count", "energy_type", "length_cm", "width_cm", "height_cm"},
		EnergyOptions: []string{"Gazlı", "Elektrikli", "İndüksiyon"},
	},
	{
		Category: "Buzdolapları",
		Types:    []string{"tek_kapili_buzdolabi", "cift_kapili_buzdolabi", "dikey_donduruculu_buzdolabi", "soklama_buzdolabi", "vitrini_buzdolabi"},
		Fields:   []string{"volume_liters", "door_count", "cooling_type", "length_cm", "width_cm", "height_cm"},
	},
	{
		Category: "Evyeler",
		Types:    []string{"tek_gozlu_evye", "cift_gozlu_evye", "uc_gozlu_evye", "damlalikli_evye", "kose_evye"},
		Fields:   []string{"length_cm", "width_cm", "height_cm", "depth_cm", "basin_count", "has_drainboard", "thickness_mm"},
	},
	{
		Category: "Tezgahlar",
		Types:    []string{"paslanmaz_celik_tezgah", "granit_tezgah", "mermer_tezgah", "kesme_tezgahi", "hazirlik_tezgahi"},
		Fields:   []string{"length_cm", "width_cm", "height_cm", "has_bottom_shelf", "has_backsplash", "thickness_mm"},
	},
	{
		Category:      "Fritözler",
		Types:         []string{"basincli_fritoz", "klasik_fritoz", "elektrikli_fritoz", "gazli_fritoz"},
		Fields:        []string{"capacity_liters", "energy_type", "tank_count", "length_cm", "width_cm", "height_cm"},
		EnergyOptions: []string{"Gazlı", "Elektrikli"},
	},
	{
		Category:      "Benmari",
		Types:         []string{"elektrikli_benmari", "gazli_benmari", "kuru_benmari", "sulu_benmari"},
		Fields:        []string{"compartment_count", "energy_type", "heating_type", "length_cm", "width_cm", "height_cm"},
		EnergyOptions: []string{"Elektrikli", "Gazlı"},
	},
}

var formTemplateIndex = func() map[string]*FormTemplate {
	idx := make(map[string]*FormTemplate, len(formTemplates))
	for i := range formTemplates {
		idx[formTemplates[i].Category] = &formTemplates[i]
	}
	return idx
}()

// Template returns the form template for a category, or nil when the
// category has no form template. Callers treat nil as "no allowlist".
func Template(categoryName string) *FormTemplate {
	return formTemplateIndex[categoryName]
}

// Templates returns all form templates in prompt order.
func Templates() []FormTemplate {
	out := make([]FormTemplate, len(formTemplates))
	copy(out, formTemplates)
	return out
}
