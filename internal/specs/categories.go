package specs

type categoryFields struct {
	name   string
	fields *FieldSet
}

// categorySpecs is the category tier of the technical schema, in the
// order categories are presented to the model.
var categorySpecs = []categoryFields{
	{"Fırınlar", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"elektrik", "gaz", "doğalgaz"}},
		FieldSpec{Name: "power_kw", Type: TypeNumber, Label: "Güç (kW)", Unit: "kW"},
		FieldSpec{Name: "temperature_max_c", Type: TypeNumber, Label: "Max Sıcaklık (°C)", Unit: "°C"},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V", "380V", "220V/380V"}},
		FieldSpec{Name: "tray_count", Type: TypeInteger, Label: "Tepsi Sayısı"},
		FieldSpec{Name: "tray_size", Type: TypeString, Label: "Tepsi Boyutu", Options: []string{"GN 1/1", "GN 2/1", "60x40", "80x60"}},
	)},
	{"Ocaklar", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"gaz", "elektrik", "indüksiyon", "doğalgaz"}},
		FieldSpec{Name: "burner_count", Type: TypeInteger, Label: "Gözlü Sayısı"},
		FieldSpec{Name: "power_kw", Type: TypeNumber, Label: "Güç (kW)", Unit: "kW"},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V", "380V"}},
		FieldSpec{Name: "has_pilot_light", Type: TypeBoolean, Label: "Pilot Ateşli mi"},
		FieldSpec{Name: "has_oven_below", Type: TypeBoolean, Label: "Alt Fırınlı mı"},
	)},
	{"Tezgahlar", NewFieldSet(
		FieldSpec{Name: "shelf_count", Type: TypeInteger, Label: "Raf Sayısı"},
		FieldSpec{Name: "has_backsplash", Type: TypeBoolean, Label: "Arka Sıçrama Paneli"},
		FieldSpec{Name: "has_drawer", Type: TypeBoolean, Label: "Çekmeceli mi"},
		FieldSpec{Name: "surface_type", Type: TypeString, Label: "Yüzey Tipi", Options: []string{"düz", "oluklu", "delikli"}},
		FieldSpec{Name: "leg_type", Type: TypeString, Label: "Ayak Tipi", Options: []string{"sabit", "ayarlanabilir", "tekerlekli"}},
	)},
	{"Buzdolapları", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"elektrik"}},
		FieldSpec{Name: "capacity_liters", Type: TypeNumber, Label: "Kapasite (lt)", Unit: "lt"},
		FieldSpec{Name: "temperature_min_c", Type: TypeNumber, Label: "Min Sıcaklık (°C)", Unit: "°C"},
		FieldSpec{Name: "temperature_max_c", Type: TypeNumber, Label: "Max Sıcaklık (°C)", Unit: "°C"},
		FieldSpec{Name: "door_count", Type: TypeInteger, Label: "Kapı Sayısı"},
		FieldSpec{Name: "compressor_type", Type: TypeString, Label: "Kompresör Tipi"},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V"}},
		FieldSpec{Name: "refrigerant_type", Type: TypeString, Label: "Soğutucu Gaz Tipi"},
	)},
	{"Dondurucular", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"elektrik"}},
		FieldSpec{Name: "capacity_liters", Type: TypeNumber, Label: "Kapasite (lt)", Unit: "lt"},
		FieldSpec{Name: "temperature_min_c", Type: TypeNumber, Label: "Min Sıcaklık (°C)", Unit: "°C"},
		FieldSpec{Name: "door_count", Type: TypeInteger, Label: "Kapı Sayısı"},
		FieldSpec{Name: "drawer_count", Type: TypeInteger, Label: "Çekmece Sayısı"},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V"}},
	)},
	{"Aspiratörler", NewFieldSet(
		FieldSpec{Name: "air_flow_m3h", Type: TypeNumber, Label: "Hava Debisi (m³/h)", Unit: "m³/h"},
		FieldSpec{Name: "motor_count", Type: TypeInteger, Label: "Motor Sayısı"},
		FieldSpec{Name: "filter_type", Type: TypeString, Label: "Filtre Tipi", Options: []string{"yağ filtresi", "karbon filtresi", "çelik filtre"}},
		FieldSpec{Name: "speed_count", Type: TypeInteger, Label: "Hız Kademesi"},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V", "380V"}},
	)},
	{"Kazanlar", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"gaz", "elektrik", "buhar"}},
		FieldSpec{Name: "capacity_liters", Type: TypeNumber, Label: "Kapasite (lt)", Unit: "lt"},
		FieldSpec{Name: "pressure_bar", Type: TypeNumber, Label: "Basınç (bar)", Unit: "bar"},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V", "380V"}},
		FieldSpec{Name: "has_mixer", Type: TypeBoolean, Label: "Karıştırıcılı mı"},
		FieldSpec{Name: "has_tilt", Type: TypeBoolean, Label: "Devirmeli mi"},
		FieldSpec{Name: "inner_material", Type: TypeString, Label: "İç Malzeme"},
	)},
	{"Kesme Makineleri", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"elektrik"}},
		FieldSpec{Name: "power_kw", Type: TypeNumber, Label: "Güç (kW)", Unit: "kW"},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V", "380V"}},
		FieldSpec{Name: "blade_type", Type: TypeString, Label: "Bıçak Tipi"},
		FieldSpec{Name: "capacity_kg_h", Type: TypeNumber, Label: "Kapasite (kg/h)", Unit: "kg/h"},
		FieldSpec{Name: "motor_power_hp", Type: TypeNumber, Label: "Motor Gücü (HP)", Unit: "HP"},
	)},
	{"Mikserler", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"elektrik"}},
		FieldSpec{Name: "capacity_liters", Type: TypeNumber, Label: "Kapasite (lt)", Unit: "lt"},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V", "380V"}},
		FieldSpec{Name: "speed_count", Type: TypeInteger, Label: "Hız Kademesi"},
		FieldSpec{Name: "bowl_material", Type: TypeString, Label: "Kap Malzemesi"},
		FieldSpec{Name: "power_kw", Type: TypeNumber, Label: "Güç (kW)", Unit: "kW"},
	)},
	{"Fritözler", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"elektrik", "gaz"}},
		FieldSpec{Name: "capacity_liters", Type: TypeNumber, Label: "Yağ Kapasitesi (lt)", Unit: "lt"},
		FieldSpec{Name: "tank_count", Type: TypeInteger, Label: "Hazne Sayısı"},
		FieldSpec{Name: "temperature_max_c", Type: TypeNumber, Label: "Max Sıcaklık (°C)", Unit: "°C"},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V", "380V"}},
		FieldSpec{Name: "has_timer", Type: TypeBoolean, Label: "Zamanlayıcılı mı"},
	)},
	{"Izgaralar", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"gaz", "elektrik", "kömür"}},
		FieldSpec{Name: "surface_area_cm2", Type: TypeNumber, Label: "Pişirme Alanı (cm²)", Unit: "cm²"},
		FieldSpec{Name: "temperature_max_c", Type: TypeNumber, Label: "Max Sıcaklık (°C)", Unit: "°C"},
		FieldSpec{Name: "has_lid", Type: TypeBoolean, Label: "Kapaklı mı"},
		FieldSpec{Name: "surface_type", Type: TypeString, Label: "Yüzey Tipi", Options: []string{"düz", "oluklu", "karışık"}},
	)},
	{"Tost Makineleri", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"elektrik", "gaz"}},
		FieldSpec{Name: "plate_count", Type: TypeInteger, Label: "Plaka Sayısı"},
		FieldSpec{Name: "surface_type", Type: TypeString, Label: "Yüzey Tipi", Options: []string{"düz", "oluklu"}},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V"}},
		FieldSpec{Name: "power_kw", Type: TypeNumber, Label: "Güç (kW)", Unit: "kW"},
	)},
	{"Kahve Makineleri", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"elektrik"}},
		FieldSpec{Name: "group_count", Type: TypeInteger, Label: "Grup Sayısı"},
		FieldSpec{Name: "boiler_capacity_lt", Type: TypeNumber, Label: "Kazan Kapasitesi (lt)", Unit: "lt"},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V", "380V"}},
		FieldSpec{Name: "has_grinder", Type: TypeBoolean, Label: "Öğütücülü mü"},
		FieldSpec{Name: "water_connection", Type: TypeBoolean, Label: "Şebeke Bağlantılı mı"},
	)},
	{"Çay Kazanları", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"elektrik", "gaz"}},
		FieldSpec{Name: "capacity_liters", Type: TypeNumber, Label: "Kapasite (lt)", Unit: "lt"},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V"}},
		FieldSpec{Name: "has_tap", Type: TypeBoolean, Label: "Musluğu Var mı"},
	)},
	{"Bulaşık Makineleri", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"elektrik"}},
		FieldSpec{Name: "cycle_time_min", Type: TypeNumber, Label: "Yıkama Süresi (dk)", Unit: "dk"},
		FieldSpec{Name: "rack_size", Type: TypeString, Label: "Sepet Boyutu", Options: []string{"50x50", "60x50", "GN 1/1"}},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V", "380V"}},
		FieldSpec{Name: "water_consumption_lt", Type: TypeNumber, Label: "Su Tüketimi (lt/saat)", Unit: "lt/saat"},
		FieldSpec{Name: "has_boiler", Type: TypeBoolean, Label: "Boyler Var mı"},
	)},
	{"Ekmek Kızartma Makineleri", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"elektrik"}},
		FieldSpec{Name: "slice_count", Type: TypeInteger, Label: "Dilim Kapasitesi"},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V"}},
		FieldSpec{Name: "power_kw", Type: TypeNumber, Label: "Güç (kW)", Unit: "kW"},
	)},
	{"Döner Makineleri", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"elektrik", "gaz"}},
		FieldSpec{Name: "capacity_kg", Type: TypeNumber, Label: "Et Kapasitesi (kg)", Unit: "kg"},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V", "380V"}},
		FieldSpec{Name: "motor_type", Type: TypeString, Label: "Motor Tipi"},
		FieldSpec{Name: "skewer_length_cm", Type: TypeNumber, Label: "Şiş Uzunluğu (cm)", Unit: "cm"},
	)},
	{"Pizza Fırınları", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"elektrik", "gaz", "odun"}},
		FieldSpec{Name: "deck_count", Type: TypeInteger, Label: "Kat Sayısı"},
		FieldSpec{Name: "pizza_capacity", Type: TypeInteger, Label: "Pizza Kapasitesi"},
		FieldSpec{Name: "temperature_max_c", Type: TypeNumber, Label: "Max Sıcaklık (°C)", Unit: "°C"},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V", "380V"}},
		FieldSpec{Name: "internal_diameter_cm", Type: TypeNumber, Label: "İç Çap (cm)", Unit: "cm"},
	)},
	{"Krep Makineleri", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"elektrik", "gaz"}},
		FieldSpec{Name: "plate_count", Type: TypeInteger, Label: "Plaka Sayısı"},
		FieldSpec{Name: "plate_diameter_cm", Type: TypeNumber, Label: "Plaka Çapı (cm)", Unit: "cm"},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V"}},
		FieldSpec{Name: "power_kw", Type: TypeNumber, Label: "Güç (kW)", Unit: "kW"},
	)},
	{"Waffle Makineleri", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"elektrik"}},
		FieldSpec{Name: "plate_count", Type: TypeInteger, Label: "Plaka Sayısı"},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V"}},
		FieldSpec{Name: "power_kw", Type: TypeNumber, Label: "Güç (kW)", Unit: "kW"},
		FieldSpec{Name: "waffle_shape", Type: TypeString, Label: "Waffle Şekli", Options: []string{"kare", "yuvarlak", "belçika"}},
	)},
	{"Evyeler", NewFieldSet(
		FieldSpec{Name: "bowl_count", Type: TypeInteger, Label: "Göz Sayısı"},
		FieldSpec{Name: "has_drainboard", Type: TypeBoolean, Label: "Damlalık Var mı"},
		FieldSpec{Name: "drainboard_side", Type: TypeString, Label: "Damlalık Yönü", Options: []string{"sol", "sağ", "çift taraflı"}},
		FieldSpec{Name: "tap_included", Type: TypeBoolean, Label: "Batarya Dahil mi"},
		FieldSpec{Name: "leg_type", Type: TypeString, Label: "Ayak Tipi", Options: []string{"sabit", "ayarlanabilir"}},
		FieldSpec{Name: "bowl_dimensions_cm", Type: TypeString, Label: "Göz Boyutları (cm)"},
	)},
	{"Arabalar", NewFieldSet(
		FieldSpec{Name: "wheel_count", Type: TypeInteger, Label: "Tekerlek Sayısı"},
		FieldSpec{Name: "wheel_type", Type: TypeString, Label: "Tekerlek Tipi", Options: []string{"sabit", "döner", "frenli"}},
		FieldSpec{Name: "has_cover", Type: TypeBoolean, Label: "Kapaklı mı"},
		FieldSpec{Name: "has_drawer", Type: TypeBoolean, Label: "Çekmeceli mi"},
		FieldSpec{Name: "shelf_count", Type: TypeInteger, Label: "Raf Sayısı"},
		FieldSpec{Name: "cart_function", Type: TypeString, Label: "Araba İşlevi", Options: []string{"satış", "servis", "taşıma"}},
		FieldSpec{Name: "tray_count", Type: TypeInteger, Label: "Tepsi/Bölme Sayısı"},
	)},
	{"Raflar", NewFieldSet(
		FieldSpec{Name: "shelf_count", Type: TypeInteger, Label: "Raf Sayısı"},
		FieldSpec{Name: "shelf_material", Type: TypeString, Label: "Raf Malzemesi", Options: []string{"paslanmaz çelik", "krom", "plastik"}},
		FieldSpec{Name: "load_capacity_kg", Type: TypeNumber, Label: "Taşıma Kapasitesi (kg)", Unit: "kg"},
		FieldSpec{Name: "is_wall_mounted", Type: TypeBoolean, Label: "Duvara Monte mu"},
		FieldSpec{Name: "is_adjustable", Type: TypeBoolean, Label: "Ayarlanabilir mi"},
	)},
	{"Benmari", NewFieldSet(
		FieldSpec{Name: "energy_type", Type: TypeString, Label: "Enerji Tipi", Options: []string{"elektrik", "gaz"}},
		FieldSpec{Name: "compartment_count", Type: TypeInteger, Label: "Bölme Sayısı"},
		FieldSpec{Name: "capacity_liters", Type: TypeNumber, Label: "Kapasite (lt)", Unit: "lt"},
		FieldSpec{Name: "voltage", Type: TypeString, Label: "Voltaj", Options: []string{"220V"}},
		FieldSpec{Name: "temperature_control", Type: TypeString, Label: "Sıcaklık Kontrolü", Options: []string{"termostatlı", "kademeli", "dijital"}},
		FieldSpec{Name: "has_drain", Type: TypeBoolean, Label: "Tahliye Musluğu Var mı"},
		FieldSpec{Name: "heating_type", Type: TypeString, Label: "Isıtma Tipi", Options: []string{"kuru", "sulu"}},
	)},
}

var categorySpecIndex = func() map[string]*FieldSet {
	idx := make(map[string]*FieldSet, len(categorySpecs))
	for _, c := range categorySpecs {
		idx[c.name] = c.fields
	}
	return idx
}()
