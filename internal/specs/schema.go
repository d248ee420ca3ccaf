// Package specs defines the static product schema catalog: general product
// fields, layered technical specs (common -> category -> type) and the
// per-category form templates the analysis pipeline fills in.
//
// All tables are defined at process start and never mutated, so concurrent
// reads need no synchronization.
package specs

// FieldType enumerates the value types a schema field may carry.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeInteger FieldType = "integer"
	TypeBoolean FieldType = "boolean"
)

// FieldSpec describes a single schema field.
type FieldSpec struct {
	Name     string
	Type     FieldType
	Label    string
	Required bool
	Options  []string
	Unit     string
	Default  any
}

// FieldSet is an insertion-ordered set of FieldSpecs keyed by name.
// Put replaces an existing entry in place, so later tiers override
// earlier ones without disturbing field order.
type FieldSet struct {
	order  []string
	fields map[string]FieldSpec
}

// NewFieldSet builds a FieldSet from the given specs, in order.
func NewFieldSet(fields ...FieldSpec) *FieldSet {
	s := &FieldSet{fields: make(map[string]FieldSpec, len(fields))}
	for _, f := range fields {
		s.Put(f)
	}
	return s
}

// Put inserts or replaces a field. Replacement keeps the original position.
func (s *FieldSet) Put(f FieldSpec) {
	if _, ok := s.fields[f.Name]; !ok {
		s.order = append(s.order, f.Name)
	}
	s.fields[f.Name] = f
}

// Get returns the field with the given name.
func (s *FieldSet) Get(name string) (FieldSpec, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// Has reports whether the set contains a field with the given name.
func (s *FieldSet) Has(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// Names returns the field names in insertion order.
func (s *FieldSet) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of fields in the set.
func (s *FieldSet) Len() int { return len(s.order) }

// Clone returns an independent copy of the set.
func (s *FieldSet) Clone() *FieldSet {
	c := &FieldSet{
		order:  make([]string, len(s.order)),
		fields: make(map[string]FieldSpec, len(s.fields)),
	}
	copy(c.order, s.order)
	for k, v := range s.fields {
		c.fields[k] = v
	}
	return c
}

// merge overlays other onto the set, tier order preserved.
func (s *FieldSet) merge(other *FieldSet) {
	if other == nil {
		return
	}
	for _, name := range other.order {
		s.Put(other.fields[name])
	}
}

// CategorySchema bundles the applicable field definitions for one
// (category, product type) pair.
type CategorySchema struct {
	CategoryName    string
	ProductType     string
	GeneralFields   *FieldSet
	TechnicalFields *FieldSet
}

// Resolve merges the technical-field tiers for the given category and
// product type: common specs first, then category specs, then
// type-specific specs, later tiers winning on name collisions.
//
// Unknown category or type names are not an error: the model picks
// category names from the same value space as the canonical ones but is
// not guaranteed to match, so the catalog stays permissive and yields
// whichever tiers it knows.
func Resolve(categoryName, productType string) CategorySchema {
	tech := commonSpecs.Clone()
	if cat, ok := categorySpecIndex[categoryName]; ok {
		tech.merge(cat)
	}
	if productType != "" {
		if typ, ok := typeSpecIndex[productType]; ok {
			tech.merge(typ)
		}
	}
	return CategorySchema{
		CategoryName:    categoryName,
		ProductType:     productType,
		GeneralFields:   generalFields.Clone(),
		TechnicalFields: tech,
	}
}

// CategoryNames returns all known category names in declaration order.
func CategoryNames() []string {
	names := make([]string, 0, len(categorySpecs))
	for _, c := range categorySpecs {
		names = append(names, c.name)
	}
	return names
}

// ProductTypesFor returns the product-type labels registered for a
// category, or nil when the category is unknown. Used to detect a
// mismatched product type; never blocks output generation.
func ProductTypesFor(categoryName string) []string {
	types, ok := productTypes[categoryName]
	if !ok {
		return nil
	}
	out := make([]string, len(types))
	copy(out, types)
	return out
}
