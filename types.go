package main

// Taxonomy is the scientific classification attached to an animal record
type Taxonomy struct {
	Kingdom        string `json:"kingdom,omitempty" yaml:"kingdom,omitempty"`
	Phylum         string `json:"phylum,omitempty" yaml:"phylum,omitempty"`
	Class          string `json:"class,omitempty" yaml:"class,omitempty"`
	Order          string `json:"order,omitempty" yaml:"order,omitempty"`
	Family         string `json:"family,omitempty" yaml:"family,omitempty"`
	Genus          string `json:"genus,omitempty" yaml:"genus,omitempty"`
	ScientificName string `json:"scientific_name,omitempty" yaml:"scientific_name,omitempty"`
}

// IsEmpty reports whether no taxonomy rank is set
func (t *Taxonomy) IsEmpty() bool {
	return t == nil || *t == Taxonomy{}
}

// AnimalRecord is one animal as returned by the API or read from a data file
type AnimalRecord struct {
	Name            string            `json:"name" yaml:"name"`
	Taxonomy        *Taxonomy         `json:"taxonomy,omitempty" yaml:"taxonomy,omitempty"`
	Locations       []string          `json:"locations,omitempty" yaml:"locations,omitempty"`
	Characteristics map[string]string `json:"characteristics,omitempty" yaml:"characteristics,omitempty"`
}

// Characteristic returns the named characteristic and whether it is present.
// Blank values count as absent.
func (r AnimalRecord) Characteristic(key string) (string, bool) {
	v, ok := r.Characteristics[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// SkinType returns the skin_type characteristic, or "" when absent
func (r AnimalRecord) SkinType() string {
	v, _ := r.Characteristic(SkinTypeAttribute)
	return v
}
