package taxa

// TaxonName is one name of a taxon in a given locale.
type TaxonName struct {
	Name    string `json:"name" yaml:"name"`
	Locale  string `json:"locale" yaml:"locale"`
	IsValid *bool  `json:"is_valid,omitempty" yaml:"is_valid,omitempty"`
}

// Valid reports whether the name is valid. A name without the flag is valid.
func (n TaxonName) Valid() bool {
	return n.IsValid == nil || *n.IsValid
}

// PreferredName returns the first name whose locale matches.
func PreferredName(names []TaxonName, locale string) (TaxonName, bool) {
	for _, name := range names {
		if name.Locale == locale {
			return name, true
		}
	}
	return TaxonName{}, false
}
