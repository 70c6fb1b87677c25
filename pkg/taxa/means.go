package taxa

// Establishment means labels with a dedicated rendering.
const (
	MeansEndemic    = "endemic"
	MeansNative     = "native"
	MeansIntroduced = "introduced"
)

// Place is a geographic place referenced by means and statuses.
type Place struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
}

// Label returns the display name, or the short name when no display name is set.
func (p Place) Label() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}

// TaxonList is the checklist a listed taxon belongs to.
type TaxonList struct {
	ID    int    `json:"id" yaml:"id"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// Means is implemented by records that describe how a taxon is established
// in a place.
type Means interface {
	Establishment() EstablishmentMeans
	ListTitle() string
}

// EstablishmentMeans describes how a taxon is established in a place.
type EstablishmentMeans struct {
	ID    int    `json:"id" yaml:"id"`                                   // Listed taxon ID
	Means string `json:"establishment_means" yaml:"establishment_means"` // e.g. "native"
	Place Place  `json:"place" yaml:"place"`
}

// Establishment implements Means.
func (m EstablishmentMeans) Establishment() EstablishmentMeans {
	return m
}

// ListTitle implements Means. Bare establishment means carry no list.
func (m EstablishmentMeans) ListTitle() string {
	return ""
}

// ListedTaxon is an establishment means record on a specific checklist.
type ListedTaxon struct {
	EstablishmentMeans `yaml:",inline"`
	List               *TaxonList `json:"list,omitempty" yaml:"list,omitempty"`
}

// ListTitle implements Means.
func (l ListedTaxon) ListTitle() string {
	if l.List == nil {
		return ""
	}
	return l.List.Title
}
