package taxa

import (
	"fmt"

	"github.com/agentstation/taxamark/pkg/constants"
	"github.com/agentstation/taxamark/pkg/errors"
)

// Taxon represents a taxon record as returned by the observation API.
type Taxon struct {
	ID                  int                 `json:"id" yaml:"id"`                                                           // API taxon ID
	Name                string              `json:"name" yaml:"name"`                                                       // Scientific name
	Rank                Rank                `json:"rank" yaml:"rank"`                                                       // Taxonomic rank
	Names               []TaxonName         `json:"names,omitempty" yaml:"names,omitempty"`                                 // All names in all locales
	PreferredCommonName string              `json:"preferred_common_name,omitempty" yaml:"preferred_common_name,omitempty"` // Common name for the requesting locale
	MatchedTerm         string              `json:"matched_term,omitempty" yaml:"matched_term,omitempty"`                   // Search term that matched this taxon
	IsActive            *bool               `json:"is_active,omitempty" yaml:"is_active,omitempty"`                         // Whether the taxon is current; nil means active
	ConservationStatus  *ConservationStatus `json:"conservation_status,omitempty" yaml:"conservation_status,omitempty"`     // Status at the requested place, if any
	EstablishmentMeans  *EstablishmentMeans `json:"establishment_means,omitempty" yaml:"establishment_means,omitempty"`     // Means at the requested place, if any
	ListedTaxa          []ListedTaxon       `json:"listed_taxa,omitempty" yaml:"listed_taxa,omitempty"`                     // Per-place checklist entries
	Ancestors           []Taxon             `json:"ancestors,omitempty" yaml:"ancestors,omitempty"`                         // Highest to lowest rank
	ObservationsCount   int                 `json:"observations_count" yaml:"observations_count"`                           // Total observations
	URL                 string              `json:"url,omitempty" yaml:"url,omitempty"`                                     // Canonical taxon page
}

// Active reports whether the taxon is active. A record without the flag is
// treated as active.
func (t *Taxon) Active() bool {
	return t.IsActive == nil || *t.IsActive
}

// PageURL returns the canonical taxon page URL, deriving it from the ID when
// the record carries none.
func (t *Taxon) PageURL() string {
	if t.URL != "" {
		return t.URL
	}
	if t.ID == 0 {
		return ""
	}
	return fmt.Sprintf("%s/taxa/%d", constants.WWWBaseURL, t.ID)
}

// Level returns the taxon's rank level.
func (t *Taxon) Level() (float64, error) {
	level, err := t.Rank.Level()
	if err != nil {
		return 0, errors.NewUnknownRankError(string(t.Rank), t.Name)
	}
	return level, nil
}

// CommonName returns the first name in the given locale, falling back to the
// preferred common name. An empty locale skips the lookup.
func (t *Taxon) CommonName(locale string) string {
	if locale != "" {
		if name, ok := PreferredName(t.Names, locale); ok && name.Name != "" {
			return name.Name
		}
	}
	return t.PreferredCommonName
}

// InvalidNames returns the names flagged as not valid, e.g. synonyms.
func (t *Taxon) InvalidNames() []string {
	var invalid []string
	for _, name := range t.Names {
		if !name.Valid() {
			invalid = append(invalid, name.Name)
		}
	}
	return invalid
}

// FullMeans returns the listed taxon for the place of the taxon's
// establishment means. Listed taxa carry the checklist title that the bare
// establishment means record lacks.
func (t *Taxon) FullMeans() (ListedTaxon, bool) {
	if t.EstablishmentMeans == nil || t.EstablishmentMeans.Place.ID == 0 {
		return ListedTaxon{}, false
	}
	placeID := t.EstablishmentMeans.Place.ID
	for _, listed := range t.ListedTaxa {
		if listed.Place.ID == placeID {
			return listed, true
		}
	}
	return ListedTaxon{}, false
}

// Validate checks that the taxon and its ancestors have known ranks and that
// ancestors run from highest to lowest rank.
func (t *Taxon) Validate() error {
	if t.Name == "" {
		return errors.NewValidationError("name", t.Name, "scientific name is required")
	}
	if _, err := t.Level(); err != nil {
		return err
	}

	prev := -1.0
	for i := range t.Ancestors {
		ancestor := &t.Ancestors[i]
		level, err := ancestor.Level()
		if err != nil {
			return err
		}
		if prev >= 0 && level > prev {
			return errors.NewValidationError("ancestors", ancestor.Name,
				fmt.Sprintf("%s (%s) is ranked above its predecessor", ancestor.Name, ancestor.Rank))
		}
		prev = level
	}
	return nil
}
