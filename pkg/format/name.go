package format

import (
	"strings"

	"github.com/agentstation/taxamark/pkg/constants"
	"github.com/agentstation/taxamark/pkg/taxa"
)

// NameOptions controls how a single taxon name is rendered.
type NameOptions struct {
	// IncludeTerm puts the matched search term in parentheses in place of
	// the common name when it differs from both scientific and common name.
	IncludeTerm bool

	// Hierarchy renders a hierarchy list item: no rank label, primary ranks
	// bolded on their own quoted line, and no common name unless
	// IncludeTerm is set.
	Hierarchy bool

	// WithRank prefixes the capitalized rank for ranks above species.
	// Ignored in hierarchy mode.
	WithRank bool

	// WithCommon appends the common name in parentheses.
	WithCommon bool

	// Locale prefers the first name in this locale over the preferred
	// common name.
	Locale string
}

// DefaultNameOptions returns options with rank and common name enabled.
func DefaultNameOptions() NameOptions {
	return NameOptions{WithRank: true, WithCommon: true}
}

// Name formats a taxon name the way taxon pages on the web do:
//
//   - the rank is dropped at species level and below
//   - names at genus level and below are italicized
//   - trinomials get the rank abbreviation unitalicized between the second
//     and third epithet, e.g. "*Anser anser* var. *domesticus*"
//   - the common name (or matched term) follows in parentheses
//   - inactive taxa are flagged
//
// A taxon whose rank is not in the rank table yields an UnknownRankError.
func Name(taxon *taxa.Taxon, opts NameOptions) (string, error) {
	level, err := taxon.Level()
	if err != nil {
		return "", err
	}

	name := taxon.Name
	if level <= taxa.GenusLevel {
		name = italic(name)
	}

	if level > taxa.SpeciesLevel {
		if opts.Hierarchy {
			if taxon.Rank.IsPrimary() {
				name = "\n> " + bold(name)
			}
		} else if opts.WithRank {
			name = capitalize(taxon.Rank.String()) + " " + name
		}
	} else if abbr, ok := taxon.Rank.TrinomialAbbr(); ok {
		if epithets := strings.Split(taxon.Name, " "); len(epithets) == 3 {
			name = italic(epithets[0]+" "+epithets[1]) + " " + abbr + " " + italic(epithets[2])
		}
	}

	if common := displayCommonName(taxon, opts); common != "" {
		name += " (" + common + ")"
	}
	if !taxon.Active() {
		name += " " + constants.InactiveGlyph + " " + constants.InactiveTaxonLabel
	}
	return name, nil
}

// displayCommonName picks the parenthesized name, if any.
func displayCommonName(taxon *taxa.Taxon, opts NameOptions) string {
	if !opts.WithCommon {
		return ""
	}
	common := taxon.CommonName(opts.Locale)
	if opts.IncludeTerm {
		if term := taxon.MatchedTerm; term != "" && term != taxon.Name && term != common {
			return term
		}
		return common
	}
	if opts.Hierarchy {
		return ""
	}
	return common
}
