package taxa

import (
	"github.com/agentstation/taxamark/pkg/errors"
)

// Rank is a taxonomic rank name as used by the observation API.
type Rank string

// String returns the string representation of a Rank.
func (r Rank) String() string {
	return string(r)
}

// Taxonomic ranks, from least to most specific.
const (
	RankStateOfMatter Rank = "stateofmatter"
	RankUnranked      Rank = "unranked"
	RankKingdom       Rank = "kingdom"
	RankPhylum        Rank = "phylum"
	RankSubphylum     Rank = "subphylum"
	RankSuperclass    Rank = "superclass"
	RankClass         Rank = "class"
	RankSubclass      Rank = "subclass"
	RankInfraclass    Rank = "infraclass"
	RankSubterclass   Rank = "subterclass"
	RankSuperorder    Rank = "superorder"
	RankOrder         Rank = "order"
	RankSuborder      Rank = "suborder"
	RankInfraorder    Rank = "infraorder"
	RankParvorder     Rank = "parvorder"
	RankZoosection    Rank = "zoosection"
	RankZoosubsection Rank = "zoosubsection"
	RankSuperfamily   Rank = "superfamily"
	RankEpifamily     Rank = "epifamily"
	RankFamily        Rank = "family"
	RankSubfamily     Rank = "subfamily"
	RankSupertribe    Rank = "supertribe"
	RankTribe         Rank = "tribe"
	RankSubtribe      Rank = "subtribe"
	RankGenus         Rank = "genus"
	RankGenusHybrid   Rank = "genushybrid"
	RankSubgenus      Rank = "subgenus"
	RankSection       Rank = "section"
	RankSubsection    Rank = "subsection"
	RankComplex       Rank = "complex"
	RankSpecies       Rank = "species"
	RankHybrid        Rank = "hybrid"
	RankSubspecies    Rank = "subspecies"
	RankVariety       Rank = "variety"
	RankForm          Rank = "form"
	RankInfrahybrid   Rank = "infrahybrid"
)

// rankLevels maps each known rank to its level. Higher levels are less
// specific; ranks at the same level are peers (e.g. genus and genushybrid).
var rankLevels = map[Rank]float64{
	RankStateOfMatter: 100,
	RankUnranked:      90,
	RankKingdom:       70,
	RankPhylum:        60,
	RankSubphylum:     57,
	RankSuperclass:    53,
	RankClass:         50,
	RankSubclass:      47,
	RankInfraclass:    45,
	RankSubterclass:   44,
	RankSuperorder:    43,
	RankOrder:         40,
	RankSuborder:      37,
	RankInfraorder:    35,
	RankParvorder:     34.5,
	RankZoosection:    34,
	RankZoosubsection: 33.5,
	RankSuperfamily:   33,
	RankEpifamily:     32,
	RankFamily:        30,
	RankSubfamily:     27,
	RankSupertribe:    26,
	RankTribe:         25,
	RankSubtribe:      24,
	RankGenus:         20,
	RankGenusHybrid:   20,
	RankSubgenus:      15,
	RankSection:       13,
	RankSubsection:    12,
	RankComplex:       11,
	RankSpecies:       10,
	RankHybrid:        10,
	RankSubspecies:    5,
	RankVariety:       5,
	RankForm:          5,
	RankInfrahybrid:   5,
}

// Reference levels used by the formatters.
var (
	GenusLevel   = rankLevels[RankGenus]
	SpeciesLevel = rankLevels[RankSpecies]
)

// primaryRanks are bolded in hierarchies.
var primaryRanks = map[Rank]bool{
	RankKingdom: true,
	RankPhylum:  true,
	RankClass:   true,
	RankOrder:   true,
	RankFamily:  true,
}

// trinomialAbbr holds the abbreviation inserted before the third epithet.
var trinomialAbbr = map[Rank]string{
	RankSubspecies: "ssp.",
	RankVariety:    "var.",
	RankForm:       "f.",
}

// Level returns the rank level, or an UnknownRankError for a rank outside
// the table.
func (r Rank) Level() (float64, error) {
	level, ok := rankLevels[r]
	if !ok {
		return 0, errors.NewUnknownRankError(string(r), "")
	}
	return level, nil
}

// IsKnown reports whether the rank is in the rank table.
func (r Rank) IsKnown() bool {
	_, ok := rankLevels[r]
	return ok
}

// IsPrimary reports whether the rank is one of the major ranks
// (kingdom, phylum, class, order, family).
func (r Rank) IsPrimary() bool {
	return primaryRanks[r]
}

// TrinomialAbbr returns the infraspecific abbreviation for the rank, if any.
func (r Rank) TrinomialAbbr() (string, bool) {
	abbr, ok := trinomialAbbr[r]
	return abbr, ok
}

// Ranks returns every known rank ordered from least to most specific.
// Ranks sharing a level keep table order.
func Ranks() []Rank {
	return []Rank{
		RankStateOfMatter, RankUnranked, RankKingdom, RankPhylum, RankSubphylum,
		RankSuperclass, RankClass, RankSubclass, RankInfraclass, RankSubterclass,
		RankSuperorder, RankOrder, RankSuborder, RankInfraorder, RankParvorder,
		RankZoosection, RankZoosubsection, RankSuperfamily, RankEpifamily, RankFamily,
		RankSubfamily, RankSupertribe, RankTribe, RankSubtribe, RankGenus,
		RankGenusHybrid, RankSubgenus, RankSection, RankSubsection, RankComplex,
		RankSpecies, RankHybrid, RankSubspecies, RankVariety, RankForm,
		RankInfrahybrid,
	}
}
