package format

import "github.com/agentstation/taxamark/pkg/taxa"

func boolPtr(b bool) *bool {
	return &b
}

// dandelion returns a species record with names, means and a short
// ancestry.
func dandelion() *taxa.Taxon {
	us := taxa.Place{ID: 1, DisplayName: "United States"}
	return &taxa.Taxon{
		ID:                  47602,
		Name:                "Taraxacum officinale",
		Rank:                taxa.RankSpecies,
		PreferredCommonName: "common dandelion",
		ObservationsCount:   251034,
		Names: []taxa.TaxonName{
			{Name: "common dandelion", Locale: "en", IsValid: boolPtr(true)},
			{Name: "pissenlit commun", Locale: "fr", IsValid: boolPtr(true)},
			{Name: "Leontodon taraxacum", Locale: "sci", IsValid: boolPtr(false)},
		},
		EstablishmentMeans: &taxa.EstablishmentMeans{ID: 4412, Means: taxa.MeansIntroduced, Place: us},
		ListedTaxa: []taxa.ListedTaxon{
			{
				EstablishmentMeans: taxa.EstablishmentMeans{ID: 4412, Means: taxa.MeansIntroduced, Place: us},
				List:               &taxa.TaxonList{ID: 299, Title: "United States Check List"},
			},
		},
		Ancestors: []taxa.Taxon{
			{ID: 47126, Name: "Plantae", Rank: taxa.RankKingdom, PreferredCommonName: "plants"},
			{ID: 47124, Name: "Magnoliopsida", Rank: taxa.RankClass},
			{ID: 47604, Name: "Asteraceae", Rank: taxa.RankFamily},
			{ID: 53537, Name: "Taraxacum", Rank: taxa.RankGenus, PreferredCommonName: "dandelions"},
		},
	}
}
