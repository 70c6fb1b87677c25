package taxa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/taxamark/pkg/errors"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestPreferredName(t *testing.T) {
	names := []TaxonName{
		{Name: "Pissenlit", Locale: "fr"},
		{Name: "common dandelion", Locale: "en"},
		{Name: "pissenlit commun", Locale: "fr"},
	}

	name, ok := PreferredName(names, "fr")
	assert.True(t, ok)
	assert.Equal(t, "Pissenlit", name.Name, "first match wins")

	_, ok = PreferredName(names, "de")
	assert.False(t, ok)

	_, ok = PreferredName(nil, "en")
	assert.False(t, ok)
}

func TestTaxonCommonName(t *testing.T) {
	taxon := Taxon{
		Name:                "Taraxacum officinale",
		PreferredCommonName: "common dandelion",
		Names: []TaxonName{
			{Name: "pissenlit commun", Locale: "fr"},
			{Name: "", Locale: "de"},
		},
	}

	assert.Equal(t, "common dandelion", taxon.CommonName(""))
	assert.Equal(t, "pissenlit commun", taxon.CommonName("fr"))
	assert.Equal(t, "common dandelion", taxon.CommonName("es"))
	assert.Equal(t, "common dandelion", taxon.CommonName("de"), "empty locale name falls back")
}

func TestTaxonActiveAndValid(t *testing.T) {
	assert.True(t, (&Taxon{}).Active())
	assert.True(t, (&Taxon{IsActive: boolPtr(true)}).Active())
	assert.False(t, (&Taxon{IsActive: boolPtr(false)}).Active())

	taxon := Taxon{Names: []TaxonName{
		{Name: "Picoides pubescens", IsValid: boolPtr(false)},
		{Name: "Dryobates pubescens", IsValid: boolPtr(true)},
		{Name: "Downy Woodpecker"},
	}}
	assert.Equal(t, []string{"Picoides pubescens"}, taxon.InvalidNames())
}

func TestTaxonPageURL(t *testing.T) {
	assert.Equal(t, "https://example.org/t", (&Taxon{ID: 1, URL: "https://example.org/t"}).PageURL())
	assert.Equal(t, "https://www.inaturalist.org/taxa/3", (&Taxon{ID: 3}).PageURL())
	assert.Empty(t, (&Taxon{}).PageURL())
}

func TestTaxonFullMeans(t *testing.T) {
	listed := ListedTaxon{
		EstablishmentMeans: EstablishmentMeans{ID: 9, Means: MeansNative, Place: Place{ID: 7, DisplayName: "Ontario, CA"}},
		List:               &TaxonList{ID: 2, Title: "Ontario Check List"},
	}
	other := ListedTaxon{
		EstablishmentMeans: EstablishmentMeans{ID: 8, Means: MeansIntroduced, Place: Place{ID: 6}},
	}

	t.Run("matching place", func(t *testing.T) {
		taxon := Taxon{
			EstablishmentMeans: &EstablishmentMeans{ID: 9, Means: MeansNative, Place: Place{ID: 7}},
			ListedTaxa:         []ListedTaxon{other, listed},
		}
		got, ok := taxon.FullMeans()
		require.True(t, ok)
		assert.Equal(t, "Ontario Check List", got.ListTitle())
		assert.Equal(t, 9, got.Establishment().ID)
	})

	t.Run("no matching place", func(t *testing.T) {
		taxon := Taxon{
			EstablishmentMeans: &EstablishmentMeans{Place: Place{ID: 100}},
			ListedTaxa:         []ListedTaxon{other, listed},
		}
		_, ok := taxon.FullMeans()
		assert.False(t, ok)
	})

	t.Run("no means", func(t *testing.T) {
		taxon := Taxon{ListedTaxa: []ListedTaxon{listed}}
		_, ok := taxon.FullMeans()
		assert.False(t, ok)
	})
}

func TestMeansInterface(t *testing.T) {
	var m Means = EstablishmentMeans{Means: MeansEndemic}
	assert.Empty(t, m.ListTitle())

	m = ListedTaxon{EstablishmentMeans: EstablishmentMeans{Means: MeansEndemic}}
	assert.Empty(t, m.ListTitle())
	assert.Equal(t, MeansEndemic, m.Establishment().Means)

	assert.Equal(t, "Canada", Place{Name: "Canada"}.Label())
	assert.Equal(t, "Canada (CA)", Place{Name: "Canada", DisplayName: "Canada (CA)"}.Label())
}

func TestConservationStatusDisplayName(t *testing.T) {
	assert.Equal(t, "endangered", ConservationStatus{Status: "EN", StatusName: "endangered"}.DisplayName())
	assert.Equal(t, "S3", ConservationStatus{Status: "S3"}.DisplayName())
}

func TestTaxonValidate(t *testing.T) {
	t.Run("valid hierarchy", func(t *testing.T) {
		taxon := Taxon{
			Name: "Aves",
			Rank: RankClass,
			Ancestors: []Taxon{
				{Name: "Animalia", Rank: RankKingdom},
				{Name: "Chordata", Rank: RankPhylum},
				{Name: "Vertebrata", Rank: RankSubphylum},
			},
		}
		assert.NoError(t, taxon.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		err := (&Taxon{Rank: RankSpecies}).Validate()
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown rank", func(t *testing.T) {
		err := (&Taxon{Name: "Dinosauria", Rank: "clade"}).Validate()
		assert.True(t, errors.IsUnknownRank(err))
		assert.Contains(t, err.Error(), "Dinosauria")
	})

	t.Run("unknown ancestor rank", func(t *testing.T) {
		taxon := Taxon{Name: "Aves", Rank: RankClass, Ancestors: []Taxon{{Name: "X", Rank: "clade"}}}
		assert.True(t, errors.IsUnknownRank(taxon.Validate()))
	})

	t.Run("ancestors out of order", func(t *testing.T) {
		taxon := Taxon{
			Name: "Aves",
			Rank: RankClass,
			Ancestors: []Taxon{
				{Name: "Chordata", Rank: RankPhylum},
				{Name: "Animalia", Rank: RankKingdom},
			},
		}
		err := taxon.Validate()
		assert.True(t, errors.IsValidationError(err))
		assert.Contains(t, err.Error(), "Animalia")
	})
}
