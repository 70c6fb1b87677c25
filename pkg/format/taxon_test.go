package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/taxamark/pkg/errors"
	"github.com/agentstation/taxamark/pkg/logging"
	"github.com/agentstation/taxamark/pkg/taxa"
)

const (
	dandelionPage  = "https://www.inaturalist.org/taxa/47602"
	dandelionObs   = "[251,034](https://www.inaturalist.org/observations?taxon_id=47602) observations"
	dandelionMeans = "\U0001F53C\u202f[introduced to United States](https://www.inaturalist.org/listed_taxa/4412)"
)

func TestTaxonFormatterTitle(t *testing.T) {
	tests := []struct {
		name string
		opts []TaxonOption
		want string
	}{
		{
			name: "linked",
			want: "[*Taraxacum officinale* (common dandelion)](" + dandelionPage + ")",
		},
		{
			name: "without url",
			opts: []TaxonOption{WithURL(false)},
			want: "*Taraxacum officinale* (common dandelion)",
		},
		{
			name: "matched term",
			opts: []TaxonOption{WithURL(false), WithMatchedTerm("pissenlit")},
			want: "*Taraxacum officinale* (common dandelion) (pissenlit)",
		},
		{
			name: "invalid matched term struck through",
			opts: []TaxonOption{WithMatchedTerm("Leontodon taraxacum")},
			want: "[*Taraxacum officinale* (common dandelion)](" + dandelionPage + ") (~~Leontodon taraxacum~~)",
		},
		{
			name: "matched common name",
			opts: []TaxonOption{WithURL(false), WithMatchedTerm("common dandelion")},
			want: "*Taraxacum officinale* (common dandelion)",
		},
		{
			name: "matched locale name",
			opts: []TaxonOption{WithURL(false), WithLocale("fr"), WithMatchedTerm("pissenlit commun")},
			want: "*Taraxacum officinale* (pissenlit commun)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTaxonFormatter(dandelion(), tt.opts...).Title()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaxonFormatterTitleUsesTaxonMatchedTerm(t *testing.T) {
	taxon := dandelion()
	taxon.MatchedTerm = "pissenlit"

	got, err := NewTaxonFormatter(taxon, WithURL(false)).Title()
	require.NoError(t, err)
	assert.Equal(t, "*Taraxacum officinale* (common dandelion) (pissenlit)", got)
}

func TestTaxonFormatterStatusRank(t *testing.T) {
	taxon := dandelion()
	assert.Equal(t, "a species", NewTaxonFormatter(taxon).StatusRank())

	taxon.ConservationStatus = &taxa.ConservationStatus{StatusName: "endangered", URL: "https://example.org/status"}
	assert.Equal(t, "an [endangered](https://example.org/status) species", NewTaxonFormatter(taxon).StatusRank())

	order := &taxa.Taxon{Name: "Asterales", Rank: taxa.RankOrder}
	assert.Equal(t, "an order", NewTaxonFormatter(order).StatusRank())
}

func TestTaxonFormatterDescription(t *testing.T) {
	t.Run("means", func(t *testing.T) {
		got := NewTaxonFormatter(dandelion()).Description()
		assert.Equal(t, "is a species with "+dandelionObs+" "+dandelionMeans, got)
	})

	t.Run("prefers listed taxon for the place", func(t *testing.T) {
		taxon := dandelion()
		taxon.ListedTaxa[0].ID = 9999
		got := NewTaxonFormatter(taxon).Description()
		assert.Contains(t, got, "/listed_taxa/9999)")
	})

	t.Run("no means", func(t *testing.T) {
		taxon := dandelion()
		taxon.EstablishmentMeans = nil
		got := NewTaxonFormatter(taxon).Description()
		assert.Equal(t, "is a species with "+dandelionObs, got)
	})

	t.Run("suppressed means logged", func(t *testing.T) {
		logger := logging.NewTestLogger(t)
		taxon := dandelion()
		taxon.EstablishmentMeans.Means = "uncertain"
		taxon.ListedTaxa = nil

		got := NewTaxonFormatter(taxon, WithLogger(logger.Logger)).Description()
		assert.Equal(t, "is a species with "+dandelionObs, got)
		logger.AssertContains(t, "Suppressed establishment means")
		logger.AssertContains(t, `"means":"uncertain"`)
	})

	t.Run("base url", func(t *testing.T) {
		got := NewTaxonFormatter(dandelion(), WithBaseURL("https://example.org")).Description()
		assert.Contains(t, got, "(https://example.org/observations?taxon_id=47602)")
		assert.Contains(t, got, "(https://example.org/listed_taxa/4412)")
	})
}

func TestTaxonFormatterFormat(t *testing.T) {
	title := "[*Taraxacum officinale* (common dandelion)](" + dandelionPage + ")"
	description := "is a species with " + dandelionObs + " " + dandelionMeans

	t.Run("without ancestors", func(t *testing.T) {
		got, err := NewTaxonFormatter(dandelion()).Format(false)
		require.NoError(t, err)
		assert.Equal(t, title+"\n"+description+".", got)
	})

	t.Run("with ancestors", func(t *testing.T) {
		got, err := NewTaxonFormatter(dandelion()).Format(true)
		require.NoError(t, err)
		assert.Equal(t, title+"\n"+description+
			" in: \n> **Plantae** > \n> **Magnoliopsida** > \n> **Asteraceae** > *Taraxacum*", got)
	})

	t.Run("no ancestors to show", func(t *testing.T) {
		taxon := dandelion()
		taxon.Ancestors = nil
		got, err := NewTaxonFormatter(taxon).Format(true)
		require.NoError(t, err)
		assert.Equal(t, title+"\n"+description+".", got)
	})

	t.Run("newline", func(t *testing.T) {
		got, err := NewTaxonFormatter(dandelion(), WithNewline(" ")).Format(false)
		require.NoError(t, err)
		assert.Equal(t, title+" "+description+".", got)
	})

	t.Run("truncated hierarchy", func(t *testing.T) {
		logger := logging.NewTestLogger(t)
		got, err := NewTaxonFormatter(dandelion(), WithMaxLen(40), WithLogger(logger.Logger)).Format(true)
		require.NoError(t, err)
		assert.Equal(t, title+"\n"+description+" in: \n> **Plantae** > and 3 more", got)
		logger.AssertContains(t, "Truncated ancestor hierarchy")
	})

	t.Run("unknown rank", func(t *testing.T) {
		taxon := dandelion()
		taxon.Rank = "clade"
		_, err := NewTaxonFormatter(taxon).Format(true)
		assert.True(t, errors.IsUnknownRank(err))
	})

	t.Run("unknown ancestor rank", func(t *testing.T) {
		taxon := dandelion()
		taxon.Ancestors[1].Rank = "clade"
		_, err := NewTaxonFormatter(taxon).Format(true)
		assert.True(t, errors.IsUnknownRank(err))
	})
}
