package taxa

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/taxamark/pkg/errors"
)

func TestLoadFile(t *testing.T) {
	taxon, err := LoadFile(filepath.Join("testdata", "dandelion.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 47602, taxon.ID)
	assert.Equal(t, "Taraxacum officinale", taxon.Name)
	assert.Equal(t, RankSpecies, taxon.Rank)
	assert.Equal(t, "pissenlit", taxon.MatchedTerm)
	assert.Equal(t, 251034, taxon.ObservationsCount)
	assert.True(t, taxon.Active())
	assert.Equal(t, []string{"Leontodon taraxacum"}, taxon.InvalidNames())

	require.NotNil(t, taxon.EstablishmentMeans)
	assert.Equal(t, MeansIntroduced, taxon.EstablishmentMeans.Means)
	assert.Equal(t, "United States", taxon.EstablishmentMeans.Place.Label())

	listed, ok := taxon.FullMeans()
	require.True(t, ok)
	assert.Equal(t, "United States Check List", listed.ListTitle())

	require.Len(t, taxon.Ancestors, 6)
	assert.Equal(t, RankKingdom, taxon.Ancestors[0].Rank)
	assert.Equal(t, "plants", taxon.Ancestors[0].PreferredCommonName)
	assert.NoError(t, taxon.Validate())
}

func TestLoadListFileEnvelope(t *testing.T) {
	list, err := LoadListFile(filepath.Join("testdata", "search.json"))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Aves", list[0].Name)
	assert.Equal(t, RankClass, list[1].Rank)
	assert.Equal(t, 1200000, list[1].ObservationsCount)
}

func TestParseList(t *testing.T) {
	t.Run("sequence", func(t *testing.T) {
		data := []byte("- {name: Animalia, rank: kingdom}\n- {name: Chordata, rank: phylum}\n")
		list, err := ParseList(data, "inline.yaml")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Chordata", list[1].Name)
	})

	t.Run("single mapping", func(t *testing.T) {
		list, err := ParseList([]byte("name: Aves\nrank: class\n"), "aves.yaml")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Aves", list[0].Name)
	})

	t.Run("empty document", func(t *testing.T) {
		list, err := ParseList([]byte(""), "empty.yaml")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("scalar document", func(t *testing.T) {
		_, err := ParseList([]byte("just text"), "scalar.yaml")
		var parseErr *errors.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "yaml", parseErr.Format)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ParseList([]byte(`{"name": "Aves", "rank": [}`), "bad.json")
		var parseErr *errors.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "json", parseErr.Format)
		assert.Equal(t, "bad.json", parseErr.File)
	})
}

func TestParseEmptyIsNotFound(t *testing.T) {
	_, err := Parse([]byte(`{"total_results": 0, "results": []}`), "none.json")
	assert.True(t, errors.IsNotFound(err))
}

func TestLoad(t *testing.T) {
	taxon, err := Load(strings.NewReader("name: Corvus corax\nrank: species\nis_active: false\n"), "stdin")
	require.NoError(t, err)
	assert.Equal(t, "Corvus corax", taxon.Name)
	assert.False(t, taxon.Active())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "missing.yaml"))
	var ioErr *errors.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Operation)
}
