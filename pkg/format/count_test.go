package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/taxamark/pkg/taxa"
)

func TestObservationCount(t *testing.T) {
	const url = "https://www.inaturalist.org/observations?taxon_id=47602"

	tests := []struct {
		count int
		want  string
	}{
		{count: 0, want: "[0](" + url + ") observations"},
		{count: 1, want: "[1](" + url + ") observation"},
		{count: 2, want: "[2](" + url + ") observations"},
		{count: 1234, want: "[1,234](" + url + ") observations"},
		{count: 251034, want: "[251,034](" + url + ") observations"},
	}

	for _, tt := range tests {
		taxon := &taxa.Taxon{ID: 47602, ObservationsCount: tt.count}
		assert.Equal(t, tt.want, ObservationCount(taxon, ""))
	}
}

func TestObservationsURL(t *testing.T) {
	taxon := &taxa.Taxon{ID: 3}
	assert.Equal(t, "https://www.inaturalist.org/observations?taxon_id=3", ObservationsURL(taxon, ""))
	assert.Equal(t, "https://example.org/observations?taxon_id=3", ObservationsURL(taxon, "https://example.org"))
}
