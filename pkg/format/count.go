package format

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/agentstation/taxamark/pkg/constants"
	"github.com/agentstation/taxamark/pkg/taxa"
)

// ObservationsURL returns the observation search URL for a taxon.
// An empty baseURL means the default site.
func ObservationsURL(taxon *taxa.Taxon, baseURL string) string {
	if baseURL == "" {
		baseURL = constants.WWWBaseURL
	}
	return fmt.Sprintf("%s%s?taxon_id=%d", baseURL, constants.ObservationsPath, taxon.ID)
}

// ObservationCount renders the taxon's observation count with thousands
// separators, linked to its observation search, followed by "observation"
// or "observations".
func ObservationCount(taxon *taxa.Taxon, baseURL string) string {
	count := Link(humanize.Comma(int64(taxon.ObservationsCount)), ObservationsURL(taxon, baseURL))
	return count + " " + english.PluralWord(taxon.ObservationsCount, "observation", "")
}
