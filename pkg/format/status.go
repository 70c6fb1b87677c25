package format

import (
	"fmt"
	"strings"

	"github.com/agentstation/taxamark/pkg/taxa"
)

// StatusOptions controls ConservationStatus rendering.
type StatusOptions struct {
	// Brief renders only the linked label.
	Brief bool
	// Inflect prefixes the brief form with "a" or "an".
	Inflect bool
}

// ConservationStatus renders a conservation status. The full form is
// "endangered ([IUCN Red List](url))"; the brief form is
// "[endangered](url)", or "an [endangered](url)" when inflected.
func ConservationStatus(status taxa.ConservationStatus, opts StatusOptions) string {
	label := status.DisplayName()
	if !opts.Brief {
		if status.Authority == "" {
			return label
		}
		return fmt.Sprintf("%s (%s)", label, Link(status.Authority, status.URL))
	}

	linked := Link(label, status.URL)
	if !opts.Inflect {
		return linked
	}
	return Article(firstWord(spellDigits(label))) + " " + linked
}

func firstWord(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
