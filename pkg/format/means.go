package format

import (
	"fmt"

	"github.com/agentstation/taxamark/pkg/constants"
	"github.com/agentstation/taxamark/pkg/taxa"
)

var meansPhrases = map[string]string{
	taxa.MeansEndemic:    "endemic to",
	taxa.MeansNative:     "native in",
	taxa.MeansIntroduced: "introduced to",
}

var meansGlyphs = map[string]string{
	taxa.MeansEndemic:    constants.EndemicGlyph,
	taxa.MeansNative:     constants.NativeGlyph,
	taxa.MeansIntroduced: constants.IntroducedGlyph,
}

type meansConfig struct {
	allMeans  bool
	listTitle bool
	baseURL   string
}

// MeansOption configures EstablishmentMeans.
type MeansOption func(*meansConfig)

// WithAllMeans renders labels other than endemic, native and introduced
// instead of suppressing them.
func WithAllMeans() MeansOption {
	return func(c *meansConfig) {
		c.allMeans = true
	}
}

// WithListTitle links the checklist title rather than the whole phrase when
// the means record belongs to a titled list.
func WithListTitle() MeansOption {
	return func(c *meansConfig) {
		c.listTitle = true
	}
}

// WithMeansBaseURL overrides the site the listed taxon link points to.
func WithMeansBaseURL(url string) MeansOption {
	return func(c *meansConfig) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// EstablishmentMeans renders a means record as a glyph-decorated, linked
// phrase such as "🟩 [native in Canada](https://…/listed_taxa/123)".
// The second result is false when the label is suppressed.
func EstablishmentMeans(means taxa.Means, opts ...MeansOption) (string, bool) {
	cfg := meansConfig{baseURL: constants.WWWBaseURL}
	for _, opt := range opts {
		opt(&cfg)
	}

	em := means.Establishment()
	place := em.Place.Label()

	var phrase string
	if desc, ok := meansPhrases[em.Means]; ok {
		phrase = desc + " " + place
	} else if cfg.allMeans {
		phrase = fmt.Sprintf("Establishment means %s in %s", em.Means, place)
	} else {
		return "", false
	}

	glyph := ""
	if g, ok := meansGlyphs[em.Means]; ok {
		glyph = g + constants.GlyphSpacer
	}
	url := fmt.Sprintf("%s%s%d", cfg.baseURL, constants.ListedTaxaPath, em.ID)

	if cfg.listTitle {
		if title := means.ListTitle(); title != "" {
			return glyph + phrase + " " + Link(title, url), true
		}
	}
	return glyph + Link(phrase, url), true
}
