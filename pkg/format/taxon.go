package format

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/taxamark/pkg/constants"
	"github.com/agentstation/taxamark/pkg/logging"
	"github.com/agentstation/taxamark/pkg/taxa"
)

// TaxonFormatter renders a taxon as a title line followed by a one-sentence
// description of its rank, status, observations, establishment and
// ancestry.
type TaxonFormatter struct {
	taxon       *taxa.Taxon
	locale      string
	withURL     bool
	matchedTerm string
	maxLen      int
	newline     string
	baseURL     string
	logger      *zerolog.Logger
}

// TaxonOption configures a TaxonFormatter.
type TaxonOption func(*TaxonFormatter)

// WithLocale prefers common names in the given locale.
func WithLocale(locale string) TaxonOption {
	return func(f *TaxonFormatter) {
		f.locale = locale
	}
}

// WithURL controls whether the title links to the taxon page.
func WithURL(enabled bool) TaxonOption {
	return func(f *TaxonFormatter) {
		f.withURL = enabled
	}
}

// WithMatchedTerm overrides the taxon's own matched term in the title.
func WithMatchedTerm(term string) TaxonOption {
	return func(f *TaxonFormatter) {
		f.matchedTerm = term
	}
}

// WithMaxLen bounds the ancestor hierarchy. 0 means unbounded.
func WithMaxLen(n int) TaxonOption {
	return func(f *TaxonFormatter) {
		f.maxLen = n
	}
}

// WithNewline sets the separator between title and description.
func WithNewline(newline string) TaxonOption {
	return func(f *TaxonFormatter) {
		f.newline = newline
	}
}

// WithBaseURL points observation and listed taxon links at another site.
func WithBaseURL(url string) TaxonOption {
	return func(f *TaxonFormatter) {
		if url != "" {
			f.baseURL = url
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zerolog.Logger) TaxonOption {
	return func(f *TaxonFormatter) {
		f.logger = logger
	}
}

// NewTaxonFormatter creates a formatter for taxon.
func NewTaxonFormatter(taxon *taxa.Taxon, opts ...TaxonOption) *TaxonFormatter {
	f := &TaxonFormatter{
		taxon:   taxon,
		withURL: true,
		maxLen:  constants.DefaultMaxLen,
		newline: "\n",
		baseURL: constants.WWWBaseURL,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = logging.Default()
	}
	return f
}

// Format renders the title, the description and, when withAncestors is set
// and the taxon has any, the ancestor hierarchy:
//
//	*Taraxacum officinale* (common dandelion)
//	is a species with [12,345](…) observations in: **Plantae** > …
func (f *TaxonFormatter) Format(withAncestors bool) (string, error) {
	title, err := f.Title()
	if err != nil {
		return "", err
	}
	text := title + f.newline + f.Description()

	if !withAncestors || len(f.taxon.Ancestors) == 0 {
		return text + ".", nil
	}

	opts := NamesOptions{
		NameOptions: NameOptions{Hierarchy: true, WithRank: true, WithCommon: true, Locale: f.locale},
		MaxLen:      f.maxLen,
	}
	hierarchy, err := Names(f.taxon.Ancestors, opts)
	if err != nil {
		return "", err
	}
	if f.maxLen > 0 && strings.HasSuffix(hierarchy, " more") {
		f.logger.Debug().
			Str("taxon", f.taxon.Name).
			Int("max_len", f.maxLen).
			Int("ancestors", len(f.taxon.Ancestors)).
			Msg("Truncated ancestor hierarchy")
	}
	return text + " in: " + hierarchy, nil
}

// Title renders the taxon name, linked to the taxon page when enabled. A
// matched term that is neither the scientific nor the common name follows
// in parentheses, struck through when it is an invalid name of the taxon.
func (f *TaxonFormatter) Title() (string, error) {
	opts := DefaultNameOptions()
	opts.Locale = f.locale
	title, err := Name(f.taxon, opts)
	if err != nil {
		return "", err
	}
	if f.withURL {
		title = Link(title, f.taxon.PageURL())
	}

	matched := f.matchedTerm
	if matched == "" {
		matched = f.taxon.MatchedTerm
	}
	if matched == "" || matched == f.taxon.Name || matched == f.taxon.CommonName(f.locale) {
		return title, nil
	}
	if slices.Contains(f.taxon.InvalidNames(), matched) {
		matched = strikethrough(matched)
	}
	return title + " (" + matched + ")", nil
}

// StatusRank renders the rank with an article, preceded by the conservation
// status when there is one, e.g. "an [endangered](…) species".
func (f *TaxonFormatter) StatusRank() string {
	rank := f.taxon.Rank.String()
	if f.taxon.ConservationStatus == nil {
		return Article(rank) + " " + rank
	}
	status := ConservationStatus(*f.taxon.ConservationStatus, StatusOptions{Brief: true, Inflect: true})
	return status + " " + rank
}

// Description renders "is <status rank> with <count>" followed by the
// establishment means, if any are shown.
func (f *TaxonFormatter) Description() string {
	description := "is " + f.StatusRank() + " with " + ObservationCount(f.taxon, f.baseURL)
	if f.taxon.EstablishmentMeans == nil {
		return description
	}

	var means taxa.Means = *f.taxon.EstablishmentMeans
	if listed, ok := f.taxon.FullMeans(); ok {
		means = listed
	}
	established, ok := EstablishmentMeans(means, WithMeansBaseURL(f.baseURL))
	if !ok {
		f.logger.Debug().
			Str("taxon", f.taxon.Name).
			Str("means", means.Establishment().Means).
			Msg("Suppressed establishment means")
		return description
	}
	return description + " " + established
}
