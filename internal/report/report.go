// Package report renders a list of taxa as a Markdown document: a summary
// line of names, then one section per taxon with its formatted description,
// conservation status and every place it is listed in.
package report

import (
	"context"
	"io"

	"github.com/agentstation/taxamark/pkg/constants"
	"github.com/agentstation/taxamark/pkg/format"
	"github.com/agentstation/taxamark/pkg/logging"
	"github.com/agentstation/taxamark/pkg/taxa"
)

// Options configures a report.
type Options struct {
	Title       string
	Description string
	Source      string
	Locale      string
	MaxLen      int
	BaseURL     string
	WithURL     bool
	FrontMatter bool
}

// Option is a functional option for reports.
type Option func(*Options)

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithDescription sets the front matter description.
func WithDescription(desc string) Option {
	return func(o *Options) {
		o.Description = desc
	}
}

// WithSource records where the taxa were loaded from.
func WithSource(source string) Option {
	return func(o *Options) {
		o.Source = source
	}
}

// WithLocale prefers common names in the given locale.
func WithLocale(locale string) Option {
	return func(o *Options) {
		o.Locale = locale
	}
}

// WithMaxLen bounds the summary line and each ancestor hierarchy.
func WithMaxLen(n int) Option {
	return func(o *Options) {
		o.MaxLen = n
	}
}

// WithBaseURL points links at another site.
func WithBaseURL(url string) Option {
	return func(o *Options) {
		o.BaseURL = url
	}
}

// WithURL controls whether taxon titles are linked.
func WithURL(enabled bool) Option {
	return func(o *Options) {
		o.WithURL = enabled
	}
}

// WithFrontMatter adds a YAML header.
func WithFrontMatter() Option {
	return func(o *Options) {
		o.FrontMatter = true
	}
}

func defaultOptions() *Options {
	return &Options{
		Title:   "Taxa",
		MaxLen:  constants.DefaultMaxLen,
		BaseURL: constants.WWWBaseURL,
		WithURL: true,
	}
}

// Write renders the report for list to w.
func Write(ctx context.Context, w io.Writer, list []taxa.Taxon, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := logging.FromContext(ctx)

	doc := NewMarkdown(w)
	if o.FrontMatter {
		if err := doc.FrontMatter(FrontMatter{
			Title:       o.Title,
			Description: o.Description,
			Source:      o.Source,
			Taxa:        len(list),
		}); err != nil {
			return err
		}
	}

	doc.H1(o.Title)
	if len(list) == 0 {
		doc.PlainText("No taxa.")
		return doc.Build()
	}

	nameOpts := format.DefaultNameOptions()
	nameOpts.Locale = o.Locale
	summary, err := format.Names(list, format.NamesOptions{
		NameOptions: nameOpts,
		Format:      "Taxa: %s",
		MaxLen:      o.MaxLen,
	})
	if err != nil {
		return err
	}
	doc.PlainText(summary).LF()

	for i := range list {
		taxon := &list[i]
		sectionLogger := logging.FromContext(logging.WithTaxon(ctx, taxon.Name))
		if err := writeTaxon(doc, taxon, o); err != nil {
			sectionLogger.Error().Err(err).Msg("Failed to format taxon")
			return err
		}
		sectionLogger.Debug().Int("index", i).Msg("Wrote taxon section")
	}

	logger.Info().
		Int("taxa", len(list)).
		Str("title", o.Title).
		Msg("Rendered report")
	return doc.Build()
}

func writeTaxon(doc *Markdown, taxon *taxa.Taxon, o *Options) error {
	formatter := format.NewTaxonFormatter(taxon,
		format.WithLocale(o.Locale),
		format.WithURL(o.WithURL),
		format.WithMaxLen(o.MaxLen),
		format.WithBaseURL(o.BaseURL),
	)
	text, err := formatter.Format(true)
	if err != nil {
		return err
	}

	doc.H2(taxon.Name)
	doc.PlainText(text).LF()

	var details []string
	if taxon.ConservationStatus != nil {
		details = append(details, "Conservation status: "+
			format.ConservationStatus(*taxon.ConservationStatus, format.StatusOptions{}))
	}
	for _, listed := range taxon.ListedTaxa {
		if means, ok := format.EstablishmentMeans(listed,
			format.WithAllMeans(),
			format.WithListTitle(),
			format.WithMeansBaseURL(o.BaseURL),
		); ok {
			details = append(details, means)
		}
	}
	doc.BulletList(details...)
	return nil
}
