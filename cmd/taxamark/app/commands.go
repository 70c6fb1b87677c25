package app

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/taxamark/internal/report"
	"github.com/agentstation/taxamark/pkg/errors"
	"github.com/agentstation/taxamark/pkg/format"
	"github.com/agentstation/taxamark/pkg/logging"
)

// nameFlags are the per-name rendering flags shared by name and names.
type nameFlags struct {
	term     bool
	noRank   bool
	noCommon bool
}

func (f *nameFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.term, "term", false, "show the matched search term instead of the common name when it differs")
	cmd.Flags().BoolVar(&f.noRank, "no-rank", false, "omit rank labels above species")
	cmd.Flags().BoolVar(&f.noCommon, "no-common", false, "omit common names")
}

func (f *nameFlags) options(locale string) format.NameOptions {
	return format.NameOptions{
		IncludeTerm: f.term,
		WithRank:    !f.noRank,
		WithCommon:  !f.noCommon,
		Locale:      locale,
	}
}

// NewNameCommand creates the name command.
func (a *App) NewNameCommand() *cobra.Command {
	var flags nameFlags
	var hierarchy bool

	cmd := &cobra.Command{
		Use:     "name FILE",
		GroupID: "format",
		Short:   "Format a single taxon name",
		Long: `Format the name of the taxon in FILE: italics at genus level and below,
the rank above species, rank abbreviations in trinomials, and the common name
in parentheses.`,
		Example: `  taxamark name dandelion.yaml
  taxamark name --term --locale fr dandelion.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.WithSource(a.commandContext(cmd.Context(), "name"), args[0])
			taxon, err := readTaxon(cmd, args[0])
			if err != nil {
				return err
			}

			opts := flags.options(a.config.Locale)
			opts.Hierarchy = hierarchy
			name, err := format.Name(taxon, opts)
			if err != nil {
				return err
			}

			logging.FromContext(ctx).Debug().Str("taxon", taxon.Name).Msg("Formatted name")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&hierarchy, "hierarchy", false, "format as a hierarchy entry")
	return cmd
}

// NewNamesCommand creates the names command.
func (a *App) NewNamesCommand() *cobra.Command {
	var flags nameFlags
	var hierarchy bool
	var wrap string

	cmd := &cobra.Command{
		Use:     "names FILE",
		GroupID: "format",
		Short:   "Format a list of taxon names",
		Long: `Format every taxon in FILE and join the names with ", ", or " > " with
--hierarchy. With --max-len, names that do not fit are replaced by
"and N more".`,
		Example: `  taxamark names search.json
  taxamark names --max-len 80 --wrap "Matches: %s" search.json
  taxamark names --hierarchy ancestors.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.WithSource(a.commandContext(cmd.Context(), "names"), args[0])
			list, err := readTaxa(cmd, args[0])
			if err != nil {
				return err
			}

			opts := format.NamesOptions{
				NameOptions: flags.options(a.config.Locale),
				Format:      wrap,
				MaxLen:      a.config.MaxLen,
			}
			opts.Hierarchy = hierarchy
			names, err := format.Names(list, opts)
			if err != nil {
				return err
			}

			logging.FromContext(ctx).Debug().
				Int("taxa", len(list)).
				Int("max_len", a.config.MaxLen).
				Msg("Formatted names")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), names)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&hierarchy, "hierarchy", false, "format as an ancestor hierarchy")
	cmd.Flags().StringVar(&wrap, "wrap", "", `wrap the list in a format with one "%s"`)
	return cmd
}

// NewDescribeCommand creates the describe command.
func (a *App) NewDescribeCommand() *cobra.Command {
	var noAncestors, oneLine bool
	var term string

	cmd := &cobra.Command{
		Use:     "describe FILE",
		GroupID: "format",
		Short:   "Describe a taxon",
		Long: `Describe the taxon in FILE with a linked title followed by its rank,
conservation status, observation count, establishment means and ancestors.`,
		Example: `  taxamark describe dandelion.yaml
  taxamark describe --max-len 60 --term "Leontodon taraxacum" dandelion.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.WithSource(a.commandContext(cmd.Context(), "describe"), args[0])
			taxon, err := readTaxon(cmd, args[0])
			if err != nil {
				return err
			}

			opts := []format.TaxonOption{
				format.WithLocale(a.config.Locale),
				format.WithURL(a.config.WithURL),
				format.WithMatchedTerm(term),
				format.WithMaxLen(a.config.MaxLen),
				format.WithBaseURL(a.config.BaseURL),
				format.WithLogger(logging.FromContext(ctx)),
			}
			if oneLine {
				opts = append(opts, format.WithNewline(" "))
			}

			text, err := format.NewTaxonFormatter(taxon, opts...).Format(!noAncestors)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().BoolVar(&noAncestors, "no-ancestors", false, "omit the ancestor hierarchy")
	cmd.Flags().BoolVar(&oneLine, "one-line", false, "put title and description on one line")
	cmd.Flags().StringVar(&term, "term", "", "search term the taxon was matched by")
	return cmd
}

// NewReportCommand creates the report command.
func (a *App) NewReportCommand() *cobra.Command {
	var title, description, output string
	var frontMatter bool

	cmd := &cobra.Command{
		Use:     "report FILE",
		GroupID: "format",
		Short:   "Render a Markdown report for a list of taxa",
		Example: `  taxamark report search.json
  taxamark report --title "Backyard birds" --front-matter -o birds.md search.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.WithSource(a.commandContext(cmd.Context(), "report"), args[0])
			list, err := readTaxa(cmd, args[0])
			if err != nil {
				return err
			}

			opts := []report.Option{
				report.WithSource(args[0]),
				report.WithLocale(a.config.Locale),
				report.WithMaxLen(a.config.MaxLen),
				report.WithBaseURL(a.config.BaseURL),
				report.WithURL(a.config.WithURL),
			}
			if title != "" {
				opts = append(opts, report.WithTitle(title))
			}
			if description != "" {
				opts = append(opts, report.WithDescription(description))
			}
			if frontMatter {
				opts = append(opts, report.WithFrontMatter())
			}

			var buf bytes.Buffer
			if err := report.Write(ctx, &buf, list, opts...); err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := writeFile(output, buf.Bytes()); err != nil {
				return err
			}
			logging.FromContext(ctx).Info().Str("output", output).Msg("Wrote report")
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "report title (default \"Taxa\")")
	cmd.Flags().StringVar(&description, "description", "", "front matter description")
	cmd.Flags().BoolVar(&frontMatter, "front-matter", false, "start the report with a YAML front matter block")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file instead of stdout")
	return cmd
}

// NewQualityCommand creates the quality command.
func (a *App) NewQualityCommand() *cobra.Command {
	var qualityGrade, verifiable string

	cmd := &cobra.Command{
		Use:     "quality",
		GroupID: "format",
		Short:   "Describe observation quality grade filters",
		Example: `  taxamark quality --quality-grade research,needs_id
  taxamark quality --verifiable false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			options := map[string]string{}
			if qualityGrade != "" {
				options["quality_grade"] = qualityGrade
			}
			if cmd.Flags().Changed("verifiable") {
				options["verifiable"] = verifiable
			}

			adjectives := format.QualityGrade(options)
			if len(adjectives) == 0 {
				return nil
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(adjectives, ", "))
			return err
		},
	}

	cmd.Flags().StringVar(&qualityGrade, "quality-grade", "", "comma separated grades: research, needs_id, casual or any")
	cmd.Flags().StringVar(&verifiable, "verifiable", "", "true, false, or empty")
	return cmd
}

// NewValidateCommand creates the validate command.
func (a *App) NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check taxon records for unknown ranks and misordered ancestors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.WithSource(a.commandContext(cmd.Context(), "validate"), args[0])
			logger := logging.FromContext(ctx)
			list, err := readTaxa(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for i := range list {
				taxon := &list[i]
				if err := taxon.Validate(); err != nil {
					invalid++
					logger.Warn().Err(err).Str("taxon", taxon.Name).Msg("Invalid taxon")
					fmt.Fprintf(out, "✗ %s: %v\n", taxon.Name, err)
					continue
				}
				fmt.Fprintf(out, "✓ %s\n", taxon.Name)
			}

			if invalid > 0 {
				return errors.NewValidationError("taxa", invalid,
					fmt.Sprintf("%d of %d taxa are invalid", invalid, len(list)))
			}
			return nil
		},
	}
}
