package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/agentstation/taxamark/pkg/errors"
	"github.com/agentstation/taxamark/pkg/taxa"
)

// rankInfo is one row of the rank table.
type rankInfo struct {
	Rank         string  `json:"rank" yaml:"rank"`
	Level        float64 `json:"level" yaml:"level"`
	Primary      bool    `json:"primary" yaml:"primary"`
	Abbreviation string  `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
}

func rankTable() []rankInfo {
	ranks := taxa.Ranks()
	rows := make([]rankInfo, 0, len(ranks))
	for _, rank := range ranks {
		level, _ := rank.Level()
		abbr, _ := rank.TrinomialAbbr()
		rows = append(rows, rankInfo{
			Rank:         rank.String(),
			Level:        level,
			Primary:      rank.IsPrimary(),
			Abbreviation: abbr,
		})
	}
	return rows
}

// NewRanksCommand creates the ranks command.
func (a *App) NewRanksCommand() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "ranks",
		Short: "List known taxonomic ranks and their levels",
		Long: `List every known rank from least to most specific with its level.
Names at genus level (20) and below are italicized; rank labels are shown
above species level (10). Primary ranks are bolded in hierarchies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeRanks(cmd.OutOrStdout(), outputFormat, rankTable())
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "table", "output format: table, yaml, json")
	return cmd
}

func writeRanks(w io.Writer, outputFormat string, rows []rankInfo) error {
	switch strings.ToLower(outputFormat) {
	case "table", "":
		return writeRankTable(w, rows)
	case "yaml":
		data, err := yaml.Marshal(rows)
		if err != nil {
			return errors.WrapParse("yaml", "", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return errors.WrapParse("json", "", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return errors.NewValidationError("format", outputFormat, "must be one of table, yaml, json")
	}
}

func writeRankTable(w io.Writer, rows []rankInfo) error {
	config := tablewriter.Config{}
	align := []tw.Align{tw.AlignLeft, tw.AlignRight, tw.AlignCenter, tw.AlignLeft}
	config.Header.Alignment = tw.CellAlignment{PerColumn: align}
	config.Row.Alignment = tw.CellAlignment{PerColumn: align}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))
	table.Header("Rank", "Level", "Primary", "Abbreviation")
	for _, row := range rows {
		primary := ""
		if row.Primary {
			primary = "✓"
		}
		level := strconv.FormatFloat(row.Level, 'f', -1, 64)
		if err := table.Append(row.Rank, level, primary, row.Abbreviation); err != nil {
			return err
		}
	}
	return table.Render()
}
