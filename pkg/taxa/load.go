package taxa

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/taxamark/pkg/errors"
)

// response is the envelope of observation API taxon searches.
type response struct {
	TotalResults int     `yaml:"total_results"`
	Results      []Taxon `yaml:"results"`
}

// Parse decodes a single taxon from YAML or JSON. An API response envelope
// yields its first result.
func Parse(data []byte, source string) (*Taxon, error) {
	list, err := ParseList(data, source)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, errors.NewNotFoundError("taxon", source)
	}
	return &list[0], nil
}

// ParseList decodes taxa from YAML or JSON. It accepts a sequence of taxa, a
// single taxon mapping, or an API response envelope with a results key.
func ParseList(data []byte, source string) ([]Taxon, error) {
	format := formatOf(source)

	var probe any
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, errors.WrapParse(format, source, err)
	}

	switch doc := probe.(type) {
	case nil:
		return nil, nil
	case []any:
		var list []Taxon
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, errors.WrapParse(format, source, err)
		}
		return list, nil
	case map[string]any:
		if _, ok := doc["results"]; ok {
			var resp response
			if err := yaml.Unmarshal(data, &resp); err != nil {
				return nil, errors.WrapParse(format, source, err)
			}
			return resp.Results, nil
		}
		var taxon Taxon
		if err := yaml.Unmarshal(data, &taxon); err != nil {
			return nil, errors.WrapParse(format, source, err)
		}
		return []Taxon{taxon}, nil
	default:
		return nil, errors.NewParseError(format, source, "expected a taxon, a list of taxa, or a results envelope", nil)
	}
}

// Load reads a single taxon from r.
func Load(r io.Reader, source string) (*Taxon, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", source, err)
	}
	return Parse(data, source)
}

// LoadFile reads a single taxon from a YAML or JSON file.
func LoadFile(path string) (*Taxon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return Parse(data, path)
}

// LoadListFile reads taxa from a YAML or JSON file.
func LoadListFile(path string) ([]Taxon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return ParseList(data, path)
}

// formatOf names the input format for error messages.
func formatOf(source string) string {
	if strings.EqualFold(filepath.Ext(source), ".json") {
		return "json"
	}
	return "yaml"
}
