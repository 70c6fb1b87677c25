package app

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/taxamark/pkg/constants"
	"github.com/agentstation/taxamark/pkg/errors"
	"github.com/agentstation/taxamark/pkg/taxa"
)

// stdinPath selects standard input in place of a file.
const stdinPath = "-"

// readTaxon loads one taxon from path, or from stdin for "-".
func readTaxon(cmd *cobra.Command, path string) (*taxa.Taxon, error) {
	if path == stdinPath {
		return taxa.Load(cmd.InOrStdin(), "stdin")
	}
	return taxa.LoadFile(path)
}

// readTaxa loads a list of taxa from path, or from stdin for "-".
func readTaxa(cmd *cobra.Command, path string) ([]taxa.Taxon, error) {
	if path == stdinPath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.WrapIO("read", "stdin", err)
		}
		return taxa.ParseList(data, "stdin")
	}
	return taxa.LoadListFile(path)
}

// writeFile writes output to path, creating parent directories.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return errors.WrapIO("mkdir", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
