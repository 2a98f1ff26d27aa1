package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/insightdelivered/ledger-converter/internal/config"
)

const version = "1.0.0"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ledger-converter",
		Short:   "Convert general ledger report PDFs to Excel workbooks",
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}

// loadConfig resolves the effective configuration. An explicit --config
// path must exist; otherwise ledger-converter.yaml is picked up from the
// working directory when present, and defaults apply when it is not.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config %q: %w", path, err)
		}
		return cfg, nil
	}
	if _, err := os.Stat("ledger-converter.yaml"); err == nil {
		return config.Load("ledger-converter.yaml")
	}
	return config.Default(), nil
}
