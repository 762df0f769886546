// Package cli holds the tickersymbols commands.
package cli

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"tickersymbols/internal/config"
	"tickersymbols/internal/logger"
	"tickersymbols/pkg/tickersymbols"
)

const version = "0.1.0"

var (
	envFile  string
	dataPath string
	cfg      *config.Config
)

// newRootCmd builds the command tree. Flag values are bound fresh on every
// call.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tickersymbols",
		Short: "Query stock indices, industries, countries and ticker symbols",
		Long: `tickersymbols answers lookups over a static dataset of listed companies.

Examples:
    tickersymbols indices
    tickersymbols companies --index DAX
    tickersymbols tickers DAX --provider google
    tickersymbols serve
`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "env file to load before reading the environment")
	root.PersistentFlags().StringVar(&dataPath, "data", "", "dataset YAML file (default is the embedded dataset)")

	root.AddCommand(newServeCmd())
	root.AddCommand(queryCommands()...)
	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func initConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if dataPath != "" {
		c.Dataset.Path = dataPath
	}
	cfg = c

	return logger.Init(logger.Config{
		Level:          c.Logging.Level,
		Format:         c.Logging.Format,
		FileEnabled:    c.Logging.FileEnabled,
		FilePath:       c.Logging.FilePath,
		RotationSize:   c.Logging.RotationSize,
		RetentionDays:  c.Logging.RetentionDays,
		ServiceName:    "tickersymbols",
		ServiceVersion: version,
	})
}

func openCatalog() (*tickersymbols.Catalog, error) {
	return tickersymbols.New(
		tickersymbols.WithPath(cfg.Dataset.Path),
		tickersymbols.WithLogger(log.Logger),
	)
}

func printJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
