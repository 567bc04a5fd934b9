package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/skywatch/neodb"
	"github.com/skywatch/neodb/loader"
)

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	neoFile string
	cadFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "neodb",
		Short: "Explore near-Earth objects and their close approaches to Earth",
		Long: `neodb links NASA's near-Earth object catalogue with its close approach
dataset and answers lookups and filtered queries over the result.

Examples:
  neodb inspect --pdes 433                   # Look up an NEO by designation
  neodb inspect --name Halley --verbose      # ...or by name, with approaches
  neodb query --date 2020-01-01              # Approaches on a given date
  neodb query --hazardous --max-distance 0.05 --limit 10
  neodb query --start-date 2020-01-01 --outfile results.json`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.neoFile, "neofile", "data/neos.csv", "path to the NEO catalogue CSV")
	cmd.PersistentFlags().StringVar(&opts.cadFile, "cadfile", "data/cad.json", "path to the close approach data JSON")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newInspectCmd(opts))
	cmd.AddCommand(newQueryCmd(opts))

	return cmd
}

// openDatabase loads both source files and builds the linked database.
func (o *rootOptions) openDatabase(cmd *cobra.Command) (*neodb.Database, error) {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := neodb.NewTextLogger(level)

	neos, approaches, err := loader.Load(cmd.Context(), o.neoFile, o.cadFile, loader.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return neodb.New(neos, approaches, neodb.WithLogger(logger))
}
