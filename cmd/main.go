package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/RyanHill92/housing/internal/config"
	"github.com/RyanHill92/housing/internal/console"
	"github.com/RyanHill92/housing/internal/housing"
)

// errNoLoadFile mirrors the usage error of the file source.
var errNoLoadFile = errors.New("input file name not provided")

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Println("error running app", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "housing [flags] <file>",
		Short: "Query and rent houses on a lot grid",
		Long: `Load rental houses onto a lot grid and answer queries interactively.

Commands read at the query-> prompt:
  a <id>                      is the house available
  m <price> <color> <beds>    matching houses
  n <id>                      booked neighbors
  r <id>                      rent a house (ends the session)
  q                           quit`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, firstArg(args), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	d := config.Defaults()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.Int("rows", d.Grid.Rows, "grid rows")
	flags.Int("cols", d.Grid.Cols, "grid columns (at most 26)")
	flags.String("on-load-error", d.Load.OnError, "what to do with a bad record: continue or abort")
	flags.String("source", d.Source, "where records come from: file, sqlite or mysql")
	flags.String("sqlite-path", d.SQLite.Path, "SQLite database file for the sqlite source")
	bindFlags(v, flags, map[string]string{
		config.KeyRows:        "rows",
		config.KeyCols:        "cols",
		config.KeyOnLoadError: "on-load-error",
		config.KeySource:      "source",
		config.KeySQLitePath:  "sqlite-path",
	})

	rootCmd.AddCommand(newImportCmd(v, &configPath), newExportCmd(v, &configPath))
	return rootCmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}
}

func run(ctx context.Context, cfg config.Config, path string, in io.Reader, out io.Writer) error {
	houses, err := readRecords(ctx, cfg, path)
	if err != nil {
		return err
	}

	grid := housing.NewGrid(cfg.Grid.Rows, cfg.Grid.Cols)
	report, err := grid.Load(houses, cfg.LoadPolicy())
	if err != nil {
		return fmt.Errorf("error loading houses: %w", err)
	}
	log.Printf("main: loaded %d houses, rejected %d", report.Loaded, len(report.Rejected))

	return console.Run(ctx, in, out, grid)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
