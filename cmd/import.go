package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RyanHill92/housing/internal/config"
	"github.com/RyanHill92/housing/internal/records"
)

func newImportCmd(v *viper.Viper, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Copy a load file into a SQLite or MySQL house table",
		Long: `Create the house table if needed and insert every record of a load file.
Use --source sqlite --sqlite-path <db> or --source mysql with DB_* variables set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, *configPath)
			if err != nil {
				return err
			}
			if cfg.Source == config.SourceFile {
				return fmt.Errorf("import needs --source sqlite or mysql")
			}

			houses, err := records.ReadFile(args[0])
			if err != nil {
				return err
			}
			n, err := importRecords(cmd.Context(), cfg, houses)
			if err != nil {
				return fmt.Errorf("error importing houses: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d houses\n", n, len(houses))
			return err
		},
	}
}

func newExportCmd(v *viper.Viper, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Print the records of the configured source as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, *configPath)
			if err != nil {
				return err
			}
			houses, err := readRecords(cmd.Context(), cfg, firstArg(args))
			if err != nil {
				return err
			}
			return records.WriteYAML(cmd.OutOrStdout(), houses)
		},
	}
}
