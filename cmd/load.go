package cmd

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/shopgen/internal/config"
	"github.com/Lumos-Labs-HQ/shopgen/internal/loader"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	loadRawDir       string
	loadDBPath       string
	loadKeepExisting bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the generated CSV files into SQLite",
	Long: `Create the five tables and bulk-insert every CSV row into the SQLite
database. The existing database file is deleted and rebuilt unless
--keep-existing is set; in that mode callers are responsible for avoiding
duplicate-key conflicts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cmd.Flags().Changed("raw-dir") {
			cfg.RawDir = loadRawDir
		}
		if cmd.Flags().Changed("db-path") {
			cfg.DBPath = loadDBPath
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		color.Cyan("📦 Loading CSV files from %s...", cfg.RawDir)

		l := loader.New(cfg.RawDir, cfg.DBPath, loadKeepExisting)
		counts, err := l.Run()
		if err != nil {
			return fmt.Errorf("failed to load database: %w", err)
		}

		for _, t := range loader.Tables {
			color.Cyan("  📝 %-12s %d rows", t.Name, counts[t.Name])
		}

		color.Green("✅ Ingested CSV data into %s", cfg.DBPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringVar(&loadRawDir, "raw-dir", config.DefaultOutputDir, "Directory containing generated CSV files")
	loadCmd.Flags().StringVar(&loadDBPath, "db-path", config.DefaultDBPath, "Path to output SQLite database")
	loadCmd.Flags().BoolVar(&loadKeepExisting, "keep-existing", false, "Reuse existing database file instead of deleting it")
}
