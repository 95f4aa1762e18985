package main

import (
	"fmt"

	"github.com/Zuo-Peng/hl7-viewer/internal/config"
	"github.com/Zuo-Peng/hl7-viewer/internal/index"
	"github.com/spf13/cobra"
)

func indexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index [dir...]",
		Short: "Scan directories for HL7 files and catalog them",
		Long:  `Scans the given directories, or the configured roots when none are given, and records a summary of every HL7 file in the catalog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log := logger()

			db, err := index.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			roots := cfg.Roots
			if len(args) > 0 {
				roots = args
			}
			for _, r := range roots {
				log.Info().Str("root", r).Msg("scanning")
			}

			stats, err := index.IndexAll(db, roots, cfg.Extensions, log)
			if err != nil {
				return fmt.Errorf("index: %w", err)
			}

			log.Info().Msgf("done. %s", stats)
			return nil
		},
	}
}
