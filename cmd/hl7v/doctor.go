package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/hl7-viewer/internal/config"
	"github.com/Zuo-Peng/hl7-viewer/internal/index"
	"github.com/Zuo-Peng/hl7-viewer/internal/scan"
	"github.com/spf13/cobra"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, roots and catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			cfg, err := config.LoadFrom(home)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			cfgPath := config.Path(home)
			if _, err := os.Stat(cfgPath); err != nil {
				fmt.Printf("  %s (not present, using defaults)\n", cfgPath)
			} else {
				fmt.Printf("  %s (OK)\n", cfgPath)
			}
			fmt.Printf("  Editor: %s\n", cfg.Editor)
			fmt.Printf("  Extensions: %v\n", cfg.Extensions)

			// check roots
			fmt.Println("\n=== Roots ===")
			for _, r := range cfg.Roots {
				checkDir(r)
			}

			// scan file counts
			fmt.Println("\n=== File Scan ===")
			files, err := scan.ScanRoots(cfg.Roots, cfg.Extensions)
			if err != nil {
				fmt.Printf("  scan error: %v\n", err)
			} else {
				fmt.Printf("  HL7 files: %d\n", len(files))
			}

			// check DB
			fmt.Println("\n=== Catalog ===")
			fmt.Printf("  Path: %s\n", cfg.DBPath)
			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				fmt.Println("  Status: NOT FOUND (run 'hl7v index' first)")
				return nil
			}

			db, err := index.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			count, err := db.FileCount()
			if err != nil {
				return fmt.Errorf("count files: %w", err)
			}
			fmt.Printf("  Files: %d\n", count)

			var opened int
			if err := db.Raw().QueryRow("SELECT COUNT(*) FROM files WHERE opened_at != ''").Scan(&opened); err != nil {
				fmt.Printf("  history error: %v\n", err)
			} else {
				fmt.Printf("  Opened in viewer: %d\n", opened)
			}

			// check DB file size
			if info, err := os.Stat(cfg.DBPath); err == nil {
				sizeKB := float64(info.Size()) / 1024
				fmt.Printf("\n=== Catalog Size: %.1f KB ===\n", sizeKB)
			}

			return nil
		},
	}
}

func checkDir(path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s (NOT FOUND)\n", path)
	} else if !info.IsDir() {
		fmt.Printf("  %s (NOT A DIRECTORY)\n", path)
	} else {
		fmt.Printf("  %s (OK)\n", path)
	}
}
