package main

import (
	"github.com/Zuo-Peng/hl7-viewer/internal/config"
	"github.com/Zuo-Peng/hl7-viewer/internal/open"
	"github.com/spf13/cobra"
)

func openCmd() *cobra.Command {
	var segment int

	cmd := &cobra.Command{
		Use:   "open <file>",
		Short: "Open the file in $EDITOR at a segment's line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			return open.OpenSegment(cfg.Editor, args[0], segment)
		},
	}

	cmd.Flags().IntVar(&segment, "segment", 0, "0-based segment index to jump to")

	return cmd
}
