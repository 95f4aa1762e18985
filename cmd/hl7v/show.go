package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/hl7-viewer/internal/hl7"
	"github.com/Zuo-Peng/hl7-viewer/internal/render"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func showCmd() *cobra.Command {
	var segment int
	var highlight string

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the segment list, or one segment's fields, without the TUI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := hl7.Load(args[0])
			if err != nil {
				return err
			}
			msg := hl7.Parse(text)
			opts := render.Options{
				Color: term.IsTerminal(int(os.Stdout.Fd())),
				Term:  highlight,
			}

			if segment < 0 {
				render.Message(os.Stdout, args[0], msg, opts)
				return nil
			}

			seg, ok := msg.Segment(segment)
			if !ok {
				return fmt.Errorf("segment %d out of range (message has %d)", segment, msg.Len())
			}
			render.Fields(os.Stdout, seg, opts)
			return nil
		},
	}

	cmd.Flags().IntVar(&segment, "segment", -1, "0-based segment index to show fields for")
	cmd.Flags().StringVar(&highlight, "highlight", "", "Highlight this text in field values")

	return cmd
}
