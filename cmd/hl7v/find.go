package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/hl7-viewer/internal/hl7"
	"github.com/Zuo-Peng/hl7-viewer/internal/render"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func findCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <file> <term>",
		Short: "Print the first segment containing term (case-insensitive)",
		Long: `Scans segments in order and prints the first one whose text contains the
term. Output is "index<TAB>segment line". Prints nothing and reports on
stderr when there is no match.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := hl7.Load(args[0])
			if err != nil {
				return err
			}
			msg := hl7.Parse(text)

			idx, found, err := hl7.Find(msg, args[1])
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(os.Stderr, "No match found for: %s\n", args[1])
				return nil
			}

			seg, _ := msg.Segment(idx)
			line := seg.Line()
			if term.IsTerminal(int(os.Stdout.Fd())) {
				line = render.Highlight(line, args[1])
			}
			fmt.Printf("%d\t%s\n", idx, line)
			return nil
		},
	}
}
