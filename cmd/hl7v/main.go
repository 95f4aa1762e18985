package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/hl7-viewer/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "dev"

var verbose bool

func logger() zerolog.Logger {
	return logging.New(os.Stderr, verbose)
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "hl7v",
		Short:         "HL7 Viewer - browse and search HL7 v2 message files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")

	rootCmd.AddCommand(viewCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(findCmd())
	rootCmd.AddCommand(indexCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(openCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
