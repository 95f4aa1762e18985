package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/hl7-viewer/internal/config"
	"github.com/Zuo-Peng/hl7-viewer/internal/index"
	"github.com/Zuo-Peng/hl7-viewer/internal/render"
	"github.com/Zuo-Peng/hl7-viewer/internal/session"
	"github.com/Zuo-Peng/hl7-viewer/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [file]",
		Short: "Browse an HL7 file: segment list, field table and patient panel",
		Long: `Opens the interactive viewer. Without a file the viewer starts empty;
press C-o inside it to open one. When stdout is not a terminal the message
is printed as plain text instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			log := logger()

			opts := []session.Option{session.WithLogger(log)}
			db, err := index.OpenDB(cfg.DBPath)
			if err != nil {
				// history is optional; the viewer works without it
				log.Warn().Err(err).Str("db", cfg.DBPath).Msg("catalog unavailable")
			} else {
				defer db.Close()
				opts = append(opts, session.WithRecorder(db))
			}
			sess := session.New(opts...)

			if len(args) == 1 {
				if err := sess.Load(args[0]); err != nil {
					return err
				}
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				return tui.Run(sess, tui.Options{Editor: cfg.Editor})
			}

			if !sess.Loaded() {
				return fmt.Errorf("a file argument is required when stdout is not a terminal")
			}
			render.Message(os.Stdout, sess.Path(), sess.Message(), render.Options{})
			return nil
		},
	}
}
