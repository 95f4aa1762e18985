package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/hl7-viewer/internal/config"
	"github.com/Zuo-Peng/hl7-viewer/internal/index"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var filter string
	var recent bool
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalogued HL7 files",
		Long:  `Lists files recorded by 'hl7v index' or opened in the viewer. --filter matches path, patient id/name, message type and control id.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := index.OpenDB(cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			files, err := db.ListFiles(index.ListOptions{
				Filter: filter,
				Recent: recent,
				Limit:  limit,
			})
			if err != nil {
				return err
			}

			if len(files) == 0 {
				fmt.Fprintln(os.Stderr, "No files found.")
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Path", "Type", "Control ID", "Patient ID", "Patient", "Segments", "Opened"})
			table.SetAutoWrapText(false)
			table.SetAutoFormatHeaders(true)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetCenterSeparator("")
			table.SetColumnSeparator("")
			table.SetRowSeparator("")
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetTablePadding("\t")
			table.SetNoWhiteSpace(true)

			for _, f := range files {
				opened := f.OpenedAt
				if opened == "" {
					opened = "-"
				}
				table.Append([]string{
					f.Path,
					f.MessageType,
					f.ControlID,
					f.PatientID,
					f.PatientName,
					fmt.Sprint(f.Segments),
					opened,
				})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Substring filter")
	cmd.Flags().BoolVar(&recent, "recent", false, "Only files opened in the viewer, newest first")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results (0 = no limit)")

	return cmd
}
