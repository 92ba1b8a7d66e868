package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"soc-api/internal/export"
	"soc-api/internal/query"
	"soc-api/internal/sheets"
)

func NewExportCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export works",
	}
	cmd.AddCommand(newExportCSVCommand(opts))
	cmd.AddCommand(newExportSheetsCommand(opts))
	return cmd
}

func newExportCSVCommand(opts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Write works as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.openStore()
			if err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				out = f
			}
			if err := export.WriteCSV(out, st.ListWorks()); err != nil {
				return err
			}
			if output != "" && output != "-" {
				color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "saved %s\n", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func newExportSheetsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "Publish works and results to Google Sheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if !cfg.SheetsEnabled() {
				return fmt.Errorf("GOOGLE_SHEETS_SPREADSHEET_ID and GOOGLE_SERVICE_ACCOUNT_JSON must be set")
			}
			st, err := opts.openStore()
			if err != nil {
				return err
			}
			sh, err := sheets.New(cmd.Context(), cfg.GoogleServiceAccountJSON, cfg.SpreadsheetID)
			if err != nil {
				return fmt.Errorf("sheets: %w", err)
			}

			works := st.ListWorks()
			if err := sh.Publish(cmd.Context(), works, query.JoinResults(st.ListResults(), works)); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "published %d works to %s\n", len(works), sh.SpreadsheetID())
			return nil
		},
	}
}
