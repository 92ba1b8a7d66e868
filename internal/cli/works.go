package cli

import (
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"soc-api/internal/models"
	"soc-api/internal/query"
)

func NewWorksCommand(opts *RootOptions) *cobra.Command {
	var f query.WorkFilter
	var year int

	cmd := &cobra.Command{
		Use:   "works",
		Short: "List works, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.openStore()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("year") {
				f.Year = &year
			}
			works := query.FindWorks(st.ListWorks(), f)

			out := cmd.OutOrStdout()
			color.New(color.FgCyan).Fprintf(out, "\n=== Práce (%d) ===\n", len(works))

			table := tablewriter.NewWriter(out)
			table.SetAutoWrapText(false)
			table.SetHeader([]string{"ID", "Název", "Obor", "Rok", "Škola", "Vedoucí"})
			for _, w := range works {
				y := ""
				if w.Year != nil {
					y = strconv.Itoa(*w.Year)
				}
				table.Append([]string{
					strconv.Itoa(w.ID),
					models.StrValue(w.Title),
					models.StrValue(w.Field),
					y,
					models.StrValue(w.School),
					models.StrValue(w.Advisor),
				})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.Keyword, "keyword", "k", "", "text in the work title")
	cmd.Flags().StringVarP(&f.Field, "field", "f", "", "field of study")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "competition year")
	return cmd
}

func NewResultsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "results",
		Short: "Show results joined with their works",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.openStore()
			if err != nil {
				return err
			}
			standings := query.JoinResults(st.ListResults(), st.ListWorks())

			out := cmd.OutOrStdout()
			color.New(color.FgYellow).Fprintln(out, "\nVýsledky SOČ")

			table := tablewriter.NewWriter(out)
			table.SetAutoWrapText(false)
			table.SetHeader([]string{"Umístění", "Název", "Postup", "Rok"})
			for _, s := range standings {
				advanced := "ne"
				if s.Advanced {
					advanced = "ano"
				}
				table.Append([]string{
					strconv.Itoa(s.Placement),
					s.Title,
					advanced,
					strconv.Itoa(s.Year),
				})
			}
			table.Render()
			return nil
		},
	}
}
