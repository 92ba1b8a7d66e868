package sheets

import (
	"context"
	"fmt"

	sheetsv4 "google.golang.org/api/sheets/v4"

	"soc-api/internal/export"
	"soc-api/internal/models"
)

const (
	SheetWorks   = "Works"
	SheetResults = "Results"
)

var resultsHeader = []string{"title", "placement", "advanced", "year"}

// Publish replaces the Works and Results sheets with the given data.
func (c *Client) Publish(ctx context.Context, works []models.Work, standings []models.Standing) error {
	if err := c.replace(ctx, SheetWorks, worksValues(works)); err != nil {
		return fmt.Errorf("publish works: %w", err)
	}
	if err := c.replace(ctx, SheetResults, standingsValues(standings)); err != nil {
		return fmt.Errorf("publish results: %w", err)
	}
	return nil
}

func (c *Client) replace(ctx context.Context, sheet string, values [][]interface{}) error {
	rng := sheet + "!A:Z"
	if _, err := c.srv.Spreadsheets.Values.Clear(c.spreadsheetID, rng, &sheetsv4.ClearValuesRequest{}).
		Context(ctx).
		Do(); err != nil {
		return err
	}
	vr := &sheetsv4.ValueRange{Values: values}
	_, err := c.srv.Spreadsheets.Values.Update(c.spreadsheetID, sheet+"!A1", vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

// worksValues uses the CSV export columns so the sheet and the file match.
func worksValues(works []models.Work) [][]interface{} {
	rows := export.Rows(works)
	out := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		cells := make([]interface{}, len(row))
		for i, v := range row {
			cells[i] = v
		}
		out = append(out, cells)
	}
	return out
}

func standingsValues(standings []models.Standing) [][]interface{} {
	out := make([][]interface{}, 0, len(standings)+1)
	header := make([]interface{}, len(resultsHeader))
	for i, h := range resultsHeader {
		header[i] = h
	}
	out = append(out, header)
	for _, s := range standings {
		out = append(out, []interface{}{s.Title, s.Placement, advancedLabel(s.Advanced), s.Year})
	}
	return out
}

func advancedLabel(advanced bool) string {
	if advanced {
		return "ano"
	}
	return "ne"
}
