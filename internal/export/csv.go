// Package export renders works as delimited text.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"soc-api/internal/models"
)

// Header is the fixed column order. Annotation and participant are not
// exported.
var Header = []string{"id", "title", "field", "year", "school", "advisor"}

// Row renders w in Header order. Missing fields become empty cells.
func Row(w models.Work) []string {
	year := ""
	if w.Year != nil {
		year = strconv.Itoa(*w.Year)
	}
	return []string{
		strconv.Itoa(w.ID),
		models.StrValue(w.Title),
		models.StrValue(w.Field),
		year,
		models.StrValue(w.School),
		models.StrValue(w.Advisor),
	}
}

// Rows returns the header followed by one row per work.
func Rows(works []models.Work) [][]string {
	out := make([][]string, 0, len(works)+1)
	out = append(out, Header)
	for _, w := range works {
		out = append(out, Row(w))
	}
	return out
}

// WriteCSV writes works to out as CSV with CRLF line endings.
func WriteCSV(out io.Writer, works []models.Work) error {
	cw := csv.NewWriter(out)
	cw.UseCRLF = true
	if err := cw.WriteAll(Rows(works)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
