// Package query derives filtered and joined views of store data. Nothing
// here mutates its inputs.
package query

import (
	"soc-api/internal/models"
	"soc-api/internal/util"
)

// WorkFilter narrows FindWorks. Zero values mean "no filter".
type WorkFilter struct {
	Keyword string // case-insensitive substring of title
	Field   string // case-insensitive exact match
	Year    *int
}

// FindWorks returns the works matching every set filter, in input order.
func FindWorks(works []models.Work, f WorkFilter) []models.Work {
	out := make([]models.Work, 0, len(works))
	for _, w := range works {
		if f.Keyword != "" && (w.Title == nil || !util.FoldContains(*w.Title, f.Keyword)) {
			continue
		}
		if f.Field != "" && (w.Field == nil || !util.FoldEqual(*w.Field, f.Field)) {
			continue
		}
		if f.Year != nil && (w.Year == nil || *w.Year != *f.Year) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// WorkByID looks up a work; ok is false for dangling references.
func WorkByID(works []models.Work, id int) (models.Work, bool) {
	for _, w := range works {
		if w.ID == id {
			return w, true
		}
	}
	return models.Work{}, false
}

// JoinResults pairs each result with its work, in result order. Results
// whose work does not exist are dropped.
func JoinResults(results []models.Result, works []models.Work) []models.Standing {
	out := make([]models.Standing, 0, len(results))
	for _, r := range results {
		w, ok := WorkByID(works, r.WorkID)
		if !ok {
			continue
		}
		out = append(out, models.Standing{
			Title:     models.StrValue(w.Title),
			Placement: r.Placement,
			Advanced:  r.Advanced,
			Year:      models.IntValue(w.Year),
		})
	}
	return out
}
