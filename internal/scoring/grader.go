// internal/scoring/grader.go
package scoring

import (
	"errors"
	"fmt"

	"github.com/shrimpsizemoose/registrar/internal/dates"
	"github.com/shrimpsizemoose/registrar/internal/models"
)

const DefaultRecencyWindowDays = 30

var (
	ErrInvalidDate   = errors.New("invalid completion date")
	ErrDateInFuture  = fmt.Errorf("%w: after the latest recorded completion", ErrInvalidDate)
	ErrDateTooOld    = fmt.Errorf("%w: outside the recency window", ErrInvalidDate)
	ErrNoImprovement = errors.New("existing grade is better or equal")
)

// Grader holds the rules for accepting a completion submission. "Today" is
// never the wall clock: callers pass the latest completion date on record.
type Grader struct {
	RecencyWindowDays int `toml:"recency_window_days"`
}

// NewGrader falls back to DefaultRecencyWindowDays only for a negative
// window; 0 accepts completions dated on the latest known day alone.
func NewGrader(recencyWindowDays int) *Grader {
	if recencyWindowDays < 0 {
		recencyWindowDays = DefaultRecencyWindowDays
	}
	return &Grader{RecencyWindowDays: recencyWindowDays}
}

// CheckDate parses the submitted date and, when today is known, requires it
// to be no later than today and at most RecencyWindowDays before it.
func (g *Grader) CheckDate(text string, today dates.Date, haveToday bool) (dates.Date, error) {
	d, err := dates.Parse(text)
	if err != nil {
		return dates.Date{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	if !haveToday {
		return d, nil
	}

	delta := d.DaysUntil(today)
	if delta < 0 {
		return dates.Date{}, fmt.Errorf("%w: %s > %s", ErrDateInFuture, d, today)
	}
	if delta > g.RecencyWindowDays {
		return dates.Date{}, fmt.Errorf("%w: %s is %d days before %s", ErrDateTooOld, d, delta, today)
	}
	return d, nil
}

// CheckImprovement rejects a grade that does not beat every stored record
// for the same student and course.
func (g *Grader) CheckImprovement(newGrade int, existing []models.PassedRecord) error {
	for _, r := range existing {
		if newGrade <= r.Grade {
			return fmt.Errorf("%w: stored %d, submitted %d", ErrNoImprovement, r.Grade, newGrade)
		}
	}
	return nil
}

// BestGrades keeps one record per course, the first one seen unless a later
// one has a strictly higher grade. Courses appear in first-seen order.
func BestGrades(records []models.PassedRecord) []models.PassedRecord {
	var best []models.PassedRecord
	pos := make(map[string]int)
	for _, r := range records {
		i, seen := pos[r.Course]
		if !seen {
			pos[r.Course] = len(best)
			best = append(best, r)
			continue
		}
		if r.Grade > best[i].Grade {
			best[i] = r
		}
	}
	return best
}
