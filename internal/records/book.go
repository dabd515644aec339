// Package records holds the session's students, courses and completion
// records in memory, in the order they were loaded or added.
package records

import (
	"strconv"
	"strings"

	"github.com/shrimpsizemoose/registrar/internal/dates"
	"github.com/shrimpsizemoose/registrar/internal/models"
)

type Book struct {
	Students []models.Student
	Courses  []models.Course
	Passed   []models.PassedRecord
}

func (b *Book) StudentExists(id string) bool {
	_, ok := b.Student(id)
	return ok
}

func (b *Book) CourseExists(code string) bool {
	_, ok := b.Course(code)
	return ok
}

func (b *Book) Student(id string) (*models.Student, bool) {
	for i := range b.Students {
		if b.Students[i].ID == id {
			return &b.Students[i], true
		}
	}
	return nil, false
}

func (b *Book) Course(code string) (*models.Course, bool) {
	for i := range b.Courses {
		if b.Courses[i].Code == code {
			return &b.Courses[i], true
		}
	}
	return nil, false
}

// RecordsFor returns the student's completion records in stored order.
func (b *Book) RecordsFor(studentID string) []models.PassedRecord {
	var out []models.PassedRecord
	for _, r := range b.Passed {
		if r.Student == studentID {
			out = append(out, r)
		}
	}
	return out
}

// PairIndexes returns positions in Passed holding the given student and course.
func (b *Book) PairIndexes(studentID, courseCode string) []int {
	var idx []int
	for i, r := range b.Passed {
		if r.Student == studentID && r.Course == courseCode {
			idx = append(idx, i)
		}
	}
	return idx
}

// NextStudentID ignores ids that are not integers.
func NextStudentID(students []models.Student) string {
	maxID := 0
	for _, s := range students {
		n, err := strconv.Atoi(strings.TrimSpace(s.ID))
		if err != nil {
			continue
		}
		if n > maxID {
			maxID = n
		}
	}
	return strconv.Itoa(maxID + 1)
}

// LatestPassedDate is the latest valid completion date on record. The
// registry treats it as today; records with unparsable dates are skipped.
func LatestPassedDate(passed []models.PassedRecord) (dates.Date, bool) {
	var latest dates.Date
	found := false
	for _, r := range passed {
		d, err := dates.Parse(r.Date)
		if err != nil {
			continue
		}
		if !found || latest.Before(d) {
			latest = d
			found = true
		}
	}
	return latest, found
}

// CurrentAcademicYear prefers the year of the latest completion, then the
// highest student year, then "0".
func CurrentAcademicYear(students []models.Student, passed []models.PassedRecord) string {
	if latest, ok := LatestPassedDate(passed); ok {
		return strconv.Itoa(latest.Year)
	}

	maxYear := 0
	for _, s := range students {
		y, err := strconv.Atoi(strings.TrimSpace(s.Year))
		if err != nil {
			continue
		}
		if y > maxYear {
			maxYear = y
		}
	}
	return strconv.Itoa(maxYear)
}

func GenerateEmail(first, last, domain string) string {
	return strings.ToLower(first) + "." + strings.ToLower(last) + "@" + domain
}
