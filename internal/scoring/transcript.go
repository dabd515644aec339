package scoring

import (
	"fmt"

	"github.com/shrimpsizemoose/registrar/internal/models"
)

type CourseCatalog interface {
	Course(code string) (*models.Course, bool)
}

type TranscriptLine struct {
	Course models.Course
	Record models.PassedRecord
}

type Transcript struct {
	Student models.Student
	Lines   []TranscriptLine
	// HasRecords is false when the student has no completions at all, as
	// opposed to completions only in courses no longer in the catalog.
	HasRecords   bool
	TotalCredits int
	GPAPoints    int
	GPACredits   int
}

// BuildTranscript reduces the student's records to the best grade per course
// and accumulates credits for courses still present in the catalog.
func BuildTranscript(student models.Student, records []models.PassedRecord, catalog CourseCatalog) *Transcript {
	t := &Transcript{
		Student:    student,
		HasRecords: len(records) > 0,
	}

	for _, r := range BestGrades(records) {
		course, ok := catalog.Course(r.Course)
		if !ok {
			continue
		}
		t.Lines = append(t.Lines, TranscriptLine{Course: *course, Record: r})
		t.TotalCredits += course.Credits
		t.GPAPoints += r.Grade * course.Credits
		t.GPACredits += course.Credits
	}

	return t
}

// GPA is undefined when no credits were counted.
func (t *Transcript) GPA() (float64, bool) {
	if t.GPACredits == 0 {
		return 0, false
	}
	return float64(t.GPAPoints) / float64(t.GPACredits), true
}

func (t *Transcript) FormatGPA() string {
	gpa, ok := t.GPA()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%.2f", gpa)
}
