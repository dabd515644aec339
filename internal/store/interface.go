package store

import (
	"fmt"

	"github.com/shrimpsizemoose/registrar/internal/models"
	"github.com/shrimpsizemoose/registrar/internal/records"
)

// RecordStore persists the three record collections. Loads drop malformed
// entries instead of failing; appends and rewrites are synchronous.
type RecordStore interface {
	Close() error

	LoadCourses() ([]models.Course, error)
	LoadStudents() ([]models.Student, error)
	LoadPassed() ([]models.PassedRecord, error)

	AppendStudent(student models.Student) error
	AppendPassed(record models.PassedRecord) error
	RewritePassed(passed []models.PassedRecord) error
}

// Load reads every collection into a fresh Book.
func Load(s RecordStore) (*records.Book, error) {
	courses, err := s.LoadCourses()
	if err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}
	students, err := s.LoadStudents()
	if err != nil {
		return nil, fmt.Errorf("failed to load students: %w", err)
	}
	passed, err := s.LoadPassed()
	if err != nil {
		return nil, fmt.Errorf("failed to load passed records: %w", err)
	}

	return &records.Book{
		Students: students,
		Courses:  courses,
		Passed:   passed,
	}, nil
}
