// Package memory implements a RecordStore backed by process memory. Nothing
// survives the process; it serves tests and dry runs.
package memory

import (
	"github.com/shrimpsizemoose/registrar/internal/models"
)

type MemoryStore struct {
	courses  []models.Course
	students []models.Student
	passed   []models.PassedRecord

	// Rewrites counts RewritePassed calls.
	Rewrites int
}

func NewMemoryStore(courses []models.Course, students []models.Student, passed []models.PassedRecord) *MemoryStore {
	return &MemoryStore{
		courses:  append([]models.Course(nil), courses...),
		students: append([]models.Student(nil), students...),
		passed:   append([]models.PassedRecord(nil), passed...),
	}
}

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) LoadCourses() ([]models.Course, error) {
	return append([]models.Course(nil), s.courses...), nil
}

func (s *MemoryStore) LoadStudents() ([]models.Student, error) {
	return append([]models.Student(nil), s.students...), nil
}

func (s *MemoryStore) LoadPassed() ([]models.PassedRecord, error) {
	return append([]models.PassedRecord(nil), s.passed...), nil
}

func (s *MemoryStore) AppendStudent(student models.Student) error {
	s.students = append(s.students, student)
	return nil
}

func (s *MemoryStore) AppendPassed(record models.PassedRecord) error {
	s.passed = append(s.passed, record)
	return nil
}

func (s *MemoryStore) RewritePassed(passed []models.PassedRecord) error {
	s.passed = append([]models.PassedRecord(nil), passed...)
	s.Rewrites++
	return nil
}
