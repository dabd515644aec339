package app

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/registrar/internal/matching"
	"github.com/shrimpsizemoose/registrar/internal/metrics"
	"github.com/shrimpsizemoose/registrar/internal/models"
	"github.com/shrimpsizemoose/registrar/internal/records"
	"github.com/shrimpsizemoose/registrar/internal/scoring"
	"github.com/shrimpsizemoose/registrar/internal/validation"
)

var (
	ErrInvalidName     = errors.New("names should contain only letters and start with capital letters")
	ErrInvalidProgram  = errors.New("unknown program")
	ErrInvalidGrade    = errors.New("grade must be between 1 and 5")
	ErrStudentNotFound = errors.New("no such student")
	ErrCourseNotFound  = errors.New("no such course")
)

type NewStudent struct {
	First  string
	Middle string
	Last   string
	Prog   string
}

type Completion struct {
	Course  string
	Student string
	Date    string
	Grade   string
}

type CompletionOutcome string

const (
	CompletionAdded   CompletionOutcome = "added"
	CompletionUpdated CompletionOutcome = "updated"
)

// AddStudent assigns the next id, the generated email and the current
// academic year, then appends the student.
func (s *Service) AddStudent(req NewStudent) (*models.Student, error) {
	if !validation.IsValidNamePart(req.First, false) {
		return nil, fmt.Errorf("first name %q: %w", req.First, ErrInvalidName)
	}
	if !validation.IsValidNamePart(req.Last, false) {
		return nil, fmt.Errorf("last name %q: %w", req.Last, ErrInvalidName)
	}
	if !validation.IsValidNamePart(req.Middle, true) {
		return nil, fmt.Errorf("middle name %q: %w", req.Middle, ErrInvalidName)
	}
	if !validation.IsValidProgram(req.Prog) {
		return nil, fmt.Errorf("%q: %w", req.Prog, ErrInvalidProgram)
	}

	book := s.Records
	student := models.Student{
		ID:     records.NextStudentID(book.Students),
		Last:   req.Last,
		First:  req.First,
		Middle: req.Middle,
		Email:  records.GenerateEmail(req.First, req.Last, s.Config.Students.EmailDomain),
		Year:   records.CurrentAcademicYear(book.Students, book.Passed),
		Prog:   validation.NormalizeProgram(req.Prog),
	}
	if err := student.Validate(); err != nil {
		return nil, fmt.Errorf("invalid student: %w", err)
	}

	if err := s.Store.AppendStudent(student); err != nil {
		logger.Error.Printf("Failed to save student %s: %v", student.ID, err)
		return nil, err
	}
	book.Students = append(book.Students, student)

	metrics.StudentsAdded.Inc()
	logger.Info.Printf("Added student %s (%s)", student.ID, student.Email)

	return &student, nil
}

func (s *Service) SearchStudents(query string) []models.Student {
	found := matching.Students(s.Records.Students, query)
	metrics.SearchesTotal.WithLabelValues("student", strconv.FormatBool(len(found) > 0)).Inc()
	return found
}

func (s *Service) SearchCourses(query string) []models.Course {
	found := matching.Courses(s.Records.Courses, query)
	metrics.SearchesTotal.WithLabelValues("course", strconv.FormatBool(len(found) > 0)).Inc()
	return found
}

// AddCompletion records a grade. A first completion is appended; a repeat
// completion replaces the stored one only when the grade improves, and then
// the whole passed collection is rewritten.
func (s *Service) AddCompletion(req Completion) (CompletionOutcome, error) {
	outcome, err := s.addCompletion(req)
	if err != nil {
		metrics.CompletionsTotal.WithLabelValues(rejectionLabel(err)).Inc()
		logger.Debug.Printf("Rejected completion %+v: %v", req, err)
		return "", err
	}
	metrics.CompletionsTotal.WithLabelValues(string(outcome)).Inc()
	return outcome, nil
}

func (s *Service) addCompletion(req Completion) (CompletionOutcome, error) {
	if !validation.IsValidGrade(req.Grade) {
		return "", fmt.Errorf("%q: %w", req.Grade, ErrInvalidGrade)
	}
	book := s.Records
	if !book.StudentExists(req.Student) {
		return "", fmt.Errorf("%q: %w", req.Student, ErrStudentNotFound)
	}
	if !book.CourseExists(req.Course) {
		return "", fmt.Errorf("%q: %w", req.Course, ErrCourseNotFound)
	}

	today, haveToday := records.LatestPassedDate(book.Passed)
	if _, err := s.Grader.CheckDate(req.Date, today, haveToday); err != nil {
		return "", err
	}

	grade, _ := strconv.Atoi(req.Grade)
	record := models.PassedRecord{
		Course:  req.Course,
		Student: req.Student,
		Date:    req.Date,
		Grade:   grade,
	}
	if err := record.Validate(); err != nil {
		return "", fmt.Errorf("invalid passed record: %w", err)
	}

	idx := book.PairIndexes(req.Student, req.Course)
	if len(idx) == 0 {
		if err := s.Store.AppendPassed(record); err != nil {
			logger.Error.Printf("Failed to save passed record: %v", err)
			return "", err
		}
		book.Passed = append(book.Passed, record)
		logger.Info.Printf("Added %s grade %d for student %s", record.Course, record.Grade, record.Student)
		return CompletionAdded, nil
	}

	existing := make([]models.PassedRecord, 0, len(idx))
	for _, i := range idx {
		existing = append(existing, book.Passed[i])
	}
	if err := s.Grader.CheckImprovement(grade, existing); err != nil {
		return "", err
	}

	updated := append([]models.PassedRecord(nil), book.Passed...)
	for _, i := range idx {
		updated[i].Grade = record.Grade
		updated[i].Date = record.Date
	}
	if err := s.Store.RewritePassed(updated); err != nil {
		logger.Error.Printf("Failed to rewrite passed records: %v", err)
		return "", err
	}
	book.Passed = updated
	logger.Info.Printf("Updated %s grade to %d for student %s", record.Course, record.Grade, record.Student)
	return CompletionUpdated, nil
}

func (s *Service) Transcript(studentID string) (*scoring.Transcript, error) {
	student, ok := s.Records.Student(studentID)
	if !ok {
		return nil, fmt.Errorf("%q: %w", studentID, ErrStudentNotFound)
	}

	t := scoring.BuildTranscript(*student, s.Records.RecordsFor(studentID), s.Records)
	if gpa, ok := t.GPA(); ok {
		metrics.TranscriptGPA.Observe(gpa)
	}
	return t, nil
}

func rejectionLabel(err error) string {
	switch {
	case errors.Is(err, ErrInvalidGrade):
		return "invalid_grade"
	case errors.Is(err, ErrStudentNotFound):
		return "unknown_student"
	case errors.Is(err, ErrCourseNotFound):
		return "unknown_course"
	case errors.Is(err, scoring.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, scoring.ErrNoImprovement):
		return "no_improvement"
	default:
		return "error"
	}
}
