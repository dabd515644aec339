package matching

import (
	"strings"

	"github.com/shrimpsizemoose/registrar/internal/models"
)

// MatchStudent matches the id exactly, or a trimmed, case-insensitive
// substring of the last, first or middle name.
func MatchStudent(s models.Student, query string) bool {
	if s.ID == query {
		return true
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	if strings.Contains(strings.ToLower(s.Last), q) || strings.Contains(strings.ToLower(s.First), q) {
		return true
	}
	return s.Middle != "" && strings.Contains(strings.ToLower(s.Middle), q)
}

// MatchCourse matches a case-insensitive substring of code, name or a teacher.
func MatchCourse(c models.Course, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	if strings.Contains(strings.ToLower(c.Code), q) || strings.Contains(strings.ToLower(c.Name), q) {
		return true
	}
	for _, t := range c.Teachers {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

func Students(list []models.Student, query string) []models.Student {
	var out []models.Student
	for _, s := range list {
		if MatchStudent(s, query) {
			out = append(out, s)
		}
	}
	return out
}

func Courses(list []models.Course, query string) []models.Course {
	var out []models.Course
	for _, c := range list {
		if MatchCourse(c, query) {
			out = append(out, c)
		}
	}
	return out
}
