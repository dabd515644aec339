package models

import (
	"fmt"
	"strings"
)

type Student struct {
	ID     string `json:"id" validate:"required,numeric"`
	Last   string `json:"last" validate:"required,namepart"`
	First  string `json:"first" validate:"required,namepart"`
	Middle string `json:"middle" validate:"omitempty,namepart"`
	Email  string `json:"email" validate:"required,email"`
	Year   string `json:"year" validate:"required,numeric"`
	Prog   string `json:"prog" validate:"required,oneof=CE EE SE ET ME"`
}

const studentFields = 7

func (s *Student) Validate() error {
	return validate.Struct(s)
}

// FullName joins first, middle (when present) and last name.
func (s Student) FullName() string {
	parts := []string{s.First}
	if s.Middle != "" {
		parts = append(parts, s.Middle)
	}
	parts = append(parts, s.Last)
	return strings.Join(parts, " ")
}

func (s Student) Line() string {
	return joinFields(s.ID, s.Last, s.First, s.Middle, s.Email, s.Year, s.Prog)
}

// ParseStudentLine expects exactly id,last,first,middle,email,year,prog.
func ParseStudentLine(line string) (Student, error) {
	parts := splitFields(line)
	if len(parts) != studentFields {
		return Student{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedLine, studentFields, len(parts))
	}

	return Student{
		ID:     parts[0],
		Last:   parts[1],
		First:  parts[2],
		Middle: parts[3],
		Email:  parts[4],
		Year:   parts[5],
		Prog:   parts[6],
	}, nil
}
