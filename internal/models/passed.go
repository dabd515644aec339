package models

import (
	"fmt"
	"strconv"
	"strings"
)

// PassedRecord is one course completion. Course and Student hold the course
// code and student id respectively.
type PassedRecord struct {
	Course  string `json:"course" validate:"required"`
	Student string `json:"student" validate:"required"`
	Date    string `json:"date" validate:"required,calendardate"`
	Grade   int    `json:"grade" validate:"min=1,max=5"`
}

const passedFields = 4

func (r *PassedRecord) Validate() error {
	return validate.Struct(r)
}

func (r PassedRecord) Line() string {
	return joinFields(r.Course, r.Student, r.Date, strconv.Itoa(r.Grade))
}

// ParsePassedLine expects exactly course,student,date,grade.
func ParsePassedLine(line string) (PassedRecord, error) {
	parts := splitFields(line)
	if len(parts) != passedFields {
		return PassedRecord{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedLine, passedFields, len(parts))
	}

	grade, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil {
		return PassedRecord{}, fmt.Errorf("%w: grade %q is not a number", ErrMalformedLine, parts[3])
	}
	if grade < 1 || grade > 5 {
		return PassedRecord{}, fmt.Errorf("%w: grade %d out of range", ErrMalformedLine, grade)
	}

	return PassedRecord{
		Course:  parts[0],
		Student: parts[1],
		Date:    parts[2],
		Grade:   grade,
	}, nil
}
