package models

import (
	"fmt"
	"strconv"
	"strings"
)

type Course struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Credits  int      `json:"credits"`
	Teachers []string `json:"teachers"`
}

const courseMinFields = 3

func (c Course) Line() string {
	fields := append([]string{c.Code, c.Name, strconv.Itoa(c.Credits)}, c.Teachers...)
	return joinFields(fields...)
}

// ParseCourseLine expects code,name,credits followed by zero or more teachers.
func ParseCourseLine(line string) (Course, error) {
	parts := splitFields(line)
	if len(parts) < courseMinFields {
		return Course{}, fmt.Errorf("%w: want at least %d fields, got %d", ErrMalformedLine, courseMinFields, len(parts))
	}

	credits, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return Course{}, fmt.Errorf("%w: credits %q is not a number", ErrMalformedLine, parts[2])
	}
	if credits <= 0 {
		return Course{}, fmt.Errorf("%w: credits must be positive, got %d", ErrMalformedLine, credits)
	}

	var teachers []string
	if len(parts) > courseMinFields {
		teachers = parts[courseMinFields:]
	}

	return Course{
		Code:     parts[0],
		Name:     parts[1],
		Credits:  credits,
		Teachers: teachers,
	}, nil
}
