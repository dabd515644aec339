package validation

import "strings"

var programs = []struct {
	Code string
	Name string
}{
	{"CE", "Computational Engineering"},
	{"EE", "Electrical Engineering"},
	{"ET", "Energy Technology"},
	{"ME", "Mechanical Engineering"},
	{"SE", "Software Engineering"},
}

var grades = []string{"1", "2", "3", "4", "5"}

// IsValidNamePart accepts ASCII letters only, starting with an uppercase one.
func IsValidNamePart(text string, allowEmpty bool) bool {
	if text == "" {
		return allowEmpty
	}
	if !isUpper(text[0]) {
		return false
	}
	for i := 0; i < len(text); i++ {
		if !isUpper(text[i]) && !isLower(text[i]) {
			return false
		}
	}
	return true
}

func IsValidProgram(code string) bool {
	code = NormalizeProgram(code)
	for _, p := range programs {
		if p.Code == code {
			return true
		}
	}
	return false
}

func IsValidGrade(text string) bool {
	for _, g := range grades {
		if text == g {
			return true
		}
	}
	return false
}

func NormalizeProgram(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ProgramName falls back to the code itself for unknown programs.
func ProgramName(code string) string {
	for _, p := range programs {
		if p.Code == code {
			return p.Name
		}
	}
	return code
}

// Programs lists codes with their full names in menu order.
func Programs() [][2]string {
	out := make([][2]string, 0, len(programs))
	for _, p := range programs {
		out = append(out, [2]string{p.Code, p.Name})
	}
	return out
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
