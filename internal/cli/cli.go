package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/registrar/internal/app"
	"github.com/shrimpsizemoose/registrar/internal/scoring"
	"github.com/shrimpsizemoose/registrar/internal/validation"
)

const (
	msgInvalidName    = "Names should contain only letters and start with capital letters."
	msgInvalidProgram = "Please select one of the following majors: CE, EE, ET, ME, SE."
	msgInvalidChoice  = "Please enter a number between 0 and 5."
	msgInvalidGrade   = "Please enter a grade between 1 and 5."
	msgNoStudent      = "No such student. Please enter an existing student ID."
	msgNoCourse       = "No such course. Please enter an existing course code."
	msgInvalidDate    = "Please enter date in format YYYY-MM-DD."
	msgNoImprovement  = "Existing grade is better or equal, no update"
	studentQueryHint  = "Give at least %d characters of the students first, middle or last name: "
	courseQueryHint   = "Give at least %d characters of the course code, name or teacher: "
)

// CLI is the operator-facing menu loop. It only collects strings, hands them
// to the service and renders what comes back.
type CLI struct {
	service  *app.Service
	in       *bufio.Scanner
	out      io.Writer
	minQuery int

	heading *color.Color
	success *color.Color
	failure *color.Color
}

type actionHandler func() error

func New(service *app.Service, in io.Reader, out io.Writer) *CLI {
	c := &CLI{
		service:  service,
		in:       bufio.NewScanner(in),
		out:      out,
		minQuery: service.Config.Search.MinQueryLength,
		heading:  color.New(color.FgCyan, color.Bold),
		success:  color.New(color.FgGreen),
		failure:  color.New(color.FgRed),
	}
	if !service.Config.Display.Color {
		c.heading.DisableColor()
		c.success.DisableColor()
		c.failure.DisableColor()
	}
	return c
}

func (c *CLI) routeActions() map[string]actionHandler {
	return map[string]actionHandler{
		"1": c.addStudent,
		"2": c.searchStudent,
		"3": c.searchCourse,
		"4": c.addCompletion,
		"5": c.showTranscript,
	}
}

// Run loops until the operator exits or input ends.
func (c *CLI) Run() error {
	book := c.service.Records
	fmt.Fprintf(c.out, "Loaded: %d students, %d courses\n", len(book.Students), len(book.Courses))

	actions := c.routeActions()
	for {
		choice, err := c.promptChoice()
		if errors.Is(err, io.EOF) {
			c.success.Fprintln(c.out, "Bye!")
			return nil
		}
		if err != nil {
			return err
		}
		if choice == "0" {
			c.success.Fprintln(c.out, "Bye!")
			return nil
		}

		if err := actions[choice](); err != nil {
			if errors.Is(err, io.EOF) {
				c.success.Fprintln(c.out, "\nBye!")
				return nil
			}
			logger.Error.Printf("Action %s failed: %v", choice, err)
			c.failure.Fprintf(c.out, "Error: %v\n", err)
		}
	}
}

func (c *CLI) addStudent() error {
	c.heading.Fprintln(c.out, "\n--- Add student ---")

	first, err := c.promptName("Enter the first name of the student: ", false)
	if err != nil {
		return err
	}
	last, err := c.promptName("Enter the last name of the student: ", false)
	if err != nil {
		return err
	}
	middle, err := c.promptName("Enter the middle name (just press enter and leave it blank if no middle name) of the student: ", true)
	if err != nil {
		return err
	}
	prog, err := c.promptProgram()
	if err != nil {
		return err
	}

	student, err := c.service.AddStudent(app.NewStudent{First: first, Middle: middle, Last: last, Prog: prog})
	if err != nil {
		return err
	}
	c.success.Fprintf(c.out, "Added! (ID %s, %s)\n", student.ID, student.Email)
	return nil
}

func (c *CLI) searchStudent() error {
	c.heading.Fprintln(c.out, "\n--- Search student ---")

	query, err := c.promptMinLen(fmt.Sprintf(studentQueryHint, c.minQuery))
	if err != nil {
		return err
	}

	found := c.service.SearchStudents(query)
	if len(found) == 0 {
		fmt.Fprintln(c.out, "No matching students.")
		return nil
	}
	fmt.Fprintf(c.out, "Found %d result(s):\n", len(found))
	c.renderStudents(found)
	return nil
}

func (c *CLI) searchCourse() error {
	c.heading.Fprintln(c.out, "\n--- Search course ---")

	query, err := c.promptMinLen(fmt.Sprintf(courseQueryHint, c.minQuery))
	if err != nil {
		return err
	}

	found := c.service.SearchCourses(query)
	if len(found) == 0 {
		fmt.Fprintln(c.out, "No matching courses.")
		return nil
	}
	fmt.Fprintf(c.out, "Found %d result(s):\n", len(found))
	c.renderCourses(found)
	return nil
}

func (c *CLI) addCompletion() error {
	c.heading.Fprintln(c.out, "\n--- Add Grade ---")

	var req app.Completion
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Course: ", &req.Course},
		{"Student ID: ", &req.Student},
		{"Date (YYYY-MM-DD): ", &req.Date},
		{"Grade (1-5): ", &req.Grade},
	}
	for _, f := range fields {
		v, err := c.readTrimmed(f.prompt)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	outcome, err := c.service.AddCompletion(req)
	switch {
	case err == nil && outcome == app.CompletionUpdated:
		c.success.Fprintln(c.out, "Updated!")
	case err == nil:
		c.success.Fprintln(c.out, "Added!")
	case errors.Is(err, app.ErrInvalidGrade):
		c.failure.Fprintln(c.out, msgInvalidGrade)
	case errors.Is(err, app.ErrStudentNotFound):
		c.failure.Fprintln(c.out, msgNoStudent)
	case errors.Is(err, app.ErrCourseNotFound):
		c.failure.Fprintln(c.out, msgNoCourse)
	case errors.Is(err, scoring.ErrInvalidDate):
		// malformed, future and stale dates share one message on purpose
		c.failure.Fprintln(c.out, msgInvalidDate)
	case errors.Is(err, scoring.ErrNoImprovement):
		fmt.Fprintln(c.out, msgNoImprovement)
	default:
		return err
	}
	return nil
}

func (c *CLI) showTranscript() error {
	c.heading.Fprintln(c.out, "\n--- Transcript ---")

	id, err := c.readTrimmed("Student ID: ")
	if err != nil {
		return err
	}

	t, err := c.service.Transcript(id)
	if errors.Is(err, app.ErrStudentNotFound) {
		fmt.Fprintln(c.out, "No matching students.")
		return nil
	}
	if err != nil {
		return err
	}

	s := t.Student
	fmt.Fprintf(c.out, "\nID: %s\n", s.ID)
	fmt.Fprintf(c.out, "Name: %s\n", s.FullName())
	fmt.Fprintf(c.out, "Email: %s\n", s.Email)
	fmt.Fprintf(c.out, "Program: %s (%s)\n", validation.ProgramName(s.Prog), s.Year)

	if !t.HasRecords {
		fmt.Fprintln(c.out, "\nNo passed courses")
		return nil
	}

	c.renderTranscript(t)
	fmt.Fprintf(c.out, "\nTotal: %d credits\n", t.TotalCredits)
	if gpa := t.FormatGPA(); gpa != "" {
		fmt.Fprintf(c.out, "GPA: %s\n", gpa)
	}
	return nil
}
