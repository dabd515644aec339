package cli

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/shrimpsizemoose/registrar/internal/models"
	"github.com/shrimpsizemoose/registrar/internal/scoring"
)

func (c *CLI) newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func (c *CLI) renderStudents(students []models.Student) {
	table := c.newTable("ID", "Name", "Email", "Program")
	for _, s := range students {
		table.Append([]string{
			s.ID,
			s.FullName(),
			s.Email,
			s.Prog + " (" + s.Year + ")",
		})
	}
	table.Render()
}

func (c *CLI) renderCourses(courses []models.Course) {
	table := c.newTable("Code", "Name", "Credits", "Teachers")
	for _, course := range courses {
		table.Append([]string{
			course.Code,
			course.Name,
			strconv.Itoa(course.Credits),
			teachersString(course),
		})
	}
	table.Render()
}

func (c *CLI) renderTranscript(t *scoring.Transcript) {
	table := c.newTable("Code", "Name", "Teachers", "Grade", "Date", "Credits")
	for _, line := range t.Lines {
		table.Append([]string{
			line.Course.Code,
			line.Course.Name,
			teachersString(line.Course),
			strconv.Itoa(line.Record.Grade),
			line.Record.Date,
			strconv.Itoa(line.Course.Credits),
		})
	}
	table.Render()
}

func teachersString(course models.Course) string {
	if len(course.Teachers) == 0 {
		return "None"
	}
	return strings.Join(course.Teachers, ", ")
}
