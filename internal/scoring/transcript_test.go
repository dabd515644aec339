package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/registrar/internal/models"
)

type catalog map[string]models.Course

func (c catalog) Course(code string) (*models.Course, bool) {
	course, ok := c[code]
	if !ok {
		return nil, false
	}
	return &course, true
}

func TestBuildTranscript(t *testing.T) {
	student := models.Student{ID: "1", First: "Anna", Last: "Berg"}
	courses := catalog{
		"A": {Code: "A", Name: "Algorithms", Credits: 5},
		"B": {Code: "B", Name: "Biology", Credits: 3},
	}

	t.Run("weighted gpa", func(t *testing.T) {
		tr := BuildTranscript(student, []models.PassedRecord{
			{Course: "A", Student: "1", Date: "2024-01-01", Grade: 4},
			{Course: "B", Student: "1", Date: "2024-01-02", Grade: 5},
		}, courses)

		assert.True(t, tr.HasRecords)
		assert.Equal(t, 8, tr.TotalCredits)
		assert.Equal(t, 35, tr.GPAPoints)
		gpa, ok := tr.GPA()
		require.True(t, ok)
		assert.InDelta(t, 4.375, gpa, 1e-9)
		assert.Equal(t, "4.38", tr.FormatGPA())
	})

	t.Run("best grade per course counts once", func(t *testing.T) {
		tr := BuildTranscript(student, []models.PassedRecord{
			{Course: "A", Student: "1", Date: "2024-01-01", Grade: 2},
			{Course: "A", Student: "1", Date: "2024-02-01", Grade: 5},
		}, courses)

		require.Len(t, tr.Lines, 1)
		assert.Equal(t, 5, tr.Lines[0].Record.Grade)
		assert.Equal(t, 5, tr.TotalCredits)
		assert.Equal(t, "5.00", tr.FormatGPA())
	})

	t.Run("missing courses are skipped", func(t *testing.T) {
		tr := BuildTranscript(student, []models.PassedRecord{
			{Course: "GONE", Student: "1", Date: "2024-01-01", Grade: 5},
			{Course: "B", Student: "1", Date: "2024-01-02", Grade: 2},
		}, courses)

		require.Len(t, tr.Lines, 1)
		assert.Equal(t, "B", tr.Lines[0].Course.Code)
		assert.Equal(t, 3, tr.TotalCredits)
		assert.Equal(t, "2.00", tr.FormatGPA())
	})

	t.Run("only missing courses omits gpa", func(t *testing.T) {
		tr := BuildTranscript(student, []models.PassedRecord{
			{Course: "GONE", Student: "1", Date: "2024-01-01", Grade: 5},
		}, courses)

		assert.True(t, tr.HasRecords)
		assert.Empty(t, tr.Lines)
		assert.Equal(t, 0, tr.TotalCredits)
		_, ok := tr.GPA()
		assert.False(t, ok)
		assert.Equal(t, "", tr.FormatGPA())
	})

	t.Run("no records", func(t *testing.T) {
		tr := BuildTranscript(student, nil, courses)
		assert.False(t, tr.HasRecords)
		assert.Equal(t, "", tr.FormatGPA())
	})
}
