package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/registrar/internal/dates"
	"github.com/shrimpsizemoose/registrar/internal/models"
)

func students(ids ...string) []models.Student {
	out := make([]models.Student, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Student{ID: id})
	}
	return out
}

func TestNextStudentID(t *testing.T) {
	testCases := []struct {
		name string
		ids  []string
		want string
	}{
		{"unordered ids", []string{"3", "10", "7"}, "11"},
		{"no students", nil, "1"},
		{"only non numeric", []string{"abc", "x7"}, "1"},
		{"mixed", []string{"abc", "4"}, "5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextStudentID(students(tc.ids...)))
		})
	}
}

func TestCurrentAcademicYear(t *testing.T) {
	withYears := []models.Student{{ID: "1", Year: "2021"}, {ID: "2", Year: "2023"}, {ID: "3", Year: "n/a"}}

	t.Run("latest completion wins", func(t *testing.T) {
		passed := []models.PassedRecord{
			{Course: "A", Student: "1", Date: "2024-12-30", Grade: 3},
			{Course: "B", Student: "1", Date: "2025-01-02", Grade: 3},
			{Course: "C", Student: "2", Date: "2024-06-01", Grade: 3},
		}
		assert.Equal(t, "2025", CurrentAcademicYear(withYears, passed))
	})

	t.Run("invalid dates are ignored", func(t *testing.T) {
		passed := []models.PassedRecord{
			{Course: "A", Student: "1", Date: "2099-13-01", Grade: 3},
			{Course: "B", Student: "1", Date: "2022-03-01", Grade: 3},
		}
		assert.Equal(t, "2022", CurrentAcademicYear(withYears, passed))
	})

	t.Run("falls back to max student year", func(t *testing.T) {
		assert.Equal(t, "2023", CurrentAcademicYear(withYears, nil))
	})

	t.Run("only invalid dates falls back to students", func(t *testing.T) {
		passed := []models.PassedRecord{{Course: "A", Student: "1", Date: "garbage", Grade: 3}}
		assert.Equal(t, "2023", CurrentAcademicYear(withYears, passed))
	})

	t.Run("nothing known", func(t *testing.T) {
		assert.Equal(t, "0", CurrentAcademicYear(nil, nil))
	})
}

func TestLatestPassedDate(t *testing.T) {
	_, ok := LatestPassedDate(nil)
	assert.False(t, ok)

	latest, ok := LatestPassedDate([]models.PassedRecord{
		{Date: "2024-01-31"},
		{Date: "2024-02-01"},
		{Date: "2023-12-31"},
	})
	require.True(t, ok)
	assert.Equal(t, dates.Date{Year: 2024, Month: 2, Day: 1}, latest)
}

func TestBookLookups(t *testing.T) {
	b := &Book{
		Students: []models.Student{{ID: "1", First: "Anna"}, {ID: "2", First: "Ben"}},
		Courses:  []models.Course{{Code: "CT1", Name: "Programming", Credits: 5}},
		Passed: []models.PassedRecord{
			{Course: "CT1", Student: "1", Date: "2024-01-01", Grade: 2},
			{Course: "CT1", Student: "2", Date: "2024-01-01", Grade: 4},
			{Course: "CT2", Student: "1", Date: "2024-01-02", Grade: 5},
		},
	}

	assert.True(t, b.StudentExists("1"))
	assert.False(t, b.StudentExists("3"))
	assert.True(t, b.CourseExists("CT1"))
	assert.False(t, b.CourseExists("ct1"))

	s, ok := b.Student("2")
	require.True(t, ok)
	assert.Equal(t, "Ben", s.First)

	recs := b.RecordsFor("1")
	require.Len(t, recs, 2)
	assert.Equal(t, "CT1", recs[0].Course)
	assert.Equal(t, "CT2", recs[1].Course)

	assert.Equal(t, []int{0}, b.PairIndexes("1", "CT1"))
	assert.Empty(t, b.PairIndexes("2", "CT2"))
}

func TestGenerateEmail(t *testing.T) {
	assert.Equal(t, "abigail.smith@lut.fi", GenerateEmail("Abigail", "Smith", "lut.fi"))
	assert.Equal(t, "okeefe.mcdonald@example.org", GenerateEmail("OKeefe", "McDonald", "example.org"))
}
