// internal/dates/dates.go
package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformed = errors.New("malformed date")

// MaxYear keeps Ordinal well inside int range.
const MaxYear = 9999

// Date is a plain calendar date without time of day or zone.
type Date struct {
	Year  int
	Month int
	Day   int
}

func IsLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

// DaysInMonth returns 0 for a month outside 1..12.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// Parse accepts <int>-<int>-<int> and checks that it names a real day in
// years 1..MaxYear.
func Parse(text string) (Date, error) {
	parts := strings.Split(text, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrMalformed, text)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q has a non-numeric part", ErrMalformed, text)
		}
		nums[i] = n
	}

	d := Date{Year: nums[0], Month: nums[1], Day: nums[2]}
	if d.Year < 1 || d.Year > MaxYear || d.Month < 1 || d.Month > 12 {
		return Date{}, fmt.Errorf("%w: %q is out of range", ErrMalformed, text)
	}
	if d.Day < 1 || d.Day > DaysInMonth(d.Year, d.Month) {
		return Date{}, fmt.Errorf("%w: %q has no such day", ErrMalformed, text)
	}
	return d, nil
}

// Ordinal counts days from 0001-01-01, which is day 1.
func (d Date) Ordinal() int {
	y := d.Year - 1
	days := y*365 + y/4 - y/100 + y/400
	for m := 1; m < d.Month; m++ {
		days += DaysInMonth(d.Year, m)
	}
	return days + d.Day
}

func (d Date) Before(other Date) bool {
	return d.Ordinal() < other.Ordinal()
}

// DaysUntil is negative when other lies before d.
func (d Date) DaysUntil(other Date) int {
	return other.Ordinal() - d.Ordinal()
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
