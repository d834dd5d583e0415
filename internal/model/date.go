package model

import "time"

// DateLayout is the storage format of calendar dates. ISO dates compare
// correctly as text, which the range queries rely on.
const DateLayout = "2006-01-02"

// Day truncates t to midnight of the calendar date it has in its own
// location. Only the location label becomes UTC; the date is not converted,
// so a local evening never turns into the next day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}

// ParseDatePtr treats empty and unparsable values as absent.
func ParseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil
	}
	return &t
}
