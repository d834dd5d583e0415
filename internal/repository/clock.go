package repository

import "time"

// Clock supplies "today" for defaults and look-ahead queries.
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now()
}
