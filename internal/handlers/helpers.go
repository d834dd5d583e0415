package handlers

import (
	"errors"
	"flag"
	"time"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/cli"
)

var errMissingID = errors.New("-id is required")

// dateFlag is a flag.Value holding an optional calendar date.
type dateFlag struct {
	t *time.Time
}

func (d *dateFlag) String() string {
	if d == nil || d.t == nil {
		return ""
	}
	return model.FormatDate(*d.t)
}

func (d *dateFlag) Set(s string) error {
	t, err := parseTime(s)
	if err != nil {
		return err
	}
	t = model.Day(t)
	d.t = &t
	return nil
}

func dateVar(fs *flag.FlagSet, name, usage string) *dateFlag {
	d := &dateFlag{}
	fs.Var(d, name, usage)
	return d
}

func parseTime(s string) (time.Time, error) {
	// Accept RFC3339 or YYYY-MM-DD
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(model.DateLayout, s)
}

// visited reports the flags explicitly set on the command line.
func visited(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

func parse(c *cli.Context, fs *flag.FlagSet) error {
	return fs.Parse(c.Args)
}

func monthRange(now time.Time) (time.Time, time.Time) {
	today := model.Day(now)
	return today.AddDate(0, 0, 1-today.Day()), today
}
