package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nimasrn/clubhouse/internal/config"
	"github.com/nimasrn/clubhouse/pkg/logger"
	"github.com/pkg/errors"
)

// Exporter renders receipts and listings. It only reads the values it is
// given and never touches the store.
type Exporter struct {
	club  config.ClubSettings
	dir   string
	clock func() time.Time
}

func NewExporter(club config.ClubSettings, dir string) *Exporter {
	return &Exporter{
		club:  club,
		dir:   dir,
		clock: time.Now,
	}
}

func (e *Exporter) WithClock(c func() time.Time) *Exporter {
	e.clock = c
	return e
}

// create opens a new file in the export directory named
// <prefix>_<timestamp>.<ext>.
func (e *Exporter) create(prefix, ext string) (*os.File, string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return nil, "", errors.Wrapf(err, "failed to create export directory %s", e.dir)
	}
	name := fmt.Sprintf("%s_%s.%s", sanitize(prefix), e.clock().Format("20060102_150405"), ext)
	path := filepath.Join(e.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to create export file %s", path)
	}
	return f, path, nil
}

// write runs render against a new export file and removes the file when
// rendering fails.
func (e *Exporter) write(prefix, ext string, render func(f *os.File) error) (string, error) {
	f, path, err := e.create(prefix, ext)
	if err != nil {
		return "", err
	}
	if err = render(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to close export file %s", path)
	}
	logger.Info("export written", "path", path)
	return path, nil
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
