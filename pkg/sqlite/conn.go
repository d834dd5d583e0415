package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const defaultBusyTimeoutMs = 5000

type Config struct {
	Path          string `env:"DB_PATH"`
	BusyTimeoutMs int    `env:"DB_BUSY_TIMEOUT_MS"`
}

func (c Config) dsn() string {
	timeout := c.BusyTimeoutMs
	if timeout <= 0 {
		timeout = defaultBusyTimeoutMs
	}
	return fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=%d", c.Path, timeout)
}

// ensureDir creates the directory holding the database file so a fresh
// install starts with an empty store instead of an open error.
func (c Config) ensureDir() error {
	if c.Path == "" || c.Path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(c.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create data directory %s", dir)
	}
	return nil
}
