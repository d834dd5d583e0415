package cli

import (
	"fmt"
	"time"

	"github.com/nimasrn/clubhouse/pkg/logger"
)

const slowThreshold = 500 * time.Millisecond

type MiddlewareFunc func(next HandlerFunc) HandlerFunc

// RecoverMiddleware turns a panic inside a command into an error.
func RecoverMiddleware(next HandlerFunc) HandlerFunc {
	return func(c *Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("[cli] panic recovered", "error", r, "group", c.Group, "command", c.Command)
				err = fmt.Errorf("command %s %s panicked: %v", c.Group, c.Command, r)
			}
		}()
		return next(c)
	}
}

func CommandLoggerMiddleware(next HandlerFunc) HandlerFunc {
	return func(c *Context) error {
		start := time.Now()
		err := next(c)
		latency := time.Since(start)

		lg := logger.With("group", c.Group, "command", c.Command)
		switch {
		case err != nil:
			lg.Warn("command", "latency", latency.String(), "error", err)
		case latency > slowThreshold:
			lg.Warn("command", "latency", latency.String())
		default:
			lg.Debug("command", "latency", latency.String())
		}
		return err
	}
}
