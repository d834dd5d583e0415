package cli

import (
	"context"
	"encoding/json"
	"flag"
	"io"
)

// Context is handed to every command. It carries the remaining arguments
// and the writer the command reports to.
type Context struct {
	context.Context
	Group   string
	Command string
	Args    []string
	Out     io.Writer
}

// Flags returns a flag set named after the command that reports parse
// errors on Out instead of exiting.
func (c *Context) Flags() *flag.FlagSet {
	fs := flag.NewFlagSet(c.Group+" "+c.Command, flag.ContinueOnError)
	fs.SetOutput(c.Out)
	return fs
}

// JSON writes v as indented JSON followed by a newline.
func (c *Context) JSON(v any) error {
	enc := json.NewEncoder(c.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
