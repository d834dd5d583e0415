package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

var ErrUnknownCommand = errors.New("unknown command")

type HandlerFunc func(c *Context) error

type route struct {
	usage   string
	handler HandlerFunc
}

type Group struct {
	name     string
	usage    string
	commands map[string]route
}

// Handle registers a command under the group. Registering the empty name
// makes the group runnable without a sub command.
func (g *Group) Handle(name, usage string, h HandlerFunc) {
	g.commands[name] = route{usage: usage, handler: h}
}

type Router struct {
	groups     map[string]*Group
	middleware []MiddlewareFunc
}

func NewRouter() *Router {
	return &Router{groups: make(map[string]*Group)}
}

func (r *Router) Group(name, usage string) *Group {
	if g, ok := r.groups[name]; ok {
		return g
	}
	g := &Group{name: name, usage: usage, commands: make(map[string]route)}
	r.groups[name] = g
	return g
}

func (r *Router) Use(m MiddlewareFunc) {
	r.middleware = append(r.middleware, m)
}

// Dispatch resolves "<group> [command] args..." and runs the handler
// through the registered middleware.
func (r *Router) Dispatch(c *Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUnknownCommand)
	}
	g, ok := r.groups[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	c.Group = g.name
	args = args[1:]

	name := ""
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		if _, ok := g.commands[args[0]]; ok {
			name, args = args[0], args[1:]
		}
	}
	rt, ok := g.commands[name]
	if !ok {
		if len(args) > 0 {
			return fmt.Errorf("%w: %s %s", ErrUnknownCommand, g.name, args[0])
		}
		return fmt.Errorf("%w: %s needs a sub command", ErrUnknownCommand, g.name)
	}
	c.Command = name
	c.Args = args

	h := rt.handler
	for i := len(r.middleware) - 1; i >= 0; i-- {
		h = r.middleware[i](h)
	}
	return h(c)
}

// Usage lists every group and command in name order.
func (r *Router) Usage(w io.Writer) {
	names := make([]string, 0, len(r.groups))
	for n := range r.groups {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		g := r.groups[n]
		fmt.Fprintf(w, "%s\t%s\n", g.name, g.usage)
		cmds := make([]string, 0, len(g.commands))
		for c := range g.commands {
			if c != "" {
				cmds = append(cmds, c)
			}
		}
		sort.Strings(cmds)
		for _, c := range cmds {
			fmt.Fprintf(w, "  %s %s\t%s\n", g.name, c, g.commands[c].usage)
		}
	}
}
