package handlers

import (
	"context"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/cli"
)

type UserService interface {
	Create(ctx context.Context, username, password, fullName, role string) (*model.User, error)
}

type UserHandler struct {
	svc UserService
}

func RegisterUserCommands(g *cli.Group, h *UserHandler) {
	g.Handle("add", "store operator credentials", h.Add)
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		svc: userService,
	}
}

func (h *UserHandler) Add(c *cli.Context) error {
	fs := c.Flags()
	username := fs.String("username", "", "login name")
	password := fs.String("password", "", "password, at least 6 characters")
	fullName := fs.String("name", "", "full name")
	role := fs.String("role", "", "role, defaults to operator")
	if err := parse(c, fs); err != nil {
		return err
	}

	u, err := h.svc.Create(c, *username, *password, *fullName, *role)
	if err != nil {
		return err
	}
	return c.JSON(u)
}
