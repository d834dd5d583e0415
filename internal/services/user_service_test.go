package services

import (
	"context"
	"testing"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Create(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	svc := NewUserService(s.users).WithCost(bcrypt.MinCost)

	u, err := svc.Create(ctx, " admin ", "s3cret-pass", "Club Admin", "")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
	assert.Equal(t, model.UserRoleOperator, u.Role)
	assert.NotEqual(t, "s3cret-pass", u.PasswordHash)

	ok, err := svc.CheckPassword(ctx, "admin", "s3cret-pass")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.CheckPassword(ctx, "admin", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.CheckPassword(ctx, "nobody", "s3cret-pass")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.Create(ctx, "admin", "another-pass", "Someone", "")
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)
}

func TestUserService_Create_Validation(t *testing.T) {
	s := setupStore(t)
	svc := NewUserService(s.users).WithCost(bcrypt.MinCost)
	ctx := context.Background()

	_, err := svc.Create(ctx, "", "s3cret-pass", "Club Admin", "")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Create(ctx, "admin", "short", "Club Admin", "")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Create(ctx, "admin", "s3cret-pass", "  ", "")
	assert.ErrorIs(t, err, ErrValidation)
}
