package services

import (
	"context"
	"strings"
	"time"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type UserRepository interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// UserService stores operator credentials. Passwords are kept as bcrypt
// hashes.
type UserService struct {
	repo UserRepository
	cost int
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
		cost: bcrypt.DefaultCost,
	}
}

func (s *UserService) WithCost(cost int) *UserService {
	s.cost = cost
	return s
}

func (s *UserService) Create(ctx context.Context, username, password, fullName, role string) (u *model.User, err error) {
	defer func(start time.Time) { observe(entityUser, "create", start, err) }(time.Now())

	username = strings.TrimSpace(username)
	fullName = cleanText(fullName)
	if username == "" {
		return nil, invalid("username", "is required")
	}
	if fullName == "" {
		return nil, invalid("full_name", "is required")
	}
	if len(password) < minPasswordLength {
		return nil, invalid("password", "must have at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}

	u, err = s.repo.Create(ctx, &model.User{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         strings.TrimSpace(role),
	})
	if err != nil {
		return nil, err
	}
	logger.Info("user created", "id", u.ID, "username", u.Username)
	return u, nil
}

// CheckPassword reports whether password matches the stored credential of
// username. Unknown and inactive users never match.
func (s *UserService) CheckPassword(ctx context.Context, username, password string) (ok bool, err error) {
	defer func(start time.Time) { observe(entityUser, "check_password", start, err) }(time.Now())

	u, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return false, err
	}
	if u == nil || !u.Active {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil, nil
}
