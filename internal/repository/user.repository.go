package repository

import (
	"context"
	"errors"

	"github.com/nimasrn/clubhouse/internal/model"
	"github.com/nimasrn/clubhouse/pkg/sqlite"
	"gorm.io/gorm"
)

// UserRepository stores operator credentials. They are kept for a future
// login screen and are not consulted anywhere else.
type UserRepository struct {
	*sqlite.DB
}

func NewUserRepository(db *sqlite.DB) *UserRepository {
	return &UserRepository{
		db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	entity := toUserEntity(u)
	entity.ID = 0
	entity.Active = true
	if entity.Role == "" {
		entity.Role = model.UserRoleOperator
	}

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, storageError("create user", err)
	}
	return toUserModel(entity), nil
}

// FindByUsername returns (nil, nil) when the username is unknown.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var entity UserEntity
	err := r.Read(ctx).
		Where("username = ?", username).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageError("find user", err)
	}
	return toUserModel(&entity), nil
}
