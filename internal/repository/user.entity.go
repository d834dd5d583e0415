package repository

import (
	"time"

	"github.com/nimasrn/clubhouse/internal/model"
)

type UserEntity struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Username  string    `gorm:"column:username;not null;unique"`
	Password  string    `gorm:"column:password;not null"`
	FullName  string    `gorm:"column:full_name;not null"`
	Role      string    `gorm:"column:role;not null"`
	Active    bool      `gorm:"column:active;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (UserEntity) TableName() string {
	return "users"
}

func toUserEntity(m *model.User) *UserEntity {
	if m == nil {
		return nil
	}
	return &UserEntity{
		ID:       m.ID,
		Username: m.Username,
		Password: m.PasswordHash,
		FullName: m.FullName,
		Role:     m.Role,
		Active:   m.Active,
	}
}

func toUserModel(e *UserEntity) *model.User {
	if e == nil {
		return nil
	}
	return &model.User{
		ID:           e.ID,
		Username:     e.Username,
		PasswordHash: e.Password,
		FullName:     e.FullName,
		Role:         e.Role,
		Active:       e.Active,
		CreatedAt:    e.CreatedAt,
	}
}
