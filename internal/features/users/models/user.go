package users_models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"        gorm:"column:id;primaryKey"`
	Username     string    `json:"username"  gorm:"column:username;uniqueIndex;not null"`
	PasswordHash string    `json:"-"         gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at;not null"`
}

func (User) TableName() string {
	return "users"
}
