package users_dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequestDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequestDTO struct {
	Username     string `json:"username"       binding:"required"`
	Password     string `json:"password"       binding:"required"`
	StayLoggedIn bool   `json:"stay_logged_in"`
}

type LoginResponseDTO struct {
	AccessToken string  `json:"access_token"`
	User        UserDTO `json:"user"`
}

type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
