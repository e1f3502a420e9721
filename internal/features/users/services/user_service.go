package users_services

import (
	"errors"
	"log/slog"
	"strings"

	users_dto "novusfiles-backend/internal/features/users/dto"
	users_models "novusfiles-backend/internal/features/users/models"
	users_repositories "novusfiles-backend/internal/features/users/repositories"
	"novusfiles-backend/internal/util/encryption"

	"github.com/google/uuid"
)

const minPasswordLength = 8

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrInvalidInput  = errors.New("username and password are required")
	ErrPasswordTooShort = errors.New(
		"password must be at least 8 characters long",
	)
	// One error for unknown username and wrong password, so a login
	// failure does not reveal whether the account exists
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct {
	userRepository *users_repositories.UserRepository
	tokenService   *TokenService
	logger         *slog.Logger
}

func (s *UserService) Register(username, password string) (*users_models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.userRepository.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	passwordHash, err := encryption.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &users_models.User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := s.userRepository.Create(user); err != nil {
		return nil, err
	}

	s.logger.Info("Registered new user", "userId", user.ID, "username", user.Username)
	return user, nil
}

func (s *UserService) Login(
	username, password string,
	stayLoggedIn bool,
) (*users_dto.LoginResponseDTO, error) {
	user, err := s.userRepository.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !encryption.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokenService.IssueToken(user.ID, stayLoggedIn)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", "userId", user.ID, "stayLoggedIn", stayLoggedIn)

	return &users_dto.LoginResponseDTO{
		AccessToken: accessToken,
		User: users_dto.UserDTO{
			ID:        user.ID,
			Username:  user.Username,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

// GetUserByToken resolves a bearer token to the user it was issued for.
// Used by the auth middleware on every authenticated request.
func (s *UserService) GetUserByToken(token string) (*users_models.User, error) {
	userID, err := s.tokenService.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	return user, nil
}

func (s *UserService) GetUserByID(id uuid.UUID) (*users_models.User, error) {
	return s.userRepository.FindByID(id)
}
