package users_services

import (
	"novusfiles-backend/internal/config"
	users_repositories "novusfiles-backend/internal/features/users/repositories"
	"novusfiles-backend/internal/util/logger"
)

var tokenService = NewTokenService(config.GetEnv().JwtSecret)

var userService = &UserService{
	users_repositories.GetUserRepository(),
	tokenService,
	logger.GetLogger(),
}

func GetTokenService() *TokenService {
	return tokenService
}

func GetUserService() *UserService {
	return userService
}
