package users_controllers

import (
	"errors"
	"net/http"

	users_dto "novusfiles-backend/internal/features/users/dto"
	users_middleware "novusfiles-backend/internal/features/users/middleware"
	users_services "novusfiles-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *users_services.UserService
}

func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/auth/register", c.Register)
	router.POST("/auth/login", c.Login)
}

func (c *UserController) RegisterAuthenticatedRoutes(router *gin.RouterGroup) {
	router.GET("/auth/me", c.Me)
}

// Register
// @Summary Register a new user
// @Description Create an account with a unique username. Does not log the user in.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body users_dto.RegisterRequestDTO true "Registration data"
// @Success 200 {object} map[string]string
// @Failure 400
// @Failure 409
// @Router /auth/register [post]
func (c *UserController) Register(ctx *gin.Context) {
	var request users_dto.RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	_, err := c.userService.Register(request.Username, request.Password)
	if err != nil {
		if errors.Is(err, users_services.ErrUsernameTaken) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, users_services.ErrInvalidInput) ||
			errors.Is(err, users_services.ErrPasswordTooShort) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "user registered successfully"})
}

// Login
// @Summary Log in
// @Description Exchange credentials for a bearer token. stay_logged_in extends the session from 30 minutes to 30 days.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body users_dto.LoginRequestDTO true "Credentials"
// @Success 200 {object} users_dto.LoginResponseDTO
// @Failure 400
// @Failure 401
// @Router /auth/login [post]
func (c *UserController) Login(ctx *gin.Context) {
	var request users_dto.LoginRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.userService.Login(
		request.Username,
		request.Password,
		request.StayLoggedIn,
	)
	if err != nil {
		if errors.Is(err, users_services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// Me
// @Summary Get the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} users_dto.UserDTO
// @Failure 401
// @Router /auth/me [get]
func (c *UserController) Me(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, users_dto.UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
}
