package users_middleware

import (
	"net/http"
	"strings"

	users_models "novusfiles-backend/internal/features/users/models"
	users_services "novusfiles-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

const userContextKey = "authenticated_user"

// RequireAuth gates a route group behind bearer authentication. Missing
// header, malformed header, bad signature and expired token all produce
// the same 401 so callers learn nothing about why the token failed.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			ctx.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "User not authenticated"},
			)
			return
		}

		user, err := users_services.GetUserService().GetUserByToken(token)
		if err != nil {
			ctx.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "User not authenticated"},
			)
			return
		}

		ctx.Set(userContextKey, user)
		ctx.Next()
	}
}

func GetUserFromContext(ctx *gin.Context) (*users_models.User, bool) {
	value, exists := ctx.Get(userContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*users_models.User)
	return user, ok
}
