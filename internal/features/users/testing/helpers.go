package users_testing

import (
	"sync"
	"testing"

	users_models "novusfiles-backend/internal/features/users/models"
	users_services "novusfiles-backend/internal/features/users/services"
	"novusfiles-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var migrateOnce sync.Once

// EnsureTestStorage migrates the user schema once per test binary.
func EnsureTestStorage(t *testing.T) {
	migrateOnce.Do(func() {
		if err := storage.Migrate(&users_models.User{}); err != nil {
			t.Fatalf("failed to migrate test storage: %v", err)
		}
	})
}

type TestUser struct {
	UserID   uuid.UUID
	Username string
	Password string
	Token    string
}

// CreateTestUser registers a fresh user with a unique username and logs
// it in, returning a ready-to-use bearer token.
func CreateTestUser(t *testing.T) *TestUser {
	t.Helper()
	EnsureTestStorage(t)

	username := "user-" + uuid.New().String()
	password := "testpassword123"

	user, err := users_services.GetUserService().Register(username, password)
	require.NoError(t, err)

	login, err := users_services.GetUserService().Login(username, password, false)
	require.NoError(t, err)

	return &TestUser{
		UserID:   user.ID,
		Username: username,
		Password: password,
		Token:    login.AccessToken,
	}
}
