package users_controllers

import (
	"net/http"
	"os"
	"testing"

	users_dto "novusfiles-backend/internal/features/users/dto"
	users_middleware "novusfiles-backend/internal/features/users/middleware"
	users_testing "novusfiles-backend/internal/features/users/testing"
	"novusfiles-backend/internal/config"
	test_utils "novusfiles-backend/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	env := config.GetEnv()
	os.Remove(env.SqlitePath)

	exitCode := m.Run()

	os.Remove(env.SqlitePath)
	os.Exit(exitCode)
}

func createUserTestRouter() *gin.Engine {
	router := gin.New()

	api := router.Group("/api/v1")
	GetUserController().RegisterRoutes(api)

	authenticated := api.Group("")
	authenticated.Use(users_middleware.RequireAuth())
	GetUserController().RegisterAuthenticatedRoutes(authenticated)

	return router
}

func Test_Register_WithValidData_ReturnsOk(t *testing.T) {
	router := createUserTestRouter()
	users_testing.EnsureTestStorage(t)

	request := users_dto.RegisterRequestDTO{
		Username: "alice-" + uuid.New().String(),
		Password: "Secret123",
	}

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/auth/register",
		"",
		request,
		http.StatusOK,
	)
}

func Test_Register_WithDuplicateUsername_ReturnsConflict(t *testing.T) {
	router := createUserTestRouter()
	users_testing.EnsureTestStorage(t)

	request := users_dto.RegisterRequestDTO{
		Username: "dup-" + uuid.New().String(),
		Password: "Secret123",
	}

	test_utils.MakePostRequest(t, router, "/api/v1/auth/register", "", request, http.StatusOK)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/auth/register",
		"",
		request,
		http.StatusConflict,
	)

	assert.Contains(t, string(resp.Body), "already taken")
}

func Test_Register_WithShortPassword_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	users_testing.EnsureTestStorage(t)

	request := users_dto.RegisterRequestDTO{
		Username: "shortpw-" + uuid.New().String(),
		Password: "short",
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/auth/register",
		"",
		request,
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "at least 8 characters")
}

func Test_Register_WithInvalidJSON_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "POST",
		URL:            "/api/v1/auth/register",
		Body:           "invalid json",
		ExpectedStatus: http.StatusBadRequest,
	})

	assert.Contains(t, string(resp.Body), "Invalid request format")
}

func Test_Register_DoesNotLogUserIn(t *testing.T) {
	router := createUserTestRouter()
	users_testing.EnsureTestStorage(t)

	request := users_dto.RegisterRequestDTO{
		Username: "noauto-" + uuid.New().String(),
		Password: "Secret123",
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/auth/register",
		"",
		request,
		http.StatusOK,
	)

	assert.NotContains(t, string(resp.Body), "access_token")
}

func Test_Login_WithValidCredentials_ReturnsTokenAndUser(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUser(t)

	request := users_dto.LoginRequestDTO{
		Username:     user.Username,
		Password:     user.Password,
		StayLoggedIn: false,
	}

	var response users_dto.LoginResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/auth/login",
		"",
		request,
		http.StatusOK,
		&response,
	)

	assert.NotEmpty(t, response.AccessToken)
	assert.Equal(t, user.UserID, response.User.ID)
	assert.Equal(t, user.Username, response.User.Username)
}

func Test_Login_WithWrongPassword_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUser(t)

	request := users_dto.LoginRequestDTO{
		Username: user.Username,
		Password: "wrongpassword123",
	}

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/auth/login",
		"",
		request,
		http.StatusUnauthorized,
	)
}

func Test_Login_WithUnknownUsername_ReturnsSameErrorAsWrongPassword(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUser(t)

	wrongPassword := users_dto.LoginRequestDTO{
		Username: user.Username,
		Password: "wrongpassword123",
	}
	wrongPasswordResp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/auth/login",
		"",
		wrongPassword,
		http.StatusUnauthorized,
	)

	unknownUser := users_dto.LoginRequestDTO{
		Username: "nobody-" + uuid.New().String(),
		Password: "whatever12345",
	}
	unknownUserResp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/auth/login",
		"",
		unknownUser,
		http.StatusUnauthorized,
	)

	// Neither status nor body may reveal whether the username exists
	assert.Equal(t, string(wrongPasswordResp.Body), string(unknownUserResp.Body))
}

func Test_Me_WithValidToken_ReturnsUser(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUser(t)

	var response users_dto.UserDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/auth/me",
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, user.UserID, response.ID)
	assert.Equal(t, user.Username, response.Username)
}

func Test_Me_WithoutToken_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakeGetRequest(t, router, "/api/v1/auth/me", "", http.StatusUnauthorized)
}

func Test_Me_WithMalformedToken_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/auth/me",
		"Bearer not-a-real-token",
		http.StatusUnauthorized,
	)
}

func Test_Me_WithNonBearerHeader_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUser(t)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/auth/me",
		"Basic "+user.Token,
		http.StatusUnauthorized,
	)
}
