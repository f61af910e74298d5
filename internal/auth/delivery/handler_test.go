package delivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moviehub-backend/internal/auth/repository"
	"moviehub-backend/internal/auth/usecase"
	"moviehub-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	authUc := usecase.NewAuthUsecase(repository.NewMemoryRepository(), cfg)
	handler := NewAuthHandler(authUc, nil)

	r := gin.New()
	auth := r.Group("/api/auth")
	auth.POST("/register", handler.Register)
	auth.POST("/login", handler.Login)
	auth.GET("/me", AuthMiddleware(authUc), handler.Me)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body map[string]any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)
	return res
}

func TestRegisterAndLogin(t *testing.T) {
	r := newTestRouter(t)

	res := doJSON(t, r, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    "user@example.com",
		"password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, res.Code)

	var registered map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &registered))
	require.NotEmpty(t, registered["id"])
	require.NotEmpty(t, registered["token"])
	require.Equal(t, "user@example.com", registered["email"])

	res = doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "user@example.com",
		"password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, res.Code)
}

func TestRegisterConflict(t *testing.T) {
	r := newTestRouter(t)

	body := map[string]any{"email": "user@example.com", "password": "secret123"}
	res := doJSON(t, r, http.MethodPost, "/api/auth/register", body, nil)
	require.Equal(t, http.StatusOK, res.Code)

	res = doJSON(t, r, http.MethodPost, "/api/auth/register", body, nil)
	require.Equal(t, http.StatusConflict, res.Code)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r := newTestRouter(t)

	res := doJSON(t, r, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    "user@example.com",
		"password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, res.Code)

	wrongPassword := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "user@example.com",
		"password": "wrong-password",
	}, nil)
	unknownEmail := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "nobody@example.com",
		"password": "secret123",
	}, nil)

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	require.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestMeRequiresToken(t *testing.T) {
	r := newTestRouter(t)

	res := doJSON(t, r, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    "user@example.com",
		"password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, res.Code)

	var registered map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &registered))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	unauthorized := httptest.NewRecorder()
	r.ServeHTTP(unauthorized, req)
	require.Equal(t, http.StatusUnauthorized, unauthorized.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+registered["token"])
	authorized := httptest.NewRecorder()
	r.ServeHTTP(authorized, req)
	require.Equal(t, http.StatusOK, authorized.Code)

	var me map[string]string
	require.NoError(t, json.Unmarshal(authorized.Body.Bytes(), &me))
	require.Equal(t, registered["id"], me["id"])
	require.Equal(t, "user@example.com", me["email"])
}
