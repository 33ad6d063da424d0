package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinelist/internal/database"
	"cinelist/internal/domain"
	"cinelist/internal/pkg/credential"
	"cinelist/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	ownerRepo := repository.NewOwnerRepository(db)
	require.NoError(t, ownerRepo.Create(context.Background(), &domain.Owner{
		Name:         "admin",
		Username:     "admin",
		APIKey:       "admin-key",
		PasswordHash: credential.HashPassword("admin"),
	}))

	handler := NewHandler(NewService(ownerRepo))

	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func postLogin(router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestLoginSuccess(t *testing.T) {
	router := setupRouter(t)

	resp := postLogin(router, gin.H{"username": "admin", "password": "admin"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var payload LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "admin", payload.Username)
	require.Equal(t, "admin-key", payload.APIKey)
	require.NotZero(t, payload.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupRouter(t)

	resp := postLogin(router, gin.H{"username": "admin", "password": "nope"})
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	require.JSONEq(t, `{"error":"Invalid credentials"}`, resp.Body.String())
}

func TestLoginMissingFields(t *testing.T) {
	router := setupRouter(t)

	for _, body := range []interface{}{
		nil,
		gin.H{"username": "admin"},
		gin.H{"password": "admin"},
		gin.H{"username": "", "password": "admin"},
	} {
		resp := postLogin(router, body)
		require.Equal(t, http.StatusBadRequest, resp.Code)
		require.JSONEq(t, `{"error":"Missing username/password"}`, resp.Body.String())
	}
}
