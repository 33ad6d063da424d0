package owner

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"cinelist/internal/database"
	"cinelist/internal/middleware"
	"cinelist/internal/pkg/request"
	"cinelist/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var hexKeyRE = regexp.MustCompile(`^[0-9a-f]{32}$`)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	handler := NewHandler(NewService(repository.NewOwnerRepository(db)))

	router := gin.New()
	router.Use(middleware.BodyLimit())
	handler.RegisterRoutes(router)
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRegisterOwner(t *testing.T) {
	router := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/owners", gin.H{
		"name":     "Cinema Group",
		"username": "group",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var payload RegisterResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.NotZero(t, payload.ID)
	require.Equal(t, "Cinema Group", payload.Name)
	require.Equal(t, "group", payload.Username)
	require.Regexp(t, hexKeyRE, payload.APIKey)
}

func TestRegisterOwnerDuplicateUsername(t *testing.T) {
	router := setupRouter(t)

	body := gin.H{"name": "A", "username": "a", "password": "p"}
	resp := performRequest(router, http.MethodPost, "/owners", body)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	resp = performRequest(router, http.MethodPost, "/owners", body)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.JSONEq(t, `{"error":"Username already taken"}`, resp.Body.String())
}

func TestRegisterOwnerMissingFields(t *testing.T) {
	router := setupRouter(t)

	for _, body := range []interface{}{
		nil,
		gin.H{"name": "A", "username": "a"},
		gin.H{"name": "", "username": "a", "password": "p"},
	} {
		resp := performRequest(router, http.MethodPost, "/owners", body)
		require.Equal(t, http.StatusBadRequest, resp.Code)
		require.JSONEq(t, `{"error":"Missing name/username/password"}`, resp.Body.String())
	}
}

func TestRegisterOwnerPayloadTooLarge(t *testing.T) {
	router := setupRouter(t)

	oversized := string(bytes.Repeat([]byte("a"), request.MaxBodyBytes+100))
	resp := performRequest(router, http.MethodPost, "/owners", gin.H{
		"name":     oversized,
		"username": "big",
		"password": "p",
	})

	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.JSONEq(t, `{"error":"Payload too large"}`, resp.Body.String())
}

func TestListOwnersWithholdsCredentials(t *testing.T) {
	router := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/owners", gin.H{
		"name":     "Cinema Group",
		"username": "group",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = performRequest(router, http.MethodGet, "/owners", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Owners []map[string]interface{} `json:"owners"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Owners, 1)
	require.Equal(t, "Cinema Group", payload.Owners[0]["name"])
	require.NotContains(t, payload.Owners[0], "api_key")
	require.NotContains(t, payload.Owners[0], "username")
	require.NotContains(t, payload.Owners[0], "password_hash")
}
