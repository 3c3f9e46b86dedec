package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobboard/internal/services"
)

func accountRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewAccountHandler(services.NewAccountService(db))
	r := gin.New()
	r.POST("/api/v1/accounts", h.Register)
	r.POST("/api/v1/auth/login", h.Login)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	db := testDB(t)
	r := accountRouter(t, db)

	rec := postJSON(r, "/api/v1/accounts", `{
		"username": "acme", "email": "hr@acme.test", "password": "s3cret-pass",
		"role": "company", "first_name": "Ada", "last_name": "Lovelace",
		"company_title": "Acme Corp"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "acme", resp["username"])

	// The hash never appears in the representation.
	_, hasPassword := resp["password"]
	assert.False(t, hasPassword)
	_, hasHash := resp["password_hash"]
	assert.False(t, hasHash)
	assert.NotContains(t, rec.Body.String(), "s3cret-pass")
}

func TestRegisterEndpointMissingCompanyTitle(t *testing.T) {
	db := testDB(t)
	r := accountRouter(t, db)

	rec := postJSON(r, "/api/v1/accounts", `{
		"username": "noco", "email": "noco@example.com", "password": "s3cret-pass",
		"role": "company"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "company_title")
}

func TestRegisterEndpointDuplicateUsername(t *testing.T) {
	db := testDB(t)
	r := accountRouter(t, db)

	body := `{
		"username": "dupe", "email": "dupe@example.com", "password": "s3cret-pass",
		"role": "job_seeker"
	}`
	rec := postJSON(r, "/api/v1/accounts", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Second attempt is the caller's mistake: field-keyed 400, never a 500.
	rec = postJSON(r, "/api/v1/accounts", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "username")
}

func TestRegisterEndpointRequiresPassword(t *testing.T) {
	db := testDB(t)
	r := accountRouter(t, db)

	rec := postJSON(r, "/api/v1/accounts", `{
		"username": "nopass", "email": "nopass@example.com", "role": "job_seeker"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginEndpoint(t *testing.T) {
	db := testDB(t)
	r := accountRouter(t, db)

	rec := postJSON(r, "/api/v1/accounts", `{
		"username": "login-me", "email": "login@example.com", "password": "correct-horse",
		"role": "job_seeker"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(r, "/api/v1/auth/login", `{"username": "login-me", "password": "correct-horse"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])

	rec = postJSON(r, "/api/v1/auth/login", `{"username": "login-me", "password": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
