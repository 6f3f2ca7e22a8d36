package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samudra-tours/samudra-tours-api/config"
	"github.com/samudra-tours/samudra-tours-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMe(t *testing.T) {
	db := setupTestDB(t)

	admin := models.Admin{
		Auth0ID: "auth0|operator",
		Name:    "Operator",
		Email:   "operator@samudratours.example",
	}
	require.NoError(t, db.Create(&admin).Error)

	router := setupTestRouter()
	router.GET("/me", mockAuthMiddleware(admin.Auth0ID), GetMe)

	w := performJSON(router, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := parseResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, admin.Email, data["email"])
}

func TestGetMe_NotAdmin(t *testing.T) {
	setupTestDB(t)

	router := setupTestRouter()
	router.GET("/me", mockAuthMiddleware("auth0|stranger"), GetMe)

	w := performJSON(router, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "NOT_ADMIN", errorCode(t, parseResponse(t, w)))
}

func TestGetMe_SyncsProfileFromAuth0(t *testing.T) {
	db := setupTestDB(t)

	// Freshly provisioned row: auth0 id only, no profile yet
	admin := models.Admin{Auth0ID: "auth0|fresh"}
	require.NoError(t, db.Create(&admin).Error)

	// Mock Auth0's /userinfo endpoint
	auth0Server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/userinfo" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"sub":   "auth0|fresh",
			"name":  "Fresh Operator",
			"email": "fresh@samudratours.example",
		})
	}))
	defer auth0Server.Close()

	config.SetConfig(&config.Config{
		GoEnv:       "test",
		Auth0Domain: auth0Server.URL,
	})

	router := setupTestRouter()
	router.GET("/me", mockAuthMiddleware(admin.Auth0ID), GetMe)

	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer mock-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	data := parseResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "fresh@samudratours.example", data["email"])
	assert.Equal(t, "Fresh Operator", data["name"])

	// The sync is persisted
	var stored models.Admin
	require.NoError(t, db.First(&stored, admin.ID).Error)
	assert.Equal(t, "fresh@samudratours.example", stored.Email)
}
