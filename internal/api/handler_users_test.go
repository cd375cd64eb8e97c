package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserAndLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"username": "warden",
		"password": "correct horse",
		"role":     "ADMIN",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "correct horse",
		"password material must never appear in a response")

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "warden",
		"password": "correct horse",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ADMIN", resp["role"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"username": "warden",
		"password": "correct horse",
		"role":     "ADMIN",
	})

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "warden",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "nobody",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCriminalRecordsCRUD(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/criminals", gin.H{
		"name":   "John Doe",
		"age":    34,
		"crime":  "Fraud",
		"threat": "LOW",
		"photo":  "https://objects.example.com/criminals/doe.jpg",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/criminals", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/criminals/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/criminals/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
