package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/blognest/backend/auth"
	"github.com/blognest/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/api/v1/users/signup", "", map[string]string{
		"firstName":       "jonas",
		"lastName":        "weber",
		"email":           "jonas@example.com",
		"password":        "hunter22!",
		"passwordConfirm": "hunter22!",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.NotEmpty(t, body["token"])

	user := dataField(t, rec, "user")
	assert.Equal(t, "jonas@example.com", user["email"])
	assert.NotContains(t, rec.Body.String(), "hunter22!", "password never serialized")

	var tokenCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" {
			tokenCookie = c
		}
	}
	require.NotNil(t, tokenCookie, "token cookie set")
	assert.True(t, tokenCookie.HttpOnly)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{
		"firstName": "jonas", "lastName": "weber", "email": "jonas@example.com",
		"password": "hunter22!", "passwordConfirm": "hunter22!",
	}
	rec := env.doJSON(t, http.MethodPost, "/api/v1/users/signup", "", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.doJSON(t, http.MethodPost, "/api/v1/users/signup", "", payload)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "error", decodeBody(t, rec)["status"])
}

func TestSignupMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/users/signup", "", strings.NewReader("{not json"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	hash, err := auth.HashPassword("hunter22!")
	require.NoError(t, err)
	user := &models.User{
		FirstName: "jonas", LastName: "weber",
		Email: "jonas@example.com", Password: hash,
	}
	require.NoError(t, env.users.Add(context.Background(), user))

	rec := env.doJSON(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"email": "jonas@example.com", "password": "hunter22!",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	require.NotEmpty(t, body["token"])

	// The issued token authenticates follow-up requests.
	token, _ := body["token"].(string)
	rec = env.do(t, http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := dataField(t, rec, "user")
	assert.Equal(t, user.ID.String(), me["id"])
}

func TestLoginWrongCredentials(t *testing.T) {
	env := newTestEnv(t)

	hash, err := auth.HashPassword("hunter22!")
	require.NoError(t, err)
	require.NoError(t, env.users.Add(context.Background(), &models.User{
		FirstName: "jonas", LastName: "weber",
		Email: "jonas@example.com", Password: hash,
	}))

	rec := env.doJSON(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"email": "jonas@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginMissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"email": "jonas@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/users/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthViaCookie(t *testing.T) {
	env := newTestEnv(t)
	user := env.addUser(t, "jonas")

	req := newRequest(t, http.MethodGet, "/api/v1/users/me")
	req.AddCookie(&http.Cookie{Name: "token", Value: env.tokenFor(t, user.ID)})
	rec := serve(env, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	me := dataField(t, rec, "user")
	assert.Equal(t, user.ID.String(), me["id"])
}
