package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"innovated/internal/api/v1/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, mux *http.ServeMux, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func registerValid(t *testing.T, mux *http.ServeMux) {
	t.Helper()
	rec := postJSON(t, mux, "/api/auth/register",
		`{"username": "ada", "email": "ada@example.com", "password": "enigma1", "fullName": "Ada Lovelace"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestRegister(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		mux := newTestMux(t)
		rec := postJSON(t, mux, "/api/auth/register",
			`{"username": "ada", "email": "ada@example.com", "password": "enigma1", "fullName": "Ada Lovelace"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp dto.AuthResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "User registered successfully", resp.Message)
		assert.Equal(t, 1, resp.User.ID)
		assert.Equal(t, "ada", resp.User.Username)
		assert.NotContains(t, rec.Body.String(), "password", "projection never echoes the password")

		// The new account is immediately usable.
		login := postJSON(t, mux, "/api/auth/login", `{"username": "ada", "password": "enigma1"}`)
		assert.Equal(t, http.StatusOK, login.Code)
	})

	t.Run("username too short", func(t *testing.T) {
		mux := newTestMux(t)
		rec := postJSON(t, mux, "/api/auth/register",
			`{"username": "ab", "email": "x@x.com", "password": "123456"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "username must be at least 3 characters")
	})

	t.Run("invalid email", func(t *testing.T) {
		mux := newTestMux(t)
		rec := postJSON(t, mux, "/api/auth/register",
			`{"username": "abc", "email": "not-an-email", "password": "123456"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "email must be a valid email address")
	})

	t.Run("password too short", func(t *testing.T) {
		mux := newTestMux(t)
		rec := postJSON(t, mux, "/api/auth/register",
			`{"username": "abc", "email": "x@x.com", "password": "12345"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "password must be at least 6 characters")
	})

	t.Run("duplicate username", func(t *testing.T) {
		mux := newTestMux(t)
		registerValid(t, mux)
		rec := postJSON(t, mux, "/api/auth/register",
			`{"username": "ada", "email": "other@example.com", "password": "different1"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message": "Username already exists"}`, rec.Body.String())
	})

	t.Run("malformed JSON", func(t *testing.T) {
		mux := newTestMux(t)
		rec := postJSON(t, mux, "/api/auth/register", `{"username": `)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		mux := newTestMux(t)
		for _, body := range []string{`{}`, `{"username": "ada"}`, `{"password": "enigma1"}`} {
			rec := postJSON(t, mux, "/api/auth/login", body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"message": "Username and password are required"}`, rec.Body.String())
		}
	})

	t.Run("wrong password and unknown user share one message", func(t *testing.T) {
		mux := newTestMux(t)
		registerValid(t, mux)

		wrongPass := postJSON(t, mux, "/api/auth/login", `{"username": "ada", "password": "nope12"}`)
		unknown := postJSON(t, mux, "/api/auth/login", `{"username": "nobody", "password": "enigma1"}`)

		require.Equal(t, http.StatusUnauthorized, wrongPass.Code)
		require.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.Equal(t, wrongPass.Body.String(), unknown.Body.String())
		assert.JSONEq(t, `{"message": "Invalid credentials"}`, unknown.Body.String())
	})

	t.Run("success returns sanitized projection", func(t *testing.T) {
		mux := newTestMux(t)
		registerValid(t, mux)

		rec := postJSON(t, mux, "/api/auth/login", `{"username": "ada", "password": "enigma1"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.AuthResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Login successful", resp.Message)
		assert.Equal(t, "ada", resp.User.Username)
		assert.Equal(t, "ada@example.com", resp.User.Email)
		require.NotNil(t, resp.User.FullName)
		assert.Equal(t, "Ada Lovelace", *resp.User.FullName)
		assert.NotContains(t, rec.Body.String(), "password")
	})
}
