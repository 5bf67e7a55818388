package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medicino/medicino/internal/api/middleware"
)

type stubVerifier struct {
	userID string
	err    error
}

func (s *stubVerifier) VerifyToken(token string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.userID, nil
}

func echoUserHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			w.Write([]byte("anonymous"))
			return
		}
		w.Write([]byte(userID))
	})
}

func TestRequireAuth_ValidToken(t *testing.T) {
	handler := middleware.RequireAuth(&stubVerifier{userID: "user-1"})(echoUserHandler())

	req := httptest.NewRequest("GET", "/api/history", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())
}

func TestRequireAuth_MissingToken(t *testing.T) {
	handler := middleware.RequireAuth(&stubVerifier{userID: "user-1"})(echoUserHandler())

	req := httptest.NewRequest("GET", "/api/history", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	handler := middleware.RequireAuth(&stubVerifier{userID: "user-1"})(echoUserHandler())

	req := httptest.NewRequest("GET", "/api/history", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	handler := middleware.RequireAuth(&stubVerifier{err: errors.New("expired")})(echoUserHandler())

	req := httptest.NewRequest("GET", "/api/history", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth_WithToken(t *testing.T) {
	handler := middleware.OptionalAuth(&stubVerifier{userID: "user-1"})(echoUserHandler())

	req := httptest.NewRequest("POST", "/api/diagnose", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())
}

func TestOptionalAuth_WithoutToken(t *testing.T) {
	handler := middleware.OptionalAuth(&stubVerifier{userID: "user-1"})(echoUserHandler())

	req := httptest.NewRequest("POST", "/api/diagnose", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestOptionalAuth_InvalidTokenIsAnonymous(t *testing.T) {
	handler := middleware.OptionalAuth(&stubVerifier{err: errors.New("expired")})(echoUserHandler())

	req := httptest.NewRequest("POST", "/api/diagnose", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())
}
