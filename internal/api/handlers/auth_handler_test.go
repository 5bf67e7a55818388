package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicino/medicino/internal/api/handlers"
	"github.com/medicino/medicino/internal/api/middleware"
	"github.com/medicino/medicino/internal/application/services"
	"github.com/medicino/medicino/internal/domain/entities"
	apperrors "github.com/medicino/medicino/pkg/errors"
)

type stubAuthService struct {
	user  *entities.User
	token string
	err   error
}

func (s *stubAuthService) Register(ctx context.Context, input services.RegisterInput) (*entities.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubAuthService) Login(ctx context.Context, identifier, password string) (string, *entities.User, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.user, nil
}

func (s *stubAuthService) Profile(ctx context.Context, userID string) (*entities.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, userID string, update services.ProfileUpdate) (*entities.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	return s.err
}

func TestAuthHandler_Register(t *testing.T) {
	service := &stubAuthService{
		user: &entities.User{ID: "user-1", Username: "apollo", Email: "apollo@example.com"},
	}
	handler := handlers.NewAuthHandler(service)

	body := `{"username":"apollo","email":"apollo@example.com","password":"Passw0rd"}`
	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Message string         `json:"message"`
		User    *entities.User `json:"user"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "apollo", response.User.Username)
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	service := &stubAuthService{err: apperrors.NewConflictError("username already taken")}
	handler := handlers.NewAuthHandler(service)

	body := `{"username":"apollo","email":"apollo@example.com","password":"Passw0rd"}`
	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	service := &stubAuthService{
		user:  &entities.User{ID: "user-1", Username: "apollo"},
		token: "signed-token",
	}
	handler := handlers.NewAuthHandler(service)

	body := `{"username":"apollo","password":"Passw0rd"}`
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.JSONEq(t, `"signed-token"`, string(response["token"]))
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	service := &stubAuthService{err: apperrors.NewUnauthorizedError("invalid credentials")}
	handler := handlers.NewAuthHandler(service)

	body := `{"username":"apollo","password":"wrong"}`
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_GetProfile(t *testing.T) {
	service := &stubAuthService{
		user: &entities.User{ID: "user-1", Username: "apollo", FirstName: "Apollo"},
	}
	handler := handlers.NewAuthHandler(service)

	req := httptest.NewRequest("GET", "/api/user/profile", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
	w := httptest.NewRecorder()

	handler.GetProfile(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var user entities.User
	require.NoError(t, json.NewDecoder(w.Body).Decode(&user))
	assert.Equal(t, "apollo", user.Username)
}

func TestAuthHandler_GetProfile_Unauthenticated(t *testing.T) {
	handler := handlers.NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest("GET", "/api/user/profile", nil)
	w := httptest.NewRecorder()

	handler.GetProfile(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	handler := handlers.NewAuthHandler(&stubAuthService{})

	body := `{"current_password":"Passw0rd","new_password":"NewPass1x"}`
	req := httptest.NewRequest("POST", "/api/auth/change-password", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
	w := httptest.NewRecorder()

	handler.ChangePassword(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
