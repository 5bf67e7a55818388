package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/medicino/medicino/internal/domain/entities"
	apperrors "github.com/medicino/medicino/pkg/errors"
)

type stubUserRepo struct {
	byID       map[string]*entities.User
	byUsername map[string]*entities.User
	byEmail    map[string]*entities.User
	updated    *entities.User
	err        error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:       make(map[string]*entities.User),
		byUsername: make(map[string]*entities.User),
		byEmail:    make(map[string]*entities.User),
	}
}

func (s *stubUserRepo) add(user *entities.User) {
	s.byID[user.ID] = user
	s.byUsername[user.Username] = user
	s.byEmail[user.Email] = user
}

func (s *stubUserRepo) Create(ctx context.Context, user *entities.User) error {
	if s.err != nil {
		return s.err
	}
	s.add(user)
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*entities.User, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	if u, ok := s.byUsername[username]; ok {
		return u, nil
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if u, ok := s.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (s *stubUserRepo) Update(ctx context.Context, user *entities.User) error {
	if s.err != nil {
		return s.err
	}
	s.updated = user
	s.add(user)
	return nil
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, "test-secret", time.Hour, bcrypt.MinCost)
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Username:        "Apollo",
		Email:           "Apollo@Example.com",
		Password:        "Passw0rd",
		ConfirmPassword: "Passw0rd",
		FirstName:       "Apollo",
		LastName:        "Okeyo",
	}
}

func TestAuthService_Register(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	assert.Equal(t, "apollo", user.Username)
	assert.Equal(t, "apollo@example.com", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "Passw0rd", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Passw0rd")))
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"short username", func(in *RegisterInput) { in.Username = "ab" }},
		{"bad email", func(in *RegisterInput) { in.Email = "not-an-email" }},
		{"weak password", func(in *RegisterInput) { in.Password = "abc" }},
		{"password without digit", func(in *RegisterInput) { in.Password = "Password"; in.ConfirmPassword = "Password" }},
		{"confirmation mismatch", func(in *RegisterInput) { in.ConfirmPassword = "Passw0rd2" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRegisterInput()
			tt.mutate(&input)
			_, err := svc.Register(context.Background(), input)
			require.Error(t, err)
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
		})
	}
}

func TestAuthService_Register_Duplicates(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegisterInput())
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)

	input := validRegisterInput()
	input.Username = "different"
	_, err = svc.Register(context.Background(), input)
	require.Error(t, err, "same email with new username should conflict")
}

func TestAuthService_LoginAndVerify(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	registered, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), "apollo", "Passw0rd")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, registered.ID, user.ID)

	// Login by email works too
	_, _, err = svc.Login(context.Background(), "APOLLO@example.com", "Passw0rd")
	require.NoError(t, err)

	userID, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "apollo", "WrongPass1")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)

	_, _, err = svc.Login(context.Background(), "nobody", "Passw0rd")
	require.Error(t, err)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)
	user.IsActive = false

	_, _, err = svc.Login(context.Background(), "apollo", "Passw0rd")
	require.Error(t, err)
}

func TestAuthService_VerifyToken_Invalid(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, err := svc.VerifyToken("not.a.token")
	require.Error(t, err)

	// Token signed with another secret must not verify
	other := NewAuthService(newStubUserRepo(), "other-secret", time.Hour, bcrypt.MinCost)
	user := &entities.User{ID: "user-1", Username: "apollo"}
	token, err := other.issueToken(user)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	require.Error(t, err)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	first := "Updated"
	phone := "+254700000000"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, ProfileUpdate{
		FirstName: &first,
		Phone:     &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated", updated.FirstName)
	assert.Equal(t, "+254700000000", updated.Phone)
	assert.Equal(t, "Okeyo", updated.LastName, "unset fields keep their value")
}

func TestAuthService_UpdateProfile_EmailConflict(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	first, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	second := validRegisterInput()
	second.Username = "artemis"
	second.Email = "artemis@example.com"
	other, err := svc.Register(context.Background(), second)
	require.NoError(t, err)

	taken := first.Email
	_, err = svc.UpdateProfile(context.Background(), other.ID, ProfileUpdate{Email: &taken})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), user.ID, "WrongPass1", "NewPass1x")
	require.Error(t, err)

	err = svc.ChangePassword(context.Background(), user.ID, "Passw0rd", "weak")
	require.Error(t, err)

	err = svc.ChangePassword(context.Background(), user.ID, "Passw0rd", "NewPass1x")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "apollo", "NewPass1x")
	require.NoError(t, err)
	_, _, err = svc.Login(context.Background(), "apollo", "Passw0rd")
	require.Error(t, err)
}
