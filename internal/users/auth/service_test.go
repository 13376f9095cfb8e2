// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darasahq/darasa/internal/platform/apperr"
	"github.com/darasahq/darasa/internal/platform/sec"
)

// # In-memory Fakes

type memoryUserRepository struct {
	byID       map[string]*User
	byEmail    map[string]*User
	byUsername map[string]*User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		byID:       map[string]*User{},
		byEmail:    map[string]*User{},
		byUsername: map[string]*User{},
	}
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*User, error) {
	if user, ok := r.byID[id]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	if user, ok := r.byEmail[email]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (r *memoryUserRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	if user, ok := r.byUsername[username]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (r *memoryUserRepository) Create(_ context.Context, user *User) error {
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	r.byUsername[user.Username] = user
	return nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *User) error {
	r.byID[user.ID] = user
	return nil
}

func (r *memoryUserRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	if user, ok := r.byID[userID]; ok {
		user.PasswordHash = newHash
	}
	return nil
}

func (r *memoryUserRepository) SoftDelete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *memoryUserRepository) MarkVerified(_ context.Context, userID string) error {
	if user, ok := r.byID[userID]; ok {
		user.IsVerified = true
	}
	return nil
}

type memorySessionRepository struct {
	byHash  map[string]*Session
	revoked map[string]bool
}

func newMemorySessionRepository() *memorySessionRepository {
	return &memorySessionRepository{byHash: map[string]*Session{}, revoked: map[string]bool{}}
}

func (r *memorySessionRepository) Create(_ context.Context, session *Session) error {
	r.byHash[session.TokenHash] = session
	return nil
}

func (r *memorySessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*Session, error) {
	session, ok := r.byHash[tokenHash]
	if !ok || r.revoked[session.ID] {
		return nil, apperr.NotFound("Session")
	}
	return session, nil
}

func (r *memorySessionRepository) Revoke(_ context.Context, sessionID string) error {
	r.revoked[sessionID] = true
	return nil
}

func (r *memorySessionRepository) RevokeAll(_ context.Context, userID string) error {
	for _, session := range r.byHash {
		if session.UserID == userID {
			r.revoked[session.ID] = true
		}
	}
	return nil
}

func (r *memorySessionRepository) RevokeOthers(_ context.Context, userID, currentSessionID string) error {
	for _, session := range r.byHash {
		if session.UserID == userID && session.ID != currentSessionID {
			r.revoked[session.ID] = true
		}
	}
	return nil
}

func (r *memorySessionRepository) DeleteExpired(_ context.Context) error { return nil }

type memoryTokenRepository struct {
	data map[string]string
}

func newMemoryTokenRepository() *memoryTokenRepository {
	return &memoryTokenRepository{data: map[string]string{}}
}

func (r *memoryTokenRepository) Set(_ context.Context, token, userID string, _ time.Duration) error {
	r.data[token] = userID
	return nil
}

func (r *memoryTokenRepository) Get(_ context.Context, token string) (string, error) {
	if userID, ok := r.data[token]; ok {
		return userID, nil
	}
	return "", apperr.NotFound("Token")
}

func (r *memoryTokenRepository) Delete(_ context.Context, token string) error {
	delete(r.data, token)
	return nil
}

type staticTokenProvider struct{}

func (staticTokenProvider) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	return "jwt-for-" + userID, nil
}

func newAuthService(users *memoryUserRepository, sessions *memorySessionRepository) *Service {
	return NewService(users, sessions, newMemoryTokenRepository(), newMemoryTokenRepository(), staticTokenProvider{})
}

// # Tests

func TestService_Register(t *testing.T) {
	users := newMemoryUserRepository()
	service := newAuthService(users, newMemorySessionRepository())

	user, err := service.Register(context.Background(), RegisterInput{
		Username:    "amina",
		Email:       "amina@example.com",
		Password:    "correct horse battery",
		FirstName:   "Amina",
		FirstNameAr: "أمينة",
		LastName:    "Hassan",
		LastNameAr:  "حسن",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, sec.RoleStudent, user.Role)
	assert.Equal(t, "أمينة", user.FirstNameAr)
	assert.False(t, user.IsVerified)
	assert.NotEqual(t, "correct horse battery", user.PasswordHash, "password must be stored hashed")
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	users := newMemoryUserRepository()
	service := newAuthService(users, newMemorySessionRepository())

	input := RegisterInput{Username: "amina", Email: "amina@example.com", Password: "password123", FirstName: "Amina", LastName: "Hassan"}
	_, err := service.Register(context.Background(), input)
	require.NoError(t, err)

	input.Username = "someone-else"
	_, err = service.Register(context.Background(), input)

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestService_Login(t *testing.T) {
	users := newMemoryUserRepository()
	sessions := newMemorySessionRepository()
	service := newAuthService(users, sessions)

	_, err := service.Register(context.Background(), RegisterInput{
		Username: "amina", Email: "amina@example.com", Password: "password123", FirstName: "Amina", LastName: "Hassan",
	})
	require.NoError(t, err)

	t.Run("by email", func(t *testing.T) {
		session, err := service.Login(context.Background(), LoginInput{Login: "amina@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, session.AccessToken)
		assert.NotEmpty(t, session.RefreshToken)
	})

	t.Run("by username", func(t *testing.T) {
		_, err := service.Login(context.Background(), LoginInput{Login: "amina", Password: "password123"})
		require.NoError(t, err)
	})

	t.Run("wrong password is enumeration-safe", func(t *testing.T) {
		_, err := service.Login(context.Background(), LoginInput{Login: "amina", Password: "wrong"})
		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Invalid login credentials", appErr.Message)
	})

	t.Run("unknown user gets the same message", func(t *testing.T) {
		_, err := service.Login(context.Background(), LoginInput{Login: "ghost", Password: "password123"})
		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Invalid login credentials", appErr.Message)
	})
}

func TestService_RefreshSession_RotatesToken(t *testing.T) {
	users := newMemoryUserRepository()
	sessions := newMemorySessionRepository()
	service := newAuthService(users, sessions)

	_, err := service.Register(context.Background(), RegisterInput{
		Username: "amina", Email: "amina@example.com", Password: "password123", FirstName: "Amina", LastName: "Hassan",
	})
	require.NoError(t, err)

	login, err := service.Login(context.Background(), LoginInput{Login: "amina", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := service.RefreshSession(context.Background(), login.RefreshToken, "ua", "127.0.0.1")
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The old token is revoked: replaying it must fail.
	_, err = service.RefreshSession(context.Background(), login.RefreshToken, "ua", "127.0.0.1")
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestService_UpdateProfile(t *testing.T) {
	users := newMemoryUserRepository()
	service := newAuthService(users, newMemorySessionRepository())

	user, err := service.Register(context.Background(), RegisterInput{
		Username: "amina", Email: "amina@example.com", Password: "password123", FirstName: "Amina", LastName: "Hassan",
	})
	require.NoError(t, err)

	updated, err := service.UpdateProfile(context.Background(), user.ID, UpdateProfileInput{
		FirstNameAr: "أمينة",
		LastNameAr:  "حسن",
	})

	require.NoError(t, err)
	assert.Equal(t, "Amina", updated.FirstName, "untouched fields keep their value")
	assert.Equal(t, "أمينة", updated.FirstNameAr)
}

func TestService_UpdateProfile_UsernameConflict(t *testing.T) {
	users := newMemoryUserRepository()
	service := newAuthService(users, newMemorySessionRepository())

	first, err := service.Register(context.Background(), RegisterInput{
		Username: "amina", Email: "amina@example.com", Password: "password123", FirstName: "Amina", LastName: "Hassan",
	})
	require.NoError(t, err)
	_, err = service.Register(context.Background(), RegisterInput{
		Username: "omar", Email: "omar@example.com", Password: "password123", FirstName: "Omar", LastName: "Said",
	})
	require.NoError(t, err)

	_, err = service.UpdateProfile(context.Background(), first.ID, UpdateProfileInput{Username: "omar"})

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
}
