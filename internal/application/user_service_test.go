package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnistore/backend/internal/domain/entity"
	"github.com/furnistore/backend/pkg/helpers"
)

func newTestUserService(users *mockUserRepo) *UserService {
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	return NewUserService(users, jwt, nil, nil, nil, "http://localhost/verify", "http://localhost/reset")
}

func TestRegister(t *testing.T) {
	svc := newTestUserService(newUserRepo())

	u, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.NotEqual(t, "secret-password", u.Password, "password is stored hashed")
	assert.NotNil(t, u.Addresses)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestUserService(newUserRepo())

	_, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.dev", Password: "password1"})
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), RegisterInput{Name: "B", Email: "a@x.dev", Password: "password2"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	svc := newTestUserService(newUserRepo())
	_, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.dev", Password: "password1"})
	require.NoError(t, err)

	u, err := svc.Authenticate(context.Background(), "a@x.dev", "password1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.dev", u.Email)

	_, err = svc.Authenticate(context.Background(), "a@x.dev", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody@x.dev", "password1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIssueAndRefreshTokens(t *testing.T) {
	users := newUserRepo()
	svc := newTestUserService(users)
	u, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.dev", Password: "password1"})
	require.NoError(t, err)

	pair, err := svc.IssueTokens(context.Background(), u)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.RefreshTokenExpiry.After(pair.AccessTokenExpiry))

	claims, err := svc.JWT.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.NotEmpty(t, claims.SessionID)

	// refresh rotates both tokens
	rotated, uid, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, uid)
	assert.NotEqual(t, pair.AccessToken, rotated.AccessToken)

	_, _, err = svc.Refresh(context.Background(), "garbage-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Refresh(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials, "access tokens cannot be used as refresh tokens")
}

func TestChangePassword(t *testing.T) {
	svc := newTestUserService(newUserRepo())
	u, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.dev", Password: "password1"})
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), u.ID, "wrong", "password2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(context.Background(), u.ID, "password1", "password2"))

	_, err = svc.Authenticate(context.Background(), "a@x.dev", "password2")
	assert.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	svc := newTestUserService(newUserRepo())
	u, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.dev", Password: "password1"})
	require.NoError(t, err)

	addr := entity.Address{Street: "12 Elm", City: "Springfield", State: "IL", PostalCode: "62701", Phone: "555"}
	got, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{Name: "Alex", Addresses: []entity.Address{addr}})
	require.NoError(t, err)
	assert.Equal(t, "Alex", got.Name)
	require.Len(t, got.Addresses, 1)
	assert.Equal(t, addr, got.Addresses[0])

	// empty name keeps the old one
	got, err = svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{})
	require.NoError(t, err)
	assert.Equal(t, "Alex", got.Name)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	svc := newTestUserService(newUserRepo())

	// never errors for unknown accounts
	assert.NoError(t, svc.ForgotPassword(context.Background(), "nobody@x.dev"))
}
