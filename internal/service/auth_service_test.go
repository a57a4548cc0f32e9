package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/adsite-service/internal/config"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo(newFakeClock())
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            4,
		},
	}
	return NewAuthService(cfg, AuthDependencies{UserRepo: users}), users
}

func TestDeriveHandle(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{email: "jane.doe@example.com", want: "jane.doe"},
		{email: "bob@agency.io", want: "bob"},
		{email: "  padded@example.com ", want: "padded"},
		{email: "no-at-sign", want: "no-at-sign"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, DeriveHandle(tt.email))
	}
}

func TestRegister(t *testing.T) {
	svc, users := newAuthFixture(t)
	ctx := context.Background()

	input := RegisterInput{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane.doe@example.com",
		Phone:           "+380501112233",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}

	user, token, exp, err := svc.Register(ctx, input)
	require.NoError(t, err)
	require.Equal(t, "jane.doe", user.Handle)
	require.False(t, user.IsStaff)
	require.NotEmpty(t, token)
	require.False(t, exp.IsZero())

	profile, err := users.GetProfileByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "+380501112233", profile.Phone)

	// Same local part again, even from a different domain, collides.
	input.Email = "jane.doe@another.org"
	_, _, _, err = svc.Register(ctx, input)
	requireDomainErrorCode(t, err, "VALIDATION_FAILED")
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, _, err := svc.Register(context.Background(), RegisterInput{
		Email:           "bob@example.com",
		Password:        "one",
		ConfirmPassword: "two",
	})
	requireDomainErrorCode(t, err, "VALIDATION_FAILED")
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, RegisterInput{
		Email:           "jane.doe@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)

	user, token, _, err := svc.Login(ctx, "jane.doe@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, "jane.doe", user.Handle)
	require.NotEmpty(t, token)

	_, _, _, err = svc.Login(ctx, "jane.doe@example.com", "wrong")
	requireDomainErrorCode(t, err, "UNAUTHORIZED")

	_, _, _, err = svc.Login(ctx, "nobody@example.com", "secret123")
	requireDomainErrorCode(t, err, "UNAUTHORIZED")
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	user, _, _, err := svc.Register(ctx, RegisterInput{
		Email:           "jane.doe@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user, "wrong", "newpass456")
	requireDomainErrorCode(t, err, "UNAUTHORIZED")

	err = svc.ChangePassword(ctx, user, "secret123", "newpass456")
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, "jane.doe@example.com", "newpass456")
	require.NoError(t, err)
}
