package auth

import (
	"context"
	"testing"

	"github.com/rh-war/hr-console-backend-go/internal/domain/auth"
	"github.com/rh-war/hr-console-backend-go/internal/domain/user"
	"github.com/rh-war/hr-console-backend-go/internal/pkg/jwt"
	"github.com/rh-war/hr-console-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) auth.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := memory.NewUserRepository([]user.User{
		{
			ID:           1,
			Name:         "Administrador",
			Login:        "admin",
			PasswordHash: string(hash),
			Role:         user.RoleAdministrator,
		},
	})
	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	return NewAuthService(userRepo, jwtService)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	resp, err := svc.Login(ctx, auth.LoginRequest{Login: "admin", Password: "admin"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "admin", resp.User.Login)
	assert.Contains(t, resp.MenuSections, "profiles")
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Login: "admin", Password: "nope"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Login: "ghost", Password: "admin"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	login, err := svc.Login(ctx, auth.LoginRequest{Login: "admin", Password: "admin"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	login, err := svc.Login(ctx, auth.LoginRequest{Login: "admin", Password: "admin"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, login.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_RevokedAfterLogout(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	login, err := svc.Login(ctx, auth.LoginRequest{Login: "admin", Password: "admin"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.RefreshToken))

	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefresh_Garbage(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Refresh(ctx, "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
