package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"clinicdesk/config"
	"clinicdesk/internal/delivery/dto"
	"clinicdesk/internal/repository/memory"
	"clinicdesk/internal/service"
	"clinicdesk/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthEnv(t *testing.T) (AuthUsecase, *jwt.JWTService) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
	userRepo := memory.NewUserRepository()
	tokenStore := service.NewTokenStore(nil, log)
	auditService := service.NewAuditService(log, memory.NewAuditLogRepository())

	return NewAuthUsecase(log, userRepo, jwtService, tokenStore, auditService), jwtService
}

func registerStaff(t *testing.T, auth AuthUsecase, email, role string) *dto.UserResponse {
	t.Helper()

	user, err := auth.RegisterStaff(context.Background(), &dto.RegisterStaffRequest{
		Email:    email,
		Password: "s3cret-pass",
		FullName: "Front Desk",
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func TestRegisterStaff(t *testing.T) {
	auth, _ := newAuthEnv(t)

	user := registerStaff(t, auth, "desk@clinic.test", "receptionist")
	assert.Equal(t, "receptionist", user.Role)

	admin := registerStaff(t, auth, "admin@clinic.test", "admin")
	assert.Equal(t, "admin", admin.Role)
}

func TestRegisterStaffDuplicateEmail(t *testing.T) {
	auth, _ := newAuthEnv(t)
	registerStaff(t, auth, "desk@clinic.test", "receptionist")

	_, err := auth.RegisterStaff(context.Background(), &dto.RegisterStaffRequest{
		Email:    "desk@clinic.test",
		Password: "another-pass",
		FullName: "Someone Else",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	auth, jwtService := newAuthEnv(t)
	registerStaff(t, auth, "desk@clinic.test", "receptionist")

	tokens, err := auth.Login(context.Background(), &dto.LoginRequest{
		Email:    "desk@clinic.test",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, int64((15 * time.Minute).Seconds()), tokens.ExpiresIn)

	claims, err := jwtService.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "desk@clinic.test", claims.Email)
	assert.Equal(t, jwt.AccessToken, claims.TokenType)
}

func TestLoginInvalidCredentials(t *testing.T) {
	auth, _ := newAuthEnv(t)
	registerStaff(t, auth, "desk@clinic.test", "receptionist")

	_, err := auth.Login(context.Background(), &dto.LoginRequest{
		Email:    "desk@clinic.test",
		Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@clinic.test",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokenRotation(t *testing.T) {
	auth, _ := newAuthEnv(t)
	registerStaff(t, auth, "desk@clinic.test", "receptionist")

	tokens, err := auth.Login(context.Background(), &dto.LoginRequest{
		Email:    "desk@clinic.test",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	rotated, err := auth.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: tokens.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	auth, _ := newAuthEnv(t)
	registerStaff(t, auth, "desk@clinic.test", "receptionist")

	tokens, err := auth.Login(context.Background(), &dto.LoginRequest{
		Email:    "desk@clinic.test",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = auth.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: tokens.AccessToken,
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
