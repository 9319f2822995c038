package usecase

import (
	"context"
	"errors"

	"clinicdesk/internal/converter"
	"clinicdesk/internal/delivery/dto"
	"clinicdesk/internal/domain/entity"
	"clinicdesk/internal/domain/repository"
	"clinicdesk/internal/service"
	"clinicdesk/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserInactive       = errors.New("user account is inactive")
)

type AuthUsecase interface {
	RegisterStaff(ctx context.Context, req *dto.RegisterStaffRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	jwtService   *jwt.JWTService
	tokenStore   *service.TokenStore
	auditService service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	tokenStore *service.TokenStore,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		userRepo:     userRepo,
		jwtService:   jwtService,
		tokenStore:   tokenStore,
		auditService: auditService,
	}
}

func (u *authUsecase) RegisterStaff(ctx context.Context, req *dto.RegisterStaffRequest) (*dto.UserResponse, error) {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check email %s: %+v", req.Email, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Errorf("Failed to hash password: %+v", err)
		return nil, err
	}

	roleID := entity.RoleIDReceptionist
	if req.Role == entity.RoleAdmin {
		roleID = entity.RoleIDAdmin
	}

	user := &entity.User{
		ID:       uuid.New(),
		RoleID:   roleID,
		Email:    req.Email,
		Password: string(hashed),
		FullName: req.FullName,
		IsActive: true,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.log.Errorf("Failed to insert user: %+v", err)
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, actorFrom(ctx), entity.AuditActionUserRegister, "user", user.ID.String(), user.Email); err != nil {
		u.log.Warnf("Failed to audit user %s: %+v", user.ID, err)
	}

	u.log.Infof("Staff registered: id=%s, email=%s, role=%s", user.ID, user.Email, entity.RoleName(user.RoleID))
	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, &user.ID, entity.AuditActionUserLogin, "user", user.ID.String(), user.Email); err != nil {
		u.log.Warnf("Failed to audit login for %s: %+v", user.ID, err)
	}

	u.log.Infof("User logged in: id=%s, email=%s", user.ID, user.Email)
	return tokens, nil
}

// Logout revokes the presented access token. Refresh tokens issued earlier
// keep working until they expire or are rotated away.
func (u *authUsecase) Logout(ctx context.Context, accessTokenID string) error {
	userID, ok := actorIDFrom(ctx)
	if !ok {
		return ErrInvalidToken
	}

	if err := u.tokenStore.RevokeAccessToken(ctx, userID, accessTokenID); err != nil {
		u.log.Warnf("Failed to revoke access token for %s: %+v", userID, err)
		return err
	}

	u.log.Infof("User logged out: id=%s", userID)
	return nil
}

// RefreshToken rotates a refresh token into a fresh access/refresh pair.
// The old refresh token is revoked so it cannot be replayed.
func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}
	if !u.tokenStore.IsRefreshTokenValid(ctx, claims.UserID, claims.TokenID) {
		return nil, ErrInvalidToken
	}

	user, err := u.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", claims.UserID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if err := u.tokenStore.RevokeRefreshToken(ctx, claims.UserID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to revoke refresh token for %s: %+v", claims.UserID, err)
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	accessToken, accessID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		u.log.Errorf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		u.log.Errorf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.StoreAccessToken(ctx, user.ID, accessID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Errorf("Failed to store access token: %+v", err)
		return nil, err
	}
	if err := u.tokenStore.StoreRefreshToken(ctx, user.ID, refreshID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Errorf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
