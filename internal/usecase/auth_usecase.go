package usecase

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/Folio/internal/domain/apperror"
	"github.com/mikiasgoitom/Folio/internal/domain/contract"
	"github.com/mikiasgoitom/Folio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Folio/internal/usecase/contract"
)

const adminSubject = "admin"

// AuthUseCase guards the write side of the API behind a single admin credential.
type AuthUseCase struct {
	hasher     contract.IHasher
	jwtService JWTService
	config     usecasecontract.IConfigProvider
	logger     usecasecontract.IAppLogger
}

// check if AuthUseCase implements the IAuthUseCase
var _ usecasecontract.IAuthUseCase = (*AuthUseCase)(nil)

// NewAuthUseCase creates a new AuthUseCase instance.
func NewAuthUseCase(hasher contract.IHasher, jwtService JWTService, cfg usecasecontract.IConfigProvider, logger usecasecontract.IAppLogger) *AuthUseCase {
	return &AuthUseCase{
		hasher:     hasher,
		jwtService: jwtService,
		config:     cfg,
		logger:     logger,
	}
}

// Login checks the admin password and issues an access token.
func (uc *AuthUseCase) Login(ctx context.Context, password string) (string, error) {
	hash := uc.config.GetAdminPasswordHash()
	if hash == "" {
		uc.logger.Warnf("admin login attempted but no admin password hash is configured")
		return "", fmt.Errorf("%w: admin login is disabled", apperror.ErrUnauthorized)
	}
	if password == "" {
		return "", apperror.Validation("password is required")
	}
	if err := uc.hasher.ComparePasswordHash(password, hash); err != nil {
		uc.logger.Infof("rejected admin login: %v", err)
		return "", fmt.Errorf("%w: invalid credentials", apperror.ErrUnauthorized)
	}

	token, err := uc.jwtService.GenerateAccessToken(adminSubject, entity.RoleAdmin)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, nil
}

// Authenticate parses an access token and returns its claims.
func (uc *AuthUseCase) Authenticate(ctx context.Context, accessToken string) (*entity.Claims, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("%w: missing access token", apperror.ErrUnauthorized)
	}
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrUnauthorized, err)
	}
	return claims, nil
}
