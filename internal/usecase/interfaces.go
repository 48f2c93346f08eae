package usecase

import (
	"github.com/mikiasgoitom/Folio/internal/domain/entity"
)

// JWTService defines the interface for JWT operations.
type JWTService interface {
	GenerateAccessToken(userID string, role entity.Role) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
}
