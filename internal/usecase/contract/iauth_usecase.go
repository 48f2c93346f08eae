package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Folio/internal/domain/entity"
)

// IAuthUseCase issues and checks admin access tokens.
type IAuthUseCase interface {
	Login(ctx context.Context, password string) (string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.Claims, error)
}
