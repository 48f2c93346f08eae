package mocks

import (
	"context"

	"github.com/mikiasgoitom/Folio/internal/domain/apperror"
	"github.com/mikiasgoitom/Folio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Folio/internal/usecase/contract"
)

// MockAuthUsecase accepts MockPassword and MockAccessToken.
type MockAuthUsecase struct {
	MockPassword    string
	MockAccessToken string
	MockRole        entity.Role
}

var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockPassword:    "s3cret",
		MockAccessToken: "mock_access_token",
		MockRole:        entity.RoleAdmin,
	}
}

func (m *MockAuthUsecase) Login(ctx context.Context, password string) (string, error) {
	if password != m.MockPassword {
		return "", apperror.ErrUnauthorized
	}
	return m.MockAccessToken, nil
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.Claims, error) {
	if accessToken != m.MockAccessToken {
		return nil, apperror.ErrUnauthorized
	}
	return &entity.Claims{UserID: "admin", Role: m.MockRole}, nil
}
