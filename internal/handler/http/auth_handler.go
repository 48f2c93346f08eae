package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Folio/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Folio/internal/usecase/contract"
)

type AuthHandler struct {
	authUsecase usecasecontract.IAuthUseCase
}

func NewAuthHandler(uc usecasecontract.IAuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUsecase: uc,
	}
}

// Login exchanges the admin password for an access token
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	token, err := h.authUsecase.Login(c.Request.Context(), req.Password)
	if err != nil {
		UsecaseErrorHandler(c, err, "Failed to log in")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.LoginResponse{AccessToken: token, TokenType: "Bearer"})
}
