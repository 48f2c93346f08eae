package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Folio/internal/domain/entity"
	"github.com/mikiasgoitom/Folio/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Folio/internal/usecase/contract"
)

// Context keys set by AuthMiddleWare.
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.Response{Success: false, ErrorMessage: message})
}

// AuthMiddleWare requires a bearer token carrying the admin role.
func AuthMiddleWare(authUsecase usecasecontract.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abort(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		claims, err := authUsecase.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		if claims.Role != entity.RoleAdmin {
			abort(c, http.StatusForbidden, "Admin access required")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}
