package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/provado/provado-backend/internal/response"
	"github.com/provado/provado-backend/internal/service"
)

// CheckActiveSession validates the JWT's JTI against the active session in
// Redis. A stale JTI means the user logged out, or logged in somewhere else,
// after this token was issued.
func CheckActiveSession(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if err := authService.ValidateSession(c.Request.Context(), claims.UserID, claims.ID); err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrSessionInvalidated)
			return
		}

		c.Next()
	}
}
