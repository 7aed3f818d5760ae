package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"spendtrack/internal/auth"
	apperrors "spendtrack/internal/errors"
)

// Auth verifies the bearer token on the request and attaches the
// resolved principal to the context. The token is self-contained, so no
// store lookup happens here.
func Auth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithAppError(c, apperrors.ErrUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWithAppError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid authorization header format"))
			return
		}

		principal, err := tokens.ValidateAccessToken(parts[1])
		if err != nil {
			var appErr *apperrors.AppError
			if e, ok := err.(*apperrors.AppError); ok {
				appErr = e
			} else {
				appErr = apperrors.ErrMalformedToken
			}
			abortWithAppError(c, appErr)
			return
		}

		auth.SetPrincipal(c, principal)
		c.Next()
	}
}

func abortWithAppError(c *gin.Context, appErr *apperrors.AppError) {
	status := appErr.StatusCode
	if status == 0 {
		status = http.StatusUnauthorized
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{"code": appErr.Code, "message": appErr.Message},
	})
}
