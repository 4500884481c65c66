package middleware

import (
	"errors"
	"strings"

	autherrors "go-leave/internal/auth/errors"
	"go-leave/internal/domain"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"

	// AccessTokenCookie is set by the login endpoint for web clients.
	AccessTokenCookie = "access_token"
)

// AuthMiddleware verifies the bearer token (or access_token cookie) and stores
// the caller's id and role in the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenMissing)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, autherrors.ErrInvalidToken
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = autherrors.ErrTokenExpired
			}
			abortWith(c, errObj)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		rawRole, _ := claims["role"].(string)
		role, err := domain.ParseRole(rawRole)
		if err != nil {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, string(role))

		c.Next()
	}
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}
