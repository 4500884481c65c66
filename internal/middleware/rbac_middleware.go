package middleware

import (
	"net/http"

	autherrors "go-leave/internal/auth/errors"
	"go-leave/internal/domain"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by anything exposing Enforce(domain.EnforceRequest).
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role := Actor(c)
		if role == "" {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		req := domain.EnforceRequest{Role: string(role), Resource: resource, Action: action}
		allowed, err := service.Enforce(req)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message, nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, autherrors.ErrForbidden.HTTPStatus, autherrors.ErrForbidden.Code,
				autherrors.ErrForbidden.Message,
				gin.H{"required": req.Permission().String()},
			)
			c.Abort()
			return
		}
		c.Next()
	}
}
