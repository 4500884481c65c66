package auth

import (
	"net/http"
	"strings"
	"time"

	"go-leave/internal/middleware"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service      Service
	secureCookie bool
	tokenTTL     time.Duration
	logger       *zap.Logger
}

// NewHandler: tokenTTL should match the TTL the service signs with so the
// cookie never outlives the token.
func NewHandler(s Service, secureCookie bool, tokenTTL time.Duration, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &Handler{service: s, secureCookie: secureCookie, tokenTTL: tokenTTL, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	token, userResp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("login failed", zap.Int("status", httpErr.Status), zap.String("code", httpErr.Code))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	if strings.EqualFold(c.GetHeader("X-Client-Type"), "web") {
		h.setTokenCookie(c, token, int(h.tokenTTL.Seconds()))
	}

	response.Success(c, http.StatusOK, "Login successful", "user", gin.H{
		"profile":      userResp,
		"access_token": token,
	}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	userID, _ := middleware.Actor(c)
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	resp, err := h.service.GetMe(c.Request.Context(), userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Profile fetched", "user", resp, nil)
}

// Logout expires the web cookie. Bearer tokens stay valid until they expire.
func (h *Handler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

func (h *Handler) setTokenCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
