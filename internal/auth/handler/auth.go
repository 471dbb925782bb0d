package handler

import (
	"strings"

	"subgate/internal/apierrors"
	"subgate/internal/auth/processor"
	"subgate/internal/observability"
	"subgate/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

// HandleJWTMiddleware authenticates owner API calls and stores the owner id
// under ratelimit.OwnerIDKey.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	ownerID, err := claims.OwnerID()
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "owner_id", Value: ownerID})
	c.Request = c.Request.WithContext(ctx)
	c.Set(ratelimit.OwnerIDKey, ownerID)
	c.Next()
}
