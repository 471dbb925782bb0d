package handler

import (
	"crypto/subtle"
	"net/http"

	"subgate/internal/apierrors"
	"subgate/internal/observability"
	"subgate/internal/platform"
	"subgate/internal/platform/telegram"

	"github.com/gin-gonic/gin"
)

// SecretHeader carries the secret registered with setWebhook.
const SecretHeader = "X-Telegram-Bot-Api-Secret-Token"

// Handler accepts Bot API updates pushed to the webhook and queues them for
// the dispatcher.
type Handler struct {
	secret string
	events chan<- platform.Event
	logger *observability.Logger
}

// New creates a new Handler
func New(secret string, events chan<- platform.Event, logger *observability.Logger) *Handler {
	return &Handler{
		secret: secret,
		events: events,
		logger: logger,
	}
}

// HandleUpdate handles POST /telegram/webhook. Undecodable updates are
// rejected; update kinds the bot does not handle are acknowledged and dropped.
func (h *Handler) HandleUpdate(c *gin.Context) {
	ctx := c.Request.Context()

	got := c.GetHeader(SecretHeader)
	if h.secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
		h.logger.Warn(ctx, "webhook call with a bad secret token")
		apierrors.RespondWithError(c, apierrors.Unauthorized("Invalid secret token"))
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Unreadable body"))
		return
	}

	ev, ok, err := telegram.DecodeUpdate(body)
	if err != nil {
		h.logger.WarnWithError(ctx, "failed to decode update", err)
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid update"))
		return
	}
	if !ok {
		c.Status(http.StatusOK)
		return
	}

	select {
	case h.events <- ev:
		c.Status(http.StatusOK)
	case <-ctx.Done():
		// The platform retries updates that were not acknowledged.
		h.logger.Warn(ctx, "event queue full, update not accepted")
		c.Status(http.StatusServiceUnavailable)
	}
}
