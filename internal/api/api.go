package api

import (
	"context"
	"net/http"
	"time"

	authHandler "subgate/internal/auth/handler"
	campaignHandler "subgate/internal/campaign/handler"
	webhookHandler "subgate/internal/webhooks/handler"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

type API struct {
	router          *gin.RouterGroup
	authHandler     authHandler.Handler
	campaignHandler campaignHandler.Handler
	webhookHandler  *webhookHandler.Handler
	rateLimit       gin.HandlerFunc
	checks          map[string]HealthCheck
}

// New wires the HTTP routes. webhookHandler is nil in polling mode.
func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	campaignHandler campaignHandler.Handler,
	webhookHandler *webhookHandler.Handler,
	rateLimit gin.HandlerFunc,
	checks map[string]HealthCheck,
) API {
	return API{
		router:          router,
		authHandler:     authHandler,
		campaignHandler: campaignHandler,
		webhookHandler:  webhookHandler,
		rateLimit:       rateLimit,
		checks:          checks,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	if a.webhookHandler != nil {
		a.router.POST("/telegram/webhook", a.webhookHandler.HandleUpdate)
	}

	protected := []gin.HandlerFunc{a.authHandler.HandleJWTMiddleware}
	if a.rateLimit != nil {
		protected = append(protected, a.rateLimit)
	}
	apiGroup := a.router.Group("/api", protected...)
	{
		apiGroup.GET("/campaigns", a.campaignHandler.HandleListCampaigns)
		apiGroup.GET("/campaigns/:campaign_id", a.campaignHandler.HandleGetCampaign)
		apiGroup.PATCH("/channels/:channel_id", a.campaignHandler.HandleUpdateChannel)
		apiGroup.PATCH("/links/:link_id", a.campaignHandler.HandleUpdateLink)
	}
}

// Health reports 503 when any dependency check fails.
func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		components := make(map[string]string, len(a.checks))
		for name, check := range a.checks {
			if err := check(ctx); err != nil {
				components[name] = "unavailable"
				status = http.StatusServiceUnavailable
				continue
			}
			components[name] = "ok"
		}

		message := "ok"
		if status != http.StatusOK {
			message = "degraded"
		}
		c.JSON(status, gin.H{"message": message, "components": components})
	})
}
