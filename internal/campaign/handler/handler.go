package handler

import (
	"net/http"
	"strconv"

	"subgate/internal/apierrors"
	"subgate/internal/campaign/processor"
	"subgate/internal/observability"
	"subgate/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// UpdateChannelRequest represents the HTTP request for updating a channel
type UpdateChannelRequest struct {
	Name       *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	InviteLink *string `json:"invite_link,omitempty" binding:"omitempty,http_url"`
}

// UpdateLinkRequest represents the HTTP request for updating a link
type UpdateLinkRequest struct {
	URL string `json:"url" binding:"required,http_url"`
}

// HandleListCampaigns lists the caller's campaigns
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := h.getOwnerID(c)
	if !ok {
		return
	}

	campaigns, err := h.processor.ListCampaigns(ctx, ownerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// HandleGetCampaign returns one campaign with its checklist
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := h.getOwnerID(c)
	if !ok {
		return
	}

	campaignID, ok := h.getPathID(c, "campaign_id")
	if !ok {
		return
	}

	campaign, err := h.processor.GetCampaign(ctx, ownerID, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleUpdateChannel renames a channel or replaces its invite link
func (h *Handler) HandleUpdateChannel(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := h.getOwnerID(c)
	if !ok {
		return
	}

	channelID, ok := h.getPathID(c, "channel_id")
	if !ok {
		return
	}

	var req UpdateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	channel, err := h.processor.UpdateChannel(ctx, ownerID, channelID, processor.UpdateChannelParams{
		Name:       req.Name,
		InviteLink: req.InviteLink,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, channel)
}

// HandleUpdateLink replaces a link's URL
func (h *Handler) HandleUpdateLink(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := h.getOwnerID(c)
	if !ok {
		return
	}

	linkID, ok := h.getPathID(c, "link_id")
	if !ok {
		return
	}

	var req UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	link, err := h.processor.UpdateLinkURL(ctx, ownerID, linkID, req.URL)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

func (h *Handler) getOwnerID(c *gin.Context) (int64, bool) {
	ownerID := c.GetInt64(ratelimit.OwnerIDKey)
	if ownerID == 0 {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Owner ID not found in context"))
		return 0, false
	}
	return ownerID, true
}

func (h *Handler) getPathID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid "+param+" format"))
		return 0, false
	}
	return id, true
}
