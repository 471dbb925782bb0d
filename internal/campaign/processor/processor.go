package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	joinrequest "subgate/internal/joinrequest/processor"
	"subgate/internal/observability"
	"subgate/internal/store"

	"github.com/go-playground/validator/v10"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	GetCampaign(ctx context.Context, id int64) (store.Campaign, error)
	ListCampaignsByOwner(ctx context.Context, ownerID int64) ([]store.CampaignSummary, error)
	GetCampaignItems(ctx context.Context, campaignID int64) ([]store.ResolvedItem, error)

	GetChannel(ctx context.Context, id int64) (store.GateChannel, error)
	UpdateChannelName(ctx context.Context, id int64, name string) error
	UpdateChannelLink(ctx context.Context, id int64, inviteLink string) error

	GetLink(ctx context.Context, id int64) (store.GateLink, error)
	UpdateLinkURL(ctx context.Context, id int64, url string) error
}

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrChannelNotFound  = errors.New("channel not found")
	ErrLinkNotFound     = errors.New("link not found")
	ErrInvalidURL       = errors.New("invalid url")
	ErrEmptyUpdate      = errors.New("nothing to update")
)

var validate = validator.New()

// CampaignProcessor serves the owner API. Every read and write is scoped to
// the calling owner; rows of other owners look exactly like missing rows.
type CampaignProcessor struct {
	store       CampaignStore
	botUsername string
	logger      *observability.Logger
}

func New(store CampaignStore, botUsername string, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:       store,
		botUsername: botUsername,
		logger:      logger,
	}
}

// CampaignItem is one ordered checklist step as exposed by the API
type CampaignItem struct {
	Position int            `json:"position"`
	Type     store.ItemType `json:"type"`
	RefID    int64          `json:"ref_id"`
	Title    string         `json:"title"`
	URL      string         `json:"url,omitempty"`
}

// CampaignDetail is a campaign with its resolved checklist and share links
type CampaignDetail struct {
	ID           int64          `json:"id"`
	MainChatID   string         `json:"main_chat_id"`
	MainName     string         `json:"main_name"`
	MainUsername *string        `json:"main_username,omitempty"`
	MainJoinLink string         `json:"main_join_link"`
	DeepLink     string         `json:"deep_link"`
	CreatedAt    time.Time      `json:"created_at"`
	Items        []CampaignItem `json:"items"`
}

// UpdateChannelParams holds the optional channel fields an owner may change
type UpdateChannelParams struct {
	Name       *string
	InviteLink *string
}

// ListCampaigns returns the owner's campaigns, newest first
func (p *CampaignProcessor) ListCampaigns(ctx context.Context, ownerID int64) ([]store.CampaignSummary, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "owner_id", Value: ownerID})

	campaigns, err := p.store.ListCampaignsByOwner(ctx, ownerID)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, err
	}
	if campaigns == nil {
		campaigns = []store.CampaignSummary{}
	}
	return campaigns, nil
}

// GetCampaign returns one of the owner's campaigns with its items in order
func (p *CampaignProcessor) GetCampaign(ctx context.Context, ownerID, campaignID int64) (CampaignDetail, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "owner_id", Value: ownerID},
		observability.Field{Key: "campaign_id", Value: campaignID},
	)

	campaign, err := p.store.GetCampaign(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CampaignDetail{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return CampaignDetail{}, err
	}
	if campaign.OwnerID != ownerID {
		p.logger.Warn(ctx, "campaign requested by a different owner")
		return CampaignDetail{}, ErrCampaignNotFound
	}

	resolved, err := p.store.GetCampaignItems(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to get campaign items", err)
		return CampaignDetail{}, err
	}

	items := make([]CampaignItem, 0, len(resolved))
	for _, r := range resolved {
		item := CampaignItem{
			Position: r.Position,
			Type:     r.Item.Type(),
			RefID:    r.RefID,
			Title:    r.Item.Title(),
		}
		switch it := r.Item.(type) {
		case store.ChannelItem:
			item.URL = it.SubscribeURL()
		case store.LinkItem:
			item.URL = it.URL
		}
		items = append(items, item)
	}

	return CampaignDetail{
		ID:           campaign.ID,
		MainChatID:   campaign.MainChatID,
		MainName:     campaign.MainName,
		MainUsername: campaign.MainUsername,
		MainJoinLink: campaign.MainJoinLink,
		DeepLink:     joinrequest.DeepLink(p.botUsername, campaign.ID),
		CreatedAt:    campaign.CreatedAt,
		Items:        items,
	}, nil
}

// UpdateChannel changes the display name and/or invite link of an owned channel
func (p *CampaignProcessor) UpdateChannel(ctx context.Context, ownerID, channelID int64, params UpdateChannelParams) (store.GateChannel, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "owner_id", Value: ownerID},
		observability.Field{Key: "channel_id", Value: channelID},
	)

	if params.Name == nil && params.InviteLink == nil {
		return store.GateChannel{}, ErrEmptyUpdate
	}
	if params.InviteLink != nil {
		if err := validate.Var(*params.InviteLink, "required,http_url"); err != nil {
			return store.GateChannel{}, fmt.Errorf("%w: %s", ErrInvalidURL, *params.InviteLink)
		}
	}

	channel, err := p.ownedChannel(ctx, ownerID, channelID)
	if err != nil {
		return store.GateChannel{}, err
	}

	if params.Name != nil {
		if err := p.store.UpdateChannelName(ctx, channelID, *params.Name); err != nil {
			p.logger.Error(ctx, "failed to update channel name", err)
			return store.GateChannel{}, err
		}
		channel.Name = *params.Name
	}
	if params.InviteLink != nil {
		if err := p.store.UpdateChannelLink(ctx, channelID, *params.InviteLink); err != nil {
			p.logger.Error(ctx, "failed to update channel link", err)
			return store.GateChannel{}, err
		}
		channel.InviteLink = *params.InviteLink
	}

	p.logger.Info(ctx, "channel updated")
	return channel, nil
}

// UpdateLinkURL replaces the URL of an owned link
func (p *CampaignProcessor) UpdateLinkURL(ctx context.Context, ownerID, linkID int64, url string) (store.GateLink, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "owner_id", Value: ownerID},
		observability.Field{Key: "link_id", Value: linkID},
	)

	if err := validate.Var(url, "required,http_url"); err != nil {
		return store.GateLink{}, fmt.Errorf("%w: %s", ErrInvalidURL, url)
	}

	link, err := p.store.GetLink(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.GateLink{}, ErrLinkNotFound
		}
		p.logger.Error(ctx, "failed to get link", err)
		return store.GateLink{}, err
	}
	if link.OwnerID != ownerID {
		p.logger.Warn(ctx, "link requested by a different owner")
		return store.GateLink{}, ErrLinkNotFound
	}

	if err := p.store.UpdateLinkURL(ctx, linkID, url); err != nil {
		p.logger.Error(ctx, "failed to update link url", err)
		return store.GateLink{}, err
	}
	link.URL = url

	p.logger.Info(ctx, "link updated")
	return link, nil
}

func (p *CampaignProcessor) ownedChannel(ctx context.Context, ownerID, channelID int64) (store.GateChannel, error) {
	channel, err := p.store.GetChannel(ctx, channelID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.GateChannel{}, ErrChannelNotFound
		}
		p.logger.Error(ctx, "failed to get channel", err)
		return store.GateChannel{}, err
	}
	if channel.OwnerID != ownerID {
		p.logger.Warn(ctx, "channel requested by a different owner")
		return store.GateChannel{}, ErrChannelNotFound
	}
	return channel, nil
}
