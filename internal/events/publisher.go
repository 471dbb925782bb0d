package events

import (
	"context"
	"time"

	"subgate/internal/clients/kafka"
	"subgate/internal/observability"

	"github.com/google/uuid"
)

// Event types
const (
	TypeCampaignSaved       = "campaign.saved"
	TypeJoinRequestApproved = "join_request.approved"
	TypeUserRegistered      = "user.registered"
)

// EventProducer is satisfied by *kafka.Producer.
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher handles publishing domain events. A Publisher without a producer
// drops every event.
type Publisher struct {
	producer EventProducer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a new event publisher. producer may be nil.
func NewPublisher(producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

// PublishCampaignSaved publishes a campaign.saved event
func (p *Publisher) PublishCampaignSaved(ctx context.Context, ownerID, campaignID int64, itemCount int, edited bool) error {
	return p.publish(ctx, kafka.EventMessage{
		Type:       TypeCampaignSaved,
		OwnerID:    ownerID,
		CampaignID: &campaignID,
		Data: map[string]interface{}{
			"campaign_id": campaignID,
			"item_count":  itemCount,
			"edited":      edited,
		},
	})
}

// PublishJoinRequestApproved publishes a join_request.approved event
func (p *Publisher) PublishJoinRequestApproved(ctx context.Context, campaignID, userID int64, mainChatID string) error {
	return p.publish(ctx, kafka.EventMessage{
		Type:       TypeJoinRequestApproved,
		CampaignID: &campaignID,
		Data: map[string]interface{}{
			"campaign_id":  campaignID,
			"user_id":      userID,
			"main_chat_id": mainChatID,
		},
	})
}

// PublishUserRegistered publishes a user.registered event
func (p *Publisher) PublishUserRegistered(ctx context.Context, userID int64) error {
	return p.publish(ctx, kafka.EventMessage{
		Type: TypeUserRegistered,
		Data: map[string]interface{}{
			"user_id": userID,
		},
	})
}

func (p *Publisher) publish(ctx context.Context, event kafka.EventMessage) error {
	if p == nil || p.producer == nil {
		return nil
	}
	event.ID = uuid.New().String()
	event.Timestamp = p.now().UTC().Format(time.RFC3339)
	return p.producer.PublishEvent(ctx, event)
}
