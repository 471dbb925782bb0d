// Package processor runs the join-request side of a campaign: proactive
// checklist delivery, membership verification and approval.
package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"subgate/internal/observability"
	"subgate/internal/platform"
	"subgate/internal/ratelimit"
	"subgate/internal/store"
	"subgate/internal/verification"
)

// GateStore defines the database operations required by JoinRequestProcessor
type GateStore interface {
	AddUser(ctx context.Context, userID int64) (bool, error)
	GetCampaign(ctx context.Context, id int64) (store.Campaign, error)
	GetCampaignByMainChat(ctx context.Context, chatID string) (store.Campaign, error)
	GetCampaignItems(ctx context.Context, campaignID int64) ([]store.ResolvedItem, error)
}

// Platform is the slice of the chat platform used for delivery and approval.
type Platform interface {
	SendMessage(ctx context.Context, chatID int64, msg platform.Message) (int, error)
	ApproveJoinRequest(ctx context.Context, chatID string, userID int64) error
}

// Verifier decides whether a user has completed the gate items.
type Verifier interface {
	CheckSatisfaction(ctx context.Context, userID int64, items []store.GateItem) verification.Result
}

// Throttle limits how often one user may run a check.
type Throttle interface {
	CheckUser(ctx context.Context, userID int64) ratelimit.RateLimitResult
}

// NewUserNotifier is told about users registered for the first time.
type NewUserNotifier interface {
	NotifyNewUser(ctx context.Context, user platform.User)
}

// EventPublisher receives join_request.approved notifications.
type EventPublisher interface {
	PublishJoinRequestApproved(ctx context.Context, campaignID, userID int64, mainChatID string) error
}

var ErrCampaignNotFound = errors.New("campaign not found")

// Outcome is the result class of a user check.
type Outcome int

const (
	OutcomeApproved Outcome = iota + 1
	// OutcomeMissing means at least one channel is not joined. No approval was attempted.
	OutcomeMissing
	// OutcomeNoRequest means every item is satisfied but the platform has no pending request.
	OutcomeNoRequest
	// OutcomeApproveFailed means approval failed for any other reason. Retry is possible.
	OutcomeApproveFailed
	OutcomeThrottled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApproved:
		return "approved"
	case OutcomeMissing:
		return "missing"
	case OutcomeNoRequest:
		return "no_request"
	case OutcomeApproveFailed:
		return "approve_failed"
	case OutcomeThrottled:
		return "throttled"
	}
	return "unknown"
}

// CheckResult is what the user should see after pressing "I subscribed".
// Message replaces the checklist, except for OutcomeApproveFailed where it is
// sent as a separate warning and for OutcomeThrottled where it is an alert.
type CheckResult struct {
	Outcome Outcome
	Missing []store.GateItem
	Message platform.Message
}

type JoinRequestProcessor struct {
	store     GateStore
	platform  Platform
	verifier  Verifier
	throttle  Throttle
	notifier  NewUserNotifier
	publisher EventPublisher
	logger    *observability.Logger
}

// New builds the processor. throttle, notifier and publisher may be nil.
func New(
	gateStore GateStore,
	chatPlatform Platform,
	verifier Verifier,
	throttle Throttle,
	notifier NewUserNotifier,
	publisher EventPublisher,
	logger *observability.Logger,
) JoinRequestProcessor {
	return JoinRequestProcessor{
		store:     gateStore,
		platform:  chatPlatform,
		verifier:  verifier,
		throttle:  throttle,
		notifier:  notifier,
		publisher: publisher,
		logger:    logger,
	}
}

// RegisterUser records the user and notifies admins the first time it is seen.
func (p *JoinRequestProcessor) RegisterUser(ctx context.Context, user platform.User) (bool, error) {
	inserted, err := p.store.AddUser(ctx, user.ID)
	if err != nil {
		return false, fmt.Errorf("failed to register user: %w", err)
	}
	if inserted && p.notifier != nil {
		p.notifier.NotifyNewUser(ctx, user)
	}
	return inserted, nil
}

// OnJoinRequest sends the requester the checklist of the campaign gating the
// chat. Chats without a campaign are left alone. A user the bot cannot message
// is an accepted outcome: the request simply stays pending.
func (p *JoinRequestProcessor) OnJoinRequest(ctx context.Context, req platform.JoinRequest) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "main_chat_id", Value: req.ChatID},
		observability.Field{Key: "requester_id", Value: req.From.ID},
	)

	if _, err := p.RegisterUser(ctx, req.From); err != nil {
		p.logger.Error(ctx, "failed to register join requester", err)
	}

	campaign, err := p.store.GetCampaignByMainChat(ctx, strconv.FormatInt(req.ChatID, 10))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Debug(ctx, "join request for a chat without campaign")
			return nil
		}
		return fmt.Errorf("failed to look up campaign: %w", err)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID})

	items, err := p.items(ctx, campaign.ID)
	if err != nil {
		return err
	}

	if _, err := p.platform.SendMessage(ctx, req.From.ID, joinRequestChecklist(campaign.ID, req.From, items)); err != nil {
		switch platform.KindOf(err) {
		case platform.KindUnreachable, platform.KindForbidden:
			p.logger.Info(ctx, "requester has not started the bot, checklist not delivered")
		default:
			p.logger.WarnWithError(ctx, "failed to deliver checklist", err)
		}
		return nil
	}

	p.logger.Info(ctx, "checklist delivered to join requester")
	return nil
}

// ShowChecklist renders the full checklist for the deep-link entry point.
func (p *JoinRequestProcessor) ShowChecklist(ctx context.Context, campaignID int64) (platform.Message, error) {
	if _, err := p.campaign(ctx, campaignID); err != nil {
		return platform.Message{}, err
	}
	items, err := p.items(ctx, campaignID)
	if err != nil {
		return platform.Message{}, err
	}
	return deepLinkChecklist(campaignID, items), nil
}

// OnUserCheck verifies the user against the campaign's current items and, when
// every item is satisfied, approves the pending join request on the main chat.
func (p *JoinRequestProcessor) OnUserCheck(ctx context.Context, campaignID int64, user platform.User) (CheckResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID},
		observability.Field{Key: "checking_user_id", Value: user.ID},
	)

	if p.throttle != nil {
		if limit := p.throttle.CheckUser(ctx, user.ID); !limit.Allowed {
			p.logger.Warn(ctx, "user check throttled")
			seconds := (limit.RetryAfterMs + 999) / 1000
			return CheckResult{
				Outcome: OutcomeThrottled,
				Message: platform.Message{Text: fmt.Sprintf("Too many checks. Try again in %d s.", seconds)},
			}, nil
		}
	}

	campaign, err := p.campaign(ctx, campaignID)
	if err != nil {
		return CheckResult{}, err
	}
	items, err := p.items(ctx, campaignID)
	if err != nil {
		return CheckResult{}, err
	}

	result := p.verifier.CheckSatisfaction(ctx, user.ID, items)
	if !result.Satisfied {
		return CheckResult{
			Outcome: OutcomeMissing,
			Missing: result.Missing,
			Message: missingChecklist(campaignID, result.Missing),
		}, nil
	}

	err = p.platform.ApproveJoinRequest(ctx, campaign.MainChatID, user.ID)
	switch {
	case err == nil:
		p.logger.Info(ctx, "join request approved")
		if p.publisher != nil {
			if perr := p.publisher.PublishJoinRequestApproved(ctx, campaignID, user.ID, campaign.MainChatID); perr != nil {
				p.logger.WarnWithError(ctx, "failed to publish join request approved event", perr)
			}
		}
		return CheckResult{Outcome: OutcomeApproved, Missing: result.Missing, Message: approvedMessage()}, nil
	case platform.IsKind(err, platform.KindNotFound):
		p.logger.Info(ctx, "subscriptions satisfied but no pending join request")
		return CheckResult{Outcome: OutcomeNoRequest, Missing: result.Missing, Message: noRequestChecklist(campaignID, items)}, nil
	default:
		p.logger.WarnWithError(ctx, "failed to approve join request", err)
		return CheckResult{Outcome: OutcomeApproveFailed, Missing: result.Missing, Message: approveFailedMessage(err)}, nil
	}
}

func (p *JoinRequestProcessor) campaign(ctx context.Context, campaignID int64) (store.Campaign, error) {
	campaign, err := p.store.GetCampaign(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		return store.Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

func (p *JoinRequestProcessor) items(ctx context.Context, campaignID int64) ([]store.GateItem, error) {
	resolved, err := p.store.GetCampaignItems(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign items: %w", err)
	}
	return store.Items(resolved), nil
}
