// Package bot routes inbound chat events to the owner dialogue and the
// join-request workflow, one event at a time.
package bot

//go:generate go run go.uber.org/mock/mockgen@latest -source=dispatcher.go -destination=mocks_test.go -package=bot

import (
	"context"
	"errors"
	"fmt"

	"subgate/internal/draft"
	joinrequest "subgate/internal/joinrequest/processor"
	"subgate/internal/observability"
	"subgate/internal/platform"
)

const (
	commandStart = "start"
	commandToken = "token"
)

// JoinRequests is the subscriber-facing workflow.
type JoinRequests interface {
	RegisterUser(ctx context.Context, user platform.User) (bool, error)
	OnJoinRequest(ctx context.Context, req platform.JoinRequest) error
	ShowChecklist(ctx context.Context, campaignID int64) (platform.Message, error)
	OnUserCheck(ctx context.Context, campaignID int64, user platform.User) (joinrequest.CheckResult, error)
}

// Owners is the campaign-authoring dialogue.
type Owners interface {
	Start(ctx context.Context, sid draft.SessionID) error
	HandleAction(ctx context.Context, sid draft.SessionID, a platform.Action) (bool, error)
	HandleText(ctx context.Context, sid draft.SessionID, msg platform.InboundMessage) (bool, error)
}

// TokenIssuer mints owner API tokens.
type TokenIssuer interface {
	IssueOwnerToken(ctx context.Context, ownerID int64) (string, error)
}

// Dispatcher handles events strictly in arrival order. A handler runs to
// completion before the next event is looked at.
type Dispatcher struct {
	platform platform.ChatPlatform
	joins    JoinRequests
	owners   Owners
	tokens   TokenIssuer
	logger   *observability.Logger
}

// New builds a dispatcher. tokens may be nil, which disables /token.
func New(chatPlatform platform.ChatPlatform, joins JoinRequests, owners Owners, tokens TokenIssuer, logger *observability.Logger) *Dispatcher {
	return &Dispatcher{
		platform: chatPlatform,
		joins:    joins,
		owners:   owners,
		tokens:   tokens,
		logger:   logger,
	}
}

// Run consumes events until ctx is cancelled or the channel is closed.
func (d *Dispatcher) Run(ctx context.Context, events <-chan platform.Event) error {
	d.logger.Info(ctx, "dispatcher started")
	for {
		select {
		case <-ctx.Done():
			d.logger.Info(ctx, "dispatcher stopped")
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				d.logger.Info(ctx, "event source closed")
				return nil
			}
			d.Handle(ctx, ev)
		}
	}
}

// Handle processes one event. Failures are logged and reported to the user
// where there is someone to report to; they never stop the dispatcher.
func (d *Dispatcher) Handle(ctx context.Context, ev platform.Event) {
	ctx = observability.NewEventContext(ctx, ev.ID)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: ev.UserID()},
		observability.Field{Key: "chat_id", Value: ev.ChatID()},
	)

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error(ctx, "event handler panicked", fmt.Errorf("panic: %v", r))
		}
	}()

	var err error
	switch {
	case ev.Message != nil:
		err = d.handleMessage(ctx, *ev.Message)
	case ev.Action != nil:
		err = d.handleAction(ctx, *ev.Action)
	case ev.JoinRequest != nil:
		err = d.joins.OnJoinRequest(ctx, *ev.JoinRequest)
	default:
		d.logger.Debug(ctx, "ignoring event without payload")
	}
	if err != nil {
		d.logger.Error(ctx, "failed to handle event", err)
	}
}

func sessionOf(chatID int64, user platform.User) draft.SessionID {
	return draft.SessionID{ChatID: chatID, UserID: user.ID}
}

func (d *Dispatcher) handleMessage(ctx context.Context, msg platform.InboundMessage) error {
	sid := sessionOf(msg.ChatID, msg.From)

	switch msg.Command {
	case commandStart:
		d.registerUser(ctx, msg.From)
		if campaignID, ok := joinrequest.ParseDeepLinkArg(msg.Args); ok {
			return d.showChecklist(ctx, msg.ChatID, campaignID)
		}
		return d.owners.Start(ctx, sid)
	case commandToken:
		return d.issueToken(ctx, msg)
	}

	handled, err := d.owners.HandleText(ctx, sid, msg)
	if err != nil {
		d.reply(ctx, msg.ChatID, userMessage(err))
		return err
	}
	if !handled {
		d.logger.Debug(ctx, "ignoring message outside of a dialogue")
	}
	return nil
}

func (d *Dispatcher) registerUser(ctx context.Context, user platform.User) {
	if _, err := d.joins.RegisterUser(ctx, user); err != nil {
		d.logger.WarnWithError(ctx, "failed to register user", err)
	}
}

func (d *Dispatcher) showChecklist(ctx context.Context, chatID, campaignID int64) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	msg, err := d.joins.ShowChecklist(ctx, campaignID)
	if err != nil {
		d.reply(ctx, chatID, userMessage(err))
		if errors.Is(err, joinrequest.ErrCampaignNotFound) {
			return nil
		}
		return err
	}
	_, err = d.platform.SendMessage(ctx, chatID, msg)
	return err
}

func (d *Dispatcher) issueToken(ctx context.Context, msg platform.InboundMessage) error {
	if d.tokens == nil {
		d.reply(ctx, msg.ChatID, userMessage(errAPIDisabled))
		return nil
	}
	token, err := d.tokens.IssueOwnerToken(ctx, msg.From.ID)
	if err != nil {
		d.reply(ctx, msg.ChatID, userMessage(err))
		if isExpected(err) {
			return nil
		}
		return err
	}
	_, err = d.platform.SendMessage(ctx, msg.ChatID, platform.Message{
		Text: "🔑 Your owner API token (valid for 24 hours):\n<code>" + token + "</code>",
		HTML: true,
	})
	return err
}

func (d *Dispatcher) handleAction(ctx context.Context, a platform.Action) error {
	if campaignID, ok := joinrequest.ParseCheckAction(a.Data); ok {
		return d.handleUserCheck(ctx, a, campaignID)
	}

	handled, err := d.owners.HandleAction(ctx, sessionOf(a.ChatID, a.From), a)
	if err != nil {
		d.reply(ctx, a.ChatID, userMessage(err))
		return err
	}
	if !handled {
		d.logger.Debug(ctx, "unknown action")
		d.answer(ctx, a.ID, "", false)
	}
	return nil
}

func (d *Dispatcher) handleUserCheck(ctx context.Context, a platform.Action, campaignID int64) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	result, err := d.joins.OnUserCheck(ctx, campaignID, a.From)
	if err != nil {
		d.answer(ctx, a.ID, userMessage(err), true)
		if isExpected(err) {
			return nil
		}
		return err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "outcome", Value: result.Outcome.String()})

	switch result.Outcome {
	case joinrequest.OutcomeThrottled:
		d.answer(ctx, a.ID, result.Message.Text, true)
		return nil
	case joinrequest.OutcomeApproveFailed:
		d.answer(ctx, a.ID, "", false)
		_, err = d.platform.SendMessage(ctx, a.ChatID, result.Message)
		return err
	default:
		d.answer(ctx, a.ID, "", false)
		return d.platform.EditMessage(ctx, a.ChatID, a.MessageID, result.Message)
	}
}

func (d *Dispatcher) answer(ctx context.Context, actionID, text string, alert bool) {
	if err := d.platform.AnswerAction(ctx, actionID, text, alert); err != nil {
		d.logger.WarnWithError(ctx, "failed to answer action", err)
	}
}

func (d *Dispatcher) reply(ctx context.Context, chatID int64, text string) {
	if _, err := d.platform.SendMessage(ctx, chatID, platform.Message{Text: text}); err != nil {
		d.logger.WarnWithError(ctx, "failed to send error reply", err)
	}
}
