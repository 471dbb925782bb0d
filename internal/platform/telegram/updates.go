package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"subgate/internal/platform"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// AllowedUpdates lists the update kinds the bot subscribes to. Join requests
// are not delivered unless requested explicitly.
var AllowedUpdates = []string{"message", "callback_query", "chat_join_request"}

// Poll starts long polling and returns a channel of converted events. The
// channel closes after ctx is cancelled.
func (c *Client) Poll(ctx context.Context) (<-chan platform.Event, error) {
	if _, err := c.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return nil, fmt.Errorf("failed to delete webhook: %w", err)
	}

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	cfg.AllowedUpdates = AllowedUpdates
	updates := c.api.GetUpdatesChan(cfg)

	events := make(chan platform.Event)
	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				c.api.StopReceivingUpdates()
				return
			case u, ok := <-updates:
				if !ok {
					return
				}
				ev, ok := ConvertUpdate(u)
				if !ok {
					continue
				}
				select {
				case events <- ev:
				case <-ctx.Done():
					c.api.StopReceivingUpdates()
					return
				}
			}
		}
	}()

	c.logger.Info(ctx, "telegram long polling started")
	return events, nil
}

// SetWebhook registers the public webhook URL with a secret echoed back in
// the X-Telegram-Bot-Api-Secret-Token header.
func (c *Client) SetWebhook(ctx context.Context, webhookURL, secret string) error {
	if _, err := url.Parse(webhookURL); err != nil {
		return fmt.Errorf("invalid webhook url: %w", err)
	}
	allowed, err := json.Marshal(AllowedUpdates)
	if err != nil {
		return fmt.Errorf("failed to encode allowed updates: %w", err)
	}

	params := tgbotapi.Params{
		"url":             webhookURL,
		"allowed_updates": string(allowed),
	}
	if secret != "" {
		params["secret_token"] = secret
	}

	c.limiter.Take()
	if _, err := c.api.MakeRequest("setWebhook", params); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}

	c.logger.Info(ctx, "telegram webhook registered")
	return nil
}

// DecodeUpdate parses a webhook body into an event. ok is false for update
// kinds the bot ignores.
func DecodeUpdate(body []byte) (ev platform.Event, ok bool, err error) {
	var u tgbotapi.Update
	if err := json.Unmarshal(body, &u); err != nil {
		return platform.Event{}, false, fmt.Errorf("failed to decode update: %w", err)
	}
	ev, ok = ConvertUpdate(u)
	return ev, ok, nil
}

// ConvertUpdate maps a Bot API update onto a platform event.
func ConvertUpdate(u tgbotapi.Update) (platform.Event, bool) {
	ev := platform.Event{ID: u.UpdateID}

	switch {
	case u.Message != nil && u.Message.From != nil && u.Message.Chat != nil:
		m := u.Message
		in := &platform.InboundMessage{
			ChatID:    m.Chat.ID,
			MessageID: m.MessageID,
			From:      convertUser(m.From),
			Text:      m.Text,
		}
		if m.IsCommand() {
			in.Command = m.Command()
			in.Args = m.CommandArguments()
		}
		if m.ForwardFromChat != nil {
			in.ForwardedChat = &platform.Chat{
				ID:       m.ForwardFromChat.ID,
				Username: m.ForwardFromChat.UserName,
				Title:    m.ForwardFromChat.Title,
			}
		}
		ev.Message = in
	case u.CallbackQuery != nil && u.CallbackQuery.From != nil:
		q := u.CallbackQuery
		action := &platform.Action{
			ID:   q.ID,
			From: convertUser(q.From),
			Data: q.Data,
		}
		if q.Message != nil && q.Message.Chat != nil {
			action.ChatID = q.Message.Chat.ID
			action.MessageID = q.Message.MessageID
		}
		ev.Action = action
	case u.ChatJoinRequest != nil:
		r := u.ChatJoinRequest
		ev.JoinRequest = &platform.JoinRequest{
			ChatID: r.Chat.ID,
			From:   convertUser(&r.From),
		}
	default:
		return platform.Event{}, false
	}
	return ev, true
}

func convertUser(u *tgbotapi.User) platform.User {
	return platform.User{ID: u.ID, Username: u.UserName, FirstName: u.FirstName}
}
