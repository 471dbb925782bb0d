// Package telegram implements platform.ChatPlatform on the Telegram Bot API.
package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"subgate/internal/observability"
	"subgate/internal/platform"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/ratelimit"
)

// Client wraps the Bot API with an outbound call throttle and error classification.
type Client struct {
	api     *tgbotapi.BotAPI
	limiter ratelimit.Limiter
	logger  *observability.Logger
}

var _ platform.ChatPlatform = (*Client)(nil)

// NewClient authenticates with the Bot API. rate caps outbound calls per second.
func NewClient(token string, rate int, logger *observability.Logger) (*Client, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot client: %w", err)
	}

	limiter := ratelimit.NewUnlimited()
	if rate > 0 {
		limiter = ratelimit.New(rate)
	}

	ctx := observability.WithFields(context.Background(),
		observability.Field{Key: "bot_username", Value: api.Self.UserName},
		observability.Field{Key: "api_rate", Value: rate},
	)
	logger.Info(ctx, "telegram bot authorized")

	return &Client{api: api, limiter: limiter, logger: logger}, nil
}

func (c *Client) BotID() int64 {
	return c.api.Self.ID
}

func (c *Client) BotUsername() string {
	return c.api.Self.UserName
}

// request throttles and performs one Bot API call, classifying any failure.
func (c *Client) request(ctx context.Context, op string, cfg tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, platform.NewError(op, platform.KindOther, err)
	}
	c.limiter.Take()

	resp, err := c.api.Request(cfg)
	if err != nil {
		return nil, classify(op, err)
	}
	return resp, nil
}

func (c *Client) GetChatMember(ctx context.Context, chatID string, userID int64) (platform.MemberStatus, error) {
	const op = "getChatMember"
	chat, err := chatConfig(op, chatID)
	if err != nil {
		return "", err
	}

	resp, err := c.request(ctx, op, tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID:             chat.ChatID,
			SuperGroupUsername: chat.SuperGroupUsername,
			UserID:             userID,
		},
	})
	if err != nil {
		return "", err
	}

	var member tgbotapi.ChatMember
	if err := json.Unmarshal(resp.Result, &member); err != nil {
		return "", platform.NewError(op, platform.KindOther, err)
	}
	return platform.MemberStatus(member.Status), nil
}

func (c *Client) GetChat(ctx context.Context, ref string) (platform.Chat, error) {
	const op = "getChat"
	chat, err := chatConfig(op, ref)
	if err != nil {
		return platform.Chat{}, err
	}

	resp, err := c.request(ctx, op, tgbotapi.ChatInfoConfig{ChatConfig: chat})
	if err != nil {
		return platform.Chat{}, err
	}

	var info tgbotapi.Chat
	if err := json.Unmarshal(resp.Result, &info); err != nil {
		return platform.Chat{}, platform.NewError(op, platform.KindOther, err)
	}
	return platform.Chat{ID: info.ID, Username: info.UserName, Title: info.Title}, nil
}

func (c *Client) CreateInviteLink(ctx context.Context, chatID string, joinRequest bool) (string, error) {
	const op = "createChatInviteLink"
	chat, err := chatConfig(op, chatID)
	if err != nil {
		return "", err
	}

	resp, err := c.request(ctx, op, tgbotapi.CreateChatInviteLinkConfig{
		ChatConfig:         chat,
		CreatesJoinRequest: joinRequest,
	})
	if err != nil {
		return "", err
	}

	var link tgbotapi.ChatInviteLink
	if err := json.Unmarshal(resp.Result, &link); err != nil {
		return "", platform.NewError(op, platform.KindOther, err)
	}
	return link.InviteLink, nil
}

func (c *Client) ApproveJoinRequest(ctx context.Context, chatID string, userID int64) error {
	const op = "approveChatJoinRequest"
	chat, err := chatConfig(op, chatID)
	if err != nil {
		return err
	}

	_, err = c.request(ctx, op, tgbotapi.ApproveChatJoinRequestConfig{
		ChatConfig: chat,
		UserID:     userID,
	})
	return err
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, msg platform.Message) (int, error) {
	const op = "sendMessage"
	cfg := tgbotapi.NewMessage(chatID, msg.Text)
	cfg.DisableWebPagePreview = true
	if msg.HTML {
		cfg.ParseMode = tgbotapi.ModeHTML
	}
	if markup := keyboard(msg.Keyboard); markup != nil {
		cfg.ReplyMarkup = *markup
	}

	resp, err := c.request(ctx, op, cfg)
	if err != nil {
		return 0, err
	}

	var sent tgbotapi.Message
	if err := json.Unmarshal(resp.Result, &sent); err != nil {
		return 0, platform.NewError(op, platform.KindOther, err)
	}
	return sent.MessageID, nil
}

func (c *Client) EditMessage(ctx context.Context, chatID int64, messageID int, msg platform.Message) error {
	cfg := tgbotapi.NewEditMessageText(chatID, messageID, msg.Text)
	cfg.DisableWebPagePreview = true
	if msg.HTML {
		cfg.ParseMode = tgbotapi.ModeHTML
	}
	cfg.ReplyMarkup = keyboard(msg.Keyboard)

	_, err := c.request(ctx, "editMessageText", cfg)
	return err
}

func (c *Client) AnswerAction(ctx context.Context, actionID, text string, alert bool) error {
	cfg := tgbotapi.NewCallback(actionID, text)
	if alert {
		cfg = tgbotapi.NewCallbackWithAlert(actionID, text)
	}
	_, err := c.request(ctx, "answerCallbackQuery", cfg)
	return err
}

func keyboard(rows [][]platform.Button) *tgbotapi.InlineKeyboardMarkup {
	if len(rows) == 0 {
		return nil
	}
	out := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			if b.URL != "" {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonURL(b.Text, b.URL))
			} else {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Action))
			}
		}
		if len(buttons) > 0 {
			out = append(out, tgbotapi.NewInlineKeyboardRow(buttons...))
		}
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(out...)
	return &markup
}

// chatConfig accepts a numeric id or an @handle.
func chatConfig(op, ref string) (tgbotapi.ChatConfig, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return tgbotapi.ChatConfig{ChatID: id}, nil
	}
	if strings.HasPrefix(ref, "@") && len(ref) > 1 {
		return tgbotapi.ChatConfig{SuperGroupUsername: ref}, nil
	}
	return tgbotapi.ChatConfig{}, platform.NewError(op, platform.KindNotFound, fmt.Errorf("invalid chat reference %q", ref))
}
