package conversation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"subgate/internal/platform"

	"github.com/go-playground/validator/v10"
)

var (
	ErrEmptyInput        = errors.New("empty input")
	ErrInvalidChannelRef = errors.New("invalid channel reference")
	ErrChannelLookup     = errors.New("channel lookup failed")
	ErrInvalidURL        = errors.New("invalid url")
	ErrBotNotAdmin       = errors.New("bot is not an administrator")
	ErrBotNoAccess       = errors.New("bot has no access to the channel")
	ErrRightsCheck       = errors.New("bot rights check failed")
)

const channelIDPrefix = "-100"

// IsValidChannelID reports whether text is a "-100" prefixed numeric chat id.
func IsValidChannelID(text string) bool {
	rest, ok := strings.CutPrefix(text, channelIDPrefix)
	if !ok || rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var validate = validator.New()

// ValidateLinkURL accepts absolute http:// or https:// URLs with a host.
func ValidateLinkURL(raw string) error {
	if err := validate.Var(raw, "required,http_url"); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}
	return nil
}

// ValidateInviteLink accepts anything that looks like a web link.
func ValidateInviteLink(raw string) error {
	if !strings.HasPrefix(raw, "http") {
		return fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}
	return nil
}

// ResolvedChannel is a channel identified by owner input.
type ResolvedChannel struct {
	ChatID   string
	Username string
	Title    string
}

// Name is the display name stored in the draft.
func (r ResolvedChannel) Name() string {
	if r.Title != "" {
		return r.Title
	}
	return "Channel " + r.ChatID
}

// resolveChannel accepts a forwarded channel post, a "-100..." id or an
// @handle. Only the handle form requires a lookup; the id form is enriched
// with a best-effort lookup whose failure is ignored.
func resolveChannel(ctx context.Context, p platform.ChatPlatform, msg platform.InboundMessage) (ResolvedChannel, error) {
	if fc := msg.ForwardedChat; fc != nil {
		return ResolvedChannel{
			ChatID:   strconv.FormatInt(fc.ID, 10),
			Username: fc.Username,
			Title:    fc.Title,
		}, nil
	}

	text := strings.TrimSpace(msg.Text)
	var resolved ResolvedChannel
	switch {
	case text == "":
		return ResolvedChannel{}, ErrEmptyInput
	case IsValidChannelID(text):
		resolved.ChatID = text
	case strings.HasPrefix(text, "@"):
		chat, err := p.GetChat(ctx, text)
		if err != nil {
			return ResolvedChannel{}, fmt.Errorf("%w: %w", ErrChannelLookup, err)
		}
		resolved = ResolvedChannel{
			ChatID:   strconv.FormatInt(chat.ID, 10),
			Username: chat.Username,
			Title:    chat.Title,
		}
	default:
		return ResolvedChannel{}, ErrInvalidChannelRef
	}

	if resolved.Title == "" || resolved.Username == "" {
		if chat, err := p.GetChat(ctx, resolved.ChatID); err == nil {
			if resolved.Username == "" {
				resolved.Username = chat.Username
			}
			if resolved.Title == "" {
				resolved.Title = chat.Title
			}
		}
	}
	return resolved, nil
}

// checkBotRights requires administrator rights for a main channel and at
// least membership for a secondary one.
func checkBotRights(ctx context.Context, p platform.ChatPlatform, chatID string, requireAdmin bool) error {
	status, err := p.GetChatMember(ctx, chatID, p.BotID())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRightsCheck, err)
	}
	if requireAdmin {
		if !status.IsAdmin() {
			return ErrBotNotAdmin
		}
		return nil
	}
	if !status.IsAdmin() && status != platform.StatusMember {
		return ErrBotNoAccess
	}
	return nil
}
