package telegram

import (
	"errors"
	"net/http"
	"strings"

	"subgate/internal/platform"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// classify maps a Bot API failure to a platform error kind. The mapping is
// per operation: a 400 on approve means no pending request, while a 403 on
// send means the user never opened a chat with the bot or blocked it.
func classify(op string, err error) error {
	var apiErr *tgbotapi.Error
	if !errors.As(err, &apiErr) {
		return platform.NewError(op, platform.KindOther, err)
	}
	return platform.NewError(op, kindFor(op, apiErr.Code, apiErr.Message), err)
}

func kindFor(op string, code int, message string) platform.Kind {
	msg := strings.ToLower(message)

	switch op {
	case "approveChatJoinRequest":
		switch code {
		case http.StatusBadRequest:
			if strings.Contains(msg, "not enough rights") {
				return platform.KindForbidden
			}
			return platform.KindNotFound
		case http.StatusForbidden:
			return platform.KindForbidden
		}
	case "sendMessage":
		switch code {
		case http.StatusForbidden:
			return platform.KindUnreachable
		case http.StatusBadRequest:
			if strings.Contains(msg, "chat not found") {
				return platform.KindUnreachable
			}
		}
	default:
		switch code {
		case http.StatusForbidden:
			return platform.KindForbidden
		case http.StatusBadRequest:
			if strings.Contains(msg, "not found") || strings.Contains(msg, "user_not_participant") {
				return platform.KindNotFound
			}
			if strings.Contains(msg, "not enough rights") || strings.Contains(msg, "administrator") {
				return platform.KindForbidden
			}
		}
	}
	return platform.KindOther
}
