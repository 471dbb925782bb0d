package bot

import (
	"errors"

	authProcessor "subgate/internal/auth/processor"
	"subgate/internal/draft"
	joinrequest "subgate/internal/joinrequest/processor"
	"subgate/internal/platform"
)

var errAPIDisabled = authProcessor.ErrAuthDisabled

// userMessage turns a handler error into plain text for the chat. Internal
// details never reach the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, joinrequest.ErrCampaignNotFound),
		errors.Is(err, draft.ErrCampaignNotFound):
		return "Campaign not found."
	case errors.Is(err, draft.ErrNoMainChannel):
		return "Add the main channel first."
	case errors.Is(err, draft.ErrItemNotFound):
		return "Item not found."
	case errors.Is(err, authProcessor.ErrAuthDisabled):
		return "The owner API is not enabled on this bot."
	case platform.IsKind(err, platform.KindForbidden):
		return "The bot lacks the rights for this action."
	default:
		return "Something went wrong. Please try again later."
	}
}

// isExpected reports errors that are a normal answer rather than a fault.
func isExpected(err error) bool {
	return errors.Is(err, joinrequest.ErrCampaignNotFound) ||
		errors.Is(err, draft.ErrCampaignNotFound) ||
		errors.Is(err, authProcessor.ErrAuthDisabled)
}
