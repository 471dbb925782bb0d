// Package platform describes the chat platform capability consumed by the bot core.
package platform

import "context"

// MemberStatus is a user's standing in a chat.
type MemberStatus string

const (
	StatusCreator       MemberStatus = "creator"
	StatusAdministrator MemberStatus = "administrator"
	StatusMember        MemberStatus = "member"
	StatusRestricted    MemberStatus = "restricted"
	StatusLeft          MemberStatus = "left"
	StatusKicked        MemberStatus = "kicked"
)

// Present reports whether the status counts as being subscribed.
func (s MemberStatus) Present() bool {
	return s != StatusLeft && s != StatusKicked && s != ""
}

// IsAdmin reports administrator or creator rights.
func (s MemberStatus) IsAdmin() bool {
	return s == StatusAdministrator || s == StatusCreator
}

// Chat is the subset of chat metadata the bot needs.
type Chat struct {
	ID       int64
	Username string
	Title    string
}

// Button is one inline action. Exactly one of URL or Action is set.
type Button struct {
	Text   string
	URL    string
	Action string
}

// Message is outbound content with an optional inline keyboard.
type Message struct {
	Text     string
	HTML     bool
	Keyboard [][]Button
}

// Row is a convenience for building one keyboard row.
func Row(buttons ...Button) []Button {
	return buttons
}

// ChatPlatform is the external messaging service. Every method may fail with *Error.
type ChatPlatform interface {
	BotID() int64
	BotUsername() string

	// GetChatMember accepts a numeric chat id or an @handle.
	GetChatMember(ctx context.Context, chatID string, userID int64) (MemberStatus, error)
	// GetChat resolves an @handle or numeric id.
	GetChat(ctx context.Context, ref string) (Chat, error)
	// CreateInviteLink mints a new invite. With joinRequest set, joining through
	// the link produces a pending join request instead of membership.
	CreateInviteLink(ctx context.Context, chatID string, joinRequest bool) (string, error)
	ApproveJoinRequest(ctx context.Context, chatID string, userID int64) error

	SendMessage(ctx context.Context, chatID int64, msg Message) (int, error)
	EditMessage(ctx context.Context, chatID int64, messageID int, msg Message) error
	// AnswerAction acknowledges a button press, optionally as a modal alert.
	AnswerAction(ctx context.Context, actionID, text string, alert bool) error
}
