// Package notifier tells operators about newly registered users.
package notifier

import (
	"context"
	"fmt"

	"subgate/internal/observability"
	"subgate/internal/platform"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=admin.go -destination=mocks_test.go -package=notifier

// Sender delivers a text message to a chat.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, msg platform.Message) (int, error)
}

// EventPublisher receives user.registered notifications.
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, userID int64) error
}

// AdminNotifier fans a "new user" message out to the configured admin chats and
// publishes a user.registered event. Delivery failures are logged and dropped.
type AdminNotifier struct {
	sender       Sender
	adminChatIDs []int64
	publisher    EventPublisher
	logger       *observability.Logger
}

func NewAdminNotifier(sender Sender, adminChatIDs []int64, publisher EventPublisher, logger *observability.Logger) *AdminNotifier {
	return &AdminNotifier{
		sender:       sender,
		adminChatIDs: adminChatIDs,
		publisher:    publisher,
		logger:       logger,
	}
}

// NotifyNewUser must only be called for a user that was just inserted.
func (n *AdminNotifier) NotifyNewUser(ctx context.Context, user platform.User) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "new_user_id", Value: user.ID})

	msg := platform.Message{Text: newUserText(user)}
	for _, chatID := range n.adminChatIDs {
		if _, err := n.sender.SendMessage(ctx, chatID, msg); err != nil {
			n.logger.WarnWithError(observability.WithFields(ctx,
				observability.Field{Key: "admin_chat_id", Value: chatID},
			), "failed to notify admin about new user", err)
		}
	}

	if n.publisher != nil {
		if err := n.publisher.PublishUserRegistered(ctx, user.ID); err != nil {
			n.logger.WarnWithError(ctx, "failed to publish user registered event", err)
		}
	}
}

func newUserText(user platform.User) string {
	username := "no username"
	if user.Username != "" {
		username = "@" + user.Username
	}
	return fmt.Sprintf("New user! ID: %d\n%s", user.ID, username)
}
