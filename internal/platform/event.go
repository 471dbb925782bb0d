package platform

// User identifies the sender of an inbound event.
type User struct {
	ID        int64
	Username  string
	FirstName string
}

// InboundMessage is a text message sent to the bot.
type InboundMessage struct {
	ChatID    int64
	MessageID int
	From      User
	Text      string
	// Command is set for "/cmd args" messages, without the slash.
	Command string
	Args    string
	// ForwardedChat is the origin chat of a message forwarded from a channel.
	ForwardedChat *Chat
}

// Action is an inline button press.
type Action struct {
	ID        string
	From      User
	ChatID    int64
	MessageID int
	Data      string
}

// JoinRequest is a pending request to join a chat.
type JoinRequest struct {
	ChatID int64
	From   User
}

// Event is one inbound update. Exactly one payload field is set.
type Event struct {
	ID          int
	Message     *InboundMessage
	Action      *Action
	JoinRequest *JoinRequest
}

// UserID returns the id of whoever triggered the event.
func (e Event) UserID() int64 {
	switch {
	case e.Message != nil:
		return e.Message.From.ID
	case e.Action != nil:
		return e.Action.From.ID
	case e.JoinRequest != nil:
		return e.JoinRequest.From.ID
	}
	return 0
}

// ChatID returns the chat the event happened in.
func (e Event) ChatID() int64 {
	switch {
	case e.Message != nil:
		return e.Message.ChatID
	case e.Action != nil:
		return e.Action.ChatID
	case e.JoinRequest != nil:
		return e.JoinRequest.ChatID
	}
	return 0
}
