// Package platformtest provides an in-memory ChatPlatform for tests.
package platformtest

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"subgate/internal/platform"
)

// Sent records one outbound message or edit.
type Sent struct {
	ChatID    int64
	MessageID int
	Message   platform.Message
}

// Answer records one acknowledged button press.
type Answer struct {
	ActionID string
	Text     string
	Alert    bool
}

// Approval records one approveJoinRequest call.
type Approval struct {
	ChatID string
	UserID int64
}

// Fake is a scriptable ChatPlatform. The zero value is not usable; call New.
type Fake struct {
	mu sync.Mutex

	botID       int64
	botUsername string

	members       map[string]map[int64]platform.MemberStatus
	memberErrs    map[string]error
	chats         map[string]platform.Chat
	unreachable   map[int64]bool
	approveErr    error
	inviteErr     error
	inviteCounter int
	nextMessageID int

	Sent      []Sent
	Edits     []Sent
	Answers   []Answer
	Approvals []Approval
	Invites   []string

	// Outputs interleaves sends and edits in call order.
	Outputs []Sent
}

var _ platform.ChatPlatform = (*Fake)(nil)

func New(botID int64, botUsername string) *Fake {
	return &Fake{
		botID:       botID,
		botUsername: botUsername,
		members:     map[string]map[int64]platform.MemberStatus{},
		memberErrs:  map[string]error{},
		chats:       map[string]platform.Chat{},
		unreachable: map[int64]bool{},
	}
}

// SetMember sets userID's status in chatID.
func (f *Fake) SetMember(chatID string, userID int64, status platform.MemberStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.members[chatID] == nil {
		f.members[chatID] = map[int64]platform.MemberStatus{}
	}
	f.members[chatID][userID] = status
}

// FailMembership makes every membership query on chatID fail with err.
func (f *Fake) FailMembership(chatID string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.memberErrs[chatID] = err
}

// AddChat registers a chat resolvable by id and, when set, by @username.
func (f *Fake) AddChat(chat platform.Chat) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chats[strconv.FormatInt(chat.ID, 10)] = chat
	if chat.Username != "" {
		f.chats["@"+chat.Username] = chat
	}
}

// SetUnreachable makes SendMessage to chatID fail as KindUnreachable.
func (f *Fake) SetUnreachable(chatID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unreachable[chatID] = true
}

// SetApproveError makes ApproveJoinRequest fail with err.
func (f *Fake) SetApproveError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.approveErr = err
}

// SetInviteError makes CreateInviteLink fail with err.
func (f *Fake) SetInviteError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inviteErr = err
}

func (f *Fake) BotID() int64        { return f.botID }
func (f *Fake) BotUsername() string { return f.botUsername }

func (f *Fake) GetChatMember(_ context.Context, chatID string, userID int64) (platform.MemberStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.memberErrs[chatID]; err != nil {
		return "", err
	}
	if status, ok := f.members[chatID][userID]; ok {
		return status, nil
	}
	return platform.StatusLeft, nil
}

func (f *Fake) GetChat(_ context.Context, ref string) (platform.Chat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	chat, ok := f.chats[ref]
	if !ok {
		return platform.Chat{}, platform.NewError("getChat", platform.KindNotFound, fmt.Errorf("chat %s not found", ref))
	}
	return chat, nil
}

func (f *Fake) CreateInviteLink(_ context.Context, chatID string, joinRequest bool) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inviteErr != nil {
		return "", f.inviteErr
	}
	f.inviteCounter++
	kind := "invite"
	if joinRequest {
		kind = "request"
	}
	link := fmt.Sprintf("https://t.me/+%s-%s-%d", kind, chatID, f.inviteCounter)
	f.Invites = append(f.Invites, link)
	return link, nil
}

func (f *Fake) ApproveJoinRequest(_ context.Context, chatID string, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.approveErr != nil {
		return f.approveErr
	}
	f.Approvals = append(f.Approvals, Approval{ChatID: chatID, UserID: userID})
	return nil
}

func (f *Fake) SendMessage(_ context.Context, chatID int64, msg platform.Message) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unreachable[chatID] {
		return 0, platform.NewError("sendMessage", platform.KindUnreachable, errors.New("bot can't initiate conversation"))
	}
	f.nextMessageID++
	out := Sent{ChatID: chatID, MessageID: f.nextMessageID, Message: msg}
	f.Sent = append(f.Sent, out)
	f.Outputs = append(f.Outputs, out)
	return f.nextMessageID, nil
}

func (f *Fake) EditMessage(_ context.Context, chatID int64, messageID int, msg platform.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := Sent{ChatID: chatID, MessageID: messageID, Message: msg}
	f.Edits = append(f.Edits, out)
	f.Outputs = append(f.Outputs, out)
	return nil
}

func (f *Fake) AnswerAction(_ context.Context, actionID, text string, alert bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Answers = append(f.Answers, Answer{ActionID: actionID, Text: text, Alert: alert})
	return nil
}

// LastSent returns the most recent outbound message, or false if none.
func (f *Fake) LastSent() (Sent, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Sent) == 0 {
		return Sent{}, false
	}
	return f.Sent[len(f.Sent)-1], true
}

// LastOutput returns the most recent message sent or edited.
func (f *Fake) LastOutput() (Sent, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Outputs) == 0 {
		return Sent{}, false
	}
	return f.Outputs[len(f.Outputs)-1], true
}
