package store

import "time"

// Campaign is one subscription-gate definition for a main channel.
type Campaign struct {
	ID           int64     `db:"id" json:"id"`
	OwnerID      int64     `db:"owner_id" json:"owner_id"`
	MainChatID   string    `db:"main_chat_id" json:"main_chat_id"`
	MainName     string    `db:"main_name" json:"main_name"`
	MainUsername *string   `db:"main_username" json:"main_username,omitempty"`
	MainJoinLink string    `db:"main_join_link" json:"main_join_link"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Title returns the best human label for the main channel.
func (c Campaign) Title() string {
	return displayName(c.MainName, c.MainUsername, c.MainChatID)
}

// CampaignSummary is the row shape returned by owner listings.
type CampaignSummary struct {
	ID           int64     `db:"id" json:"id"`
	MainChatID   string    `db:"main_chat_id" json:"main_chat_id"`
	MainName     string    `db:"main_name" json:"main_name"`
	MainUsername *string   `db:"main_username" json:"main_username,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func (c CampaignSummary) Title() string {
	return displayName(c.MainName, c.MainUsername, c.MainChatID)
}

// GateChannel is a secondary channel a user must join.
type GateChannel struct {
	ID         int64   `db:"id" json:"id"`
	OwnerID    int64   `db:"owner_id" json:"owner_id"`
	ChatID     string  `db:"chat_id" json:"chat_id"`
	Username   *string `db:"username" json:"username,omitempty"`
	Name       string  `db:"name" json:"name"`
	InviteLink string  `db:"invite_link" json:"invite_link"`
}

// GateLink is an external URL the user is asked to visit.
type GateLink struct {
	ID      int64  `db:"id" json:"id"`
	OwnerID int64  `db:"owner_id" json:"owner_id"`
	Name    string `db:"name" json:"name"`
	URL     string `db:"url" json:"url"`
}

// CampaignItem is the ordered association of a campaign to a channel or link row.
type CampaignItem struct {
	ID         int64    `db:"id" json:"id"`
	CampaignID int64    `db:"campaign_id" json:"campaign_id"`
	ItemType   ItemType `db:"item_type" json:"item_type"`
	RefID      int64    `db:"ref_id" json:"ref_id"`
	Position   int      `db:"position" json:"position"`
}

// GateItem is one step of a campaign checklist: either a ChannelItem or a LinkItem.
type GateItem interface {
	Type() ItemType
	Title() string
	isGateItem()
}

// ChannelItem is the resolved view of a channel gate step.
type ChannelItem struct {
	ChatID     string  `json:"chat_id"`
	Name       string  `json:"name"`
	Username   *string `json:"username,omitempty"`
	InviteLink string  `json:"invite_link"`
}

func (ChannelItem) Type() ItemType { return ItemTypeChannel }
func (ChannelItem) isGateItem()    {}

func (c ChannelItem) Title() string {
	return displayName(c.Name, c.Username, c.ChatID)
}

// SubscribeURL returns the invite link, or the public t.me address, or "" when neither exists.
func (c ChannelItem) SubscribeURL() string {
	if c.InviteLink != "" {
		return c.InviteLink
	}
	if c.Username != nil && *c.Username != "" {
		return "https://t.me/" + *c.Username
	}
	return ""
}

// LinkItem is the resolved view of a link gate step.
type LinkItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (LinkItem) Type() ItemType  { return ItemTypeLink }
func (LinkItem) isGateItem()     {}
func (l LinkItem) Title() string { return l.Name }

// User is the minimal record of everyone who has ever contacted the bot.
type User struct {
	UserID    int64     `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func displayName(name string, username *string, chatID string) string {
	if name != "" {
		return name
	}
	if username != nil && *username != "" {
		return *username
	}
	return chatID
}

// StringPtr returns nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
