// Package draft holds each owner's in-progress campaign and commits it to storage.
package draft

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"subgate/internal/observability"
	"subgate/internal/store"
)

var (
	ErrNoMainChannel    = errors.New("main channel is not set")
	ErrItemNotFound     = errors.New("item not found")
	ErrCampaignNotFound = errors.New("campaign not found")
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=engine.go -destination=mocks_test.go -package=draft

// CampaignStore is the persistence the engine commits through.
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CampaignParams) (int64, error)
	UpdateCampaign(ctx context.Context, id int64, params store.CampaignParams) error
	ClearCampaignItems(ctx context.Context, campaignID int64) error
	InsertChannel(ctx context.Context, params store.InsertChannelParams) (int64, error)
	InsertLink(ctx context.Context, ownerID int64, name, url string) (int64, error)
	AddCampaignItem(ctx context.Context, campaignID int64, itemType store.ItemType, refID int64, position int) error
	GetCampaign(ctx context.Context, id int64) (store.Campaign, error)
	GetCampaignItems(ctx context.Context, campaignID int64) ([]store.ResolvedItem, error)
}

// EventPublisher receives campaign.saved notifications.
type EventPublisher interface {
	PublishCampaignSaved(ctx context.Context, ownerID, campaignID int64, itemCount int, edited bool) error
}

// SessionID identifies one owner's conversation with the bot.
type SessionID struct {
	ChatID int64
	UserID int64
}

// MainChannel is the validated main-channel tuple of a draft.
type MainChannel struct {
	ChatID   string
	Name     string
	Username *string
	JoinLink string
}

// Title returns the best human label for the main channel.
func (m MainChannel) Title() string {
	return store.Campaign{MainChatID: m.ChatID, MainName: m.Name, MainUsername: m.Username}.Title()
}

// Draft is a campaign under construction. The zero value is the empty draft.
type Draft struct {
	Main  *MainChannel
	Items []store.GateItem
}

// Empty reports whether the draft has neither a main channel nor items.
func (d Draft) Empty() bool {
	return d.Main == nil && len(d.Items) == 0
}

func (d Draft) clone() Draft {
	out := Draft{Items: append([]store.GateItem(nil), d.Items...)}
	if d.Main != nil {
		m := *d.Main
		out.Main = &m
	}
	return out
}

type session struct {
	draft Draft
	// editing is the campaign id being edited in place, 0 when creating.
	editing int64
}

// Engine keeps one draft per session. Drafts live only in memory.
type Engine struct {
	mu        sync.Mutex
	sessions  map[SessionID]*session
	store     CampaignStore
	publisher EventPublisher
	logger    *observability.Logger
}

func New(campaignStore CampaignStore, publisher EventPublisher, logger *observability.Logger) *Engine {
	return &Engine{
		sessions:  make(map[SessionID]*session),
		store:     campaignStore,
		publisher: publisher,
		logger:    logger,
	}
}

// session returns the session for sid, creating it on first use. Callers hold e.mu.
func (e *Engine) session(sid SessionID) *session {
	s, ok := e.sessions[sid]
	if !ok {
		s = &session{}
		e.sessions[sid] = s
	}
	return s
}

// ResetDraft empties the draft. Edit mode is left untouched.
func (e *Engine) ResetDraft(sid SessionID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session(sid).draft = Draft{}
}

// Discard empties the draft and leaves edit mode.
func (e *Engine) Discard(sid SessionID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.sessions, sid)
}

// Draft returns a copy of the session's draft.
func (e *Engine) Draft(sid SessionID) Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s, ok := e.sessions[sid]; ok {
		return s.draft.clone()
	}
	return Draft{}
}

// Editing returns the campaign id being edited, if any.
func (e *Engine) Editing(sid SessionID) (int64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s, ok := e.sessions[sid]; ok && s.editing != 0 {
		return s.editing, true
	}
	return 0, false
}

// SetMain stores a main channel whose bot rights and join-request link were
// already confirmed by the caller.
func (e *Engine) SetMain(sid SessionID, main MainChannel) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session(sid).draft.Main = &main
}

// EditMain applies fn to the main channel.
func (e *Engine) EditMain(sid SessionID, fn func(*MainChannel)) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[sid]
	if !ok || s.draft.Main == nil {
		return ErrNoMainChannel
	}
	m := *s.draft.Main
	fn(&m)
	s.draft.Main = &m
	return nil
}

// DropMain removes the main channel together with every item.
func (e *Engine) DropMain(sid SessionID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session(sid).draft = Draft{}
}

// AppendChannel adds a channel step at the end of the list.
func (e *Engine) AppendChannel(sid SessionID, ch store.ChannelItem) error {
	return e.appendItem(sid, ch)
}

// AppendLink adds a link step at the end of the list.
func (e *Engine) AppendLink(sid SessionID, link store.LinkItem) error {
	return e.appendItem(sid, link)
}

func (e *Engine) appendItem(sid SessionID, item store.GateItem) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[sid]
	if !ok || s.draft.Main == nil {
		return ErrNoMainChannel
	}
	s.draft.Items = append(s.draft.Items, item)
	return nil
}

// Item returns the item at index.
func (e *Engine) Item(sid SessionID, index int) (store.GateItem, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[sid]
	if !ok || index < 0 || index >= len(s.draft.Items) {
		return nil, ErrItemNotFound
	}
	return s.draft.Items[index], nil
}

// EditChannel applies fn to the channel at index. A link at that index is ErrItemNotFound.
func (e *Engine) EditChannel(sid SessionID, index int, fn func(*store.ChannelItem)) error {
	return editItem(e, sid, index, fn)
}

// EditLink applies fn to the link at index. A channel at that index is ErrItemNotFound.
func (e *Engine) EditLink(sid SessionID, index int, fn func(*store.LinkItem)) error {
	return editItem(e, sid, index, fn)
}

func editItem[T store.ChannelItem | store.LinkItem](e *Engine, sid SessionID, index int, fn func(*T)) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[sid]
	if !ok || index < 0 || index >= len(s.draft.Items) {
		return ErrItemNotFound
	}
	item, ok := s.draft.Items[index].(T)
	if !ok {
		return ErrItemNotFound
	}
	fn(&item)
	s.draft.Items[index] = any(item).(store.GateItem)
	return nil
}

// LoadFromCampaign replaces the draft with a stored campaign and enters edit
// mode for it. Only the campaign's owner may load it.
func (e *Engine) LoadFromCampaign(ctx context.Context, sid SessionID, campaignID int64) error {
	campaign, err := e.store.GetCampaign(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		return fmt.Errorf("failed to load campaign: %w", err)
	}
	if campaign.OwnerID != sid.UserID {
		return ErrCampaignNotFound
	}

	resolved, err := e.store.GetCampaignItems(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("failed to load campaign items: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.session(sid)
	s.draft = Draft{
		Main: &MainChannel{
			ChatID:   campaign.MainChatID,
			Name:     campaign.MainName,
			Username: campaign.MainUsername,
			JoinLink: campaign.MainJoinLink,
		},
		Items: store.Items(resolved),
	}
	s.editing = campaignID
	return nil
}

// Finalize commits the draft. In edit mode the existing campaign is updated
// and its item list replaced; otherwise a new campaign is created. Items get
// dense 1-based positions in draft order, each backed by a fresh channel or
// link row. On success the draft is reset and edit mode cleared. On failure
// the draft is kept and rows already written stay in place.
func (e *Engine) Finalize(ctx context.Context, sid SessionID, ownerID int64) (int64, error) {
	var (
		d       Draft
		editing int64
	)
	e.mu.Lock()
	if s, ok := e.sessions[sid]; ok {
		d = s.draft.clone()
		editing = s.editing
	}
	e.mu.Unlock()

	if d.Main == nil {
		return 0, ErrNoMainChannel
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "owner_id", Value: ownerID},
		observability.Field{Key: "item_count", Value: len(d.Items)},
	)

	params := store.CampaignParams{
		OwnerID:      ownerID,
		MainChatID:   d.Main.ChatID,
		MainName:     d.Main.Name,
		MainUsername: d.Main.Username,
		MainJoinLink: d.Main.JoinLink,
	}

	campaignID := editing
	if editing != 0 {
		if err := e.store.UpdateCampaign(ctx, editing, params); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return 0, ErrCampaignNotFound
			}
			return 0, fmt.Errorf("failed to update campaign: %w", err)
		}
		if err := e.store.ClearCampaignItems(ctx, editing); err != nil {
			return 0, fmt.Errorf("failed to clear campaign items: %w", err)
		}
	} else {
		id, err := e.store.CreateCampaign(ctx, params)
		if err != nil {
			return 0, fmt.Errorf("failed to create campaign: %w", err)
		}
		campaignID = id
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	for i, item := range d.Items {
		if err := e.insertItem(ctx, campaignID, ownerID, item, i+1); err != nil {
			e.logger.Error(ctx, "finalize stopped mid-way, campaign has a partial item set", err)
			return 0, err
		}
	}

	e.mu.Lock()
	if cur, ok := e.sessions[sid]; ok {
		cur.draft = Draft{}
		cur.editing = 0
	}
	e.mu.Unlock()

	if e.publisher != nil {
		if err := e.publisher.PublishCampaignSaved(ctx, ownerID, campaignID, len(d.Items), editing != 0); err != nil {
			e.logger.WarnWithError(ctx, "failed to publish campaign saved event", err)
		}
	}
	e.logger.Info(ctx, "campaign saved")

	return campaignID, nil
}

func (e *Engine) insertItem(ctx context.Context, campaignID, ownerID int64, item store.GateItem, position int) error {
	var (
		refID int64
		err   error
	)
	switch it := item.(type) {
	case store.ChannelItem:
		refID, err = e.store.InsertChannel(ctx, store.InsertChannelParams{
			OwnerID:    ownerID,
			ChatID:     it.ChatID,
			Username:   it.Username,
			Name:       it.Name,
			InviteLink: it.InviteLink,
		})
	case store.LinkItem:
		refID, err = e.store.InsertLink(ctx, ownerID, it.Name, it.URL)
	default:
		return fmt.Errorf("unsupported gate item %T", item)
	}
	if err != nil {
		return fmt.Errorf("failed to insert %s item at position %d: %w", item.Type(), position, err)
	}

	if err := e.store.AddCampaignItem(ctx, campaignID, item.Type(), refID, position); err != nil {
		return fmt.Errorf("failed to add campaign item at position %d: %w", position, err)
	}
	return nil
}
