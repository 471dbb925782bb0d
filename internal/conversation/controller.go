// Package conversation drives the owner's campaign-building dialogue: which
// free-text input is expected next, how it is validated, and which menu
// follows.
package conversation

//go:generate go run go.uber.org/mock/mockgen@latest -source=controller.go -destination=mocks_test.go -package=conversation

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"

	"subgate/internal/draft"
	"subgate/internal/observability"
	"subgate/internal/platform"
	"subgate/internal/store"
)

// CampaignStore is the persistence used by the owner flow, including the
// writes the draft engine commits through.
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CampaignParams) (int64, error)
	UpdateCampaign(ctx context.Context, id int64, params store.CampaignParams) error
	ClearCampaignItems(ctx context.Context, campaignID int64) error
	InsertChannel(ctx context.Context, params store.InsertChannelParams) (int64, error)
	InsertLink(ctx context.Context, ownerID int64, name, url string) (int64, error)
	AddCampaignItem(ctx context.Context, campaignID int64, itemType store.ItemType, refID int64, position int) error
	GetCampaign(ctx context.Context, id int64) (store.Campaign, error)
	GetCampaignItems(ctx context.Context, campaignID int64) ([]store.ResolvedItem, error)
	ListCampaignsByOwner(ctx context.Context, ownerID int64) ([]store.CampaignSummary, error)
}

// notice is the acknowledgement shown for a button press.
type notice struct {
	text  string
	alert bool
}

func alert(text string) notice { return notice{text: text, alert: true} }

// Controller holds the per-session input state machine. Drafts themselves live
// in the draft engine.
type Controller struct {
	mu     sync.Mutex
	inputs map[draft.SessionID]input

	drafts    *draft.Engine
	campaigns CampaignStore
	platform  platform.ChatPlatform
	logger    *observability.Logger
}

func New(drafts *draft.Engine, campaigns CampaignStore, chatPlatform platform.ChatPlatform, logger *observability.Logger) *Controller {
	return &Controller{
		inputs:    make(map[draft.SessionID]input),
		drafts:    drafts,
		campaigns: campaigns,
		platform:  chatPlatform,
		logger:    logger,
	}
}

// Start shows the main menu. It discards the draft, leaves edit mode and
// clears any pending input.
func (c *Controller) Start(ctx context.Context, sid draft.SessionID) error {
	c.drafts.Discard(sid)
	c.clearInput(sid)
	return c.send(ctx, sid, mainMenu())
}

// HandleAction runs an owner button press. It reports false for payloads that
// are not owner actions.
func (c *Controller) HandleAction(ctx context.Context, sid draft.SessionID, a platform.Action) (bool, error) {
	verb, arg, ok := parseAction(a.Data)
	if !ok {
		return false, nil
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "action", Value: verb})

	n, err := c.dispatchAction(ctx, sid, a, verb, arg)
	if ackErr := c.platform.AnswerAction(ctx, a.ID, n.text, n.alert); ackErr != nil {
		c.logger.WarnWithError(ctx, "failed to answer action", ackErr)
	}
	return true, err
}

func (c *Controller) dispatchAction(ctx context.Context, sid draft.SessionID, a platform.Action, verb string, arg int64) (notice, error) {
	switch verb {
	case actionNoop:
		return notice{}, nil
	case actionBackToStart:
		c.drafts.Discard(sid)
		c.clearInput(sid)
		return notice{}, c.edit(ctx, sid, a, mainMenu())
	case actionNewCampaign:
		return notice{}, c.newCampaign(ctx, sid, a)
	case actionAddMain:
		c.setInput(sid, input{state: StateAwaitMainChannel})
		return notice{}, c.send(ctx, sid, prompt(
			"📩 Send the channel ID (for example <code>-1001234567890</code>), <code>@username</code> or forward a post from that channel.",
			platform.Row(platform.Button{Text: "⏪ Cancel", Action: actionBackToStart}),
		))
	case actionBackToMenu:
		c.clearInput(sid)
		return notice{}, c.edit(ctx, sid, a, editMenu(
			"⚙️ <b>Editing campaign</b>\nPick what to change or add new items.", c.drafts.Draft(sid)))
	case actionEditMain:
		d := c.drafts.Draft(sid)
		if d.Main == nil {
			return alert("Choose the main channel first."), nil
		}
		return notice{}, c.edit(ctx, sid, a, mainChannelMenu(*d.Main))
	case actionRenameMain:
		if c.drafts.Draft(sid).Main == nil {
			return alert("Choose the main channel first."), nil
		}
		c.setInput(sid, input{state: StateAwaitMainRename})
		return notice{}, c.send(ctx, sid, prompt("✍️ Enter the new display name of the main channel:"))
	case actionRelinkMain:
		return c.relinkMain(ctx, sid)
	case actionDropMain:
		c.drafts.DropMain(sid)
		if err := c.send(ctx, sid, prompt("🗑️ Main channel removed from the draft. Start over: choose a new main channel.")); err != nil {
			return notice{}, err
		}
		return notice{}, c.newCampaign(ctx, sid, a)
	case actionAddSecondary:
		if c.drafts.Draft(sid).Main == nil {
			return alert("Choose the main channel first."), nil
		}
		c.setInput(sid, input{state: StateAwaitSecondaryChannel})
		return notice{}, c.send(ctx, sid, prompt(
			"📩 Send the channel ID (<code>-100...</code>) or <code>@username</code>, or forward a post from the channel.\n"+
				"The bot must be an admin or a member to check subscriptions.",
			platform.Row(platform.Button{Text: "➕ Add bot to channel", URL: addBotURL(c.platform.BotUsername())}),
		))
	case actionAddLink:
		if c.drafts.Draft(sid).Main == nil {
			return alert("Choose the main channel first."), nil
		}
		c.setInput(sid, input{state: StateAwaitLinkName})
		return notice{}, c.send(ctx, sid, prompt("🖊️ Enter the link name (as users will see it):"))
	case prefixEditItem:
		item, err := c.drafts.Item(sid, int(arg))
		if err != nil {
			return alert("Item not found."), nil
		}
		return notice{}, c.edit(ctx, sid, a, itemMenu(int(arg), item))
	case prefixRenameChannel:
		c.setInput(sid, input{state: StateAwaitChannelRename, index: int(arg)})
		return notice{}, c.send(ctx, sid, prompt("✍️ Enter the new channel name (as users will see it):"))
	case prefixRelinkChannel:
		c.setInput(sid, input{state: StateAwaitChannelLink, index: int(arg)})
		return notice{}, c.send(ctx, sid, prompt("🔗 Paste the new invite link for the channel:"))
	case prefixRelinkLink:
		c.setInput(sid, input{state: StateAwaitLinkURLUpdate, index: int(arg)})
		return notice{}, c.send(ctx, sid, prompt("🔗 Paste the new URL for this link:"))
	case actionFinalize:
		return c.finalize(ctx, sid, a)
	case actionMyCampaigns:
		return c.myCampaigns(ctx, sid, a)
	case prefixViewCampaign:
		return c.viewCampaign(ctx, sid, a, arg)
	case prefixEditCampaign:
		return c.editCampaign(ctx, sid, a, arg)
	}
	return notice{}, fmt.Errorf("unhandled action %q", verb)
}

func (c *Controller) newCampaign(ctx context.Context, sid draft.SessionID, a platform.Action) error {
	c.drafts.Discard(sid)
	c.clearInput(sid)
	return c.edit(ctx, sid, a, newCampaignScreen(c.platform.BotUsername()))
}

func (c *Controller) relinkMain(ctx context.Context, sid draft.SessionID) (notice, error) {
	d := c.drafts.Draft(sid)
	if d.Main == nil {
		return alert("Main channel is not selected."), nil
	}
	link, err := c.platform.CreateInviteLink(ctx, d.Main.ChatID, true)
	if err != nil {
		c.logger.WarnWithError(ctx, "failed to regenerate join-request link", err)
		return notice{}, c.send(ctx, sid, prompt("❌ Could not update the link: "+escape(err)))
	}
	if err := c.drafts.EditMain(sid, func(m *draft.MainChannel) { m.JoinLink = link }); err != nil {
		return alert("Main channel is not selected."), nil
	}
	if err := c.send(ctx, sid, prompt("🔗 A new join-request link for the main channel was created.")); err != nil {
		return notice{}, err
	}
	return notice{}, c.send(ctx, sid, platform.Message{Text: link})
}

func (c *Controller) finalize(ctx context.Context, sid draft.SessionID, a platform.Action) (notice, error) {
	d := c.drafts.Draft(sid)
	id, err := c.drafts.Finalize(ctx, sid, sid.UserID)
	switch {
	case errors.Is(err, draft.ErrNoMainChannel):
		return alert("Add the main channel first."), nil
	case errors.Is(err, draft.ErrCampaignNotFound):
		return notice{}, c.send(ctx, sid, prompt("❌ The campaign you were editing no longer exists."))
	case err != nil:
		c.logger.Error(ctx, "failed to save campaign", err)
		return notice{}, c.send(ctx, sid, prompt("❌ Something went wrong while saving the campaign: "+escape(err)))
	}
	return notice{}, c.edit(ctx, sid, a, finalizedScreen(c.platform.BotUsername(), id, d.Main.JoinLink))
}

func (c *Controller) myCampaigns(ctx context.Context, sid draft.SessionID, a platform.Action) (notice, error) {
	campaigns, err := c.campaigns.ListCampaignsByOwner(ctx, sid.UserID)
	if err != nil {
		return notice{}, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return notice{}, c.edit(ctx, sid, a, campaignList(campaigns))
}

// ownedCampaign loads a campaign only if it belongs to the session's user.
func (c *Controller) ownedCampaign(ctx context.Context, sid draft.SessionID, id int64) (store.Campaign, bool, error) {
	campaign, err := c.campaigns.GetCampaign(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, false, nil
		}
		return store.Campaign{}, false, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.OwnerID != sid.UserID {
		return store.Campaign{}, false, nil
	}
	return campaign, true, nil
}

func (c *Controller) viewCampaign(ctx context.Context, sid draft.SessionID, a platform.Action, id int64) (notice, error) {
	campaign, ok, err := c.ownedCampaign(ctx, sid, id)
	if err != nil {
		return notice{}, err
	}
	if !ok {
		return alert("Campaign not found."), nil
	}
	resolved, err := c.campaigns.GetCampaignItems(ctx, id)
	if err != nil {
		return notice{}, fmt.Errorf("failed to get campaign items: %w", err)
	}
	return notice{}, c.edit(ctx, sid, a, campaignView(c.platform.BotUsername(), campaign, store.Items(resolved)))
}

func (c *Controller) editCampaign(ctx context.Context, sid draft.SessionID, a platform.Action, id int64) (notice, error) {
	if err := c.drafts.LoadFromCampaign(ctx, sid, id); err != nil {
		if errors.Is(err, draft.ErrCampaignNotFound) {
			return alert("Campaign not found."), nil
		}
		return notice{}, err
	}
	c.clearInput(sid)
	return notice{}, c.edit(ctx, sid, a, editMenu(
		fmt.Sprintf("⚙️ <b>Editing campaign #%d</b>\nChanges are saved when you press «Done».", id),
		c.drafts.Draft(sid)))
}

// HandleText feeds free-text input to the pending state. It reports false when
// the session is not waiting for input.
func (c *Controller) HandleText(ctx context.Context, sid draft.SessionID, msg platform.InboundMessage) (bool, error) {
	in := c.input(sid)
	if in.state == StateIdle {
		return false, nil
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "input_state", Value: in.state.String()})
	text := strings.TrimSpace(msg.Text)

	switch in.state {
	case StateAwaitMainChannel:
		return true, c.receiveMainChannel(ctx, sid, msg)
	case StateAwaitSecondaryChannel:
		return true, c.receiveSecondaryChannel(ctx, sid, msg)
	case StateAwaitLinkName:
		if text == "" {
			return true, c.reply(ctx, sid, "The name cannot be empty.")
		}
		c.setInput(sid, input{state: StateAwaitLinkURL, linkName: text})
		return true, c.reply(ctx, sid, "🔗 Now send the URL itself (starting with http:// or https://).")
	case StateAwaitLinkURL:
		if err := ValidateLinkURL(text); err != nil {
			return true, c.reply(ctx, sid, "The URL must start with http:// or https://")
		}
		if err := c.drafts.AppendLink(sid, store.LinkItem{Name: in.linkName, URL: text}); err != nil {
			return true, c.abandonInput(ctx, sid, "Choose the main channel first.")
		}
		return true, c.applied(ctx, sid, "✅ Link added.")
	case StateAwaitMainRename:
		if text == "" {
			return true, c.reply(ctx, sid, "The name cannot be empty.")
		}
		if err := c.drafts.EditMain(sid, func(m *draft.MainChannel) { m.Name = text }); err != nil {
			return true, c.abandonInput(ctx, sid, "Main channel is not selected.")
		}
		return true, c.applied(ctx, sid, "✅ Main channel name updated.")
	case StateAwaitChannelRename:
		if text == "" {
			return true, c.reply(ctx, sid, "The name cannot be empty.")
		}
		if err := c.drafts.EditChannel(sid, in.index, func(ch *store.ChannelItem) { ch.Name = text }); err != nil {
			return true, c.abandonInput(ctx, sid, "Item not found.")
		}
		return true, c.applied(ctx, sid, "✅ Name updated.")
	case StateAwaitChannelLink:
		if err := ValidateInviteLink(text); err != nil {
			return true, c.reply(ctx, sid, "This must be a link (starting with http...).")
		}
		if err := c.drafts.EditChannel(sid, in.index, func(ch *store.ChannelItem) { ch.InviteLink = text }); err != nil {
			return true, c.abandonInput(ctx, sid, "Item not found.")
		}
		return true, c.applied(ctx, sid, "✅ Link updated.")
	case StateAwaitLinkURLUpdate:
		if err := ValidateLinkURL(text); err != nil {
			return true, c.reply(ctx, sid, "The URL must start with http:// or https://")
		}
		if err := c.drafts.EditLink(sid, in.index, func(l *store.LinkItem) { l.URL = text }); err != nil {
			return true, c.abandonInput(ctx, sid, "Item not found.")
		}
		return true, c.applied(ctx, sid, "✅ URL updated.")
	}
	return true, fmt.Errorf("unhandled input state %s", in.state)
}

func (c *Controller) receiveMainChannel(ctx context.Context, sid draft.SessionID, msg platform.InboundMessage) error {
	ch, err := resolveChannel(ctx, c.platform, msg)
	if err != nil {
		return c.reply(ctx, sid, channelInputError(err, true))
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "channel_chat_id", Value: ch.ChatID})

	if err := checkBotRights(ctx, c.platform, ch.ChatID, true); err != nil {
		return c.reply(ctx, sid, rightsError(err, true))
	}
	joinLink, err := c.platform.CreateInviteLink(ctx, ch.ChatID, true)
	if err != nil {
		c.logger.WarnWithError(ctx, "failed to create join-request link", err)
		return c.reply(ctx, sid, "❌ Could not create a join-request link: "+escape(err))
	}

	c.drafts.SetMain(sid, draft.MainChannel{
		ChatID:   ch.ChatID,
		Name:     ch.Name(),
		Username: store.StringPtr(ch.Username),
		JoinLink: joinLink,
	})
	return c.applied(ctx, sid,
		"✅ Main channel added!\nNow add channels users must join and/or links.\n"+
			"They will be shown in exactly the order you add them.")
}

func (c *Controller) receiveSecondaryChannel(ctx context.Context, sid draft.SessionID, msg platform.InboundMessage) error {
	ch, err := resolveChannel(ctx, c.platform, msg)
	if err != nil {
		return c.reply(ctx, sid, channelInputError(err, false))
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "channel_chat_id", Value: ch.ChatID})

	if err := checkBotRights(ctx, c.platform, ch.ChatID, false); err != nil {
		return c.reply(ctx, sid, rightsError(err, false))
	}
	invite, err := c.platform.CreateInviteLink(ctx, ch.ChatID, false)
	if err != nil {
		c.logger.WarnWithError(ctx, "failed to create invite link", err)
		return c.reply(ctx, sid, "❌ Could not create a link: "+escape(err))
	}

	err = c.drafts.AppendChannel(sid, store.ChannelItem{
		ChatID:     ch.ChatID,
		Name:       ch.Name(),
		Username:   store.StringPtr(ch.Username),
		InviteLink: invite,
	})
	if err != nil {
		return c.abandonInput(ctx, sid, "Choose the main channel first.")
	}
	return c.applied(ctx, sid, "✅ Channel to join added.")
}

func channelInputError(err error, main bool) string {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return "❌ Empty. Send an ID, @username or forward a post from the channel."
	case errors.Is(err, ErrChannelLookup):
		return "❌ Could not find the channel by username: " + escape(err)
	case main:
		return "❌ Wrong format. Send an ID, @username or a forwarded post."
	default:
		return "❌ Wrong format."
	}
}

func rightsError(err error, main bool) string {
	switch {
	case errors.Is(err, ErrBotNotAdmin):
		return "❗ The bot is not an admin in this channel. Grant admin rights and try again."
	case errors.Is(err, ErrBotNoAccess):
		return "❗ The bot has no access to this channel (not a member). Add the bot and try again."
	case main:
		return "❌ Could not check the bot's rights: " + escape(err)
	default:
		return "❌ Channel access error: " + escape(err)
	}
}

// applied finishes a successful input: back to idle and show the edit menu.
func (c *Controller) applied(ctx context.Context, sid draft.SessionID, text string) error {
	c.clearInput(sid)
	return c.send(ctx, sid, editMenu(text, c.drafts.Draft(sid)))
}

// abandonInput leaves the input state when its target no longer exists.
func (c *Controller) abandonInput(ctx context.Context, sid draft.SessionID, text string) error {
	c.clearInput(sid)
	return c.reply(ctx, sid, text)
}

func (c *Controller) reply(ctx context.Context, sid draft.SessionID, text string) error {
	return c.send(ctx, sid, platform.Message{Text: text, HTML: true})
}

func (c *Controller) send(ctx context.Context, sid draft.SessionID, msg platform.Message) error {
	if _, err := c.platform.SendMessage(ctx, sid.ChatID, msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

func (c *Controller) edit(ctx context.Context, sid draft.SessionID, a platform.Action, msg platform.Message) error {
	if err := c.platform.EditMessage(ctx, a.ChatID, a.MessageID, msg); err != nil {
		return fmt.Errorf("failed to edit message: %w", err)
	}
	return nil
}

func escape(err error) string {
	if err == nil {
		return ""
	}
	return html.EscapeString(err.Error())
}
