package conversation

import "subgate/internal/draft"

// State is the single free-text input an owner session is waiting for.
type State int

const (
	StateIdle State = iota
	StateAwaitMainChannel
	StateAwaitSecondaryChannel
	StateAwaitLinkName
	StateAwaitLinkURL
	StateAwaitMainRename
	StateAwaitChannelRename
	StateAwaitChannelLink
	StateAwaitLinkURLUpdate
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitMainChannel:
		return "await_main_channel"
	case StateAwaitSecondaryChannel:
		return "await_secondary_channel"
	case StateAwaitLinkName:
		return "await_link_name"
	case StateAwaitLinkURL:
		return "await_link_url"
	case StateAwaitMainRename:
		return "await_main_rename"
	case StateAwaitChannelRename:
		return "await_channel_rename"
	case StateAwaitChannelLink:
		return "await_channel_link"
	case StateAwaitLinkURLUpdate:
		return "await_link_url_update"
	}
	return "unknown"
}

// input is the pending-input record of one session.
type input struct {
	state State
	// index is the draft item targeted by the item editors.
	index int
	// linkName carries the name between AwaitLinkName and AwaitLinkURL.
	linkName string
}

func (c *Controller) input(sid draft.SessionID) input {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inputs[sid]
}

func (c *Controller) setInput(sid draft.SessionID, in input) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inputs[sid] = in
}

func (c *Controller) clearInput(sid draft.SessionID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inputs, sid)
}

// State returns the input the session is waiting for.
func (c *Controller) State(sid draft.SessionID) State {
	return c.input(sid).state
}
