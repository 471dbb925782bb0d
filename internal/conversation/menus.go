package conversation

import (
	"fmt"
	"html"
	"strings"

	"subgate/internal/draft"
	joinrequest "subgate/internal/joinrequest/processor"
	"subgate/internal/platform"
	"subgate/internal/store"
)

func back(action string) []platform.Button {
	return platform.Row(platform.Button{Text: "⬅️ Back", Action: action})
}

func addBotURL(botUsername string) string {
	return fmt.Sprintf("https://t.me/%s?startchannel=true&admin=invite_users", botUsername)
}

func mainMenu() platform.Message {
	return platform.Message{
		Text: "<b>Hi!</b>\n" +
			"Here you set up access to your channel: required steps and automatic approval of join requests.\n\n" +
			"• Press «Create campaign» to build a list of steps.\n" +
			"• Or open «My campaigns» to edit an existing one.",
		HTML: true,
		Keyboard: [][]platform.Button{
			platform.Row(platform.Button{Text: "🚀 Create campaign", Action: actionNewCampaign}),
			platform.Row(platform.Button{Text: "📁 My campaigns", Action: actionMyCampaigns}),
		},
	}
}

func newCampaignScreen(botUsername string) platform.Message {
	return platform.Message{
		Text: "<b>Step 1 of 2. Main channel</b>\n\n" +
			"1) Add the bot to the channel as an admin (rights to create invites and approve requests).\n" +
			"2) Press «Specify main channel» and send its ID, @username or forward a post from it.\n\n" +
			"The join-request invite link is issued at the very end, after «Done».",
		HTML: true,
		Keyboard: [][]platform.Button{
			platform.Row(platform.Button{Text: "➕ Add bot to channel", URL: addBotURL(botUsername)}),
			platform.Row(platform.Button{Text: "✍️ Specify main channel", Action: actionAddMain}),
			back(actionBackToStart),
		},
	}
}

func itemLabel(item store.GateItem) string {
	switch it := item.(type) {
	case store.ChannelItem:
		return "Channel to join: " + it.Title()
	case store.LinkItem:
		return "Link: " + it.Name
	}
	return ""
}

func editMenuKeyboard(d draft.Draft) [][]platform.Button {
	var rows [][]platform.Button
	if d.Main != nil {
		rows = append(rows, platform.Row(platform.Button{
			Text:   fmt.Sprintf("🎯 Edit main channel: «%s»", d.Main.Title()),
			Action: actionEditMain,
		}))
	} else {
		rows = append(rows, platform.Row(platform.Button{Text: "🎯 Choose main channel", Action: actionAddMain}))
	}

	if len(d.Items) == 0 {
		rows = append(rows, platform.Row(platform.Button{Text: "(list is empty)", Action: actionNoop}))
	}
	for i, item := range d.Items {
		rows = append(rows, platform.Row(platform.Button{
			Text:   "⚙️ " + itemLabel(item),
			Action: withArg(prefixEditItem, int64(i)),
		}))
	}

	rows = append(rows,
		platform.Row(
			platform.Button{Text: "➕ Add channel to join", Action: actionAddSecondary},
			platform.Button{Text: "🔗 Add a link", Action: actionAddLink},
		),
		platform.Row(
			platform.Button{Text: "✅ Done", Action: actionFinalize},
			platform.Button{Text: "⬅️ Main menu", Action: actionBackToStart},
		),
	)
	return rows
}

func editMenu(header string, d draft.Draft) platform.Message {
	return platform.Message{Text: header, HTML: true, Keyboard: editMenuKeyboard(d)}
}

func mainChannelMenu(main draft.MainChannel) platform.Message {
	return platform.Message{
		Text: fmt.Sprintf("🎯 <b>Main channel:</b> %s\nWhat do you want to change?", html.EscapeString(main.Title())),
		HTML: true,
		Keyboard: [][]platform.Button{
			platform.Row(platform.Button{Text: "✏️ Rename", Action: actionRenameMain}),
			platform.Row(platform.Button{Text: "🔗 Regenerate join-request link", Action: actionRelinkMain}),
			platform.Row(platform.Button{Text: "🗑️ Remove main channel", Action: actionDropMain}),
			back(actionBackToMenu),
		},
	}
}

func itemMenu(index int, item store.GateItem) platform.Message {
	var rows [][]platform.Button
	switch item.(type) {
	case store.ChannelItem:
		rows = append(rows,
			platform.Row(platform.Button{Text: "✏️ Rename", Action: withArg(prefixRenameChannel, int64(index))}),
			platform.Row(platform.Button{Text: "🔗 Replace invite link", Action: withArg(prefixRelinkChannel, int64(index))}),
		)
	case store.LinkItem:
		rows = append(rows, platform.Row(platform.Button{Text: "🔗 Replace URL", Action: withArg(prefixRelinkLink, int64(index))}))
	}
	rows = append(rows, back(actionBackToMenu))
	return platform.Message{
		Text:     fmt.Sprintf("⚙️ <b>%s</b>\nWhat do you want to change?", html.EscapeString(itemLabel(item))),
		HTML:     true,
		Keyboard: rows,
	}
}

func prompt(text string, rows ...[]platform.Button) platform.Message {
	return platform.Message{Text: text, HTML: true, Keyboard: rows}
}

func finalizedScreen(botUsername string, campaignID int64, joinLink string) platform.Message {
	var rows [][]platform.Button
	if joinLink != "" {
		rows = append(rows, platform.Row(platform.Button{Text: "🎯 Open main channel (join request)", URL: joinLink}))
	}
	rows = append(rows, platform.Row(platform.Button{
		Text: "➡️ Open subscription menu (bot)",
		URL:  joinrequest.DeepLink(botUsername, campaignID),
	}))
	return platform.Message{
		Text: fmt.Sprintf("<b>✅ Campaign #%d saved!</b>\n\n", campaignID) +
			"1) Post the <b>Open main channel</b> button: users will send a join request through it.\n" +
			"2) Share the <b>Open subscription menu</b> link: users see where to subscribe and check everything with one button.\n\n" +
			"After a successful check the bot approves the join request automatically.",
		HTML:     true,
		Keyboard: rows,
	}
}

func campaignList(campaigns []store.CampaignSummary) platform.Message {
	if len(campaigns) == 0 {
		return platform.Message{
			Text:     "No campaigns yet. Press «Create campaign».",
			Keyboard: [][]platform.Button{back(actionBackToStart)},
		}
	}
	rows := make([][]platform.Button, 0, len(campaigns)+1)
	for _, c := range campaigns {
		rows = append(rows, platform.Row(platform.Button{
			Text:   fmt.Sprintf("📌 Campaign #%d: %s", c.ID, c.Title()),
			Action: withArg(prefixViewCampaign, c.ID),
		}))
	}
	rows = append(rows, back(actionBackToStart))
	return platform.Message{
		Text:     "📁 <b>My campaigns</b>\nPick a campaign to view:",
		HTML:     true,
		Keyboard: rows,
	}
}

func campaignView(botUsername string, c store.Campaign, items []store.GateItem) platform.Message {
	deepLink := joinrequest.DeepLink(botUsername, c.ID)

	var b strings.Builder
	fmt.Fprintf(&b, "<b>Campaign #%d</b>\n", c.ID)
	fmt.Fprintf(&b, "Main channel: <b>%s</b> (id: <code>%s</code>)\n", html.EscapeString(c.Title()), html.EscapeString(c.MainChatID))
	fmt.Fprintf(&b, "Created: %s\n\n", c.CreatedAt.UTC().Format("2006-01-02 15:04"))
	b.WriteString("<b>Items (in order):</b>\n")
	for i, item := range items {
		switch it := item.(type) {
		case store.ChannelItem:
			fmt.Fprintf(&b, "%d. Channel: %s\n", i+1, html.EscapeString(it.Title()))
		case store.LinkItem:
			fmt.Fprintf(&b, "%d. Link: %s\n", i+1, html.EscapeString(it.Name))
		}
	}
	joinLink := c.MainJoinLink
	if joinLink == "" {
		joinLink = "none"
	}
	fmt.Fprintf(&b, "\n<b>Join request:</b> %s\n", html.EscapeString(joinLink))
	fmt.Fprintf(&b, "<b>Deep link:</b> %s\n", html.EscapeString(deepLink))

	var rows [][]platform.Button
	if c.MainJoinLink != "" {
		rows = append(rows, platform.Row(platform.Button{Text: "🎯 Open main channel", URL: c.MainJoinLink}))
	}
	rows = append(rows,
		platform.Row(platform.Button{Text: "➡️ Open subscription menu", URL: deepLink}),
		platform.Row(platform.Button{Text: "✏️ Edit", Action: withArg(prefixEditCampaign, c.ID)}),
		back(actionMyCampaigns),
	)
	return platform.Message{Text: b.String(), HTML: true, Keyboard: rows}
}
