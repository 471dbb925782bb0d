package processor

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"subgate/internal/platform"
	"subgate/internal/store"
)

const checkActionPrefix = "user_check_"

// CheckAction is the button payload of the "I subscribed" action.
func CheckAction(campaignID int64) string {
	return checkActionPrefix + strconv.FormatInt(campaignID, 10)
}

// ParseCheckAction extracts the campaign id from a CheckAction payload.
func ParseCheckAction(data string) (int64, bool) {
	raw, ok := strings.CutPrefix(data, checkActionPrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// DeepLink is the /start link that opens a campaign's checklist directly.
func DeepLink(botUsername string, campaignID int64) string {
	return fmt.Sprintf("https://t.me/%s?start=join_%d", botUsername, campaignID)
}

// ParseDeepLinkArg extracts the campaign id from a "join_<id>" start argument.
func ParseDeepLinkArg(arg string) (int64, bool) {
	raw, ok := strings.CutPrefix(strings.TrimSpace(arg), "join_")
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// checklistKeyboard renders one button per item in campaign order followed by
// the check action. Channels with no reachable URL get no button.
func checklistKeyboard(campaignID int64, items []store.GateItem, checkLabel string) [][]platform.Button {
	rows := make([][]platform.Button, 0, len(items)+1)
	for _, item := range items {
		switch it := item.(type) {
		case store.ChannelItem:
			if url := it.SubscribeURL(); url != "" {
				rows = append(rows, platform.Row(platform.Button{Text: "🔔 Subscribe: " + it.Title(), URL: url}))
			}
		case store.LinkItem:
			rows = append(rows, platform.Row(platform.Button{Text: "🌐 Open: " + it.Name, URL: it.URL}))
		}
	}
	rows = append(rows, platform.Row(platform.Button{Text: checkLabel, Action: CheckAction(campaignID)}))
	return rows
}

func joinRequestChecklist(campaignID int64, user platform.User, items []store.GateItem) platform.Message {
	name := user.FirstName
	if name == "" {
		name = user.Username
	}
	text := fmt.Sprintf("👋 Hi, %s!\n\n", html.EscapeString(name)) +
		"<b>To get your request approved</b>, subscribe to every channel below and open every link. " +
		"Then press <b>✅ I subscribed</b> and I will check and let you into the main channel."
	return platform.Message{Text: text, HTML: true, Keyboard: checklistKeyboard(campaignID, items, "✅ I subscribed")}
}

func deepLinkChecklist(campaignID int64, items []store.GateItem) platform.Message {
	text := "<b>Subscription check</b>\n\n" +
		"1) Subscribe to the channels below and open the links.\n" +
		"2) Press <b>✅ I subscribed</b> and I will check and approve your join request."
	return platform.Message{Text: text, HTML: true, Keyboard: checklistKeyboard(campaignID, items, "✅ I subscribed")}
}

func missingChecklist(campaignID int64, missing []store.GateItem) platform.Message {
	var b strings.Builder
	b.WriteString("<b>Almost there!</b>\nYou are not subscribed to:\n")
	for _, item := range missing {
		fmt.Fprintf(&b, "• %s\n", html.EscapeString(item.Title()))
	}
	b.WriteString("\nSubscribe, then come back and press <b>✅ I subscribed</b>.")
	return platform.Message{Text: b.String(), HTML: true, Keyboard: checklistKeyboard(campaignID, missing, "✅ Check again")}
}

func noRequestChecklist(campaignID int64, items []store.GateItem) platform.Message {
	text := "✅ Subscriptions verified, all clear.\n" +
		"But I could not find a join request from you. Send one to the main channel first, " +
		"then press «I subscribed».\n"
	return platform.Message{Text: text, HTML: true, Keyboard: checklistKeyboard(campaignID, items, "✅ I subscribed")}
}

func approvedMessage() platform.Message {
	return platform.Message{Text: "🎉 Done! Your join request is approved. Welcome to the main channel."}
}

func approveFailedMessage(err error) platform.Message {
	return platform.Message{Text: "⚠️ Could not approve the request automatically: " + err.Error()}
}
