package conversation

import (
	"strconv"
	"strings"
)

// Owner button payloads.
const (
	actionBackToStart   = "back_to_start"
	actionNewCampaign   = "owner_new_campaign"
	actionMyCampaigns   = "owner_my_campaigns"
	actionAddMain       = "owner_add_main"
	actionBackToMenu    = "back_owner_menu"
	actionEditMain      = "edit_main"
	actionRenameMain    = "rename_main"
	actionRelinkMain    = "relink_main"
	actionDropMain      = "drop_main"
	actionAddSecondary  = "owner_add_secondary"
	actionAddLink       = "owner_add_link"
	actionFinalize      = "owner_finalize"
	actionNoop          = "noop"
	prefixEditItem      = "edit_item_"
	prefixRenameChannel = "rename_ch_"
	prefixRelinkChannel = "relink_ch_"
	prefixRelinkLink    = "relink_link_"
	prefixViewCampaign  = "owner_view_c_"
	prefixEditCampaign  = "owner_edit_c_"
)

var argPrefixes = []string{
	prefixEditItem,
	prefixRenameChannel,
	prefixRelinkChannel,
	prefixRelinkLink,
	prefixViewCampaign,
	prefixEditCampaign,
}

// parseAction splits a payload into its verb and numeric argument. Payloads
// without an argument return arg 0.
func parseAction(data string) (verb string, arg int64, ok bool) {
	for _, prefix := range argPrefixes {
		raw, found := strings.CutPrefix(data, prefix)
		if !found {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			return "", 0, false
		}
		return prefix, n, true
	}

	switch data {
	case actionBackToStart, actionNewCampaign, actionMyCampaigns, actionAddMain,
		actionBackToMenu, actionEditMain, actionRenameMain, actionRelinkMain,
		actionDropMain, actionAddSecondary, actionAddLink, actionFinalize, actionNoop:
		return data, 0, true
	}
	return "", 0, false
}

func withArg(prefix string, arg int64) string {
	return prefix + strconv.FormatInt(arg, 10)
}
