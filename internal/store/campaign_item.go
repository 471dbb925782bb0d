package store

import (
	"context"
	"database/sql"
	"fmt"
)

// ResolvedItem is a campaign item joined to the channel or link row it references.
type ResolvedItem struct {
	Position int
	RefID    int64
	Item     GateItem
}

const sqlAddCampaignItem = `
INSERT INTO campaign_items (campaign_id, item_type, ref_id, position)
VALUES ($1, $2, $3, $4)
`

func (s *Store) AddCampaignItem(ctx context.Context, campaignID int64, itemType ItemType, refID int64, position int) error {
	if !itemType.Valid() {
		return fmt.Errorf("invalid item type %q", itemType)
	}
	_, err := s.db.ExecContext(ctx, sqlAddCampaignItem, campaignID, itemType, refID, position)
	if err != nil {
		s.logger.Error(ctx, "failed to add campaign item", err)
		return fmt.Errorf("failed to add campaign item: %w", err)
	}
	return nil
}

type campaignItemRow struct {
	ItemType          ItemType       `db:"item_type"`
	RefID             int64          `db:"ref_id"`
	Position          int            `db:"position"`
	ChannelChatID     sql.NullString `db:"channel_chat_id"`
	ChannelName       sql.NullString `db:"channel_name"`
	ChannelUsername   sql.NullString `db:"channel_username"`
	ChannelInviteLink sql.NullString `db:"channel_invite_link"`
	LinkName          sql.NullString `db:"link_name"`
	LinkURL           sql.NullString `db:"link_url"`
}

const sqlGetCampaignItems = `
SELECT
    ci.item_type, ci.ref_id, ci.position,
    gc.chat_id AS channel_chat_id,
    gc.name AS channel_name,
    gc.username AS channel_username,
    gc.invite_link AS channel_invite_link,
    gl.name AS link_name,
    gl.url AS link_url
FROM campaign_items ci
LEFT JOIN gate_channels gc ON ci.item_type = 'channel' AND gc.id = ci.ref_id
LEFT JOIN gate_links gl ON ci.item_type = 'link' AND gl.id = ci.ref_id
WHERE ci.campaign_id = $1
ORDER BY ci.position ASC, ci.id ASC
`

// GetCampaignItems returns the campaign's items in position order. Items whose
// referenced channel or link row no longer exists are skipped.
func (s *Store) GetCampaignItems(ctx context.Context, campaignID int64) ([]ResolvedItem, error) {
	var rows []campaignItemRow
	err := s.db.SelectContext(ctx, &rows, sqlGetCampaignItems, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to get campaign items", err)
		return nil, fmt.Errorf("failed to get campaign items: %w", err)
	}

	items := make([]ResolvedItem, 0, len(rows))
	for _, row := range rows {
		item, ok := row.resolve()
		if !ok {
			continue
		}
		items = append(items, ResolvedItem{Position: row.Position, RefID: row.RefID, Item: item})
	}
	return items, nil
}

func (r campaignItemRow) resolve() (GateItem, bool) {
	switch r.ItemType {
	case ItemTypeChannel:
		if !r.ChannelChatID.Valid {
			return nil, false
		}
		var username *string
		if r.ChannelUsername.Valid {
			username = StringPtr(r.ChannelUsername.String)
		}
		return ChannelItem{
			ChatID:     r.ChannelChatID.String,
			Name:       r.ChannelName.String,
			Username:   username,
			InviteLink: r.ChannelInviteLink.String,
		}, true
	case ItemTypeLink:
		if !r.LinkURL.Valid {
			return nil, false
		}
		return LinkItem{Name: r.LinkName.String, URL: r.LinkURL.String}, true
	default:
		return nil, false
	}
}

const sqlClearCampaignItems = `DELETE FROM campaign_items WHERE campaign_id = $1`

func (s *Store) ClearCampaignItems(ctx context.Context, campaignID int64) error {
	_, err := s.db.ExecContext(ctx, sqlClearCampaignItems, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to clear campaign items", err)
		return fmt.Errorf("failed to clear campaign items: %w", err)
	}
	return nil
}

// Items strips the join metadata and returns the ordered gate items.
func Items(resolved []ResolvedItem) []GateItem {
	items := make([]GateItem, len(resolved))
	for i, r := range resolved {
		items[i] = r.Item
	}
	return items
}
