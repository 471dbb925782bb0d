package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CampaignParams carries the main-channel columns written on create and update.
type CampaignParams struct {
	OwnerID      int64
	MainChatID   string
	MainName     string
	MainUsername *string
	MainJoinLink string
}

const sqlCreateCampaign = `
INSERT INTO campaigns (owner_id, main_chat_id, main_name, main_username, main_join_link)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

// CreateCampaign inserts a campaign row and returns its id
func (s *Store) CreateCampaign(ctx context.Context, params CampaignParams) (int64, error) {
	var id int64
	err := s.db.GetContext(ctx, &id, sqlCreateCampaign,
		params.OwnerID,
		params.MainChatID,
		params.MainName,
		params.MainUsername,
		params.MainJoinLink)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign", err)
		return 0, fmt.Errorf("failed to create campaign: %w", err)
	}
	return id, nil
}

const sqlGetCampaign = `
SELECT id, owner_id, main_chat_id, main_name, main_username, main_join_link, created_at
FROM campaigns
WHERE id = $1
`

// GetCampaign retrieves a campaign by id
func (s *Store) GetCampaign(ctx context.Context, id int64) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaign, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign", err)
		return Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

// Duplicate main chats are not prevented; the newest campaign wins.
const sqlGetCampaignByMainChat = `
SELECT id, owner_id, main_chat_id, main_name, main_username, main_join_link, created_at
FROM campaigns
WHERE main_chat_id = $1
ORDER BY id DESC
LIMIT 1
`

// GetCampaignByMainChat retrieves the campaign gating the given chat id (exact string match)
func (s *Store) GetCampaignByMainChat(ctx context.Context, chatID string) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByMainChat, chatID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by main chat", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by main chat: %w", err)
	}
	return campaign, nil
}

const sqlListCampaignsByOwner = `
SELECT id, main_chat_id, main_name, main_username, created_at
FROM campaigns
WHERE owner_id = $1
ORDER BY created_at DESC, id DESC
`

// ListCampaignsByOwner returns the owner's campaigns, most recently created first
func (s *Store) ListCampaignsByOwner(ctx context.Context, ownerID int64) ([]CampaignSummary, error) {
	campaigns := []CampaignSummary{}
	err := s.db.SelectContext(ctx, &campaigns, sqlListCampaignsByOwner, ownerID)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaigns by owner", err)
		return nil, fmt.Errorf("failed to list campaigns by owner: %w", err)
	}
	return campaigns, nil
}

const sqlUpdateCampaign = `
UPDATE campaigns
SET main_chat_id = $2, main_name = $3, main_username = $4, main_join_link = $5
WHERE id = $1
`

// UpdateCampaign rewrites the main-channel columns of an existing campaign
func (s *Store) UpdateCampaign(ctx context.Context, id int64, params CampaignParams) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateCampaign,
		id,
		params.MainChatID,
		params.MainName,
		params.MainUsername,
		params.MainJoinLink)
	if err != nil {
		s.logger.Error(ctx, "failed to update campaign", err)
		return fmt.Errorf("failed to update campaign: %w", err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
