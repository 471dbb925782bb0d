package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type InsertChannelParams struct {
	OwnerID    int64
	ChatID     string
	Username   *string
	Name       string
	InviteLink string
}

const sqlInsertChannel = `
INSERT INTO gate_channels (owner_id, chat_id, username, name, invite_link)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

// InsertChannel always creates a fresh gate channel row
func (s *Store) InsertChannel(ctx context.Context, params InsertChannelParams) (int64, error) {
	var id int64
	err := s.db.GetContext(ctx, &id, sqlInsertChannel,
		params.OwnerID,
		params.ChatID,
		params.Username,
		params.Name,
		params.InviteLink)
	if err != nil {
		s.logger.Error(ctx, "failed to insert channel", err)
		return 0, fmt.Errorf("failed to insert channel: %w", err)
	}
	return id, nil
}

const sqlGetChannel = `
SELECT id, owner_id, chat_id, username, name, invite_link
FROM gate_channels
WHERE id = $1
`

func (s *Store) GetChannel(ctx context.Context, id int64) (GateChannel, error) {
	var channel GateChannel
	err := s.db.GetContext(ctx, &channel, sqlGetChannel, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GateChannel{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get channel", err)
		return GateChannel{}, fmt.Errorf("failed to get channel: %w", err)
	}
	return channel, nil
}

const sqlUpdateChannelName = `UPDATE gate_channels SET name = $2 WHERE id = $1`

func (s *Store) UpdateChannelName(ctx context.Context, id int64, name string) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateChannelName, id, name)
	if err != nil {
		s.logger.Error(ctx, "failed to update channel name", err)
		return fmt.Errorf("failed to update channel name: %w", err)
	}
	return requireAffected(res)
}

const sqlUpdateChannelLink = `UPDATE gate_channels SET invite_link = $2 WHERE id = $1`

func (s *Store) UpdateChannelLink(ctx context.Context, id int64, inviteLink string) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateChannelLink, id, inviteLink)
	if err != nil {
		s.logger.Error(ctx, "failed to update channel link", err)
		return fmt.Errorf("failed to update channel link: %w", err)
	}
	return requireAffected(res)
}
