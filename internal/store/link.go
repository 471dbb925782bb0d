package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const sqlInsertLink = `
INSERT INTO gate_links (owner_id, name, url)
VALUES ($1, $2, $3)
RETURNING id
`

// InsertLink always creates a fresh gate link row
func (s *Store) InsertLink(ctx context.Context, ownerID int64, name, url string) (int64, error) {
	var id int64
	err := s.db.GetContext(ctx, &id, sqlInsertLink, ownerID, name, url)
	if err != nil {
		s.logger.Error(ctx, "failed to insert link", err)
		return 0, fmt.Errorf("failed to insert link: %w", err)
	}
	return id, nil
}

const sqlGetLink = `
SELECT id, owner_id, name, url
FROM gate_links
WHERE id = $1
`

func (s *Store) GetLink(ctx context.Context, id int64) (GateLink, error) {
	var link GateLink
	err := s.db.GetContext(ctx, &link, sqlGetLink, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GateLink{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get link", err)
		return GateLink{}, fmt.Errorf("failed to get link: %w", err)
	}
	return link, nil
}

const sqlUpdateLinkURL = `UPDATE gate_links SET url = $2 WHERE id = $1`

func (s *Store) UpdateLinkURL(ctx context.Context, id int64, url string) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateLinkURL, id, url)
	if err != nil {
		s.logger.Error(ctx, "failed to update link url", err)
		return fmt.Errorf("failed to update link url: %w", err)
	}
	return requireAffected(res)
}
