package store

import (
	"context"
	"fmt"
)

const sqlAddUser = `
INSERT INTO users (user_id)
VALUES ($1)
ON CONFLICT (user_id) DO NOTHING
`

// AddUser records a user id and reports whether it was newly inserted
func (s *Store) AddUser(ctx context.Context, userID int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, sqlAddUser, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to add user", err)
		return false, fmt.Errorf("failed to add user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n == 1, nil
}

const sqlCountUsers = `SELECT COUNT(*) FROM users`

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, sqlCountUsers); err != nil {
		s.logger.Error(ctx, "failed to count users", err)
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
