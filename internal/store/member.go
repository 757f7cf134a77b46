package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Member is a recognized staff account from the membres directory. The
// directory is read-only from this service's perspective.
type Member struct {
	ID          int64  `db:"id"`
	CompanyName string `db:"nom_societe"`
	Phone       string `db:"telephone"`
}

const sqlGetMemberByPhone = `
SELECT id, nom_societe, telephone FROM membres WHERE telephone = $1`

func (s *Store) GetMemberByPhone(ctx context.Context, phone string) (Member, error) {
	var member Member
	err := s.db.GetContext(ctx, &member, sqlGetMemberByPhone, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Member{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get member by phone", err)
		return Member{}, fmt.Errorf("failed to get member by phone: %w", err)
	}
	return member, nil
}
