package postgres

import (
	"context"
	"database/sql"

	"hireflow-backend/internal/domain"
	"hireflow-backend/internal/repository"

	"github.com/lib/pq"
)

type directoryRepository struct {
	db *sql.DB
}

func NewDirectoryRepository(db *sql.DB) repository.DirectoryRepository {
	return &directoryRepository{db: db}
}

// GetUsersByIDs returns only resolvable ids; callers treat the rest as
// missing rather than erroring.
func (r *directoryRepository) GetUsersByIDs(ctx context.Context, ids []int32) ([]domain.OrgUser, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT id, org_id, email, display_name FROM org_users WHERE id = ANY($1)`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.OrgUser
	for rows.Next() {
		var u domain.OrgUser
		if err := rows.Scan(&u.ID, &u.OrgID, &u.Email, &u.DisplayName); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
