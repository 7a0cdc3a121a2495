package postgres

import (
	"context"
	"database/sql"

	"hireflow-backend/internal/domain"
	"hireflow-backend/internal/repository"
)

type scorecardRepository struct {
	db *sql.DB
}

func NewScorecardRepository(db *sql.DB) repository.ScorecardRepository {
	return &scorecardRepository{db: db}
}

func (r *scorecardRepository) ListCompletedByInterviewer(ctx context.Context, interviewerID int32) ([]int32, error) {
	query := `SELECT id FROM interviews WHERE status = $1 AND $2 = ANY(interviewer_ids)`
	return r.listIDs(ctx, query, domain.InterviewStatusCompleted, interviewerID)
}

func (r *scorecardRepository) ListScorecardedByInterviewer(ctx context.Context, interviewerID int32) ([]int32, error) {
	query := `SELECT DISTINCT interview_id FROM scorecards WHERE interviewer_id = $1`
	return r.listIDs(ctx, query, interviewerID)
}

func (r *scorecardRepository) listIDs(ctx context.Context, query string, args ...interface{}) ([]int32, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
