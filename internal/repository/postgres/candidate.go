package postgres

import (
	"context"
	"database/sql"

	"hireflow-backend/internal/domain"
	"hireflow-backend/internal/repository"
)

type candidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) repository.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) GetByApplicationID(ctx context.Context, applicationID int32) (*domain.Candidate, error) {
	c := &domain.Candidate{ApplicationID: applicationID}
	query := `SELECT c.email, c.full_name
	          FROM applications a JOIN candidates c ON a.candidate_id = c.id
	          WHERE a.id = $1`
	err := r.db.QueryRowContext(ctx, query, applicationID).Scan(&c.Email, &c.DisplayName)
	if err != nil {
		return nil, err
	}
	return c, nil
}
