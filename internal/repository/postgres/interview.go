package postgres

import (
	"context"
	"database/sql"
	"time"

	"hireflow-backend/internal/domain"
	"hireflow-backend/internal/logger"
	"hireflow-backend/internal/repository"

	"github.com/lib/pq"
)

type interviewRepository struct {
	db *sql.DB
}

func NewInterviewRepository(db *sql.DB) repository.InterviewRepository {
	return &interviewRepository{db: db}
}

const interviewColumns = `id, application_id, title, interview_type, scheduled_at, timezone, duration_minutes,
	       location, meeting_link, meeting_provider, interviewer_ids, status, completed_at, cancelled_at,
	       internal_notes, created_on, updated_on`

func (r *interviewRepository) Create(ctx context.Context, iv *domain.Interview) error {
	query := `INSERT INTO interviews (application_id, title, interview_type, scheduled_at, timezone, duration_minutes,
	          location, meeting_link, meeting_provider, interviewer_ids, status, internal_notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id, created_on, updated_on`
	logger.DatabaseCall("INSERT", "interviews", "applicationID", iv.ApplicationID)

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		iv.ApplicationID, iv.Title, iv.Type, iv.ScheduledAt, iv.Timezone, iv.DurationMinutes,
		iv.Location, iv.MeetingLink, iv.MeetingProvider, pq.Array(iv.InterviewerIDs), iv.Status,
		iv.InternalNotes, now, now,
	).Scan(&iv.ID, &iv.CreatedOn, &iv.UpdatedOn)
	logger.DatabaseResult("INSERT", 1, err, "interviewID", iv.ID)
	return err
}

func (r *interviewRepository) GetByID(ctx context.Context, id int32) (*domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *interviewRepository) ListByApplication(ctx context.Context, applicationID int32) ([]domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE application_id = $1 ORDER BY scheduled_at`
	rows, err := r.db.QueryContext(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Interview
	for rows.Next() {
		iv, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *iv)
	}
	return out, rows.Err()
}

// UpdateStatus applies the transition only if the stored status still equals
// expected. Zero rows affected means another request moved the interview
// first; the stored status is re-read and returned inside the error so the
// caller can report what it actually collided with.
func (r *interviewRepository) UpdateStatus(ctx context.Context, id int32, expected domain.InterviewStatus, fields domain.StatusChange) (*domain.Interview, error) {
	query := `UPDATE interviews
	          SET status = $1,
	              completed_at = COALESCE($2, completed_at),
	              cancelled_at = COALESCE($3, cancelled_at),
	              internal_notes = CASE WHEN $4 = '' THEN internal_notes
	                                    WHEN internal_notes = '' THEN $4
	                                    ELSE internal_notes || E'\n' || $4 END,
	              updated_on = $5
	          WHERE id = $6 AND status = $7`
	logger.DatabaseCall("UPDATE", "interviews", "interviewID", id, "expected", expected, "to", fields.Status)

	res, err := r.db.ExecContext(ctx, query, fields.Status, fields.CompletedAt, fields.CancelledAt,
		fields.AppendNote, time.Now(), id, expected)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "interviewID", id)
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, &domain.InvalidTransitionError{From: current.Status, To: fields.Status}
	}
	return r.GetByID(ctx, id)
}

func (r *interviewRepository) SetMeetingLink(ctx context.Context, id int32, link, provider string) error {
	query := `UPDATE interviews SET meeting_link = $1, meeting_provider = $2, updated_on = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, link, provider, time.Now(), id)
	return err
}

func (r *interviewRepository) ListScheduledBetween(ctx context.Context, from, to string) ([]domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews
	          WHERE scheduled_at >= $1 AND scheduled_at < $2 AND status IN ($3, $4)
	          ORDER BY scheduled_at`
	rows, err := r.db.QueryContext(ctx, query, from, to, domain.InterviewStatusScheduled, domain.InterviewStatusConfirmed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Interview
	for rows.Next() {
		iv, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *iv)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *interviewRepository) scanOne(row rowScanner) (*domain.Interview, error) {
	iv := &domain.Interview{}
	var interviewerIDs pq.Int32Array
	var location, meetingLink, meetingProvider, notes sql.NullString
	err := row.Scan(&iv.ID, &iv.ApplicationID, &iv.Title, &iv.Type, &iv.ScheduledAt, &iv.Timezone, &iv.DurationMinutes,
		&location, &meetingLink, &meetingProvider, &interviewerIDs, &iv.Status, &iv.CompletedAt, &iv.CancelledAt,
		&notes, &iv.CreatedOn, &iv.UpdatedOn)
	if err != nil {
		return nil, err
	}
	iv.Location = location.String
	iv.MeetingLink = meetingLink.String
	iv.MeetingProvider = meetingProvider.String
	iv.InternalNotes = notes.String
	iv.InterviewerIDs = []int32(interviewerIDs)
	return iv, nil
}
