package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"hireflow-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

var interviewCols = []string{
	"id", "application_id", "title", "interview_type", "scheduled_at", "timezone", "duration_minutes",
	"location", "meeting_link", "meeting_provider", "interviewer_ids", "status", "completed_at", "cancelled_at",
	"internal_notes", "created_on", "updated_on",
}

func interviewRow(id int32, status domain.InterviewStatus) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(interviewCols).
		AddRow(id, 1, "Technical Screen", "VIDEO", now, "UTC", 60,
			"", "https://zoom.us/j/123", "zoom", pq.Int32Array{10, 11}, status, nil, nil,
			"", now, now)
}

func TestInterviewRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewInterviewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		iv := &domain.Interview{
			ApplicationID:   1,
			Title:           "Technical Screen",
			Type:            domain.InterviewTypeVideo,
			ScheduledAt:     time.Now(),
			Timezone:        "UTC",
			DurationMinutes: 60,
			InterviewerIDs:  []int32{10, 11},
			Status:          domain.InterviewStatusScheduled,
		}

		now := time.Now()
		mock.ExpectQuery("INSERT INTO interviews").
			WithArgs(iv.ApplicationID, iv.Title, iv.Type, iv.ScheduledAt, iv.Timezone, iv.DurationMinutes,
				iv.Location, iv.MeetingLink, iv.MeetingProvider, pq.Array(iv.InterviewerIDs), iv.Status,
				iv.InternalNotes, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on", "updated_on"}).AddRow(42, now, now))

		err := repo.Create(ctx, iv)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), iv.ID)
	})
}

func TestInterviewRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewInterviewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM interviews WHERE id = \\$1").
			WithArgs(int32(42)).
			WillReturnRows(interviewRow(42, domain.InterviewStatusScheduled))

		iv, err := repo.GetByID(ctx, 42)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), iv.ID)
		assert.Equal(t, []int32{10, 11}, iv.InterviewerIDs)
		assert.Equal(t, "https://zoom.us/j/123", iv.MeetingLink)
	})
}

func TestInterviewRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewInterviewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		fields := domain.StatusChange{Status: domain.InterviewStatusCancelled, CancelledAt: &now, AppendNote: "Cancelled: withdrew"}

		mock.ExpectExec("UPDATE interviews").
			WithArgs(fields.Status, nil, fields.CancelledAt, fields.AppendNote, sqlmock.AnyArg(),
				int32(42), domain.InterviewStatusScheduled).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT (.+) FROM interviews WHERE id = \\$1").
			WithArgs(int32(42)).
			WillReturnRows(interviewRow(42, domain.InterviewStatusCancelled))

		iv, err := repo.UpdateStatus(ctx, 42, domain.InterviewStatusScheduled, fields)
		assert.NoError(t, err)
		assert.Equal(t, domain.InterviewStatusCancelled, iv.Status)
	})

	t.Run("ConcurrentChangeReturnsInvalidTransition", func(t *testing.T) {
		fields := domain.StatusChange{Status: domain.InterviewStatusConfirmed}

		mock.ExpectExec("UPDATE interviews").
			WithArgs(fields.Status, nil, nil, "", sqlmock.AnyArg(),
				int32(42), domain.InterviewStatusScheduled).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT (.+) FROM interviews WHERE id = \\$1").
			WithArgs(int32(42)).
			WillReturnRows(interviewRow(42, domain.InterviewStatusCancelled))

		_, err := repo.UpdateStatus(ctx, 42, domain.InterviewStatusScheduled, fields)

		var terr *domain.InvalidTransitionError
		assert.True(t, errors.As(err, &terr))
		assert.Equal(t, domain.InterviewStatusCancelled, terr.From)
		assert.Equal(t, domain.InterviewStatusConfirmed, terr.To)
	})
}

func TestInterviewRepository_SetMeetingLink(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewInterviewRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE interviews SET meeting_link").
		WithArgs("https://meet.google.com/abc", "meet", sqlmock.AnyArg(), int32(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetMeetingLink(ctx, 42, "https://meet.google.com/abc", "meet")
	assert.NoError(t, err)
}

func TestInterviewRepository_ListByApplication(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewInterviewRepository(db)
	ctx := context.Background()

	rows := interviewRow(1, domain.InterviewStatusScheduled).
		AddRow(2, 1, "Onsite", "IN_PERSON", time.Now(), "UTC", 120,
			"Room 4", "", "", pq.Int32Array{10}, domain.InterviewStatusConfirmed, nil, nil,
			"", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM interviews WHERE application_id = \\$1").
		WithArgs(int32(1)).
		WillReturnRows(rows)

	out, err := repo.ListByApplication(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "Room 4", out[1].Location)
}
