package postgres

import (
	"database/sql"

	"hireflow-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.InterviewRepository
	repository.DirectoryRepository
	repository.CandidateRepository
	repository.ScorecardRepository
	repository.ActivityRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		InterviewRepository:    NewInterviewRepository(db),
		DirectoryRepository:    NewDirectoryRepository(db),
		CandidateRepository:    NewCandidateRepository(db),
		ScorecardRepository:    NewScorecardRepository(db),
		ActivityRepository:     NewActivityRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
