package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"hireflow-backend/internal/domain"
	"hireflow-backend/internal/logger"
	"hireflow-backend/internal/repository"

	"github.com/google/uuid"
)

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Append(ctx context.Context, entry *domain.Activity) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return err
	}

	query := `INSERT INTO activities (id, application_id, activity_type, description, metadata, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	logger.DatabaseCall("INSERT", "activities", "applicationID", entry.ApplicationID, "type", entry.Type)

	entry.CreatedOn = time.Now()
	_, err = r.db.ExecContext(ctx, query, entry.ID, entry.ApplicationID, entry.Type, entry.Description, metadata, entry.CreatedOn)
	logger.DatabaseResult("INSERT", 1, err, "activityID", entry.ID)
	return err
}
