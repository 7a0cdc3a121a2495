package jobs

import (
	"hireflow-backend/internal/config"
	"hireflow-backend/internal/logger"
	"hireflow-backend/internal/repository"
	"hireflow-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	interviewRepo repository.InterviewRepository
	resolver      *service.AttendeeResolver
	notifier      service.NotificationSender
	config        *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	interviewRepo repository.InterviewRepository,
	resolver *service.AttendeeResolver,
	notifier service.NotificationSender,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		interviewRepo: interviewRepo,
		resolver:      resolver,
		notifier:      notifier,
		config:        cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
