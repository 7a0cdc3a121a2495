package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hireflow-backend/internal/domain"
	"hireflow-backend/internal/logger"
	"hireflow-backend/internal/repository"
)

// dispatcher fans each event out to the notification side and the activity
// log side on detached goroutines. The two targets are independent: each
// has its own timeout and its failure is logged, never escalated, and never
// prevents the other from being attempted.
type dispatcher struct {
	notifier     NotificationSender
	activityRepo repository.ActivityRepository
	noteRepo     repository.NotificationRepository
	timeout      time.Duration
	wg           sync.WaitGroup
}

func NewDispatcher(
	notifier NotificationSender,
	activityRepo repository.ActivityRepository,
	noteRepo repository.NotificationRepository,
	timeout time.Duration,
) Dispatcher {
	return &dispatcher{
		notifier:     notifier,
		activityRepo: activityRepo,
		noteRepo:     noteRepo,
		timeout:      timeout,
	}
}

func (d *dispatcher) InterviewScheduled(iv *domain.Interview, attendees []domain.Attendee) {
	local := formatLocal(iv)

	d.spawn("notification", func(ctx context.Context) error {
		if err := d.notifier.SendInterviewScheduled(ctx, attendees, iv, local); err != nil {
			return err
		}
		d.createInboxNotes(ctx, iv, "Interview scheduled",
			fmt.Sprintf("%q is scheduled for %s", iv.Title, local))
		return nil
	})

	d.spawn("activity_log", func(ctx context.Context) error {
		return d.activityRepo.Append(ctx, &domain.Activity{
			ApplicationID: iv.ApplicationID,
			Type:          domain.ActivityInterviewScheduled,
			Description:   fmt.Sprintf("Interview %q scheduled for %s", iv.Title, local),
			Metadata: map[string]string{
				"interview_id":     fmt.Sprintf("%d", iv.ID),
				"meeting_provider": iv.MeetingProvider,
			},
		})
	})
}

func (d *dispatcher) InterviewStatusChanged(iv *domain.Interview, attendees []domain.Attendee, reason string) {
	local := formatLocal(iv)
	status := iv.Status

	d.spawn("notification", func(ctx context.Context) error {
		if status == domain.InterviewStatusCancelled {
			if err := d.notifier.SendInterviewCancelled(ctx, attendees, iv, local, reason); err != nil {
				return err
			}
		}
		d.createInboxNotes(ctx, iv, "Interview status changed",
			fmt.Sprintf("%q is now %s", iv.Title, status))
		return nil
	})

	d.spawn("activity_log", func(ctx context.Context) error {
		return d.activityRepo.Append(ctx, &domain.Activity{
			ApplicationID: iv.ApplicationID,
			Type:          domain.ActivityInterviewStatus,
			Description:   fmt.Sprintf("Interview %q moved to %s", iv.Title, status),
			Metadata: map[string]string{
				"interview_id": fmt.Sprintf("%d", iv.ID),
				"new_status":   string(status),
			},
		})
	})
}

// spawn runs one fan-out target detached from the caller. The caller's
// context is deliberately not inherited: the primary operation has already
// committed and its cancellation must not abort the side effect.
func (d *dispatcher) spawn(target string, fn func(ctx context.Context) error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Dispatch target panicked", "target", target, "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			derr := &domain.DispatchError{Target: target, Err: err}
			logger.Error("Best-effort dispatch failed", "target", target, "error", derr)
		}
	}()
}

func (d *dispatcher) createInboxNotes(ctx context.Context, iv *domain.Interview, title, message string) {
	for _, userID := range iv.InterviewerIDs {
		note := &domain.Notification{
			UserID:  userID,
			Title:   title,
			Message: message,
			Attributes: map[string]string{
				"type":         "INTERVIEW",
				"interview_id": fmt.Sprintf("%d", iv.ID),
			},
		}
		if err := d.noteRepo.Create(ctx, note); err != nil {
			logger.Error("Failed to create inbox notification", "userID", userID, "error", err)
		}
	}
}

func (d *dispatcher) Wait() {
	d.wg.Wait()
}

// formatLocal renders the scheduled instant in the interview's own timezone
// for human-readable payloads.
func formatLocal(iv *domain.Interview) string {
	return fmt.Sprintf("%s (%s)", iv.LocalStart().Format("Mon, 02 Jan 2006 15:04"), iv.Timezone)
}
