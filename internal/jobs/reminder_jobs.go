package jobs

import (
	"context"
	"time"

	"hireflow-backend/internal/logger"
)

// SendInterviewReminders emails everyone attached to interviews starting in
// the next 24 hours. Reminders are informational only; they never drive
// lifecycle transitions.
func (jr *JobRunner) SendInterviewReminders() {
	jr.runWithRecovery("SendInterviewReminders", func() {
		ctx := context.Background()

		now := time.Now().UTC()
		from := now.Format(time.RFC3339)
		to := now.Add(24 * time.Hour).Format(time.RFC3339)

		interviews, err := jr.interviewRepo.ListScheduledBetween(ctx, from, to)
		if err != nil {
			logger.Error("Failed to list upcoming interviews", "error", err)
			return
		}

		count := 0
		for i := range interviews {
			iv := &interviews[i]
			recipients := jr.resolver.ResolveForInterview(ctx, iv)
			if len(recipients) == 0 {
				logger.Warn("No recipients resolved for reminder", "interview_id", iv.ID)
				continue
			}

			local := iv.LocalStart().Format("Mon, 02 Jan 2006 15:04") + " (" + iv.Timezone + ")"
			if err := jr.notifier.SendInterviewReminder(ctx, recipients, iv, local); err != nil {
				logger.Error("Failed to send interview reminder",
					"interview_id", iv.ID,
					"error", err)
				continue
			}
			count++
		}
		logger.Info("Interview reminders sent", "count", count, "window_start", from, "window_end", to)
	})
}
