package service

import (
	"context"
	"fmt"

	"hireflow-backend/internal/domain"
	"hireflow-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridNotifier struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridNotifier(apiKey, fromEmail, fromName string) NotificationSender {
	return &sendGridNotifier{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridNotifier) SendInterviewScheduled(ctx context.Context, recipients []domain.Attendee, iv *domain.Interview, localTime string) error {
	subject := fmt.Sprintf("Interview scheduled: %s", iv.Title)
	plain := fmt.Sprintf("Your interview %q has been scheduled for %s.", iv.Title, localTime)
	html := fmt.Sprintf("<p>Your interview <strong>%s</strong> has been scheduled for <strong>%s</strong>.</p>", iv.Title, localTime)

	if iv.Type == domain.InterviewTypeInPerson {
		if iv.Location != "" {
			plain += fmt.Sprintf("\nLocation: %s", iv.Location)
			html += fmt.Sprintf("<p>Location: %s</p>", iv.Location)
		}
	} else if iv.MeetingLink != "" {
		plain += fmt.Sprintf("\nJoin: %s", iv.MeetingLink)
		html += fmt.Sprintf(`<p><a href="%s">Join the meeting</a></p>`, iv.MeetingLink)
	}

	return s.send(ctx, "SendInterviewScheduled", recipients, subject, plain, html)
}

func (s *sendGridNotifier) SendInterviewCancelled(ctx context.Context, recipients []domain.Attendee, iv *domain.Interview, localTime, reason string) error {
	subject := fmt.Sprintf("Interview cancelled: %s", iv.Title)
	plain := fmt.Sprintf("The interview %q planned for %s has been cancelled.", iv.Title, localTime)
	html := fmt.Sprintf("<p>The interview <strong>%s</strong> planned for %s has been cancelled.</p>", iv.Title, localTime)
	if reason != "" {
		plain += fmt.Sprintf("\nReason: %s", reason)
		html += fmt.Sprintf("<p>Reason: %s</p>", reason)
	}

	return s.send(ctx, "SendInterviewCancelled", recipients, subject, plain, html)
}

func (s *sendGridNotifier) SendInterviewReminder(ctx context.Context, recipients []domain.Attendee, iv *domain.Interview, localTime string) error {
	subject := fmt.Sprintf("Reminder: %s", iv.Title)
	plain := fmt.Sprintf("This is a reminder that the interview %q takes place on %s.", iv.Title, localTime)
	html := fmt.Sprintf("<p>This is a reminder that the interview <strong>%s</strong> takes place on <strong>%s</strong>.</p>", iv.Title, localTime)
	if iv.Type == domain.InterviewTypeVideo && iv.MeetingLink != "" {
		plain += fmt.Sprintf("\nJoin: %s", iv.MeetingLink)
		html += fmt.Sprintf(`<p><a href="%s">Join the meeting</a></p>`, iv.MeetingLink)
	}

	return s.send(ctx, "SendInterviewReminder", recipients, subject, plain, html)
}

// send addresses every recipient through its own personalization so no
// attendee sees the others' addresses.
func (s *sendGridNotifier) send(ctx context.Context, operation string, recipients []domain.Attendee, subject, plain, html string) error {
	if len(recipients) == 0 {
		return nil
	}

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(s.fromName, s.fromEmail))
	message.Subject = subject
	message.AddContent(mail.NewContent("text/plain", plain), mail.NewContent("text/html", html))

	for _, r := range recipients {
		p := mail.NewPersonalization()
		p.AddTos(mail.NewEmail(r.DisplayName, r.Email))
		message.AddPersonalizations(p)
	}

	logger.ExternalServiceCall("sendgrid", operation, "recipients", len(recipients))
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", operation, err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", operation, err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", operation, nil)
	return nil
}
