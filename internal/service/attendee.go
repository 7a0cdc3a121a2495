package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"hireflow-backend/internal/domain"
	"hireflow-backend/internal/repository"
)

// AttendeeResolver builds the deduplicated participant list for a meeting
// from the directory, the application's candidate and the request's external
// guests. It has no side effects.
type AttendeeResolver struct {
	directory  repository.DirectoryRepository
	candidates repository.CandidateRepository
}

func NewAttendeeResolver(directory repository.DirectoryRepository, candidates repository.CandidateRepository) *AttendeeResolver {
	return &AttendeeResolver{directory: directory, candidates: candidates}
}

// Resolve returns the ordered attendee list plus non-fatal warnings.
// Invalid guest emails fail with *domain.ValidationError before anything
// else is looked up; unresolvable interviewer ids are dropped with a warning
// so stale directory data cannot block scheduling.
func (r *AttendeeResolver) Resolve(ctx context.Context, req *domain.SchedulingRequest) ([]domain.Attendee, []string, error) {
	guests := make([]string, 0, len(req.GuestEmails))
	for _, raw := range req.GuestEmails {
		email := strings.TrimSpace(raw)
		if email == "" {
			continue
		}
		if !isValidEmail(email) {
			return nil, nil, &domain.ValidationError{Reason: "invalid_email", Value: raw}
		}
		guests = append(guests, email)
	}

	var warnings []string
	var attendees []domain.Attendee
	seen := make(map[string]int) // lowercased email -> index into attendees

	add := func(a domain.Attendee) {
		key := strings.ToLower(a.Email)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = len(attendees)
		attendees = append(attendees, a)
	}

	if len(req.InterviewerIDs) > 0 {
		users, err := r.directory.GetUsersByIDs(ctx, req.InterviewerIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("directory lookup failed: %w", err)
		}
		byID := make(map[int32]domain.OrgUser, len(users))
		for _, u := range users {
			byID[u.ID] = u
		}
		for _, id := range req.InterviewerIDs {
			u, ok := byID[id]
			if !ok {
				warnings = append(warnings, fmt.Sprintf("interviewer %d not found in directory and was dropped", id))
				continue
			}
			add(domain.Attendee{Email: u.Email, DisplayName: u.DisplayName, Origin: domain.AttendeeOriginInterviewer})
		}
	}

	for _, email := range guests {
		add(domain.Attendee{Email: email, Origin: domain.AttendeeOriginExternal})
	}

	// The candidate is always included exactly once. If their email already
	// appears (shared mailbox, interviewer scheduling themselves), the
	// existing entry is retagged rather than duplicated.
	candidate, err := r.candidates.GetByApplicationID(ctx, req.ApplicationID)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("candidate for application %d could not be resolved", req.ApplicationID))
	} else {
		key := strings.ToLower(candidate.Email)
		if idx, dup := seen[key]; dup {
			attendees[idx].Origin = domain.AttendeeOriginCandidate
			attendees[idx].DisplayName = candidate.DisplayName
		} else {
			add(domain.Attendee{Email: candidate.Email, DisplayName: candidate.DisplayName, Origin: domain.AttendeeOriginCandidate})
		}
	}

	return attendees, warnings, nil
}

// ResolveForInterview rebuilds the recipient list for an already persisted
// interview (status-change notifications, reminders). External guests are
// not persisted on the interview record, so they are not re-notified here.
func (r *AttendeeResolver) ResolveForInterview(ctx context.Context, iv *domain.Interview) []domain.Attendee {
	attendees, _, err := r.Resolve(ctx, &domain.SchedulingRequest{
		ApplicationID:  iv.ApplicationID,
		InterviewerIDs: iv.InterviewerIDs,
	})
	if err != nil {
		return nil
	}
	return attendees
}

// isValidEmail applies the standard address-syntax rule. Display-name forms
// ("Jane <jane@x.com>") are rejected; guests arrive as bare addresses.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(email, "@")
}
