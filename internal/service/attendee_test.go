package service

import (
	"context"
	"errors"
	"testing"

	"hireflow-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAttendeeResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("InvalidGuestEmailFailsBeforeLookups", func(t *testing.T) {
		directory := new(MockDirectoryRepo)
		candidates := new(MockCandidateRepo)
		resolver := NewAttendeeResolver(directory, candidates)

		_, _, err := resolver.Resolve(ctx, &domain.SchedulingRequest{
			ApplicationID:  1,
			InterviewerIDs: []int32{10},
			GuestEmails:    []string{"not-an-email"},
		})

		var verr *domain.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Equal(t, "invalid_email", verr.Reason)
		assert.Equal(t, "not-an-email", verr.Value)
		directory.AssertNotCalled(t, "GetUsersByIDs", mock.Anything, mock.Anything)
		candidates.AssertNotCalled(t, "GetByApplicationID", mock.Anything, mock.Anything)
	})

	t.Run("MissingInterviewerDroppedWithWarning", func(t *testing.T) {
		directory := new(MockDirectoryRepo)
		candidates := new(MockCandidateRepo)
		resolver := NewAttendeeResolver(directory, candidates)

		directory.On("GetUsersByIDs", ctx, []int32{10, 11}).Return([]domain.OrgUser{
			{ID: 10, Email: "alice@corp.com", DisplayName: "Alice"},
		}, nil)
		candidates.On("GetByApplicationID", ctx, int32(1)).Return(&domain.Candidate{
			ApplicationID: 1, Email: "cand@mail.com", DisplayName: "Cand",
		}, nil)

		attendees, warnings, err := resolver.Resolve(ctx, &domain.SchedulingRequest{
			ApplicationID:  1,
			InterviewerIDs: []int32{10, 11},
		})

		assert.NoError(t, err)
		assert.Len(t, attendees, 2)
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "interviewer 11")
	})

	t.Run("DeduplicatesCaseInsensitively", func(t *testing.T) {
		directory := new(MockDirectoryRepo)
		candidates := new(MockCandidateRepo)
		resolver := NewAttendeeResolver(directory, candidates)

		directory.On("GetUsersByIDs", ctx, []int32{10}).Return([]domain.OrgUser{
			{ID: 10, Email: "Alice@Corp.com", DisplayName: "Alice"},
		}, nil)
		candidates.On("GetByApplicationID", ctx, int32(1)).Return(&domain.Candidate{
			ApplicationID: 1, Email: "cand@mail.com", DisplayName: "Cand",
		}, nil)

		attendees, warnings, err := resolver.Resolve(ctx, &domain.SchedulingRequest{
			ApplicationID:  1,
			InterviewerIDs: []int32{10},
			GuestEmails:    []string{"alice@corp.com"},
		})

		assert.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Len(t, attendees, 2)
		// First occurrence wins: the interviewer entry, not the guest
		assert.Equal(t, "Alice@Corp.com", attendees[0].Email)
		assert.Equal(t, domain.AttendeeOriginInterviewer, attendees[0].Origin)
	})

	t.Run("CandidateRetagsExistingEntry", func(t *testing.T) {
		directory := new(MockDirectoryRepo)
		candidates := new(MockCandidateRepo)
		resolver := NewAttendeeResolver(directory, candidates)

		candidates.On("GetByApplicationID", ctx, int32(1)).Return(&domain.Candidate{
			ApplicationID: 1, Email: "Shared@Mail.com", DisplayName: "Cand",
		}, nil)

		attendees, warnings, err := resolver.Resolve(ctx, &domain.SchedulingRequest{
			ApplicationID: 1,
			GuestEmails:   []string{"shared@mail.com"},
		})

		assert.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Len(t, attendees, 1)
		assert.Equal(t, domain.AttendeeOriginCandidate, attendees[0].Origin)
		assert.Equal(t, "Cand", attendees[0].DisplayName)
	})

	t.Run("UnresolvableCandidateWarnsOnly", func(t *testing.T) {
		directory := new(MockDirectoryRepo)
		candidates := new(MockCandidateRepo)
		resolver := NewAttendeeResolver(directory, candidates)

		candidates.On("GetByApplicationID", ctx, int32(7)).Return(nil, errors.New("no rows"))

		attendees, warnings, err := resolver.Resolve(ctx, &domain.SchedulingRequest{
			ApplicationID: 7,
			GuestEmails:   []string{"guest@mail.com"},
		})

		assert.NoError(t, err)
		assert.Len(t, attendees, 1)
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "application 7")
	})

	t.Run("BlankGuestEntriesIgnored", func(t *testing.T) {
		directory := new(MockDirectoryRepo)
		candidates := new(MockCandidateRepo)
		resolver := NewAttendeeResolver(directory, candidates)

		candidates.On("GetByApplicationID", ctx, int32(1)).Return(&domain.Candidate{
			ApplicationID: 1, Email: "cand@mail.com",
		}, nil)

		attendees, _, err := resolver.Resolve(ctx, &domain.SchedulingRequest{
			ApplicationID: 1,
			GuestEmails:   []string{"", "   "},
		})

		assert.NoError(t, err)
		assert.Len(t, attendees, 1)
		assert.Equal(t, domain.AttendeeOriginCandidate, attendees[0].Origin)
	})
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, isValidEmail("jane@example.com"))
	assert.True(t, isValidEmail("jane+tag@sub.example.co"))
	assert.False(t, isValidEmail("not-an-email"))
	assert.False(t, isValidEmail("Jane Doe <jane@example.com>"))
	assert.False(t, isValidEmail(""))
}
