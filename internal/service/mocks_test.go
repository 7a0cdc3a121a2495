package service

import (
	"context"

	"hireflow-backend/internal/calendar"
	"hireflow-backend/internal/domain"
	"hireflow-backend/internal/meeting"

	"github.com/stretchr/testify/mock"
)

// MockInterviewRepo
type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) Create(ctx context.Context, iv *domain.Interview) error {
	args := m.Called(ctx, iv)
	return args.Error(0)
}
func (m *MockInterviewRepo) GetByID(ctx context.Context, id int32) (*domain.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) ListByApplication(ctx context.Context, applicationID int32) ([]domain.Interview, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) UpdateStatus(ctx context.Context, id int32, expected domain.InterviewStatus, fields domain.StatusChange) (*domain.Interview, error) {
	args := m.Called(ctx, id, expected, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}
func (m *MockInterviewRepo) SetMeetingLink(ctx context.Context, id int32, link, provider string) error {
	args := m.Called(ctx, id, link, provider)
	return args.Error(0)
}
func (m *MockInterviewRepo) ListScheduledBetween(ctx context.Context, from, to string) ([]domain.Interview, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}

// MockDirectoryRepo
type MockDirectoryRepo struct {
	mock.Mock
}

func (m *MockDirectoryRepo) GetUsersByIDs(ctx context.Context, ids []int32) ([]domain.OrgUser, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrgUser), args.Error(1)
}

// MockCandidateRepo
type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByApplicationID(ctx context.Context, applicationID int32) (*domain.Candidate, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

// MockScorecardRepo
type MockScorecardRepo struct {
	mock.Mock
}

func (m *MockScorecardRepo) ListCompletedByInterviewer(ctx context.Context, interviewerID int32) ([]int32, error) {
	args := m.Called(ctx, interviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}
func (m *MockScorecardRepo) ListScorecardedByInterviewer(ctx context.Context, interviewerID int32) ([]int32, error) {
	args := m.Called(ctx, interviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}

// MockActivityRepo
type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) Append(ctx context.Context, entry *domain.Activity) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendInterviewScheduled(ctx context.Context, recipients []domain.Attendee, iv *domain.Interview, localTime string) error {
	args := m.Called(ctx, recipients, iv, localTime)
	return args.Error(0)
}
func (m *MockNotifier) SendInterviewCancelled(ctx context.Context, recipients []domain.Attendee, iv *domain.Interview, localTime, reason string) error {
	args := m.Called(ctx, recipients, iv, localTime, reason)
	return args.Error(0)
}
func (m *MockNotifier) SendInterviewReminder(ctx context.Context, recipients []domain.Attendee, iv *domain.Interview, localTime string) error {
	args := m.Called(ctx, recipients, iv, localTime)
	return args.Error(0)
}

// MockGateway
type MockGateway struct {
	mock.Mock
	id string
}

func (m *MockGateway) ProviderID() string { return m.id }
func (m *MockGateway) CreateMeeting(ctx context.Context, req meeting.Request) (*meeting.Meeting, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meeting.Meeting), args.Error(1)
}

// MockMirror
type MockMirror struct {
	mock.Mock
}

func (m *MockMirror) CreateEvent(ctx context.Context, ev calendar.Event) (*calendar.CreatedEvent, error) {
	args := m.Called(ctx, ev)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calendar.CreatedEvent), args.Error(1)
}

// MockDispatcher records fan-out calls without spawning goroutines.
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) InterviewScheduled(iv *domain.Interview, attendees []domain.Attendee) {
	m.Called(iv, attendees)
}
func (m *MockDispatcher) InterviewStatusChanged(iv *domain.Interview, attendees []domain.Attendee, reason string) {
	m.Called(iv, attendees, reason)
}
func (m *MockDispatcher) Wait() {
	m.Called()
}
