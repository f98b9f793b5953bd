package service

import (
	"bugbot/internal/core/domain"
	"context"
	"sync"
	"time"
)

type MockReminderStore struct {
	mu        sync.Mutex
	due       []domain.Reminder
	findErr   error
	findCalls int
	touched   map[string]time.Time
	touchErr  error
	deleted   []string
	deleteErr error
}

func (m *MockReminderStore) Create(_ context.Context, userID int64, what string,
	intervalMinutes int) (domain.Reminder, error) {
	if err := domain.ValidateInterval(intervalMinutes); err != nil {
		return domain.Reminder{}, err
	}

	now := time.Now()
	return domain.Reminder{
		ID: "created", UserID: userID, What: what,
		IntervalMinutes: intervalMinutes, LastNotified: now, Started: now,
	}, nil
}

// FindDue drains the due set on first read, mimicking the touch that makes
// real reminders not-due for the rest of their interval.
func (m *MockReminderStore) FindDue(_ context.Context, _ time.Time) ([]domain.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.findCalls++
	if m.findErr != nil {
		return nil, m.findErr
	}

	due := m.due
	m.due = nil
	return due, nil
}

func (m *MockReminderStore) TouchNotified(_ context.Context, id string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.touched == nil {
		m.touched = make(map[string]time.Time)
	}
	m.touched[id] = now
	return m.touchErr
}

func (m *MockReminderStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.deleted = append(m.deleted, id)
	return m.deleteErr
}

func (m *MockReminderStore) FindCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findCalls
}

func (m *MockReminderStore) Touched(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.touched[id]
	return ok
}

func (m *MockReminderStore) Deleted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deleted...)
}

type MockDirectSender struct {
	mu          sync.Mutex
	prompts     []string
	sendErr     error
	panicOnSend bool
	response    domain.Response
	respErr     error
	acks        []string
	ackErr      error
}

func (m *MockDirectSender) SendPrompt(_ context.Context, userID int64, text string,
	_ []domain.ResponseOption) (domain.MessageHandle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.panicOnSend {
		panic("send prompt exploded")
	}

	if m.sendErr != nil {
		return domain.MessageHandle{}, m.sendErr
	}

	m.prompts = append(m.prompts, text)
	return domain.MessageHandle{ChatID: userID, MessageID: len(m.prompts)}, nil
}

func (m *MockDirectSender) AwaitResponse(_ context.Context, _ domain.MessageHandle, _ int64,
	_ time.Duration) (domain.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.respErr != nil {
		return domain.Response{}, m.respErr
	}

	return m.response, nil
}

func (m *MockDirectSender) Acknowledge(_ context.Context, _ domain.MessageHandle, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.acks = append(m.acks, text)
	return m.ackErr
}

func (m *MockDirectSender) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

func (m *MockDirectSender) Acks() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.acks...)
}

type MockNicknameStore struct {
	nickname string
	err      error
}

func (m *MockNicknameStore) Set(_ context.Context, _ int64, _ string) error {
	return m.err
}

func (m *MockNicknameStore) Clear(_ context.Context, _ int64) (int64, error) {
	return 0, m.err
}

func (m *MockNicknameStore) Get(_ context.Context, _ int64) (string, error) {
	return m.nickname, m.err
}

type MockUserDirectory struct {
	username string
	err      error
}

func (m *MockUserDirectory) LookupUsername(_ context.Context, _ int64) (string, error) {
	return m.username, m.err
}
