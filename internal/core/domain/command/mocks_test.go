package command

import (
	"bugbot/internal/core/domain"
	"context"
	"time"
)

type MockTextSender struct {
	err     error
	Message string
}

func (m *MockTextSender) SendMessageReply(_ context.Context, _ *domain.Message, text string) (int, error) {
	m.Message = text
	return 0, m.err
}

type MockReminderStore struct {
	createErr error

	CreatedUserID   int64
	CreatedWhat     string
	CreatedInterval int
	CreateCalls     int
}

func (m *MockReminderStore) Create(_ context.Context, userID int64, what string,
	intervalMinutes int) (domain.Reminder, error) {
	if err := domain.ValidateInterval(intervalMinutes); err != nil {
		return domain.Reminder{}, err
	}

	if m.createErr != nil {
		return domain.Reminder{}, m.createErr
	}

	m.CreateCalls++
	m.CreatedUserID = userID
	m.CreatedWhat = what
	m.CreatedInterval = intervalMinutes

	now := time.Now()
	return domain.Reminder{
		ID: "created", UserID: userID, What: what,
		IntervalMinutes: intervalMinutes, LastNotified: now, Started: now,
	}, nil
}

func (m *MockReminderStore) FindDue(_ context.Context, _ time.Time) ([]domain.Reminder, error) {
	return nil, nil
}

func (m *MockReminderStore) TouchNotified(_ context.Context, _ string, _ time.Time) error {
	return nil
}

func (m *MockReminderStore) Delete(_ context.Context, _ string) error {
	return nil
}

type MockNicknameStore struct {
	nickname string
	err      error
	cleared  int64

	SetUserID   int64
	SetNickname string
}

func (m *MockNicknameStore) Set(_ context.Context, userID int64, nickname string) error {
	if m.err != nil {
		return m.err
	}

	m.SetUserID = userID
	m.SetNickname = nickname
	return nil
}

func (m *MockNicknameStore) Clear(_ context.Context, _ int64) (int64, error) {
	return m.cleared, m.err
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

type MockGifSearcher struct {
	url string
	err error
}

func (m *MockGifSearcher) SearchGif(_ context.Context, _ string) (string, error) {
	return m.url, m.err
}

type MockTextGenerator struct {
	response string
	err      error
}

func (m *MockTextGenerator) GenerateFromPrompt(_ context.Context, _ string) (string, error) {
	return m.response, m.err
}
