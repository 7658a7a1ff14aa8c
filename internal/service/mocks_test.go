package service

import (
	"context"
	"errors"
	"time"

	"quiz-brief/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockCompletionClient ---
type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) Complete(ctx context.Context, promptText, systemInstruction string) (string, error) {
	args := m.Called(ctx, promptText, systemInstruction)
	return args.String(0), args.Error(1)
}

// --- MockSummarizer ---
type MockSummarizer struct {
	mock.Mock
}

func (m *MockSummarizer) Summarize(ctx context.Context, sourceText string) (string, error) {
	args := m.Called(ctx, sourceText)
	return args.String(0), args.Error(1)
}

// --- MockQuizGenerator ---
type MockQuizGenerator struct {
	mock.Mock
}

func (m *MockQuizGenerator) GenerateQuestions(ctx context.Context, summaryText string) ([]domain.Question, error) {
	args := m.Called(ctx, summaryText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

// --- MockStudySetStore ---
type MockStudySetStore struct {
	mock.Mock
}

func (m *MockStudySetStore) Put(ctx context.Context, set *domain.StudySet) error {
	args := m.Called(ctx, set)
	return args.Error(0)
}

func (m *MockStudySetStore) Get(ctx context.Context, id string) (*domain.StudySet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudySet), args.Error(1)
}

func (m *MockStudySetStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStudySetStore) Persistent() bool {
	args := m.Called()
	return args.Bool(0)
}

// ManualMockCache for domain.Cache interface
type ManualMockCache struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key string, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
	PingFunc   func(ctx context.Context) error
}

func (m *ManualMockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", errors.New("GetFunc not set")
}

func (m *ManualMockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return errors.New("SetFunc not set")
}

func (m *ManualMockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return errors.New("DeleteFunc not set")
}

func (m *ManualMockCache) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return errors.New("PingFunc not set")
}
