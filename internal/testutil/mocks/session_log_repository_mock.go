package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/abeage1/earwise/internal/models"
	"github.com/abeage1/earwise/internal/repository"
)

// MockSessionLogRepository is a mock implementation of repository.SessionLogRepository
type MockSessionLogRepository struct {
	mock.Mock
}

func (m *MockSessionLogRepository) Insert(ctx context.Context, rec models.SessionRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockSessionLogRepository) List(ctx context.Context, filter repository.SessionLogFilter) ([]models.SessionRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SessionRecord), args.Error(1)
}
