package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/abeage1/earwise/internal/catalog"
	"github.com/abeage1/earwise/internal/models"
)

// MockStateRepository is a mock implementation of repository.StateRepository
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) SaveDeck(ctx context.Context, domain catalog.Domain, state models.DeckState) error {
	args := m.Called(ctx, domain, state)
	return args.Error(0)
}

func (m *MockStateRepository) LoadDeck(ctx context.Context, domain catalog.Domain) (*models.DeckState, error) {
	args := m.Called(ctx, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeckState), args.Error(1)
}

func (m *MockStateRepository) SaveProgression(ctx context.Context, domain catalog.Domain, state models.ProgressionState) error {
	args := m.Called(ctx, domain, state)
	return args.Error(0)
}

func (m *MockStateRepository) LoadProgression(ctx context.Context, domain catalog.Domain) (*models.ProgressionState, error) {
	args := m.Called(ctx, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProgressionState), args.Error(1)
}

func (m *MockStateRepository) SaveSettings(ctx context.Context, settings models.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockStateRepository) LoadSettings(ctx context.Context) (*models.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Settings), args.Error(1)
}

func (m *MockStateRepository) SaveStats(ctx context.Context, stats models.Stats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

func (m *MockStateRepository) LoadStats(ctx context.Context) (*models.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stats), args.Error(1)
}

func (m *MockStateRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
