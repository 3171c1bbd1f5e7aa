package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/abeage1/earwise/internal/audio"
	"github.com/abeage1/earwise/internal/catalog"
)

// MockPlayer is a mock implementation of audio.Player
type MockPlayer struct {
	mock.Mock
}

func (m *MockPlayer) Play(ctx context.Context, spec audio.PitchSpec, mode catalog.Variant) error {
	args := m.Called(ctx, spec, mode)
	return args.Error(0)
}
