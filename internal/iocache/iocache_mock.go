package iocache

import (
	"context"

	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/schema"
	"github.com/stretchr/testify/mock"
)

// MockSampleStore is a mock implementation of SampleStore for testing.
type MockSampleStore struct {
	mock.Mock
}

var _ contract.SampleStore = &MockSampleStore{} // Compile-time check

// Import implements the SampleStore interface.
func (m *MockSampleStore) Import(ctx context.Context, source string, curves []schema.Curve) (int64, error) {
	args := m.Called(ctx, source, curves)
	return args.Get(0).(int64), args.Error(1)
}

// Load implements the SampleStore interface.
func (m *MockSampleStore) Load(ctx context.Context, runID int64) ([]schema.Curve, error) {
	args := m.Called(ctx, runID)
	curves, _ := args.Get(0).([]schema.Curve)
	return curves, args.Error(1)
}

// Runs implements the SampleStore interface.
func (m *MockSampleStore) Runs(ctx context.Context) ([]schema.ImportRun, error) {
	args := m.Called(ctx)
	runs, _ := args.Get(0).([]schema.ImportRun)
	return runs, args.Error(1)
}

// Close implements the SampleStore interface.
func (m *MockSampleStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
