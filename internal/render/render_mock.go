package render

import (
	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/schema"
	"github.com/stretchr/testify/mock"
)

// MockRenderer is a mock implementation of Renderer for testing.
type MockRenderer struct {
	mock.Mock
}

var _ contract.Renderer = &MockRenderer{} // Compile-time check

// Render implements the Renderer interface.
func (m *MockRenderer) Render(desc schema.PlotDescription) (contract.Job, error) {
	args := m.Called(desc)
	job, _ := args.Get(0).(contract.Job)
	return job, args.Error(1)
}

// MockJob is a mock implementation of Job for testing.
type MockJob struct {
	mock.Mock
}

var _ contract.Job = &MockJob{} // Compile-time check

// Done implements the Job interface.
func (m *MockJob) Done() <-chan struct{} {
	args := m.Called()
	ch, _ := args.Get(0).(<-chan struct{})
	return ch
}

// Wait implements the Job interface.
func (m *MockJob) Wait() error {
	args := m.Called()
	return args.Error(0)
}

// Output implements the Job interface.
func (m *MockJob) Output() string {
	args := m.Called()
	return args.String(0)
}

// CompletedJob returns a finished job for output with the given error.
func CompletedJob(output string, err error) contract.Job {
	return start(output, func() error { return err })
}
