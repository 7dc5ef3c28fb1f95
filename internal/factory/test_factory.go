package factory

import (
	"time"

	"github.com/pradeepsathyan/Court-Badminton/internal/dependencies/mocks"
	"github.com/pradeepsathyan/Court-Badminton/internal/metrics"
	"github.com/pradeepsathyan/Court-Badminton/internal/services/auth"
	"github.com/pradeepsathyan/Court-Badminton/internal/storage/memory"
	"github.com/pradeepsathyan/Court-Badminton/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock   *mocks.MockClock
	MockRandom  *mocks.MockRandom
	MockMetrics *metrics.Mock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockMetrics := metrics.NewMock()

	app := newWithDependencies(store, mockClock, mockRandom, auth.DefaultConfig(), mockMetrics, testutil.NopLogger())

	return &TestApp{
		App:         app,
		MockClock:   mockClock,
		MockRandom:  mockRandom,
		MockMetrics: mockMetrics,
	}
}
