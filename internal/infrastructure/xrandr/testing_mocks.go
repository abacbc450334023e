//go:build unit
// +build unit

package xrandr

import (
	"github.com/stretchr/testify/mock"

	"github.com/chares8191/xrandr-utils/internal/domain/display"
)

// MockReportProvider is a mock implementation of ReportProvider
type MockReportProvider struct {
	mock.Mock
}

func (m *MockReportProvider) Report() (display.Report, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(display.Report), args.Error(1)
}
