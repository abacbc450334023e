//go:build unit
// +build unit

package commands

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

// MockEDIDDecoder is a mock implementation of EDIDDecoder
type MockEDIDDecoder struct {
	mock.Mock
}

func (m *MockEDIDDecoder) Decode(hexDump string) (string, error) {
	args := m.Called(hexDump)
	return args.String(0), args.Error(1)
}

// MockLayoutManager is a mock implementation of LayoutManager
type MockLayoutManager struct {
	mock.Mock
}

func (m *MockLayoutManager) SingleDisplay(keep string) error {
	args := m.Called(keep)
	return args.Error(0)
}

func (m *MockLayoutManager) DualDisplay(left, right string) error {
	args := m.Called(left, right)
	return args.Error(0)
}
