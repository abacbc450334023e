package xrandr

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/chares8191/xrandr-utils/internal/domain/display"
	"github.com/chares8191/xrandr-utils/internal/pkg/config"
	"github.com/chares8191/xrandr-utils/internal/pkg/logger"
	"github.com/chares8191/xrandr-utils/internal/pkg/utils"
)

// layoutManager reconfigures outputs by spawning xrandr with layout arguments
type layoutManager struct {
	settings *config.ToolSettings
	provider display.ReportProvider
	logger   logger.Logger
}

// NewLayoutManager creates and returns a new instance of LayoutManager
func NewLayoutManager(settings *config.ToolSettings, provider display.ReportProvider, logger logger.Logger) (display.LayoutManager, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate settings: %w", err)
	}

	return &layoutManager{
		settings: settings,
		provider: provider,
		logger:   logger,
	}, nil
}

// SingleDisplay makes keep the primary output and turns every other output off.
func (m *layoutManager) SingleDisplay(keep string) error {
	if err := utils.CheckNonEmptyStrings(keep); err != nil {
		return fmt.Errorf("failed to check non-empty string for keep='%s': %w", keep, err)
	}

	report, err := m.provider.Report()
	if err != nil {
		return err
	}
	if _, ok := report.Find(keep); !ok {
		return fmt.Errorf("display not found: %s", keep)
	}

	return m.runXrandr(singleLayoutArgs(keep, report.NamesExcluding(keep)))
}

// DualDisplay makes left the primary output with right extending to its right
// and turns every other output off.
func (m *layoutManager) DualDisplay(left, right string) error {
	if err := utils.CheckNonEmptyStrings(left, right); err != nil {
		return fmt.Errorf("failed to check non-empty strings for left='%s' and right='%s': %w", left, right, err)
	}

	report, err := m.provider.Report()
	if err != nil {
		return err
	}
	if left == right {
		return errors.New("left and right displays must be different")
	}
	if _, ok := report.Find(left); !ok {
		return fmt.Errorf("display not found: %s", left)
	}
	if _, ok := report.Find(right); !ok {
		return fmt.Errorf("display not found: %s", right)
	}

	return m.runXrandr(dualLayoutArgs(left, right, report.NamesExcluding(left, right)))
}

// singleLayoutArgs builds the xrandr arguments that keep one output as
// primary and turn the off targets off.
func singleLayoutArgs(keep string, off []string) []string {
	args := []string{"--output", keep, "--primary", "--auto"}
	return append(args, offArgs(off)...)
}

// dualLayoutArgs builds the xrandr arguments that place right next to the
// primary left output and turn the off targets off.
func dualLayoutArgs(left, right string, off []string) []string {
	args := []string{
		"--output", left, "--primary", "--auto",
		"--output", right, "--auto", "--right-of", left,
	}
	return append(args, offArgs(off)...)
}

func offArgs(names []string) []string {
	var args []string
	for _, name := range names {
		args = append(args, "--output", name, "--off")
	}
	return args
}

// runXrandr spawns xrandr with inherited stdio so its messages reach the user.
func (m *layoutManager) runXrandr(args []string) error {
	m.logger.Info(fmt.Sprintf("running %s %s", m.settings.XrandrPath, strings.Join(args, " ")))

	// #nosec G204 -- xrandr path comes from validated tool settings, output names from the parsed report
	cmd := exec.Command(m.settings.XrandrPath, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("xrandr command failed: %s", exitErr.ProcessState)
		}
		return fmt.Errorf("failed to run xrandr: %w", err)
	}
	return nil
}
