package xrandr

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/chares8191/xrandr-utils/internal/domain/display"
	"github.com/chares8191/xrandr-utils/internal/pkg/config"
	"github.com/chares8191/xrandr-utils/internal/pkg/logger"
)

// reportProvider reads xrandr --verbose output, preferring a report piped on
// stdin over spawning xrandr itself.
type reportProvider struct {
	settings *config.ToolSettings
	logger   logger.Logger
	stdin    *os.File
}

// NewReportProvider creates and returns a new instance of ReportProvider
func NewReportProvider(settings *config.ToolSettings, logger logger.Logger) (display.ReportProvider, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate settings: %w", err)
	}

	return &reportProvider{
		settings: settings,
		logger:   logger,
		stdin:    os.Stdin,
	}, nil
}

// Report parses the current verbose report into output sections.
func (p *reportProvider) Report() (display.Report, error) {
	text, err := p.verboseText()
	if err != nil {
		return nil, err
	}

	report := ParseVerbose(text)
	p.logger.Debug(fmt.Sprintf("parsed %d output sections", len(report)))
	return report, nil
}

// verboseText returns the report piped on stdin when there is one; an
// interactive terminal on stdin means nothing was piped and xrandr is spawned
// instead.
func (p *reportProvider) verboseText() (string, error) {
	if !isatty.IsTerminal(p.stdin.Fd()) {
		return p.fromStdin()
	}
	return p.fromCommand()
}

func (p *reportProvider) fromStdin() (string, error) {
	data, err := io.ReadAll(p.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", errors.New("stdin supplied but empty")
	}
	return text, nil
}

func (p *reportProvider) fromCommand() (string, error) {
	// #nosec G204 -- xrandr path comes from validated tool settings
	cmd := exec.Command(p.settings.XrandrPath, "--verbose")

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", errors.New("xrandr --verbose exited with failure")
		}
		return "", fmt.Errorf("failed to run xrandr --verbose: %w", err)
	}
	return string(output), nil
}
