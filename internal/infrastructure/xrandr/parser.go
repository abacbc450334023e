package xrandr

import (
	"strings"

	"github.com/chares8191/xrandr-utils/internal/domain/display"
	"github.com/chares8191/xrandr-utils/internal/pkg/validators"
)

// ParseVerbose splits an xrandr --verbose report into per-output sections.
// A line whose second field is a connection state starts a new section; lines
// before the first header, such as the Screen summary, are dropped.
func ParseVerbose(verbose string) display.Report {
	var report display.Report
	var current *display.Output

	for _, line := range reportLines(verbose) {
		if header, ok := parseHeader(line); ok {
			if current != nil {
				report = append(report, *current)
			}
			header.Lines = []string{line}
			current = &header
			continue
		}
		if current != nil {
			current.Lines = append(current.Lines, line)
		}
	}

	if current != nil {
		report = append(report, *current)
	}

	return report
}

// parseHeader reads an output header line such as
// "HDMI-1 connected primary 1920x1080+0+0 (0x47) normal ... 598mm x 336mm".
func parseHeader(line string) (display.Output, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return display.Output{}, false
	}

	state := display.State(fields[1])
	switch state {
	case display.Connected, display.Disconnected:
	default:
		return display.Output{}, false
	}

	output := display.Output{
		Name:  fields[0],
		State: state,
	}

	for _, token := range fields[2:] {
		if token == "primary" {
			output.Primary = true
		} else if output.Geometry == "" && validators.IsGeometryToken(token) {
			output.Geometry = token
		}
	}

	return output, true
}

// reportLines splits the report into lines, dropping the empty trailing line
// a final newline would otherwise produce.
func reportLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
