package xrandr

import (
	"strings"

	"github.com/chares8191/xrandr-utils/internal/domain/display"
)

// Property labels as xrandr prints them in verbose sections
const (
	edidLabel      = "EDID:"
	connectorLabel = "CONNECTOR_ID:"
)

// EDIDHex collects the hex dump that follows the EDID: property of a section.
// The dump ends at the first blank or non-hex line.
func EDIDHex(output *display.Output) (string, bool) {
	var hex strings.Builder
	capture := false

	for _, line := range output.Lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, edidLabel) {
			capture = true
			continue
		}
		if !capture {
			continue
		}
		if trimmed == "" || !isHexLine(trimmed) {
			break
		}
		for i := 0; i < len(trimmed); i++ {
			if isHexDigit(trimmed[i]) {
				hex.WriteByte(trimmed[i])
			}
		}
	}

	if hex.Len() == 0 {
		return "", false
	}
	return hex.String(), true
}

// ConnectorID reads the CONNECTOR_ID property of a section.
func ConnectorID(output *display.Output) (string, bool) {
	for _, line := range output.Lines {
		rest, found := strings.CutPrefix(strings.TrimSpace(line), connectorLabel)
		if !found {
			continue
		}
		value := strings.TrimSpace(rest)
		if value != "" {
			return value, true
		}
	}
	return "", false
}

func isHexLine(line string) bool {
	for i := 0; i < len(line); i++ {
		if !isHexDigit(line[i]) && !isASCIISpace(line[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func isASCIISpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\f' || b == '\r'
}
