package edid

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"

	"github.com/chares8191/xrandr-utils/internal/domain/display"
	"github.com/chares8191/xrandr-utils/internal/pkg/config"
	"github.com/chares8191/xrandr-utils/internal/pkg/logger"
)

// decoder renders EDID blocks through the edid-decode tool
type decoder struct {
	settings *config.ToolSettings
	logger   logger.Logger
}

// NewDecoder creates and returns a new instance of EDIDDecoder
func NewDecoder(settings *config.ToolSettings, logger logger.Logger) (display.EDIDDecoder, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate settings: %w", err)
	}

	return &decoder{
		settings: settings,
		logger:   logger,
	}, nil
}

// Decode feeds the raw EDID bytes to edid-decode and returns its report.
func (d *decoder) Decode(hexDump string) (string, error) {
	raw, err := HexToBytes(hexDump)
	if err != nil {
		return "", err
	}

	d.logger.Debug(fmt.Sprintf("decoding %d byte edid block", len(raw)))

	// #nosec G204 -- edid-decode path comes from validated tool settings
	cmd := exec.Command(d.settings.EdidDecodePath)
	cmd.Stdin = bytes.NewReader(raw)

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", errors.New("edid-decode exited with failure")
		}
		return "", fmt.Errorf("failed to run edid-decode: %w", err)
	}
	return string(output), nil
}

// HexToBytes converts a hex dump to raw bytes, ignoring whitespace between
// digits.
func HexToBytes(hexDump string) ([]byte, error) {
	var digits []rune
	for _, r := range hexDump {
		if !isASCIISpace(r) {
			digits = append(digits, r)
		}
	}

	if len(digits)%2 != 0 {
		return nil, errors.New("edid hex length is not even")
	}

	raw := make([]byte, 0, len(digits)/2)
	for i := 0; i < len(digits); i += 2 {
		hi, lo := digits[i], digits[i+1]
		high, ok := hexDigitValue(hi)
		if !ok {
			return nil, fmt.Errorf("invalid hex pair: %c%c", hi, lo)
		}
		low, ok := hexDigitValue(lo)
		if !ok {
			return nil, fmt.Errorf("invalid hex pair: %c%c", hi, lo)
		}
		raw = append(raw, high<<4|low)
	}

	return raw, nil
}

func hexDigitValue(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	default:
		return 0, false
	}
}

func isASCIISpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\f' || r == '\r'
}
