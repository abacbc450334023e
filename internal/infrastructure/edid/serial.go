package edid

import "strings"

// Serial number labels emitted by edid-decode, in lookup order
const (
	productSerialLabel = "Display Product Serial Number:"
	serialNumberLabel  = "Serial Number:"
	dataStringLabel    = "Alphanumeric Data String:"
)

// SerialNumber pulls a display serial out of a decoded EDID report. The
// quoted product serial descriptor wins over the numeric serial field, with
// the alphanumeric data string descriptor as a last resort.
func SerialNumber(decoded string) (string, bool) {
	lines := strings.Split(decoded, "\n")

	for _, line := range lines {
		if value, ok := quotedValue(line, productSerialLabel); ok && value != "" {
			return value, true
		}
	}

	for _, line := range lines {
		if value, ok := valueAfterColon(line, serialNumberLabel); ok && value != "" {
			return value, true
		}
	}

	for _, line := range lines {
		if value, ok := quotedValue(line, dataStringLabel); ok && value != "" {
			return value, true
		}
	}

	return "", false
}

// quotedValue returns the trimmed text between the first pair of single
// quotes on a line carrying the label.
func quotedValue(line, label string) (string, bool) {
	if !strings.Contains(line, label) {
		return "", false
	}

	start := strings.IndexByte(line, '\'')
	if start < 0 {
		return "", false
	}
	rest := line[start+1:]
	end := strings.IndexByte(rest, '\'')
	if end < 0 {
		return "", false
	}

	return strings.TrimSpace(rest[:end]), true
}

// valueAfterColon returns the trimmed text after the first colon on a line
// carrying the label.
func valueAfterColon(line, label string) (string, bool) {
	if !strings.Contains(line, label) {
		return "", false
	}

	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return "", false
	}

	return strings.TrimSpace(line[idx+1:]), true
}
