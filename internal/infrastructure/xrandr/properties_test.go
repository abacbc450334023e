//go:build unit
// +build unit

package xrandr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chares8191/xrandr-utils/internal/domain/display"
)

func TestEDIDHex(t *testing.T) {
	report := ParseVerbose(sampleVerbose)
	require.Len(t, report, 3)

	hex, ok := EDIDHex(&report[0])
	require.True(t, ok)
	assert.Equal(t, sampleEDIDHex, hex)

	// DP-1 carries no EDID property in the fixture
	_, ok = EDIDHex(&report[1])
	assert.False(t, ok)
}

func TestEDIDHex_StopsAtBlankLine(t *testing.T) {
	output := display.Output{
		Name:  "HDMI-1",
		State: display.Connected,
		Lines: []string{
			"HDMI-1 connected 1920x1080+0+0",
			"\tEDID: ",
			"\t\t00ffffffffffff001e6d485b01010101",
			"",
			"\t\t011c0103803c2278ea3e31ae5047ac27",
		},
	}

	hex, ok := EDIDHex(&output)
	require.True(t, ok)
	assert.Equal(t, "00ffffffffffff001e6d485b01010101", hex)
}

func TestEDIDHex_StopsAtNonHexLine(t *testing.T) {
	output := display.Output{
		Name:  "HDMI-1",
		State: display.Connected,
		Lines: []string{
			"HDMI-1 connected 1920x1080+0+0",
			"\tEDID: ",
			"\t\t00ffffffffffff001e6d485b01010101",
			"\tBrightness: 1.0",
			"\t\t011c0103803c2278ea3e31ae5047ac27",
		},
	}

	hex, ok := EDIDHex(&output)
	require.True(t, ok)
	assert.Equal(t, "00ffffffffffff001e6d485b01010101", hex)
}

func TestEDIDHex_LabelLineValueIgnored(t *testing.T) {
	output := display.Output{
		Name:  "HDMI-1",
		State: display.Connected,
		Lines: []string{
			"HDMI-1 connected 1920x1080+0+0",
			"\tEDID: 00ff",
			"\t\tabcdef012345",
		},
	}

	hex, ok := EDIDHex(&output)
	require.True(t, ok)
	assert.Equal(t, "abcdef012345", hex)
}

func TestEDIDHex_PreservesCase(t *testing.T) {
	output := display.Output{
		Name:  "HDMI-1",
		State: display.Connected,
		Lines: []string{
			"HDMI-1 connected 1920x1080+0+0",
			"\tEDID: ",
			"\t\t00FFffffFFFFff00",
		},
	}

	hex, ok := EDIDHex(&output)
	require.True(t, ok)
	assert.Equal(t, "00FFffffFFFFff00", hex)
}

func TestEDIDHex_MissingProperty(t *testing.T) {
	output := display.Output{
		Name:  "VGA-1",
		State: display.Disconnected,
		Lines: []string{"VGA-1 disconnected", "\tIdentifier: 0x44"},
	}

	_, ok := EDIDHex(&output)
	assert.False(t, ok)

	empty := display.Output{
		Name:  "VGA-1",
		State: display.Disconnected,
		Lines: []string{"VGA-1 disconnected", "\tEDID: ", "\tIdentifier: 0x44"},
	}

	_, ok = EDIDHex(&empty)
	assert.False(t, ok)
}

func TestConnectorID(t *testing.T) {
	report := ParseVerbose(sampleVerbose)
	require.Len(t, report, 3)

	id, ok := ConnectorID(&report[0])
	require.True(t, ok)
	assert.Equal(t, "102", id)

	id, ok = ConnectorID(&report[1])
	require.True(t, ok)
	assert.Equal(t, "103", id)

	_, ok = ConnectorID(&report[2])
	assert.False(t, ok)
}

func TestConnectorID_SkipsEmptyValue(t *testing.T) {
	output := display.Output{
		Name:  "HDMI-1",
		State: display.Connected,
		Lines: []string{
			"HDMI-1 connected 1920x1080+0+0",
			"\tCONNECTOR_ID:",
			"\tCONNECTOR_ID:   99  ",
		},
	}

	id, ok := ConnectorID(&output)
	require.True(t, ok)
	assert.Equal(t, "99", id)
}

func TestIsHexLine(t *testing.T) {
	assert.True(t, isHexLine("00ffffffffffff00"))
	assert.True(t, isHexLine("00 ff\tab"))
	assert.True(t, isHexLine("ABCDEF"))
	assert.False(t, isHexLine("1920x1080 (0x47)"))
	assert.False(t, isHexLine("Brightness: 1.0"))
}
