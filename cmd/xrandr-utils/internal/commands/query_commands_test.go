//go:build unit
// +build unit

package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chares8191/xrandr-utils/internal/domain/display"
	"github.com/chares8191/xrandr-utils/internal/pkg/testutil"
)

// newTestCommand builds a bare command with a captured output buffer and the
// given bool flags registered.
func newTestCommand(t *testing.T, flags ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	for _, flag := range flags {
		cmd.Flags().BoolP(flag, "", false, "")
	}
	return cmd, &buf
}

func setFlag(t *testing.T, cmd *cobra.Command, name string) {
	t.Helper()
	require.NoError(t, cmd.Flags().Set(name, "true"))
}

func sampleReport() display.Report {
	return display.Report{
		{
			Name:     "HDMI-1",
			State:    display.Connected,
			Primary:  true,
			Geometry: "1920x1080+0+0",
			Lines: []string{
				"HDMI-1 connected primary 1920x1080+0+0 (0x47) normal (normal left inverted right x axis y axis) 598mm x 336mm",
				"\tCONNECTOR_ID: 102",
				"\tEDID: ",
				"\t\t00ff10ab",
			},
		},
		{
			Name:     "DP-1",
			State:    display.Connected,
			Geometry: "1920x1080+1920+0",
			Lines: []string{
				"DP-1 connected 1920x1080+1920+0 (0x48) normal (normal left inverted right x axis y axis) 527mm x 296mm",
				"\tCONNECTOR_ID: 103",
			},
		},
		{
			Name:  "VGA-1",
			State: display.Disconnected,
			Lines: []string{"VGA-1 disconnected (normal left inverted right x axis y axis)"},
		},
	}
}

func newQueryHandler(t *testing.T, provider display.ReportProvider) *QueryCommandHandler {
	t.Helper()

	return &QueryCommandHandler{
		provider: provider,
		logger:   testutil.SetupTestLogger(t),
	}
}

func sampleProvider() *MockReportProvider {
	provider := new(MockReportProvider)
	provider.On("Report").Return(sampleReport(), nil)
	return provider
}

func TestDisplayConnectedCmd(t *testing.T) {
	handler := newQueryHandler(t, sampleProvider())

	cmd, buf := newTestCommand(t)
	require.NoError(t, handler.DisplayConnectedCmd(cmd, []string{"HDMI-1"}))
	assert.Equal(t, "connected\n", buf.String())

	cmd, buf = newTestCommand(t)
	require.NoError(t, handler.DisplayConnectedCmd(cmd, []string{"VGA-1"}))
	assert.Equal(t, "disconnected\n", buf.String())
}

func TestDisplayConnectedCmd_NotFound(t *testing.T) {
	handler := newQueryHandler(t, sampleProvider())

	cmd, buf := newTestCommand(t)
	err := handler.DisplayConnectedCmd(cmd, []string{"DVI-1"})
	require.Error(t, err)
	assert.EqualError(t, err, "display not found: DVI-1")
	assert.Empty(t, buf.String())
}

func TestDisplayConnectedCmd_ProviderError(t *testing.T) {
	provider := new(MockReportProvider)
	provider.On("Report").Return(nil, errors.New("stdin supplied but empty"))
	handler := newQueryHandler(t, provider)

	cmd, _ := newTestCommand(t)
	err := handler.DisplayConnectedCmd(cmd, []string{"HDMI-1"})
	require.Error(t, err)
	assert.EqualError(t, err, "stdin supplied but empty")
}

func TestDisplayConnectedMapCmd(t *testing.T) {
	handler := newQueryHandler(t, sampleProvider())

	cmd, buf := newTestCommand(t, "filtered")
	require.NoError(t, handler.DisplayConnectedMapCmd(cmd, nil))
	assert.Equal(t, "HDMI-1=connected\nDP-1=connected\nVGA-1=disconnected\n", buf.String())
}

func TestDisplaySectionCmd(t *testing.T) {
	handler := newQueryHandler(t, sampleProvider())

	cmd, buf := newTestCommand(t)
	require.NoError(t, handler.DisplaySectionCmd(cmd, []string{"DP-1"}))
	assert.Equal(t, "DP-1 connected 1920x1080+1920+0 (0x48) normal (normal left inverted right x axis y axis) 527mm x 296mm\n\tCONNECTOR_ID: 103\n", buf.String())
}

func TestDisplaySectionMapCmd(t *testing.T) {
	handler := newQueryHandler(t, sampleProvider())

	cmd, buf := newTestCommand(t, "filtered")
	require.NoError(t, handler.DisplaySectionMapCmd(cmd, nil))

	lines := bytes.Split(bytes.TrimSuffix(buf.Bytes(), []byte("\n")), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "DP-1=DP-1 connected 1920x1080+1920+0 (0x48) normal (normal left inverted right x axis y axis) 527mm x 296mm\\n\tCONNECTOR_ID: 103", string(lines[1]))
	assert.Equal(t, "VGA-1=VGA-1 disconnected (normal left inverted right x axis y axis)", string(lines[2]))
}

func TestDisplayNamesCmd(t *testing.T) {
	handler := newQueryHandler(t, sampleProvider())

	cmd, buf := newTestCommand(t, "connected")
	require.NoError(t, handler.DisplayNamesCmd(cmd, nil))
	assert.Equal(t, "HDMI-1\nDP-1\nVGA-1\n", buf.String())
}

func TestDisplayNamesCmd_ConnectedOnly(t *testing.T) {
	handler := newQueryHandler(t, sampleProvider())

	cmd, buf := newTestCommand(t, "connected")
	setFlag(t, cmd, "connected")
	require.NoError(t, handler.DisplayNamesCmd(cmd, nil))
	assert.Equal(t, "HDMI-1\nDP-1\n", buf.String())
}

func TestDisplayGeometryCmd(t *testing.T) {
	handler := newQueryHandler(t, sampleProvider())

	cmd, buf := newTestCommand(t)
	require.NoError(t, handler.DisplayGeometryCmd(cmd, []string{"HDMI-1"}))
	assert.Equal(t, "1920x1080+0+0\n", buf.String())
}

func TestDisplayGeometryCmd_NotConnected(t *testing.T) {
	handler := newQueryHandler(t, sampleProvider())

	cmd, _ := newTestCommand(t)
	err := handler.DisplayGeometryCmd(cmd, []string{"VGA-1"})
	require.Error(t, err)
	assert.EqualError(t, err, "display not connected: VGA-1")
}

func TestDisplayGeometryCmd_NoGeometry(t *testing.T) {
	provider := new(MockReportProvider)
	provider.On("Report").Return(display.Report{
		{Name: "DP-2", State: display.Connected, Lines: []string{"DP-2 connected (normal left inverted right x axis y axis)"}},
	}, nil)
	handler := newQueryHandler(t, provider)

	cmd, _ := newTestCommand(t)
	err := handler.DisplayGeometryCmd(cmd, []string{"DP-2"})
	require.Error(t, err)
	assert.EqualError(t, err, "geometry not available for display: DP-2")
}

func TestDisplayGeometryMapCmd(t *testing.T) {
	handler := newQueryHandler(t, sampleProvider())

	cmd, buf := newTestCommand(t, "filtered")
	require.NoError(t, handler.DisplayGeometryMapCmd(cmd, nil))
	assert.Equal(t, "HDMI-1=primary,1920x1080+0+0\nDP-1=1920x1080+1920+0\n", buf.String())
}

func TestDisplayConnectorCmd(t *testing.T) {
	handler := newQueryHandler(t, sampleProvider())

	cmd, buf := newTestCommand(t)
	require.NoError(t, handler.DisplayConnectorCmd(cmd, []string{"HDMI-1"}))
	assert.Equal(t, "102\n", buf.String())
}

func TestDisplayConnectorCmd_NotAvailable(t *testing.T) {
	handler := newQueryHandler(t, sampleProvider())

	cmd, _ := newTestCommand(t)
	err := handler.DisplayConnectorCmd(cmd, []string{"VGA-1"})
	require.Error(t, err)
	assert.EqualError(t, err, "connector id not available for: VGA-1")
}

func TestDisplayConnectorMapCmd(t *testing.T) {
	handler := newQueryHandler(t, sampleProvider())

	cmd, buf := newTestCommand(t, "filtered")
	require.NoError(t, handler.DisplayConnectorMapCmd(cmd, nil))
	assert.Equal(t, "HDMI-1=102\nDP-1=103\nVGA-1=\n", buf.String())
}

func TestDisplayConnectorMapCmd_Filtered(t *testing.T) {
	handler := newQueryHandler(t, sampleProvider())

	cmd, buf := newTestCommand(t, "filtered")
	setFlag(t, cmd, "filtered")
	require.NoError(t, handler.DisplayConnectorMapCmd(cmd, nil))
	assert.Equal(t, "HDMI-1=102\nDP-1=103\n", buf.String())
}

func TestDisplayLabelLineCmd(t *testing.T) {
	handler := newQueryHandler(t, sampleProvider())

	cmd, buf := newTestCommand(t)
	require.NoError(t, handler.DisplayLabelLineCmd(cmd, []string{"VGA-1"}))
	assert.Equal(t, "VGA-1 disconnected (normal left inverted right x axis y axis)\n", buf.String())
}

func TestInitQueryCommands(t *testing.T) {
	clearToolEnv(t)

	rootCmd := &cobra.Command{Use: "xrandr-utils"}
	require.NoError(t, InitQueryCommands(rootCmd))

	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.ElementsMatch(t, []string{
		"display_connected",
		"display_connected_map",
		"display_section",
		"display_section_map",
		"display_names",
		"display_geometry",
		"display_geometry_map",
		"display_connector",
		"display_connector_map",
		"display_label_line",
	}, names)
}
