package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chares8191/xrandr-utils/internal/domain/display"
	"github.com/chares8191/xrandr-utils/internal/infrastructure/edid"
	"github.com/chares8191/xrandr-utils/internal/infrastructure/xrandr"
	"github.com/chares8191/xrandr-utils/internal/pkg/logger"
)

// EDIDCommandHandler encapsulates logic for reporting EDID data via CLI.
type EDIDCommandHandler struct {
	provider display.ReportProvider
	decoder  display.EDIDDecoder
	logger   logger.Logger
}

// NewEDIDCommandHandler initializes and returns an EDIDCommandHandler instance with
// configured logger, report provider and EDID decoder.
func NewEDIDCommandHandler() (*EDIDCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	settings := ReadToolSettingsFromEnv()

	provider, err := xrandr.NewReportProvider(settings, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create report provider: %w", err)
	}

	decoder, err := edid.NewDecoder(settings, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create EDID decoder: %w", err)
	}

	return &EDIDCommandHandler{
		provider: provider,
		decoder:  decoder,
		logger:   loggerInstance,
	}, nil
}

// edidHexFor looks up one display and returns its EDID hex dump.
func (commandHandler *EDIDCommandHandler) edidHexFor(name string) (string, error) {
	output, err := findOutput(commandHandler.provider, name)
	if err != nil {
		return "", err
	}

	hex, ok := xrandr.EDIDHex(output)
	if !ok {
		return "", fmt.Errorf("edid data not available for display: %s", name)
	}
	return hex, nil
}

// serialValue extracts a serial number for one output on a best effort basis.
func (commandHandler *EDIDCommandHandler) serialValue(output *display.Output) string {
	hex, ok := xrandr.EDIDHex(output)
	if !ok {
		return ""
	}

	decoded, err := commandHandler.decoder.Decode(hex)
	if err != nil {
		commandHandler.logger.Debug(fmt.Sprintf("edid decode failed for %s: %v", output.Name, err))
		return ""
	}

	serial, ok := edid.SerialNumber(decoded)
	if !ok {
		return ""
	}
	return serial
}

// DisplayEdidCmd prints the EDID hex dump of one display
func (commandHandler *EDIDCommandHandler) DisplayEdidCmd(cmd *cobra.Command, args []string) error {
	hex, err := commandHandler.edidHexFor(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hex)
	return nil
}

// DisplayEdidDecodedCmd prints the decoded EDID report of one display
func (commandHandler *EDIDCommandHandler) DisplayEdidDecodedCmd(cmd *cobra.Command, args []string) error {
	hex, err := commandHandler.edidHexFor(args[0])
	if err != nil {
		return err
	}

	decoded, err := commandHandler.decoder.Decode(hex)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), decoded)
	if !strings.HasSuffix(decoded, "\n") {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

// DisplaySerialCmd prints the serial number of one display
func (commandHandler *EDIDCommandHandler) DisplaySerialCmd(cmd *cobra.Command, args []string) error {
	hex, err := commandHandler.edidHexFor(args[0])
	if err != nil {
		return err
	}

	decoded, err := commandHandler.decoder.Decode(hex)
	if err != nil {
		return err
	}

	serial, ok := edid.SerialNumber(decoded)
	if !ok {
		return fmt.Errorf("serial not found in edid for: %s", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), serial)
	return nil
}

// DisplaySerialMapCmd prints name=serial for every display
func (commandHandler *EDIDCommandHandler) DisplaySerialMapCmd(cmd *cobra.Command, _ []string) error {
	filtered, err := cmd.Flags().GetBool("filtered")
	if err != nil {
		return fmt.Errorf("invalid filtered flag: %w", err)
	}

	report, err := commandHandler.provider.Report()
	if err != nil {
		return err
	}

	for i := range report {
		serial := commandHandler.serialValue(&report[i])
		if shouldSkipMapValue(serial, filtered) {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", report[i].Name, serial)
	}
	return nil
}

// InitEDIDCommands registers EDID-related commands
func InitEDIDCommands(rootCmd *cobra.Command) error {
	handler, err := NewEDIDCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create EDID command handler %w", err)
	}

	var displayEdidCmd = &cobra.Command{
		Use:   "display_edid <display>",
		Short: "Print the EDID hex dump of a display",
		Args:  requireArgs("display"),
		RunE:  handler.DisplayEdidCmd,
	}
	rootCmd.AddCommand(displayEdidCmd)

	var displayEdidDecodedCmd = &cobra.Command{
		Use:   "display_edid_decoded <display>",
		Short: "Print the decoded EDID report of a display",
		Args:  requireArgs("display"),
		RunE:  handler.DisplayEdidDecodedCmd,
	}
	rootCmd.AddCommand(displayEdidDecodedCmd)

	var displaySerialCmd = &cobra.Command{
		Use:   "display_serial <display>",
		Short: "Print the serial number of a display",
		Args:  requireArgs("display"),
		RunE:  handler.DisplaySerialCmd,
	}
	rootCmd.AddCommand(displaySerialCmd)

	var displaySerialMapCmd = &cobra.Command{
		Use:   "display_serial_map",
		Short: "Print name=serial for every display",
		Args:  rejectArgs,
		RunE:  handler.DisplaySerialMapCmd,
	}
	displaySerialMapCmd.Flags().BoolP("filtered", "", false, "Only emit entries with a non-empty value")
	rootCmd.AddCommand(displaySerialMapCmd)

	return nil
}
