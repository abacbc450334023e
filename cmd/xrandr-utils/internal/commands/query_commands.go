package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chares8191/xrandr-utils/internal/domain/display"
	"github.com/chares8191/xrandr-utils/internal/infrastructure/xrandr"
	"github.com/chares8191/xrandr-utils/internal/pkg/logger"
	"github.com/chares8191/xrandr-utils/internal/pkg/strutil"
)

// QueryCommandHandler encapsulates logic for reporting display states via CLI.
type QueryCommandHandler struct {
	provider display.ReportProvider
	logger   logger.Logger
}

// NewQueryCommandHandler initializes and returns a QueryCommandHandler instance with
// configured logger and report provider.
func NewQueryCommandHandler() (*QueryCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	provider, err := xrandr.NewReportProvider(ReadToolSettingsFromEnv(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create report provider: %w", err)
	}

	return &QueryCommandHandler{
		provider: provider,
		logger:   loggerInstance,
	}, nil
}

// findOutput loads the current report and looks up one display by name.
func findOutput(provider display.ReportProvider, name string) (*display.Output, error) {
	report, err := provider.Report()
	if err != nil {
		return nil, err
	}

	output, ok := report.Find(name)
	if !ok {
		return nil, fmt.Errorf("display not found: %s", name)
	}
	return output, nil
}

// DisplayConnectedCmd prints the connection state of one display
func (commandHandler *QueryCommandHandler) DisplayConnectedCmd(cmd *cobra.Command, args []string) error {
	output, err := findOutput(commandHandler.provider, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.State.String())
	return nil
}

// DisplayConnectedMapCmd prints name=state for every display
func (commandHandler *QueryCommandHandler) DisplayConnectedMapCmd(cmd *cobra.Command, _ []string) error {
	filtered, err := cmd.Flags().GetBool("filtered")
	if err != nil {
		return fmt.Errorf("invalid filtered flag: %w", err)
	}

	report, err := commandHandler.provider.Report()
	if err != nil {
		return err
	}

	for i := range report {
		value := report[i].State.String()
		if shouldSkipMapValue(value, filtered) {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", report[i].Name, value)
	}
	return nil
}

// DisplaySectionCmd prints the raw report section of one display
func (commandHandler *QueryCommandHandler) DisplaySectionCmd(cmd *cobra.Command, args []string) error {
	output, err := findOutput(commandHandler.provider, args[0])
	if err != nil {
		return err
	}

	text := output.Section()
	if text == "" {
		return errors.New("section is empty")
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

// DisplaySectionMapCmd prints name=section for every display with newlines escaped
func (commandHandler *QueryCommandHandler) DisplaySectionMapCmd(cmd *cobra.Command, _ []string) error {
	filtered, err := cmd.Flags().GetBool("filtered")
	if err != nil {
		return fmt.Errorf("invalid filtered flag: %w", err)
	}

	report, err := commandHandler.provider.Report()
	if err != nil {
		return err
	}

	for i := range report {
		escaped := strutil.EscapeMultiline(report[i].Section())
		if shouldSkipMapValue(escaped, filtered) {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", report[i].Name, escaped)
	}
	return nil
}

// DisplayNamesCmd lists display names
func (commandHandler *QueryCommandHandler) DisplayNamesCmd(cmd *cobra.Command, _ []string) error {
	connectedOnly, err := cmd.Flags().GetBool("connected")
	if err != nil {
		return fmt.Errorf("invalid connected flag: %w", err)
	}

	report, err := commandHandler.provider.Report()
	if err != nil {
		return err
	}
	if connectedOnly {
		report = report.Connected()
	}

	for i := range report {
		fmt.Fprintln(cmd.OutOrStdout(), report[i].Name)
	}
	return nil
}

// DisplayGeometryCmd prints the geometry of one connected display
func (commandHandler *QueryCommandHandler) DisplayGeometryCmd(cmd *cobra.Command, args []string) error {
	output, err := findOutput(commandHandler.provider, args[0])
	if err != nil {
		return err
	}

	if output.State != display.Connected {
		return fmt.Errorf("display not connected: %s", args[0])
	}
	if output.Geometry == "" {
		return fmt.Errorf("geometry not available for display: %s", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), output.Geometry)
	return nil
}

// DisplayGeometryMapCmd prints name=geometry for every connected display,
// marking the primary output
func (commandHandler *QueryCommandHandler) DisplayGeometryMapCmd(cmd *cobra.Command, _ []string) error {
	filtered, err := cmd.Flags().GetBool("filtered")
	if err != nil {
		return fmt.Errorf("invalid filtered flag: %w", err)
	}

	report, err := commandHandler.provider.Report()
	if err != nil {
		return err
	}

	for i := range report {
		output := &report[i]
		if output.State != display.Connected || output.Geometry == "" {
			continue
		}

		value := output.Geometry
		if output.Primary {
			value = "primary," + output.Geometry
		}
		if shouldSkipMapValue(value, filtered) {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", output.Name, value)
	}
	return nil
}

// DisplayConnectorCmd prints the connector id of one display
func (commandHandler *QueryCommandHandler) DisplayConnectorCmd(cmd *cobra.Command, args []string) error {
	output, err := findOutput(commandHandler.provider, args[0])
	if err != nil {
		return err
	}

	connector, ok := xrandr.ConnectorID(output)
	if !ok {
		return fmt.Errorf("connector id not available for: %s", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), connector)
	return nil
}

// DisplayConnectorMapCmd prints name=connector id for every display
func (commandHandler *QueryCommandHandler) DisplayConnectorMapCmd(cmd *cobra.Command, _ []string) error {
	filtered, err := cmd.Flags().GetBool("filtered")
	if err != nil {
		return fmt.Errorf("invalid filtered flag: %w", err)
	}

	report, err := commandHandler.provider.Report()
	if err != nil {
		return err
	}

	for i := range report {
		connector, _ := xrandr.ConnectorID(&report[i])
		if shouldSkipMapValue(connector, filtered) {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", report[i].Name, connector)
	}
	return nil
}

// DisplayLabelLineCmd prints the header line of one display section
func (commandHandler *QueryCommandHandler) DisplayLabelLineCmd(cmd *cobra.Command, args []string) error {
	output, err := findOutput(commandHandler.provider, args[0])
	if err != nil {
		return err
	}

	line, ok := output.LabelLine()
	if !ok {
		return fmt.Errorf("label line missing for display: %s", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}

// InitQueryCommands registers display query commands
func InitQueryCommands(rootCmd *cobra.Command) error {
	handler, err := NewQueryCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create query command handler %w", err)
	}

	var displayConnectedCmd = &cobra.Command{
		Use:   "display_connected <display>",
		Short: "Print the connection state of a display",
		Args:  requireArgs("display"),
		RunE:  handler.DisplayConnectedCmd,
	}
	rootCmd.AddCommand(displayConnectedCmd)

	var displayConnectedMapCmd = &cobra.Command{
		Use:   "display_connected_map",
		Short: "Print name=state for every display",
		Args:  rejectArgs,
		RunE:  handler.DisplayConnectedMapCmd,
	}
	displayConnectedMapCmd.Flags().BoolP("filtered", "", false, "Only emit entries with a non-empty value")
	rootCmd.AddCommand(displayConnectedMapCmd)

	var displaySectionCmd = &cobra.Command{
		Use:   "display_section <display>",
		Short: "Print the raw report section of a display",
		Args:  requireArgs("display"),
		RunE:  handler.DisplaySectionCmd,
	}
	rootCmd.AddCommand(displaySectionCmd)

	var displaySectionMapCmd = &cobra.Command{
		Use:   "display_section_map",
		Short: "Print name=section for every display with newlines escaped",
		Args:  rejectArgs,
		RunE:  handler.DisplaySectionMapCmd,
	}
	displaySectionMapCmd.Flags().BoolP("filtered", "", false, "Only emit entries with a non-empty value")
	rootCmd.AddCommand(displaySectionMapCmd)

	var displayNamesCmd = &cobra.Command{
		Use:   "display_names",
		Short: "List display names",
		Args:  rejectArgs,
		RunE:  handler.DisplayNamesCmd,
	}
	displayNamesCmd.Flags().BoolP("connected", "", false, "Only list connected displays")
	rootCmd.AddCommand(displayNamesCmd)

	var displayGeometryCmd = &cobra.Command{
		Use:   "display_geometry <display>",
		Short: "Print the geometry of a connected display",
		Args:  requireArgs("display"),
		RunE:  handler.DisplayGeometryCmd,
	}
	rootCmd.AddCommand(displayGeometryCmd)

	var displayGeometryMapCmd = &cobra.Command{
		Use:   "display_geometry_map",
		Short: "Print name=geometry for every connected display",
		Args:  rejectArgs,
		RunE:  handler.DisplayGeometryMapCmd,
	}
	displayGeometryMapCmd.Flags().BoolP("filtered", "", false, "Only emit entries with a non-empty value")
	rootCmd.AddCommand(displayGeometryMapCmd)

	var displayConnectorCmd = &cobra.Command{
		Use:   "display_connector <display>",
		Short: "Print the connector id of a display",
		Args:  requireArgs("display"),
		RunE:  handler.DisplayConnectorCmd,
	}
	rootCmd.AddCommand(displayConnectorCmd)

	var displayConnectorMapCmd = &cobra.Command{
		Use:   "display_connector_map",
		Short: "Print name=connector id for every display",
		Args:  rejectArgs,
		RunE:  handler.DisplayConnectorMapCmd,
	}
	displayConnectorMapCmd.Flags().BoolP("filtered", "", false, "Only emit entries with a non-empty value")
	rootCmd.AddCommand(displayConnectorMapCmd)

	var displayLabelLineCmd = &cobra.Command{
		Use:   "display_label_line <display>",
		Short: "Print the header line of a display section",
		Args:  requireArgs("display"),
		RunE:  handler.DisplayLabelLineCmd,
	}
	rootCmd.AddCommand(displayLabelLineCmd)

	return nil
}
