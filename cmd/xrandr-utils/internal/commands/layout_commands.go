package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chares8191/xrandr-utils/internal/domain/display"
	"github.com/chares8191/xrandr-utils/internal/infrastructure/xrandr"
	"github.com/chares8191/xrandr-utils/internal/pkg/logger"
)

// LayoutCommandHandler encapsulates logic for applying display layouts via CLI.
type LayoutCommandHandler struct {
	manager display.LayoutManager
	logger  logger.Logger
}

// NewLayoutCommandHandler initializes and returns a LayoutCommandHandler instance with
// configured logger and layout manager.
func NewLayoutCommandHandler() (*LayoutCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	settings := ReadToolSettingsFromEnv()

	provider, err := xrandr.NewReportProvider(settings, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create report provider: %w", err)
	}

	manager, err := xrandr.NewLayoutManager(settings, provider, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create layout manager: %w", err)
	}

	return &LayoutCommandHandler{
		manager: manager,
		logger:  loggerInstance,
	}, nil
}

// SingleDisplayOutputCmd keeps one display as primary and turns all others off
func (commandHandler *LayoutCommandHandler) SingleDisplayOutputCmd(_ *cobra.Command, args []string) error {
	return commandHandler.manager.SingleDisplay(args[0])
}

// DualDisplayOutputCmd arranges two displays side by side and turns all others off
func (commandHandler *LayoutCommandHandler) DualDisplayOutputCmd(_ *cobra.Command, args []string) error {
	return commandHandler.manager.DualDisplay(args[0], args[1])
}

// InitLayoutCommands registers layout commands
func InitLayoutCommands(rootCmd *cobra.Command) error {
	handler, err := NewLayoutCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create layout command handler %w", err)
	}

	var singleDisplayOutputCmd = &cobra.Command{
		Use:   "single_display_output <display>",
		Short: "Keep one display as primary and turn all others off",
		Args:  requireArgs("display"),
		RunE:  handler.SingleDisplayOutputCmd,
	}
	rootCmd.AddCommand(singleDisplayOutputCmd)

	var dualDisplayOutputCmd = &cobra.Command{
		Use:   "dual_display_output <left> <right>",
		Short: "Arrange two displays side by side and turn all others off",
		Args:  requireArgs("left display", "right display"),
		RunE:  handler.DualDisplayOutputCmd,
	}
	rootCmd.AddCommand(dualDisplayOutputCmd)

	return nil
}
