package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default executable names, resolved through PATH when no override is configured
const (
	DefaultXrandrPath     = "xrandr"
	DefaultEdidDecodePath = "edid-decode"
)

// ToolSettings holds the locations of the external tools used to query and
// apply display configurations.
type ToolSettings struct {
	XrandrPath     string `validate:"required"`
	EdidDecodePath string `validate:"required"`
}

// NewToolSettings returns ToolSettings populated with the default tool paths.
func NewToolSettings() *ToolSettings {
	return &ToolSettings{
		XrandrPath:     DefaultXrandrPath,
		EdidDecodePath: DefaultEdidDecodePath,
	}
}

// Validate checks that all fields in ToolSettings are valid
func (s *ToolSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ToolSettings: %w", err)
	}

	return nil
}
