package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/chares8191/xrandr-utils/internal/pkg/validators"
)

// State describes whether an output has a display attached
type State string

// Connection states as xrandr spells them
const (
	Connected    State = "connected"
	Disconnected State = "disconnected"
)

// String returns the state as it appears in xrandr output.
func (s State) String() string {
	return string(s)
}

// Output represents one output section of an xrandr --verbose report.
// Lines holds the raw section lines, starting with the header line.
type Output struct {
	Name     string   `validate:"required"`
	State    State    `validate:"required,oneof=connected disconnected"`
	Primary  bool
	Geometry string   `validate:"omitempty,geometryValidation"`
	Lines    []string `validate:"required,min=1"`
}

// Validate for validating Output struct
func (o *Output) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("geometryValidation", validators.GeometryValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(o)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// Section returns the raw report section, header line included.
func (o *Output) Section() string {
	return strings.Join(o.Lines, "\n")
}

// LabelLine returns the header line of the section.
func (o *Output) LabelLine() (string, bool) {
	if len(o.Lines) == 0 {
		return "", false
	}
	return o.Lines[0], true
}

// Report is the ordered list of output sections parsed from one xrandr run.
type Report []Output

// Find returns the output with the given name.
func (r Report) Find(name string) (*Output, bool) {
	for i := range r {
		if r[i].Name == name {
			return &r[i], true
		}
	}
	return nil, false
}

// Connected returns the outputs with a display attached, in report order.
func (r Report) Connected() Report {
	var connected Report
	for i := range r {
		if r[i].State == Connected {
			connected = append(connected, r[i])
		}
	}
	return connected
}

// Names returns all output names in report order.
func (r Report) Names() []string {
	names := make([]string, 0, len(r))
	for i := range r {
		names = append(names, r[i].Name)
	}
	return names
}

// NamesExcluding returns output names in report order, skipping the given ones.
func (r Report) NamesExcluding(exclude ...string) []string {
	skip := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		skip[name] = struct{}{}
	}

	var names []string
	for i := range r {
		if _, ok := skip[r[i].Name]; ok {
			continue
		}
		names = append(names, r[i].Name)
	}
	return names
}
