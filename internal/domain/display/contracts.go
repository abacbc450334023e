package display

// ReportProvider produces the current set of output sections
type ReportProvider interface {
	// Report returns all output sections in the order xrandr lists them
	Report() (Report, error)
}

// LayoutManager applies display layouts by reconfiguring outputs
type LayoutManager interface {
	// SingleDisplay makes keep the primary output and turns every other output off
	SingleDisplay(keep string) error
	// DualDisplay makes left the primary output with right extending to its right and turns every other output off
	DualDisplay(left, right string) error
}

// EDIDDecoder renders a raw EDID block into human readable form
type EDIDDecoder interface {
	// Decode decodes a hex encoded EDID block
	Decode(hexDump string) (string, error)
}
