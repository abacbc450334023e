// Package display defines the core structures and contracts for inspecting X11 display outputs,
// such as connection states, geometries, raw report sections and layout changes.

package display
