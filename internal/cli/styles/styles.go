// Package styles contains Lip Gloss style definitions for aeroquant output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// DimensionHeader styles the dimension name above each unit group.
	DimensionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#54A0FF"))

	// UnitID styles a unit identifier in listings.
	UnitID = lipgloss.NewStyle().Bold(true)

	// UnitDescription styles the human-readable unit description.
	UnitDescription = lipgloss.NewStyle().Faint(true)

	// BaseMarker styles the marker appended to a dimension's base unit.
	BaseMarker = lipgloss.NewStyle().Foreground(lipgloss.Color("#73F59F"))
)
