// SPDX-License-Identifier: MIT
package style

// ContentArrangement selects how the consuming renderer computes column
// widths. The style only stores the chosen mode; the computation itself
// lives in the renderer.
//
//   - ArrangementDisabled — no automatic width calculation. Tables in
//     this mode may overflow the terminal if content gets too long;
//     per-column constraints are still respected.
//   - ArrangementAutomatic — column widths are derived from terminal
//     width and content length, wrapping cell content as needed.
type ContentArrangement int

const (
	// ArrangementDisabled turns automatic width calculation off.
	ArrangementDisabled ContentArrangement = iota
	// ArrangementAutomatic sizes columns against terminal width and content.
	ArrangementAutomatic
)

// String returns the arrangement's canonical name.
func (a ContentArrangement) String() string {
	switch a {
	case ArrangementDisabled:
		return "Disabled"
	case ArrangementAutomatic:
		return "Automatic"
	default:
		return "Unknown"
	}
}
