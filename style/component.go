// SPDX-License-Identifier: MIT

// Package style: component.go — the closed registry of drawable components.
//
// Compatibility contract (strict):
//   - componentOrder is positional wire format: the i-th rune of every
//     preset/modifier string ever written binds to the i-th entry here.
//   - The sequence is append-only. Never reorder, never insert in the
//     middle; either would silently rebind every existing preset string.
package style

import "fmt"

// Component names one structural element of a rendered table grid:
// a border segment, an intersection, a corner, or a separator line.
//
// BorderIntersections are the points where inner row/column lines meet an
// outer border. E.g.:
//
//	       --------
//	       v      |
//	+--+---+---+  |
//	|  |   |   |  |
//	+----------+ <- these "+" chars are border intersections
//	|  |   |   |
//	+--+---+---+
type Component int

// All drawable components, in canonical order. The declaration order here
// and the entries of componentOrder are one and the same contract.
const (
	// LeftBorder is the outer border segment on the left of every row.
	LeftBorder Component = iota
	// RightBorder is the outer border segment on the right of every row.
	RightBorder
	// TopBorder is the outer border segment above the first row.
	TopBorder
	// BottomBorder is the outer border segment below the last row.
	BottomBorder
	// LeftHeaderIntersection is where the header separator meets the left border.
	LeftHeaderIntersection
	// HeaderLines is the horizontal separator line under the header row.
	HeaderLines
	// MiddleHeaderIntersections are where the header separator crosses column lines.
	MiddleHeaderIntersections
	// RightHeaderIntersection is where the header separator meets the right border.
	RightHeaderIntersection
	// VerticalLines are the inner column separator segments.
	VerticalLines
	// HorizontalLines are the inner row separator segments.
	HorizontalLines
	// MiddleIntersections are where inner row and column separators cross.
	MiddleIntersections
	// LeftBorderIntersections are where inner row separators meet the left border.
	LeftBorderIntersections
	// RightBorderIntersections are where inner row separators meet the right border.
	RightBorderIntersections
	// TopBorderIntersections are where inner column separators meet the top border.
	TopBorderIntersections
	// BottomBorderIntersections are where inner column separators meet the bottom border.
	BottomBorderIntersections
	// TopLeftCorner is the top-left extreme point of the outer border.
	TopLeftCorner
	// TopRightCorner is the top-right extreme point of the outer border.
	TopRightCorner
	// BottomLeftCorner is the bottom-left extreme point of the outer border.
	BottomLeftCorner
	// BottomRightCorner is the bottom-right extreme point of the outer border.
	BottomRightCorner
)

// ComponentCount is the number of drawable components, and therefore the
// number of positions a full preset or modifier string carries.
const ComponentCount = int(BottomRightCorner) + 1

// componentOrder is the canonical positional sequence walked by LoadPreset
// and ApplyModifier. Append-only; see the contract at the top of this file.
var componentOrder = [ComponentCount]Component{
	LeftBorder,
	RightBorder,
	TopBorder,
	BottomBorder,
	LeftHeaderIntersection,
	HeaderLines,
	MiddleHeaderIntersections,
	RightHeaderIntersection,
	VerticalLines,
	HorizontalLines,
	MiddleIntersections,
	LeftBorderIntersections,
	RightBorderIntersections,
	TopBorderIntersections,
	BottomBorderIntersections,
	TopLeftCorner,
	TopRightCorner,
	BottomLeftCorner,
	BottomRightCorner,
}

// componentNames mirrors componentOrder for String().
var componentNames = [ComponentCount]string{
	"LeftBorder",
	"RightBorder",
	"TopBorder",
	"BottomBorder",
	"LeftHeaderIntersection",
	"HeaderLines",
	"MiddleHeaderIntersections",
	"RightHeaderIntersection",
	"VerticalLines",
	"HorizontalLines",
	"MiddleIntersections",
	"LeftBorderIntersections",
	"RightBorderIntersections",
	"TopBorderIntersections",
	"BottomBorderIntersections",
	"TopLeftCorner",
	"TopRightCorner",
	"BottomLeftCorner",
	"BottomRightCorner",
}

// Components returns the drawable components in canonical order.
// Each call returns a fresh slice; mutating it cannot affect the registry.
// Complexity: O(ComponentCount) time and memory.
func Components() []Component {
	out := make([]Component, ComponentCount)
	copy(out, componentOrder[:])

	return out
}

// Valid reports whether c names one of the registered components.
// Complexity: O(1).
func (c Component) Valid() bool {
	return c >= LeftBorder && int(c) < ComponentCount
}

// String returns the component's canonical name, or "Component(n)" for a
// value outside the registry.
func (c Component) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Component(%d)", int(c))
	}

	return componentNames[c]
}
