// SPDX-License-Identifier: MIT

// Package style: modifiers.go — sparse positional overlays for presets.
//
// Modifier grammar: same positional walk as presets, but a space SKIPS a
// position instead of clearing it, so each constant below patches only
// the components it names and leaves the rest of the style alone.
package style

const (
	// UTF8RoundCorners replaces the four corners with rounded
	// box-drawing corners and touches nothing else. Typically applied on
	// top of UTF8Full:
	//
	//	╭─────┬─────╮
	//	│ h1  │ h2  │
	//	┝━━━━━┿━━━━━┥
	//	│ a   │ b   │
	//	╰─────┴─────╯
	UTF8RoundCorners = "               ╭╮╰╯"

	// UTF8DoubleHeader replaces the header separator and its
	// intersections with double-line box-drawing characters:
	//
	//	┌─────┬─────┐
	//	│ h1  │ h2  │
	//	╞═════╪═════╡
	//	│ a   │ b   │
	//	└─────┴─────┘
	UTF8DoubleHeader = "    ╞═╪╡           "
)
