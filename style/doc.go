// Package style holds the per-component character assignments a table
// renderer consults while drawing borders, intersections, corners and
// separator lines.
//
// 🚀 How it works
//
//	Every drawable element of a table belongs to exactly one Component.
//	A TableStyle maps each Component to at most one display character:
//	  • mapped     → draw exactly that character
//	  • unmapped   → the element is "not drawn"; callers choose between
//	    skipping it (StyleExists) and emitting a single-space placeholder
//	    that keeps column alignment (StyleOrDefault)
//
// Styles are configured three ways, from coarse to fine:
//
//  1. LoadPreset(s) — positional bulk load. The i-th rune of s configures
//     the i-th Component in canonical order; a space CLEARS that slot.
//  2. ApplyModifier(s) — positional sparse overlay. Same walk, but a
//     space SKIPS the slot, leaving its current mapping untouched.
//  3. SetStyle(c, ch) — single-component override.
//
// The preset/modifier space asymmetry is the heart of the grammar: a full
// preset can explicitly blank components out, while a modifier can patch
// just the corners (say) without disturbing anything else.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvtab/style"
//
//	ts := style.New()                         // ASCIIFull defaults
//	ts.LoadPreset(style.UTF8Full)             // switch to box-drawing
//	ts.ApplyModifier(style.UTF8RoundCorners). // round the corners
//	    SetHasHeader(true)
//
//	if ts.StyleExists(style.TopBorder) {
//	    left := ts.StyleOrDefault(style.TopLeftCorner)
//	    // ... assemble the top line ...
//	}
//
// Performance:
//
//   - Every operation is O(1) per component; preset/modifier application
//     is O(len(input)) with no allocation.
//   - No operation can fail: over- and under-length inputs degrade
//     gracefully (see LoadPreset and ApplyModifier).
//
// The canonical component order is a compatibility contract for every
// preset string ever authored; see component.go before touching it.
package style
