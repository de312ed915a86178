// SPDX-License-Identifier: MIT

// Package style: style.go — TableStyle state and its mutation/read surface.
//
// Design contract (strict):
//   - Storage is a fixed array of optional runes indexed by component
//     ordinal: O(1) access, no hashing, no allocation on the hot path.
//   - Every operation is total. Length mismatches in preset/modifier
//     strings degrade gracefully; out-of-range components read as
//     unmapped and write as no-ops.
//   - Mutators return the receiver so configuration chains fluently on a
//     single owner. No internal locking: a TableStyle is exclusively
//     owned and mutated by its table.
//   - Space semantics differ on purpose: preset space CLEARS a slot,
//     modifier space SKIPS it, SetStyle(c, nil) is a full no-op. The
//     three must never be conflated.
package style

// TableStyle wraps the styling state of one table: the per-component
// character assignments, the header-presence flag, and the selected
// content arrangement.
//
// The zero value maps no components; use New for the ASCIIFull default or
// NewFromPreset to start from any preset string.
type TableStyle struct {
	hasHeader   bool
	arrangement ContentArrangement

	// chars[i] is only meaningful while drawn[i] is true.
	chars [ComponentCount]rune
	drawn [ComponentCount]bool
}

// New creates a TableStyle with the built-in ASCIIFull preset applied and
// no header. Complexity: O(ComponentCount).
func New() *TableStyle {
	ts := &TableStyle{}
	ts.LoadPreset(ASCIIFull)

	return ts
}

// NewFromPreset creates a TableStyle from the given preset string instead
// of the built-in default. Components beyond the preset's length stay
// unmapped. Complexity: O(len(preset)).
func NewFromPreset(preset string) *TableStyle {
	ts := &TableStyle{}
	ts.LoadPreset(preset)

	return ts
}

// Clone returns an independent deep copy of ts: same assignments, header
// flag and arrangement, separate lifetime. Complexity: O(ComponentCount).
func (ts *TableStyle) Clone() *TableStyle {
	dup := *ts

	return &dup
}

// LoadPreset bulk-configures the style from a positional preset string.
// The i-th rune of preset binds to the i-th component in canonical order:
//
//   - a space REMOVES any existing assignment ("don't draw this"),
//   - any other rune overwrites the assignment with that rune.
//
// The walk stops when either the preset or the component order runs out.
// A short preset leaves the remaining components exactly as they were
// before the call (it does NOT reset them to any default); excess runes
// in a long preset are ignored. LoadPreset never fails.
// Complexity: O(len(preset)).
func (ts *TableStyle) LoadPreset(preset string) {
	i := 0
	for _, r := range preset {
		if i >= ComponentCount {
			break
		}
		c := componentOrder[i]
		if r == ' ' {
			ts.drawn[c] = false
			ts.chars[c] = 0
		} else {
			ts.drawn[c] = true
			ts.chars[c] = r
		}
		i++
	}
}

// ApplyModifier overlays a sparse positional modifier string onto the
// current style. The walk is identical to LoadPreset's, except that a
// space SKIPS its position: the component keeps whatever assignment it
// currently has. Only non-space runes overwrite. Same exhaustion and
// silent-ignore rules; never fails.
//
// Returns ts, so modifiers chain:
//
//	ts.ApplyModifier(UTF8RoundCorners).ApplyModifier(UTF8DoubleHeader)
//
// Complexity: O(len(modifier)).
func (ts *TableStyle) ApplyModifier(modifier string) *TableStyle {
	i := 0
	for _, r := range modifier {
		if i >= ComponentCount {
			break
		}
		if r != ' ' {
			c := componentOrder[i]
			ts.drawn[c] = true
			ts.chars[c] = r
		}
		i++
	}

	return ts
}

// SetStyle assigns the character used to draw one component. A non-nil ch
// inserts or overwrites that single assignment. A nil ch is a complete
// no-op: it does NOT clear an existing assignment (clearing is the preset
// space's job, not this call's). Out-of-range components are ignored.
//
// Returns ts for chaining. Complexity: O(1).
func (ts *TableStyle) SetStyle(c Component, ch *rune) *TableStyle {
	if ch == nil || !c.Valid() {
		return ts
	}
	ts.drawn[c] = true
	ts.chars[c] = *ch

	return ts
}

// Char returns a pointer to r, for fluent SetStyle call sites:
//
//	ts.SetStyle(style.TopLeftCorner, style.Char('╭'))
func Char(r rune) *rune {
	return &r
}

// GetStyle returns a copy of the character currently assigned to c and
// whether one is assigned at all. Complexity: O(1).
func (ts *TableStyle) GetStyle(c Component) (rune, bool) {
	if !c.Valid() || !ts.drawn[c] {
		return 0, false
	}

	return ts.chars[c], true
}

// StyleOrDefault returns the assigned character as a one-rune string, or
// a single space when c is unmapped. Use it when the caller must always
// emit something, e.g. to keep column alignment when an intersection is
// configured away but the surrounding line is still drawn.
// Complexity: O(1).
func (ts *TableStyle) StyleOrDefault(c Component) string {
	if !c.Valid() || !ts.drawn[c] {
		return " "
	}

	return string(ts.chars[c])
}

// StyleExists reports whether c has an assigned character. Use it when
// the caller decides whether to draw an element at all versus suppressing
// the whole line or segment. Complexity: O(1).
func (ts *TableStyle) StyleExists(c Component) bool {
	return c.Valid() && ts.drawn[c]
}

// HasHeader reports whether the table renders a header row (and thus the
// HeaderLines separator and its intersections).
func (ts *TableStyle) HasHeader() bool {
	return ts.hasHeader
}

// SetHasHeader sets the header-presence flag. Returns ts for chaining.
func (ts *TableStyle) SetHasHeader(has bool) *TableStyle {
	ts.hasHeader = has

	return ts
}

// ContentArrangement returns the selected column-width arrangement mode.
func (ts *TableStyle) ContentArrangement() ContentArrangement {
	return ts.arrangement
}

// SetContentArrangement selects the column-width arrangement mode.
// Returns ts for chaining.
func (ts *TableStyle) SetContentArrangement(mode ContentArrangement) *TableStyle {
	ts.arrangement = mode

	return ts
}
