// SPDX-License-Identifier: MIT

// Package style: presets.go — the built-in positional preset catalogue.
//
// Preset grammar (wire format, compatibility-bound):
//   - One rune per component, in the canonical componentOrder.
//   - A space means "do not draw that component" (LoadPreset clears it).
//   - Every constant below is exactly ComponentCount runes long, so a
//     single LoadPreset call defines the complete style.
package style

const (
	// ASCIIFull draws every component with plain ASCII characters. This
	// is the default preset applied by New.
	//
	//	+-----+-----+
	//	| h1  | h2  |
	//	+=====+=====+
	//	| a   | b   |
	//	+-----+-----+
	//	| c   | d   |
	//	+-----+-----+
	ASCIIFull = "||--+=++|-+++++++++"

	// ASCIINoBorders keeps the inner separators and the header line but
	// drops the outer border entirely.
	//
	//	 h1  | h2
	//	=====+=====
	//	 a   | b
	//	-----+-----
	//	 c   | d
	ASCIINoBorders = "     =+ |-+        "

	// ASCIIBordersOnly draws the outer border, corners and the header
	// line, with no inner separators.
	//
	//	+------------+
	//	| h1    h2   |
	//	+============+
	//	| a     b    |
	//	| c     d    |
	//	+------------+
	ASCIIBordersOnly = "||--+==+       ++++"

	// ASCIIHorizontalOnly draws only horizontal structure: top and bottom
	// borders, the header line, and row separators. No vertical anything.
	//
	//	-----------
	//	 h1    h2
	//	===========
	//	 a     b
	//	-----------
	//	 c     d
	//	-----------
	ASCIIHorizontalOnly = "  --==== --  --    "

	// ASCIIMarkdown produces rows compatible with Markdown pipe tables:
	// left/right borders, column separators and the header line only.
	//
	//	| h1  | h2  |
	//	|-----|-----|
	//	| a   | b   |
	//	| c   | d   |
	ASCIIMarkdown = "||  |-|||          "

	// UTF8Full is ASCIIFull rendered with Unicode box-drawing characters,
	// using a heavy line under the header.
	//
	//	┌─────┬─────┐
	//	│ h1  │ h2  │
	//	┝━━━━━┿━━━━━┥
	//	│ a   │ b   │
	//	├─────┼─────┤
	//	│ c   │ d   │
	//	└─────┴─────┘
	UTF8Full = "││──┝━┿┥│─┼├┤┬┴┌┐└┘"

	// UTF8NoBorders is ASCIINoBorders rendered with box-drawing characters.
	//
	//	 h1  │ h2
	//	━━━━━┿━━━━━
	//	 a   │ b
	//	─────┼─────
	//	 c   │ d
	UTF8NoBorders = "     ━┿ │─┼        "

	// UTF8BordersOnly is ASCIIBordersOnly rendered with box-drawing
	// characters.
	//
	//	┌────────────┐
	//	│ h1    h2   │
	//	┝━━━━━━━━━━━━┥
	//	│ a     b    │
	//	│ c     d    │
	//	└────────────┘
	UTF8BordersOnly = "││──┝━━┥       ┌┐└┘"

	// UTF8HorizontalOnly is ASCIIHorizontalOnly rendered with box-drawing
	// characters.
	//
	//	───────────
	//	 h1    h2
	//	━━━━━━━━━━━
	//	 a     b
	//	───────────
	//	 c     d
	//	───────────
	UTF8HorizontalOnly = "  ──━━━━ ──  ──    "

	// Nothing clears every component: the renderer emits cell content
	// with single-space placeholders and no visible structure.
	//
	//	 h1    h2
	//	 a     b
	//	 c     d
	Nothing = "                   "
)
