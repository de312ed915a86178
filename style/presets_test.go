package style_test

import (
	"testing"
	"unicode/utf8"

	"github.com/katalvlaran/lvtab/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// builtinPresets enumerates the full preset catalogue by name.
var builtinPresets = map[string]string{
	"ASCIIFull":           style.ASCIIFull,
	"ASCIINoBorders":      style.ASCIINoBorders,
	"ASCIIBordersOnly":    style.ASCIIBordersOnly,
	"ASCIIHorizontalOnly": style.ASCIIHorizontalOnly,
	"ASCIIMarkdown":       style.ASCIIMarkdown,
	"UTF8Full":            style.UTF8Full,
	"UTF8NoBorders":       style.UTF8NoBorders,
	"UTF8BordersOnly":     style.UTF8BordersOnly,
	"UTF8HorizontalOnly":  style.UTF8HorizontalOnly,
	"Nothing":             style.Nothing,
}

// builtinModifiers enumerates the modifier catalogue by name.
var builtinModifiers = map[string]string{
	"UTF8RoundCorners": style.UTF8RoundCorners,
	"UTF8DoubleHeader": style.UTF8DoubleHeader,
}

// TestPresets_ExactLength verifies that every built-in preset and
// modifier carries exactly one rune per component, so each constant
// defines (or addresses) the complete registry.
func TestPresets_ExactLength(t *testing.T) {
	for name, s := range builtinPresets {
		assert.Equal(t, style.ComponentCount, utf8.RuneCountInString(s), "preset %s must cover every position", name)
	}
	for name, s := range builtinModifiers {
		assert.Equal(t, style.ComponentCount, utf8.RuneCountInString(s), "modifier %s must cover every position", name)
	}
}

// TestASCIIFull_CoversEveryComponent: the construction default must leave
// nothing unmapped.
func TestASCIIFull_CoversEveryComponent(t *testing.T) {
	ts := style.NewFromPreset(style.ASCIIFull)
	for _, c := range style.Components() {
		assert.True(t, ts.StyleExists(c), "ASCIIFull must map %s", c)
	}
}

// TestNothing_ClearsEverything: the all-space preset must unmap a fully
// configured style.
func TestNothing_ClearsEverything(t *testing.T) {
	ts := style.New()
	ts.LoadPreset(style.Nothing)
	for _, c := range style.Components() {
		assert.False(t, ts.StyleExists(c), "Nothing must clear %s", c)
		assert.Equal(t, " ", ts.StyleOrDefault(c), "cleared %s must render as a placeholder", c)
	}
}

// TestUTF8Presets_BorderSemantics spot-checks that the no-borders and
// borders-only presets partition the registry as advertised.
func TestUTF8Presets_BorderSemantics(t *testing.T) {
	noBorders := style.NewFromPreset(style.UTF8NoBorders)
	assert.False(t, noBorders.StyleExists(style.LeftBorder), "UTF8NoBorders must drop the left border")
	assert.False(t, noBorders.StyleExists(style.TopLeftCorner), "UTF8NoBorders must drop the corners")
	assert.Equal(t, "│", noBorders.StyleOrDefault(style.VerticalLines), "UTF8NoBorders keeps inner columns")
	assert.Equal(t, "┼", noBorders.StyleOrDefault(style.MiddleIntersections), "UTF8NoBorders keeps inner crossings")

	bordersOnly := style.NewFromPreset(style.UTF8BordersOnly)
	assert.Equal(t, "│", bordersOnly.StyleOrDefault(style.LeftBorder), "UTF8BordersOnly keeps the outer border")
	assert.Equal(t, "┌", bordersOnly.StyleOrDefault(style.TopLeftCorner), "UTF8BordersOnly keeps the corners")
	assert.False(t, bordersOnly.StyleExists(style.VerticalLines), "UTF8BordersOnly must drop inner columns")
	assert.False(t, bordersOnly.StyleExists(style.HorizontalLines), "UTF8BordersOnly must drop inner rows")
}

// TestASCIIMarkdown_RowShape verifies the pipe-table essentials: vertical
// structure present, horizontal structure absent.
func TestASCIIMarkdown_RowShape(t *testing.T) {
	ts := style.NewFromPreset(style.ASCIIMarkdown)

	assert.Equal(t, "|", ts.StyleOrDefault(style.LeftBorder), "markdown rows start with a pipe")
	assert.Equal(t, "|", ts.StyleOrDefault(style.VerticalLines), "markdown columns separate with a pipe")
	assert.Equal(t, "-", ts.StyleOrDefault(style.HeaderLines), "markdown header underline")
	assert.False(t, ts.StyleExists(style.TopBorder), "markdown has no top border")
	assert.False(t, ts.StyleExists(style.BottomBorder), "markdown has no bottom border")
	assert.False(t, ts.StyleExists(style.HorizontalLines), "markdown has no row separators")
}

// TestUTF8RoundCorners_TouchesOnlyCorners verifies the modifier's sparse
// footprint: the four corners change, nothing else moves.
func TestUTF8RoundCorners_TouchesOnlyCorners(t *testing.T) {
	ts := style.NewFromPreset(style.UTF8Full)
	before := ts.Clone()

	ts.ApplyModifier(style.UTF8RoundCorners)

	corners := map[style.Component]string{
		style.TopLeftCorner:     "╭",
		style.TopRightCorner:    "╮",
		style.BottomLeftCorner:  "╰",
		style.BottomRightCorner: "╯",
	}
	for _, c := range style.Components() {
		if want, isCorner := corners[c]; isCorner {
			assert.Equal(t, want, ts.StyleOrDefault(c), "%s must be rounded", c)
			continue
		}
		wantCh, wantOK := before.GetStyle(c)
		gotCh, gotOK := ts.GetStyle(c)
		require.Equal(t, wantOK, gotOK, "%s presence must be untouched by the corner modifier", c)
		assert.Equal(t, wantCh, gotCh, "%s assignment must be untouched by the corner modifier", c)
	}
}

// TestUTF8DoubleHeader_TouchesOnlyHeaderLine verifies the header modifier
// rewrites the separator and its three intersections only.
func TestUTF8DoubleHeader_TouchesOnlyHeaderLine(t *testing.T) {
	ts := style.NewFromPreset(style.UTF8Full)
	before := ts.Clone()

	ts.ApplyModifier(style.UTF8DoubleHeader)

	header := map[style.Component]string{
		style.LeftHeaderIntersection:    "╞",
		style.HeaderLines:               "═",
		style.MiddleHeaderIntersections: "╪",
		style.RightHeaderIntersection:   "╡",
	}
	for _, c := range style.Components() {
		if want, isHeader := header[c]; isHeader {
			assert.Equal(t, want, ts.StyleOrDefault(c), "%s must switch to double lines", c)
			continue
		}
		wantCh, wantOK := before.GetStyle(c)
		gotCh, gotOK := ts.GetStyle(c)
		require.Equal(t, wantOK, gotOK, "%s presence must be untouched by the header modifier", c)
		assert.Equal(t, wantCh, gotCh, "%s assignment must be untouched by the header modifier", c)
	}
}

// TestContentArrangement_Names pins the enum's String values.
func TestContentArrangement_Names(t *testing.T) {
	assert.Equal(t, "Disabled", style.ArrangementDisabled.String(), "disabled mode name")
	assert.Equal(t, "Automatic", style.ArrangementAutomatic.String(), "automatic mode name")
	assert.Equal(t, "Unknown", style.ContentArrangement(7).String(), "out-of-range fallback")
}
