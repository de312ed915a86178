// Package lvtab is a small character-assignment registry for text-based
// table drawing: it decides, per structural element of a rendered grid,
// which single display character (if any) should be drawn there.
//
// 🚀 What is lvtab/style?
//
//	A dependency-free library that holds the styling state a table
//	renderer queries while assembling output line by line:
//	  • A closed, ordered registry of drawable components
//	    (borders, intersections, corners, separator lines)
//	  • Compact positional preset strings to bulk-configure a style
//	  • Sparse positional modifier strings to patch a subset of it
//	  • Read accessors with three visibility levels: skip the element,
//	    emit a blank placeholder, or draw an explicit character
//
// ✨ Why choose lvtab?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Total by design – no operation can fail; malformed presets degrade
//     gracefully instead of aborting table construction
//   - Pure Go – no cgo, no hidden deps
//   - Fluent – mutators return the owning style for chained configuration
//
// Everything lives in a single subpackage:
//
//	style/ — Component registry, TableStyle, preset & modifier grammar,
//	         built-in preset catalogue
//
// Quick ASCII example of what a renderer builds from the default style:
//
//	+-----+-----+
//	| h1  | h2  |
//	+=====+=====+
//	| a   | b   |
//	+-----+-----+
//
// See examples/ for runnable demos and style/example_test.go for
// documented usage scenarios.
//
//	go get github.com/katalvlaran/lvtab/style
package lvtab
