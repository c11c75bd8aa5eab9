package listview

import "strconv"

// RowKind distinguishes section-header rows from cell rows.
type RowKind uint8

const (
	// RowHeader is the single header row that opens a section.
	RowHeader RowKind = iota
	// RowCell is an ordinary cell row carrying an opaque payload.
	RowCell
)

// Row is one unit in the flattened header+cell sequence. Rows are
// addressed by a single zero-based index spanning all sections.
type Row[T any] struct {
	Kind    RowKind
	Section string // owning section identifier
	Cell    T      // zero value for header rows
	Local   int    // index within the section's cells (-1 for headers)
}

// Key returns a key for the row that stays stable across rebuilds as long
// as the row keeps its place within its section.
func (r Row[T]) Key() string {
	if r.Kind == RowHeader {
		return r.Section + ":h"
	}
	return r.Section + ":" + strconv.Itoa(r.Local)
}

// Window is an inclusive range of materialized row indices.
// The empty window is {First: 0, Last: -1}.
type Window struct {
	First, Last int
}

// Count returns the number of rows in the window.
func (w Window) Count() int {
	if w.Last < w.First {
		return 0
	}
	return w.Last - w.First + 1
}

// Empty reports whether the window contains no rows.
func (w Window) Empty() bool { return w.Last < w.First }

// Contains reports whether row index i falls inside the window.
func (w Window) Contains(i int) bool { return i >= w.First && i <= w.Last }

// ScrollDirection is derived from the sign of the delta between
// successive scroll offsets.
type ScrollDirection uint8

const (
	ScrollDown ScrollDirection = iota
	ScrollUp
)

func (d ScrollDirection) String() string {
	if d == ScrollUp {
		return "up"
	}
	return "down"
}

// SectionRange locates a section for programmatic jumps.
type SectionRange struct {
	FirstRow int     // index of the section's header row
	StartY   float32 // pixel offset of the section's first pixel
}
