package listview

import "sort"

// SectionEntry describes one section of the flattened row sequence.
// Entries are stored in insertion order; their row ranges and pixel spans
// partition the full row-index space and pixel space without gaps.
type SectionEntry struct {
	ID           string
	FirstRow     int // header row index
	LastRow      int // last cell row index (== FirstRow for empty sections)
	HeaderHeight float32
	CellHeight   float32
	TotalHeight  float32
	StartY       float32
	EndY         float32 // StartY + TotalHeight; pixel span is [StartY, EndY)
}

// Geometry owns the flattened row sequence (section headers + cells) and
// all index<->pixel math. It knows nothing about scrolling or scheduling.
type Geometry[T any] struct {
	cfg geometryConfig

	rows       []Row[T]
	rowSection []int // section table index per row
	sections   []SectionEntry
	byID       map[string]int
	total      float32
}

type geometryConfig struct {
	headerHeight float32
	cellHeight   float32
	perSection   func(sectionID string) (header, cell float32)
}

// GeometryOption configures a Geometry instance.
type GeometryOption func(*geometryConfig)

// WithRowHeights sets the header and cell heights used for every section.
func WithRowHeights(header, cell float32) GeometryOption {
	return func(c *geometryConfig) {
		c.headerHeight = header
		c.cellHeight = cell
	}
}

// WithSectionHeights supplies per-section heights. Sections for which the
// function returns a non-positive height fall back to the defaults.
func WithSectionHeights(fn func(sectionID string) (header, cell float32)) GeometryOption {
	return func(c *geometryConfig) { c.perSection = fn }
}

const (
	defaultHeaderHeight = 24
	defaultCellHeight   = 48
)

// NewGeometry creates an empty geometry index. Call Rebuild to load data.
func NewGeometry[T any](opts ...GeometryOption) *Geometry[T] {
	cfg := geometryConfig{
		headerHeight: defaultHeaderHeight,
		cellHeight:   defaultCellHeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Geometry[T]{cfg: cfg, byID: make(map[string]int)}
}

// Rebuild replaces the row sequence and section table wholesale from the
// given sectioned data. A nil order means the natural (sorted) key order.
// Rebuild is idempotent and costs O(totalRows).
func (g *Geometry[T]) Rebuild(data map[string][]T, order []string) {
	if order == nil {
		order = make([]string, 0, len(data))
		for id := range data {
			order = append(order, id)
		}
		sort.Strings(order)
	}

	rowCount := 0
	for _, id := range order {
		if _, ok := data[id]; !ok {
			continue
		}
		rowCount += 1 + len(data[id])
	}

	g.rows = make([]Row[T], 0, rowCount)
	g.rowSection = make([]int, 0, rowCount)
	g.sections = make([]SectionEntry, 0, len(order))
	g.byID = make(map[string]int, len(order))
	g.total = 0

	for _, id := range order {
		cells, ok := data[id]
		if !ok {
			continue
		}

		headerH, cellH := g.cfg.headerHeight, g.cfg.cellHeight
		if g.cfg.perSection != nil {
			if h, c := g.cfg.perSection(id); h > 0 && c > 0 {
				headerH, cellH = h, c
			}
		}

		si := len(g.sections)
		entry := SectionEntry{
			ID:           id,
			FirstRow:     len(g.rows),
			HeaderHeight: headerH,
			CellHeight:   cellH,
			StartY:       g.total,
		}

		g.rows = append(g.rows, Row[T]{Kind: RowHeader, Section: id, Local: -1})
		g.rowSection = append(g.rowSection, si)
		for i, cell := range cells {
			g.rows = append(g.rows, Row[T]{Kind: RowCell, Section: id, Cell: cell, Local: i})
			g.rowSection = append(g.rowSection, si)
		}

		entry.LastRow = len(g.rows) - 1
		entry.TotalHeight = headerH + cellH*float32(len(cells))
		entry.EndY = entry.StartY + entry.TotalHeight
		g.total = entry.EndY

		g.sections = append(g.sections, entry)
		g.byID[id] = si
	}
}

// RowCount returns the number of rows in the flattened sequence.
func (g *Geometry[T]) RowCount() int { return len(g.rows) }

// TotalHeight returns the pixel height of the full content.
func (g *Geometry[T]) TotalHeight() float32 { return g.total }

// Sections returns the section-entry table in insertion order.
func (g *Geometry[T]) Sections() []SectionEntry { return g.sections }

// RowAt returns the row at index i.
func (g *Geometry[T]) RowAt(i int) (Row[T], error) {
	if i < 0 || i >= len(g.rows) {
		return Row[T]{}, &RowIndexError{Index: i, Count: len(g.rows)}
	}
	return g.rows[i], nil
}

// RowHeight returns the pixel height of row i: the header height if the
// row is a section header, else the cell height of its section. Out of
// range indices yield 0.
func (g *Geometry[T]) RowHeight(i int) float32 {
	if i < 0 || i >= len(g.rows) {
		return 0
	}
	s := g.sections[g.rowSection[i]]
	if i == s.FirstRow {
		return s.HeaderHeight
	}
	return s.CellHeight
}

// OffsetBeforeRow returns the cumulative height of all rows strictly
// before i. It is defined for i in [0, RowCount]; i == RowCount yields
// the total content height. Out of range indices clamp.
func (g *Geometry[T]) OffsetBeforeRow(i int) float32 {
	if i <= 0 || len(g.rows) == 0 {
		return 0
	}
	if i >= len(g.rows) {
		return g.total
	}
	s := g.sections[g.rowSection[i]]
	if i == s.FirstRow {
		return s.StartY
	}
	return s.StartY + s.HeaderHeight + s.CellHeight*float32(i-s.FirstRow-1)
}

// OffsetAfterRow returns the cumulative height of all rows strictly
// after i.
func (g *Geometry[T]) OffsetAfterRow(i int) float32 {
	return g.total - g.OffsetBeforeRow(i) - g.RowHeight(i)
}

// HeightBetween returns the pixel height of the gap between row i and
// row ii, exclusive of both, for i < ii. Reversed or degenerate bounds
// are reported as an InvalidRangeError instead of silently swallowed.
func (g *Geometry[T]) HeightBetween(i, ii int) (float32, error) {
	if ii <= i {
		return 0, &InvalidRangeError{First: i, Second: ii}
	}
	return g.OffsetBeforeRow(ii) - g.OffsetBeforeRow(i+1), nil
}

// RowAtOffset returns the index of the row owning pixel offset y. Every
// y maps to some row: below 0 clamps to row 0 and past the content
// height clamps to the last row. The owning section is found by
// scanning the section table; sections are few relative to rows.
func (g *Geometry[T]) RowAtOffset(y float32) int {
	if len(g.rows) == 0 {
		return 0
	}
	if y < 0 {
		return 0
	}
	if y >= g.total {
		return len(g.rows) - 1
	}
	for _, s := range g.sections {
		if y >= s.EndY {
			continue
		}
		if y < s.StartY+s.HeaderHeight {
			return s.FirstRow
		}
		cell := int((y - s.StartY - s.HeaderHeight) / s.CellHeight)
		row := s.FirstRow + 1 + cell
		if row > s.LastRow {
			row = s.LastRow
		}
		return row
	}
	return len(g.rows) - 1
}

// VisibleRowRange returns the inclusive row range whose pixel span
// intersects the viewport. The trailing edge over-includes one row so a
// partially visible trailing row counts as visible.
func (g *Geometry[T]) VisibleRowRange(scrollY, viewportHeight float32) (first, last int) {
	if len(g.rows) == 0 {
		return 0, -1
	}
	first = g.RowAtOffset(scrollY)
	last = g.RowAtOffset(scrollY + viewportHeight) + 1
	if last > len(g.rows)-1 {
		last = len(g.rows) - 1
	}
	return first, last
}

// SectionRange returns the first row index and starting pixel offset of
// the named section.
func (g *Geometry[T]) SectionRange(id string) (SectionRange, error) {
	si, ok := g.byID[id]
	if !ok {
		return SectionRange{}, &UnknownSectionError{Section: id}
	}
	s := g.sections[si]
	return SectionRange{FirstRow: s.FirstRow, StartY: s.StartY}, nil
}
