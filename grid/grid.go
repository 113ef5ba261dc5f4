// Package grid packs n day tiles into a fixed-size drawing surface.
// Everything here is a pure function of the layout configuration and the
// tile count.
package grid

// Layout is the immutable geometry configuration for one render.
type Layout struct {
	SurfaceWidth  int
	SurfaceHeight int
	Margin        int
	Columns       int
	Gutter        int

	WeekdayLetters [7]string
	FontFamily     string
	FontSize       int
}

// DefaultLayout matches the reference 980x620 logical surface.
func DefaultLayout() Layout {
	return Layout{
		SurfaceWidth:   980,
		SurfaceHeight:  620,
		Margin:         20,
		Columns:        20,
		Gutter:         2,
		WeekdayLetters: [7]string{"S", "M", "T", "W", "T", "F", "S"},
		FontFamily:     "sans-serif",
		FontSize:       11,
	}
}

// InnerWidth is the drawable width inside the margins.
func (l Layout) InnerWidth() int {
	return l.SurfaceWidth - 2*l.Margin
}

// InnerHeight is the drawable height inside the margins.
func (l Layout) InnerHeight() int {
	return l.SurfaceHeight - 2*l.Margin
}

// Geometry holds the derived tile dimensions for a given day count.
type Geometry struct {
	Columns    int
	Rows       int
	TileWidth  int
	TileHeight int
	Gutter     int
}

// Geometry computes the tile grid for n days. Rows = ceil(n/Columns);
// tile sizes floor-divide the inner surface so the grid never overflows
// it. n == 0 yields zero rows and zero-area tiles without dividing by
// zero.
func (l Layout) Geometry(n int) Geometry {
	rows := (n + l.Columns - 1) / l.Columns

	// guard the height division; rows is 0 only when n is 0
	divRows := rows
	gutterRows := rows - 1
	if rows < 1 {
		divRows = 1
		gutterRows = 0
	}

	return Geometry{
		Columns:    l.Columns,
		Rows:       rows,
		TileWidth:  (l.InnerWidth() - (l.Columns-1)*l.Gutter) / l.Columns,
		TileHeight: (l.InnerHeight() - gutterRows*l.Gutter) / divRows,
		Gutter:     l.Gutter,
	}
}

// CellAt returns the position of day index i (0-based, in sorted date
// order) relative to the grid origin.
func (g Geometry) CellAt(i int) (x, y, row, col int) {
	col = i % g.Columns
	row = i / g.Columns
	x = col * (g.TileWidth + g.Gutter)
	y = row * (g.TileHeight + g.Gutter)

	return x, y, row, col
}
