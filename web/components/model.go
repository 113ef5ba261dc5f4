package components

// Tile is one rendered day cell: geometry, resolved colors, the weekday
// initial and the precomputed tooltip lines carried as data attributes.
type Tile struct {
	X      int
	Y      int
	Width  int
	Height int

	Fill      string
	TextColor string
	Label     string

	Season string
	Hours  string
	Extra  string
	Date   string
}

// LegendEntry is one swatch in the page legend.
type LegendEntry struct {
	Color string
	Label string
}

// CalendarVM is everything the page components need for one render.
type CalendarVM struct {
	Title         string
	SurfaceWidth  int
	SurfaceHeight int
	Margin        int
	FontFamily    string
	FontSize      int
	StrokeDefault string

	Tiles  []Tile
	Legend []LegendEntry
}
