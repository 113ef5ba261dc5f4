// Package hover holds the per-tile pointer interaction logic: a two-state
// machine whose transitions yield render-effect descriptions, plus the
// tooltip content builder. The browser-side script is generated from the
// same Config so both sides share one set of constants.
package hover

// State of one tile.
type State int

const (
	StateIdle State = iota
	StateHovered
)

func (s State) String() string {
	if s == StateHovered {
		return "hovered"
	}

	return "idle"
}

// EventKind discriminates pointer events.
type EventKind int

const (
	PointerEnter EventKind = iota
	PointerMove
	PointerLeave
)

// Event is one pointer event with surface coordinates.
type Event struct {
	Kind EventKind
	X    int
	Y    int
}

// EffectKind discriminates render effects.
type EffectKind int

const (
	EffectShowTooltip EffectKind = iota
	EffectMoveTooltip
	EffectHideTooltip
	EffectSetLabelOpacity
	EffectSetTileStroke
)

// Effect is one render-effect description produced by a transition.
// X/Y are tooltip coordinates (already offset), Opacity applies to the
// weekday label, Stroke names the tile border style.
type Effect struct {
	Kind    EffectKind
	X       int
	Y       int
	Opacity float64
	Stroke  string
}

// Config are the interaction constants shared by the Go transitions and
// the generated browser script.
type Config struct {
	// tooltip tracks the pointer at a fixed offset so it never sits
	// directly under the cursor
	OffsetX int
	OffsetY int

	LabelOpacityHovered float64
	LabelOpacityIdle    float64

	StrokeDefault   string
	StrokeHighlight string
}

// DefaultConfig returns the stock interaction constants.
func DefaultConfig() Config {
	return Config{
		OffsetX:             12,
		OffsetY:             12,
		LabelOpacityHovered: 0.9,
		LabelOpacityIdle:    0,
		StrokeDefault:       "rgba(255,255,255,0.18)",
		StrokeHighlight:     "#ffffff",
	}
}

// Transition applies one pointer event to a tile state. It is pure:
// the same (state, event) pair always yields the same next state and
// effect list. Event/state pairs outside the machine's table change
// nothing and emit nothing.
func (c Config) Transition(s State, e Event) (State, []Effect) {
	switch {
	case s == StateIdle && e.Kind == PointerEnter:
		return StateHovered, []Effect{
			{Kind: EffectSetLabelOpacity, Opacity: c.LabelOpacityHovered},
			{Kind: EffectSetTileStroke, Stroke: c.StrokeHighlight},
			{Kind: EffectShowTooltip, X: e.X + c.OffsetX, Y: e.Y + c.OffsetY},
		}
	case s == StateHovered && e.Kind == PointerMove:
		return StateHovered, []Effect{
			{Kind: EffectMoveTooltip, X: e.X + c.OffsetX, Y: e.Y + c.OffsetY},
		}
	case s == StateHovered && e.Kind == PointerLeave:
		return StateIdle, []Effect{
			{Kind: EffectSetLabelOpacity, Opacity: c.LabelOpacityIdle},
			{Kind: EffectSetTileStroke, Stroke: c.StrokeDefault},
			{Kind: EffectHideTooltip},
		}
	}

	return s, nil
}
