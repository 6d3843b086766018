package layout

// NarrowThreshold is the terminal width below which the filter bar loses its
// border and shrinks to a single line.
const NarrowThreshold = 60

const (
	statusBarHeight       = 1
	filterBarHeight       = 3
	narrowFilterBarHeight = 1

	// Fallbacks when a configured width is missing or unparseable.
	DefaultFullNavCells = 24
	DefaultMiniNavCells = 5

	minMainWidth = 10
)

// Input describes the page state the geometry is derived from.
type Input struct {
	Width  int
	Height int

	FullNavWidth string
	MiniNavWidth string
	FullNavShown bool
	MiniNavShown bool

	// Inline offsets of the main and filter panels; "" means unset.
	MainMarginLeft string
	FiltersLeft    string
}

// PanelLayout holds calculated dimensions for the page.
type PanelLayout struct {
	Width  int
	Height int

	NavWidth  int
	NavHeight int

	MainX     int
	MainWidth int

	FiltersX      int
	FiltersWidth  int
	FiltersHeight int

	ContentHeight int // height of the main panel
	Narrow        bool
}

// Calculate computes the panel layout. An unset panel offset follows the
// width of the visible nav.
func Calculate(in Input) PanelLayout {
	l := PanelLayout{
		Width:  max(in.Width, 0),
		Height: max(in.Height, 0),
		Narrow: in.Width < NarrowThreshold,
	}

	l.NavWidth = NavCells(in)
	if limit := l.Width - minMainWidth; l.NavWidth > limit {
		l.NavWidth = max(limit, 0)
	}
	l.NavHeight = max(l.Height-statusBarHeight, 0)

	l.MainX = l.offsetCells(in.MainMarginLeft)
	l.MainWidth = l.Width - l.MainX

	l.FiltersX = l.offsetCells(in.FiltersLeft)
	l.FiltersWidth = l.Width - l.FiltersX

	l.FiltersHeight = filterBarHeight
	if l.Narrow {
		l.FiltersHeight = narrowFilterBarHeight
	}

	l.ContentHeight = l.Height - statusBarHeight - l.FiltersHeight
	if l.ContentHeight < 1 {
		l.ContentHeight = 1
	}

	return l
}

// NavCells returns the width of the visible nav in cells. When both navs are
// shown the full nav wins; when neither is, the column is empty.
func NavCells(in Input) int {
	switch {
	case in.FullNavShown:
		return cellsOr(in.FullNavWidth, in.Width, DefaultFullNavCells)
	case in.MiniNavShown:
		return cellsOr(in.MiniNavWidth, in.Width, DefaultMiniNavCells)
	default:
		return 0
	}
}

func (l PanelLayout) offsetCells(offset string) int {
	x, ok := ParseLength(offset, l.Width)
	if !ok {
		x = l.NavWidth
	}
	return clamp(x, 0, max(l.Width-1, 0))
}

func cellsOr(value string, total, fallback int) int {
	if n, ok := ParseLength(value, total); ok {
		return n
	}
	return fallback
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
