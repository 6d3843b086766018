package nav

import (
	"errors"
	"fmt"
	"log/slog"
)

// Element ids and the visibility marker used by the page.
const (
	HamburgerID = "hamburger"
	MiniNavID   = "mini-nav"
	FullNavID   = "full-nav"
	MainID      = "main"
	FiltersID   = "filters"

	ShowClass = "show"
)

// ErrElementNotFound is returned when the page lacks a required element.
var ErrElementNotFound = errors.New("element not found")

// NewPage builds the standard page: full nav shown, mini nav hidden, panels
// without inline offsets.
func NewPage() *Document {
	doc := NewDocument()
	doc.Add(
		NewElement(HamburgerID),
		NewElement(MiniNavID),
		NewElement(FullNavID, ShowClass),
		NewElement(MainID),
		NewElement(FiltersID),
	)
	return doc
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for toggle diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOnToggle registers a callback invoked after every toggle.
func WithOnToggle(fn func(State)) Option {
	return func(c *Controller) { c.onToggle = fn }
}

// Controller flips the page between the full and the mini nav.
type Controller struct {
	widths Widths
	state  State

	miniNav *Element
	fullNav *Element
	main    *Element
	filters *Element

	toggles  int
	logger   *slog.Logger
	onToggle func(State)
}

// New resolves the page collaborators and binds the toggle to clicks on the
// hamburger. The initial state is recovered from the live margin of main.
func New(doc *Document, widths Widths, opts ...Option) (*Controller, error) {
	c := &Controller{
		widths: widths,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	ids := []string{HamburgerID, MiniNavID, FullNavID, MainID, FiltersID}
	els := make(map[string]*Element, len(ids))
	for _, id := range ids {
		el := doc.ByID(id)
		if el == nil {
			return nil, fmt.Errorf("nav: %q: %w", id, ErrElementNotFound)
		}
		els[id] = el
	}
	c.miniNav = els[MiniNavID]
	c.fullNav = els[FullNavID]
	c.main = els[MainID]
	c.filters = els[FiltersID]

	if s, ok := StateFromOffset(c.main.Style(MarginLeft), widths); ok {
		c.state = s
	} else {
		c.logger.Debug("unrecognised initial offset", "margin_left", c.main.Style(MarginLeft))
	}

	doc.AddEventListener(HamburgerID, "click", c.Toggle)
	return c, nil
}

// Toggle handles an activation of the hamburger: it suppresses the default
// action, flips the show marker on both navs and realigns the panels.
func (c *Controller) Toggle(ev *Event) {
	if ev != nil {
		ev.PreventDefault()
	}

	c.miniNav.ToggleClass(ShowClass)
	c.fullNav.ToggleClass(ShowClass)

	c.state = c.state.Next()
	c.applyOffset(c.main, MarginLeft)
	c.applyOffset(c.filters, Left)
	c.toggles++

	c.logger.Debug("nav toggled",
		"state", c.state.String(),
		"offset", c.widths.For(c.state),
		"toggles", c.toggles)

	if c.onToggle != nil {
		c.onToggle(c.state)
	}
}

// applyOffset writes the offset of the current state to prop of el.
func (c *Controller) applyOffset(el *Element, prop Property) {
	el.SetStyle(prop, c.widths.For(c.state))
}

// Reconfigure replaces the width configuration. Panels that already carry an
// inline offset are realigned with the new widths; untouched panels stay
// unset.
func (c *Controller) Reconfigure(w Widths) {
	c.widths = w
	if c.main.Style(MarginLeft) != "" {
		c.applyOffset(c.main, MarginLeft)
	}
	if c.filters.Style(Left) != "" {
		c.applyOffset(c.filters, Left)
	}
}

// State returns the current nav state.
func (c *Controller) State() State { return c.state }

// Widths returns the active width configuration.
func (c *Controller) Widths() Widths { return c.widths }

// Toggles returns the number of handled activations.
func (c *Controller) Toggles() int { return c.toggles }
