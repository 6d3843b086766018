package nav

import "sort"

// Property is an inline style property name.
type Property string

const (
	MarginLeft Property = "margin-left"
	Left       Property = "left"
)

// Element is a node of the page addressed by a stable id. It carries a class
// set and inline style values, which start empty.
type Element struct {
	id      string
	classes map[string]struct{}
	style   map[Property]string
}

// NewElement creates an element with the given classes.
func NewElement(id string, classes ...string) *Element {
	el := &Element{
		id:      id,
		classes: make(map[string]struct{}, len(classes)),
		style:   make(map[Property]string),
	}
	for _, c := range classes {
		el.classes[c] = struct{}{}
	}
	return el
}

// ID returns the element id.
func (e *Element) ID() string { return e.id }

// HasClass reports whether the class is present.
func (e *Element) HasClass(name string) bool {
	_, ok := e.classes[name]
	return ok
}

// ToggleClass flips the class and reports whether it is present afterwards.
func (e *Element) ToggleClass(name string) bool {
	if _, ok := e.classes[name]; ok {
		delete(e.classes, name)
		return false
	}
	e.classes[name] = struct{}{}
	return true
}

// Classes returns the class names in sorted order.
func (e *Element) Classes() []string {
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Style returns the inline value of prop, or "" when unset.
func (e *Element) Style(prop Property) string {
	return e.style[prop]
}

// SetStyle writes an inline value. Writing "" clears it.
func (e *Element) SetStyle(prop Property, value string) {
	if value == "" {
		delete(e.style, prop)
		return
	}
	e.style[prop] = value
}

// Event is a UI event dispatched to an element.
type Event struct {
	Type   string
	Target string
	// Source is the terminal message that produced the event, if any.
	Source any

	defaultPrevented bool
}

// NewClick builds a click event for the target element.
func NewClick(target string, source any) *Event {
	return &Event{Type: "click", Target: target, Source: source}
}

// PreventDefault suppresses the default action of the event.
func (ev *Event) PreventDefault() { ev.defaultPrevented = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (ev *Event) DefaultPrevented() bool { return ev.defaultPrevented }

// Listener handles a dispatched event.
type Listener func(ev *Event)

type listenerKey struct {
	id        string
	eventType string
}

// Document is the element tree of a page. It is owned by the UI loop and is
// not safe for concurrent use.
type Document struct {
	elements  map[string]*Element
	listeners map[listenerKey][]Listener
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		elements:  make(map[string]*Element),
		listeners: make(map[listenerKey][]Listener),
	}
}

// Add inserts or replaces elements by id.
func (d *Document) Add(els ...*Element) {
	for _, el := range els {
		d.elements[el.ID()] = el
	}
}

// ByID returns the element with the given id, or nil.
func (d *Document) ByID(id string) *Element {
	return d.elements[id]
}

// AddEventListener registers fn for events of eventType targeting id.
func (d *Document) AddEventListener(id, eventType string, fn Listener) {
	k := listenerKey{id: id, eventType: eventType}
	d.listeners[k] = append(d.listeners[k], fn)
}

// Dispatch runs the listeners registered for the event target and type.
// It returns false when the default action was prevented.
func (d *Document) Dispatch(ev *Event) bool {
	for _, fn := range d.listeners[listenerKey{id: ev.Target, eventType: ev.Type}] {
		fn(ev)
	}
	return !ev.DefaultPrevented()
}
