package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementClasses(t *testing.T) {
	el := NewElement("x", "b", "a")
	assert.Equal(t, []string{"a", "b"}, el.Classes())

	assert.False(t, el.ToggleClass("a"))
	assert.False(t, el.HasClass("a"))
	assert.True(t, el.ToggleClass("a"))
	assert.True(t, el.HasClass("a"))
}

func TestElementStyle(t *testing.T) {
	el := NewElement("x")
	assert.Equal(t, "", el.Style(MarginLeft))

	el.SetStyle(MarginLeft, "10px")
	assert.Equal(t, "10px", el.Style(MarginLeft))

	el.SetStyle(MarginLeft, "")
	assert.Equal(t, "", el.Style(MarginLeft))
}

func TestDispatchWithoutListeners(t *testing.T) {
	doc := NewDocument()
	doc.Add(NewElement("btn"))

	ev := NewClick("btn", nil)
	assert.True(t, doc.Dispatch(ev), "default action proceeds when nobody prevents it")
}

func TestDispatchRoutesByTargetAndType(t *testing.T) {
	doc := NewDocument()
	var got []string
	doc.AddEventListener("a", "click", func(ev *Event) { got = append(got, "a-click") })
	doc.AddEventListener("a", "hover", func(ev *Event) { got = append(got, "a-hover") })
	doc.AddEventListener("b", "click", func(ev *Event) {
		got = append(got, "b-click")
		ev.PreventDefault()
	})

	assert.True(t, doc.Dispatch(NewClick("a", nil)))
	assert.False(t, doc.Dispatch(NewClick("b", nil)))
	assert.Equal(t, []string{"a-click", "b-click"}, got)
}
