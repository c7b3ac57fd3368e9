package main

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
)

// gotoBarModel is the ":" jump-to-index bar. A submitted index scrolls
// the list so that record sits at the top of the viewport.
type gotoBarModel struct {
	input  textinput.Model
	active bool
	width  int
	err    string
}

func newGotoBar() gotoBarModel {
	ti := newStyledInput(": ", 12)
	ti.Placeholder = "record index"
	s := ti.Styles()
	s.Focused.Placeholder = styles.Label
	s.Blurred.Placeholder = styles.Label
	ti.SetStyles(s)
	return gotoBarModel{input: ti}
}

func (g *gotoBarModel) activate() {
	g.active = true
	g.err = ""
	g.input.SetValue("")
	g.input.SetWidth(max(12, g.width-4))
	g.input.Focus()
}

func (g *gotoBarModel) deactivate() {
	g.active = false
	g.input.Blur()
}

// parse returns the entered index. Out-of-range values are fine, the
// list clamps; only non-numeric input is an error.
func (g *gotoBarModel) parse() (int, bool) {
	v := strings.TrimSpace(g.input.Value())
	if v == "" {
		g.err = ""
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		g.err = "not a number: " + v
		return 0, false
	}
	g.err = ""
	return n, true
}

func (g *gotoBarModel) view() string {
	if !g.active {
		return ""
	}
	out := g.input.View()
	if g.err != "" {
		out += styles.Status.ErrorMsg.Render("  " + g.err)
	}
	return out
}
