package main

import (
	"sort"
	"strings"

	"charm.land/bubbles/v2/textinput"
)

// filterVars is the sorted list of CEL variables available in filter
// expressions.
var filterVars = []string{"fields", "index", "level", "raw", "summary"}

// filterMethods is the list of string methods available in CEL expressions.
var filterMethods = []string{"contains", "startsWith", "endsWith", "lowerAscii", "matches"}

// filterBarModel is the filter bar UI component wrapping a textinput
// and celFilter. An accepted filter replaces the list's backing
// sequence, so the scroll position resets whenever the match count
// differs from the previous one.
type filterBarModel struct {
	input  textinput.Model
	filter *celFilter
	active bool
	width  int

	fieldKeys []string     // discovered record field names, for completion
	tc        tabCompleter // tab completion state
}

func newFilterBar() filterBarModel {
	ti := newStyledInput("f ", 256)
	ti.Placeholder = `level == "error" or raw.contains("timeout")  [? help]`
	s := ti.Styles()
	s.Focused.Placeholder = styles.Label
	s.Blurred.Placeholder = styles.Label
	ti.SetStyles(s)

	return filterBarModel{
		input:  ti,
		filter: newCelFilter(),
	}
}

// setFieldKeys records the union of field names seen in the loaded
// records, used for tab completion of fields["..."] keys.
func (f *filterBarModel) setFieldKeys(keys map[string]bool) {
	f.fieldKeys = f.fieldKeys[:0]
	for k := range keys {
		f.fieldKeys = append(f.fieldKeys, k)
	}
	sort.Strings(f.fieldKeys)
}

func (f *filterBarModel) activate() {
	f.active = true
	f.input.SetWidth(max(20, f.width-4))
	// Keep existing text so user can edit previous filter
	f.input.Focus()
}

func (f *filterBarModel) deactivate() {
	f.active = false
	f.input.Blur()
}

func (f *filterBarModel) clear() {
	f.input.SetValue("")
	f.filter.compile("")
}

func (f *filterBarModel) recompile() {
	f.filter.compile(f.input.Value())
}

func (f *filterBarModel) isFiltering() bool {
	return f.filter.program != nil
}

func (f *filterBarModel) resetCompletion() {
	f.tc.reset()
}

// tabComplete performs context-aware tab completion in the filter bar:
// method names after a '.', record field keys inside a quoted string,
// variable names elsewhere.
func (f *filterBarModel) tabComplete() {
	value := f.input.Value()
	cursor := f.input.Position()
	if cursor > len(value) {
		cursor = len(value)
	}

	// Scan backwards from cursor to find token start.
	tokenStart := cursor
	for tokenStart > 0 {
		ch := value[tokenStart-1]
		if ch == ' ' || ch == '(' || ch == ')' || ch == '!' ||
			ch == '<' || ch == '>' || ch == '=' || ch == ',' ||
			ch == '"' || ch == '[' {
			break
		}
		tokenStart--
	}
	token := value[tokenStart:cursor]

	var candidates []string
	switch {
	case tokenStart > 0 && value[tokenStart-1] == '.':
		candidates = filterMethods
	case tokenStart > 0 && value[tokenStart-1] == '"':
		candidates = f.fieldKeys
	default:
		candidates = filterVars
	}
	if len(candidates) == 0 {
		return
	}

	completion, ok := f.tc.complete(token, candidates)
	if !ok {
		return
	}

	newValue := value[:tokenStart] + completion + value[cursor:]
	f.input.SetValue(newValue)
	f.input.SetCursor(tokenStart + len(completion))
}

func (f *filterBarModel) view() string {
	if !f.active {
		return ""
	}

	var b strings.Builder
	b.WriteString(f.input.View())

	if f.filter.err != "" {
		b.WriteString(styles.Status.ErrorMsg.Render("  " + f.filter.err))
	} else if f.filter.program != nil {
		b.WriteString(styles.Status.SuccessMsg.Render("  " + matchBadge(f.filter.matchCount)))
		if f.filter.evalErr != "" {
			b.WriteString(styles.Status.WarnMsg.Render("  eval: " + f.filter.evalErr))
		}
	}

	return b.String()
}

// renderFilterHelp builds the styled filter reference overlay content.
func renderFilterHelp() string {
	hdr := styles.Header.Info
	val := styles.Value
	lbl := styles.Label

	item := func(expr, desc string) string {
		return "  " + val.Render(expr) + "  " + lbl.Render(desc)
	}

	var b strings.Builder

	b.WriteString(hdr.Render("Filter Reference"))
	b.WriteString("\n\n")

	b.WriteString(hdr.Render("Variables"))
	b.WriteString("\n")
	b.WriteString(item("index", "record position (int)"))
	b.WriteString("\n")
	b.WriteString(item("raw", "full record line (string)"))
	b.WriteString("\n")
	b.WriteString(item("summary", "msg/message field or raw line (string)"))
	b.WriteString("\n")
	b.WriteString(item("level", `normalized severity: debug info warn error fatal`))
	b.WriteString("\n")
	b.WriteString(item("fields", "parsed JSON members (map<string,string>)"))
	b.WriteString("\n\n")

	b.WriteString(hdr.Render("String methods"))
	b.WriteString("\n")
	b.WriteString(item(`.contains("x")  .startsWith("x")  .endsWith("x")`, ""))
	b.WriteString("\n")
	b.WriteString(item(`.matches("re")  .lowerAscii()`, ""))
	b.WriteString("\n\n")

	b.WriteString(hdr.Render("Operators"))
	b.WriteString("\n")
	b.WriteString(item(`==  !=  <  >  <=  >=  &&  ||  !  in`, ""))
	b.WriteString("\n\n")

	b.WriteString(hdr.Render("Examples"))
	b.WriteString("\n")
	b.WriteString(val.Render(`  level == "error"`))
	b.WriteString("\n")
	b.WriteString(val.Render(`  raw.contains("timeout") && index > 1000`))
	b.WriteString("\n")
	b.WriteString(val.Render(`  "status" in fields && fields["status"] == "500"`))
	b.WriteString("\n")
	b.WriteString(val.Render(`  summary.matches("retry [0-9]+")`))

	return b.String()
}
