package main

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// newStyledInput creates a textinput with the standard prompt styling applied.
func newStyledInput(prompt string, charLimit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.CharLimit = charLimit
	s := ti.Styles()
	s.Focused.Prompt = styles.Prompt
	s.Blurred.Prompt = styles.Prompt
	ti.SetStyles(s)
	return ti
}

// tabCompleter handles prefix-based tab completion with match cycling.
type tabCompleter struct {
	matches    []string
	matchIdx   int
	lastPrefix string
}

func (tc *tabCompleter) reset() {
	tc.matches = nil
	tc.matchIdx = 0
	tc.lastPrefix = ""
}

// complete returns the next match for the given prefix from candidates.
// When the prefix changes, matches are rebuilt. Returns empty string and
// false if no candidates match.
func (tc *tabCompleter) complete(prefix string, candidates []string) (string, bool) {
	if prefix != tc.lastPrefix {
		tc.lastPrefix = prefix
		tc.matches = tc.matches[:0]
		tc.matchIdx = 0
		prefixLow := strings.ToLower(prefix)
		for _, c := range candidates {
			if strings.HasPrefix(strings.ToLower(c), prefixLow) {
				tc.matches = append(tc.matches, c)
			}
		}
	}
	if len(tc.matches) == 0 {
		return "", false
	}
	result := tc.matches[tc.matchIdx]
	tc.matchIdx = (tc.matchIdx + 1) % len(tc.matches)
	return result, true
}

func padRight(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// truncateValue truncates a string to fit within maxWidth display
// cells, appending a unicode ellipsis if truncated. Cuts land on rune
// boundaries so multi-byte input stays valid UTF-8.
func truncateValue(s string, maxWidth int) string {
	if maxWidth <= 0 || lipgloss.Width(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, max(1, maxWidth), "…")
}

// selectedBorder returns the rendered thick left-border glyph used as a
// selection indicator on the cursor row.
func selectedBorder() string {
	return styles.List.FocusBorder.Render(BorderThick)
}

// renderSelectedRow renders a row with the selection border indicator,
// padded to the given width.
func renderSelectedRow(text string, width int) string {
	return padRight(selectedBorder()+" "+text, width)
}

// matchBadge returns a formatted "N matches" or "1 match" string.
func matchBadge(n int) string {
	if n == 1 {
		return "1 match"
	}
	return fmt.Sprintf("%d matches", n)
}

// copyText copies arbitrary text to the clipboard and returns a status
// message. OSC52 and the native clipboard are both attempted; at least
// one works in any terminal worth using.
func copyText(text string) tea.Cmd {
	return func() tea.Msg {
		termenv.Copy(text)
		_ = clipboard.WriteAll(text)
		return statusMsg{typ: statusSuccess, text: "Copied record to clipboard"}
	}
}
