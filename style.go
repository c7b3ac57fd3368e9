package main

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Icon constants.
const (
	IconSuccess = "✓" // checkmark
	IconError   = "×" // multiplication sign
	IconArrow   = "→" // right arrow
	IconWarn    = "▲" // small up triangle

	BorderThick = "▌" // left half block

	DiagFill = "╱" // box drawings light diagonal

	ScrollThumbChar = "┃" // heavy vertical line
	ScrollTrackChar = "│" // light vertical line
)

// palette defines all colors in one place. Changing values here
// recolors the entire UI.
var palette = struct {
	// Grays / text hierarchy
	Fg     color.Color // normal foreground
	Muted  color.Color // labels, secondary text
	Faint  color.Color // descriptions, status text
	Subtle color.Color // separators, raw lines
	Dim    color.Color // very dim separators

	// UI chrome
	Primary    color.Color // accent borders, selection
	Tertiary   color.Color // prompts
	HeaderBlue color.Color // section headers

	// Backgrounds
	BgLighter color.Color // lighter panels, overlays
	BgSubtle  color.Color // subtle highlights

	// Record severity
	Green  color.Color // success
	Yellow color.Color // warn
	Orange color.Color // error
	Red    color.Color // fatal, failures
	Cyan   color.Color // indexes, counts
}{
	Fg:     lipgloss.Color("#DFDBDD"),
	Muted:  lipgloss.Color("#858392"),
	Faint:  lipgloss.Color("#BFBCC8"),
	Subtle: lipgloss.Color("#605F6B"),
	Dim:    lipgloss.Color("#4D4C57"),

	Primary:    lipgloss.Color("#6B50FF"),
	Tertiary:   lipgloss.Color("#68FFD6"),
	HeaderBlue: lipgloss.Color("#00A4FF"),

	BgLighter: lipgloss.Color("#2D2C35"),
	BgSubtle:  lipgloss.Color("#3A3943"),

	Green:  lipgloss.Color("#00FFB2"),
	Yellow: lipgloss.Color("#E8FE96"),
	Orange: lipgloss.Color("#FF985A"),
	Red:    lipgloss.Color("#FF577D"),
	Cyan:   lipgloss.Color("#00A4FF"),
}

// appStyles groups all visual styles by semantic role.
type appStyles struct {
	// Shared styles used across multiple components
	Pane      lipgloss.Style // padded container for panes
	Label     lipgloss.Style // muted field labels
	Value     lipgloss.Style // normal field values
	Prompt    lipgloss.Style // text input prompts
	EmptyText lipgloss.Style // faint empty-state text

	// Header bar
	Header headerStyles

	// List rows
	List listStyles

	// Status bar (typed messages)
	Status statusStyles

	// Dialog / help overlays
	Dialog dialogStyles
	Help   helpStyles

	// Scrollbar
	ScrollThumb lipgloss.Style
	ScrollTrack lipgloss.Style
}

type headerStyles struct {
	Brand     lipgloss.Style // "recview" in bold primary
	Diagonal  lipgloss.Style // diagonal fill chars
	Bar       lipgloss.Style // header bar background
	Info      lipgloss.Style // section header text in content areas
	Underline lipgloss.Style // subtle underline for section headers
}

type listStyles struct {
	Row         lipgloss.Style
	Index       lipgloss.Style // record index column
	RawLine     lipgloss.Style // second row in expanded mode
	FocusBorder lipgloss.Style // thick left border for the cursor row
}

type statusStyles struct {
	SuccessIcon lipgloss.Style
	SuccessMsg  lipgloss.Style
	ErrorIcon   lipgloss.Style
	ErrorMsg    lipgloss.Style
	WarnIcon    lipgloss.Style
	WarnMsg     lipgloss.Style
	InfoIcon    lipgloss.Style
	InfoMsg     lipgloss.Style
}

type dialogStyles struct {
	Box   lipgloss.Style // rounded border, primary colored
	Title lipgloss.Style
}

type helpStyles struct {
	Sep     lipgloss.Style
	Overlay lipgloss.Style
}

var styles = defaultStyles()

func defaultStyles() appStyles {
	p := palette
	return appStyles{
		Pane: lipgloss.NewStyle().
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(p.Muted),
		Value: lipgloss.NewStyle().
			Foreground(p.Fg),
		Prompt: lipgloss.NewStyle().
			Foreground(p.Tertiary),
		EmptyText: lipgloss.NewStyle().
			Foreground(p.Faint).
			Faint(true),

		Header: headerStyles{
			Brand: lipgloss.NewStyle().
				Bold(true).
				Foreground(p.Primary),
			Diagonal: lipgloss.NewStyle().
				Foreground(p.Subtle),
			Bar: lipgloss.NewStyle().
				Background(p.BgLighter).
				Foreground(p.Fg),
			Info: lipgloss.NewStyle().
				Bold(true).
				Foreground(p.HeaderBlue),
			Underline: lipgloss.NewStyle().
				Foreground(p.Subtle),
		},

		List: listStyles{
			Row: lipgloss.NewStyle(),
			Index: lipgloss.NewStyle().
				Foreground(p.Cyan),
			RawLine: lipgloss.NewStyle().
				Foreground(p.Subtle),
			FocusBorder: lipgloss.NewStyle().
				Foreground(p.Primary),
		},

		Status: statusStyles{
			SuccessIcon: lipgloss.NewStyle().Foreground(p.Green),
			SuccessMsg:  lipgloss.NewStyle().Foreground(p.Green),
			ErrorIcon:   lipgloss.NewStyle().Foreground(p.Red),
			ErrorMsg:    lipgloss.NewStyle().Foreground(p.Red),
			WarnIcon:    lipgloss.NewStyle().Foreground(p.Yellow),
			WarnMsg:     lipgloss.NewStyle().Foreground(p.Yellow),
			InfoIcon:    lipgloss.NewStyle().Foreground(p.Cyan),
			InfoMsg:     lipgloss.NewStyle().Foreground(p.Faint),
		},

		Dialog: dialogStyles{
			Box: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(p.Primary).
				Background(p.BgLighter).
				Padding(1, 2),
			Title: lipgloss.NewStyle().
				Bold(true).
				Foreground(p.Primary),
		},

		Help: helpStyles{
			Sep: lipgloss.NewStyle().
				Foreground(p.Dim),
			Overlay: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(p.Primary).
				Background(p.BgLighter).
				Padding(1, 2),
		},

		ScrollThumb: lipgloss.NewStyle().
			Foreground(p.Primary),
		ScrollTrack: lipgloss.NewStyle().
			Foreground(p.Dim),
	}
}

// Severity-based foreground colors for list rows.
var levelStyles = func() map[string]lipgloss.Style {
	p := palette
	return map[string]lipgloss.Style{
		"debug": lipgloss.NewStyle().Foreground(p.Muted),
		"info":  lipgloss.NewStyle().Foreground(p.Fg),
		"warn":  lipgloss.NewStyle().Foreground(p.Yellow),
		"error": lipgloss.NewStyle().Foreground(p.Orange),
		"fatal": lipgloss.NewStyle().Foreground(p.Red),
	}
}()

func levelStyle(level string) lipgloss.Style {
	if s, ok := levelStyles[level]; ok {
		return s
	}
	return styles.List.Row
}
