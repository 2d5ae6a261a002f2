package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Accent   lipgloss.Color
	Border   lipgloss.Color
	Success  lipgloss.Color
	Error    lipgloss.Color
	Info     lipgloss.Color
	BarFill  lipgloss.Color
	BarEmpty lipgloss.Color
}

var palettes = map[string]palette{
	"catppuccin": {
		Text:     lipgloss.Color("#cdd6f4"),
		Muted:    lipgloss.Color("#a6adc8"),
		Accent:   lipgloss.Color("#89b4fa"),
		Border:   lipgloss.Color("#585b70"),
		Success:  lipgloss.Color("#a6e3a1"),
		Error:    lipgloss.Color("#f38ba8"),
		Info:     lipgloss.Color("#94e2d5"),
		BarFill:  lipgloss.Color("#94e2d5"),
		BarEmpty: lipgloss.Color("#313244"),
	},
	"dracula": {
		Text:     lipgloss.Color("#f8f8f2"),
		Muted:    lipgloss.Color("#6272a4"),
		Accent:   lipgloss.Color("#8be9fd"),
		Border:   lipgloss.Color("#44475a"),
		Success:  lipgloss.Color("#50fa7b"),
		Error:    lipgloss.Color("#ff5555"),
		Info:     lipgloss.Color("#bd93f9"),
		BarFill:  lipgloss.Color("#50fa7b"),
		BarEmpty: lipgloss.Color("#343746"),
	},
	"gruvbox": {
		Text:     lipgloss.Color("#ebdbb2"),
		Muted:    lipgloss.Color("#a89984"),
		Accent:   lipgloss.Color("#83a598"),
		Border:   lipgloss.Color("#665c54"),
		Success:  lipgloss.Color("#b8bb26"),
		Error:    lipgloss.Color("#fb4934"),
		Info:     lipgloss.Color("#fabd2f"),
		BarFill:  lipgloss.Color("#b8bb26"),
		BarEmpty: lipgloss.Color("#3c3836"),
	},
	"solarized_dark": {
		Text:     lipgloss.Color("#fdf6e3"),
		Muted:    lipgloss.Color("#93a1a1"),
		Accent:   lipgloss.Color("#268bd2"),
		Border:   lipgloss.Color("#586e75"),
		Success:  lipgloss.Color("#859900"),
		Error:    lipgloss.Color("#dc322f"),
		Info:     lipgloss.Color("#b58900"),
		BarFill:  lipgloss.Color("#859900"),
		BarEmpty: lipgloss.Color("#073642"),
	},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["catppuccin"]
}

func themeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// nextThemeName cycles through the known themes in name order.
func nextThemeName(current string) string {
	names := themeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

type styles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	accent  lipgloss.Style
	box     lipgloss.Style
	success lipgloss.Style
	errs    lipgloss.Style
	info    lipgloss.Style
	barFill lipgloss.Style
	barRest lipgloss.Style
}

func newStyles(p palette) styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		muted:   lipgloss.NewStyle().Foreground(p.Muted),
		accent:  lipgloss.NewStyle().Foreground(p.Accent),
		box:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(1, 2),
		success: lipgloss.NewStyle().Foreground(p.Success),
		errs:    lipgloss.NewStyle().Foreground(p.Error),
		info:    lipgloss.NewStyle().Foreground(p.Info),
		barFill: lipgloss.NewStyle().Foreground(p.BarFill),
		barRest: lipgloss.NewStyle().Foreground(p.BarEmpty),
	}
}
