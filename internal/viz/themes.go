package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name   string
	Curve  lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
}

// Available themes
var (
	ThemeMinimal = Theme{
		Name:   "minimal",
		Curve:  lipgloss.Color("#ff4444"),
		Accent: lipgloss.Color("#0088ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Border: lipgloss.Color("#444444"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Curve:  lipgloss.Color("#ff00ff"), // Magenta
		Accent: lipgloss.Color("#00ffff"), // Cyan
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Border: lipgloss.Color("#444466"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Curve:  lipgloss.Color("#00ff00"), // Green phosphor
		Accent: lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Border: lipgloss.Color("#003300"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Curve:  lipgloss.Color("#00a8cc"),
		Accent: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Border: lipgloss.Color("#0077be"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Curve:  lipgloss.Color("#ff6b6b"), // Coral
		Accent: lipgloss.Color("#feca57"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Border: lipgloss.Color("#2d1b2e"),
	}

	// All available themes
	Themes = []Theme{
		ThemeMinimal,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to minimal.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMinimal
}

// NextTheme returns the theme after current in Themes, wrapping around.
func NextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
