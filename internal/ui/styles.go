package ui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	dark "github.com/thiagokokada/dark-mode-go"
)

// Theme represents the current color scheme
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// currentTheme holds the active theme (set at init)
var currentTheme Theme = ThemeDark

// Dark Theme - Tokyo Night
var darkColors = struct {
	Bg, Border, Text, TextDim      lipgloss.Color
	Accent, Cyan, Green, Red, Gray lipgloss.Color
}{
	Bg:      lipgloss.Color("#1a1b26"),
	Border:  lipgloss.Color("#414868"),
	Text:    lipgloss.Color("#c0caf5"),
	TextDim: lipgloss.Color("#787fa0"),
	Accent:  lipgloss.Color("#7aa2f7"),
	Cyan:    lipgloss.Color("#7dcfff"),
	Green:   lipgloss.Color("#9ece6a"),
	Red:     lipgloss.Color("#f7768e"),
	Gray:    lipgloss.Color("#a9b1d6"),
}

// Light Theme - Tokyo Night Light variant
var lightColors = struct {
	Bg, Border, Text, TextDim      lipgloss.Color
	Accent, Cyan, Green, Red, Gray lipgloss.Color
}{
	Bg:      lipgloss.Color("#d5d6db"),
	Border:  lipgloss.Color("#9699a3"),
	Text:    lipgloss.Color("#343b58"),
	TextDim: lipgloss.Color("#6a6d7c"),
	Accent:  lipgloss.Color("#34548a"),
	Cyan:    lipgloss.Color("#166775"),
	Green:   lipgloss.Color("#485e30"),
	Red:     lipgloss.Color("#8c4351"),
	Gray:    lipgloss.Color("#40434f"),
}

// Active color variables (set by InitTheme)
var (
	ColorBg      lipgloss.Color
	ColorBorder  lipgloss.Color
	ColorText    lipgloss.Color
	ColorTextDim lipgloss.Color
	ColorAccent  lipgloss.Color
	ColorCyan    lipgloss.Color
	ColorGreen   lipgloss.Color
	ColorRed     lipgloss.Color
	ColorGray    lipgloss.Color
)

// themeMu protects global color/style variables during live theme switches.
var themeMu sync.RWMutex

// InitTheme sets the active color palette based on theme name.
// Must be called before any UI rendering.
func InitTheme(theme string) {
	themeMu.Lock()
	defer themeMu.Unlock()
	if theme == "light" {
		currentTheme = ThemeLight
		ColorBg = lightColors.Bg
		ColorBorder = lightColors.Border
		ColorText = lightColors.Text
		ColorTextDim = lightColors.TextDim
		ColorAccent = lightColors.Accent
		ColorCyan = lightColors.Cyan
		ColorGreen = lightColors.Green
		ColorRed = lightColors.Red
		ColorGray = lightColors.Gray
	} else {
		currentTheme = ThemeDark
		ColorBg = darkColors.Bg
		ColorBorder = darkColors.Border
		ColorText = darkColors.Text
		ColorTextDim = darkColors.TextDim
		ColorAccent = darkColors.Accent
		ColorCyan = darkColors.Cyan
		ColorGreen = darkColors.Green
		ColorRed = darkColors.Red
		ColorGray = darkColors.Gray
	}
	// Reinitialize styles with new colors
	initStyles()
}

// ResolveTheme maps a configured theme name to a concrete palette,
// consulting the OS dark mode preference for "system".
func ResolveTheme(name string) string {
	if name != "system" {
		return name
	}
	isDark, err := dark.IsDarkMode()
	if err != nil || isDark {
		return "dark"
	}
	return "light"
}

// GetCurrentTheme returns the active theme
func GetCurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

func init() {
	// Default to dark theme at package init
	InitTheme("dark")
}

// Pane Styles
var (
	PaneBorderStyle        lipgloss.Style
	PaneFocusedBorderStyle lipgloss.Style
	PaneNameStyle          lipgloss.Style
	TagMainStyle           lipgloss.Style
	TagOutStyle            lipgloss.Style
	TagErrStyle            lipgloss.Style
	HintStyle              lipgloss.Style
	ScrollingStyle         lipgloss.Style
	ContentStyle           lipgloss.Style
)

func initStyles() {
	PaneBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PaneFocusedBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent)

	PaneNameStyle = lipgloss.NewStyle().Foreground(ColorGray).Bold(true)

	TagMainStyle = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	TagOutStyle = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	TagErrStyle = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)

	HintStyle = lipgloss.NewStyle().Foreground(ColorTextDim).Italic(true)
	ScrollingStyle = lipgloss.NewStyle().Foreground(ColorAccent).Italic(true)

	ContentStyle = lipgloss.NewStyle().Foreground(ColorText)
}
