package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// init sets up the color profile before any styles are built, so pane
// chrome renders the same across terminal emulators.
func init() {
	initColorProfile()
}

// initColorProfile configures the lipgloss color profile from terminal
// capabilities, with a PROCPANE_COLOR override for users whose terminal
// lies about what it supports.
func initColorProfile() {
	if colorEnv := os.Getenv("PROCPANE_COLOR"); colorEnv != "" {
		switch strings.ToLower(colorEnv) {
		case "truecolor", "true", "24bit":
			lipgloss.SetColorProfile(termenv.TrueColor)
			return
		case "256", "ansi256":
			lipgloss.SetColorProfile(termenv.ANSI256)
			return
		case "16", "ansi", "basic":
			lipgloss.SetColorProfile(termenv.ANSI)
			return
		case "none", "off", "ascii":
			lipgloss.SetColorProfile(termenv.Ascii)
			return
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	if ct := os.Getenv("COLORTERM"); ct == "truecolor" || ct == "24bit" {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}

	// Most 256color TERM values belong to emulators that handle
	// TrueColor fine without advertising it.
	termName := os.Getenv("TERM")
	for _, t := range []string{
		"xterm-256color",
		"screen-256color",
		"tmux-256color",
		"xterm-direct",
		"alacritty",
		"kitty",
		"wezterm",
	} {
		if strings.Contains(termName, t) {
			lipgloss.SetColorProfile(termenv.TrueColor)
			return
		}
	}

	lipgloss.SetColorProfile(termenv.ANSI256)
}

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
