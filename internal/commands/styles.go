package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette shared with the chat screen
var (
	colorText     = lipgloss.Color("#c0caf5")
	colorTextDim  = lipgloss.Color("#565f89")
	colorTextMute = lipgloss.Color("#3b4261")
	colorSuccess  = lipgloss.Color("#9ece6a")
	colorPrimary  = lipgloss.Color("#f7768e")
	colorAccent   = lipgloss.Color("#e0af68")
)

// spinColors cycle through the busy indicator
var spinColors = []lipgloss.Color{
	lipgloss.Color("#f7768e"),
	lipgloss.Color("#ff9e64"),
	lipgloss.Color("#e0af68"),
	lipgloss.Color("#9ece6a"),
	lipgloss.Color("#73daca"),
	lipgloss.Color("#7aa2f7"),
}

var successStyle = lipgloss.NewStyle().Foreground(colorSuccess)

// printSuccess writes a check-marked status line
func printSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Bold(true).Render("✓")+" "+successStyle.Render(msg))
}
