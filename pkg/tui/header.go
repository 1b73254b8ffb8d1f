package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Version is shown next to the logo
var Version = "dev"

const logo = "▐▀▀ █ ▀█▀\n▐▀  █  █\n▐   █  █"

// renderHeader puts title at the left on the logo's baseline and the logo at
// the right edge of width. Without a width the two are just spaced apart.
func renderHeader(width int, title string) string {
	mark := LogoStyle.Render(logo + "  v" + Version)
	left := LogoStyle.Render(title)

	gap := 2
	if width > 0 {
		gap = max(width-2-lipgloss.Width(left)-lipgloss.Width(mark), 1)
	}
	return ContentPaddingStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, left, strings.Repeat(" ", gap), mark))
}
