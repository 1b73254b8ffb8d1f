package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette, as 256-color codes
const (
	colorFocus     = "170"
	colorMuted     = "240"
	colorCursorBg  = "236"
	colorText      = "245"
	colorFaint     = "242"
	colorHeading   = "214" // section titles and warnings
	colorError     = "196"
	colorOK        = "28"
	colorBright    = "255"
	colorBrand     = "205"
	colorAction    = "33"
	colorInfo      = "62"
	colorToastText = "230"
)

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

func box(border string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border))
}

var (
	// Frames around the field list and the help box
	ActiveBorderStyle   = box(colorFocus)
	InactiveBorderStyle = box(colorMuted)

	SectionStyle = fg(colorHeading).Bold(true)
	NormalStyle  = fg(colorText)
	FocusedStyle = fg(colorBrand)
	WarningStyle = fg(colorHeading)
	HintStyle    = fg(colorFaint).Italic(true)
	ErrorStyle   = fg(colorError).Bold(true)
	DirtyStyle   = fg(colorHeading)

	// Item under the cursor of the focused row
	CursorStyle = fg(colorFocus).Background(lipgloss.Color(colorCursorBg)).Bold(true)

	// Pressed toggle
	CheckedStyle = fg(colorBright).Bold(true)

	// Slider knob
	KnobStyle = fg(colorFocus).Bold(true)

	ContentPaddingStyle = lipgloss.NewStyle().Padding(0, 1)

	ButtonStyle        = box(colorMuted).Foreground(lipgloss.Color(colorText)).Padding(0, 2)
	FocusedButtonStyle = ButtonStyle.Foreground(lipgloss.Color(colorBright)).BorderForeground(lipgloss.Color(colorAction)).Bold(true)

	ConfirmDangerStyle = fg(colorError).Bold(true)
	ConfirmSafeStyle   = fg(colorOK).Bold(true)

	LogoStyle = fg(colorBrand).Bold(true)
)

// toastStyle returns the status bar style for a toast kind
func toastStyle(kind toastKind) lipgloss.Style {
	bg := colorInfo
	switch kind {
	case toastSuccess:
		bg = colorOK
	case toastError:
		bg = colorError
	}
	return fg(colorToastText).Background(lipgloss.Color(bg)).Padding(0, 1)
}
