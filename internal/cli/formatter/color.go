package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/triage/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// UrgencyStyle returns the style used for an urgency level.
func UrgencyStyle(level domain.UrgencyLevel) lipgloss.Style {
	switch level {
	case domain.UrgencyEmergency:
		return StyleRed
	case domain.UrgencyUrgent:
		return StyleYellow
	case domain.UrgencyRoutine:
		return StyleGreen
	default:
		return StyleDim
	}
}

// UrgencyBadge renders an indicator such as "▲ EMERGENCY".
func UrgencyBadge(level domain.UrgencyLevel) string {
	switch level {
	case domain.UrgencyEmergency:
		return StyleRed.Bold(true).Render("▲ EMERGENCY")
	case domain.UrgencyUrgent:
		return StyleYellow.Render("● URGENT")
	case domain.UrgencyRoutine:
		return StyleGreen.Render("● ROUTINE")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// StatusPill returns a colored indicator for conversation status.
func StatusPill(status domain.ConversationStatus) string {
	switch status {
	case domain.ConversationActive:
		return StyleBlue.Render("○ Active")
	case domain.ConversationCompleted:
		return StyleDim.Render("✔ Completed")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
