package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Box drawing characters
const (
	topLeft     = "╭"
	topRight    = "╮"
	bottomLeft  = "╰"
	bottomRight = "╯"
	horizontal  = "─"
	vertical    = "│"
	leftT       = "├"
	rightT      = "┤"
	topT        = "┬"
	bottomT     = "┴"
	cross       = "┼"
)

// Color palette
const (
	colorBorder  = "240"
	colorHeader  = "252"
	colorID      = "214"
	colorName    = "81"
	colorCell    = "252"
	colorAccount = "245"
	colorMuted   = "240"
	colorHint    = "245"
)

// Shared styles
var (
	BorderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorBorder))
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorHeader))
	IDStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(colorID))
	NameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorName))
	CellStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorCell))
	AccountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccount))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))
	HintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorHint))
)

// padRight pads a string to the given display width using runewidth. Table
// columns are sized to their widest cell, so only the selector's fixed-width
// columns ever hit the truncation path.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw > width {
		return runewidth.Truncate(s, width, "...")
	}
	return s + strings.Repeat(" ", width-sw)
}
