package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/assignment-tracker/internal/theme"
)

// Layout manages the terminal layout dimensions.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	LegendHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
// The header, legend, and status bar each take one line.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		LegendHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height left for the active view.
func (l Layout) ContentHeight() int {
	h := l.Height - l.HeaderHeight - l.LegendHeight - l.StatusBarHeight
	if h < 0 {
		return 0
	}
	return h
}

// RenderHeader renders the top bar with a title on the left and a summary
// on the right.
func (l Layout) RenderHeader(title, summary string) string {
	titleRendered := theme.HeaderStyle.Render(title)
	summaryRendered := theme.HeaderStyle.Render(summary)
	return joinFilled(l.Width, theme.HeaderStyle, titleRendered, summaryRendered)
}

// RenderStatusBar renders the bottom bar with keyboard hints or a message.
func (l Layout) RenderStatusBar(text string) string {
	return joinFilled(l.Width, theme.StatusBarStyle, theme.StatusBarStyle.Render(text), "")
}

// RenderWithFrame stacks header, content, legend, and status bar.
func (l Layout) RenderWithFrame(header, content, legend, statusBar string) string {
	content = lipgloss.NewStyle().
		Height(l.ContentHeight()).
		MaxHeight(l.ContentHeight()).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, content, legend, statusBar)
}

// joinFilled places left and right on one line padded with style's
// background to width.
func joinFilled(width int, style lipgloss.Style, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	filler := lipgloss.NewStyle().
		Width(gap).
		Background(style.GetBackground()).
		Render("")
	return lipgloss.JoinHorizontal(lipgloss.Top, left, filler, right)
}
