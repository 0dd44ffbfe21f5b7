package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tabNames = []string{"System", "Network", "Pings"}

// headerState is what the status pill reports.
type headerState struct {
	fetching  bool
	exporting bool
	// fetchedAt is empty until a snapshot has been applied.
	fetchedAt string
	spinner   string
}

func renderHeader(activeTab int, hs headerState, width int) string {
	logo := logoStyle.Render("PINGDASH")

	var pill string
	switch {
	case hs.fetching:
		pill = hs.spinner + " " + busyPillStyle.Render(" LOADING ")
	case hs.exporting:
		pill = hs.spinner + " " + busyPillStyle.Render(" EXPORTING ")
	case hs.fetchedAt != "":
		pill = livePillStyle.Render(" " + hs.fetchedAt + " ")
	default:
		pill = emptyPillStyle.Render(" NO DATA ")
	}

	var tabs []string
	for i, name := range tabNames {
		if i == activeTab {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	// First row: logo + pill right-aligned.
	pillWidth := lipgloss.Width(pill)
	logoWidth := lipgloss.Width(logo)
	gap := width - logoWidth - pillWidth
	if gap < 1 {
		gap = 1
	}
	topRow := logo + strings.Repeat(" ", gap) + pill

	sep := lipgloss.NewStyle().
		Foreground(colorBorder).
		Render(strings.Repeat("─", max(width, 0)))

	return lipgloss.JoinVertical(lipgloss.Left, topRow, tabBar, sep)
}

func renderFooter(helpText string, width int) string {
	sep := lipgloss.NewStyle().
		Foreground(colorBorder).
		Render(strings.Repeat("─", max(width, 0)))
	return lipgloss.JoinVertical(lipgloss.Left, sep, helpBarStyle.Render(helpText))
}

func renderHelpBar(showFull bool) string {
	if showFull {
		return renderFullHelp()
	}
	return renderShortHelp()
}

func renderShortHelp() string {
	var parts []string
	for _, b := range keys.ShortHelp() {
		if !b.Enabled() {
			continue
		}
		k := helpKeyStyle.Render(b.Help().Key)
		d := helpDescStyle.Render(b.Help().Desc)
		parts = append(parts, k+" "+d)
	}
	return strings.Join(parts, helpSepStyle.Render(" | "))
}

func renderFullHelp() string {
	var lines []string
	for _, group := range keys.FullHelp() {
		var parts []string
		for _, b := range group {
			if !b.Enabled() {
				continue
			}
			k := helpKeyStyle.Render(b.Help().Key)
			d := helpDescStyle.Render(b.Help().Desc)
			parts = append(parts, k+" "+d)
		}
		lines = append(lines, strings.Join(parts, helpSepStyle.Render("  ")))
	}
	return strings.Join(lines, "\n")
}
