package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pingdash/internal/models"
)

// fetchSnapshot runs one acquisition off the update loop.
func fetchSnapshot(f Fetcher) tea.Cmd {
	return func() tea.Msg {
		snap, err := f.Fetch(context.Background())
		return snapshotLoadedMsg{snap: snap, err: err}
	}
}

// exportResults writes the workbook for the given result set.
func exportResults(e Exporter, set *models.PingResultSet) tea.Cmd {
	return func() tea.Msg {
		path, ok := e.ExportAndLog(set)
		return exportDoneMsg{path: path, ok: ok}
	}
}

// clearNotification fires after d to clear the notification with the given version.
func clearNotification(d time.Duration, version int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearNotificationMsg{version: version}
	})
}
