package tui

import "pingdash/internal/state"

// snapshotLoadedMsg carries the outcome of one acquisition. It is the only
// message that changes application state.
type snapshotLoadedMsg struct {
	snap *state.Snapshot
	err  error
}

// exportDoneMsg reports whether a workbook was written. Failure details are
// already in the log.
type exportDoneMsg struct {
	path string
	ok   bool
}

type clearNotificationMsg struct {
	version int
}
