package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pingdash/internal/models"
	"pingdash/internal/report"
	"pingdash/internal/state"
)

// Tab indices.
const (
	tabSystem  = 0
	tabNetwork = 1
	tabPings   = 2
	tabCount   = 3
)

// Fetcher performs one acquisition.
type Fetcher interface {
	Fetch(ctx context.Context) (*state.Snapshot, error)
}

// Exporter writes the workbook for the operator. It reports only whether a
// file was written.
type Exporter interface {
	ExportAndLog(set *models.PingResultSet) (string, bool)
}

// Model is the root BubbleTea model.
type Model struct {
	// Dependencies.
	fetcher  Fetcher
	store    *state.Store
	exporter Exporter

	// Dimensions.
	width  int
	height int

	// Navigation.
	activeTab int
	showHelp  bool

	// In-flight work.
	fetching  bool
	exporting bool

	// Tab models.
	systemTab  infoModel
	networkTab infoModel
	pingsTab   pingsModel

	// Notification.
	notification string
	notifVersion int

	spinner spinner.Model
}

// Deps holds all dependencies injected into the TUI.
type Deps struct {
	Fetcher  Fetcher
	Store    *state.Store
	Exporter Exporter
}

// NewModel creates a new root Model. Every section starts blank.
func NewModel(deps Deps) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	store := deps.Store
	if store == nil {
		store = state.NewStore(nil)
	}

	m := &Model{
		fetcher:    deps.Fetcher,
		store:      store,
		exporter:   deps.Exporter,
		activeTab:  tabSystem,
		spinner:    s,
		systemTab:  newInfoModel("System Information", (*models.SystemInfo)(nil).Fields()),
		networkTab: newInfoModel("Network Information", (*models.NetworkInfo)(nil).Fields()),
		pingsTab:   newPingsModel(),
	}
	if snap := store.Current(); snap != nil {
		m.showSnapshot(snap)
	}
	return m
}

// Init triggers the single acquisition of this session.
func (m *Model) Init() tea.Cmd {
	if m.fetcher == nil {
		return nil
	}
	m.fetching = true
	return tea.Batch(fetchSnapshot(m.fetcher), m.spinner.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	prevNotifVersion := m.notifVersion

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		ch := m.contentHeight()
		m.systemTab.setSize(msg.Width, ch)
		m.networkTab.setSize(msg.Width, ch)
		m.pingsTab.setSize(msg.Width, ch)
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKey(msg); handled {
			return m, cmd
		}

	case snapshotLoadedMsg:
		m.fetching = false
		if m.store.Apply(msg.snap, msg.err) {
			m.showSnapshot(m.store.Current())
		}

	case exportDoneMsg:
		m.exporting = false
		if msg.ok {
			m.setNotification(fmt.Sprintf("Exported %s", msg.path))
		}

	case clearNotificationMsg:
		if msg.version == m.notifVersion {
			m.notification = ""
		}
	}

	if m.fetching || m.exporting {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Schedule notification auto-clear when a new notification was set.
	if m.notifVersion > prevNotifVersion && m.notification != "" {
		cmds = append(cmds, clearNotification(4*time.Second, m.notifVersion))
	}

	if m.activeTab == tabPings {
		cmds = append(cmds, m.pingsTab.Update(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	hs := headerState{
		fetching:  m.fetching,
		exporting: m.exporting,
		spinner:   m.spinner.View(),
	}
	if snap := m.store.Current(); snap != nil {
		hs.fetchedAt = snap.FetchedAt.Format("15:04:05")
	}
	header := renderHeader(m.activeTab, hs, m.width)

	var content string
	switch m.activeTab {
	case tabSystem:
		content = m.systemTab.View()
	case tabNetwork:
		content = m.networkTab.View()
	case tabPings:
		content = m.pingsTab.View()
	}

	footer := renderFooter(renderHelpBar(m.showHelp), m.width)

	parts := []string{header}
	if m.notification != "" {
		parts = append(parts, notifSuccessStyle.Render("* "+m.notification))
	}
	parts = append(parts, content, footer)
	output := lipgloss.JoinVertical(lipgloss.Left, parts...)

	// Force exactly m.height lines to prevent BubbleTea rendering drift.
	return forceHeight(output, m.width, m.height)
}

// showSnapshot pushes a snapshot into every tab. Tabs are only ever
// replaced as a whole.
func (m *Model) showSnapshot(snap *state.Snapshot) {
	m.systemTab.setFields(snap.System.Fields())
	m.networkTab.setFields(snap.Network.Fields())
	m.pingsTab.setReport(report.Render(&snap.Pings))
}

// forceHeight ensures the string has exactly `height` lines, each padded to `width`.
// This prevents BubbleTea from leaving ghost lines when switching tabs.
func forceHeight(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	blank := strings.Repeat(" ", width)
	for len(lines) < height {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) contentHeight() int {
	overhead := 6
	if m.showHelp {
		overhead += 2
	}
	h := m.height - overhead
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit, true

	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		if m.width > 0 {
			ch := m.contentHeight()
			m.systemTab.setSize(m.width, ch)
			m.networkTab.setSize(m.width, ch)
			m.pingsTab.setSize(m.width, ch)
		}
		return nil, true

	case key.Matches(msg, keys.TabNext):
		m.activeTab = (m.activeTab + 1) % tabCount
		return nil, true

	case key.Matches(msg, keys.TabPrev):
		m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		return nil, true

	case key.Matches(msg, keys.Export):
		return m.startExport(), true
	}

	return nil, false
}

// startExport exports the current ping results. It is a no-op while an
// acquisition or another export is running.
func (m *Model) startExport() tea.Cmd {
	if m.exporter == nil || m.fetching || m.exporting {
		return nil
	}
	set := &models.PingResultSet{}
	if snap := m.store.Current(); snap != nil {
		set = &snap.Pings
	}
	m.exporting = true
	return tea.Batch(exportResults(m.exporter, set), m.spinner.Tick)
}

func (m *Model) setNotification(text string) {
	m.notification = text
	m.notifVersion++
}

// NewProgram creates a bubbletea program with alt screen.
func NewProgram(deps Deps) *tea.Program {
	return tea.NewProgram(NewModel(deps), tea.WithAltScreen())
}
