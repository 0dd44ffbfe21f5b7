package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"pingdash/internal/report"
)

// pingsModel shows both ping sections in a scrollable viewport.
type pingsModel struct {
	viewport viewport.Model
	report   report.Report
	ready    bool
}

func newPingsModel() pingsModel {
	return pingsModel{}
}

func (pm *pingsModel) setSize(w, h int) {
	if !pm.ready {
		pm.viewport = viewport.New(w, h)
		pm.ready = true
	} else {
		pm.viewport.Width = w
		pm.viewport.Height = h
	}
	pm.viewport.SetContent(pm.content())
}

func (pm *pingsModel) setReport(r report.Report) {
	pm.report = r
	if pm.ready {
		pm.viewport.SetContent(pm.content())
		pm.viewport.GotoTop()
	}
}

func (pm *pingsModel) Update(msg tea.Msg) tea.Cmd {
	if !pm.ready {
		return nil
	}
	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)
	return cmd
}

func (pm *pingsModel) View() string {
	if !pm.ready {
		return pm.content()
	}
	return pm.viewport.View()
}

func (pm *pingsModel) content() string {
	var b strings.Builder
	writeSection(&b, report.SuccessfulSheet, pm.report.Successful)
	b.WriteString("\n")
	writeSection(&b, report.UnsuccessfulSheet, pm.report.Unsuccessful)
	return b.String()
}

func writeSection(b *strings.Builder, title string, rows []report.Row) {
	b.WriteString(sectionTitleStyle.Render(fmt.Sprintf("%s (%d)", title, len(rows))))
	b.WriteString("\n")
	if len(rows) == 0 {
		b.WriteString(dimStyle.Render("  none"))
		b.WriteString("\n")
		return
	}
	for _, r := range rows {
		b.WriteString("  ")
		b.WriteString(ipStyle.Render(r.IP + ":"))
		b.WriteString(" ")
		b.WriteString(categoryStyle(r.Category).Render(r.Text))
		b.WriteString("\n")
	}
}
