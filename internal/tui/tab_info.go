package tui

import (
	"github.com/charmbracelet/lipgloss"

	"pingdash/internal/models"
)

// infoModel renders a labelled card for the System and Network tabs.
type infoModel struct {
	title  string
	width  int
	height int
	fields []models.Field
}

func newInfoModel(title string, blank []models.Field) infoModel {
	return infoModel{title: title, fields: blank}
}

func (im *infoModel) setSize(w, h int) {
	im.width = w
	im.height = h
}

func (im *infoModel) setFields(fields []models.Field) {
	im.fields = fields
}

func (im *infoModel) View() string {
	rows := []string{cardTitleStyle.Render(im.title)}
	for _, f := range im.fields {
		rows = append(rows, im.row(f.Label, f.Value))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	w := im.width - 6
	if w < 30 {
		w = 30
	}
	return forceHeight(cardStyle.Width(w).Render(content), im.width, im.height)
}

func (im *infoModel) row(label, value string) string {
	return cardLabelStyle.Render(label+":") + " " + cardValueStyle.Render(value)
}
