package controller

import (
	"github.com/charmbracelet/lipgloss"

	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

var (
	passedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	erroredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	titleStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12"))
)

func statusStyle(status m.RowStatus) lipgloss.Style {
	switch status {
	case m.Passed:
		return passedStyle
	case m.Failed:
		return failedStyle
	case m.Errored:
		return erroredStyle
	}

	return faintStyle
}

func renderStatus(status m.RowStatus) string {
	return statusStyle(status).Render(status.String())
}
