package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nydiokar/Gary/internal/domain"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

var statusStyles = map[domain.Status]lipgloss.Style{
	domain.StatusPending:    lipgloss.NewStyle().Foreground(lipgloss.Color("184")),
	domain.StatusAccepted:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	domain.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
	domain.StatusRefused:    lipgloss.NewStyle().Foreground(lipgloss.Color("131")),
	domain.StatusCompleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	domain.StatusVerified:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
}

var priorityStyles = map[domain.Priority]lipgloss.Style{
	domain.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	domain.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	domain.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
}

// renderStatus renders a status name with its color.
func renderStatus(s domain.Status) string {
	if style, ok := statusStyles[s]; ok {
		return style.Render(string(s))
	}
	return string(s)
}

// renderPriority renders a priority name with its color.
func renderPriority(p domain.Priority) string {
	if style, ok := priorityStyles[p]; ok {
		return style.Render(p.Display())
	}
	return p.Display()
}
