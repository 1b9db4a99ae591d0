package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Background(lipgloss.Color("237")).
				Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			MarginTop(1)

	statusStyles = map[statusKind]lipgloss.Style{
		statusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		statusOK:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		statusPending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		statusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
)

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	configLabel, callLabel := activeTabStyle, inactiveTabStyle
	if m.active == callTab {
		configLabel, callLabel = inactiveTabStyle, activeTabStyle
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		configLabel.Render("System Configuration"),
		" ",
		callLabel.Render("Initiate Call"),
	))
	b.WriteString("\n\n")

	if m.active == configTab {
		b.WriteString(titleStyle.Render("Twilio Configuration"))
		b.WriteString("\n")
		m.writeField(&b, "Account SID:", m.config[fieldAccountSID].View())
		m.writeField(&b, "Auth Token:", m.config[fieldAuthToken].View())
		m.writeField(&b, "Twilio Phone Number:", m.config[fieldPhoneNumber].View())
	} else {
		b.WriteString(titleStyle.Render("Make IVR Call"))
		b.WriteString("\n")
		m.writeField(&b, "Target Phone Number:", m.target.View())
		m.writeField(&b, "IVR Script (TwiML, empty for default greeting):", m.script.View())
	}

	b.WriteString("\n")
	b.WriteString(statusStyles[m.statusKind].Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ctrl+t switch tab • tab next field • ctrl+s save configuration • ctrl+d initiate call • ctrl+q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) writeField(b *strings.Builder, label, field string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString("\n")
	b.WriteString(field)
	b.WriteString("\n\n")
}
