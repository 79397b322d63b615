package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"nightwatch/src/stats"
)

// minCardWidth keeps the stat widgets readable on narrow terminals.
const minCardWidth = 16

// renderStatCards renders the four summary widgets side by side.
func renderStatCards(st stats.Statistics, styles *StyleConfig, width int) string {
	cardWidth := width/4 - 2
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}

	cards := []string{
		renderStatCard("DAYS WITHOUT INCIDENT", fmt.Sprintf("%d", st.DaysWithoutIncident), styles, cardWidth, styles.SuccessGreen),
		renderStatCard("CURRENT STREAK", fmt.Sprintf("%d", st.CurrentStreak), styles, cardWidth, styles.PrimaryBlue),
		renderStatCard("SUCCESS RATE", formatRate(st.SuccessRate), styles, cardWidth, rateColor(st.SuccessRate, styles)),
		renderStatCard("TOTAL BUILDS", fmt.Sprintf("%d", st.TotalBuilds), styles, cardWidth, styles.TextPrimary),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderStatCard(title, value string, styles *StyleConfig, width int, valueColor lipgloss.Color) string {
	titleStyled := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render(Truncate(title, width, false))

	valueStyled := lipgloss.NewStyle().
		Foreground(valueColor).
		Bold(true).
		Render(value)

	content := lipgloss.JoinVertical(lipgloss.Center, valueStyled, titleStyled)

	return styles.CardStyle().Width(width).Render(content)
}

// renderLastIncident renders the line below the widgets.
func renderLastIncident(st stats.Statistics, styles *StyleConfig) string {
	if st.LastIncident == nil {
		return lipgloss.NewStyle().
			Foreground(styles.SuccessGreen).
			Padding(0, 1).
			Render("No incidents in the observed window")
	}

	return lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Padding(0, 1).
		Render(fmt.Sprintf("Last incident: %s", st.LastIncident.Format("Jan 02 2006 15:04")))
}

// formatRate renders a success rate with one decimal, e.g. "97.5%".
func formatRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

func rateColor(rate float64, styles *StyleConfig) lipgloss.Color {
	switch {
	case rate >= 90:
		return styles.SuccessGreen
	case rate >= 70:
		return styles.WarnYellow
	default:
		return styles.FailureRed
	}
}
