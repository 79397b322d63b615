package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ASCII art logo lines for the loading screen
var nightwatchLogo = []string{
	" ███   ██ ██ ▄█████▄ ██   ██ ██████ ██     ██ ▄████▄ ██████ ▄█████▄ ██   ██",
	" ████  ██ ██ ██          ██    ██   ██     ██ ██  ██   ██   ██      ██   ██",
	" ██ ██ ██ ██ ██  ███ ██████    ██   ██  █  ██ ██████   ██   ██      ███████",
	" ██  ████ ██ ██   ██ ██   ██   ██    ██ ██ ██ ██  ██   ██   ██      ██   ██",
	" ██   ███ ██ ▀█████▀ ██   ██   ██     ▀█▀█▀  ██  ██   ██   ▀█████▀ ██   ██",
}

// Gradient colors from light (top) to dark (bottom) - subtle variation
var logoGradientColors = []string{
	"#5DADE2",
	"#3498DB",
	"#2E86C1",
	"#2874A6",
	"#21618C",
}

// Spinner frames for retro loading animation
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinnerTickMsg triggers spinner animation frame advance
type spinnerTickMsg time.Time

// spinnerTick returns a command that sends spinnerTickMsg after a delay
func spinnerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// renderLogo renders the gradient logo centered in the given width.
func renderLogo(width int) string {
	var lines []string
	for i, line := range nightwatchLogo {
		color := logoGradientColors[i%len(logoGradientColors)]
		styled := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(line)
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, styled))
	}
	return strings.Join(lines, "\n")
}
