// Package tui provides the terminal dashboard for the nightly build monitor.
// It renders the computed statistics, the recent builds and the time until
// the next scheduled refresh.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nightwatch/src/cache"
	"nightwatch/src/config"
	"nightwatch/src/pipeline"
	"nightwatch/src/schedule"
)

type dashboardState int

const (
	stateLoading dashboardState = iota
	stateReady
	stateFailed
)

// snapshotMsg carries a freshly loaded snapshot into the update loop.
type snapshotMsg struct {
	snapshot  *cache.Snapshot
	fromCache bool
}

// loadFailedMsg is the last-resort failure signal. The loader substitutes
// placeholder data for fetch errors, so in practice this only fires on a
// programming error.
type loadFailedMsg struct {
	err error
}

// minuteTickMsg re-renders the countdown without re-fetching data.
type minuteTickMsg time.Time

// DashboardModel is the Bubble Tea model for the nightly build dashboard.
type DashboardModel struct {
	loader   *pipeline.Loader
	schedule schedule.Schedule
	styles   *StyleConfig

	state        dashboardState
	snapshot     *cache.Snapshot
	fromCache    bool
	countdown    string
	loadErr      error
	spinnerFrame int

	builds         BuildsView
	terminalWidth  int
	terminalHeight int
}

// NewDashboardModel creates the dashboard model.
func NewDashboardModel(loader *pipeline.Loader, sched schedule.Schedule) DashboardModel {
	return DashboardModel{
		loader:   loader,
		schedule: sched,
		styles:   DefaultStyles(),
		state:    stateLoading,
		builds:   NewBuildsView(),
	}
}

// Init kicks off the initial load, the spinner and the countdown ticker.
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(false), spinnerTick(), minuteTick())
}

// loadCmd loads the snapshot off the update loop. force bypasses the cache.
func (m DashboardModel) loadCmd(force bool) tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		var snap *cache.Snapshot
		fromCache := false
		if force {
			snap = loader.ForceRefresh(ctx, now)
		} else {
			snap, fromCache = loader.Load(ctx, now)
		}

		if snap == nil {
			return loadFailedMsg{err: fmt.Errorf("no snapshot produced")}
		}
		return snapshotMsg{snapshot: snap, fromCache: fromCache}
	}
}

// minuteTick schedules the next countdown re-render.
func minuteTick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return minuteTickMsg(t)
	})
}

// Update handles messages and updates the model state.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.builds.SetSize(msg.Width-4, listHeight(msg.Height))

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.state = stateLoading
			return m, tea.Batch(m.loadCmd(true), spinnerTick())
		}

	case snapshotMsg:
		m.state = stateReady
		m.snapshot = msg.snapshot
		m.fromCache = msg.fromCache
		m.builds.SetRecords(msg.snapshot.Builds)
		m.countdown = schedule.FormatCountdown(m.schedule.Until(time.Now()))

	case loadFailedMsg:
		m.state = stateFailed
		m.loadErr = msg.err

	case minuteTickMsg:
		m.countdown = schedule.FormatCountdown(m.schedule.Until(time.Time(msg)))
		return m, minuteTick()

	case spinnerTickMsg:
		if m.state == stateLoading {
			m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerFrames)
			return m, spinnerTick()
		}
	}

	var cmd tea.Cmd
	m.builds, cmd = m.builds.Update(msg)
	return m, cmd
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	width := m.terminalWidth
	if width == 0 {
		width = 80
	}

	switch m.state {
	case stateLoading:
		return m.renderLoading(width)
	case stateFailed:
		return m.renderFailed(width)
	}
	return m.renderDashboard(width)
}

func (m DashboardModel) renderLoading(width int) string {
	spinner := lipgloss.NewStyle().
		Foreground(m.styles.WarnYellow).
		Render(spinnerFrames[m.spinnerFrame])

	status := fmt.Sprintf("%s Fetching nightly build status...", spinner)

	return "\n\n" + renderLogo(width) + "\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, status)
}

func (m DashboardModel) renderFailed(width int) string {
	msg := lipgloss.NewStyle().
		Foreground(m.styles.FailureRed).
		Bold(true).
		Render("Failed to load nightly build status")

	detail := ""
	if m.loadErr != nil {
		detail = "\n" + m.styles.HelpStyle().Render(m.loadErr.Error())
	}

	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, msg) + detail
}

func (m DashboardModel) renderDashboard(width int) string {
	title := m.styles.TitleStyle().Render(
		fmt.Sprintf("NIGHTWATCH — %s/%s · %s", config.RepoOwner, config.RepoName, config.WorkflowName))

	source := "fetched"
	if m.fromCache {
		source = "cached"
	}
	subtitle := m.styles.HelpStyle().Render(
		fmt.Sprintf("%s at %s", source, m.snapshot.FetchedAt.Format("Jan 02 15:04")))

	header := lipgloss.JoinHorizontal(lipgloss.Left, title, subtitle)

	cards := renderStatCards(m.snapshot.Statistics, m.styles, width)
	incident := renderLastIncident(m.snapshot.Statistics, m.styles)

	buildsPanel := m.styles.ListStyle().Width(width - 2).Render(m.builds.Render())

	footer := m.styles.HelpStyle().Render(
		fmt.Sprintf("next refresh in %s · r refresh · q quit", m.countdown))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		cards,
		incident,
		buildsPanel,
		footer,
	)
}

// listHeight reserves room for the header, widgets, incident line and footer.
func listHeight(terminalHeight int) int {
	h := terminalHeight - 12
	if h < 3 {
		h = 3
	}
	return h
}

// Start launches the dashboard and blocks until the user quits.
func Start(loader *pipeline.Loader, sched schedule.Schedule) error {
	p := tea.NewProgram(NewDashboardModel(loader, sched), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
