package hmi

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	domainlogging "github.com/kodflow/myconet-bus/internal/domain/logging"
)

// refreshInterval is how often the panel polls NodeLister and repaints.
const refreshInterval time.Duration = 250 * time.Millisecond

// NodeStatus is a point-in-time snapshot of one registered node, as
// displayed in the panel's roster.
type NodeStatus struct {
	// Name is the node's registered name.
	Name string
	// ID is the node's assigned id.
	ID uint64
	// Cached reports whether the node retains a publish cache.
	Cached bool
	// Latched reports whether the node replays its cache to new subscribers.
	Latched bool
	// SubCount is the number of subscribers attached to this node.
	SubCount int
	// PubCount is the number of publishers this node subscribes to.
	PubCount int
}

// NodeLister supplies the live roster the panel polls on every tick.
// Implemented by the bootstrap layer over the running bus instance.
type NodeLister interface {
	// ListNodes returns the current node roster, in registration order.
	ListNodes() []NodeStatus
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	cachedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	levelColors  = map[domainlogging.Level]lipgloss.Color{
		domainlogging.LevelDebug: lipgloss.Color("245"),
		domainlogging.LevelInfo:  lipgloss.Color("39"),
		domainlogging.LevelWarn:  lipgloss.Color("214"),
		domainlogging.LevelError: lipgloss.Color("196"),
	}
)

// tickMsg triggers a roster/feed refresh.
type tickMsg time.Time

// model is the bubbletea model backing the panel: a node roster table
// over a scrolling viewport of recent audit events.
type model struct {
	lister NodeLister
	ring   *eventRing

	nodes []NodeStatus
	feed  viewport.Viewport

	width  int
	height int
	ready  bool
}

// newModel builds the initial panel model.
func newModel(lister NodeLister, ring *eventRing) model {
	return model{lister: lister, ring: ring}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return tick()
}

// tick schedules the next refresh.
func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		feedHeight := msg.Height - m.rosterHeight() - 3
		if feedHeight < 1 {
			feedHeight = 1
		}
		if !m.ready {
			m.feed = viewport.New(msg.Width, feedHeight)
			m.ready = true
		} else {
			m.feed.Width = msg.Width
			m.feed.Height = feedHeight
		}
		m.feed.SetContent(m.renderFeed())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.feed, cmd = m.feed.Update(msg)
		return m, cmd

	case tickMsg:
		if m.lister != nil {
			m.nodes = m.lister.ListNodes()
		}
		atBottom := m.feed.AtBottom()
		m.feed.SetContent(m.renderFeed())
		if atBottom {
			m.feed.GotoBottom()
		}
		return m, tick()
	}
	return m, nil
}

// rosterHeight reports how many lines the node roster occupies,
// including its header row.
func (m model) rosterHeight() int {
	return len(m.nodes) + 2
}

// View implements tea.Model.
func (m model) View() string {
	if !m.ready {
		return "starting panel…"
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("MycoNet — live bus panel"))
	b.WriteString("\n")
	b.WriteString(m.renderRoster())
	b.WriteString("\n")
	b.WriteString(m.feed.View())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("q to quit"))
	return b.String()
}

// renderRoster renders the node table.
func (m model) renderRoster() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-20s %6s %6s %8s %8s", "NODE", "ID", "SUBS", "PUBS", "FLAGS")))
	b.WriteString("\n")
	for _, n := range m.nodes {
		flags := ""
		if n.Cached {
			flags += "C"
		}
		if n.Latched {
			flags += "L"
		}
		line := fmt.Sprintf("%-20s %6d %6d %8d %8s", n.Name, n.ID, n.SubCount, n.PubCount, flags)
		if n.Cached {
			line = cachedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// renderFeed renders the buffered audit events, most recent last.
func (m model) renderFeed() string {
	events := m.ring.snapshot()
	var b strings.Builder
	for _, e := range events {
		color, ok := levelColors[e.Level]
		if !ok {
			color = lipgloss.Color("255")
		}
		style := lipgloss.NewStyle().Foreground(color)
		line := fmt.Sprintf("%s [%-5s] %-16s %-16s %s",
			e.Timestamp.Format("15:04:05.000"), e.Level, e.Node, e.Kind, e.Message)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
