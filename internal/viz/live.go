package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/diffuse1d/internal/diffusion"
	"github.com/san-kum/diffuse1d/internal/field"
)

var (
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 2)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps the integrator each tick and renders the evolving
// profile.
type Model struct {
	integ        *diffusion.Integrator
	f            field.Field
	initial      field.Field
	t            float64
	step         int
	stepsPerTick int
	running      bool
	err          error
}

func NewModel(integ *diffusion.Integrator, initial field.Field) Model {
	return Model{
		integ:        integ,
		f:            initial.Clone(),
		initial:      initial.Clone(),
		stepsPerTick: 1,
		running:      true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.f = m.initial.Clone()
			m.t = 0
			m.step = 0
			m.err = nil
		case "up", "k":
			m.stepsPerTick *= 2
			if m.stepsPerTick > 1024 {
				m.stepsPerTick = 1024
			}
		case "down", "j":
			m.stepsPerTick /= 2
			if m.stepsPerTick < 1 {
				m.stepsPerTick = 1
			}
		}
	case TickMsg:
		if m.running && m.err == nil {
			for i := 0; i < m.stepsPerTick; i++ {
				next, err := m.integ.StepOnce(m.f)
				if err != nil {
					m.err = err
					break
				}
				m.f = next
				m.t += m.integ.Dt()
				m.step++
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	graph := asciigraph.Plot(m.f,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
	)

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if m.err != nil {
		status = "ERROR: " + m.err.Error()
	}

	row := func(label string, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
	}

	var stats strings.Builder
	stats.WriteString(row("status", status))
	stats.WriteString(row("step", fmt.Sprintf("%d", m.step)))
	stats.WriteString(row("time", fmt.Sprintf("%.4f", m.t)))
	stats.WriteString(row("dt", fmt.Sprintf("%.6g", m.integ.Dt())))
	stats.WriteString(row("steps/tick", fmt.Sprintf("%d", m.stepsPerTick)))
	stats.WriteString(row("min", fmt.Sprintf("%.4f", m.f.Min())))
	stats.WriteString(row("max", fmt.Sprintf("%.4f", m.f.Max())))

	var s strings.Builder
	s.WriteString(headerStyle.Render("DIFFUSION") + "\n")
	s.WriteString(graphStyle.Render(graph) + "\n")
	s.WriteString(statsStyle.Render(stats.String()))
	s.WriteString(helpStyle.Render("space pause · r reset · ↑/↓ speed · q quit"))
	s.WriteString("\n")
	return s.String()
}
