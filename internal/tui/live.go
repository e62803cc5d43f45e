// Package tui renders a live view of a running convergence sweep.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sdelab/internal/convergence"
	"github.com/san-kum/sdelab/internal/sde"
)

var (
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// ProgressMsg reports one completed step size.
type ProgressMsg convergence.Progress

// DoneMsg carries the final result (or error) of the sweep.
type DoneMsg struct {
	Result *convergence.Result
	Err    error
}

// Model is the bubbletea model for a sweep in flight.
type Model struct {
	scheme sde.Type
	paths  int
	total  int

	events []convergence.Progress
	result *convergence.Result
	err    error
	start  time.Time

	msgs <-chan tea.Msg
}

func NewModel(scheme sde.Type, paths, total int, msgs <-chan tea.Msg) Model {
	return Model{
		scheme: scheme,
		paths:  paths,
		total:  total,
		start:  time.Now(),
		msgs:   msgs,
	}
}

// Result returns the completed sweep, nil until DoneMsg arrived.
func (m Model) Result() (*convergence.Result, error) {
	return m.result, m.err
}

func (m Model) listen() tea.Cmd {
	return func() tea.Msg { return <-m.msgs }
}

func (m Model) Init() tea.Cmd {
	return m.listen()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case ProgressMsg:
		m.events = append(m.events, convergence.Progress(msg))
		return m, m.listen()
	case DoneMsg:
		m.result = msg.Result
		m.err = msg.Err
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf("convergence sweep — %s, %d paths", m.scheme, m.paths)))
	sb.WriteString("\n")

	sb.WriteString(labelStyle.Render("progress"))
	sb.WriteString(valueStyle.Render(fmt.Sprintf("%d/%d step sizes", len(m.events), m.total)))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("elapsed"))
	sb.WriteString(valueStyle.Render(time.Since(m.start).Round(time.Millisecond).String()))
	sb.WriteString("\n\n")

	for _, e := range m.events {
		sb.WriteString(fmt.Sprintf("  h=%-10.4g grid=%-7d mean=%-12.4e std=%-12.4e %v\n",
			e.StepSize, e.GridSize, e.Mean, e.Std, e.Elapsed.Round(time.Microsecond)))
	}

	if len(m.events) >= 2 {
		data := make([]float64, len(m.events))
		for i, e := range m.events {
			if e.Mean > 0 {
				data[i] = math.Log10(e.Mean)
			}
		}
		sb.WriteString("\n")
		sb.WriteString(asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("log10 mean error"),
		))
		sb.WriteString("\n")
	}

	switch {
	case m.err != nil:
		sb.WriteString("\n" + failStyle.Render("sweep failed: "+m.err.Error()))
	case m.result != nil:
		sb.WriteString("\n" + doneStyle.Render(fmt.Sprintf("done — empirical order %.3f", m.result.EmpiricalOrder())))
	}

	sb.WriteString(helpStyle.Render("\nq: quit"))
	return panelStyle.Render(sb.String())
}
