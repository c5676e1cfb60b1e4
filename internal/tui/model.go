// Package tui is an interactive grid editor that animates a search one
// frontier extraction at a time.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/render"
)

// animState is the lifecycle of one animation.
type animState int

const (
	stateIdle     animState = iota // editing; nothing on the board
	stateRunning                   // advancing on every tick
	statePaused                    // waiting for n or p
	stateFinished                  // outcome shown
)

// tickMsg advances a running animation. gen ties it to the run that
// scheduled it so ticks from a reset or paused run are dropped.
type tickMsg struct{ gen int }

// Options configures a Model.
type Options struct {
	Interval      time.Duration
	Renderer      *render.Renderer
	SearchOptions []astar.Option
}

// Model is the bubbletea model of the editor.
type Model struct {
	grid        *gridgraph.GridGraph
	start, goal gridgraph.Cell
	cursor      gridgraph.Cell

	interval   time.Duration
	renderer   *render.Renderer
	searchOpts []astar.Option

	board   *render.Board
	stepper *astar.Stepper
	state   animState
	gen     int
	result  astar.Result
	status  string
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	helpText    = "arrows/hjkl move  s start  g goal  x wall  space run  p pause  n step  c clear  q quit"
)

// New returns a model editing gg with the given endpoints. The cursor starts
// on start.
func New(gg *gridgraph.GridGraph, start, goal gridgraph.Cell, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = 100 * time.Millisecond
	}
	if opts.Renderer == nil {
		opts.Renderer = render.New()
	}
	m := Model{
		grid:       gg,
		start:      start,
		goal:       goal,
		cursor:     start,
		interval:   opts.Interval,
		renderer:   opts.Renderer,
		searchOpts: opts.SearchOptions,
	}
	m.reset()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		if msg.gen != m.gen || m.state != stateRunning {
			return m, nil
		}
		m.advance()
		if m.state == stateRunning {
			return m, m.tick()
		}
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.moveCursor(-1, 0)
	case "right", "l":
		m.moveCursor(1, 0)
	case "up", "k":
		m.moveCursor(0, -1)
	case "down", "j":
		m.moveCursor(0, 1)
	case "s":
		if m.grid.Free(m.cursor) && m.cursor != m.goal {
			m.start = m.cursor
			m.reset()
		}
	case "g":
		if m.grid.Free(m.cursor) && m.cursor != m.start {
			m.goal = m.cursor
			m.reset()
		}
	case "x", "enter":
		m.toggleWall()
	case "c":
		if gg, err := gridgraph.NewBlankGrid(m.grid.Width, m.grid.Height, gridgraph.GridOptions{ObstacleValue: m.grid.ObstacleValue}); err == nil {
			m.grid = gg
		}
		m.reset()
	case " ":
		return m.run()
	case "p":
		switch m.state {
		case stateRunning:
			// the tick already scheduled must not survive a resume
			m.gen++
			m.state = statePaused
			m.status = "paused"
		case statePaused:
			m.state = stateRunning
			m.status = "running"
			return m, m.tick()
		}
	case "n":
		if m.state == statePaused {
			m.advance()
		}
	}

	return m, nil
}

func (m *Model) moveCursor(dx, dy int) {
	next := gridgraph.Cell{X: m.cursor.X + dx, Y: m.cursor.Y + dy}
	if m.grid.InBounds(next) {
		m.cursor = next
	}
}

// toggleWall flips the obstacle under the cursor; endpoints cannot be walled.
func (m *Model) toggleWall() {
	if m.cursor == m.start || m.cursor == m.goal {
		return
	}
	v := m.grid.ObstacleValue
	if !m.grid.Free(m.cursor) {
		v = 0
	}
	gg, err := m.grid.With(m.cursor, v)
	if err != nil {
		return
	}
	m.grid = gg
	m.reset()
}

// reset drops any animation and redraws the bare grid.
func (m *Model) reset() {
	m.gen++
	m.stepper = nil
	m.state = stateIdle
	m.result = astar.Result{}
	m.status = ""
	m.board = render.NewBoard(m.grid, m.start, m.goal)
}

// run starts a fresh animation of the current grid.
func (m Model) run() (tea.Model, tea.Cmd) {
	m.reset()
	s, err := astar.NewStepper(m.grid, m.start, m.goal, m.searchOpts...)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.stepper = s
	m.state = stateRunning
	m.status = "running"

	return m, m.tick()
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// advance performs one search step and paints its events.
func (m *Model) advance() {
	if m.stepper == nil {
		return
	}
	st, ok := m.stepper.Step()
	for _, e := range st.Events {
		m.board.Apply(e)
	}
	if ok && !st.Done {
		return
	}

	m.result = m.stepper.Result()
	m.state = stateFinished
	if m.result.Found {
		m.board.MarkPath(m.result.Path)
		m.status = fmt.Sprintf("path found: %d moves, %d cells expanded", m.result.Cost, m.result.Expanded)
		return
	}
	m.status = fmt.Sprintf("no path: %d cells expanded", m.result.Expanded)
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("A* pathfinding"))
	sb.WriteString(fmt.Sprintf("  start %s  goal %s  cursor %s\n\n", m.start, m.goal, m.cursor))
	sb.WriteString(m.renderer.RenderCursor(m.board, m.cursor))
	sb.WriteString("\n\n")
	if m.status != "" {
		sb.WriteString(statusStyle.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(statusStyle.Render(helpText))
	sb.WriteString("\n")

	return sb.String()
}

// Run starts the editor as a full-screen program and blocks until it quits.
func Run(m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()

	return err
}
