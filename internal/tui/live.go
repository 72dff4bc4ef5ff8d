// Package tui is the terminal fallback for the map/pose visualizer: a
// Bubble Tea program drawing the occupancy grid on a Braille canvas
// with a directional robot marker, trajectory trail, and heading graph.
package tui

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/robolab-io/roboviz/internal/config"
	"github.com/robolab-io/roboviz/internal/demo"
	"github.com/robolab-io/roboviz/internal/trace"
)

const (
	canvasWidth  = 48
	canvasHeight = 24

	// The demo grid matches the canvas dot resolution so one cell is
	// one dot.
	gridSize = canvasWidth * 2

	tickRate   = 15 // steps per second
	historyCap = 200
)

// Direction glyphs for the robot marker, one per 45° octant starting
// at +X and going counter-clockwise.
var markerRunes = []rune("→↗↑↖←↙↓↘")

type TickMsg time.Time

// Model drives the demo rover and renders it each tick.
type Model struct {
	cfg    *config.Config
	rover  *demo.Rover
	canvas *Canvas

	frame       trace.Frame
	trail       []trace.Frame
	headingHist []float64

	running  bool
	showHelp bool
}

func NewModel(cfg *config.Config) Model {
	m := Model{
		cfg:         cfg,
		canvas:      NewCanvas(canvasWidth, canvasHeight),
		trail:       make([]trace.Frame, 0, historyCap),
		headingHist: make([]float64, 0, historyCap),
		running:     true,
	}
	m.reset()
	return m
}

func (m *Model) reset() {
	fp := demo.NewFloorplan(gridSize, m.cfg.Demo.Obstacles, m.cfg.Seed)
	params := demo.Params{
		SpeedMPS:      m.cfg.Demo.SpeedMPS,
		TurnRateDeg:   m.cfg.Demo.TurnRateDeg,
		RevealRadiusM: m.cfg.Demo.RevealRadiusM,
	}
	m.rover = demo.NewRover(fp, m.cfg.MapSizeMeters, params, m.cfg.Seed)
	m.frame = m.rover.Pose()
	m.trail = m.trail[:0]
	m.headingHist = m.headingHist[:0]
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
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
			m.reset()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.frame = m.rover.Step(1.0 / tickRate)
			m.trail = append(m.trail, m.frame)
			if len(m.trail) > historyCap {
				m.trail = m.trail[1:]
			}
			m.headingHist = append(m.headingHist, m.frame.ThetaDeg)
			if len(m.headingHist) > historyCap {
				m.headingHist = m.headingHist[1:]
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	m.canvas.Clear()
	m.canvas.DrawMap(m.rover.Map(), gridSize)

	for _, fr := range m.trail {
		x, y := m.dot(fr.X, fr.Y)
		m.canvas.Set(x, y)
	}

	x, y := m.dot(m.frame.X, m.frame.Y)
	m.canvas.SetRune(x/2, y/4, markerRune(m.frame.ThetaDeg))

	stats := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("roboviz demo"),
		statLine("time", fmt.Sprintf("%.1f s", m.frame.T)),
		statLine("x", fmt.Sprintf("%.2f m", m.frame.X)),
		statLine("y", fmt.Sprintf("%.2f m", m.frame.Y)),
		statLine("theta", fmt.Sprintf("%.1f°", m.frame.ThetaDeg)),
		statLine("explored", fmt.Sprintf("%.0f%%", m.rover.Coverage()*100)),
		m.headingGraph(),
	)

	view := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats),
	)

	if m.showHelp {
		view += helpStyle.Render("\nspace pause · r reset · ? help · q quit")
	} else {
		view += helpStyle.Render("\n? for help")
	}
	return view
}

func statLine(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func (m Model) headingGraph() string {
	if len(m.headingHist) < 2 {
		return ""
	}
	return graphStyle.Render(asciigraph.Plot(m.headingHist,
		asciigraph.Height(6),
		asciigraph.Width(32),
		asciigraph.Caption("heading (deg)"),
	))
}

// dot converts a pose in meters (y up) to canvas dot coordinates
// (y down).
func (m Model) dot(x, y float64) (int, int) {
	metersPerDot := m.cfg.MapSizeMeters / gridSize
	return int(x / metersPerDot), gridSize - 1 - int(y/metersPerDot)
}

func markerRune(thetaDeg float64) rune {
	theta := math.Mod(thetaDeg, 360)
	if theta < 0 {
		theta += 360
	}
	octant := int(math.Round(theta/45)) % 8
	return markerRunes[octant]
}

// Run starts the terminal visualization and blocks until quit.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg))
	_, err := p.Run()
	return err
}
