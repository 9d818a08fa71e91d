// Command poincaretui previews the hyperbolic tiling in the terminal.
// The tiling is rendered to a software texture, scaled to the terminal
// cell grid with the active filter mode, and drawn as colored half
// blocks.
//
// Keys:
//
//	r / R      raise / lower the tiling resolution by 100
//	t / T      nearest / linear filtering
//	a          toggle between circular fit and filling the grid
//	q, ctrl+c  quit
package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/gogpu/poincare"
	"github.com/gogpu/poincare/internal/termgrid"
	"github.com/gogpu/poincare/texture"
)

const (
	initialResolution = 300
	resolutionStep    = 100
	minResolution     = 100
)

// model owns all preview state: the tiling pipeline, the software
// texture it renders into, and the current view parameters.
type model struct {
	tiling     *poincare.Tiling
	tex        *texture.SoftwareResource
	resolution int
	aspect     bool
	profile    termenv.Profile

	cols int
	rows int

	grid string
	err  error
}

func newModel() *model {
	m := &model{
		tiling:     poincare.New(),
		tex:        texture.NewSoftwareResource(),
		resolution: initialResolution,
		aspect:     true,
		profile:    termenv.ColorProfile(),
	}
	m.upload()
	return m
}

func (m *model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.setResolution(m.resolution + resolutionStep)
		case "R":
			m.setResolution(m.resolution - resolutionStep)
		case "t":
			m.setFilter(texture.FilterNearest)
		case "T":
			m.setFilter(texture.FilterLinear)
		case "a":
			m.aspect = !m.aspect
			m.refresh()
		}

	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.refresh()
	}
	return m, nil
}

func (m *model) View() string {
	aspectLabel := "fill"
	if m.aspect {
		aspectLabel = "circle"
	}
	status := fmt.Sprintf("res %d | filter %s | fit %s | r/R res  t/T filter  a fit  q quit",
		m.resolution, m.tex.Filter(), aspectLabel)
	if m.err != nil {
		status = "error: " + m.err.Error()
	}
	if m.grid == "" {
		return status
	}
	return m.grid + "\n" + status
}

// upload renders the tiling at the current resolution into the software
// texture. The displayed grid is produced separately by refresh.
func (m *model) upload() {
	pm, err := m.tiling.Render(m.resolution, m.resolution)
	if err != nil {
		m.err = err
		return
	}
	m.err = m.tex.Upload(pm)
}

// refresh scales the texture to the terminal grid and rebuilds the half
// block view. One text row is reserved for the status line.
func (m *model) refresh() {
	if m.cols <= 0 || m.rows <= 1 {
		m.grid = ""
		return
	}

	gridW := m.cols
	gridH := (m.rows - 1) * 2
	if m.aspect {
		s := gridW
		if gridH < s {
			s = gridH
		}
		gridW, gridH = s, s
	}

	scaled, err := m.tex.Scale(gridW, gridH)
	if err != nil {
		m.err = err
		m.grid = ""
		return
	}
	m.grid = termgrid.Render(scaled, m.profile)
}

func (m *model) setResolution(res int) {
	if res < minResolution {
		poincare.Logger().Warn("resolution clamped", "requested", res, "floor", minResolution)
		res = minResolution
	}
	if res == m.resolution {
		return
	}
	m.resolution = res
	m.upload()
	m.refresh()
}

func (m *model) setFilter(f texture.FilterMode) {
	if err := m.tex.SetFilter(f); err != nil {
		m.err = err
		return
	}
	m.refresh()
}

func main() {
	if err := tea.NewProgram(newModel()).Start(); err != nil {
		log.Fatal(err)
	}
}
