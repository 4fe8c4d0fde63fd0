// Package tui provides the interactive parameter explorer. Every keypress
// produces a fresh input snapshot and recomputes all curves from scratch;
// no state survives between evaluations.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/nmrsim/internal/config"
	"github.com/san-kum/nmrsim/internal/nmr"
	"github.com/san-kum/nmrsim/internal/viz"
)

type param struct {
	name string
	step float64
	min  float64
	max  float64
}

var paramDefs = []param{
	{name: "relaxivity", step: 0.001, min: 0.001, max: 0.1},
	{name: "radius", step: 0.1, min: 0.1, max: 100},
	{name: "porosity_1", step: 1, min: 1, max: 100},
	{name: "porosity_2", step: 1, min: 1, max: 100},
	{name: "porosity_3", step: 1, min: 1, max: 100},
}

type model struct {
	cfg     *config.Config
	values  map[string]float64
	cursor  int
	editing bool
	editBuf string
	width   int

	// outputs of the latest snapshot
	sphere nmr.Sphere
	t2     nmr.Milliseconds
	curves nmr.ScenarioCurves
	err    error
}

// NewApp seeds the explorer from a config snapshot.
func NewApp(cfg *config.Config) tea.Model {
	values := map[string]float64{
		"relaxivity": cfg.Relaxivity,
		"radius":     float64(cfg.RadiusMicrometers()),
		"porosity_1": 30,
		"porosity_2": 20,
		"porosity_3": 10,
	}
	for i, p := range cfg.Porosities {
		if i > 2 {
			break
		}
		values[fmt.Sprintf("porosity_%d", i+1)] = p
	}
	m := model{cfg: cfg, values: values, width: 80}
	m.recompute()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
				m.values[paramDefs[m.cursor].name] = clamp(val, paramDefs[m.cursor])
				m.recompute()
			}
			m.editing, m.editBuf = false, ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(paramDefs)-1 {
			m.cursor++
		}
	case "left", "h":
		p := paramDefs[m.cursor]
		m.values[p.name] = clamp(m.values[p.name]-p.step, p)
		m.recompute()
	case "right", "l":
		p := paramDefs[m.cursor]
		m.values[p.name] = clamp(m.values[p.name]+p.step, p)
		m.recompute()
	case "enter", " ":
		m.editing, m.editBuf = true, fmt.Sprintf("%.3f", m.values[paramDefs[m.cursor].name])
	}
	return m, nil
}

// recompute rebuilds every derived value from the current inputs. The
// inputs are copied into locals first so a failed stage leaves a
// consistent snapshot behind.
func (m *model) recompute() {
	m.err = nil

	sphere, err := nmr.SphereGeometry(nmr.Micrometers(m.values["radius"]))
	if err != nil {
		m.err = err
		return
	}
	t2, err := nmr.T2(nmr.MicrometersPerMillisecond(m.values["relaxivity"]), sphere.SurfaceToVolume())
	if err != nil {
		m.err = err
		return
	}
	domain, err := m.cfg.Domain(t2)
	if err != nil {
		m.err = err
		return
	}
	curves, err := nmr.GenerateScenarios(t2, []nmr.Scenario{
		{Label: "porosity_1", Porosity: nmr.Percent(m.values["porosity_1"])},
		{Label: "porosity_2", Porosity: nmr.Percent(m.values["porosity_2"])},
		{Label: "porosity_3", Porosity: nmr.Percent(m.values["porosity_3"])},
	}, domain)
	if err != nil {
		m.err = err
		return
	}

	m.sphere, m.t2, m.curves = sphere, t2, curves
}

func (m model) View() string {
	var b strings.Builder
	h := lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	sub := lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))

	b.WriteString("\n  " + h.Render("NMRSIM") + "\n  " + sub.Render("t2 pore relaxation explorer") + "\n\n")

	for i, p := range paramDefs {
		val := m.values[p.name]
		valStr := fmt.Sprintf("%8.3f", val)
		if m.editing && i == m.cursor {
			valStr = fmt.Sprintf("%8s", m.editBuf+"_")
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true).Render("▸"),
				lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true).Render(fmt.Sprintf("%-12s", p.name)),
				lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff")).Bold(true).Render(valStr)))
		} else {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				lipgloss.NewStyle().Foreground(lipgloss.Color("#555566")).Render(fmt.Sprintf("  %-12s", p.name)),
				lipgloss.NewStyle().Foreground(lipgloss.Color("#444455")).Render(valStr)))
		}
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Render(m.err.Error()) + "\n")
	} else {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			viz.LabelStyle.Render("surface area (S)"),
			viz.ValueStyle.Render(fmt.Sprintf("%.4f µm²", float64(m.sphere.SurfaceArea)))))
		b.WriteString(fmt.Sprintf("  %s %s\n",
			viz.LabelStyle.Render("volume (V)"),
			viz.ValueStyle.Render(fmt.Sprintf("%.4f µm³", float64(m.sphere.Volume)))))
		b.WriteString(fmt.Sprintf("  %s %s\n",
			viz.LabelStyle.Render("surface-to-volume (S/V)"),
			viz.ValueStyle.Render(fmt.Sprintf("%.4f 1/µm", float64(m.sphere.SurfaceToVolume())))))
		b.WriteString(fmt.Sprintf("  %s %s\n\n",
			viz.LabelStyle.Render("T2"),
			viz.ValueStyle.Render(fmt.Sprintf("%.4f ms", float64(m.t2)))))

		plotWidth := m.width - 16
		if plotWidth > 70 {
			plotWidth = 70
		}
		if plotWidth > 10 {
			b.WriteString(viz.CrossPlot(m.curves, plotWidth, 10))
		}
	}

	b.WriteString("\n  " + sub.Render("j/k select  h/l adjust  enter edit  q quit") + "\n")
	return b.String()
}

func clamp(v float64, p param) float64 {
	if v < p.min {
		return p.min
	}
	if v > p.max {
		return p.max
	}
	return v
}

// Run starts the explorer in the alternate screen.
func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(NewApp(cfg), tea.WithAltScreen()).Run()
	return err
}
