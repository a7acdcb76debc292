package viz

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/galpot/internal/curves"
	"github.com/san-kum/galpot/internal/potential"
)

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// paramRef addresses one adjustable parameter of one component.
type paramRef struct {
	comp int
	name string
}

// Live is a bubbletea model for interactively exploring the rotation
// curve of a composition while adjusting component parameters.
type Live struct {
	pots     []potential.Potential
	names    []string
	params   []paramRef
	selected int
	escape   bool

	rmin, rmax float64
	samples    int

	width  int
	height int
	errMsg string
}

// NewLive builds the explorer for a named composition.
func NewLive(pots []potential.Potential, names []string, rmin, rmax float64, samples int) Live {
	params := make([]paramRef, 0)
	for i, p := range pots {
		c, ok := p.(potential.Configurable)
		if !ok {
			continue
		}
		keys := make([]string, 0)
		for k := range c.GetParams() {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			params = append(params, paramRef{comp: i, name: k})
		}
	}

	return Live{
		pots:    pots,
		names:   names,
		params:  params,
		rmin:    rmin,
		rmax:    rmax,
		samples: samples,
		width:   80,
		height:  24,
	}
}

func (m Live) Init() tea.Cmd { return nil }

func (m Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Live) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.params)-1 {
			m.selected++
		}
	case "left", "h":
		m.adjust(1.0 / 1.1)
	case "right", "l":
		m.adjust(1.1)
	case "e":
		m.escape = !m.escape
	case "n":
		if err := potential.NormalizeFull(m.pots[0]); err != nil {
			m.errMsg = err.Error()
		}
	}
	return m, nil
}

func (m *Live) adjust(factor float64) {
	if len(m.params) == 0 {
		return
	}
	ref := m.params[m.selected]
	c := m.pots[ref.comp].(potential.Configurable)
	cur := c.GetParams()[ref.name]
	if cur == 0 {
		cur = 0.1
	}
	if err := c.SetParam(ref.name, cur*factor); err != nil {
		m.errMsg = err.Error()
	}
}

func (m Live) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("galpot live — " + strings.Join(m.names, " + ")))
	b.WriteString("\n")

	kind := "rotation curve"
	sampler := curves.Rotation
	if m.escape {
		kind = "escape curve"
		sampler = curves.Escape
	}

	pots := make([]potential.Potential, len(m.pots))
	copy(pots, m.pots)
	samples, err := sampler(pots, m.rmin, m.rmax, m.samples)
	if err != nil {
		b.WriteString(errStyle.Render(err.Error()))
		b.WriteString("\n")
	} else {
		gw := m.width - 16
		if gw < 20 {
			gw = 20
		}
		gh := m.height - len(m.params) - 8
		if gh < 6 {
			gh = 6
		}
		b.WriteString(RenderCurve(kind, samples, gw, gh))
	}

	for i, ref := range m.params {
		c := m.pots[ref.comp].(potential.Configurable)
		label := fmt.Sprintf("%s.%s", m.names[ref.comp], ref.name)
		line := labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf("%.4f", c.GetParams()[ref.name]))
		if i == m.selected {
			line = activeParamStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ select param · ←/→ adjust · e rotation/escape · n normalize · q quit"))
	return b.String()
}
