// Package viz renders curves and grids for the terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/galpot/internal/curves"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	captionDim  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// RenderCurve plots a velocity curve as an ASCII graph.
func RenderCurve(title string, samples []curves.Sample, width, height int) string {
	if len(samples) == 0 {
		return ""
	}

	graph := asciigraph.Plot(curves.Velocities(samples),
		asciigraph.Width(width),
		asciigraph.Height(height),
	)

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(graphStyle.Render(graph))
	b.WriteString("\n")
	b.WriteString(captionDim.Render(fmt.Sprintf("R = %.2f .. %.2f (%d samples)",
		samples[0].R, samples[len(samples)-1].R, len(samples))))
	b.WriteString("\n")
	return b.String()
}
