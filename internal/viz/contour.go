package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/galpot/internal/grid"
)

// shade runs from low to high sampled value.
var shade = []rune(" .:-=+*#%@")

// RenderGrid draws a sampled (R,z) grid as an ASCII shade map, R along
// the horizontal axis, z vertical with positive z on top.
func RenderGrid(title string, g *grid.Grid) string {
	if len(g.Rs) == 0 || len(g.Zs) == 0 {
		return ""
	}

	min, max := g.Bounds()
	span := max - min
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	for j := len(g.Zs) - 1; j >= 0; j-- {
		b.WriteString(legendStyle.Render(fmt.Sprintf("%6.2f ", g.Zs[j])))
		for i := range g.Rs {
			v := g.Values[i][j]
			idx := int((v - min) / span * float64(len(shade)-1))
			if idx < 0 {
				idx = 0
			}
			if idx >= len(shade) {
				idx = len(shade) - 1
			}
			b.WriteRune(shade[idx])
		}
		b.WriteString("\n")
	}

	b.WriteString(legendStyle.Render(fmt.Sprintf("%6s ", "z/R")))
	b.WriteString(captionDim.Render(fmt.Sprintf("R = %.2f .. %.2f, range [%.3g, %.3g]",
		g.Rs[0], g.Rs[len(g.Rs)-1], min, max)))
	b.WriteString("\n")
	return b.String()
}
