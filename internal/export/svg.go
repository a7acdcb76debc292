// Package export writes curves and orbits as standalone SVG files.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/galpot/internal/curves"
	"github.com/san-kum/galpot/internal/orbit"
)

type point struct{ x, y float64 }

// polyline renders points as a padded SVG path scaled to the viewport.
func polyline(points []point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].x, points[0].x
	minY, maxY := points[0].y, points[0].y
	for _, p := range points {
		if p.x < minX {
			minX = p.x
		}
		if p.x > maxX {
			maxX = p.x
		}
		if p.y < minY {
			minY = p.y
		}
		if p.y > maxY {
			maxY = p.y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x := (p.x - minX) / rangeX * float64(width)
		y := float64(height) - (p.y-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// CurveToSVG renders a velocity curve, R horizontal and v vertical.
func CurveToSVG(samples []curves.Sample, width, height int) string {
	points := make([]point, len(samples))
	for i, s := range samples {
		points[i] = point{x: s.R, y: s.V}
	}
	return polyline(points, width, height, "#00ff88")
}

// OrbitToSVG renders the meridional (R,z) trace of an orbit.
func OrbitToSVG(res *orbit.Result, width, height int) string {
	points := make([]point, len(res.States))
	for i, s := range res.States {
		points[i] = point{x: s[orbit.IdxR], y: s[orbit.IdxZ]}
	}
	return polyline(points, width, height, "#00ff88")
}

// WriteFile writes a rendered SVG document to path.
func WriteFile(path, svg string) error {
	if svg == "" {
		return fmt.Errorf("export: nothing to render")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
