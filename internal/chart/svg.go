// Package chart renders category sector geometry as a standalone SVG
// donut. Presentation only; all geometry comes from the aggregate package.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"spendlog/internal/aggregate"
)

const (
	size = 240.0
	cx   = size / 2
	cy   = size / 2

	// An arc command cannot express a full circle; a near-complete sweep
	// renders identically.
	maxSweep = 2*math.Pi - 1e-4
)

// SVG renders the donut for the given sectors. With no sectors it renders
// the "no data" placeholder ring instead of a zero-filled chart.
func SVG(sectors []aggregate.Sector, total decimal.Decimal) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n", size, size, size, size)

	if len(sectors) == 0 {
		mid := (aggregate.OuterRadius + aggregate.InnerRadius) / 2
		width := aggregate.OuterRadius - aggregate.InnerRadius
		fmt.Fprintf(&b, `  <circle cx="%.1f" cy="%.1f" r="%.1f" stroke="#EEF1FF" stroke-width="%.1f" fill="none"/>`+"\n", cx, cy, mid, width)
		fmt.Fprintf(&b, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-size="12" fill="#6B7280">No data to display</text>`+"\n", cx, cy+4)
		b.WriteString("</svg>\n")
		return b.String()
	}

	for _, s := range sectors {
		fmt.Fprintf(&b, `  <path d="%s" fill="%s"/>`+"\n", wedgePath(s), s.Color)
	}
	fmt.Fprintf(&b, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-size="12" fill="#6B7280">TOTAL</text>`+"\n", cx, cy-6)
	fmt.Fprintf(&b, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-size="18" font-weight="700" fill="#111827">$%s</text>`+"\n", cx, cy+14, total.StringFixed(2))
	b.WriteString("</svg>\n")
	return b.String()
}

// wedgePath builds an annular wedge: outer arc clockwise, straight edge
// inward, inner arc back, close.
func wedgePath(s aggregate.Sector) string {
	sweep := s.Sweep
	if sweep > maxSweep {
		sweep = maxSweep
	}
	start := s.Start
	end := s.Start + sweep

	ox1, oy1 := polar(s.Outer, start)
	ox2, oy2 := polar(s.Outer, end)
	ix1, iy1 := polar(s.Inner, end)
	ix2, iy2 := polar(s.Inner, start)

	largeArc := 0
	if sweep > math.Pi {
		largeArc = 1
	}

	return fmt.Sprintf("M %.2f %.2f A %.1f %.1f 0 %d 1 %.2f %.2f L %.2f %.2f A %.1f %.1f 0 %d 0 %.2f %.2f Z",
		ox1, oy1, s.Outer, s.Outer, largeArc, ox2, oy2,
		ix1, iy1, s.Inner, s.Inner, largeArc, ix2, iy2)
}

func polar(radius, angle float64) (float64, float64) {
	return cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)
}
