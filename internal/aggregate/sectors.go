package aggregate

import (
	"math"

	"github.com/shopspring/decimal"
)

// Donut ring dimensions shared with the renderer.
const (
	OuterRadius = 100.0
	InnerRadius = 64.0

	// startAngle is the 12 o'clock reference; sectors are laid out
	// clockwise from here.
	startAngle = -math.Pi / 2
)

// palette is indexed by position in sorted order, modulo its length.
// Color assignment is stable only while the sort order is stable.
var palette = []string{
	"#0A7AFF",
	"#06B6D4",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#8B5CF6",
	"#14B8A6",
	"#F472B6",
}

// Sector is one annular wedge of the category donut.
type Sector struct {
	Category string
	Sum      decimal.Decimal
	Share    float64 // fraction of the grand total, 0..1
	Start    float64 // radians
	Sweep    float64 // radians
	Inner    float64
	Outer    float64
	Color    string
}

// Sectors lays out one wedge per category group, consecutively from 12
// o'clock, each sweep proportional to its share of the grand total.
// Returns nil when the breakdown is empty or sums to zero.
func Sectors(groups []CategorySum) []Sector {
	total := GrandTotal(groups)
	if len(groups) == 0 || total.Sign() <= 0 {
		return nil
	}

	totalF, _ := total.Float64()
	sectors := make([]Sector, len(groups))
	current := startAngle
	for i, g := range groups {
		sumF, _ := g.Sum.Float64()
		share := sumF / totalF
		sweep := share * 2 * math.Pi
		sectors[i] = Sector{
			Category: g.Category,
			Sum:      g.Sum,
			Share:    share,
			Start:    current,
			Sweep:    sweep,
			Inner:    InnerRadius,
			Outer:    OuterRadius,
			Color:    palette[i%len(palette)],
		}
		current += sweep
	}
	return sectors
}
