package chart

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"spendlog/internal/aggregate"
	"spendlog/internal/core"
)

func TestSVGRendersOnePathPerSector(t *testing.T) {
	d := core.NewDate(2025, 10, 1)
	groups := aggregate.Categories([]core.Expense{
		{Title: "a", Amount: decimal.NewFromInt(30), Category: "Bills", Date: d},
		{Title: "b", Amount: decimal.NewFromInt(10), Category: "Food", Date: d},
	})
	svg := SVG(aggregate.Sectors(groups), aggregate.GrandTotal(groups))

	if got := strings.Count(svg, "<path "); got != 2 {
		t.Errorf("got %d paths, want 2:\n%s", got, svg)
	}
	if !strings.Contains(svg, "$40.00") {
		t.Errorf("total label missing:\n%s", svg)
	}
	if !strings.HasPrefix(svg, "<svg ") || !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("output should be a standalone SVG document")
	}
}

func TestSVGSingleCategoryFullRing(t *testing.T) {
	groups := []aggregate.CategorySum{{Category: "Food", Sum: decimal.NewFromInt(10)}}
	svg := SVG(aggregate.Sectors(groups), decimal.NewFromInt(10))

	// A single full-circle sector must still produce a drawable arc.
	if !strings.Contains(svg, "<path ") {
		t.Errorf("full ring should render a path:\n%s", svg)
	}
	if strings.Contains(svg, "NaN") {
		t.Errorf("geometry must not degenerate:\n%s", svg)
	}
}

func TestSVGNoData(t *testing.T) {
	svg := SVG(nil, decimal.Zero)

	if !strings.Contains(svg, "No data to display") {
		t.Errorf("no-data placeholder missing:\n%s", svg)
	}
	if strings.Contains(svg, "<path ") {
		t.Errorf("no-data output must not contain sectors:\n%s", svg)
	}
}
