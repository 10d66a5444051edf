package aggregate

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"spendlog/internal/core"
)

func TestCategories(t *testing.T) {
	d := core.NewDate(2025, 10, 1)
	items := []core.Expense{
		rec("10", "Food", d),
		rec("5", "Food", d),
		rec("20", "Bills", d),
	}

	groups := Categories(items)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Category != "Bills" || !groups[0].Sum.Equal(decimal.NewFromInt(20)) {
		t.Errorf("groups[0] = %s %s, want Bills 20", groups[0].Category, groups[0].Sum)
	}
	if groups[1].Category != "Food" || !groups[1].Sum.Equal(decimal.NewFromInt(15)) {
		t.Errorf("groups[1] = %s %s, want Food 15", groups[1].Category, groups[1].Sum)
	}
	if !GrandTotal(groups).Equal(decimal.NewFromInt(35)) {
		t.Errorf("GrandTotal = %s, want 35", GrandTotal(groups))
	}
}

func TestCategoriesBlankFallsBack(t *testing.T) {
	d := core.NewDate(2025, 10, 1)
	groups := Categories([]core.Expense{rec("3", "  ", d), rec("2", "", d)})

	if len(groups) != 1 || groups[0].Category != FallbackCategory {
		t.Fatalf("groups = %+v, want a single %q group", groups, FallbackCategory)
	}
	if !groups[0].Sum.Equal(decimal.NewFromInt(5)) {
		t.Errorf("Sum = %s, want 5", groups[0].Sum)
	}
}

func TestCategoriesEmptyState(t *testing.T) {
	d := core.NewDate(2025, 10, 1)

	tests := []struct {
		name  string
		items []core.Expense
	}{
		{name: "no records", items: nil},
		{name: "only zero amounts", items: []core.Expense{rec("0", "X", d)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if groups := Categories(tt.items); len(groups) != 0 {
				t.Errorf("got %d groups, want the explicit no-data condition", len(groups))
			}
		})
	}
}

func TestCategoriesTieOrderIsStable(t *testing.T) {
	d := core.NewDate(2025, 10, 1)
	groups := Categories([]core.Expense{
		rec("10", "Zed", d),
		rec("10", "Alpha", d),
	})

	if len(groups) != 2 || groups[0].Category != "Zed" || groups[1].Category != "Alpha" {
		t.Errorf("ties must keep first-encountered order, got %+v", groups)
	}
}

func TestSectors(t *testing.T) {
	d := core.NewDate(2025, 10, 1)
	groups := Categories([]core.Expense{
		rec("30", "Bills", d),
		rec("10", "Food", d),
	})

	sectors := Sectors(groups)
	if len(sectors) != 2 {
		t.Fatalf("got %d sectors, want 2", len(sectors))
	}

	// Layout starts at 12 o'clock and covers the full turn.
	if math.Abs(sectors[0].Start-(-math.Pi/2)) > 1e-9 {
		t.Errorf("first sector starts at %f, want -pi/2", sectors[0].Start)
	}
	if math.Abs(sectors[1].Start-(sectors[0].Start+sectors[0].Sweep)) > 1e-9 {
		t.Error("sectors must be laid out consecutively")
	}
	totalSweep := sectors[0].Sweep + sectors[1].Sweep
	if math.Abs(totalSweep-2*math.Pi) > 1e-9 {
		t.Errorf("sweeps sum to %f, want 2*pi", totalSweep)
	}

	// Shares are proportional to sums.
	if math.Abs(sectors[0].Share-0.75) > 1e-9 {
		t.Errorf("Share = %f, want 0.75", sectors[0].Share)
	}

	// Annular wedge: ring, not pie.
	for _, s := range sectors {
		if s.Inner <= 0 || s.Outer <= s.Inner {
			t.Errorf("sector %s has radii inner=%f outer=%f", s.Category, s.Inner, s.Outer)
		}
		if s.Color == "" {
			t.Errorf("sector %s has no color", s.Category)
		}
	}
}

func TestSectorsColorByPosition(t *testing.T) {
	d := core.NewDate(2025, 10, 1)
	var items []core.Expense
	// More groups than palette entries forces the modulo wrap.
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
	for i, n := range names {
		items = append(items, rec(decimal.NewFromInt(int64(100-i)).String(), n, d))
	}

	sectors := Sectors(Categories(items))
	if len(sectors) != len(names) {
		t.Fatalf("got %d sectors, want %d", len(sectors), len(names))
	}
	if sectors[len(palette)].Color != sectors[0].Color {
		t.Error("colors should repeat modulo the palette length")
	}
}

func TestSectorsNoData(t *testing.T) {
	if Sectors(nil) != nil {
		t.Error("no groups should produce no sectors")
	}
}
