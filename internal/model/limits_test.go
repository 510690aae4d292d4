package model

import "testing"

func TestLimitsComplete(t *testing.T) {
	if err := CheckLimits(); err != nil {
		t.Fatalf("limits table incomplete: %v", err)
	}
}

func TestLimitsFor(t *testing.T) {
	min, max, ok := LimitsFor(17)
	if !ok {
		t.Fatal("expected R17 to be in range")
	}
	if min.Width != 185 || min.Profile != 35 {
		t.Errorf("unexpected R17 minimums: %+v", min)
	}
	if max.Width != 335 || max.Profile != 75 {
		t.Errorf("unexpected R17 maximums: %+v", max)
	}

	for _, r := range []int{MinR - 1, MaxR + 1, 0, -5} {
		if _, _, ok := LimitsFor(r); ok {
			t.Errorf("expected R%d to be out of range", r)
		}
	}
}

func TestLimitRows(t *testing.T) {
	rows := LimitRows()
	if len(rows) != RimCount {
		t.Fatalf("expected %d rows, got %d", RimCount, len(rows))
	}
	for i, row := range rows {
		if row.Rim != MinR+i {
			t.Errorf("row %d: expected rim %d, got %d", i, MinR+i, row.Rim)
		}
		if row.Min.Width > row.Max.Width || row.Min.Profile > row.Max.Profile {
			t.Errorf("R%d: minimum exceeds maximum", row.Rim)
		}
	}
	if rows[0].Min.Width != 135 || rows[len(rows)-1].Max.Profile != 35 {
		t.Error("rows out of order")
	}
}
