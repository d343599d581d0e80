// Package cmn provides common types shared by the RSpace ELN and Inventory API clients.
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package cmn

import (
	"errors"
	"testing"
)

func TestStartIndex(t *testing.T) {
	tests := []struct {
		name                           string
		col, row, totalCols, totalRows int
		fs                             FillingStrategy
		want                           int
	}{
		{"origin row-major", 1, 1, 5, 4, FillByRow, 0},
		{"origin column-major", 1, 1, 5, 4, FillByColumn, 0},
		{"mid row-major", 3, 2, 5, 4, FillByRow, 7},
		{"mid column-major", 3, 2, 5, 4, FillByColumn, 9},
		{"last cell row-major", 5, 4, 5, 4, FillByRow, 19},
		{"last cell column-major", 5, 4, 5, 4, FillByColumn, 19},
		{"single cell", 1, 1, 1, 1, FillByRow, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := StartIndex(tc.col, tc.row, tc.totalCols, tc.totalRows, tc.fs)
			if err != nil {
				t.Fatalf("StartIndex failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestStartIndexInvalid(t *testing.T) {
	tests := []struct {
		name                           string
		col, row, totalCols, totalRows int
	}{
		{"zero column", 0, 1, 5, 4},
		{"zero row", 1, 0, 5, 4},
		{"negative column", -1, 1, 5, 4},
		{"column exceeds total", 6, 1, 5, 4},
		{"row exceeds total", 1, 5, 5, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, fs := range []FillingStrategy{FillByRow, FillByColumn} {
				_, err := StartIndex(tc.col, tc.row, tc.totalCols, tc.totalRows, fs)
				var coordErr *ErrInvalidCoordinate
				if !errors.As(err, &coordErr) {
					t.Errorf("%s: expected ErrInvalidCoordinate, got %v", fs, err)
				}
			}
		})
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	const totalCols, totalRows = 5, 4
	for _, fs := range []FillingStrategy{FillByRow, FillByColumn} {
		for col := 1; col <= totalCols; col++ {
			for row := 1; row <= totalRows; row++ {
				idx, err := StartIndex(col, row, totalCols, totalRows, fs)
				if err != nil {
					t.Fatalf("StartIndex(%d,%d) failed: %v", col, row, err)
				}
				loc := CoordinateAt(idx, totalCols, totalRows, fs)
				if loc.X != col || loc.Y != row {
					t.Errorf("%s: round trip of (%d,%d) via %d gave (%d,%d)",
						fs, col, row, idx, loc.X, loc.Y)
				}
			}
		}
	}
}

func TestNewGridLocation(t *testing.T) {
	if _, err := NewGridLocation(0, 1); err == nil {
		t.Error("expected x=0 to fail")
	}
	if _, err := NewGridLocation(1, 0); err == nil {
		t.Error("expected y=0 to fail")
	}
	loc, err := NewGridLocation(3, 7)
	if err != nil {
		t.Fatal(err)
	}
	if loc.X != 3 || loc.Y != 7 {
		t.Errorf("got (%d,%d)", loc.X, loc.Y)
	}
}

func TestPlacementValidation(t *testing.T) {
	if _, err := NewByRow(1, 1, 2, 2); err == nil {
		t.Error("expected empty item list to fail")
	}
	if _, err := NewByRow(0, 1, 2, 2, "SS1"); err == nil {
		t.Error("expected zero column index to fail")
	}
	if _, err := NewByRow(3, 1, 2, 2, "SS1"); err == nil {
		t.Error("expected out-of-bounds start to fail")
	}
	if _, err := NewByRow(1, 1, 2, 2, "SA5"); err == nil {
		t.Error("expected non-movable sample to fail")
	} else {
		var notMovable *ErrNotMovable
		if !errors.As(err, &notMovable) {
			t.Errorf("expected ErrNotMovable, got %v", err)
		}
	}
	// bare numeric ids carry no type and are not movable in strict mode
	if _, err := NewByRow(1, 1, 2, 2, 17); err == nil {
		t.Error("expected untyped id to fail")
	}
	if _, err := NewByLocation([]GridLocation{{X: 1, Y: 1}}, "SS1", "SS2"); err == nil {
		t.Error("expected mismatched location count to fail")
	}
}

func TestResolveByRow(t *testing.T) {
	p, err := NewByRow(1, 1, 2, 2, "SS1", "SS2", "SS3")
	if err != nil {
		t.Fatal(err)
	}
	got := p.Resolve()
	want := []GridLocation{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}}
	checkAssignments(t, got, want)
}

func TestResolveByColumn(t *testing.T) {
	p, err := NewByColumn(1, 1, 2, 2, "SS1", "SS2", "SS3")
	if err != nil {
		t.Fatal(err)
	}
	got := p.Resolve()
	want := []GridLocation{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1}}
	checkAssignments(t, got, want)
}

func TestResolveFromOffset(t *testing.T) {
	p, err := NewByRow(3, 2, 5, 4, "SS1", "SS2", "SS3")
	if err != nil {
		t.Fatal(err)
	}
	got := p.Resolve()
	want := []GridLocation{{X: 3, Y: 2}, {X: 4, Y: 2}, {X: 5, Y: 2}}
	checkAssignments(t, got, want)
}

func TestResolveByLocation(t *testing.T) {
	locs := []GridLocation{{X: 2, Y: 3}, {X: 1, Y: 1}}
	p, err := NewByLocation(locs, "SS1", "IC2")
	if err != nil {
		t.Fatal(err)
	}
	got := p.Resolve()
	checkAssignments(t, got, locs)
	if got[1].Item.Prefix() != PrefixContainer {
		t.Errorf("second item: got prefix %q, want IC", got[1].Item.Prefix())
	}
}

func checkAssignments(t *testing.T, got []Assignment, want []GridLocation) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d assignments, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Loc != want[i] {
			t.Errorf("assignment %d: got (%d,%d), want (%d,%d)",
				i, got[i].Loc.X, got[i].Loc.Y, want[i].X, want[i].Y)
		}
	}
}
