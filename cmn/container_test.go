// Package cmn provides common types shared by the RSpace ELN and Inventory API clients.
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package cmn

import (
	"errors"
	"math"
	"testing"
)

func gridSnapshot(rows, cols int, used ...GridLocation) *Container {
	ci := ContainerInfo{
		ItemInfo: ItemInfo{ID: 1, GlobalID: "IC1"},
		CType:    CTypeGrid,
		GridLayout: &GridLayout{
			RowsNumber:    rows,
			ColumnsNumber: cols,
		},
	}
	for _, loc := range used {
		ci.Locations = append(ci.Locations, ContentLocation{CoordX: loc.X, CoordY: loc.Y})
	}
	c, err := NewContainer(ci)
	if err != nil {
		panic(err)
	}
	return c
}

func TestGridContainerQueries(t *testing.T) {
	c := gridSnapshot(3, 2, GridLocation{X: 2, Y: 1})
	if !c.IsGrid() {
		t.Fatal("expected grid kind")
	}
	if got := c.Capacity(); got != 6 {
		t.Errorf("capacity: got %d, want 6", got)
	}
	if got := c.InUse(); got != 1 {
		t.Errorf("in use: got %d, want 1", got)
	}
	if got := c.Free(); got != 5 {
		t.Errorf("free: got %d, want 5", got)
	}
	if got := c.PercentFull(); math.Abs(got-100.0/6) > 1e-9 {
		t.Errorf("percent full: got %v", got)
	}
	used := c.UsedLocations()
	if len(used) != 1 || used[0] != (GridLocation{X: 2, Y: 1}) {
		t.Errorf("used locations: got %v", used)
	}
}

func TestFreeLocationsOrder(t *testing.T) {
	c := gridSnapshot(3, 2, GridLocation{X: 2, Y: 1})
	want := []GridLocation{
		{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3},
		{X: 2, Y: 2}, {X: 2, Y: 3},
	}
	got := c.FreeLocations()
	if len(got) != len(want) {
		t.Fatalf("got %d free cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("free[%d]: got (%d,%d), want (%d,%d)",
				i, got[i].X, got[i].Y, want[i].X, want[i].Y)
		}
	}
}

// every cell appears exactly once across used and free
func TestLocationPartition(t *testing.T) {
	c := gridSnapshot(4, 5,
		GridLocation{X: 1, Y: 1}, GridLocation{X: 5, Y: 4}, GridLocation{X: 3, Y: 2})
	seen := make(map[GridLocation]int)
	for _, loc := range c.UsedLocations() {
		seen[loc]++
	}
	for _, loc := range c.FreeLocations() {
		seen[loc]++
	}
	if len(seen) != c.Capacity() {
		t.Fatalf("covered %d cells, want %d", len(seen), c.Capacity())
	}
	for loc, n := range seen {
		if n != 1 {
			t.Errorf("cell (%d,%d) covered %d times", loc.X, loc.Y, n)
		}
	}
}

func TestContainerDispatch(t *testing.T) {
	list, err := ParseContainer([]byte(`{"id": 5, "globalId": "IC5", "cType": "LIST", "canStoreContainers": true}`))
	if err != nil {
		t.Fatalf("ParseContainer(LIST) failed: %v", err)
	}
	if !list.IsList() || list.IsGrid() || list.IsWorkbench() {
		t.Error("wrong kind for LIST")
	}
	if got := list.Capacity(); got != UnboundedCapacity {
		t.Errorf("list capacity: got %d, want unbounded", got)
	}
	if !list.AcceptsContainers() {
		t.Error("expected canStoreContainers to be surfaced")
	}

	wb, err := ParseContainer([]byte(`{"id": 6, "cType": "WORKBENCH"}`))
	if err != nil {
		t.Fatalf("ParseContainer(WORKBENCH) failed: %v", err)
	}
	if !wb.IsWorkbench() {
		t.Error("wrong kind for WORKBENCH")
	}

	for _, body := range []string{`{"id": 7}`, `{"id": 7, "cType": "BOX"}`} {
		_, err := ParseContainer([]byte(body))
		var unknown *ErrUnknownContainerType
		if !errors.As(err, &unknown) {
			t.Errorf("expected ErrUnknownContainerType for %s, got %v", body, err)
		}
	}
}
