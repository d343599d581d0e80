// Package cmn provides common types shared by the RSpace ELN and Inventory API clients.
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package cmn

import (
	"math"
)

// UnboundedCapacity is the capacity sentinel for containers without a fixed
// layout (list containers and workbenches).
const UnboundedCapacity = math.MaxInt

// Container kinds, dispatched on the server's `cType` discriminant.
type ContainerKind int

const (
	ListKind ContainerKind = iota + 1
	GridKind
	WorkbenchKind
)

const (
	CTypeList      = "LIST"
	CTypeGrid      = "GRID"
	CTypeWorkbench = "WORKBENCH"
)

type (
	// GridLayout is the fixed row x column layout of a grid container.
	GridLayout struct {
		RowsNumber    int `json:"rowsNumber"`
		ColumnsNumber int `json:"columnsNumber"`
	}

	// ContentLocation is one occupied cell reported by the server.
	ContentLocation struct {
		ID     int64 `json:"id,omitempty"`
		CoordX int   `json:"coordX"`
		CoordY int   `json:"coordY"`
	}

	// ContainerInfo is the raw server-reported container state.
	ContainerInfo struct {
		ItemInfo
		CType              string            `json:"cType"`
		CanStoreContainers bool              `json:"canStoreContainers"`
		CanStoreSubsamples bool              `json:"canStoreSubsamples"`
		GridLayout         *GridLayout       `json:"gridLayout,omitempty"`
		Locations          []ContentLocation `json:"locations,omitempty"`
	}

	// Container is an immutable snapshot of one container, tagged with its
	// kind. It becomes stale the instant the server state changes; occupancy
	// and capacity queries are advisory and the server stays authoritative.
	Container struct {
		ContainerInfo
		kind ContainerKind
	}
)

// ParseContainer dispatches raw container JSON on its `cType` discriminant.
func ParseContainer(data []byte) (*Container, error) {
	var ci ContainerInfo
	if err := JSON.Unmarshal(data, &ci); err != nil {
		return nil, err
	}
	return NewContainer(ci)
}

// NewContainer wraps an already-decoded snapshot, validating the discriminant.
func NewContainer(ci ContainerInfo) (*Container, error) {
	var kind ContainerKind
	switch ci.CType {
	case CTypeList:
		kind = ListKind
	case CTypeGrid:
		kind = GridKind
	case CTypeWorkbench:
		kind = WorkbenchKind
	default:
		return nil, NewErrUnknownContainerType(ci.CType)
	}
	return &Container{ContainerInfo: ci, kind: kind}, nil
}

func (c *Container) Kind() ContainerKind { return c.kind }
func (c *Container) IsList() bool        { return c.kind == ListKind }
func (c *Container) IsGrid() bool        { return c.kind == GridKind }
func (c *Container) IsWorkbench() bool   { return c.kind == WorkbenchKind }

func (c *Container) AcceptsContainers() bool { return c.CanStoreContainers }
func (c *Container) AcceptsSubSamples() bool { return c.CanStoreSubsamples }

func (c *Container) RowCount() int {
	if c.GridLayout == nil {
		return 0
	}
	return c.GridLayout.RowsNumber
}

func (c *Container) ColumnCount() int {
	if c.GridLayout == nil {
		return 0
	}
	return c.GridLayout.ColumnsNumber
}

// Capacity is rows x columns for a grid; list containers and workbenches
// are unbounded.
func (c *Container) Capacity() int {
	if c.kind != GridKind {
		return UnboundedCapacity
	}
	return c.RowCount() * c.ColumnCount()
}

// InUse is the number of cells holding content.
func (c *Container) InUse() int { return len(c.Locations) }

// Free is the number of cells available to hold new content.
func (c *Container) Free() int {
	if c.kind != GridKind {
		return UnboundedCapacity
	}
	return c.Capacity() - c.InUse()
}

func (c *Container) PercentFull() float64 {
	capacity := c.Capacity()
	if capacity == 0 || c.kind != GridKind {
		return 0
	}
	return float64(c.InUse()) / float64(capacity) * 100
}

// UsedLocations returns the occupied cells from the snapshot, 1-based,
// in server-reported order.
func (c *Container) UsedLocations() []GridLocation {
	out := make([]GridLocation, 0, len(c.Locations))
	for _, loc := range c.Locations {
		out = append(out, GridLocation{X: loc.CoordX, Y: loc.CoordY})
	}
	return out
}

// FreeLocations returns the empty cells: the full grid minus UsedLocations.
// Enumeration order is deterministic and column-major (outer loop columns,
// inner loop rows).
func (c *Container) FreeLocations() []GridLocation {
	used := make(map[GridLocation]struct{}, len(c.Locations))
	for _, loc := range c.Locations {
		used[GridLocation{X: loc.CoordX, Y: loc.CoordY}] = struct{}{}
	}
	var out []GridLocation
	for col := 1; col <= c.ColumnCount(); col++ {
		for row := 1; row <= c.RowCount(); row++ {
			cell := GridLocation{X: col, Y: row}
			if _, ok := used[cell]; !ok {
				out = append(out, cell)
			}
		}
	}
	return out
}
