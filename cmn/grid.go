// Package cmn provides common types shared by the RSpace ELN and Inventory API clients.
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package cmn

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FillingStrategy is the order in which a list of items is assigned
// coordinates when auto-placed into a grid container.
type FillingStrategy int

const (
	FillByRow FillingStrategy = iota + 1
	FillByColumn
	FillExact
)

func (fs FillingStrategy) String() string {
	switch fs {
	case FillByRow:
		return "BY_ROW"
	case FillByColumn:
		return "BY_COLUMN"
	case FillExact:
		return "EXACT"
	}
	return "UNKNOWN"
}

// GridLocation is a 1-based cell coordinate of a grid container, where X is
// the column number and Y is the row number.
type GridLocation struct {
	X int
	Y int
}

func NewGridLocation(x, y int) (GridLocation, error) {
	if x < 1 || y < 1 {
		return GridLocation{}, NewErrInvalidCoordinate("grid location coordinates must be >= 1, got (%d,%d)", x, y)
	}
	return GridLocation{X: x, Y: y}, nil
}

// StartIndex computes the 0-based linear index of the starting cell
// (colStart, rowStart) in a totalCols x totalRows grid under the given fill
// order. Both starting indices are 1-based and must lie within the declared
// dimensions.
func StartIndex(colStart, rowStart, totalCols, totalRows int, fs FillingStrategy) (int, error) {
	if colStart < 1 || rowStart < 1 {
		return 0, NewErrInvalidCoordinate("column and row starting position must be >= 1")
	}
	if colStart > totalCols || rowStart > totalRows {
		return 0, NewErrInvalidCoordinate("starting position (%d,%d) must fit in grid: %d rows x %d columns",
			colStart, rowStart, totalRows, totalCols)
	}
	switch fs {
	case FillByColumn:
		return (colStart-1)*totalRows + rowStart - 1, nil
	default: // row-major
		return (rowStart-1)*totalCols + colStart - 1, nil
	}
}

// CoordinateAt is the inverse of StartIndex: it maps a 0-based linear index
// back to a 1-based (x,y) cell under the given fill order. No bounds check
// against the total cell count is performed; an index past the last cell
// yields coordinates beyond the nominal grid, and the server decides whether
// such a cell exists.
func CoordinateAt(index, totalCols, totalRows int, fs FillingStrategy) GridLocation {
	if fs == FillByColumn {
		return GridLocation{X: index/totalRows + 1, Y: index%totalRows + 1}
	}
	return GridLocation{X: index%totalCols + 1, Y: index/totalCols + 1}
}

// Placement describes how a list of movable items is to be arranged in a
// grid container. Construct with NewByRow, NewByColumn or NewByLocation;
// a constructed placement is valid, immutable, and consumed once to produce
// a coordinate assignment list.
type Placement struct {
	strategy  FillingStrategy
	colIndex  int
	rowIndex  int
	totalCols int
	totalRows int
	items     []GlobalID
	locations []GridLocation
}

// Assignment pairs one item with its computed grid cell.
type Assignment struct {
	Item GlobalID
	Loc  GridLocation
}

// NewByRow fills rows in turn from the given 1-based starting location in a
// totalCols x totalRows grid.
func NewByRow(colIndex, rowIndex, totalCols, totalRows int, itemsToMove ...any) (*Placement, error) {
	return newAutoFit(FillByRow, colIndex, rowIndex, totalCols, totalRows, itemsToMove)
}

// NewByColumn fills columns in turn from the given 1-based starting location
// in a totalCols x totalRows grid.
func NewByColumn(colIndex, rowIndex, totalCols, totalRows int, itemsToMove ...any) (*Placement, error) {
	return newAutoFit(FillByColumn, colIndex, rowIndex, totalCols, totalRows, itemsToMove)
}

// NewByLocation places items at explicit cells; locations pair 1:1 with items.
func NewByLocation(locations []GridLocation, itemsToMove ...any) (*Placement, error) {
	if len(locations) != len(itemsToMove) {
		return nil, NewErrInvalidCoordinate(
			"locations list (length %d) is not the same length as items list (%d)",
			len(locations), len(itemsToMove))
	}
	items, err := movableItems(itemsToMove)
	if err != nil {
		return nil, err
	}
	return &Placement{strategy: FillExact, items: items, locations: locations}, nil
}

func newAutoFit(fs FillingStrategy, colIndex, rowIndex, totalCols, totalRows int, itemsToMove []any) (*Placement, error) {
	err := validation.Errors{
		"items":        validation.Validate(itemsToMove, validation.Required.Error("provide at least one item to move")),
		"columnIndex":  validation.Validate(colIndex, validation.Min(1)),
		"rowIndex":     validation.Validate(rowIndex, validation.Min(1)),
		"totalColumns": validation.Validate(totalCols, validation.Min(1)),
		"totalRows":    validation.Validate(totalRows, validation.Min(1)),
	}.Filter()
	if err != nil {
		return nil, err
	}
	if colIndex > totalCols || rowIndex > totalRows {
		return nil, NewErrInvalidCoordinate(
			"column and row indexes (%d,%d) must fit in dimensions (%d,%d)",
			colIndex, rowIndex, totalCols, totalRows)
	}
	items, err := movableItems(itemsToMove)
	if err != nil {
		return nil, err
	}
	return &Placement{
		strategy:  fs,
		colIndex:  colIndex,
		rowIndex:  rowIndex,
		totalCols: totalCols,
		totalRows: totalRows,
		items:     items,
	}, nil
}

func movableItems(itemsToMove []any) ([]GlobalID, error) {
	if len(itemsToMove) == 0 {
		return nil, NewErrNotMovable("<empty item list>")
	}
	items := make([]GlobalID, 0, len(itemsToMove))
	for _, item := range itemsToMove {
		gid, err := ParseGlobalID(item)
		if err != nil {
			return nil, err
		}
		if !gid.IsMovable(true /*strict*/) {
			return nil, NewErrNotMovable(gid.String())
		}
		items = append(items, gid)
	}
	return items, nil
}

func (p *Placement) Strategy() FillingStrategy { return p.strategy }

func (p *Placement) Items() []GlobalID { return p.items }

// Resolve produces the ordered (item, cell) assignment list. Exact
// placements zip items with the supplied locations verbatim; auto-fit
// placements walk the grid linearly from the starting cell in fill order.
// Pure computation - no wraparound or overflow protection past the last
// cell (the server owns cell existence).
func (p *Placement) Resolve() []Assignment {
	out := make([]Assignment, 0, len(p.items))
	if p.strategy == FillExact {
		for i, item := range p.items {
			out = append(out, Assignment{Item: item, Loc: p.locations[i]})
		}
		return out
	}
	// cannot fail: the starting position was validated at construction
	idx, _ := StartIndex(p.colIndex, p.rowIndex, p.totalCols, p.totalRows, p.strategy)
	for i, item := range p.items {
		out = append(out, Assignment{
			Item: item,
			Loc:  CoordinateAt(idx+i, p.totalCols, p.totalRows, p.strategy),
		})
	}
	return out
}
