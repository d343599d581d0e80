// Package apc: RSpace API control messages and constants.
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package apc

import (
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

const DfltPageSize = 20

// PageMsg is the pagination cursor for listing endpoints: 0-based page
// number, page size, and sort field/order. One cursor per stream; the page
// number increases monotonically while streaming.
type PageMsg struct {
	PageNumber int
	PageSize   int
	OrderBy    string // sort field, e.g. "lastModified", "name"
	SortOrder  string // "asc" | "desc"
}

// AddToQuery writes the cursor into q, allocating it when nil.
func (pm *PageMsg) AddToQuery(q url.Values) url.Values {
	if q == nil {
		q = make(url.Values, 3)
	}
	q.Set(QparamPageNumber, strconv.Itoa(pm.PageNumber))
	size := pm.PageSize
	if size <= 0 {
		size = DfltPageSize
	}
	q.Set(QparamPageSize, strconv.Itoa(size))
	if orderBy := strings.TrimSpace(pm.OrderBy + " " + pm.SortOrder); orderBy != "" {
		q.Set(QparamOrderBy, orderBy)
	}
	return q
}

// SearchFilter restricts Inventory listings and searches.
type SearchFilter struct {
	DeletedItems string // DeletedExclude (default) | DeletedInclude | DeletedOnly
	OwnedBy      string
}

func (sf *SearchFilter) AddToQuery(q url.Values) url.Values {
	if q == nil {
		q = make(url.Values, 2)
	}
	if sf.DeletedItems != "" {
		q.Set(QparamDeletedItems, sf.DeletedItems)
	}
	if sf.OwnedBy != "" {
		q.Set(QparamOwnedBy, sf.OwnedBy)
	}
	return q
}

type (
	// ParentRef names the target container of a move record.
	ParentRef struct {
		ID int64 `json:"id"`
	}

	// ParentLocation is the destination grid cell of a move record.
	ParentLocation struct {
		CoordX int `json:"coordX"`
		CoordY int `json:"coordY"`
	}

	// QuantityMsg is an amount with an RSpace unit id.
	QuantityMsg struct {
		NumericValue float64 `json:"numericValue"`
		UnitID       int     `json:"unitId"`
	}

	// BulkRecord is one sub-request of a bulk operation.
	BulkRecord struct {
		Type             string          `json:"type"`
		ID               int64           `json:"id"`
		ParentContainers []ParentRef     `json:"parentContainers,omitempty"`
		ParentLocation   *ParentLocation `json:"parentLocation,omitempty"`
		Quantity         *QuantityMsg    `json:"quantity,omitempty"`
	}

	// BulkMsg batches multiple item moves/updates into a single request.
	BulkMsg struct {
		OperationType string       `json:"operationType"`
		Records       []BulkRecord `json:"records"`
	}

	// BulkResult is the aggregate outcome of a bulk operation. A
	// non-completed result is a normal return value, not an error: the
	// server may accept a sub-request and still report overall
	// non-completion, and callers must check Ok explicitly.
	BulkResult struct {
		Status  string                `json:"status"`
		Results []jsoniter.RawMessage `json:"results"`
	}
)

func (br *BulkResult) Ok() bool     { return br.Status == BulkCompleted }
func (br *BulkResult) Failed() bool { return !br.Ok() }
