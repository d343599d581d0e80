// Package api provides a typed client for the RSpace ELN and Inventory REST APIs over HTTP(S).
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package api

import (
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"

	"github.com/rspace-os/rspace-client-go/api/apc"
)

// ListArgs are the common arguments of Inventory listing endpoints.
type ListArgs struct {
	Page   apc.PageMsg
	Filter *apc.SearchFilter
}

func (args *ListArgs) query() url.Values {
	q := args.Page.AddToQuery(nil)
	if args.Filter != nil {
		q = args.Filter.AddToQuery(q)
	}
	return q
}

// ListPage is one page of a listing endpoint. Items are kept raw; each
// endpoint's typed wrapper decodes them.
type ListPage struct {
	TotalHits  int64
	PageNumber int
	Items      []jsoniter.RawMessage
}

// listPage fetches a single page. The response envelope keys the item array
// by the endpoint name ("samples", "containers", "documents", ...).
func listPage(bp BaseParams, path, itemsKey string, q url.Values) (*ListPage, error) {
	bp.Method = http.MethodGet
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = path
		reqParams.Query = q
	}
	var envelope map[string]jsoniter.RawMessage
	err := reqParams.DoReqAny(&envelope)
	FreeRp(reqParams)
	if err != nil {
		return nil, err
	}
	page := &ListPage{}
	if raw, ok := envelope["totalHits"]; ok {
		_ = jsoniter.Unmarshal(raw, &page.TotalHits)
	}
	if raw, ok := envelope["pageNumber"]; ok {
		_ = jsoniter.Unmarshal(raw, &page.PageNumber)
	}
	if raw, ok := envelope[itemsKey]; ok {
		if err := jsoniter.Unmarshal(raw, &page.Items); err != nil {
			return nil, err
		}
	}
	return page, nil
}

// ItemIter lazily walks successive pages of a listing endpoint, yielding one
// item at a time. Network calls are made one page ahead of consumption, on
// pull; a fetched page shorter than the requested size terminates the
// stream. A fresh iterator starts a fresh stream - no state is shared
// across iterators. Abandoning an iterator is safe: no server-side resource
// is held open.
type ItemIter struct {
	bp       BaseParams
	path     string
	itemsKey string
	base     url.Values
	page     apc.PageMsg
	buf      []jsoniter.RawMessage
	off      int
	done     bool
}

// NewItemIter streams any listing endpoint. `itemsKey` names the item array
// inside the page envelope.
func NewItemIter(bp BaseParams, path, itemsKey string, page apc.PageMsg, filter *apc.SearchFilter) *ItemIter {
	var base url.Values
	if filter != nil {
		base = filter.AddToQuery(nil)
	}
	if page.PageSize <= 0 {
		page.PageSize = apc.DfltPageSize
	}
	return &ItemIter{bp: bp, path: path, itemsKey: itemsKey, base: base, page: page}
}

// Next returns the next item, or io.EOF when the stream is exhausted.
// HTTP errors mid-stream propagate unchanged at the next pull; there is no
// automatic retry and no partial-page recovery.
func (it *ItemIter) Next() (jsoniter.RawMessage, error) {
	for it.off >= len(it.buf) {
		if it.done {
			return nil, io.EOF
		}
		if err := it.fetch(); err != nil {
			return nil, err
		}
	}
	item := it.buf[it.off]
	it.off++
	return item, nil
}

// NextInto decodes the next item into v; returns io.EOF at end of stream.
func (it *ItemIter) NextInto(v any) error {
	raw, err := it.Next()
	if err != nil {
		return err
	}
	return jsoniter.Unmarshal(raw, v)
}

func (it *ItemIter) fetch() error {
	q := make(url.Values, len(it.base)+3)
	for k, v := range it.base {
		q[k] = v
	}
	page, err := listPage(it.bp, it.path, it.itemsKey, it.page.AddToQuery(q))
	if err != nil {
		return err
	}
	if len(page.Items) < it.page.PageSize {
		// short (or empty) page: this is the last one
		it.done = true
	}
	it.buf, it.off = page.Items, 0
	it.page.PageNumber++
	return nil
}

// StreamSamples streams all samples; the page message sets batch size and
// ordering.
func StreamSamples(bp BaseParams, page apc.PageMsg, filter *apc.SearchFilter) *ItemIter {
	return NewItemIter(bp, apc.InvPath("samples"), "samples", page, filter)
}

// StreamTopLevelContainers streams all top-level containers.
func StreamTopLevelContainers(bp BaseParams, page apc.PageMsg, filter *apc.SearchFilter) *ItemIter {
	return NewItemIter(bp, apc.InvPath("containers"), "containers", page, filter)
}

// StreamSubSamples streams all subsamples.
func StreamSubSamples(bp BaseParams, page apc.PageMsg, filter *apc.SearchFilter) *ItemIter {
	return NewItemIter(bp, apc.InvPath("subSamples"), "subSamples", page, filter)
}

// StreamDocuments streams ELN document summaries.
func StreamDocuments(bp BaseParams, page apc.PageMsg) *ItemIter {
	return NewItemIter(bp, apc.ELNPath("documents"), "documents", page, nil)
}
