// Package api provides a typed client for the RSpace ELN and Inventory REST APIs over HTTP(S).
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package api

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/rspace-os/rspace-client-go/api/apc"
	"github.com/rspace-os/rspace-client-go/cmn"
)

type (
	// ExtraField is a user-defined field attached to samples, subsamples
	// and containers. Content must match the declared field type.
	ExtraField struct {
		Name            string `json:"name"`
		Type            string `json:"type"` // apc.FieldTypeText | apc.FieldTypeNumber
		Content         any    `json:"content"`
		NewFieldRequest bool   `json:"newFieldRequest,omitempty"`
	}

	// Temperature is a storage temperature with an RSpace unit id
	// (apc.UnitCelsius or apc.UnitKelvin).
	Temperature struct {
		Degrees float64
		UnitID  int
	}

	// SubSampleInfo is a decoded subsample snapshot.
	SubSampleInfo struct {
		cmn.ItemInfo
		Quantity         *apc.QuantityMsg `json:"quantity,omitempty"`
		ParentContainers []cmn.ItemInfo   `json:"parentContainers,omitempty"`
	}

	// SampleInfo is a decoded sample snapshot.
	SampleInfo struct {
		cmn.ItemInfo
		Created         string          `json:"created,omitempty"`
		LastModified    string          `json:"lastModified,omitempty"`
		Deleted         bool            `json:"deleted,omitempty"`
		Quantity        *apc.QuantityMsg `json:"quantity,omitempty"`
		SubSamplesCount int             `json:"subSamplesCount,omitempty"`
		SubSamples      []SubSampleInfo `json:"subSamples,omitempty"`
		ExtraFields     []ExtraField    `json:"extraFields,omitempty"`
	}

	// SampleArgs are the optional attributes of a new sample. Name is
	// mandatory; everything else may be zero.
	SampleArgs struct {
		Name            string
		Tags            string
		Description     string
		ExtraFields     []ExtraField
		StorageTempMin  *Temperature
		StorageTempMax  *Temperature
		ExpiryDate      time.Time
		SubSampleCount  int
		TotalQuantity   *apc.QuantityMsg
	}

	// SearchArgs restrict an Inventory search.
	SearchArgs struct {
		Query      string
		Page       apc.PageMsg
		ResultType string // apc.ResultSample et al.; empty searches all types
		Filter     *apc.SearchFilter
	}

	sampleBody struct {
		Name                     string           `json:"name"`
		Tags                     string           `json:"tags,omitempty"`
		Description              string           `json:"description,omitempty"`
		ExtraFields              []ExtraField     `json:"extraFields,omitempty"`
		StorageTempMin           *apc.QuantityMsg `json:"storageTempMin,omitempty"`
		StorageTempMax           *apc.QuantityMsg `json:"storageTempMax,omitempty"`
		ExpiryDate               string           `json:"expiryDate,omitempty"`
		NewSampleSubSamplesCount int              `json:"newSampleSubSamplesCount,omitempty"`
		Quantity                 *apc.QuantityMsg `json:"quantity,omitempty"`
	}
)

func (t *Temperature) msg() *apc.QuantityMsg {
	return &apc.QuantityMsg{NumericValue: t.Degrees, UnitID: t.UnitID}
}

// Breadcrumbs returns the container paths of all subsamples of this sample,
// deduplicated and sorted, e.g. "Mikes fridge -> shelf 2 -> Blue box #23".
func (s *SampleInfo) Breadcrumbs() []string {
	seen := make(map[string]struct{})
	for _, ss := range s.SubSamples {
		names := make([]string, 0, len(ss.ParentContainers))
		for i := len(ss.ParentContainers) - 1; i >= 0; i-- {
			names = append(names, ss.ParentContainers[i].Name)
		}
		seen[strings.Join(names, " -> ")] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for crumb := range seen {
		out = append(out, crumb)
	}
	sort.Strings(out)
	return out
}

// CreateSample creates a new sample with a mandatory name and optional
// attributes. If no template is specified the server's default template is
// used, whose quantity is measured as a volume.
func CreateSample(bp BaseParams, args *SampleArgs) (*SampleInfo, error) {
	body := sampleBody{
		Name:                     args.Name,
		Tags:                     args.Tags,
		Description:              args.Description,
		ExtraFields:              args.ExtraFields,
		NewSampleSubSamplesCount: args.SubSampleCount,
		Quantity:                 args.TotalQuantity,
	}
	if args.StorageTempMin != nil {
		body.StorageTempMin = args.StorageTempMin.msg()
	}
	if args.StorageTempMax != nil {
		body.StorageTempMax = args.StorageTempMax.msg()
	}
	if !args.ExpiryDate.IsZero() {
		body.ExpiryDate = args.ExpiryDate.Format("2006-01-02")
	}
	sample := &SampleInfo{}
	err := doJSON(bp, http.MethodPost, apc.InvPath("samples"), cmn.MustMarshal(body), sample)
	return sample, err
}

// GetSample fetches full sample information by numeric id, global id, or
// snapshot.
func GetSample(bp BaseParams, sampleID any) (*SampleInfo, error) {
	gid, err := cmn.ParseGlobalID(sampleID)
	if err != nil {
		return nil, err
	}
	sample := &SampleInfo{}
	err = doJSON(bp, http.MethodGet, apc.InvPath("samples", itoa(gid.ID())), nil, sample)
	return sample, err
}

// GetSubSample fetches one subsample.
func GetSubSample(bp BaseParams, subSampleID any) (*SubSampleInfo, error) {
	gid, err := cmn.ParseGlobalID(subSampleID)
	if err != nil {
		return nil, err
	}
	if !gid.IsSubSample(false /*strict*/) {
		return nil, cmn.NewErrUnsupportedType(gid.Prefix())
	}
	ss := &SubSampleInfo{}
	err = doJSON(bp, http.MethodGet, apc.InvPath("subSamples", itoa(gid.ID())), nil, ss)
	return ss, err
}

// ListSamples returns one page of samples.
func ListSamples(bp BaseParams, args ListArgs) (*ListPage, error) {
	return listPage(bp, apc.InvPath("samples"), "samples", args.query())
}

// ListTopLevelContainers returns one page of top-level containers.
func ListTopLevelContainers(bp BaseParams, args ListArgs) (*ListPage, error) {
	return listPage(bp, apc.InvPath("containers"), "containers", args.query())
}

// ListSubSamples returns one page of subsamples.
func ListSubSamples(bp BaseParams, args ListArgs) (*ListPage, error) {
	return listPage(bp, apc.InvPath("subSamples"), "subSamples", args.query())
}

// Rename renames any Inventory item; the identifier must carry a type
// prefix so the request can be routed to the right sub-resource.
func Rename(bp BaseParams, itemID any, newName string) (jsoniter.RawMessage, error) {
	gid, err := cmn.ParseGlobalID(itemID)
	if err != nil {
		return nil, err
	}
	endpoint, err := gid.Endpoint()
	if err != nil {
		return nil, err
	}
	var updated jsoniter.RawMessage
	body := cmn.MustMarshal(struct {
		Name string `json:"name"`
	}{newName})
	err = doJSON(bp, http.MethodPut, apc.InvPath(endpoint, itoa(gid.ID())), body, &updated)
	return updated, err
}

// DeleteSample marks a sample as deleted.
func DeleteSample(bp BaseParams, sampleID any) error {
	gid, err := cmn.ParseGlobalID(sampleID)
	if err != nil {
		return err
	}
	return doJSON(bp, http.MethodDelete, apc.InvPath("samples", itoa(gid.ID())), nil, nil)
}

// AddExtraFields appends user-defined fields to an existing item.
func AddExtraFields(bp BaseParams, itemID any, fields ...ExtraField) (jsoniter.RawMessage, error) {
	gid, err := cmn.ParseGlobalID(itemID)
	if err != nil {
		return nil, err
	}
	endpoint, err := gid.Endpoint()
	if err != nil {
		return nil, err
	}
	for i := range fields {
		fields[i].NewFieldRequest = true
	}
	var updated jsoniter.RawMessage
	body := cmn.MustMarshal(struct {
		ExtraFields []ExtraField `json:"extraFields"`
	}{fields})
	err = doJSON(bp, http.MethodPut, apc.InvPath(endpoint, itoa(gid.ID())), body, &updated)
	return updated, err
}

// AddSubSampleNote attaches a note to a subsample.
func AddSubSampleNote(bp BaseParams, subSampleID any, note string) (jsoniter.RawMessage, error) {
	gid, err := cmn.ParseGlobalID(subSampleID)
	if err != nil {
		return nil, err
	}
	if !gid.IsSubSample(false /*strict*/) {
		return nil, cmn.NewErrUnsupportedType(gid.Prefix())
	}
	var updated jsoniter.RawMessage
	body := cmn.MustMarshal(struct {
		Content string `json:"content"`
	}{note})
	err = doJSON(bp, http.MethodPost, apc.InvPath("subSamples", itoa(gid.ID()), "notes"), body, &updated)
	return updated, err
}

// Duplicate copies a template, sample, subsample or container, optionally
// renaming the copy.
func Duplicate(bp BaseParams, itemID any, newName string) (jsoniter.RawMessage, error) {
	gid, err := cmn.ParseGlobalID(itemID)
	if err != nil {
		return nil, err
	}
	endpoint, err := gid.Endpoint()
	if err != nil {
		return nil, err
	}
	var copied jsoniter.RawMessage
	err = doJSON(bp, http.MethodPost, apc.InvPath(endpoint, itoa(gid.ID()), "actions", "duplicate"), nil, &copied)
	if err != nil || newName == "" {
		return copied, err
	}
	var header cmn.ItemInfo
	if err := jsoniter.Unmarshal(copied, &header); err != nil {
		return copied, err
	}
	return Rename(bp, &header, newName)
}

// SplitSubSample splits a subsample into numNew additional subsamples,
// leaving quantity allocation to the server.
func SplitSubSample(bp BaseParams, subSampleID any, numNew int) ([]jsoniter.RawMessage, error) {
	gid, err := cmn.ParseGlobalID(subSampleID)
	if err != nil {
		return nil, err
	}
	var created []jsoniter.RawMessage
	body := cmn.MustMarshal(struct {
		NumSubSamples int  `json:"numSubSamples"`
		Split         bool `json:"split"`
	}{numNew + 1, true})
	err = doJSON(bp, http.MethodPost, apc.InvPath("subSamples", itoa(gid.ID()), "actions", "split"), body, &created)
	return created, err
}

// SplitSubSampleQuantity splits a subsample and then sets an explicit
// quantity on each new subsample via a bulk UPDATE, decrementing the
// original accordingly. Fails fast when the original holds less than the
// total amount to redistribute.
func SplitSubSampleQuantity(bp BaseParams, subSampleID any, numNew int, quantityPer float64) (*apc.BulkResult, error) {
	gid, err := cmn.ParseGlobalID(subSampleID)
	if err != nil {
		return nil, err
	}
	full, err := GetSubSample(bp, gid)
	if err != nil {
		return nil, err
	}
	if full.Quantity == nil {
		return nil, cmn.NewErrInvalidIdentifier(gid.String() + " has no quantity")
	}
	toDecrement := float64(numNew) * quantityPer
	if toDecrement > full.Quantity.NumericValue {
		return nil, cmn.NewErrInsufficientCapacity(gid.String(),
			int(full.Quantity.NumericValue), int(toDecrement))
	}
	created, err := SplitSubSample(bp, gid, numNew)
	if err != nil {
		return nil, err
	}
	records := []apc.BulkRecord{{
		Type: cmn.TypeSubSample,
		ID:   gid.ID(),
		Quantity: &apc.QuantityMsg{
			NumericValue: full.Quantity.NumericValue - toDecrement,
			UnitID:       full.Quantity.UnitID,
		},
	}}
	for _, raw := range created {
		var header cmn.ItemInfo
		if err := jsoniter.Unmarshal(raw, &header); err != nil {
			return nil, err
		}
		records = append(records, apc.BulkRecord{
			Type: cmn.TypeSubSample,
			ID:   header.ID,
			Quantity: &apc.QuantityMsg{
				NumericValue: quantityPer,
				UnitID:       full.Quantity.UnitID,
			},
		})
	}
	return doBulk(bp, &apc.BulkMsg{OperationType: apc.OpUpdate, Records: records})
}

// Search queries name, tag and description across Inventory items.
func Search(bp BaseParams, args SearchArgs) (*ListPage, error) {
	q := args.Page.AddToQuery(nil)
	q.Set(apc.QparamQuery, args.Query)
	if args.ResultType != "" {
		q.Set(apc.QparamResultType, args.ResultType)
	}
	if args.Filter != nil {
		q = args.Filter.AddToQuery(q)
	}
	return listPage(bp, apc.InvPath("search"), "records", q)
}

// doJSON is the shared one-shot request helper.
func doJSON(bp BaseParams, method, path string, body []byte, v any) error {
	bp.Method = method
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = path
		reqParams.Body = body
		if body != nil {
			reqParams.Header = http.Header{apc.HdrContentType: []string{apc.ContentJSON}}
		}
	}
	var err error
	if v == nil {
		err = reqParams.DoRequest()
	} else {
		err = reqParams.DoReqAny(v)
	}
	FreeRp(reqParams)
	return err
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
