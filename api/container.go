// Package api provides a typed client for the RSpace ELN and Inventory REST APIs over HTTP(S).
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package api

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/rspace-os/rspace-client-go/api/apc"
	"github.com/rspace-os/rspace-client-go/cmn"
)

// ContainerArgs are the common attributes of a new container.
type ContainerArgs struct {
	Name               string
	Tags               string
	Description        string
	ExtraFields        []ExtraField
	CanStoreContainers bool
	CanStoreSubsamples bool
}

type containerBody struct {
	Name               string          `json:"name"`
	Tags               string          `json:"tags,omitempty"`
	Description        string          `json:"description,omitempty"`
	ExtraFields        []ExtraField    `json:"extraFields,omitempty"`
	CType              string          `json:"cType"`
	CanStoreContainers bool            `json:"canStoreContainers"`
	CanStoreSubsamples bool            `json:"canStoreSubsamples"`
	GridLayout         *cmn.GridLayout `json:"gridLayout,omitempty"`
}

// CreateListContainer creates an ordered container of unbounded capacity.
func CreateListContainer(bp BaseParams, args *ContainerArgs) (*cmn.Container, error) {
	return createContainer(bp, args, nil)
}

// CreateGridContainer creates a container with a fixed row x column layout.
func CreateGridContainer(bp BaseParams, args *ContainerArgs, rowCount, columnCount int) (*cmn.Container, error) {
	return createContainer(bp, args, &cmn.GridLayout{RowsNumber: rowCount, ColumnsNumber: columnCount})
}

func createContainer(bp BaseParams, args *ContainerArgs, layout *cmn.GridLayout) (*cmn.Container, error) {
	body := containerBody{
		Name:               args.Name,
		Tags:               args.Tags,
		Description:        args.Description,
		ExtraFields:        args.ExtraFields,
		CType:              cmn.CTypeList,
		CanStoreContainers: args.CanStoreContainers,
		CanStoreSubsamples: args.CanStoreSubsamples,
		GridLayout:         layout,
	}
	if layout != nil {
		body.CType = cmn.CTypeGrid
	}
	var ci cmn.ContainerInfo
	if err := doJSON(bp, http.MethodPost, apc.InvPath("containers"), cmn.MustMarshal(body), &ci); err != nil {
		return nil, err
	}
	return cmn.NewContainer(ci)
}

// GetContainer fetches one container snapshot by id, global id, or snapshot.
func GetContainer(bp BaseParams, containerID any) (*cmn.Container, error) {
	gid, err := cmn.ParseGlobalID(containerID)
	if err != nil {
		return nil, err
	}
	var ci cmn.ContainerInfo
	if err := doJSON(bp, http.MethodGet, apc.InvPath("containers", itoa(gid.ID())), nil, &ci); err != nil {
		return nil, err
	}
	return cmn.NewContainer(ci)
}

// GetWorkbenches lists the workbenches visible to the caller, including
// the caller's own.
func GetWorkbenches(bp BaseParams) ([]*cmn.Container, error) {
	var envelope struct {
		Containers []cmn.ContainerInfo `json:"containers"`
	}
	if err := doJSON(bp, http.MethodGet, apc.InvPath("workbenches"), nil, &envelope); err != nil {
		return nil, err
	}
	out := make([]*cmn.Container, 0, len(envelope.Containers))
	for _, ci := range envelope.Containers {
		wb, err := cmn.NewContainer(ci)
		if err != nil {
			return nil, err
		}
		out = append(out, wb)
	}
	return out, nil
}

// SetTopLevelContainer detaches a container from its parent, making it
// top-level.
func SetTopLevelContainer(bp BaseParams, containerID any) (jsoniter.RawMessage, error) {
	gid, err := cmn.ParseGlobalID(containerID)
	if err != nil {
		return nil, err
	}
	var updated jsoniter.RawMessage
	body := cmn.MustMarshal(struct {
		RemoveFromParentContainerRequest bool `json:"removeFromParentContainerRequest"`
	}{true})
	err = doJSON(bp, http.MethodPut, apc.InvPath("containers", itoa(gid.ID())), body, &updated)
	return updated, err
}

// AddToListContainer moves one or more items into a list container via a
// single bulk MOVE. Items must be movable global ids (containers or
// subsamples); the target may be a bare id, in which case the server alone
// decides whether the move is legal.
func AddToListContainer(bp BaseParams, targetID any, itemsToMove ...any) (*apc.BulkResult, error) {
	target, err := cmn.ParseGlobalID(targetID)
	if err != nil {
		return nil, err
	}
	if !target.IsContainer(false /*strict*/) {
		return nil, cmn.NewErrUnsupportedType(target.Prefix())
	}
	records := make([]apc.BulkRecord, 0, len(itemsToMove))
	for _, item := range itemsToMove {
		gid, err := cmn.ParseGlobalID(item)
		if err != nil {
			return nil, err
		}
		if !gid.IsMovable(true /*strict*/) {
			return nil, cmn.NewErrNotMovable(gid.String())
		}
		recType, err := gid.Type()
		if err != nil {
			return nil, err
		}
		records = append(records, apc.BulkRecord{
			Type:             recType,
			ID:               gid.ID(),
			ParentContainers: []apc.ParentRef{{ID: target.ID()}},
		})
	}
	return doBulk(bp, &apc.BulkMsg{OperationType: apc.OpMove, Records: records})
}

// AddToGridContainer moves items into a grid container at the coordinates
// computed by the placement, as a single bulk MOVE.
//
// The capacity pre-check is opt-in: when target is a *cmn.Container grid
// snapshot the free-cell count is compared against the item count before
// any network call; with a bare id no pre-check occurs and the server's
// bulk response is the sole authority. Either way the returned BulkResult's
// completion status must be checked by the caller.
func AddToGridContainer(bp BaseParams, target any, placement *cmn.Placement) (*apc.BulkResult, error) {
	if snapshot, ok := target.(*cmn.Container); ok && snapshot.IsGrid() {
		if free := snapshot.Free(); free < len(placement.Items()) {
			return nil, cmn.NewErrInsufficientCapacity(snapshot.GlobalID, free, len(placement.Items()))
		}
	}
	targetGid, err := cmn.ParseGlobalID(target)
	if err != nil {
		return nil, err
	}
	if !targetGid.IsContainer(false /*strict*/) {
		return nil, cmn.NewErrUnsupportedType(targetGid.Prefix())
	}
	assignments := placement.Resolve()
	records := make([]apc.BulkRecord, 0, len(assignments))
	for _, a := range assignments {
		recType, err := a.Item.Type()
		if err != nil {
			return nil, err
		}
		records = append(records, apc.BulkRecord{
			Type:             recType,
			ID:               a.Item.ID(),
			ParentContainers: []apc.ParentRef{{ID: targetGid.ID()}},
			ParentLocation:   &apc.ParentLocation{CoordX: a.Loc.X, CoordY: a.Loc.Y},
		})
	}
	return doBulk(bp, &apc.BulkMsg{OperationType: apc.OpMove, Records: records})
}

func doBulk(bp BaseParams, msg *apc.BulkMsg) (*apc.BulkResult, error) {
	result := &apc.BulkResult{}
	err := doJSON(bp, http.MethodPost, apc.InvPath("bulk"), cmn.MustMarshal(msg), result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
