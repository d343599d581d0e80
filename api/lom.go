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

type (
	invRec struct {
		ID   int64  `json:"id"`
		Type string `json:"type"`
	}
	lomMaterial struct {
		InvRec invRec `json:"invRec"`
	}
	lomBody struct {
		Name        string        `json:"name"`
		ELNFieldID  int64         `json:"elnFieldId"`
		Description string        `json:"description,omitempty"`
		Materials   []lomMaterial `json:"materials"`
	}
)

// CreateListOfMaterials attaches a new list of materials to an ELN text
// field. Materials are typed global ids (or snapshots) of samples,
// subsamples or containers.
func CreateListOfMaterials(bp BaseParams, elnFieldID int64, name, description string,
	materials ...any) (jsoniter.RawMessage, error) {
	body := lomBody{Name: name, ELNFieldID: elnFieldID, Description: description}
	for _, material := range materials {
		gid, err := cmn.ParseGlobalID(material)
		if err != nil {
			return nil, err
		}
		recType, err := gid.Type()
		if err != nil {
			return nil, err
		}
		body.Materials = append(body.Materials, lomMaterial{invRec{ID: gid.ID(), Type: recType}})
	}
	var created jsoniter.RawMessage
	err := doJSON(bp, http.MethodPost, apc.InvPath("listOfMaterials"), cmn.MustMarshal(body), &created)
	return created, err
}

// GetListOfMaterials fetches one list of materials by id.
func GetListOfMaterials(bp BaseParams, lomID int64) (jsoniter.RawMessage, error) {
	var lom jsoniter.RawMessage
	err := doJSON(bp, http.MethodGet, apc.InvPath("listOfMaterials", itoa(lomID)), nil, &lom)
	return lom, err
}

// GetListsOfMaterialsForDocument lists all lists of materials belonging to
// one ELN document.
func GetListsOfMaterialsForDocument(bp BaseParams, docID any) (jsoniter.RawMessage, error) {
	gid, err := cmn.ParseGlobalID(docID)
	if err != nil {
		return nil, err
	}
	var loms jsoniter.RawMessage
	err = doJSON(bp, http.MethodGet, apc.InvPath("listOfMaterials", "forDocument", itoa(gid.ID())), nil, &loms)
	return loms, err
}

// GetListsOfMaterialsForField lists all lists of materials belonging to one
// ELN document field.
func GetListsOfMaterialsForField(bp BaseParams, fieldID any) (jsoniter.RawMessage, error) {
	gid, err := cmn.ParseGlobalID(fieldID)
	if err != nil {
		return nil, err
	}
	var loms jsoniter.RawMessage
	err = doJSON(bp, http.MethodGet, apc.InvPath("listOfMaterials", "forField", itoa(gid.ID())), nil, &loms)
	return loms, err
}
