// Package api provides a typed client for the RSpace ELN and Inventory REST APIs over HTTP(S).
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/rspace-os/rspace-client-go/api/apc"
	"github.com/rspace-os/rspace-client-go/cmn"
)

type (
	// FieldContent is one field of an ELN document: an id (optional on
	// create) and HTML content.
	FieldContent struct {
		ID      int64  `json:"id,omitempty"`
		Content string `json:"content"`
	}

	// DocumentInfo is a decoded ELN document.
	DocumentInfo struct {
		cmn.ItemInfo
		Created      string `json:"created,omitempty"`
		LastModified string `json:"lastModified,omitempty"`
		Tags         string `json:"tags,omitempty"`
		Form         *struct {
			ID int64 `json:"id"`
		} `json:"form,omitempty"`
		Fields []FieldContent `json:"fields,omitempty"`
	}

	// DocumentArgs describe a new or updated document. Zero values are
	// omitted from the request.
	DocumentArgs struct {
		Name           string
		ParentFolderID int64
		Tags           string
		FormID         int64
		Fields         []FieldContent
	}

	// DocListArgs page through document summaries, optionally restricted
	// by a search term.
	DocListArgs struct {
		Query string
		Page  apc.PageMsg
	}

	// ActivityArgs restrict an audit-trail listing.
	ActivityArgs struct {
		Page     apc.PageMsg
		DateFrom time.Time
		DateTo   time.Time
		Actions  []string
		Domains  []string
		GlobalID string
		Users    []string
	}

	// Status is the server's version/availability report.
	Status struct {
		Message       string `json:"message"`
		RSpaceVersion string `json:"rspaceVersion"`
	}

	documentBody struct {
		Name           string         `json:"name,omitempty"`
		ParentFolderID int64          `json:"parentFolderId,omitempty"`
		Tags           string         `json:"tags,omitempty"`
		Form           *apc.ParentRef `json:"form,omitempty"`
		Fields         []FieldContent `json:"fields,omitempty"`
	}
)

func (args *DocumentArgs) body() documentBody {
	body := documentBody{
		Name:           args.Name,
		ParentFolderID: args.ParentFolderID,
		Tags:           args.Tags,
		Fields:         args.Fields,
	}
	if args.FormID != 0 {
		body.Form = &apc.ParentRef{ID: args.FormID}
	}
	return body
}

// GetStatus checks server availability and version.
func GetStatus(bp BaseParams) (*Status, error) {
	status := &Status{}
	err := doJSON(bp, http.MethodGet, apc.ELNPath("status"), nil, status)
	return status, err
}

// GetDocuments returns one page of document summaries, newest first by
// default.
func GetDocuments(bp BaseParams, args DocListArgs) (*ListPage, error) {
	if args.Page.OrderBy == "" {
		args.Page.OrderBy, args.Page.SortOrder = "lastModified", "desc"
	}
	q := args.Page.AddToQuery(nil)
	if args.Query != "" {
		q.Set(apc.QparamQuery, args.Query)
	}
	return listPage(bp, apc.ELNPath("documents"), "documents", q)
}

// GetDocument fetches one document with full field content.
func GetDocument(bp BaseParams, docID int64) (*DocumentInfo, error) {
	doc := &DocumentInfo{}
	err := doJSON(bp, http.MethodGet, apc.ELNPath("documents", itoa(docID)), nil, doc)
	return doc, err
}

// GetDocumentCSV fetches one document rendered as CSV.
func GetDocumentCSV(bp BaseParams, docID int64) (string, error) {
	bp.Method = http.MethodGet
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.ELNPath("documents", itoa(docID))
		reqParams.Header = http.Header{apc.HdrAccept: []string{apc.ContentCSV}}
	}
	var csv string
	err := reqParams.DoReqAny(&csv)
	FreeRp(reqParams)
	return csv, err
}

// CreateDocument creates a document in the user's Api Inbox folder unless a
// parent folder is given; the form defaults to BasicDocument.
func CreateDocument(bp BaseParams, args *DocumentArgs) (*DocumentInfo, error) {
	doc := &DocumentInfo{}
	err := doJSON(bp, http.MethodPost, apc.ELNPath("documents"), cmn.MustMarshal(args.body()), doc)
	return doc, err
}

// UpdateDocument applies the non-zero fields of args to an existing document.
func UpdateDocument(bp BaseParams, docID int64, args *DocumentArgs) (*DocumentInfo, error) {
	doc := &DocumentInfo{}
	err := doJSON(bp, http.MethodPut, apc.ELNPath("documents", itoa(docID)), cmn.MustMarshal(args.body()), doc)
	return doc, err
}

// DeleteDocument marks a document as deleted.
func DeleteDocument(bp BaseParams, docID int64) error {
	return doJSON(bp, http.MethodDelete, apc.ELNPath("documents", itoa(docID)), nil, nil)
}

// AppendContent appends an HTML snippet to the end of the field at
// fieldIndex (0-based, first field by default).
func AppendContent(bp BaseParams, docID int64, htmlContent string, fieldIndex int) (*DocumentInfo, error) {
	return addContent(bp, docID, htmlContent, fieldIndex, true)
}

// PrependContent prepends an HTML snippet to the beginning of the field at
// fieldIndex.
func PrependContent(bp BaseParams, docID int64, htmlContent string, fieldIndex int) (*DocumentInfo, error) {
	return addContent(bp, docID, htmlContent, fieldIndex, false)
}

func addContent(bp BaseParams, docID int64, htmlContent string, fieldIndex int, atEnd bool) (*DocumentInfo, error) {
	doc, err := GetDocument(bp, docID)
	if err != nil {
		return nil, err
	}
	if fieldIndex < 0 || fieldIndex >= len(doc.Fields) {
		return nil, fmt.Errorf("field at index %d doesn't exist, document %d has %d fields",
			fieldIndex, docID, len(doc.Fields))
	}
	field := doc.Fields[fieldIndex]
	content := htmlContent + field.Content
	if atEnd {
		content = field.Content + htmlContent
	}
	args := &DocumentArgs{Fields: []FieldContent{{ID: field.ID, Content: content}}}
	if doc.Form != nil {
		args.FormID = doc.Form.ID
	}
	return UpdateDocument(bp, docID, args)
}

// CreateFolder creates a folder or, when notebook is true, a notebook.
func CreateFolder(bp BaseParams, name string, parentFolderID int64, notebook bool) (jsoniter.RawMessage, error) {
	var created jsoniter.RawMessage
	body := cmn.MustMarshal(struct {
		Name           string `json:"name"`
		ParentFolderID int64  `json:"parentFolderId,omitempty"`
		Notebook       bool   `json:"notebook,omitempty"`
	}{name, parentFolderID, notebook})
	err := doJSON(bp, http.MethodPost, apc.ELNPath("folders"), body, &created)
	return created, err
}

// GetFolder fetches folder metadata.
func GetFolder(bp BaseParams, folderID int64) (jsoniter.RawMessage, error) {
	var folder jsoniter.RawMessage
	err := doJSON(bp, http.MethodGet, apc.ELNPath("folders", itoa(folderID)), nil, &folder)
	return folder, err
}

// DeleteFolder deletes a folder or notebook.
func DeleteFolder(bp BaseParams, folderID int64) error {
	return doJSON(bp, http.MethodDelete, apc.ELNPath("folders", itoa(folderID)), nil, nil)
}

// FolderTree lists the contents of a folder, or of the home folder when
// folderID is zero. typesToInclude may restrict to "document", "notebook"
// and/or "folder".
func FolderTree(bp BaseParams, folderID int64, typesToInclude []string) (*ListPage, error) {
	words := []string{"folders", "tree"}
	if folderID != 0 {
		words = append(words, itoa(folderID))
	}
	var q url.Values
	if len(typesToInclude) > 0 {
		q = url.Values{apc.QparamTypesToInclude: []string{strings.Join(typesToInclude, ",")}}
	}
	return listPage(bp, apc.ELNPath(words...), "records", q)
}

// GetForms returns one page of forms, optionally restricted by a name/tag
// query.
func GetForms(bp BaseParams, query string, page apc.PageMsg) (*ListPage, error) {
	if page.OrderBy == "" {
		page.OrderBy, page.SortOrder = "lastModified", "desc"
	}
	q := page.AddToQuery(nil)
	if query != "" {
		q.Set(apc.QparamQuery, query)
	}
	return listPage(bp, apc.ELNPath("forms"), "forms", q)
}

// GetForm fetches one form.
func GetForm(bp BaseParams, formID int64) (jsoniter.RawMessage, error) {
	var form jsoniter.RawMessage
	err := doJSON(bp, http.MethodGet, apc.ELNPath("forms", itoa(formID)), nil, &form)
	return form, err
}

// CreateForm creates a new form from field definitions; the fields value is
// passed through to the server unmodified.
func CreateForm(bp BaseParams, name, tags string, fields []jsoniter.RawMessage) (jsoniter.RawMessage, error) {
	var created jsoniter.RawMessage
	body := cmn.MustMarshal(struct {
		Name   string                `json:"name"`
		Tags   string                `json:"tags,omitempty"`
		Fields []jsoniter.RawMessage `json:"fields,omitempty"`
	}{name, tags, fields})
	err := doJSON(bp, http.MethodPost, apc.ELNPath("forms"), body, &created)
	return created, err
}

// DeleteForm deletes a form that is in NEW or UNPUBLISHED state.
func DeleteForm(bp BaseParams, formID int64) error {
	return doJSON(bp, http.MethodDelete, apc.ELNPath("forms", itoa(formID)), nil, nil)
}

// PublishForm makes a form usable for document creation.
func PublishForm(bp BaseParams, formID int64) (jsoniter.RawMessage, error) {
	return formAction(bp, formID, "publish")
}

func UnpublishForm(bp BaseParams, formID int64) (jsoniter.RawMessage, error) {
	return formAction(bp, formID, "unpublish")
}

// ShareForm shares a form with the user's groups.
func ShareForm(bp BaseParams, formID int64) (jsoniter.RawMessage, error) {
	return formAction(bp, formID, "share")
}

func UnshareForm(bp BaseParams, formID int64) (jsoniter.RawMessage, error) {
	return formAction(bp, formID, "unshare")
}

func formAction(bp BaseParams, formID int64, action string) (jsoniter.RawMessage, error) {
	var updated jsoniter.RawMessage
	err := doJSON(bp, http.MethodPut, apc.ELNPath("forms", itoa(formID), action), nil, &updated)
	return updated, err
}

// GetActivity lists audit-trail events, optionally restricted by date
// range, action, domain, item or user.
func GetActivity(bp BaseParams, args ActivityArgs) (*ListPage, error) {
	q := args.Page.AddToQuery(nil)
	if !args.DateFrom.IsZero() {
		q.Set(apc.QparamDateFrom, args.DateFrom.Format("2006-01-02"))
	}
	if !args.DateTo.IsZero() {
		q.Set(apc.QparamDateTo, args.DateTo.Format("2006-01-02"))
	}
	if len(args.Actions) > 0 {
		q.Set(apc.QparamActions, strings.Join(args.Actions, ","))
	}
	if len(args.Domains) > 0 {
		q.Set(apc.QparamDomains, strings.Join(args.Domains, ","))
	}
	if args.GlobalID != "" {
		q.Set(apc.QparamOid, args.GlobalID)
	}
	if len(args.Users) > 0 {
		q.Set(apc.QparamUsers, strings.Join(args.Users, ","))
	}
	return listPage(bp, apc.ELNPath("activity"), "activities", q)
}
