// Package api provides a typed client for the RSpace ELN and Inventory REST APIs over HTTP(S).
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/pkg/errors"

	"github.com/rspace-os/rspace-client-go/api/apc"
	"github.com/rspace-os/rspace-client-go/cmn"
)

// FileInfo is gallery-file metadata.
type FileInfo struct {
	cmn.ItemInfo
	Caption     string `json:"caption,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	Size        int64  `json:"size,omitempty"`
	Created     string `json:"created,omitempty"`
}

// UploadArgs describe a gallery upload. FolderID and Caption are optional.
type UploadArgs struct {
	FileName string
	Reader   io.Reader
	FolderID int64
	Caption  string
}

// UploadFile uploads a file to the ELN gallery.
func UploadFile(bp BaseParams, args *UploadArgs) (*FileInfo, error) {
	fields := map[string]string{}
	if args.FolderID != 0 {
		fields["folderId"] = itoa(args.FolderID)
	}
	if args.Caption != "" {
		fields["caption"] = args.Caption
	}
	fi := &FileInfo{}
	err := doMultipart(bp, apc.ELNPath("files"), args.FileName, args.Reader, fields, nil, fi)
	return fi, err
}

// UpdateFile replaces the content of an existing gallery file.
func UpdateFile(bp BaseParams, fileID int64, fileName string, r io.Reader) (*FileInfo, error) {
	fi := &FileInfo{}
	err := doMultipart(bp, apc.ELNPath("files", itoa(fileID), "file"), fileName, r, nil, nil, fi)
	return fi, err
}

// UploadAttachment attaches a file to a sample, subsample or container.
// The item reference must carry a type prefix - the server routes the
// attachment by global id.
func UploadAttachment(bp BaseParams, itemID any, fileName string, r io.Reader) (*FileInfo, error) {
	gid, err := cmn.ParseGlobalID(itemID)
	if err != nil {
		return nil, err
	}
	globalID, err := gid.AsGlobalID()
	if err != nil {
		return nil, err
	}
	settings := cmn.MustMarshal(struct {
		ParentGlobalID string `json:"parentGlobalId"`
	}{globalID})
	fi := &FileInfo{}
	err = doMultipart(bp, apc.InvPath("files"), fileName, r, nil, settings, fi)
	return fi, err
}

// GetFiles lists gallery items of the given media type (apc.MediaImage,
// apc.MediaAV or apc.MediaDocument).
func GetFiles(bp BaseParams, page apc.PageMsg, mediaType string) (*ListPage, error) {
	if page.OrderBy == "" {
		page.OrderBy, page.SortOrder = "lastModified", "desc"
	}
	q := page.AddToQuery(nil)
	if mediaType == "" {
		mediaType = apc.MediaImage
	}
	q.Set(apc.QparamMediaType, mediaType)
	return listPage(bp, apc.ELNPath("files"), "files", q)
}

// GetFileInfo fetches metadata of a single gallery file.
func GetFileInfo(bp BaseParams, fileID int64) (*FileInfo, error) {
	fi := &FileInfo{}
	err := doJSON(bp, http.MethodGet, apc.ELNPath("files", itoa(fileID)), nil, fi)
	return fi, err
}

// DownloadFile streams the content of a gallery file to w.
func DownloadFile(bp BaseParams, fileID int64, w io.Writer) (int64, error) {
	bp.Method = http.MethodGet
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.ELNPath("files", itoa(fileID), "file")
	}
	r, err := reqParams.doReader()
	FreeRp(reqParams)
	if err != nil {
		return 0, err
	}
	defer r.Close()
	return io.Copy(w, r)
}

// doMultipart posts a multipart/form-data request: the file part, optional
// plain form fields, and an optional JSON `fileSettings` part.
func doMultipart(bp BaseParams, path, fileName string, r io.Reader, fields map[string]string,
	fileSettings []byte, v any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return errors.Wrap(err, "failed to build multipart request")
	}
	if _, err := io.Copy(part, r); err != nil {
		return errors.Wrapf(err, "failed to read upload content %q", fileName)
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return errors.Wrap(err, "failed to build multipart request")
		}
	}
	if fileSettings != nil {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="fileSettings"`)
		hdr.Set(apc.HdrContentType, apc.ContentJSON)
		settings, err := mw.CreatePart(hdr)
		if err != nil {
			return errors.Wrap(err, "failed to build multipart request")
		}
		if _, err := settings.Write(fileSettings); err != nil {
			return errors.Wrap(err, "failed to build multipart request")
		}
	}
	if err := mw.Close(); err != nil {
		return errors.Wrap(err, "failed to build multipart request")
	}

	bp.Method = http.MethodPost
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = path
		reqParams.Body = buf.Bytes()
		reqParams.Header = http.Header{apc.HdrContentType: []string{mw.FormDataContentType()}}
	}
	err = reqParams.DoReqAny(v)
	FreeRp(reqParams)
	return err
}
