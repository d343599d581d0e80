// Package api provides a typed client for the RSpace ELN and Inventory REST APIs over HTTP(S).
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package api

import (
	"io"
	"net/http"
	"net/url"

	"github.com/rspace-os/rspace-client-go/api/apc"
	"github.com/rspace-os/rspace-client-go/cmn"
)

// GetBarcode generates a PNG barcode or QR code (apc.BarcodeBarcode or
// apc.BarcodeQR) encoding an item's global id, and returns the image bytes.
func GetBarcode(bp BaseParams, itemID any, barcodeType string) ([]byte, error) {
	gid, err := cmn.ParseGlobalID(itemID)
	if err != nil {
		return nil, err
	}
	globalID, err := gid.AsGlobalID()
	if err != nil {
		return nil, err
	}
	if barcodeType == "" {
		barcodeType = apc.BarcodeBarcode
	}
	bp.Method = http.MethodGet
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Path = apc.InvPath("barcodes")
		reqParams.Query = url.Values{
			apc.QparamContent:     []string{globalID},
			apc.QparamBarcodeType: []string{barcodeType},
		}
		reqParams.Header = http.Header{apc.HdrAccept: []string{apc.ContentPNG}}
	}
	r, err := reqParams.doReader()
	FreeRp(reqParams)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
