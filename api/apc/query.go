// Package apc: RSpace API control messages and constants.
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package apc

// Query parameter names.
const (
	QparamPageNumber = "pageNumber" // 0-based page index
	QparamPageSize   = "pageSize"
	QparamOrderBy    = "orderBy" // e.g. "lastModified desc"

	QparamQuery      = "query"
	QparamResultType = "resultType" // SAMPLE | SUBSAMPLE | TEMPLATE | CONTAINER

	// search filters
	QparamDeletedItems = "deletedItems"
	QparamOwnedBy      = "ownedBy"

	// gallery listing
	QparamMediaType = "mediaType"

	// folder tree listing
	QparamTypesToInclude = "typesToInclude"

	// barcode generation
	QparamContent     = "content"
	QparamBarcodeType = "barcodeType"

	// activity listing
	QparamDateFrom = "dateFrom"
	QparamDateTo   = "dateTo"
	QparamActions  = "actions"
	QparamDomains  = "domains"
	QparamOid      = "oid"
	QparamUsers    = "users"
)

// Deleted-item filter values.
const (
	DeletedExclude = "EXCLUDE"
	DeletedInclude = "INCLUDE"
	DeletedOnly    = "DELETED_ONLY"
)

// Search result types.
const (
	ResultSample    = "SAMPLE"
	ResultSubSample = "SUBSAMPLE"
	ResultTemplate  = "TEMPLATE"
	ResultContainer = "CONTAINER"
)

// Barcode types.
const (
	BarcodeBarcode = "BARCODE"
	BarcodeQR      = "QR"
)
