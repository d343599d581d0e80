// Package apc: RSpace API control messages and constants.
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package apc

import "strings"

// API roots. The ELN and Inventory APIs are versioned independently under
// the same server base URL.
const (
	ELNRoot = "/api/v1"
	InvRoot = "/api/inventory/v1"
)

// HTTP headers and content types.
const (
	HdrAPIKey      = "apiKey"
	HdrAccept      = "Accept"
	HdrContentType = "Content-Type"

	ContentJSON = "application/json"
	ContentCSV  = "text/csv"
	ContentPNG  = "image/png"
)

// Asynchronous job statuses.
const (
	JobStarting  = "STARTING"
	JobStarted   = "STARTED"
	JobRunning   = "RUNNING"
	JobCompleted = "COMPLETED"
	JobFailed    = "FAILED"
	JobAbandoned = "ABANDONED"
)

// Bulk operation types and the aggregate completion status.
const (
	OpMove   = "MOVE"
	OpUpdate = "UPDATE"

	BulkCompleted = "COMPLETED"
)

// Export arguments.
const (
	ExportFormatXML  = "xml"
	ExportFormatHTML = "html"

	ExportScopeUser  = "user"
	ExportScopeGroup = "group"
)

// Link relations in `_links` arrays.
const (
	LinkEnclosure = "enclosure"
	LinkSelf      = "self"
)

// Extra-field content types.
const (
	FieldTypeText   = "text"
	FieldTypeNumber = "number"
)

// RSpace quantity unit ids for storage temperatures.
const (
	UnitCelsius = 8
	UnitKelvin  = 9
)

// Media types accepted by the gallery files listing.
const (
	MediaImage    = "image"
	MediaAV       = "av"
	MediaDocument = "document"
)

// ELNPath joins words under the ELN API root, e.g. ELNPath("documents", "123").
func ELNPath(words ...string) string { return join(ELNRoot, words) }

// InvPath joins words under the Inventory API root.
func InvPath(words ...string) string { return join(InvRoot, words) }

func join(root string, words []string) string {
	if len(words) == 0 {
		return root
	}
	return root + "/" + strings.Join(words, "/")
}
