// Package cmn provides common types shared by the RSpace ELN and Inventory API clients.
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package cmn

import (
	"errors"
	"fmt"
	"net/http"
)

// Error structure for HTTP errors as reported by the RSpace server.
type ErrHTTP struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Method  string `json:"method"`
	URLPath string `json:"url_path"`
}

type (
	// ErrInvalidIdentifier is returned when a value cannot be interpreted
	// as a numeric id or global id of an Inventory item.
	ErrInvalidIdentifier struct {
		Value string
	}
	// ErrMissingType is returned when an operation requires a typed global id
	// but the identifier was constructed from a bare numeric id.
	ErrMissingType struct {
		ID int64
	}
	// ErrUnsupportedType is returned when an identifier's prefix does not map
	// to a known REST sub-resource.
	ErrUnsupportedType struct {
		Prefix string
	}
	ErrNotMovable struct {
		Value string
	}
	ErrInvalidCoordinate struct {
		Reason string
	}
	ErrInsufficientCapacity struct {
		Target string
		Free   int
		Needed int
	}
	ErrUnknownContainerType struct {
		CType string
	}
	// ErrJobFailed is terminal: the server reported FAILED or ABANDONED.
	ErrJobFailed struct {
		Status  string
		Message string
	}
	ErrUnknownJobStatus struct {
		Status string
	}
)

func NewErrHTTP(method, urlPath, msg string, status int) *ErrHTTP {
	return &ErrHTTP{Status: status, Message: msg, Method: method, URLPath: urlPath}
}

func (e *ErrHTTP) Error() string {
	return fmt.Sprintf("%s: %s (%s %s)", http.StatusText(e.Status), e.Message, e.Method, e.URLPath)
}

// Err2HTTPErr returns the underlying *ErrHTTP, or nil for non-HTTP errors
// (connection refused, timeout, and similar transport failures).
func Err2HTTPErr(err error) *ErrHTTP {
	var httpErr *ErrHTTP
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return nil
}

func IsStatusNotFound(err error) bool {
	httpErr := Err2HTTPErr(err)
	return httpErr != nil && httpErr.Status == http.StatusNotFound
}

func NewErrInvalidIdentifier(value string) *ErrInvalidIdentifier {
	return &ErrInvalidIdentifier{Value: value}
}

func (e *ErrInvalidIdentifier) Error() string {
	return fmt.Sprintf("cannot interpret %q as an identifiable Inventory item", e.Value)
}

func NewErrMissingType(id int64) *ErrMissingType { return &ErrMissingType{ID: id} }

func (e *ErrMissingType) Error() string {
	return fmt.Sprintf("identifier %d has no type prefix", e.ID)
}

func NewErrUnsupportedType(prefix string) *ErrUnsupportedType {
	return &ErrUnsupportedType{Prefix: prefix}
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("prefix %q does not name a supported Inventory type", e.Prefix)
}

func NewErrNotMovable(value string) *ErrNotMovable { return &ErrNotMovable{Value: value} }

func (e *ErrNotMovable) Error() string {
	return fmt.Sprintf("cannot move %q - not a movable type", e.Value)
}

func NewErrInvalidCoordinate(format string, a ...any) *ErrInvalidCoordinate {
	return &ErrInvalidCoordinate{Reason: fmt.Sprintf(format, a...)}
}

func (e *ErrInvalidCoordinate) Error() string { return e.Reason }

func NewErrInsufficientCapacity(target string, free, needed int) *ErrInsufficientCapacity {
	return &ErrInsufficientCapacity{Target: target, Free: free, Needed: needed}
}

func (e *ErrInsufficientCapacity) Error() string {
	return fmt.Sprintf("not enough space in %s to store %d item(s) - only %d space(s) free",
		e.Target, e.Needed, e.Free)
}

func NewErrUnknownContainerType(cType string) *ErrUnknownContainerType {
	return &ErrUnknownContainerType{CType: cType}
}

func (e *ErrUnknownContainerType) Error() string {
	if e.CType == "" {
		return "no 'cType' container type entry - is this really a container?"
	}
	return fmt.Sprintf("unsupported container type %q", e.CType)
}

func NewErrJobFailed(status, msg string) *ErrJobFailed {
	return &ErrJobFailed{Status: status, Message: msg}
}

func (e *ErrJobFailed) Error() string {
	return fmt.Sprintf("job terminated with status %s: %s", e.Status, e.Message)
}

func NewErrUnknownJobStatus(status string) *ErrUnknownJobStatus {
	return &ErrUnknownJobStatus{Status: status}
}

func (e *ErrUnknownJobStatus) Error() string {
	return fmt.Sprintf("unknown job status: %q", e.Status)
}
