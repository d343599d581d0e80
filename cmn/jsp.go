// Package cmn provides common types shared by the RSpace ELN and Inventory API clients.
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package cmn

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// JSON is used to marshal/unmarshal all API messages.
var JSON jsoniter.API

func init() {
	JSON = jsoniter.Config{
		EscapeHTML:             false,
		ValidateJsonRawMessage: false,
		SortMapKeys:            true,
	}.Froze()
}

// MustMarshal marshals v and panics on error. Request bodies are built from
// values constructed by this module, so a marshaling failure is a bug.
func MustMarshal(v any) []byte {
	b, err := JSON.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

// DrainReader discards the remaining bytes so the underlying HTTP
// connection can be reused.
func DrainReader(r io.Reader) {
	if r == nil {
		return
	}
	_, _ = io.Copy(io.Discard, r)
}
