// Package cmn provides common types shared by the RSpace ELN and Inventory API clients.
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package cmn

import (
	"regexp"
	"strconv"
)

// Inventory global-id prefixes.
const (
	PrefixContainer = "IC"
	PrefixSubSample = "SS"
	PrefixSample    = "SA"
	PrefixTemplate  = "IT"
)

// Inventory record types, as named in bulk-operation records.
const (
	TypeContainer = "CONTAINER"
	TypeSubSample = "SUBSAMPLE"
	TypeSample    = "SAMPLE"
	TypeTemplate  = "TEMPLATE"
)

var (
	globalIDRegex = regexp.MustCompile(`^([A-Z]{2})?(\d+)$`)

	prefixToType = map[string]string{
		PrefixContainer: TypeContainer,
		PrefixSubSample: TypeSubSample,
		PrefixSample:    TypeSample,
		PrefixTemplate:  TypeTemplate,
	}
	prefixToEndpoint = map[string]string{
		PrefixContainer: "containers",
		PrefixSubSample: "subSamples",
		PrefixSample:    "samples",
		PrefixTemplate:  "templates",
	}
)

// ItemRef is implemented by server-response snapshots that carry their own
// identity (numeric id plus, usually, a global id).
type ItemRef interface {
	Identity() (id int64, globalID string)
}

// ItemInfo is the identity header common to all Inventory item snapshots.
// Embed it in wire structs to make them usable wherever an identifier
// is accepted.
type ItemInfo struct {
	ID       int64  `json:"id"`
	GlobalID string `json:"globalId,omitempty"`
	Name     string `json:"name,omitempty"`
}

func (ii *ItemInfo) Identity() (int64, string) { return ii.ID, ii.GlobalID }

// GlobalID is a normalized, prefix-aware reference to an Inventory item.
// The prefix may be unknown when constructed from a bare numeric id; typed
// operations then either fail (strict) or proceed optimistically.
// Immutable once constructed.
type GlobalID struct {
	prefix string
	id     int64
}

// ParseGlobalID normalizes a heterogeneous item reference. Accepted shapes:
//   - int / int64: bare numeric id, type unknown
//   - string matching `([A-Z]{2})?\d+`: optional two-letter prefix + digits
//   - ItemRef (any snapshot embedding ItemInfo): id plus prefix derived from
//     the first two characters of the global id, when present
//   - GlobalID / *GlobalID: returned as is
func ParseGlobalID(value any) (GlobalID, error) {
	switch v := value.(type) {
	case GlobalID:
		return v, nil
	case *GlobalID:
		return *v, nil
	case int:
		return GlobalID{id: int64(v)}, nil
	case int64:
		return GlobalID{id: v}, nil
	case string:
		m := globalIDRegex.FindStringSubmatch(v)
		if m == nil {
			return GlobalID{}, NewErrInvalidIdentifier(v)
		}
		id, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return GlobalID{}, NewErrInvalidIdentifier(v)
		}
		return GlobalID{prefix: m[1], id: id}, nil
	case ItemRef:
		id, gid := v.Identity()
		if id == 0 && gid == "" {
			return GlobalID{}, NewErrInvalidIdentifier("<empty item snapshot>")
		}
		out := GlobalID{id: id}
		if len(gid) >= 2 {
			out.prefix = gid[:2]
		}
		return out, nil
	default:
		return GlobalID{}, NewErrInvalidIdentifier(strconv.Quote(stringify(value)))
	}
}

func stringify(v any) string {
	type stringer interface{ String() string }
	if s, ok := v.(stringer); ok {
		return s.String()
	}
	return "<unidentifiable value>"
}

// ID returns the numeric id.
func (gid GlobalID) ID() int64 { return gid.id }

// HasType reports whether the type prefix is known.
func (gid GlobalID) HasType() bool { return gid.prefix != "" }

func (gid GlobalID) Prefix() string { return gid.prefix }

// AsGlobalID renders the prefixed form, e.g. "SS12345".
func (gid GlobalID) AsGlobalID() (string, error) {
	if !gid.HasType() {
		return "", NewErrMissingType(gid.id)
	}
	return gid.prefix + strconv.FormatInt(gid.id, 10), nil
}

func (gid GlobalID) String() string {
	return gid.prefix + strconv.FormatInt(gid.id, 10)
}

// Type maps the prefix to the record type used in bulk-operation records.
func (gid GlobalID) Type() (string, error) {
	t, ok := prefixToType[gid.prefix]
	if !ok {
		return "", NewErrUnsupportedType(gid.prefix)
	}
	return t, nil
}

// Endpoint maps the prefix to the REST sub-resource for this item type.
func (gid GlobalID) Endpoint() (string, error) {
	ep, ok := prefixToEndpoint[gid.prefix]
	if !ok {
		return "", NewErrUnsupportedType(gid.prefix)
	}
	return ep, nil
}

// IsContainer reports whether this identifier names a container.
// With strict=false an identifier of unknown type passes the check
// (optimistic mode - the server remains the authority).
func (gid GlobalID) IsContainer(strict bool) bool { return gid.check(PrefixContainer, strict) }

func (gid GlobalID) IsSubSample(strict bool) bool { return gid.check(PrefixSubSample, strict) }

// IsMovable reports whether the item may be placed inside a container:
// only containers and subsamples are movable.
func (gid GlobalID) IsMovable(strict bool) bool {
	return gid.IsContainer(strict) || gid.IsSubSample(strict)
}

func (gid GlobalID) check(prefix string, strict bool) bool {
	if !strict && !gid.HasType() {
		return true
	}
	return gid.prefix == prefix
}
