// Package paging holds the cursor paging wire format shared by the catalog
// service and its clients.
package paging

import (
	"encoding/base64"
	"encoding/json"

	apperrors "metadata-catalog/internal/errors"
)

// Paging is the cursor block returned with every list response. A missing
// token means there is no page in that direction.
type Paging struct {
	Before *string `json:"before,omitempty"`
	After  *string `json:"after,omitempty"`
	Total  int64   `json:"total"`
}

// Direction selects which cursor of a Paging to follow.
type Direction string

const (
	Before Direction = "before"
	After  Direction = "after"
)

// Valid reports whether d names a known direction.
func (d Direction) Valid() bool {
	return d == Before || d == After
}

// Token returns the cursor stored for d, or "" when there is none.
func (p Paging) Token(d Direction) string {
	switch d {
	case Before:
		if p.Before != nil {
			return *p.Before
		}
	case After:
		if p.After != nil {
			return *p.After
		}
	}
	return ""
}

// List is the envelope for paged collections.
type List[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}

// Cursor is a decoded paging position. Exactly one of Before/After is set
// for a cursor request; both empty means the first page.
type Cursor struct {
	Before string
	After  string
}

// IsFirstPage reports whether no cursor was supplied.
func (c Cursor) IsFirstPage() bool {
	return c.Before == "" && c.After == ""
}

// cursorPayload is the JSON body hidden inside an opaque token.
type cursorPayload struct {
	Key string `json:"k"`
}

// Encode turns a boundary sort key into an opaque token.
func Encode(key string) string {
	b, _ := json.Marshal(cursorPayload{Key: key})
	return base64.RawURLEncoding.EncodeToString(b)
}

// EncodePtr is Encode returning a pointer, convenient for Paging fields.
func EncodePtr(key string) *string {
	s := Encode(key)
	return &s
}

// Decode recovers the boundary sort key from a token produced by Encode.
func Decode(token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", apperrors.ErrInvalidCursor
	}
	var p cursorPayload
	if err := json.Unmarshal(raw, &p); err != nil || p.Key == "" {
		return "", apperrors.ErrInvalidCursor
	}
	return p.Key, nil
}

// ParseCursor validates raw before/after query values and decodes them.
func ParseCursor(before, after string) (Cursor, error) {
	if before != "" && after != "" {
		return Cursor{}, apperrors.ErrConflictingCursors
	}
	var c Cursor
	var err error
	if before != "" {
		if c.Before, err = Decode(before); err != nil {
			return Cursor{}, err
		}
	}
	if after != "" {
		if c.After, err = Decode(after); err != nil {
			return Cursor{}, err
		}
	}
	return c, nil
}

// Build derives the cursors around a page of rows read with c. firstKey and
// lastKey are the sort keys of the first and last row, count the row count and
// hasMore whether rows remain past the page in the direction of travel.
func Build(c Cursor, firstKey, lastKey string, count int, hasMore bool, total int64) Paging {
	p := Paging{Total: total}
	if count == 0 {
		return p
	}
	switch {
	case c.Before != "":
		p.After = EncodePtr(lastKey)
		if hasMore {
			p.Before = EncodePtr(firstKey)
		}
	case c.After != "":
		p.Before = EncodePtr(firstKey)
		if hasMore {
			p.After = EncodePtr(lastKey)
		}
	default:
		if hasMore {
			p.After = EncodePtr(lastKey)
		}
	}
	return p
}

// Limits bounds the page size a caller may ask for.
type Limits struct {
	Default int
	Max     int
}

// Clamp maps a requested limit into [1, Max], using Default when none was asked.
func (l Limits) Clamp(limit int) int {
	if limit < 1 {
		return l.Default
	}
	if limit > l.Max {
		return l.Max
	}
	return limit
}
