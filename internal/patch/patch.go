// Package patch computes RFC 6902 JSON patches between two snapshots of the
// same entity.
package patch

import (
	"bytes"
	"encoding/json"
	"fmt"

	apperrors "metadata-catalog/internal/errors"

	"github.com/wI2L/jsondiff"
)

// Operation kinds produced by Compare.
const (
	OpAdd     = "add"
	OpRemove  = "remove"
	OpReplace = "replace"
)

// Operation is one step of a JSON patch.
type Operation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// MarshalJSON drops the value of remove operations and keeps an explicit
// null for add/replace.
func (o Operation) MarshalJSON() ([]byte, error) {
	if o.Op == OpRemove {
		return json.Marshal(struct {
			Op   string `json:"op"`
			Path string `json:"path"`
		}{o.Op, o.Path})
	}
	type plain Operation
	return json.Marshal(plain(o))
}

// Patch is an ordered list of operations.
type Patch []Operation

// IsEmpty reports whether applying p would change nothing.
func (p Patch) IsEmpty() bool {
	return len(p) == 0
}

// MarshalJSON encodes an empty patch as [] rather than null.
func (p Patch) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Operation(p))
}

// Entity is anything with a stable identity.
type Entity interface {
	EntityID() string
}

// CompareEntities diffs two snapshots of one entity. Snapshots of different
// entities are refused.
func CompareEntities[E Entity](prev, next E) (Patch, error) {
	if prev.EntityID() != next.EntityID() {
		return nil, apperrors.ErrIdentityMismatch
	}
	return Compare(prev, next)
}

// Compare returns the operations turning the JSON form of prev into the JSON
// form of next. Object keys are visited in sorted order, surplus array
// elements are removed before the remaining indexes are compared and appended
// elements target "/-". Numbers are compared by their literal text.
func Compare(prev, next any) (Patch, error) {
	ops, err := jsondiff.Compare(prev, next, jsondiff.UnmarshalFunc(unmarshalNumbers))
	if err != nil {
		return nil, fmt.Errorf("failed to diff snapshots: %w", err)
	}
	if len(ops) == 0 {
		return nil, nil
	}

	out := make(Patch, 0, len(ops))
	for _, op := range ops {
		out = append(out, Operation{Op: op.Type, Path: op.Path, Value: op.Value})
	}
	return out, nil
}

// unmarshalNumbers keeps numbers as json.Number so large integers survive
// the round trip.
func unmarshalNumbers(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
