// Package workflow holds the pure rules of the posting wizard: which draft
// paths exist, how a field write is applied, what is valid, and which step
// transitions are allowed. Nothing here touches storage.
package workflow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/dmitrijs2005/jobwizard/internal/common"
)

// Kind is the JSON shape a path is expected to hold.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindStringList
)

// FieldSpec describes one addressable leaf of the draft data tree.
type FieldSpec struct {
	Path string
	Kind Kind
	// Writable paths may be set through SaveField. The rest are owned by
	// server-side actions.
	Writable bool
}

const (
	PathDisplayName       = "profile.displayName"
	PathPhone             = "profile.phone"
	PathTitle             = "details.title"
	PathScope             = "details.scope"
	PathCategory          = "details.category"
	PathLocation          = "details.location"
	PathPhotos            = "details.photos"
	PathSelectedPrice     = "pricing.selectedPriceCents"
	PathCurrency          = "pricing.currency"
	PathAppraisalStatus   = "pricing.appraisal.status"
	PathSuggestedMinCents = "pricing.appraisal.suggestedMinCents"
	PathSuggestedMaxCents = "pricing.appraisal.suggestedMaxCents"
	PathAppraisedAt       = "pricing.appraisal.appraisedAt"
)

var fieldSpecs = []FieldSpec{
	{Path: PathDisplayName, Kind: KindString, Writable: true},
	{Path: PathPhone, Kind: KindString, Writable: true},
	{Path: PathTitle, Kind: KindString, Writable: true},
	{Path: PathScope, Kind: KindString, Writable: true},
	{Path: PathCategory, Kind: KindString, Writable: true},
	{Path: PathLocation, Kind: KindString, Writable: true},
	{Path: PathPhotos, Kind: KindStringList, Writable: true},
	{Path: PathSelectedPrice, Kind: KindInteger, Writable: true},
	{Path: PathCurrency, Kind: KindString},
	{Path: PathAppraisalStatus, Kind: KindString},
	{Path: PathSuggestedMinCents, Kind: KindInteger},
	{Path: PathSuggestedMaxCents, Kind: KindInteger},
	{Path: PathAppraisedAt, Kind: KindString},
}

var specByPath = func() map[string]FieldSpec {
	m := make(map[string]FieldSpec, len(fieldSpecs))
	for _, s := range fieldSpecs {
		m[s.Path] = s
	}
	return m
}()

// Fields returns the allow-list in declaration order.
func Fields() []FieldSpec {
	out := make([]FieldSpec, len(fieldSpecs))
	copy(out, fieldSpecs)
	return out
}

// LookupField returns the spec for path.
func LookupField(path string) (FieldSpec, bool) {
	s, ok := specByPath[path]
	return s, ok
}

// CheckWritable rejects unknown and server-owned paths with ErrInvalidFieldKey.
func CheckWritable(path string) error {
	s, ok := specByPath[path]
	if !ok {
		return fmt.Errorf("%w: %q is not a draft field", common.ErrInvalidFieldKey, path)
	}
	if !s.Writable {
		return fmt.Errorf("%w: %q is read-only", common.ErrInvalidFieldKey, path)
	}
	return nil
}

// IsPricingPath reports whether path belongs to the pricing section.
func IsPricingPath(path string) bool {
	return strings.HasPrefix(path, "pricing.")
}

// DecodeValue parses a raw JSON value without coercion. Numbers are kept
// as json.Number so integers survive storage round trips exactly.
func DecodeValue(raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%w: value is required", common.ErrInvalidRequest)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: value is not valid JSON: %v", common.ErrInvalidRequest, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: value must be a single JSON document", common.ErrInvalidRequest)
	}
	return v, nil
}

// Get reads the value at a dot path.
func Get(data map[string]any, path string) (any, bool) {
	segs := strings.Split(path, ".")
	var cur any = data
	for _, seg := range segs {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set writes value at a dot path, creating intermediate objects. It fails
// when an intermediate segment already holds a non-object value.
func Set(data map[string]any, path string, value any) error {
	segs := strings.Split(path, ".")
	cur := data
	for i, seg := range segs[:len(segs)-1] {
		next, ok := cur[seg]
		if !ok || next == nil {
			child := map[string]any{}
			cur[seg] = child
			cur = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q is not an object", common.ErrInvalidFieldKey, strings.Join(segs[:i+1], "."))
		}
		cur = child
	}
	cur[segs[len(segs)-1]] = value
	return nil
}

// Int converts a stored value to int64 when it is an exact integer.
// Strings are never converted.
func Int(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

// String returns v when it is a JSON string.
func String(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// Number wraps an integer the same way DecodeValue would have produced it.
func Number(i int64) json.Number {
	return json.Number(fmt.Sprintf("%d", i))
}

func stringAt(data map[string]any, path string) string {
	v, ok := Get(data, path)
	if !ok {
		return ""
	}
	s, _ := String(v)
	return s
}

func intAt(data map[string]any, path string) (int64, bool) {
	v, ok := Get(data, path)
	if !ok {
		return 0, false
	}
	return Int(v)
}
