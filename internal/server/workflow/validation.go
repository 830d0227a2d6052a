package workflow

import (
	"strings"
	"unicode/utf8"
)

const (
	MinTitleLength = 5
	MinScopeLength = 20
	MaxPhotos      = 10

	AppraisalReady = "ready"
)

// Validate recomputes every rule over the whole tree. Rules are global
// because some depend on other fields (price positivity needs a ready
// appraisal).
func Validate(data map[string]any) map[string]string {
	v := map[string]string{}

	for _, spec := range fieldSpecs {
		val, ok := Get(data, spec.Path)
		if !ok || val == nil {
			continue
		}
		if msg := checkKind(spec.Kind, val); msg != "" {
			v[spec.Path] = msg
		}
	}

	if _, bad := v[PathTitle]; !bad && textLen(data, PathTitle) < MinTitleLength {
		v[PathTitle] = "title must be at least 5 characters"
	}
	if _, bad := v[PathScope]; !bad && textLen(data, PathScope) < MinScopeLength {
		v[PathScope] = "scope must be at least 20 characters"
	}
	if photos, ok := Get(data, PathPhotos); ok {
		if list, ok := photos.([]any); ok && len(list) > MaxPhotos {
			v[PathPhotos] = "at most 10 photos can be attached"
		}
	}

	if appraisalReady(data) {
		if _, bad := v[PathSelectedPrice]; !bad {
			price, ok := intAt(data, PathSelectedPrice)
			if !ok || price <= 0 {
				v[PathSelectedPrice] = "price must be positive"
			}
		}
	}

	return v
}

func checkKind(k Kind, val any) string {
	switch k {
	case KindString:
		if _, ok := String(val); !ok {
			return "must be a string"
		}
	case KindInteger:
		if _, ok := Int(val); !ok {
			return "must be a whole number"
		}
	case KindStringList:
		list, ok := val.([]any)
		if !ok {
			return "must be a list of strings"
		}
		for _, item := range list {
			if _, ok := String(item); !ok {
				return "must be a list of strings"
			}
		}
	}
	return ""
}

func textLen(data map[string]any, path string) int {
	return utf8.RuneCountInString(strings.TrimSpace(stringAt(data, path)))
}

func appraisalReady(data map[string]any) bool {
	return stringAt(data, PathAppraisalStatus) == AppraisalReady
}

// AppraisalRecorded reports whether an appraisal has already been stored.
func AppraisalRecorded(data map[string]any) bool {
	return stringAt(data, PathAppraisalStatus) != ""
}
