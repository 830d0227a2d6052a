package workflow

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validData() map[string]any {
	return map[string]any{
		"profile": map[string]any{"displayName": "ann"},
		"details": map[string]any{
			"title": "Paint the fence",
			"scope": "Sand and paint about 30 meters of wooden fence.",
		},
		"pricing": map[string]any{"currency": "usd"},
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, Validate(validData()))
}

func TestValidate_DetailsRules(t *testing.T) {
	d := validData()
	_ = Set(d, PathTitle, "abc ")
	_ = Set(d, PathScope, "short")

	v := Validate(d)
	assert.Contains(t, v, PathTitle)
	assert.Contains(t, v, PathScope)
}

func TestValidate_TypeErrors(t *testing.T) {
	d := validData()
	_ = Set(d, PathTitle, json.Number("12345"))
	_ = Set(d, PathPhotos, []any{"a.jpg", json.Number("1")})
	_ = Set(d, PathSelectedPrice, "100")

	v := Validate(d)
	assert.Equal(t, "must be a string", v[PathTitle])
	assert.Equal(t, "must be a list of strings", v[PathPhotos])
	assert.Equal(t, "must be a whole number", v[PathSelectedPrice])
}

func TestValidate_PriceNeedsReadyAppraisal(t *testing.T) {
	d := validData()
	_ = Set(d, PathSelectedPrice, json.Number("0"))
	assert.NotContains(t, Validate(d), PathSelectedPrice)

	_ = Set(d, PathAppraisalStatus, AppraisalReady)
	assert.Equal(t, "price must be positive", Validate(d)[PathSelectedPrice])

	_ = Set(d, PathSelectedPrice, json.Number("15000"))
	assert.NotContains(t, Validate(d), PathSelectedPrice)
}

func TestValidate_TooManyPhotos(t *testing.T) {
	d := validData()
	photos := make([]any, MaxPhotos+1)
	for i := range photos {
		photos[i] = "p.jpg"
	}
	_ = Set(d, PathPhotos, photos)
	assert.Contains(t, Validate(d), PathPhotos)
}
