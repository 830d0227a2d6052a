// Package appraisal suggests a price range for a job.
package appraisal

import (
	"context"
	"strings"
	"unicode/utf8"
)

// Request carries the job details the estimate is based on.
type Request struct {
	Title    string
	Scope    string
	Category string
	Currency string
}

// Range is a suggested price band in minor units.
type Range struct {
	MinCents int64
	MaxCents int64
}

type Estimator interface {
	Estimate(ctx context.Context, req Request) (Range, error)
}

var categoryBase = map[string]int64{
	"plumbing":   12000,
	"electrical": 15000,
	"cleaning":   6000,
	"moving":     20000,
	"painting":   10000,
	"gardening":  7000,
}

const (
	defaultBase = 8000
	// Every started 100 characters of scope adds this much to the base.
	scopeStep = 2500
	maxSteps  = 8
)

// RuleEstimator prices a job from its category and the size of its scope.
type RuleEstimator struct{}

func NewRuleEstimator() *RuleEstimator { return &RuleEstimator{} }

func (RuleEstimator) Estimate(ctx context.Context, req Request) (Range, error) {
	if err := ctx.Err(); err != nil {
		return Range{}, err
	}

	base, ok := categoryBase[strings.ToLower(strings.TrimSpace(req.Category))]
	if !ok {
		base = defaultBase
	}

	steps := int64(utf8.RuneCountInString(strings.TrimSpace(req.Scope))+99) / 100
	if steps > maxSteps {
		steps = maxSteps
	}
	mid := base + steps*scopeStep

	// +-20% around the midpoint, rounded to whole currency units.
	return Range{
		MinCents: roundUnits(mid * 8 / 10),
		MaxCents: roundUnits(mid * 12 / 10),
	}, nil
}

func roundUnits(cents int64) int64 {
	return (cents + 50) / 100 * 100
}
