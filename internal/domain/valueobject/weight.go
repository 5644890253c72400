// Package valueobject defines domain value objects shared across features.
package valueobject

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// WeightUnit represents the unit a weight value is expressed in.
type WeightUnit string

const (
	WeightUnitKg WeightUnit = "kg"
	WeightUnitLb WeightUnit = "lb"
)

// poundsPerKilogram is the conversion factor between kilograms and pounds.
const poundsPerKilogram = 2.20462

// IsValid checks whether the unit is one of the supported weight units.
func (u WeightUnit) IsValid() bool {
	return u == WeightUnitKg || u == WeightUnitLb
}

// OrDefault returns the unit, falling back to kilograms when the unit is
// absent. Historical goal records were written without a unit; they are
// treated as kilograms everywhere.
func (u WeightUnit) OrDefault() WeightUnit {
	if !u.IsValid() {
		return WeightUnitKg
	}
	return u
}

// ConvertWeight converts a weight value between kilograms and pounds,
// rounding the result to one decimal place. Conversion between identical
// units is the identity.
func ConvertWeight(value float64, from, to WeightUnit) float64 {
	if from.OrDefault() == to.OrDefault() {
		return value
	}

	d := decimal.NewFromFloat(value)
	factor := decimal.NewFromFloat(poundsPerKilogram)

	var converted decimal.Decimal
	if from.OrDefault() == WeightUnitKg {
		converted = d.Mul(factor)
	} else {
		converted = d.Div(factor)
	}

	result, _ := converted.Round(1).Float64()
	return result
}

// ConvertWeightString converts a weight value expressed as a string,
// returning the result formatted with one decimal place. Unparseable input
// is logged and returned unchanged; this is a defensive fallback for dirty
// historical data, not a contract callers may rely on.
func ConvertWeightString(value string, from, to WeightUnit) string {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		slog.Warn("Unparseable weight value, returning input unchanged", "value", value)
		return value
	}
	return decimal.NewFromFloat(ConvertWeight(parsed, from, to)).StringFixed(1)
}

// PlausibleRange is the clamp policy applied to weight values before they
// are persisted or displayed. Values outside the plausible range are
// replaced with a fixed reference weight rather than rejected; availability
// is deliberately favored over strict correctness. The policy is a named
// object so a stricter reject-and-prompt policy can be swapped in without
// touching call sites.
type PlausibleRange struct {
	MaxKg       float64
	MaxLb       float64
	ReferenceKg float64
	ReferenceLb float64
}

// DefaultPlausibleRange returns the plausible-range policy used across the
// application.
func DefaultPlausibleRange() PlausibleRange {
	return PlausibleRange{
		MaxKg:       300,
		MaxLb:       700,
		ReferenceKg: 70,
		ReferenceLb: 154,
	}
}

// Max returns the maximum plausible weight for the given unit.
func (p PlausibleRange) Max(unit WeightUnit) float64 {
	if unit.OrDefault() == WeightUnitLb {
		return p.MaxLb
	}
	return p.MaxKg
}

// Reference returns the fallback reference weight for the given unit.
func (p PlausibleRange) Reference(unit WeightUnit) float64 {
	if unit.OrDefault() == WeightUnitLb {
		return p.ReferenceLb
	}
	return p.ReferenceKg
}

// IsPlausible reports whether the value lies within the plausible range for
// the given unit.
func (p PlausibleRange) IsPlausible(value float64, unit WeightUnit) bool {
	return value > 0 && value <= p.Max(unit)
}

// Clamp returns the value unchanged when plausible, otherwise the reference
// weight for the unit.
func (p PlausibleRange) Clamp(value float64, unit WeightUnit) float64 {
	if p.IsPlausible(value, unit) {
		return value
	}
	return p.Reference(unit)
}
