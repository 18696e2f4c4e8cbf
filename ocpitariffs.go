// Package ocpitariffs prices OCPI 2.2.1 (and 2.1.1, via the v211
// compatibility adapter) charge detail records against their tariffs,
// with a linter and normalizer for the tariffs themselves.
//
// Basic usage:
//
//	report, err := ocpitariffs.NewPricer(cdr).DetectTimeZone(true).BuildReport()
//	if err != nil {
//		log.Fatal(err)
//	}
//	// use report.TotalCost, report.Periods, ...
package ocpitariffs

import (
	"github.com/tandemdrive/ocpi-tariffs/explain"
	"github.com/tandemdrive/ocpi-tariffs/lint"
	"github.com/tandemdrive/ocpi-tariffs/normalize"
	"github.com/tandemdrive/ocpi-tariffs/ocpi"
	"github.com/tandemdrive/ocpi-tariffs/ocpi/v211"
	"github.com/tandemdrive/ocpi-tariffs/pricer"
)

// Re-export the wire types and the pricing entry point for easier access
// without importing every subpackage directly.
type (
	Cdr    = ocpi.Cdr
	Tariff = ocpi.Tariff

	Pricer = pricer.Pricer
	Report = pricer.Report

	CountryZoneResolver = pricer.CountryZoneResolver

	LintWarning = lint.Warning

	Explain = explain.Explain
)

// Pricer errors, comparable with errors.Is.
var (
	ErrNoValidTariff   = pricer.ErrNoValidTariff
	ErrNumericOverflow = pricer.ErrNumericOverflow
	ErrTimeZoneMissing = pricer.ErrTimeZoneMissing
	ErrTimeZoneInvalid = pricer.ErrTimeZoneInvalid
)

// NewPricer builds a Pricer that prices cdr against its own embedded
// tariffs. See Pricer's builder methods to override tariffs, force a
// time zone, or enable country-code zone detection.
func NewPricer(cdr Cdr) Pricer {
	return pricer.New(cdr)
}

// Lint analyzes a tariff in isolation and reports redundant elements,
// redundant components, and non-exhaustive dimensions.
func Lint(t Tariff) []LintWarning {
	return lint.Lint(t, nil)
}

// Normalize strips everything Lint flags from t: redundant components,
// redundant elements, and any element left with no components.
func Normalize(t Tariff) Tariff {
	return normalize.Normalize(t, nil)
}

// ExplainTariff renders t's elements and restrictions as human-readable
// strings.
func ExplainTariff(t Tariff) Explain {
	return explain.Tariff(t)
}

// ConvertCdrV211 adapts an OCPI 2.1.1 CDR document into the 2.2.1 shape
// this module prices: StopDateTime becomes EndDateTime, the bare Money
// total cost becomes a Price with InclVat unset, and every Flat CDR
// dimension is dropped as redundant with the tariff-derived flat fee.
func ConvertCdrV211(cdr v211.Cdr) Cdr {
	return cdr.ToV221()
}
