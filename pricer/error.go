package pricer

import "github.com/tandemdrive/ocpi-tariffs/ocpierr"

// Error is the pricer's closed error enum. See ocpierr for the
// Kind/Is/Unwrap machinery; this package re-exports it under the name the
// pricer API surface documents.
type Error = ocpierr.Error

// Sentinel errors, comparable with errors.Is.
var (
	ErrNoValidTariff   = ocpierr.ErrNoValidTariff
	ErrNumericOverflow = ocpierr.ErrNumericOverflow
	ErrTimeZoneMissing = ocpierr.ErrTimeZoneMissing
	ErrTimeZoneInvalid = ocpierr.ErrTimeZoneInvalid
)

// ocpierrWrapInvalid wraps the underlying time.LoadLocation error while
// still satisfying errors.Is(err, ErrTimeZoneInvalid).
func ocpierrWrapInvalid(cause error) error {
	return ocpierr.Wrap(ocpierr.TimeZoneInvalid, cause)
}
