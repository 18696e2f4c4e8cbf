// Package restriction evaluates OCPI tariff-element restrictions against a
// charge session's running state. A restriction can be checked three ways:
// at the start instant of a period (exclusive bounds), at the end instant
// (inclusive bounds, since the end instant is shared with the next
// period's start), or against the period's constant properties.
package restriction

import (
	"github.com/tandemdrive/ocpi-tariffs/ocpi"
	"github.com/tandemdrive/ocpi-tariffs/session"
	"github.com/tandemdrive/ocpi-tariffs/types"
)

// Kind tags which field of a Restriction is populated.
type Kind int

const (
	KindStartTime Kind = iota
	KindEndTime
	KindWrappingTime
	KindStartDate
	KindEndDate
	KindMinKwh
	KindMaxKwh
	KindMinCurrent
	KindMaxCurrent
	KindMinPower
	KindMaxPower
	KindMinDuration
	KindMaxDuration
	KindDayOfWeek
	KindReservation
)

// Restriction is one evaluable constraint extracted from an
// ocpi.TariffRestriction. WrappingTime represents a start/end time pair
// that wraps past midnight (end before start).
type Restriction struct {
	Kind Kind

	StartTime types.LocalTime
	EndTime   types.LocalTime

	StartDate types.LocalDate
	EndDate   types.LocalDate

	MinKwh types.Kwh
	MaxKwh types.Kwh

	MinCurrent types.Ampere
	MaxCurrent types.Ampere

	MinPower types.Kw
	MaxPower types.Kw

	MinDuration types.HoursDecimal
	MaxDuration types.HoursDecimal

	DayOfWeek map[types.DayOfWeek]struct{}
}

// Collect decomposes an ocpi.TariffRestriction into its individual
// evaluable Restrictions. A start/end time pair that wraps past midnight
// (end < start) collapses into a single WrappingTime restriction rather
// than two independent bounds.
func Collect(r *ocpi.TariffRestriction) []Restriction {
	var collected []Restriction

	switch {
	case r.StartTime != nil && r.EndTime != nil && r.EndTime.Before(*r.StartTime):
		collected = append(collected, Restriction{
			Kind:      KindWrappingTime,
			StartTime: *r.StartTime,
			EndTime:   *r.EndTime,
		})
	default:
		if r.StartTime != nil {
			collected = append(collected, Restriction{Kind: KindStartTime, StartTime: *r.StartTime})
		}
		if r.EndTime != nil {
			collected = append(collected, Restriction{Kind: KindEndTime, EndTime: *r.EndTime})
		}
	}

	if r.StartDate != nil {
		collected = append(collected, Restriction{Kind: KindStartDate, StartDate: *r.StartDate})
	}
	if r.EndDate != nil {
		collected = append(collected, Restriction{Kind: KindEndDate, EndDate: *r.EndDate})
	}
	if r.MinKwh != nil {
		collected = append(collected, Restriction{Kind: KindMinKwh, MinKwh: *r.MinKwh})
	}
	if r.MaxKwh != nil {
		collected = append(collected, Restriction{Kind: KindMaxKwh, MaxKwh: *r.MaxKwh})
	}
	if r.MinCurrent != nil {
		collected = append(collected, Restriction{Kind: KindMinCurrent, MinCurrent: *r.MinCurrent})
	}
	if r.MaxCurrent != nil {
		collected = append(collected, Restriction{Kind: KindMaxCurrent, MaxCurrent: *r.MaxCurrent})
	}
	if r.MinPower != nil {
		collected = append(collected, Restriction{Kind: KindMinPower, MinPower: *r.MinPower})
	}
	if r.MaxPower != nil {
		collected = append(collected, Restriction{Kind: KindMaxPower, MaxPower: *r.MaxPower})
	}
	if r.MinDuration != nil {
		collected = append(collected, Restriction{Kind: KindMinDuration, MinDuration: types.HoursFromDuration(r.MinDuration.Duration())})
	}
	if r.MaxDuration != nil {
		collected = append(collected, Restriction{Kind: KindMaxDuration, MaxDuration: types.HoursFromDuration(r.MaxDuration.Duration())})
	}
	if len(r.DayOfWeek) > 0 {
		days := make(map[types.DayOfWeek]struct{}, len(r.DayOfWeek))
		for _, d := range r.DayOfWeek {
			days[d] = struct{}{}
		}
		collected = append(collected, Restriction{Kind: KindDayOfWeek, DayOfWeek: days})
	}
	if r.Reservation != nil {
		collected = append(collected, Restriction{Kind: KindReservation})
	}

	return collected
}

// InstantValidityExclusive reports whether the restriction holds at
// instant, treating time-based bounds as exclusive at their upper edge.
// Used to test a period's start instant.
func (r Restriction) InstantValidityExclusive(instant session.InstantData) bool {
	switch r.Kind {
	case KindWrappingTime:
		t := instant.LocalTime()
		return t.AfterOrEqual(r.StartTime) || t.Before(r.EndTime)
	case KindStartTime:
		return instant.LocalTime().AfterOrEqual(r.StartTime)
	case KindEndTime:
		return instant.LocalTime().Before(r.EndTime)
	case KindStartDate:
		d := instant.LocalDate()
		return d == r.StartDate || r.StartDate.Before(d)
	case KindEndDate:
		return instant.LocalDate().Before(r.EndDate)
	case KindMinKwh:
		return instant.TotalEnergy.Cmp(r.MinKwh) >= 0
	case KindMaxKwh:
		return instant.TotalEnergy.Cmp(r.MaxKwh) < 0
	case KindMinDuration:
		return instant.TotalDuration.Cmp(r.MinDuration) >= 0
	case KindMaxDuration:
		return instant.TotalDuration.Cmp(r.MaxDuration) < 0
	case KindDayOfWeek:
		_, ok := r.DayOfWeek[instant.LocalDayOfWeek()]
		return ok
	default:
		return true
	}
}

// InstantValidityInclusive reports whether the restriction holds at
// instant, treating time-based bounds as inclusive at their upper edge.
// Used to test a period's end instant, which is shared with the next
// period's start — so a restriction that merely bounds the start of a
// window (StartTime, StartDate) is vacuously true here.
func (r Restriction) InstantValidityInclusive(instant session.InstantData) bool {
	switch r.Kind {
	case KindWrappingTime:
		t := instant.LocalTime()
		return t.AfterOrEqual(r.StartTime) || t.Before(r.EndTime)
	case KindEndTime:
		return instant.LocalTime().BeforeOrEqual(r.EndTime)
	case KindEndDate:
		// The end date of this period is derived from the start date of the
		// next period, so an exclusive comparison isn't right here; but the
		// period still must not end in the middle of r.EndDate.
		date := instant.LocalDate()
		isBeforeEndDate := date.Before(r.EndDate)
		isOnEndDate := date == r.EndDate
		isAtMidnight := instant.LocalTime().SecondsSinceMidnight() == 0
		return isBeforeEndDate || (isOnEndDate && isAtMidnight)
	case KindMinKwh:
		return instant.TotalEnergy.Cmp(r.MinKwh) >= 0
	case KindMaxKwh:
		return instant.TotalEnergy.Cmp(r.MaxKwh) < 0
	case KindMinDuration:
		return instant.TotalDuration.Cmp(r.MinDuration) >= 0
	case KindMaxDuration:
		return instant.TotalDuration.Cmp(r.MaxDuration) < 0
	case KindDayOfWeek:
		weekday := instant.LocalDayOfWeek()
		_, includesWeekday := r.DayOfWeek[weekday]
		_, includesDayBefore := r.DayOfWeek[weekday.Pred()]
		isAtMidnight := instant.LocalTime().SecondsSinceMidnight() == 0
		return includesWeekday || (includesDayBefore && isAtMidnight)
	default:
		return true
	}
}

// PeriodValidity reports whether the restriction holds for a period's
// constant properties. A min/max current or power restriction that the
// period carries no reading for is vacuously true — absence of a reading
// is not evidence it was out of bounds. Reservation restrictions are
// likewise vacuously true: the session model carries no notion of a
// reservation window distinct from the charge itself.
func (r Restriction) PeriodValidity(data session.PeriodData) bool {
	switch r.Kind {
	case KindMinCurrent:
		if data.MinCurrent == nil {
			return true
		}
		return data.MinCurrent.Cmp(r.MinCurrent) >= 0
	case KindMaxCurrent:
		if data.MaxCurrent == nil {
			return true
		}
		return data.MaxCurrent.Cmp(r.MaxCurrent) < 0
	case KindMinPower:
		if data.MinPower == nil {
			return true
		}
		return data.MinPower.Cmp(r.MinPower) >= 0
	case KindMaxPower:
		if data.MaxPower == nil {
			return true
		}
		return data.MaxPower.Cmp(r.MaxPower) < 0
	default:
		return true
	}
}
