package booking

import (
	"crewcal/internal/pkg/errs"
)

// Money is an amount in cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) MulDays(days int) Money {
	return Money{cents: m.cents * int64(days)}
}

// RateType distinguishes per-day pricing from a flat project price.
type RateType string

const (
	RateDaily RateType = "daily"
	RateFlat  RateType = "flat"
)

func (t RateType) IsValid() bool {
	return t == RateDaily || t == RateFlat
}

// Rate carries the pricing agreed at request time. Exactly one of the two
// amounts is meaningful depending on the type.
type Rate struct {
	rateType RateType
	dayRate  Money
	flatRate Money
}

func NewDailyRate(dayRate Money) (Rate, error) {
	if dayRate.Cents() <= 0 {
		return Rate{}, errs.Mark(errs.New("day rate must be positive"), errs.ErrInvalidRate)
	}
	return Rate{rateType: RateDaily, dayRate: dayRate}, nil
}

func NewFlatRate(flatRate Money) (Rate, error) {
	if flatRate.Cents() <= 0 {
		return Rate{}, errs.Mark(errs.New("flat rate must be positive"), errs.ErrInvalidRate)
	}
	return Rate{rateType: RateFlat, flatRate: flatRate}, nil
}

func ReconstructRate(rateType RateType, dayRate, flatRate Money) Rate {
	return Rate{rateType: rateType, dayRate: dayRate, flatRate: flatRate}
}

func (r Rate) Type() RateType  { return r.rateType }
func (r Rate) DayRate() Money  { return r.dayRate }
func (r Rate) FlatRate() Money { return r.flatRate }

// Total computes the booking cost for the given number of days. A flat rate
// is independent of the day count.
func (r Rate) Total(days int) Money {
	if r.rateType == RateFlat {
		return r.flatRate
	}
	return r.dayRate.MulDays(days)
}
