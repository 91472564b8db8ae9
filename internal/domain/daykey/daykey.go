// Package daykey models calendar days as timezone-free YYYY-MM-DD keys.
// All occupancy and availability decisions operate on these keys, never on
// wall-clock instants.
package daykey

import (
	"sort"
	"time"

	"crewcal/internal/pkg/errs"
)

const Format = "2006-01-02"

// Key is a single calendar day. Keys compare lexically, which matches
// chronological order for the fixed format.
type Key string

func New(s string) (Key, error) {
	t, err := time.Parse(Format, s)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "parse day key"), errs.ErrInvalidDayKey)
	}
	// Reject normalized-but-different inputs such as "2025-2-1".
	if t.Format(Format) != s {
		return "", errs.Mark(errs.New("day key not in YYYY-MM-DD form: "+s), errs.ErrInvalidDayKey)
	}
	return Key(s), nil
}

func FromTime(t time.Time) Key {
	return Key(t.Format(Format))
}

func (k Key) String() string {
	return string(k)
}

func (k Key) Time() time.Time {
	t, _ := time.Parse(Format, string(k))
	return t
}

func (k Key) Before(other Key) bool {
	return k < other
}

// Next returns the following calendar day.
func (k Key) Next() Key {
	return FromTime(k.Time().AddDate(0, 0, 1))
}

// Set is a sorted, de-duplicated collection of day keys.
type Set []Key

// NewSet validates every raw key, de-duplicates and sorts. An empty input is
// rejected: a booking or proposal without dates is meaningless.
func NewSet(raw []string) (Set, error) {
	if len(raw) == 0 {
		return nil, errs.ErrEmptyDates
	}
	seen := make(map[Key]struct{}, len(raw))
	set := make(Set, 0, len(raw))
	for _, s := range raw {
		k, err := New(s)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		set = append(set, k)
	}
	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
	return set, nil
}

func (s Set) Contains(k Key) bool {
	for _, d := range s {
		if d == k {
			return true
		}
	}
	return false
}

func (s Set) Intersects(other Set) bool {
	for _, d := range s {
		if other.Contains(d) {
			return true
		}
	}
	return false
}

func (s Set) Intersection(other Set) Set {
	var out Set
	for _, d := range s {
		if other.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}

// AnyBefore reports whether any day in the set falls before the given day.
func (s Set) AnyBefore(day Key) bool {
	for _, d := range s {
		if d.Before(day) {
			return true
		}
	}
	return false
}

func (s Set) Strings() []string {
	out := make([]string, len(s))
	for i, d := range s {
		out[i] = string(d)
	}
	return out
}

func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	copy(out, s)
	return out
}

// Range enumerates all days from from to to inclusive. Returns an error when
// to precedes from.
func Range(from, to Key) (Set, error) {
	if to.Before(from) {
		return nil, errs.Mark(errs.New("range end precedes start"), errs.ErrInvalidDayKey)
	}
	var out Set
	for d := from; !to.Before(d); d = d.Next() {
		out = append(out, d)
	}
	return out, nil
}
