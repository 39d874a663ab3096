package extract

import "time"

const (
	// HeaderSentinelYear marks an absent shortcut header or FILETIME value.
	HeaderSentinelYear = 1601
	// DestListSentinelYear marks an absent DestList or tracker value.
	DestListSentinelYear = 1582
)

// Normalize returns t unless it carries the given sentinel year or is the
// zero time, in which case the value is absent.
func Normalize(t time.Time, sentinelYear int) (time.Time, bool) {
	if t.IsZero() || t.UTC().Year() == sentinelYear {
		return time.Time{}, false
	}
	return t, true
}

// NormalizePtr is Normalize for optional timestamps.
func NormalizePtr(t *time.Time, sentinelYear int) (time.Time, bool) {
	if t == nil {
		return time.Time{}, false
	}
	return Normalize(*t, sentinelYear)
}

// Display renders a normalized timestamp in UTC. Absent values render empty.
func Display(t time.Time, ok bool, layout string) string {
	if !ok {
		return ""
	}
	return t.UTC().Format(layout)
}

// Timestamp normalizes and renders t in one step.
func Timestamp(t time.Time, sentinelYear int, layout string) string {
	v, ok := Normalize(t, sentinelYear)
	return Display(v, ok, layout)
}
