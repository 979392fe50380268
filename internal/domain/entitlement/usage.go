package entitlement

import "sort"

// UsageSummary aggregates access by business calendar. Days and Months are sorted sets.
type UsageSummary struct {
	Days         []string
	Months       []string
	TotalActions int64
}

func NewUsageSummary() UsageSummary {
	return UsageSummary{Days: []string{}, Months: []string{}}
}

// Record adds one action and inserts the day and month keys if they are new.
func (u *UsageSummary) Record(dayKey, monthKey string) {
	u.Days = insertSorted(u.Days, dayKey)
	u.Months = insertSorted(u.Months, monthKey)
	u.TotalActions++
}

func (u UsageSummary) DistinctDays() int   { return len(u.Days) }
func (u UsageSummary) DistinctMonths() int { return len(u.Months) }

func insertSorted(set []string, key string) []string {
	if key == "" {
		return set
	}
	i := sort.SearchStrings(set, key)
	if i < len(set) && set[i] == key {
		return set
	}
	set = append(set, "")
	copy(set[i+1:], set[i:])
	set[i] = key
	return set
}
