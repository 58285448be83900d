package shared

import "time"

// ParseDate accepts RFC3339 or YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

// ScoringDate resolves the "today" a scoring run is pinned to: the asOf
// query value when given, otherwise the wall clock. Pinning the date keeps
// repeated runs over the same snapshot bit-identical.
func ScoringDate(asOf string, now func() time.Time) (time.Time, error) {
	if asOf == "" {
		return now(), nil
	}
	parsed, err := ParseDate(asOf)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}
