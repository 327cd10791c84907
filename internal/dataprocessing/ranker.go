package dataprocessing

import (
	"sort"

	"lpreport/pkg/contracts/domain"
)

// MetricFunc extracts the ranking metric from a record.
type MetricFunc func(domain.PageRecord) float64

// BySessions ranks records by their session count.
var BySessions MetricFunc = func(r domain.PageRecord) float64 {
	return r.Sessions
}

// TopPages selects, for each (program, channel) group, the topN records with
// the largest metric value. Ties keep original row order (stable selection)
// and groups with fewer than topN records contribute all of them. Groups are
// emitted in first-appearance order, which keeps the output deterministic
// for identical inputs.
func TopPages(records []domain.PageRecord, topN int, metric MetricFunc) []domain.PageRecord {
	if topN <= 0 {
		return []domain.PageRecord{}
	}

	type groupKey struct {
		program string
		channel string
	}

	groups := make(map[groupKey][]domain.PageRecord)
	var order []groupKey
	for _, rec := range records {
		key := groupKey{program: rec.Program, channel: rec.Channel}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], rec)
	}

	result := make([]domain.PageRecord, 0, len(records))
	for _, key := range order {
		group := groups[key]
		sort.SliceStable(group, func(i, j int) bool {
			return metric(group[i]) > metric(group[j])
		})
		n := topN
		if n > len(group) {
			n = len(group)
		}
		result = append(result, group[:n]...)
	}
	return result
}
