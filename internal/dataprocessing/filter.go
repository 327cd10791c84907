package dataprocessing

import (
	"lpreport/pkg/contracts/domain"
)

// FilterChannels returns the records whose channel is in the allow-list,
// preserving row order and all fields. Pure function; the input slice is not
// modified.
func FilterChannels(records []domain.PageRecord, channels []string) []domain.PageRecord {
	allowed := make(map[string]struct{}, len(channels))
	for _, c := range channels {
		allowed[c] = struct{}{}
	}

	filtered := make([]domain.PageRecord, 0, len(records))
	for _, rec := range records {
		if _, ok := allowed[rec.Channel]; ok {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
