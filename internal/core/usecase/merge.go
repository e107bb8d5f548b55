package usecase

import "github.com/felixbraun/storeradar/internal/core/domain"

// mergeCandidates deduplicates the two search result lists by place id.
// Secondary (fuzzy-text) entries fully replace primary (strict-category)
// entries on id collision while keeping the position of the first insertion.
// Records without an id are dropped, they cannot be deduplicated or looked
// up downstream.
func mergeCandidates(primary, secondary []domain.Candidate) []domain.Candidate {
	index := make(map[string]int, len(primary)+len(secondary))
	merged := make([]domain.Candidate, 0, len(primary)+len(secondary))

	insert := func(c domain.Candidate) {
		if c.ID == "" {
			return
		}
		if i, ok := index[c.ID]; ok {
			merged[i] = c
			return
		}
		index[c.ID] = len(merged)
		merged = append(merged, c)
	}

	for _, c := range primary {
		insert(c)
	}
	for _, c := range secondary {
		insert(c)
	}
	return merged
}
