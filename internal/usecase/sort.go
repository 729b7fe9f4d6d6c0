package usecase

import (
	"sort"

	"wordlens/internal/domain"
)

// ParseSortKey converts a user-supplied key, defaulting to count.
func ParseSortKey(s string) (domain.SortKey, bool) {
	switch domain.SortKey(s) {
	case "", domain.SortByCount:
		return domain.SortByCount, true
	case domain.SortByDistance:
		return domain.SortByDistance, true
	}
	return "", false
}

// Sort returns the retained stems of result ordered by key. Both orders are
// stable with respect to first occurrence; result is not modified.
func Sort(result *domain.AnalysisResult, key domain.SortKey) domain.SortedView {
	if result == nil {
		return domain.SortedView{}
	}

	view := make(domain.SortedView, 0, len(result.Order))
	for _, stem := range result.Order {
		if ws, ok := result.Stats[stem]; ok {
			view = append(view, domain.Entry{Stem: stem, Stat: ws})
		}
	}

	switch key {
	case domain.SortByDistance:
		sort.SliceStable(view, func(i, j int) bool {
			if view[i].Stat.MinDistance != view[j].Stat.MinDistance {
				return view[i].Stat.MinDistance < view[j].Stat.MinDistance
			}
			return view[i].Stat.Count > view[j].Stat.Count
		})
	default:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].Stat.Count > view[j].Stat.Count
		})
	}

	return view
}
