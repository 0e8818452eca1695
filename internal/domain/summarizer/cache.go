package summarizer

import "sync"

// CacheSummaries wraps compute so it runs at most once. Concurrent first
// callers wait for the single computation; every call returns the same groups
// and error. Callers must treat the returned groups as read-only.
func CacheSummaries(compute Query) Query {
	var (
		once   sync.Once
		groups []SummaryGroup
		err    error
	)
	return func() ([]SummaryGroup, error) {
		once.Do(func() {
			groups, err = compute()
		})
		return groups, err
	}
}
