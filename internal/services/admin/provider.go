package admin

import (
	"context"
	"sync"
)

// listSnapshot is the rendered view of a provider: the last committed records
// plus the error that produced them, if any.
type listSnapshot[T, E any] struct {
	Records []T
	Extra   E
	Err     error
	Loaded  bool
}

// fetchFunc loads records for params and returns any list-level extra payload,
// such as server-side pagination metadata.
type fetchFunc[P, T, E any] func(ctx context.Context, params P) ([]T, E, error)

// listProvider serializes list state behind monotonically increasing fetch
// sequence numbers. A response commits only when no newer fetch has started,
// so overlapping requests can never clobber fresher data with stale results.
type listProvider[P, T, E any] struct {
	mu         sync.Mutex
	fetch      fetchFunc[P, T, E]
	seq        uint64
	lastParams P
	hasFetched bool
	snapshot   listSnapshot[T, E]
}

func newListProvider[P, T, E any](fetch fetchFunc[P, T, E]) *listProvider[P, T, E] {
	return &listProvider[P, T, E]{fetch: fetch}
}

// Fetch loads records for params and commits the outcome unless a newer fetch
// superseded this one. Failed fetches reset records to empty rather than
// leaving the previous page on screen next to an error.
func (p *listProvider[P, T, E]) Fetch(ctx context.Context, params P) listSnapshot[T, E] {
	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.lastParams = params
	p.hasFetched = true
	p.mu.Unlock()

	records, extra, err := p.fetch(ctx, params)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		// A newer fetch started after this one; its result owns the snapshot.
		return copySnapshot(p.snapshot)
	}
	if err != nil {
		var zero E
		p.snapshot = listSnapshot[T, E]{Records: []T{}, Extra: zero, Err: err, Loaded: true}
	} else {
		if records == nil {
			records = []T{}
		}
		p.snapshot = listSnapshot[T, E]{Records: records, Extra: extra, Loaded: true}
	}
	return copySnapshot(p.snapshot)
}

// Refresh re-runs the last fetch with its original params.
func (p *listProvider[P, T, E]) Refresh(ctx context.Context) listSnapshot[T, E] {
	p.mu.Lock()
	params := p.lastParams
	p.mu.Unlock()
	return p.Fetch(ctx, params)
}

// Snapshot returns a copy of the current committed state.
func (p *listProvider[P, T, E]) Snapshot() listSnapshot[T, E] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return copySnapshot(p.snapshot)
}

func copySnapshot[T, E any](snapshot listSnapshot[T, E]) listSnapshot[T, E] {
	records := make([]T, len(snapshot.Records))
	copy(records, snapshot.Records)
	snapshot.Records = records
	return snapshot
}
