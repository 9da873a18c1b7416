package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"coffee-dashboard/models"
	"coffee-dashboard/services"
	"coffee-dashboard/sheets"
	"coffee-dashboard/utils"
)

// DefaultTTL is the staleness window for a cached snapshot.
const DefaultTTL = 5 * time.Minute

// Snapshot is one atomically published fetch result. Raw and Standardized
// always have the same length and id order.
type Snapshot struct {
	Raw          []*models.Bean
	Standardized []*models.Bean
	FetchedAt    time.Time
	Version      uint64
}

// Store caches the fetched record sets behind a staleness window and
// collapses concurrent fetches into a single network call. A failed refresh
// keeps the previous good snapshot readable and records the error until the
// next successful fetch.
type Store struct {
	fetcher      sheets.Fetcher
	standardizer *services.Standardizer
	logger       *utils.Logger
	ttl          time.Duration

	mu        sync.Mutex
	snap      *Snapshot
	lastErr   error
	inflight  *inflightFetch
	forceNext bool
	version   uint64
}

// inflightFetch lets late callers wait on the fetch already running instead
// of issuing their own. snap and err are set before done is closed.
type inflightFetch struct {
	done chan struct{}
	snap *Snapshot
	err  error
}

// New creates a Store around a fetcher. A zero ttl means DefaultTTL.
func New(fetcher sheets.Fetcher, standardizer *services.Standardizer, ttl time.Duration, logger *utils.Logger) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		fetcher:      fetcher,
		standardizer: standardizer,
		logger:       logger,
		ttl:          ttl,
	}
}

// Fetch returns the current snapshot, refreshing it first when it is stale,
// missing, or invalidated. Calls arriving while a refresh is in flight wait
// for that refresh's result rather than triggering a second request.
func (s *Store) Fetch(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()

	if s.snap != nil && !s.forceNext && time.Since(s.snap.FetchedAt) < s.ttl {
		snap := s.snap
		s.mu.Unlock()
		return snap, nil
	}

	if s.inflight != nil {
		call := s.inflight
		s.mu.Unlock()
		select {
		case <-call.done:
			return call.snap, call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	call := &inflightFetch{done: make(chan struct{})}
	s.inflight = call
	s.forceNext = false
	s.mu.Unlock()

	snap, err := s.refresh(ctx)

	s.mu.Lock()
	s.inflight = nil
	if err != nil {
		s.lastErr = err
	} else {
		s.lastErr = nil
		s.snap = snap
	}
	s.mu.Unlock()

	call.snap, call.err = snap, err
	close(call.done)
	return snap, err
}

func (s *Store) refresh(ctx context.Context) (*Snapshot, error) {
	text, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheet fetch failed: %w", err)
	}

	raw := sheets.MapRows(sheets.ParseCSV(text))

	s.mu.Lock()
	s.version++
	version := s.version
	s.mu.Unlock()

	standardized := s.standardizer.StandardizeVersion(version, raw)
	s.logger.Info("Parsed %d bean records from sheet (snapshot v%d)", len(raw), version)

	return &Snapshot{
		Raw:          raw,
		Standardized: standardized,
		FetchedAt:    time.Now(),
		Version:      version,
	}, nil
}

// Current returns the last good snapshot, or nil before the first success.
func (s *Store) Current() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Beans returns the standardized records of the last good snapshot.
func (s *Store) Beans() []*models.Bean {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return nil
	}
	return s.snap.Standardized
}

// Err returns the error from the most recent failed fetch; a later
// successful fetch clears it.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Loading reports whether a fetch is currently in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight != nil
}

// Invalidate forces the next Fetch to bypass the staleness window.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forceNext = true
}
