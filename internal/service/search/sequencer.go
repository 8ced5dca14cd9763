package search

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// Sequencer issues monotonically increasing search tokens.
type Sequencer struct {
	last atomic.Uint64
}

// Next issues a new token. The first token is 1.
func (s *Sequencer) Next() uint64 {
	return s.last.Add(1)
}

// Latest returns the most recently issued token, or 0.
func (s *Sequencer) Latest() uint64 {
	return s.last.Load()
}

// IsLatest reports whether token is still the newest issued.
func (s *Sequencer) IsLatest(token uint64) bool {
	return token == s.last.Load()
}

type searcher interface {
	Search(ctx context.Context, location, text string) (Result, error)
}

// Session holds the listings currently shown to one client and applies
// only the result of the latest issued search. It is for in-process callers;
// HTTP clients get the same ordering guarantee by echoing the seq query
// parameter.
type Session struct {
	searcher searcher
	seq      Sequencer

	mu        sync.Mutex
	displayed []domain.Listing
	strategy  Strategy
	applied   uint64
}

// NewSession creates a session with an empty displayed list.
func NewSession(s searcher) *Session {
	return &Session{searcher: s, displayed: []domain.Listing{}}
}

// Search runs a search and commits it if no newer search was issued while
// it was in flight. applied is false for stale completions, whose result
// and error are still returned to the caller.
func (s *Session) Search(ctx context.Context, location, text string) (res Result, applied bool, err error) {
	token := s.seq.Next()
	res, err = s.searcher.Search(ctx, location, text)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seq.IsLatest(token) {
		return res, false, err
	}

	s.applied = token
	s.strategy = res.Strategy
	if err != nil {
		if errors.Is(err, ErrFetch) {
			s.displayed = []domain.Listing{}
		}
		return res, true, err
	}
	s.displayed = res.Listings
	return res, true, nil
}

// Displayed returns a copy of the committed listings.
func (s *Session) Displayed() []domain.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Listing, len(s.displayed))
	copy(out, s.displayed)
	return out
}

// Applied returns the token of the committed search, or 0 before any search
// completed.
func (s *Session) Applied() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied
}

// Strategy returns the strategy of the committed search.
func (s *Session) Strategy() Strategy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strategy
}
