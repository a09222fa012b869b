package panelserv

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/finpanel/finpanel-client/internal/logging"
)

const (
	defaultDebounce   = 300 * time.Millisecond
	defaultMinTermLen = 2
)

// Search reacts to one keystroke of the contact search box. Every call
// cancels the previously scheduled search. An empty trimmed term reverts to
// the ranking view synchronously, without waiting for the debounce window;
// any other term is scheduled and only issued if it still holds the minimum
// length when the window elapses.
func (s *Service) Search(ctx context.Context, term string) {
	term = strings.TrimSpace(term)

	s.searchMu.Lock()

	if s.searchTimer != nil {
		s.searchTimer.Stop()
		s.searchTimer = nil
	}

	if term == "" {
		s.searchMu.Unlock()
		s.View.ClearSearch()
		return
	}

	debounce := s.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	s.searchTimer = time.AfterFunc(debounce, func() {
		s.runSearch(ctx, term)
	})

	s.searchMu.Unlock()
}

func (s *Service) runSearch(ctx context.Context, term string) {
	minLen := s.MinTermLen
	if minLen <= 0 {
		minLen = defaultMinTermLen
	}

	if utf8.RuneCountInString(term) < minLen {
		return
	}

	seq := s.searchSeq.Add(1)
	log := logging.FromContext(ctx).With(
		logging.Int("search_seq", seq),
		logging.String("term", term),
	)

	matches, err := s.API.SearchContacts(ctx, term)
	if err != nil {
		log.Error("contact search failed", logging.Error(err))
		return
	}

	// In-flight requests are never cancelled: results apply in arrival
	// order, not issue order. search_seq is logged so a stale overwrite can
	// be traced.
	s.View.RenderSearch(matches)

	log.Debug("search results rendered", logging.Int("matches", len(matches)))
}
