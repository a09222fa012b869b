// Package panelserv orchestrates the dashboard: the parallel load of every
// section, the debounced contact search and the create-entry workflow.
package panelserv

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeebo/errs"

	"github.com/finpanel/finpanel-client/internal/logging"
	"github.com/finpanel/finpanel-client/internal/types"
	"github.com/finpanel/finpanel-client/internal/types/result"
)

// ErrSubmitInFlight is returned when an entry submission is attempted while
// a previous one has not finished yet.
var ErrSubmitInFlight = errs.New("an entry submission is already in progress")

// PanelAPI is the slice of the repository the orchestrator needs.
type PanelAPI interface {
	Summary(ctx context.Context) (types.Summary, error)
	CategoryBreakdown(ctx context.Context) ([]types.CategoryTotal, error)
	CashFlow(ctx context.Context) ([]types.CashFlowPoint, error)
	RecentEntries(ctx context.Context, limit int) ([]types.Entry, error)
	Ranking(ctx context.Context) (types.Ranking, error)
	Categories(ctx context.Context) ([]types.Category, error)
	SearchContacts(ctx context.Context, term string) ([]types.ContactMatch, error)
	CreateEntry(ctx context.Context, input types.CreateEntryInput) ([]types.Entry, error)
}

// Renderer receives fetched data. Implementations must be safe to call with
// a fresh snapshot at any time.
type Renderer interface {
	RenderDashboard(snap types.Snapshot, categories []types.Category)
	RenderSearch(matches []types.ContactMatch)
	ClearSearch()
}

type Service struct {
	API  PanelAPI
	View Renderer

	// RecentLimit caps the entries table. Defaults to 10.
	RecentLimit int
	// Debounce is the quiet window before a typed search term is issued.
	// Defaults to 300ms.
	Debounce time.Duration
	// MinTermLen is the minimum trimmed term length for a search to be
	// issued. Defaults to 2.
	MinTermLen int

	// OnFormReset runs after a successful entry creation, before the
	// dashboard refresh.
	OnFormReset func()

	searchMu    sync.Mutex
	searchTimer *time.Timer
	searchSeq   atomic.Int64

	submitting atomic.Bool
}

const (
	defaultRecentLimit = 10
	dueDateFormat      = "2006-01-02"
)

// LoadDashboard fetches the five dashboard sections and the category
// reference list concurrently behind a single join barrier. Either every
// section is handed to the renderer or none is: any failure leaves the view
// in its prior state.
func (s *Service) LoadDashboard(ctx context.Context) error {
	log := logging.FromContext(ctx)
	start := time.Now()

	limit := s.RecentLimit
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	var (
		snap types.Snapshot
		cats []types.Category
	)

	fetches := map[string]func(context.Context) error{
		"summary": func(ctx context.Context) error {
			v, err := s.API.Summary(ctx)
			snap.Summary = v
			return err
		},
		"by-category": func(ctx context.Context) error {
			v, err := s.API.CategoryBreakdown(ctx)
			snap.Categories = v
			return err
		},
		"cash-flow": func(ctx context.Context) error {
			v, err := s.API.CashFlow(ctx)
			snap.CashFlow = v
			return err
		},
		"recent-entries": func(ctx context.Context) error {
			v, err := s.API.RecentEntries(ctx, limit)
			snap.Recent = v
			return err
		},
		"ranking": func(ctx context.Context) error {
			v, err := s.API.Ranking(ctx)
			snap.Ranking = v
			return err
		},
		"categories": func(ctx context.Context) error {
			v, err := s.API.Categories(ctx)
			cats = v
			return err
		},
	}

	results := make(chan result.Result[string], len(fetches))

	var wg sync.WaitGroup
	wg.Add(len(fetches))
	for section, fetch := range fetches {
		go func(section string, fetch func(context.Context) error) {
			defer wg.Done()
			results <- result.Of(section, fetch(ctx))
		}(section, fetch)
	}

	wg.Wait()
	close(results)

	var firstErr error
	for r := range results {
		if r.Err() == nil {
			continue
		}

		log.Error("dashboard section failed",
			logging.String("section", r.Value()),
			logging.Error(r.Err()),
		)

		if firstErr == nil {
			firstErr = r.Err()
		}
	}

	if firstErr != nil {
		return firstErr
	}

	s.View.RenderDashboard(snap, cats)

	log.Debug("dashboard loaded",
		logging.Duration("took", time.Since(start)),
		logging.Int("recent", len(snap.Recent)),
		logging.Int("categories", len(cats)),
	)

	return nil
}

// CreateEntry validates the input, submits it and, on success, resets the
// form and triggers exactly one dashboard reload. Only one submission may be
// in flight at a time; the guard is released whatever the outcome.
func (s *Service) CreateEntry(ctx context.Context, input types.CreateEntryInput) error {
	if !s.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer s.submitting.Store(false)

	log := logging.FromContext(ctx)

	if err := validateCreateInput(input); err != nil {
		return err
	}

	created, err := s.API.CreateEntry(ctx, input)
	if err != nil {
		return err
	}

	log.Info("entry created",
		logging.Int("rows", len(created)),
		logging.String("type", input.Type.String()),
	)

	if s.OnFormReset != nil {
		s.OnFormReset()
	}

	if err := s.LoadDashboard(ctx); err != nil {
		log.Error("dashboard refresh after create failed", logging.Error(err))
	}

	return nil
}

// validateCreateInput applies the client-side checks that must pass before
// any network call is made.
func validateCreateInput(in types.CreateEntryInput) error {
	var problems []string

	if strings.TrimSpace(in.Description) == "" {
		problems = append(problems, "description is required")
	}

	if !in.Amount.IsPositive() {
		problems = append(problems, "amount must be a positive number")
	}

	if in.DueDate == "" {
		problems = append(problems, "due date is required")
	} else if _, err := time.Parse(dueDateFormat, in.DueDate); err != nil {
		problems = append(problems, "due date must be in YYYY-MM-DD form")
	}

	if in.CategoryID <= 0 {
		problems = append(problems, "a category must be selected")
	}

	if !in.Type.IsValid() {
		problems = append(problems, "entry type must be income or expense")
	}

	if len(problems) != 0 {
		return types.ErrValidation.New("%s", strings.Join(problems, "; "))
	}

	return nil
}
