package panelserv

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finpanel/finpanel-client/internal/types"
)

const (
	testDebounce = 40 * time.Millisecond
	settle       = 10 * testDebounce
)

func newSearchService(api *fakeAPI, view *fakeView) *Service {
	return &Service{
		API:      api,
		View:     view,
		Debounce: testDebounce,
	}
}

func (f *fakeAPI) terms() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.searchTerms...)
}

func Test_ShortTermNeverIssuesACall(t *testing.T) {
	api := newFakeAPI()
	s := newSearchService(api, &fakeView{})

	s.Search(context.Background(), "j")
	time.Sleep(settle)

	assert.Empty(t, api.terms())
}

func Test_PausedTypingIssuesExactlyOneCall(t *testing.T) {
	api := newFakeAPI()
	api.matches = []types.ContactMatch{{Name: "Maria", Receivable: decimal.NewFromInt(10)}}
	view := &fakeView{}
	s := newSearchService(api, view)

	s.Search(context.Background(), "maria")
	time.Sleep(settle)

	assert.Equal(t, []string{"maria"}, api.terms())

	_, searches, _ := view.counts()
	assert.Equal(t, 1, searches)
	assert.Equal(t, api.matches, view.lastMatches)
}

func Test_RapidTypingOnlySearchesTheLastTerm(t *testing.T) {
	api := newFakeAPI()
	s := newSearchService(api, &fakeView{})

	s.Search(context.Background(), "ma")
	time.Sleep(testDebounce / 8)
	s.Search(context.Background(), "mar")
	time.Sleep(testDebounce / 8)
	s.Search(context.Background(), "mari")

	time.Sleep(settle)

	assert.Equal(t, []string{"mari"}, api.terms())
}

func Test_ClearingRevertsSynchronously(t *testing.T) {
	api := newFakeAPI()
	view := &fakeView{}
	s := newSearchService(api, view)

	s.Search(context.Background(), "mar")
	s.Search(context.Background(), "")

	_, _, clears := view.counts()
	assert.Equal(t, 1, clears, "clearing must not wait for the debounce window")

	time.Sleep(settle)
	assert.Empty(t, api.terms(), "the pending search must have been cancelled")
}

func Test_TermIsTrimmedBeforeTheLengthGate(t *testing.T) {
	api := newFakeAPI()
	s := newSearchService(api, &fakeView{})

	s.Search(context.Background(), "  jo  ")
	time.Sleep(settle)

	assert.Equal(t, []string{"jo"}, api.terms())

	s.Search(context.Background(), " x ")
	time.Sleep(settle)

	assert.Equal(t, []string{"jo"}, api.terms(), "a one-rune term must not be issued")
}

func Test_SearchFailureLeavesViewUntouched(t *testing.T) {
	api := newFakeAPI()
	api.failSection = "search"
	view := &fakeView{}
	s := newSearchService(api, view)

	s.Search(context.Background(), "maria")
	time.Sleep(settle)

	_, searches, _ := view.counts()
	assert.Equal(t, 0, searches)
}
