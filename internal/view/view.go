// Package view maps fetched data to a described view state. The mapping
// functions are pure; the renderer itself only keeps the two live chart
// handles and the latest view.
package view

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/finpanel/finpanel-client/internal/types"
)

type Tone string

const (
	ToneNeutral Tone = "neutral"
	TonePrimary Tone = "primary"
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
)

type Badge struct {
	Label string
	Tone  Tone
}

type Card struct {
	Label string
	Value string
	Tone  Tone
}

type CardSet struct {
	Balance    Card
	Receivable Card
	Payable    Card
	Overdue    Card
}

type EntryRow struct {
	DueDate     string
	Description string
	// SubLabel carries the "Parcela n/m" installment marker when set.
	SubLabel string
	Status   Badge
	Amount   string
	Tone     Tone
}

type RankingItem struct {
	Initials    string
	Name        string
	Amount      Badge
	Placeholder string
}

type SearchRow struct {
	Name   string
	Badges []Badge
}

type Option struct {
	Value    int64
	Label    string
	Disabled bool
}

// DashboardView is the full described state of the panel. The display layer
// draws it however it likes; nothing here touches a UI tree.
type DashboardView struct {
	Cards           CardSet
	Table           []EntryRow
	Debtors         []RankingItem
	Creditors       []RankingItem
	CategoryOptions []Option
	SearchMode      bool
	SearchResults   []SearchRow
}

const (
	noDataPlaceholder    = "Sem dados recentes."
	noMatchesPlaceholder = "Nenhum contato encontrado."
	noPendingLabel       = "Sem pendências"
	dueDateDisplay       = "02/01/2006"
)

type Renderer struct {
	Money  *MoneyFormatter
	Charts ChartFactory
	// TopCategories caps the doughnut slice count. Defaults to 5.
	TopCategories int

	mu            sync.Mutex
	view          DashboardView
	categoryChart Chart
	cashFlowChart Chart
}

// RenderDashboard replaces the whole view with a fresh snapshot and rebuilds
// both charts, disposing the previous instances first.
func (r *Renderer) RenderDashboard(snap types.Snapshot, categories []types.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()

	topN := r.TopCategories
	if topN <= 0 {
		topN = 5
	}

	search := r.view.SearchMode
	results := r.view.SearchResults

	r.view = DashboardView{
		Cards:           BuildCards(snap.Summary, r.Money),
		Table:           BuildEntryRows(snap.Recent, r.Money),
		Debtors:         BuildRankingList(snap.Ranking.Debtors, ToneDanger, r.Money),
		Creditors:       BuildRankingList(snap.Ranking.Creditors, ToneWarning, r.Money),
		CategoryOptions: BuildCategoryOptions(categories),
		SearchMode:      search,
		SearchResults:   results,
	}

	if r.Charts != nil {
		if r.categoryChart != nil {
			r.categoryChart.Dispose()
		}
		r.categoryChart = r.Charts.New(CategoryChartSpec(snap.Categories, topN))

		if r.cashFlowChart != nil {
			r.cashFlowChart.Dispose()
		}
		r.cashFlowChart = r.Charts.New(CashFlowChartSpec(snap.CashFlow))
	}
}

// RenderSearch switches the ranking area into search mode with the given
// matches.
func (r *Renderer) RenderSearch(matches []types.ContactMatch) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.view.SearchMode = true
	r.view.SearchResults = BuildSearchRows(matches, r.Money)
}

// ClearSearch drops the transient search results and reverts to the ranking
// display.
func (r *Renderer) ClearSearch() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.view.SearchMode = false
	r.view.SearchResults = nil
}

// View returns a copy of the current view state.
func (r *Renderer) View() DashboardView {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.view
}

// HeaderDate renders the panel header date in short pt-BR form.
func HeaderDate(t time.Time) string {
	return t.Format(dueDateDisplay)
}

func BuildCards(s types.Summary, money *MoneyFormatter) CardSet {
	balanceTone := TonePrimary
	if s.Balance.IsNegative() {
		balanceTone = ToneDanger
	}

	return CardSet{
		Balance: Card{
			Label: "Saldo Geral",
			Value: money.Format(s.Balance),
			Tone:  balanceTone,
		},
		Receivable: Card{
			Label: "Total a Receber",
			Value: money.Format(s.Receivable),
			Tone:  ToneNeutral,
		},
		Payable: Card{
			Label: "Total a Pagar",
			Value: money.Format(s.Payable),
			Tone:  ToneNeutral,
		},
		Overdue: Card{
			Label: "Total Inadimplente",
			Value: money.Format(s.Overdue),
			Tone:  ToneNeutral,
		},
	}
}

func BuildEntryRows(entries []types.Entry, money *MoneyFormatter) []EntryRow {
	rows := make([]EntryRow, 0, len(entries))

	for _, e := range entries {
		row := EntryRow{
			DueDate:     e.DueDate.Format(dueDateDisplay),
			Description: e.Description,
			Status:      statusBadge(e),
		}

		if e.Installment != nil {
			row.SubLabel = installmentLabel(*e.Installment)
		}

		amount := money.Format(e.Amount)
		if e.Type == types.Income {
			row.Amount = amount
			row.Tone = ToneSuccess
		} else {
			row.Amount = "- " + amount
			row.Tone = ToneDanger
		}

		rows = append(rows, row)
	}

	return rows
}

func statusBadge(e types.Entry) Badge {
	label := e.RawStatus
	if label == "" {
		label = e.Status.String()
	}

	switch e.Status {
	case types.StatusPaid:
		return Badge{Label: label, Tone: ToneSuccess}
	case types.StatusOverdue:
		return Badge{Label: label, Tone: ToneDanger}
	case types.StatusPending:
		return Badge{Label: label, Tone: ToneWarning}
	default:
		return Badge{Label: label, Tone: ToneNeutral}
	}
}

func installmentLabel(i types.Installment) string {
	return fmt.Sprintf("Parcela %d/%d", i.Number, i.Total)
}

// BuildRankingList produces the ranked rows; an empty input yields exactly
// one placeholder row, never zero rows.
func BuildRankingList(rows []types.RankingRow, tone Tone, money *MoneyFormatter) []RankingItem {
	if len(rows) == 0 {
		return []RankingItem{{Placeholder: noDataPlaceholder}}
	}

	items := make([]RankingItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, RankingItem{
			Initials: Initials(row.Name),
			Name:     row.Name,
			Amount: Badge{
				Label: money.Format(row.Total),
				Tone:  tone,
			},
		})
	}

	return items
}

// BuildSearchRows maps contact matches; a contact with neither side pending
// gets the single "no pending balance" badge.
func BuildSearchRows(matches []types.ContactMatch, money *MoneyFormatter) []SearchRow {
	if len(matches) == 0 {
		return []SearchRow{{Name: noMatchesPlaceholder}}
	}

	rows := make([]SearchRow, 0, len(matches))
	for _, m := range matches {
		var badges []Badge

		if m.Receivable.IsPositive() {
			badges = append(badges, Badge{
				Label: "Deve: " + money.Format(m.Receivable),
				Tone:  ToneDanger,
			})
		}
		if m.Payable.IsPositive() {
			badges = append(badges, Badge{
				Label: "Pagar: " + money.Format(m.Payable),
				Tone:  ToneWarning,
			})
		}
		if len(badges) == 0 {
			badges = append(badges, Badge{
				Label: noPendingLabel,
				Tone:  ToneSuccess,
			})
		}

		rows = append(rows, SearchRow{
			Name:   m.Name,
			Badges: badges,
		})
	}

	return rows
}

// BuildCategoryOptions prepends the disabled "Selecione..." placeholder the
// panel's select control starts with.
func BuildCategoryOptions(categories []types.Category) []Option {
	opts := make([]Option, 0, len(categories)+1)
	opts = append(opts, Option{Label: "Selecione...", Disabled: true})

	for _, c := range categories {
		opts = append(opts, Option{
			Value: c.ID,
			Label: c.Name,
		})
	}

	return opts
}

// Initials derives the two-letter avatar label from a contact name.
func Initials(name string) string {
	name = strings.TrimSpace(name)
	runes := []rune(name)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}
