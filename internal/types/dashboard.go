package types

import "github.com/shopspring/decimal"

// Summary holds the four headline figures of the dashboard.
type Summary struct {
	Balance    decimal.Decimal
	Receivable decimal.Decimal
	Payable    decimal.Decimal
	Overdue    decimal.Decimal
}

type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

type CashFlowPoint struct {
	Month   string
	Inflow  decimal.Decimal
	Outflow decimal.Decimal
}

type RankingRow struct {
	Name  string
	Total decimal.Decimal
}

type Ranking struct {
	Debtors   []RankingRow
	Creditors []RankingRow
}

// ContactMatch is a contact search hit. Transient: produced only by search
// queries and discarded when the search is cleared.
type ContactMatch struct {
	Name       string
	Receivable decimal.Decimal
	Payable    decimal.Decimal
}

type Category struct {
	ID   int64
	Name string
}

// Snapshot is the immutable result of one full dashboard load. It is
// replaced wholesale on each reload, never merged incrementally.
type Snapshot struct {
	Summary    Summary
	Categories []CategoryTotal
	CashFlow   []CashFlowPoint
	Recent     []Entry
	Ranking    Ranking
}
