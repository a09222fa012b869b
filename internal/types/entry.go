package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryType int8

const (
	Expense EntryType = iota
	Income
)

func (t EntryType) String() string {
	switch t {
	case Expense:
		return "DESPESA"
	case Income:
		return "RECEITA"
	default:
		return "undefined"
	}
}

func (t EntryType) IsValid() bool {
	return t.String() != "undefined"
}

func ParseEntryType(s string) EntryType {
	if s == "RECEITA" {
		return Income
	}
	return Expense
}

type EntryStatus int8

const (
	StatusUnknown EntryStatus = iota
	StatusPaid
	StatusPending
	StatusOverdue
)

func (s EntryStatus) String() string {
	switch s {
	case StatusPaid:
		return "PAGO"
	case StatusPending:
		return "PENDENTE"
	case StatusOverdue:
		return "VENCIDO"
	default:
		return "undefined"
	}
}

func ParseEntryStatus(s string) EntryStatus {
	switch s {
	case "PAGO":
		return StatusPaid
	case "PENDENTE":
		return StatusPending
	case "VENCIDO":
		return StatusOverdue
	default:
		return StatusUnknown
	}
}

// Installment identifies one slice of a split entry.
type Installment struct {
	Number int
	Total  int
}

// Entry is a single receivable or payable. Entries are created server-side;
// the client never mutates one after it has been fetched.
type Entry struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
	Type        EntryType
	CategoryID  int64
	Status      EntryStatus
	RawStatus   string
	Installment *Installment
}

// CreateEntryInput is the payload the client builds for POST /titulos.
// ContactID and BankAccountID default to 1 when left zero, matching the
// fixed values the panel frontend always sends.
type CreateEntryInput struct {
	Description   string
	Amount        decimal.Decimal
	DueDate       string
	Type          EntryType
	CategoryID    int64
	ContactID     int64
	BankAccountID int64
	Installments  int
}
