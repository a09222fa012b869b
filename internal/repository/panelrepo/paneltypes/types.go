// Package paneltypes holds the wire representation of the finpanel REST
// contract. Field names follow the backend's pt-BR JSON schema and are
// mapped to the neutral domain types at the repository boundary.
package paneltypes

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finpanel/finpanel-client/internal/types"
)

const DueDateFormat = "2006-01-02"

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type SummaryResponse struct {
	Balance    decimal.Decimal `json:"saldo_geral"`
	Receivable decimal.Decimal `json:"total_a_receber"`
	Payable    decimal.Decimal `json:"total_a_pagar"`
	Overdue    decimal.Decimal `json:"total_inadimplente"`
}

func (r SummaryResponse) ToDomain() types.Summary {
	return types.Summary{
		Balance:    r.Balance,
		Receivable: r.Receivable,
		Payable:    r.Payable,
		Overdue:    r.Overdue,
	}
}

type CategoryTotalResponse struct {
	Category string          `json:"categoria"`
	Total    decimal.Decimal `json:"total"`
}

type CashFlowResponse struct {
	Month   string          `json:"mes"`
	Inflow  decimal.Decimal `json:"receitas"`
	Outflow decimal.Decimal `json:"despesas"`
}

type EntryResponse struct {
	ID           int64           `json:"id"`
	Description  string          `json:"descricao"`
	Amount       decimal.Decimal `json:"valor"`
	DueDate      string          `json:"data_vencimento"`
	Type         string          `json:"tipo"`
	Status       string          `json:"status"`
	CategoryID   int64           `json:"categoria_id"`
	Split        bool            `json:"parcelado"`
	Installment  int             `json:"numero_parcela"`
	Installments int             `json:"total_parcelas"`
}

func (r EntryResponse) ToDomain() types.Entry {
	due, _ := time.Parse(DueDateFormat, r.DueDate)

	e := types.Entry{
		ID:          r.ID,
		Description: r.Description,
		Amount:      r.Amount,
		DueDate:     due,
		Type:        types.ParseEntryType(r.Type),
		CategoryID:  r.CategoryID,
		Status:      types.ParseEntryStatus(r.Status),
		RawStatus:   r.Status,
	}

	if r.Split || r.Installments > 1 {
		e.Installment = &types.Installment{
			Number: r.Installment,
			Total:  r.Installments,
		}
	}

	return e
}

type RankingRowResponse struct {
	Name  string          `json:"nome"`
	Total decimal.Decimal `json:"total"`
}

type RankingResponse struct {
	Debtors   []RankingRowResponse `json:"devedores"`
	Creditors []RankingRowResponse `json:"credores"`
}

func (r RankingResponse) ToDomain() types.Ranking {
	rows := func(in []RankingRowResponse) []types.RankingRow {
		out := make([]types.RankingRow, 0, len(in))
		for _, it := range in {
			out = append(out, types.RankingRow{
				Name:  it.Name,
				Total: it.Total,
			})
		}
		return out
	}

	return types.Ranking{
		Debtors:   rows(r.Debtors),
		Creditors: rows(r.Creditors),
	}
}

type ContactMatchResponse struct {
	Name       string          `json:"nome"`
	Receivable decimal.Decimal `json:"a_receber"`
	Payable    decimal.Decimal `json:"a_pagar"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

type CreateEntryRequest struct {
	Description   string          `json:"descricao"`
	Amount        decimal.Decimal `json:"valor"`
	DueDate       string          `json:"data_vencimento"`
	Type          string          `json:"tipo"`
	CategoryID    int64           `json:"categoria_id"`
	ContactID     int64           `json:"contato_id"`
	BankAccountID int64           `json:"conta_bancaria_id"`
	Split         bool            `json:"parcelado"`
	Installments  int             `json:"total_parcelas"`
}

// FromCreateInput builds the wire payload, filling the fixed defaults the
// panel always sends for contact and bank account.
func FromCreateInput(in types.CreateEntryInput) CreateEntryRequest {
	contact := in.ContactID
	if contact == 0 {
		contact = 1
	}
	account := in.BankAccountID
	if account == 0 {
		account = 1
	}
	installments := in.Installments
	if installments < 1 {
		installments = 1
	}

	return CreateEntryRequest{
		Description:   in.Description,
		Amount:        in.Amount,
		DueDate:       in.DueDate,
		Type:          in.Type.String(),
		CategoryID:    in.CategoryID,
		ContactID:     contact,
		BankAccountID: account,
		Split:         installments > 1,
		Installments:  installments,
	}
}
