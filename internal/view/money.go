package view

import (
	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MoneyFormatter renders amounts with locale-aware separators and the
// currency symbol, e.g. 1234.5 as "R$ 1.234,50" under pt-BR/BRL.
type MoneyFormatter struct {
	printer *message.Printer
	symbol  string
}

func NewMoneyFormatter(locale, currencyCode string) (*MoneyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, errs.New("invalid locale %q: %w", locale, err)
	}

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, errs.New("invalid currency %q: %w", currencyCode, err)
	}

	p := message.NewPrinter(tag)

	return &MoneyFormatter{
		printer: p,
		symbol:  p.Sprint(currency.Symbol(unit)),
	}, nil
}

// Format renders the amount with two fraction digits. Negative amounts carry
// a leading minus before the symbol.
func (f *MoneyFormatter) Format(d decimal.Decimal) string {
	v, _ := d.Abs().Float64()

	n := number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	)

	out := f.symbol + " " + f.printer.Sprintf("%v", n)
	if d.IsNegative() {
		out = "-" + out
	}

	return out
}
