package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Direction string

const (
	Credit Direction = "CR"
	Debit  Direction = "DR"
)

// Entry is one dated credit or debit in the household ledger. Amount is a
// non-negative magnitude; the sign lives in Direction.
type Entry struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"` // ISO form, 2006-01-02
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   Direction       `json:"direction"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Signed returns the amount with the direction's sign applied.
func (e Entry) Signed() decimal.Decimal {
	if e.Direction == Debit {
		return e.Amount.Neg()
	}
	return e.Amount
}

func (e *Entry) Validate() error {
	if e.Direction != Credit && e.Direction != Debit {
		return errors.New("direction must be CR or DR")
	}
	if e.Amount.IsNegative() {
		return errors.New("amount must not be negative")
	}
	return nil
}
