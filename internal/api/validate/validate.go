package validate

import (
	"strings"
	"time"

	"github.com/saiyeshwin/housebook-backend/internal/models"
	"github.com/shopspring/decimal"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Helpers

func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

// Date accepts ISO calendar dates only, no time component.
func Date(field, value string) *ErrField {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return &ErrField{Field: field, Msg: "must be a date in 2006-01-02 form"}
	}
	return nil
}

// Amount must be a non-negative decimal with at most two fraction digits.
func Amount(field string, v decimal.Decimal) *ErrField {
	if v.IsNegative() {
		return &ErrField{Field: field, Msg: "must not be negative"}
	}
	if !v.Equal(v.Round(2)) {
		return &ErrField{Field: field, Msg: "at most two decimal places"}
	}
	return nil
}

func Direction(field string, v models.Direction) *ErrField {
	if v != models.Credit && v != models.Debit {
		return &ErrField{Field: field, Msg: "must be CR or DR"}
	}
	return nil
}
