// Package models defines the expense data model: the fixed category
// catalog, the Expense record, and the calendar Date type they share.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single recorded spending event.
//
// ID is the only handle used for update and delete, and is stable for the
// lifetime of the record. Category is a foreign key into the category
// catalog by name; readers must tolerate an unknown name (see
// CategoryOrUnknown). Amount is strictly positive.
type Expense struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}
