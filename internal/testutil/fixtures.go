package testutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
	"spendwise/internal/uuid"
)

// FixedClock returns a clock pinned to the given instant.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustDate parses a YYYY-MM-DD date or fails the test.
func MustDate(t *testing.T, s string) models.Date {
	t.Helper()

	date, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", s, err)
	}
	return date
}

// MakeExpense builds an expense record directly, bypassing the store, for
// aggregation tests that only need a record set.
func MakeExpense(t *testing.T, amount, category, date string) models.Expense {
	t.Helper()

	value, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("bad fixture amount %q: %v", amount, err)
	}
	return models.Expense{
		ID:          uuid.New(),
		Amount:      value,
		Description: category,
		Category:    category,
		Date:        MustDate(t, date),
		CreatedAt:   time.Now(),
	}
}
