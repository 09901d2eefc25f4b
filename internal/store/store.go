// Package store owns the mutable expense collection and the monthly budget
// scalar. It is the only component that mutates either; the aggregation
// engine in internal/insights reads snapshots from here.
package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/uuid"
)

// FilterAll selects all expenses regardless of category in ListFiltered.
const FilterAll = "All"

// ExpenseInput carries the raw user input for an Add or Update. Amount
// arrives as a string so the store is the single validation authority:
// non-numeric or non-positive input is rejected here, not upstream.
type ExpenseInput struct {
	Amount        string
	Description   string
	CategoryIndex int
	Date          string
}

// Storer defines the contract the presentation layer uses against the
// expense store.
type Storer interface {
	Add(in ExpenseInput) (*models.Expense, error)
	Update(id string, in ExpenseInput) (*models.Expense, error)
	Delete(id string) error
	SetBudget(value string) decimal.Decimal
	Budget() decimal.Decimal
	List() []models.Expense
	ListFiltered(category string) []models.Expense
	Len() int
}

// Store holds the full expense collection in memory for the process
// lifetime. All methods are safe for concurrent callers: a single mutex
// serializes mutations, and reads return copied snapshots rather than
// live aliases.
type Store struct {
	mu       sync.Mutex
	expenses []models.Expense
	budget   decimal.Decimal
	now      func() time.Time
}

// New creates an empty store with the given starting budget. The clock is
// used for CreatedAt timestamps; pass nil for time.Now.
func New(budget decimal.Decimal, clock func() time.Time) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{budget: budget, now: clock}
}

var _ Storer = (*Store)(nil)

// Add validates the input, creates a new expense with a fresh id and the
// current instant as CreatedAt, and inserts it at the head of the
// collection. Most-recently-added-first is the collection's natural order,
// independent of the expense date. On validation failure the store is
// left untouched.
func (s *Store) Add(in ExpenseInput) (*models.Expense, error) {
	amount, category, date, err := parseInput(in)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expense := models.Expense{
		ID:          uuid.New(),
		Amount:      amount,
		Description: defaultDescription(in.Description, category),
		Category:    category.Name,
		Date:        date,
		CreatedAt:   s.now(),
	}

	s.expenses = append([]models.Expense{expense}, s.expenses...)
	return &expense, nil
}

// Update replaces the mutable fields of the expense with the given id.
// ID and CreatedAt are preserved. Validation runs before the lookup so a
// bad amount never mutates anything, matching Add.
func (s *Store) Update(id string, in ExpenseInput) (*models.Expense, error) {
	amount, category, date, err := parseInput(in)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.expenses {
		if s.expenses[i].ID != id {
			continue
		}
		s.expenses[i].Amount = amount
		s.expenses[i].Description = defaultDescription(in.Description, category)
		s.expenses[i].Category = category.Name
		s.expenses[i].Date = date
		updated := s.expenses[i]
		return &updated, nil
	}
	return nil, apperrors.ErrExpenseNotFound
}

// Delete removes the expense with the given id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrExpenseNotFound
}

// SetBudget parses value and replaces the budget. Non-numeric or empty
// input silently keeps the previous value; the budget never becomes
// invalid through this path. Negative values are accepted. Returns the
// budget now in effect.
func (s *Store) SetBudget(value string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	parsed, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return s.budget
	}
	s.budget = parsed
	return s.budget
}

// Budget returns the current monthly budget.
func (s *Store) Budget() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budget
}

// List returns a snapshot of all expenses in insertion order, head first.
func (s *Store) List() []models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]models.Expense, len(s.expenses))
	copy(snapshot, s.expenses)
	return snapshot
}

// ListFiltered returns expenses matching the category name (or all of them
// for FilterAll), sorted descending by expense date. The sort is stable,
// so equal dates keep their insertion order. An unknown category name
// matches nothing rather than failing.
func (s *Store) ListFiltered(category string) []models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]models.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		if category == FilterAll || e.Category == category {
			filtered = append(filtered, e)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Compare(filtered[j].Date) > 0
	})
	return filtered
}

// Len returns the number of expenses in the store.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.expenses)
}

// parseInput validates raw expense input. Every failure is a
// VALIDATION_FAILED AppError with a message naming the offending field.
func parseInput(in ExpenseInput) (decimal.Decimal, models.Category, models.Date, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(in.Amount))
	if err != nil {
		return decimal.Decimal{}, models.Category{}, models.Date{},
			apperrors.WithMessage(apperrors.ErrValidationFailed, "Amount must be a number")
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, models.Category{}, models.Date{},
			apperrors.WithMessage(apperrors.ErrValidationFailed, "Amount must be greater than zero")
	}

	category, ok := models.CategoryAt(in.CategoryIndex)
	if !ok {
		return decimal.Decimal{}, models.Category{}, models.Date{},
			apperrors.WithMessage(apperrors.ErrValidationFailed, "Category selection is out of range")
	}

	date, err := models.ParseDate(in.Date)
	if err != nil {
		return decimal.Decimal{}, models.Category{}, models.Date{},
			apperrors.WithMessage(apperrors.ErrValidationFailed, "Date must be in YYYY-MM-DD format")
	}

	return amount, category, date, nil
}

// defaultDescription falls back to the category name when the user left
// the description empty.
func defaultDescription(description string, category models.Category) string {
	if strings.TrimSpace(description) == "" {
		return category.Name
	}
	return description
}
