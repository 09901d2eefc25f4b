// Package insights is the aggregation engine. Every derivation is a pure
// function of an expense snapshot, the budget, and an explicit "now";
// nothing here mutates the store or reads a global clock.
package insights

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Tier is the qualitative budget-health bucket derived from percent-spent.
type Tier string

// Tier thresholds: >90% critical, >70% warning, otherwise healthy. The
// tier is recomputed fresh on every read with no hysteresis.
const (
	TierHealthy  Tier = "healthy"
	TierWarning  Tier = "warning"
	TierCritical Tier = "critical"
)

// TierFor buckets a percent-spent value.
func TierFor(percentSpent float64) Tier {
	switch {
	case percentSpent > 90:
		return TierCritical
	case percentSpent > 70:
		return TierWarning
	default:
		return TierHealthy
	}
}

// MonthSummary is the budget view for the current calendar month.
//
// Remaining may go negative while PercentSpent stays clamped at 100; the
// two are intentionally inconsistent past 100%, so PercentSpent must not
// be read as overspend magnitude.
type MonthSummary struct {
	TotalSpent   decimal.Decimal `json:"total_spent"`
	Budget       decimal.Decimal `json:"budget"`
	Remaining    decimal.Decimal `json:"remaining"`
	PercentSpent float64         `json:"percent_spent"`
	Tier         Tier            `json:"tier"`
}

// Month computes the current month's budget summary.
func Month(expenses []models.Expense, budget decimal.Decimal, now time.Time) MonthSummary {
	total := sumAmounts(monthExpenses(expenses, now))
	summary := MonthSummary{
		TotalSpent:   total,
		Budget:       budget,
		Remaining:    budget.Sub(total),
		PercentSpent: percentSpent(total, budget),
	}
	summary.Tier = TierFor(summary.PercentSpent)
	return summary
}

// CategoryTotal is one category's spend for the current month.
type CategoryTotal struct {
	models.Category
	Total decimal.Decimal `json:"total"`
}

// CategoryTotals sums the current month's spend per catalog category,
// drops categories with nothing spent, and sorts descending by total.
// The sort is stable, so ties keep catalog order. The returned totals
// always partition the month's spend exactly.
func CategoryTotals(expenses []models.Expense, now time.Time) []CategoryTotal {
	month := monthExpenses(expenses, now)

	totals := make([]CategoryTotal, 0, len(models.Categories))
	for _, category := range models.Categories {
		total := decimal.Zero
		for _, e := range month {
			if e.Category == category.Name {
				total = total.Add(e.Amount)
			}
		}
		if total.IsPositive() {
			totals = append(totals, CategoryTotal{Category: category, Total: total})
		}
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})
	return totals
}

// WeekDay is one entry of the 7-day trailing series.
type WeekDay struct {
	Weekday    string          `json:"weekday"`
	DayOfMonth int             `json:"day_of_month"`
	Total      decimal.Decimal `json:"total"`
	IsToday    bool            `json:"is_today"`
}

// WeeklySeries is the Monday-anchored 7-day series. MaxDayTotal has a
// floor of 1 and exists only for proportional bar scaling.
type WeeklySeries struct {
	Days        []WeekDay       `json:"days"`
	MaxDayTotal decimal.Decimal `json:"max_day_total"`
}

// Week builds the series for the ISO week containing now, Monday through
// Sunday. Totals match expenses by exact date against the full record
// set, not just the current month, so a prior-month expense whose date
// falls inside the displayed week still counts. Exactly one entry has
// IsToday set.
func Week(expenses []models.Expense, now time.Time) WeeklySeries {
	monday := weekAnchor(now)
	today := models.DateOf(now)

	series := WeeklySeries{
		Days:        make([]WeekDay, 0, 7),
		MaxDayTotal: decimal.NewFromInt(1),
	}
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		date := models.DateOf(day)

		total := decimal.Zero
		for _, e := range expenses {
			if e.Date == date {
				total = total.Add(e.Amount)
			}
		}
		if total.GreaterThan(series.MaxDayTotal) {
			series.MaxDayTotal = total
		}

		series.Days = append(series.Days, WeekDay{
			Weekday:    day.Weekday().String()[:3],
			DayOfMonth: date.Day,
			Total:      total,
			IsToday:    date == today,
		})
	}
	return series
}

// TodaySummary lists today's transactions with their total and count.
type TodaySummary struct {
	Date     models.Date      `json:"date"`
	Total    decimal.Decimal  `json:"total"`
	Count    int              `json:"count"`
	Expenses []models.Expense `json:"expenses"`
}

// Today filters the record set to expenses dated today, preserving the
// store's most-recently-added-first order.
func Today(expenses []models.Expense, now time.Time) TodaySummary {
	today := models.DateOf(now)
	summary := TodaySummary{
		Date:     today,
		Total:    decimal.Zero,
		Expenses: make([]models.Expense, 0),
	}
	for _, e := range expenses {
		if e.Date == today {
			summary.Expenses = append(summary.Expenses, e)
			summary.Total = summary.Total.Add(e.Amount)
		}
	}
	summary.Count = len(summary.Expenses)
	return summary
}

// TopCategory is the highest-spending category with its share of the
// month's total.
type TopCategory struct {
	CategoryTotal
	Percent float64 `json:"percent"`
}

// Stats is the insight bundle for the current month.
type Stats struct {
	TransactionCount  int             `json:"transaction_count"`
	AvgPerTransaction decimal.Decimal `json:"avg_per_transaction"`
	DailyAverage      decimal.Decimal `json:"daily_average"`
	BiggestExpense    decimal.Decimal `json:"biggest_expense"`
	TopCategory       *TopCategory    `json:"top_category,omitempty"`
}

// Compute derives the month's insight statistics. Empty months yield
// zeros and a nil top category; no division ever propagates a non-finite
// value.
//
// DailyAverage divides by the day-of-month of now, not by elapsed days
// since the first expense. That matches the product's observed behavior
// and is deliberate.
func Compute(expenses []models.Expense, now time.Time) Stats {
	month := monthExpenses(expenses, now)
	total := sumAmounts(month)

	stats := Stats{
		TransactionCount:  len(month),
		AvgPerTransaction: decimal.Zero,
		DailyAverage:      total.Div(decimal.NewFromInt(int64(now.Day()))),
		BiggestExpense:    decimal.Zero,
	}

	if len(month) > 0 {
		stats.AvgPerTransaction = total.Div(decimal.NewFromInt(int64(len(month))))
		for _, e := range month {
			if e.Amount.GreaterThan(stats.BiggestExpense) {
				stats.BiggestExpense = e.Amount
			}
		}
	}

	if totals := CategoryTotals(expenses, now); len(totals) > 0 {
		top := TopCategory{CategoryTotal: totals[0]}
		if total.IsPositive() {
			top.Percent, _ = totals[0].Total.Div(total).Mul(hundred).Float64()
		}
		stats.TopCategory = &top
	}
	return stats
}

// weekAnchor returns the Monday beginning the ISO week containing t.
// Sunday is treated as the end of the week, so on a Sunday the anchor is
// six days back.
func weekAnchor(t time.Time) time.Time {
	offset := int(t.Weekday())
	if offset == 0 {
		offset = 7
	}
	return t.AddDate(0, 0, -(offset - 1))
}

// monthExpenses filters to the current calendar month and year. Only the
// current month is ever aggregated; there is no month selection.
func monthExpenses(expenses []models.Expense, now time.Time) []models.Expense {
	month := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Date.SameMonth(now) {
			month = append(month, e)
		}
	}
	return month
}

func sumAmounts(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// percentSpent clamps at 100 for display purposes; Remaining is the
// figure that tracks true overspend.
func percentSpent(total, budget decimal.Decimal) float64 {
	if !budget.IsPositive() {
		return 0
	}
	percent, _ := total.Div(budget).Mul(hundred).Float64()
	if percent > 100 {
		return 100
	}
	return percent
}
