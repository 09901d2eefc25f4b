package insights

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
	"spendwise/internal/testutil"
)

// 2025-08-28 is a Thursday.
var now = time.Date(2025, time.August, 28, 12, 0, 0, 0, time.UTC)

func TestMonth(t *testing.T) {
	t.Run("single_expense_scenario", func(t *testing.T) {
		expenses := []models.Expense{
			testutil.MakeExpense(t, "500", "Food & Dining", "2025-08-28"),
		}

		summary := Month(expenses, decimal.NewFromInt(30000), now)

		testutil.AssertDecimal(t, summary.TotalSpent, "500")
		testutil.AssertDecimal(t, summary.Remaining, "29500")
		if math.Abs(summary.PercentSpent-100.0/60.0) > 0.001 {
			t.Errorf("expected percent ~1.667, got %f", summary.PercentSpent)
		}
		if summary.Tier != TierHealthy {
			t.Errorf("expected healthy, got %s", summary.Tier)
		}
	})

	t.Run("ninety_five_percent_is_critical", func(t *testing.T) {
		expenses := []models.Expense{
			testutil.MakeExpense(t, "700", "Shopping", "2025-08-10"),
			testutil.MakeExpense(t, "250", "Transport", "2025-08-12"),
		}

		summary := Month(expenses, decimal.NewFromInt(1000), now)

		if summary.PercentSpent != 95 {
			t.Errorf("expected 95, got %f", summary.PercentSpent)
		}
		if summary.Tier != TierCritical {
			t.Errorf("expected critical, got %s", summary.Tier)
		}
	})

	t.Run("only_current_month_counts", func(t *testing.T) {
		expenses := []models.Expense{
			testutil.MakeExpense(t, "100", "Health", "2025-08-05"),
			testutil.MakeExpense(t, "999", "Health", "2025-07-31"),
			testutil.MakeExpense(t, "999", "Health", "2024-08-05"),
		}

		summary := Month(expenses, decimal.NewFromInt(30000), now)
		testutil.AssertDecimal(t, summary.TotalSpent, "100")
	})

	t.Run("remaining_goes_negative_percent_clamps", func(t *testing.T) {
		expenses := []models.Expense{
			testutil.MakeExpense(t, "250", "Bills & Utilities", "2025-08-15"),
		}

		summary := Month(expenses, decimal.NewFromInt(100), now)

		testutil.AssertDecimal(t, summary.Remaining, "-150")
		if summary.PercentSpent != 100 {
			t.Errorf("expected clamp at 100, got %f", summary.PercentSpent)
		}
		if summary.Tier != TierCritical {
			t.Errorf("expected critical, got %s", summary.Tier)
		}
	})

	t.Run("zero_budget_yields_zero_percent", func(t *testing.T) {
		expenses := []models.Expense{
			testutil.MakeExpense(t, "250", "Other", "2025-08-15"),
		}

		summary := Month(expenses, decimal.Zero, now)
		if summary.PercentSpent != 0 {
			t.Errorf("expected 0, got %f", summary.PercentSpent)
		}
		if summary.Tier != TierHealthy {
			t.Errorf("expected healthy, got %s", summary.Tier)
		}
	})

	t.Run("negative_budget_yields_zero_percent", func(t *testing.T) {
		summary := Month(nil, decimal.NewFromInt(-500), now)
		if summary.PercentSpent != 0 {
			t.Errorf("expected 0, got %f", summary.PercentSpent)
		}
	})

	t.Run("empty_store", func(t *testing.T) {
		summary := Month(nil, decimal.NewFromInt(30000), now)
		testutil.AssertDecimal(t, summary.TotalSpent, "0")
		testutil.AssertDecimal(t, summary.Remaining, "30000")
	})
}

func TestTierFor(t *testing.T) {
	cases := []struct {
		percent float64
		want    Tier
	}{
		{0, TierHealthy},
		{70, TierHealthy},
		{70.1, TierWarning},
		{90, TierWarning},
		{90.1, TierCritical},
		{100, TierCritical},
	}
	for _, c := range cases {
		if got := TierFor(c.percent); got != c.want {
			t.Errorf("TierFor(%v) = %s, want %s", c.percent, got, c.want)
		}
	}
}

func TestCategoryTotals(t *testing.T) {
	t.Run("partitions_month_spend", func(t *testing.T) {
		expenses := []models.Expense{
			testutil.MakeExpense(t, "300", "Food & Dining", "2025-08-01"),
			testutil.MakeExpense(t, "150", "Transport", "2025-08-02"),
			testutil.MakeExpense(t, "50", "Food & Dining", "2025-08-03"),
			testutil.MakeExpense(t, "999", "Shopping", "2025-07-15"), // prior month
		}

		totals := CategoryTotals(expenses, now)

		sum := decimal.Zero
		for _, ct := range totals {
			sum = sum.Add(ct.Total)
		}
		monthTotal := Month(expenses, decimal.Zero, now).TotalSpent
		if !sum.Equal(monthTotal) {
			t.Errorf("category totals %s do not partition month total %s", sum, monthTotal)
		}
	})

	t.Run("drops_zero_totals_and_sorts_descending", func(t *testing.T) {
		expenses := []models.Expense{
			testutil.MakeExpense(t, "100", "Transport", "2025-08-02"),
			testutil.MakeExpense(t, "400", "Education", "2025-08-04"),
		}

		totals := CategoryTotals(expenses, now)

		if len(totals) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(totals))
		}
		if totals[0].Name != "Education" {
			t.Errorf("expected Education first, got %s", totals[0].Name)
		}
		if totals[1].Name != "Transport" {
			t.Errorf("expected Transport second, got %s", totals[1].Name)
		}
	})

	t.Run("ties_keep_catalog_order", func(t *testing.T) {
		expenses := []models.Expense{
			testutil.MakeExpense(t, "100", "Other", "2025-08-02"),
			testutil.MakeExpense(t, "100", "Transport", "2025-08-04"),
		}

		totals := CategoryTotals(expenses, now)

		if totals[0].Name != "Transport" || totals[1].Name != "Other" {
			t.Errorf("expected catalog order on ties, got %s then %s", totals[0].Name, totals[1].Name)
		}
	})

	t.Run("empty_set_yields_empty_list", func(t *testing.T) {
		if len(CategoryTotals(nil, now)) != 0 {
			t.Error("expected empty totals")
		}
	})
}

func TestWeek(t *testing.T) {
	t.Run("always_seven_days_monday_first", func(t *testing.T) {
		series := Week(nil, now)

		if len(series.Days) != 7 {
			t.Fatalf("expected 7 days, got %d", len(series.Days))
		}
		labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
		for i, day := range series.Days {
			if day.Weekday != labels[i] {
				t.Errorf("day %d: expected %s, got %s", i, labels[i], day.Weekday)
			}
		}
	})

	t.Run("exactly_one_today", func(t *testing.T) {
		series := Week(nil, now)

		todays := 0
		for i, day := range series.Days {
			if day.IsToday {
				todays++
				// 2025-08-28 is a Thursday.
				if i != 3 {
					t.Errorf("expected Thursday slot, got index %d", i)
				}
				if day.DayOfMonth != 28 {
					t.Errorf("expected day 28, got %d", day.DayOfMonth)
				}
			}
		}
		if todays != 1 {
			t.Errorf("expected exactly one today, got %d", todays)
		}
	})

	t.Run("sunday_is_end_of_week", func(t *testing.T) {
		sunday := time.Date(2025, time.August, 31, 9, 0, 0, 0, time.UTC)
		series := Week(nil, sunday)

		if !series.Days[6].IsToday {
			t.Error("expected Sunday in the last slot")
		}
		if series.Days[0].DayOfMonth != 25 {
			t.Errorf("expected anchor Monday the 25th, got %d", series.Days[0].DayOfMonth)
		}
	})

	t.Run("prior_month_dates_in_window_count", func(t *testing.T) {
		// 2025-08-01 is a Friday; its week anchor is Monday 2025-07-28.
		friday := time.Date(2025, time.August, 1, 9, 0, 0, 0, time.UTC)
		expenses := []models.Expense{
			testutil.MakeExpense(t, "80", "Transport", "2025-07-29"),
			testutil.MakeExpense(t, "40", "Transport", "2025-08-01"),
		}

		series := Week(expenses, friday)

		testutil.AssertDecimal(t, series.Days[1].Total, "80") // Tuesday, July 29
		testutil.AssertDecimal(t, series.Days[4].Total, "40") // Friday, August 1
	})

	t.Run("max_day_total_has_floor_one", func(t *testing.T) {
		series := Week(nil, now)
		testutil.AssertDecimal(t, series.MaxDayTotal, "1")

		expenses := []models.Expense{
			testutil.MakeExpense(t, "320", "Shopping", "2025-08-26"),
		}
		series = Week(expenses, now)
		testutil.AssertDecimal(t, series.MaxDayTotal, "320")
	})
}

func TestToday(t *testing.T) {
	t.Run("filters_by_exact_date", func(t *testing.T) {
		expenses := []models.Expense{
			testutil.MakeExpense(t, "120", "Food & Dining", "2025-08-28"),
			testutil.MakeExpense(t, "60", "Transport", "2025-08-28"),
			testutil.MakeExpense(t, "999", "Shopping", "2025-08-27"),
		}

		summary := Today(expenses, now)

		testutil.AssertDecimal(t, summary.Total, "180")
		if summary.Count != 2 {
			t.Errorf("expected 2 transactions, got %d", summary.Count)
		}
		if len(summary.Expenses) != 2 {
			t.Errorf("expected 2 expenses, got %d", len(summary.Expenses))
		}
	})

	t.Run("empty_day", func(t *testing.T) {
		summary := Today(nil, now)

		testutil.AssertDecimal(t, summary.Total, "0")
		if summary.Count != 0 {
			t.Errorf("expected 0, got %d", summary.Count)
		}
		if summary.Expenses == nil {
			t.Error("expected empty slice, not nil")
		}
	})
}

func TestCompute(t *testing.T) {
	t.Run("month_statistics", func(t *testing.T) {
		expenses := []models.Expense{
			testutil.MakeExpense(t, "300", "Food & Dining", "2025-08-10"),
			testutil.MakeExpense(t, "100", "Transport", "2025-08-12"),
			testutil.MakeExpense(t, "100", "Food & Dining", "2025-08-14"),
		}

		stats := Compute(expenses, now)

		if stats.TransactionCount != 3 {
			t.Errorf("expected 3, got %d", stats.TransactionCount)
		}
		testutil.AssertDecimal(t, stats.AvgPerTransaction.Round(2), "166.67")
		// Day-of-month divisor: 500 / 28.
		testutil.AssertDecimal(t, stats.DailyAverage.Round(2), "17.86")
		testutil.AssertDecimal(t, stats.BiggestExpense, "300")

		if stats.TopCategory == nil {
			t.Fatal("expected a top category")
		}
		if stats.TopCategory.Name != "Food & Dining" {
			t.Errorf("expected Food & Dining, got %s", stats.TopCategory.Name)
		}
		testutil.AssertDecimal(t, stats.TopCategory.Total, "400")
		if math.Abs(stats.TopCategory.Percent-80) > 0.001 {
			t.Errorf("expected 80%%, got %f", stats.TopCategory.Percent)
		}
	})

	t.Run("empty_month", func(t *testing.T) {
		stats := Compute(nil, now)

		if stats.TransactionCount != 0 {
			t.Errorf("expected 0, got %d", stats.TransactionCount)
		}
		testutil.AssertDecimal(t, stats.AvgPerTransaction, "0")
		testutil.AssertDecimal(t, stats.DailyAverage, "0")
		testutil.AssertDecimal(t, stats.BiggestExpense, "0")
		if stats.TopCategory != nil {
			t.Error("expected nil top category")
		}
	})

	t.Run("prior_month_records_are_ignored", func(t *testing.T) {
		expenses := []models.Expense{
			testutil.MakeExpense(t, "900", "Shopping", "2025-07-10"),
		}

		stats := Compute(expenses, now)
		if stats.TransactionCount != 0 {
			t.Errorf("expected 0, got %d", stats.TransactionCount)
		}
		if stats.TopCategory != nil {
			t.Error("expected nil top category")
		}
	})
}
