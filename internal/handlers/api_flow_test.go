package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"spendwise/internal/store"
	"spendwise/internal/testutil"
)

// setupAPIRouter wires the full v1 surface the way cmd/api does, minus
// middleware that only matters in a live process.
func setupAPIRouter(s *store.Store) *gin.Engine {
	expenseHandler := NewExpenseHandler(s)
	budgetHandler := NewBudgetHandler(s)
	summaryHandler := NewSummaryHandler(s, testutil.FixedClock(testNow))

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		v1.POST("/expenses", expenseHandler.CreateExpense)
		v1.GET("/expenses", expenseHandler.ListExpenses)
		v1.PUT("/expenses/:id", expenseHandler.UpdateExpense)
		v1.DELETE("/expenses/:id", expenseHandler.DeleteExpense)
		v1.GET("/categories", expenseHandler.ListCategories)
		v1.GET("/budget", budgetHandler.GetBudget)
		v1.PUT("/budget", budgetHandler.SetBudget)
		v1.GET("/summary", summaryHandler.GetMonthSummary)
		v1.GET("/summary/week", summaryHandler.GetWeeklySeries)
		v1.GET("/summary/categories", summaryHandler.GetCategoryTotals)
		v1.GET("/summary/today", summaryHandler.GetTodaySummary)
		v1.GET("/insights", summaryHandler.GetInsights)
	}
	return r
}

func TestExpenseLifecycleFlow(t *testing.T) {
	s := newTestStore()
	r := setupAPIRouter(s)

	// Record two expenses.
	rec := doRequest(r, "POST", "/api/v1/expenses",
		`{"amount":"400","description":"Groceries run","category_index":0,"date":"2025-08-28"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	first := parseJSON(t, rec)["expense"].(map[string]interface{})
	firstID := first["id"].(string)

	rec = doRequest(r, "POST", "/api/v1/expenses",
		`{"amount":"100","category_index":1,"date":"2025-08-25"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", rec.Code)
	}

	// Listing shows both, and the month summary reflects their sum.
	rec = doRequest(r, "GET", "/api/v1/expenses", "")
	if parseJSON(t, rec)["count"].(float64) != 2 {
		t.Fatal("expected 2 expenses listed")
	}

	rec = doRequest(r, "GET", "/api/v1/summary", "")
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["total_spent"] != "500" {
		t.Errorf("expected total_spent 500, got %v", summary["total_spent"])
	}

	// Edit the first expense; the summary follows.
	rec = doRequest(r, "PUT", "/api/v1/expenses/"+firstID,
		`{"amount":"250","description":"Groceries run","category_index":0,"date":"2025-08-28"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(r, "GET", "/api/v1/summary", "")
	summary = parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["total_spent"] != "350" {
		t.Errorf("expected total_spent 350 after edit, got %v", summary["total_spent"])
	}

	// Lower the budget far enough to flip the tier.
	rec = doRequest(r, "PUT", "/api/v1/budget", `{"value":"360"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("budget: expected 200, got %d", rec.Code)
	}

	rec = doRequest(r, "GET", "/api/v1/summary", "")
	summary = parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["tier"] != "critical" {
		t.Errorf("expected critical tier at 350/360, got %v", summary["tier"])
	}

	// Delete the first expense and verify the store drained it everywhere.
	rec = doRequest(r, "DELETE", "/api/v1/expenses/"+firstID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}

	rec = doRequest(r, "GET", "/api/v1/expenses", "")
	if parseJSON(t, rec)["count"].(float64) != 1 {
		t.Error("expected 1 expense after delete")
	}

	rec = doRequest(r, "GET", "/api/v1/summary/today", "")
	today := parseJSON(t, rec)["today"].(map[string]interface{})
	if today["count"].(float64) != 0 {
		t.Errorf("expected nothing dated today after delete, got %v", today["count"])
	}
}
