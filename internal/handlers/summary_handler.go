package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spendwise/internal/insights"
	"spendwise/internal/store"
)

// SummaryHandler serves the aggregation engine's derived views. The clock
// is injected so every derivation gets an explicit "now" and tests can pin
// the date.
type SummaryHandler struct {
	store store.Storer
	now   func() time.Time
}

// NewSummaryHandler creates a new SummaryHandler. Pass nil for time.Now.
func NewSummaryHandler(s store.Storer, clock func() time.Time) *SummaryHandler {
	if clock == nil {
		clock = time.Now
	}
	return &SummaryHandler{store: s, now: clock}
}

// GetMonthSummary handles the month budget summary.
// @Summary     Month summary
// @Description Total spent, remaining, percent spent (clamped at 100), and budget-health tier for the current month
// @Tags        summary
// @Produce     json
// @Success     200 {object} insights.MonthSummary "Month summary"
// @Router      /summary [get]
func (h *SummaryHandler) GetMonthSummary(c *gin.Context) {
	summary := insights.Month(h.store.List(), h.store.Budget(), h.now())
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetWeeklySeries handles the Monday-anchored 7-day series.
// @Summary     Weekly series
// @Description Seven entries, Monday through Sunday of the current week, with per-day totals over the full record set
// @Tags        summary
// @Produce     json
// @Success     200 {object} insights.WeeklySeries "Weekly series"
// @Router      /summary/week [get]
func (h *SummaryHandler) GetWeeklySeries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"week": insights.Week(h.store.List(), h.now())})
}

// GetCategoryTotals handles the sorted per-category month totals.
// @Summary     Category totals
// @Description Current-month spend per category, zero totals dropped, sorted descending
// @Tags        summary
// @Produce     json
// @Success     200 {array} insights.CategoryTotal "Category totals"
// @Router      /summary/categories [get]
func (h *SummaryHandler) GetCategoryTotals(c *gin.Context) {
	totals := insights.CategoryTotals(h.store.List(), h.now())
	c.JSON(http.StatusOK, gin.H{"categories": totals})
}

// GetTodaySummary handles today's transactions and total.
// @Summary     Today's spending
// @Description Expenses dated today with their total and count
// @Tags        summary
// @Produce     json
// @Success     200 {object} insights.TodaySummary "Today's summary"
// @Router      /summary/today [get]
func (h *SummaryHandler) GetTodaySummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"today": insights.Today(h.store.List(), h.now())})
}

// GetInsights handles the month's insight statistics.
// @Summary     Insights
// @Description Transaction count, averages, biggest expense, and top category for the current month
// @Tags        insights
// @Produce     json
// @Success     200 {object} insights.Stats "Insight statistics"
// @Router      /insights [get]
func (h *SummaryHandler) GetInsights(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"insights": insights.Compute(h.store.List(), h.now())})
}
