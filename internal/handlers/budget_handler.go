package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/store"
)

// BudgetHandler handles monthly budget requests.
type BudgetHandler struct {
	store store.Storer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(s store.Storer) *BudgetHandler {
	return &BudgetHandler{store: s}
}

// SetBudgetRequest represents the request payload for setting the budget.
// Value is a string: non-numeric or empty input silently keeps the
// previous budget, so there is no binding constraint on it.
type SetBudgetRequest struct {
	Value string `json:"value"`
}

// GetBudget handles reading the current monthly budget.
// @Summary     Get budget
// @Description The monthly budget currently in effect
// @Tags        budget
// @Produce     json
// @Success     200 {object} map[string]string "Current budget"
// @Router      /budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"budget": h.store.Budget()})
}

// SetBudget handles replacing the monthly budget. Invalid input is not an
// error: the previous value stays in effect and is returned, matching the
// product's silent-fallback behavior.
// @Summary     Set budget
// @Description Replace the monthly budget; invalid input keeps the previous value
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       request body SetBudgetRequest true "New budget value"
// @Success     200 {object} map[string]string "Budget in effect after the call"
// @Failure     400 {object} ErrorResponse "Malformed body"
// @Router      /budget [put]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": h.store.SetBudget(req.Value)})
}
