package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/store"
)

// ExpenseHandler handles expense mutation and listing requests.
type ExpenseHandler struct {
	store store.Storer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(s store.Storer) *ExpenseHandler {
	return &ExpenseHandler{store: s}
}

// ExpenseRequest represents the request payload for creating or updating
// an expense. Amount is a string on the wire so the store can reject
// non-numeric input itself instead of the JSON decoder doing it.
type ExpenseRequest struct {
	Amount        string `json:"amount" binding:"required"`
	Description   string `json:"description"`
	CategoryIndex int    `json:"category_index"`
	Date          string `json:"date" binding:"required,expense_date"`
}

// listExpensesQuery binds the optional category filter for listings.
type listExpensesQuery struct {
	Category string `form:"category" binding:"omitempty,category_filter"`
}

func (r ExpenseRequest) toInput() store.ExpenseInput {
	return store.ExpenseInput{
		Amount:        r.Amount,
		Description:   r.Description,
		CategoryIndex: r.CategoryIndex,
		Date:          r.Date,
	}
}

// CreateExpense handles recording a new expense.
// @Summary     Add an expense
// @Description Record a new spending event; it becomes the head of the listing
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Validation failure"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.store.Add(req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// UpdateExpense handles editing an existing expense in place.
// @Summary     Update an expense
// @Description Replace the mutable fields of an expense; id and created_at are preserved
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       id      path string         true "Expense ID"
// @Param       request body ExpenseRequest true "Expense details"
// @Success     200 {object} models.Expense "Expense updated"
// @Failure     400 {object} ErrorResponse "Validation failure"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.store.Update(c.Param("id"), req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles removing an expense.
// @Summary     Delete an expense
// @Description Remove an expense by id
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     204 "Expense deleted"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListExpenses handles listing expenses, optionally filtered by category.
// @Summary     List expenses
// @Description List expenses, newest date first; filter by a category name or "All"
// @Tags        expenses
// @Produce     json
// @Param       category query string false "Category name or All (default All)"
// @Success     200 {array} models.Expense "Expenses"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var query listExpensesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"category must be \"All\" or a known category name"))
		return
	}
	if query.Category == "" {
		query.Category = store.FilterAll
	}

	expenses := h.store.ListFiltered(query.Category)
	c.JSON(http.StatusOK, gin.H{
		"expenses": expenses,
		"count":    len(expenses),
	})
}

// ListCategories handles listing the fixed category catalog.
// @Summary     List categories
// @Description The fixed category catalog in picker order
// @Tags        categories
// @Produce     json
// @Success     200 {array} models.Category "Categories"
// @Router      /categories [get]
func (h *ExpenseHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.Categories})
}
