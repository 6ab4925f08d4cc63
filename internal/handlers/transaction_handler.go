package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/ledger"
	"fintrack/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactions services.TransactionGateway
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactions services.TransactionGateway) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// CreateTransactionRequest represents the request payload for creating a
// transaction. Amount is untyped on purpose: clients send it as either a
// JSON string or a number, and the normalizer accepts both.
type CreateTransactionRequest struct {
	Type        string `json:"type" binding:"required,transaction_type"`
	Amount      any    `json:"amount" binding:"required"`
	Title       string `json:"title" binding:"required,max=200"`
	Category    string `json:"category" binding:"required,max=50"`
	Description string `json:"description" binding:"max=500"`
	Date        string `json:"date" binding:"max=50"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Create a new income or expense record
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date := req.Date
	if date == "" {
		date = "Today"
	}

	id, err := h.transactions.Create(c.Request.Context(), ledger.RawRecord{
		Type:        req.Type,
		Amount:      req.Amount,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListTransactions returns the normalized snapshot with optional
// category/type/text filters applied, plus the summary of the filtered
// subset shown at the top of the transactions screen.
// @Summary     List transactions
// @Description Get normalized transactions with optional filters and a summary of the filtered subset
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       category query string false "Filter by category code (case-insensitive)"
// @Param       type     query string false "Filter by type (income, expense, or All)"
// @Param       q        query string false "Case-insensitive substring match on title or category"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Store unavailable"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var opts struct {
		Category string `form:"category" binding:"max=50"`
		Type     string `form:"type" binding:"filter_type"`
		Query    string `form:"q" binding:"max=200"`
	}
	if err := c.ShouldBindQuery(&opts); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	raws, err := h.transactions.List(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, skipped := ledger.NormalizeAll(raws)
	filtered := ledger.Filter(transactions, ledger.FilterOptions{
		Category: opts.Category,
		Type:     opts.Type,
		Query:    opts.Query,
	})

	c.JSON(http.StatusOK, gin.H{
		"data":    filtered,
		"summary": ledger.ComputeSummary(filtered),
		"skipped": len(skipped),
	})
}

// UpdateTransaction applies a partial patch to a transaction.
// @Summary     Update a transaction
// @Description Partially update a transaction record
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string true "Transaction ID"
// @Param       request body services.TransactionPatch true "Fields to update"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id := c.Param("id")

	var patch services.TransactionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.transactions.Update(c.Request.Context(), id, patch); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DeleteTransaction removes a transaction record.
// @Summary     Delete a transaction
// @Tags        transactions
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.transactions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
