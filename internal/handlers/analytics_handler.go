package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fintrack/internal/ledger"
	"fintrack/internal/services"
)

// defaultBudgets are the per-category monthly budgets used for the
// budget progress bars when a user has not configured their own.
var defaultBudgets = map[string]float64{
	"food":          600,
	"transport":     300,
	"shopping":      400,
	"bills":         800,
	"health":        250,
	"entertainment": 150,
	"education":     100,
	"service":       60,
}

// AnalyticsHandler serves the derived views: dashboard summary,
// date-grouped transactions, category breakdown with budget progress,
// and the month-over-month spending insight.
type AnalyticsHandler struct {
	dashboard    *services.DashboardService
	transactions services.TransactionGateway
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(dashboard *services.DashboardService, transactions services.TransactionGateway) *AnalyticsHandler {
	return &AnalyticsHandler{dashboard: dashboard, transactions: transactions}
}

// Summary refreshes and returns the full dashboard snapshot.
// @Summary     Dashboard summary
// @Description Fetch, normalize, and aggregate the full transaction snapshot
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Store unavailable"
// @Router      /analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	snapshot, err := h.dashboard.Refresh(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Grouped returns transactions partitioned by date token.
// @Summary     Transactions grouped by date
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Store unavailable"
// @Router      /analytics/grouped [get]
func (h *AnalyticsHandler) Grouped(c *gin.Context) {
	snapshot, err := h.dashboard.Refresh(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"groups":  snapshot.Groups,
		"skipped": snapshot.SkippedRecords,
	})
}

// CategoryBudget is one row of the category breakdown with its budget
// progress.
type CategoryBudget struct {
	ledger.CategorySpend
	Budget   float64 `json:"budget"`
	Progress float64 `json:"progress"`
}

// Categories returns the expense breakdown with per-category budget
// progress.
// @Summary     Category spending breakdown
// @Description Expense totals per category with share of total and budget progress
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Store unavailable"
// @Router      /analytics/categories [get]
func (h *AnalyticsHandler) Categories(c *gin.Context) {
	snapshot, err := h.dashboard.Refresh(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets := make([]CategoryBudget, 0, len(snapshot.Categories))
	for _, spend := range snapshot.Categories {
		budget := defaultBudgets[strings.ToLower(spend.Category)]
		budgets = append(budgets, CategoryBudget{
			CategorySpend: spend,
			Budget:        budget,
			Progress:      ledger.CategoryProgress(spend.Spent, budget),
		})
	}

	c.JSON(http.StatusOK, gin.H{"categories": budgets})
}

// Insight returns the month-over-month expense trend.
// @Summary     Spending insight
// @Description Compare the two most recent months of expenses
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Store unavailable"
// @Router      /analytics/insight [get]
func (h *AnalyticsHandler) Insight(c *gin.Context) {
	raws, err := h.transactions.List(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, _ := ledger.NormalizeAll(raws)
	series := ledger.MonthlySeries(transactions)

	insight, ok := ledger.SpendingInsight(series)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"series": series, "insight": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": series, "insight": insight})
}
