package services

import (
	"context"
	"sync"

	"fintrack/internal/ledger"
	"fintrack/internal/logger"
	"fintrack/internal/refresh"
)

// DashboardSnapshot is the derived state behind the dashboard screen:
// totals, savings progress, date-grouped transactions, and the
// category spending breakdown, all computed from one fetch.
type DashboardSnapshot struct {
	Summary         ledger.Summary         `json:"summary"`
	SavingsGoal     float64                `json:"savings_goal"`
	SavingsProgress int                    `json:"savings_progress"`
	Groups          []ledger.DateGroup     `json:"groups"`
	Categories      []ledger.CategorySpend `json:"categories"`
	SkippedRecords  int                    `json:"skipped_records"`
}

// DashboardService runs the fetch-then-compute cycle for the dashboard
// view. Each Refresh supersedes any in-flight one: the coordinator
// cancels the older fetch and refuses its commit, so whichever
// response resolves last cannot overwrite newer state.
//
// The snapshot is owned by this service instance alone; there is no
// cross-screen shared cache. Other views re-fetch independently.
type DashboardService struct {
	transactions TransactionGateway
	savingsGoal  float64

	coord refresh.Coordinator

	mu     sync.RWMutex
	latest *DashboardSnapshot
}

// NewDashboardService creates a DashboardService with the given
// default savings goal.
func NewDashboardService(transactions TransactionGateway, savingsGoal float64) *DashboardService {
	return &DashboardService{transactions: transactions, savingsGoal: savingsGoal}
}

// Refresh fetches the full snapshot, normalizes it, and recomputes all
// derived state. Records that fail normalization are skipped and
// counted rather than failing the batch.
func (s *DashboardService) Refresh(ctx context.Context) (*DashboardSnapshot, error) {
	cycleCtx, gen := s.coord.Begin(ctx)

	raws, err := s.transactions.List(cycleCtx)
	if err != nil {
		return nil, err
	}

	transactions, skipped := ledger.NormalizeAll(raws)
	for _, sk := range skipped {
		logger.Named("dashboard").Warnw("skipping malformed record",
			"id", sk.ID,
			"error", sk.Err.Error(),
		)
	}

	summary := ledger.ComputeSummary(transactions)
	snapshot := &DashboardSnapshot{
		Summary:         summary,
		SavingsGoal:     s.savingsGoal,
		SavingsProgress: ledger.SavingsProgress(summary.NetBalance, s.savingsGoal),
		Groups:          ledger.GroupByDate(transactions),
		Categories:      ledger.CategoryBreakdown(transactions),
		SkippedRecords:  len(skipped),
	}

	s.coord.Commit(gen, func() {
		s.mu.Lock()
		s.latest = snapshot
		s.mu.Unlock()
	})

	return snapshot, nil
}

// Latest returns the most recently committed snapshot, or nil before
// the first successful refresh.
func (s *DashboardService) Latest() *DashboardSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}
