// Package pipeline joins the input snapshot into one feature row per
// account and computes both migration scenarios for each. Accounts are
// independent, so the scenario map runs on a bounded worker pool; results
// land in a pre-sized slice by input index, keeping output order equal to
// source order regardless of completion order.
package pipeline

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"plan-migrate/core/credits"
	"plan-migrate/core/optimizer"
	"plan-migrate/core/output"
	"plan-migrate/core/types"
	"plan-migrate/ingest"
	"plan-migrate/internal/logging"
)

// Pipeline computes migration scenarios for a snapshot
type Pipeline struct {
	calc    *credits.Calculator
	opt     *optimizer.Optimizer
	workers int
}

// New builds a pipeline. A non-positive worker count defaults to
// GOMAXPROCS.
func New(calc *credits.Calculator, opt *optimizer.Optimizer, workers int) *Pipeline {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pipeline{calc: calc, opt: opt, workers: workers}
}

// Summary describes one completed run
type Summary struct {
	// RunID uniquely identifies the run
	RunID string

	// Accounts is the number of output rows
	Accounts int

	// ARRChangeTotal is the sum of least-cost ARR changes across accounts
	ARRChangeTotal int64

	// Duration is the wall-clock run time
	Duration time.Duration
}

// Result is the full outcome of a run
type Result struct {
	Rows    []output.Row
	Summary Summary
}

// Run computes one output row per billable account
func (p *Pipeline) Run(ctx context.Context, snap *ingest.Snapshot) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()

	features := p.assembleFeatures(snap)
	rows := make([]output.Row, len(features))

	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				rows[i] = p.computeRow(features[i])
			}
		}()
	}

	var err error
dispatch:
	for i := range features {
		select {
		case indices <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break dispatch
		}
	}
	close(indices)
	wg.Wait()
	if err != nil {
		return nil, err
	}

	summary := Summary{
		RunID:    runID,
		Accounts: len(rows),
		ARRChangeTotal: lo.SumBy(rows, func(r output.Row) int64 {
			return r.LeastCostARRChange
		}),
		Duration: time.Since(start),
	}

	logging.Info("migration scenarios computed",
		zap.String("run_id", summary.RunID),
		zap.Int("accounts", summary.Accounts),
		zap.Int64("arr_change_total", summary.ARRChangeTotal),
		zap.Duration("duration", summary.Duration),
	)

	return &Result{Rows: rows, Summary: summary}, nil
}

// computeRow runs both optimizer scenarios for one account and truncates
// every monetary and credit figure to integers at this boundary
func (p *Pipeline) computeRow(f accountFeatures) output.Row {
	profile := types.AccountUsageProfile{
		Segment:         f.company.Type,
		SubAccountCount: f.orgCount,
		RequiredUnits:   f.creditsCapacity,
		CurrentRevenue:  f.revenue.currentMRR,
	}

	leastCost := p.opt.LeastCost(profile)
	matchRevenue := p.opt.MatchRevenue(profile)

	return output.Row{
		CompanyName:   f.company.Name,
		CompanyDomain: lo.FromPtr(f.company.Domain),
		CompanyType:   f.company.Type.String(),

		CurrentMRR:  f.revenue.currentMRR.IntPart(),
		CurrentARR:  f.revenue.currentARR.IntPart(),
		DiscountPct: f.revenue.discountPct,
		Discounts:   f.revenue.annotation,
		Interval:    f.revenue.interval,

		PromptCapacity: f.promptCapacity,
		PromptUsage:    f.promptUsage,
		OrgsCount:      int64(f.orgCount),
		OrgsCountHF:    int64(f.hfOrgCount),

		RequiredCredits: f.creditsCapacity.IntPart(),

		LeastCostPlanName:       leastCost.PlanName,
		LeastCostMRR:            leastCost.Cost.IntPart(),
		LeastCostMRRChange:      leastCost.CostDelta.IntPart(),
		LeastCostARRChange:      leastCost.CostDelta.Mul(monthsPerYear).IntPart(),
		LeastCostExtraCredits:   leastCost.ExtraUnits.IntPart(),
		LeastCostSurplusCredits: leastCost.SurplusUnits.IntPart(),

		MatchMRRPlanName:       matchRevenue.PlanName,
		MatchMRRMRR:            matchRevenue.Cost.IntPart(),
		MatchMRRExtraCredits:   matchRevenue.ExtraUnits.IntPart(),
		MatchMRRSurplusCredits: matchRevenue.SurplusUnits.IntPart(),
	}
}
