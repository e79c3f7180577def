// Package ingest - Snapshot file loading
package ingest

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"plan-migrate/core/types"
	"plan-migrate/internal/config"
	"plan-migrate/internal/errors"
	"plan-migrate/internal/logging"
)

// Loader reads snapshot JSON files from a data directory
type Loader struct {
	cfg config.DataConfig
}

// NewLoader creates a loader for the configured data directory
func NewLoader(cfg config.DataConfig) *Loader {
	return &Loader{cfg: cfg}
}

// Load reads, validates, and filters the full snapshot
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	companies, err := loadFile[types.Company](ctx, l.path(l.cfg.CompaniesFile))
	if err != nil {
		return nil, err
	}
	organizations, err := loadFile[types.Organization](ctx, l.path(l.cfg.OrganizationsFile))
	if err != nil {
		return nil, err
	}
	items, err := loadFile[types.SubscriptionItem](ctx, l.path(l.cfg.SubscriptionItemsFile))
	if err != nil {
		return nil, err
	}
	coupons, err := loadFile[types.Coupon](ctx, l.path(l.cfg.CouponsFile))
	if err != nil {
		return nil, err
	}
	prices, err := loadFile[types.Price](ctx, l.path(l.cfg.PricesFile))
	if err != nil {
		return nil, err
	}
	products, err := loadFile[types.Product](ctx, l.path(l.cfg.ProductsFile))
	if err != nil {
		return nil, err
	}

	billable := lo.Filter(companies, func(c types.Company, _ int) bool {
		return c.Billable()
	})

	snapshot := &Snapshot{
		Companies:         billable,
		Organizations:     organizations,
		SubscriptionItems: items,
		Coupons:           lo.KeyBy(coupons, func(c types.Coupon) string { return c.ID }),
		Prices:            lo.KeyBy(prices, func(p types.Price) string { return p.ID }),
		Products:          lo.KeyBy(products, func(p types.Product) string { return p.ID }),
	}

	if err := validate(snapshot); err != nil {
		return nil, err
	}

	logging.Info("snapshot loaded",
		zap.Int("companies", len(billable)),
		zap.Int("companies_skipped", len(companies)-len(billable)),
		zap.Int("organizations", len(organizations)),
		zap.Int("subscription_items", len(items)),
		zap.Int("coupons", len(coupons)),
		zap.Int("prices", len(prices)),
		zap.Int("products", len(products)),
	)
	return snapshot, nil
}

func (l *Loader) path(name string) string {
	return filepath.Join(l.cfg.Dir, name)
}

// loadFile decodes one JSON array file into typed records
func loadFile[T any](ctx context.Context, path string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeInput, err, "reading snapshot file %s", path)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Parsing("snapshot file "+path, err)
	}
	return records, nil
}

// validate enforces the record-level preconditions the core relies on.
// The core never re-checks these.
func validate(s *Snapshot) error {
	for _, c := range s.Companies {
		if c.ID == "" {
			return errors.Validation("company", c.StripeCustomerID, "id", "is required")
		}
		if _, err := types.ParseSegment(string(c.Type)); err != nil {
			return errors.Validation("company", c.ID, "type", "is not a known segment")
		}
	}
	for _, o := range s.Organizations {
		if o.CompanyID == "" {
			return errors.Validation("organization", o.ID, "companyId", "is required")
		}
		if o.PromptLimit < 0 {
			return errors.Validation("organization", o.ID, "promptLimit", "must be non-negative")
		}
		if o.PromptsCount < 0 {
			return errors.Validation("organization", o.ID, "promptsCount", "must be non-negative")
		}
	}
	for _, item := range s.SubscriptionItems {
		if item.CustomerID == "" {
			return errors.Validation("subscription item", item.PlanID, "customer_id", "is required")
		}
		if item.Quantity < 0 {
			return errors.Validation("subscription item", item.PlanID, "quantity", "must be non-negative")
		}
		if item.MRRCents.IsNegative() {
			return errors.Validation("subscription item", item.PlanID, "mrr_cents", "must be non-negative")
		}
	}
	return nil
}
