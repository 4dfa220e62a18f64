package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/specflow/quote-server/internal/logger"
	"github.com/specflow/quote-server/internal/model"
	"github.com/specflow/quote-server/internal/pricing"
)

// Estimate validates raw door specifications and prices them. The path is
// stateless and side-effect-free except for the optional journal, which is
// strictly best-effort.
type Estimate struct {
	validator *pricing.Validator
	engine    *pricing.Engine
	journal   model.EstimateJournal
	logger    *logger.Logger
}

// NewEstimate creates an Estimate service. journal may be nil, in which case
// priced estimates are not recorded anywhere.
func NewEstimate(validator *pricing.Validator, engine *pricing.Engine, journal model.EstimateJournal, logger *logger.Logger) *Estimate {
	return &Estimate{
		validator: validator,
		engine:    engine,
		journal:   journal,
		logger:    logger,
	}
}

// Quote validates raw and returns the itemized price. A validation failure
// is returned as model.FieldErrors carrying every violated field.
func (s *Estimate) Quote(ctx context.Context, raw map[string]any) (model.PriceBreakdown, error) {
	spec, fieldErrs := s.validator.ParseSpec(raw)
	if fieldErrs != nil {
		return model.PriceBreakdown{}, fieldErrs
	}

	breakdown := s.engine.Estimate(spec)

	if s.journal != nil {
		entry := model.EstimateEntry{
			ID:        uuid.New(),
			Width:     spec.Width,
			Height:    spec.Height,
			Material:  spec.Material,
			Hardware:  spec.Hardware,
			Total:     breakdown.Total,
			CreatedAt: time.Now().UTC(),
		}
		// Journal failures never fail the estimate.
		if err := s.journal.Append(ctx, entry); err != nil {
			s.logger.Error("failed to journal estimate", "error", err)
		}
	}

	return breakdown, nil
}
