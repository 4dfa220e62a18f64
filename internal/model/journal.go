package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EstimateEntry is one journaled estimate request with its priced total.
type EstimateEntry struct {
	ID        uuid.UUID
	Width     float64
	Height    float64
	Material  string
	Hardware  []string
	Total     float64
	CreatedAt time.Time
}

// EstimateJournal records priced estimates for later analysis. Appending is
// best-effort from the caller's point of view: a journal failure must never
// fail the estimate that produced it.
type EstimateJournal interface {
	Append(ctx context.Context, entry EstimateEntry) error
}
