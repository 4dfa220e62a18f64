package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/specflow/quote-server/internal/id"
	"github.com/specflow/quote-server/internal/logger"
	"github.com/specflow/quote-server/internal/model"
)

// DefaultListLimit caps lead listings when the caller does not say otherwise.
const DefaultListLimit = 200

// Lead manages stored sales inquiries over a keyed store. There are no
// retries here: a store failure surfaces to the caller of that one request.
type Lead struct {
	store  model.KeyValueStore
	ids    id.Generator
	prefix string
	logger *logger.Logger
}

// NewLead creates a Lead service. prefix is prepended to every lead ID to
// form its storage key, which scopes prefix enumeration to leads.
func NewLead(store model.KeyValueStore, ids id.Generator, prefix string, logger *logger.Logger) *Lead {
	return &Lead{
		store:  store,
		ids:    ids,
		prefix: prefix,
		logger: logger,
	}
}

// CreateLeadParams contains the raw submission fields.
type CreateLeadParams struct {
	Name    string
	Email   string
	Message string
}

// Create trims and validates the submission, assigns a fresh ID, and writes
// the lead. Every empty-after-trim field is reported, not just the first.
func (s *Lead) Create(ctx context.Context, params CreateLeadParams) (model.Lead, error) {
	lead := model.Lead{
		Name:    strings.TrimSpace(params.Name),
		Email:   strings.TrimSpace(params.Email),
		Message: strings.TrimSpace(params.Message),
	}

	missing := model.MissingFieldsError{}
	if lead.Name == "" {
		missing = append(missing, "name")
	}
	if lead.Email == "" {
		missing = append(missing, "email")
	}
	if lead.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return model.Lead{}, missing
	}

	leadID, err := s.ids.NewID()
	if err != nil {
		return model.Lead{}, fmt.Errorf("failed to generate lead id: %w", err)
	}
	lead.ID = leadID
	lead.CreatedAt = time.Now().UTC()

	data, err := json.Marshal(lead)
	if err != nil {
		return model.Lead{}, fmt.Errorf("failed to marshal lead: %w", err)
	}

	if err := s.store.Put(ctx, s.key(leadID), data); err != nil {
		return model.Lead{}, fmt.Errorf("failed to store lead: %w", err)
	}

	return lead, nil
}

// List returns up to limit leads in the store's enumeration order. That
// order is not chronological, and when more leads exist than limit the
// returned subset follows enumeration order too; callers wanting recency
// sort by CreatedAt after retrieval.
func (s *Lead) List(ctx context.Context, limit int) ([]model.Lead, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	keys, err := s.store.List(ctx, s.prefix, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	leads := make([]model.Lead, 0, len(keys))
	for _, key := range keys {
		data, err := s.store.Get(ctx, key)
		if errors.Is(err, model.ErrNotFound) {
			// Deleted between listing and read; skip.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read lead %s: %w", key, err)
		}

		var lead model.Lead
		if err := json.Unmarshal(data, &lead); err != nil {
			s.logger.Warn("skipping undecodable lead", "key", key, "error", err)
			continue
		}
		leads = append(leads, lead)
	}

	return leads, nil
}

// Get returns the lead with the given ID, or model.ErrNotFound.
func (s *Lead) Get(ctx context.Context, leadID string) (model.Lead, error) {
	data, err := s.store.Get(ctx, s.key(leadID))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Lead{}, model.ErrNotFound
		}
		return model.Lead{}, fmt.Errorf("failed to read lead: %w", err)
	}

	var lead model.Lead
	if err := json.Unmarshal(data, &lead); err != nil {
		return model.Lead{}, fmt.Errorf("failed to unmarshal lead: %w", err)
	}

	return lead, nil
}

// Delete removes the lead if present. Deleting an absent ID succeeds; the
// only transitions a lead knows are absent to present and back.
func (s *Lead) Delete(ctx context.Context, leadID string) error {
	if err := s.store.Delete(ctx, s.key(leadID)); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	return nil
}

func (s *Lead) key(leadID string) string {
	return s.prefix + leadID
}
