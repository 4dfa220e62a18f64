package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/specflow/quote-server/internal/model"
)

var _ model.EstimateJournal = (*JournalRepository)(nil)

// JournalRepository persists priced estimates. The estimate request itself
// stays ephemeral; rows land here only when journaling is enabled.
type JournalRepository struct {
	db *Connection
}

func NewJournalRepository(db *Connection) *JournalRepository {
	return &JournalRepository{
		db: db,
	}
}

func (r *JournalRepository) Append(ctx context.Context, entry model.EstimateEntry) error {
	hardware, err := json.Marshal(entry.Hardware)
	if err != nil {
		return fmt.Errorf("failed to marshal hardware list: %w", err)
	}

	const query = `
		INSERT INTO estimates (id, width, height, material, hardware, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := r.db.Exec(ctx, query,
		entry.ID, entry.Width, entry.Height, entry.Material, hardware, entry.Total, entry.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert estimate: %w", err)
	}

	return nil
}
