package migration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vasavigrand/vgbilling/internal/config"
)

const createBillSequences = `
CREATE TABLE IF NOT EXISTS bill_sequences (
	key        TEXT PRIMARY KEY,
	value      INTEGER NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Run applies the schema and seeds the configured sequence row at its initial
// value. Re-running is a no-op; rewinding an existing counter is the
// administrative reset's job, never done here.
func Run(db *gorm.DB, cfg *config.Config) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := db.WithContext(ctx).Exec(createBillSequences).Error; err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	err := db.WithContext(ctx).Exec(
		`INSERT INTO bill_sequences (key, value) VALUES (?, 1) ON CONFLICT(key) DO NOTHING`,
		cfg.Sequence.Key,
	).Error
	if err != nil {
		return fmt.Errorf("seed sequence: %w", err)
	}

	return nil
}
