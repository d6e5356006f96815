package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vasavigrand/vgbilling/internal/bill/domain"
)

type gormSequence struct {
	db  *gorm.DB
	key string
}

// NewGormSequence stores the counter in the bill_sequences table under a
// fixed key. The row holds the next number to hand out.
func NewGormSequence(db *gorm.DB, key string) domain.SequenceGenerator {
	return &gormSequence{db: db, key: key}
}

func (s *gormSequence) Next(ctx context.Context) (int64, error) {
	var value int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			`INSERT INTO bill_sequences (key, value) VALUES (?, 1) ON CONFLICT(key) DO NOTHING`,
			s.key,
		).Error; err != nil {
			return err
		}
		if err := tx.Raw(
			`SELECT value FROM bill_sequences WHERE key = ?`, s.key,
		).Scan(&value).Error; err != nil {
			return err
		}
		return tx.Exec(
			`UPDATE bill_sequences SET value = value + 1, updated_at = CURRENT_TIMESTAMP WHERE key = ?`,
			s.key,
		).Error
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}

func (s *gormSequence) Reset(ctx context.Context) error {
	return s.db.WithContext(ctx).Exec(
		`INSERT INTO bill_sequences (key, value) VALUES (?, 1)
		 ON CONFLICT(key) DO UPDATE SET value = 1, updated_at = CURRENT_TIMESTAMP`,
		s.key,
	).Error
}
