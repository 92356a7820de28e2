package mood

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository persists mood entries.
type Repository interface {
	Save(ctx context.Context, e *Entry) error
	// ListByUser returns the user's entries, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]Entry, error)
}

// GormRepository stores entries through GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a repository over db.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Migrate creates or updates the entries table.
func (r *GormRepository) Migrate() error {
	if err := r.db.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("migrate %s: %w", TableName, err)
	}
	return nil
}

// Save inserts e.
func (r *GormRepository) Save(ctx context.Context, e *Entry) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("save mood entry: %w", err)
	}
	return nil
}

// ListByUser returns up to limit entries (all when limit <= 0), newest first.
func (r *GormRepository) ListByUser(ctx context.Context, userID string, limit int) ([]Entry, error) {
	var entries []Entry
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list mood entries: %w", err)
	}
	return entries, nil
}
