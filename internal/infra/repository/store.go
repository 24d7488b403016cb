package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
)

// GormStore implements records.Store on postgres through gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Transaction(
	ctx context.Context,
	fn func(tx records.Store) error,
) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

// deleteByID removes one row of model and reports ErrNotFound when none matched.
func (s *GormStore) deleteByID(ctx context.Context, model any, id uint) error {
	res := s.db.WithContext(ctx).Delete(model, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return records.ErrNotFound
	}
	return nil
}

func (s *GormStore) nameTaken(ctx context.Context, model any, name string, excludeID uint) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(model).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// Compile-time check
var _ records.Store = (*GormStore)(nil)
