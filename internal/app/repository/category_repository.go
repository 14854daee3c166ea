package repository

import (
	"github.com/dkwon/shoplab-backend/internal/app/model"
	"github.com/dkwon/shoplab-backend/pkg/logger"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	BulkCreate(categories []model.Category, batchSize int) error
	Count() (int64, error)
	IDs() ([]uint, error)
	FindAll() ([]model.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) BulkCreate(categories []model.Category, batchSize int) error {
	logger.Debug("Bulk creating categories", map[string]interface{}{
		"count":      len(categories),
		"batch_size": batchSize,
	})

	if err := r.db.CreateInBatches(categories, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create categories", err, map[string]interface{}{
			"count": len(categories),
		})
		return err
	}
	return nil
}

func (r *categoryRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Category{}).Count(&count).Error; err != nil {
		logger.Error("Failed to count categories", err)
		return 0, err
	}
	return count, nil
}

func (r *categoryRepository) IDs() ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&model.Category{}).Pluck("id", &ids).Error; err != nil {
		logger.Error("Failed to fetch category ids", err)
		return nil, err
	}
	return ids, nil
}

func (r *categoryRepository) FindAll() ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Find(&categories).Error; err != nil {
		logger.Error("Failed to find categories", err)
		return nil, err
	}
	return categories, nil
}
