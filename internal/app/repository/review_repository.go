package repository

import (
	"github.com/dkwon/shoplab-backend/internal/app/model"
	"github.com/dkwon/shoplab-backend/pkg/logger"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	BulkCreate(reviews []model.Review, batchSize int) error
	Count() (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) BulkCreate(reviews []model.Review, batchSize int) error {
	logger.Debug("Bulk creating reviews", map[string]interface{}{
		"count":      len(reviews),
		"batch_size": batchSize,
	})

	if err := r.db.CreateInBatches(reviews, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create reviews", err, map[string]interface{}{
			"count": len(reviews),
		})
		return err
	}
	return nil
}

func (r *reviewRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Review{}).Count(&count).Error; err != nil {
		logger.Error("Failed to count reviews", err)
		return 0, err
	}
	return count, nil
}
