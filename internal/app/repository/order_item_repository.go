package repository

import (
	"github.com/dkwon/shoplab-backend/internal/app/model"
	"github.com/dkwon/shoplab-backend/pkg/logger"
	"gorm.io/gorm"
)

type OrderItemRepository interface {
	BulkCreate(items []model.OrderItem, batchSize int) error
	Count() (int64, error)
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) BulkCreate(items []model.OrderItem, batchSize int) error {
	logger.Debug("Bulk creating order items", map[string]interface{}{
		"count":      len(items),
		"batch_size": batchSize,
	})

	if err := r.db.CreateInBatches(items, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create order items", err, map[string]interface{}{
			"count": len(items),
		})
		return err
	}
	return nil
}

func (r *orderItemRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.OrderItem{}).Count(&count).Error; err != nil {
		logger.Error("Failed to count order items", err)
		return 0, err
	}
	return count, nil
}
