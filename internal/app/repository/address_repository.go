package repository

import (
	"github.com/dkwon/shoplab-backend/internal/app/model"
	"github.com/dkwon/shoplab-backend/pkg/logger"
	"gorm.io/gorm"
)

type AddressRepository interface {
	BulkCreate(addresses []model.Address, batchSize int) error
	Count() (int64, error)
}

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) BulkCreate(addresses []model.Address, batchSize int) error {
	logger.Debug("Bulk creating addresses", map[string]interface{}{
		"count":      len(addresses),
		"batch_size": batchSize,
	})

	if err := r.db.CreateInBatches(addresses, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create addresses", err, map[string]interface{}{
			"count": len(addresses),
		})
		return err
	}
	return nil
}

func (r *addressRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Address{}).Count(&count).Error; err != nil {
		logger.Error("Failed to count addresses", err)
		return 0, err
	}
	return count, nil
}
