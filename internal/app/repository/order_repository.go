package repository

import (
	"github.com/dkwon/shoplab-backend/internal/app/model"
	"github.com/dkwon/shoplab-backend/pkg/logger"
	"gorm.io/gorm"
)

type OrderRepository interface {
	BulkCreate(orders []model.Order, batchSize int) error
	Count() (int64, error)
	IDs() ([]uint, error)
	FindRecent(limit int) ([]model.Order, error)
	FindRecentWithItems(limit int) ([]model.Order, error)
	ItemsByOrderID(orderID uint) ([]model.OrderItem, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) BulkCreate(orders []model.Order, batchSize int) error {
	logger.Debug("Bulk creating orders", map[string]interface{}{
		"count":      len(orders),
		"batch_size": batchSize,
	})

	if err := r.db.CreateInBatches(orders, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create orders", err, map[string]interface{}{
			"count": len(orders),
		})
		return err
	}
	return nil
}

func (r *orderRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Order{}).Count(&count).Error; err != nil {
		logger.Error("Failed to count orders", err)
		return 0, err
	}
	return count, nil
}

func (r *orderRepository) IDs() ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&model.Order{}).Pluck("id", &ids).Error; err != nil {
		logger.Error("Failed to fetch order ids", err)
		return nil, err
	}
	return ids, nil
}

func (r *orderRepository) FindRecent(limit int) ([]model.Order, error) {
	var orders []model.Order
	// id breaks order_date ties so paired reads see the same window
	if err := r.db.Order("order_date DESC, id DESC").Limit(limit).Find(&orders).Error; err != nil {
		logger.Error("Failed to find recent orders", err)
		return nil, err
	}
	return orders, nil
}

// FindRecentWithItems eager-loads items in a single extra query, the
// counterpart of looping ItemsByOrderID per order.
func (r *orderRepository) FindRecentWithItems(limit int) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.
		Preload("Items").
		Order("order_date DESC, id DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {
		logger.Error("Failed to find recent orders with items", err)
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) ItemsByOrderID(orderID uint) ([]model.OrderItem, error) {
	var items []model.OrderItem
	if err := r.db.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		logger.Error("Failed to find order items by order", err, map[string]interface{}{
			"order_id": orderID,
		})
		return nil, err
	}
	return items, nil
}
