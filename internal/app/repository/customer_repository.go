package repository

import (
	"github.com/dkwon/shoplab-backend/internal/app/model"
	"github.com/dkwon/shoplab-backend/pkg/logger"
	"gorm.io/gorm"
)

// CustomerSummary is the read-only projection used instead of full customer
// rows when callers only display names. OrderCount is the authoritative
// aggregate; the Customer.TotalOrders column is advisory and stays stale.
type CustomerSummary struct {
	ID         uint   `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	OrderCount int64  `json:"order_count"`
}

type CustomerRepository interface {
	BulkCreate(customers []model.Customer, batchSize int) error
	Count() (int64, error)
	IDs() ([]uint, error)
	FindAll() ([]model.Customer, error)
	Summaries(limit int) ([]CustomerSummary, error)
	FindWithAllCollections(id uint) (*model.Customer, error)
	FindByID(id uint) (*model.Customer, error)
	AddressesByCustomerID(id uint) ([]model.Address, error)
	OrdersByCustomerID(id uint) ([]model.Order, error)
	ReviewsByCustomerID(id uint) ([]model.Review, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) BulkCreate(customers []model.Customer, batchSize int) error {
	logger.Debug("Bulk creating customers", map[string]interface{}{
		"count":      len(customers),
		"batch_size": batchSize,
	})

	if err := r.db.CreateInBatches(customers, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create customers", err, map[string]interface{}{
			"count": len(customers),
		})
		return err
	}
	return nil
}

func (r *customerRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Customer{}).Count(&count).Error; err != nil {
		logger.Error("Failed to count customers", err)
		return 0, err
	}
	return count, nil
}

func (r *customerRepository) IDs() ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&model.Customer{}).Pluck("id", &ids).Error; err != nil {
		logger.Error("Failed to fetch customer ids", err)
		return nil, err
	}
	return ids, nil
}

func (r *customerRepository) FindAll() ([]model.Customer, error) {
	var customers []model.Customer
	if err := r.db.Find(&customers).Error; err != nil {
		logger.Error("Failed to find customers", err)
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) Summaries(limit int) ([]CustomerSummary, error) {
	query := r.db.Model(&model.Customer{}).
		Select("customers.id, customers.first_name, customers.last_name, customers.email, COUNT(orders.id) AS order_count").
		Joins("LEFT JOIN orders ON orders.customer_id = customers.id").
		Group("customers.id, customers.first_name, customers.last_name, customers.email")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var summaries []CustomerSummary
	if err := query.Scan(&summaries).Error; err != nil {
		logger.Error("Failed to fetch customer summaries", err)
		return nil, err
	}
	return summaries, nil
}

// FindWithAllCollections loads a customer and every dependent collection in
// one monolithic query tree. The split counterpart is the per-collection
// finders below.
func (r *customerRepository) FindWithAllCollections(id uint) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.
		Preload("Addresses").
		Preload("Orders").
		Preload("Orders.Items").
		Preload("Reviews").
		First(&customer, id).Error; err != nil {
		logger.Error("Failed to find customer with collections", err, map[string]interface{}{
			"customer_id": id,
		})
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindByID(id uint) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		logger.Error("Failed to find customer by id", err, map[string]interface{}{
			"customer_id": id,
		})
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) AddressesByCustomerID(id uint) ([]model.Address, error) {
	var addresses []model.Address
	if err := r.db.Where("customer_id = ?", id).Find(&addresses).Error; err != nil {
		logger.Error("Failed to find addresses by customer", err, map[string]interface{}{
			"customer_id": id,
		})
		return nil, err
	}
	return addresses, nil
}

func (r *customerRepository) OrdersByCustomerID(id uint) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.Where("customer_id = ?", id).Find(&orders).Error; err != nil {
		logger.Error("Failed to find orders by customer", err, map[string]interface{}{
			"customer_id": id,
		})
		return nil, err
	}
	return orders, nil
}

func (r *customerRepository) ReviewsByCustomerID(id uint) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.Where("customer_id = ?", id).Find(&reviews).Error; err != nil {
		logger.Error("Failed to find reviews by customer", err, map[string]interface{}{
			"customer_id": id,
		})
		return nil, err
	}
	return reviews, nil
}
