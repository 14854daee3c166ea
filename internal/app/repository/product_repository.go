package repository

import (
	"github.com/dkwon/shoplab-backend/internal/app/model"
	"github.com/dkwon/shoplab-backend/pkg/logger"
	"gorm.io/gorm"
)

// ProductPrice is the id/price projection the order-item stage reads once,
// instead of fetching each referenced product row individually.
type ProductPrice struct {
	ID    uint
	Price float64
}

// ProductListing is the projected read used by the catalog comparison
// endpoints; it selects only the columns the listing needs.
type ProductListing struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	SKU   string  `json:"sku"`
	Price float64 `json:"price"`
}

type ProductRepository interface {
	BulkCreate(products []model.Product, batchSize int) error
	Count() (int64, error)
	ActiveIDs() ([]uint, error)
	PriceList() ([]ProductPrice, error)
	FindAll() ([]model.Product, error)
	FindByNameContains(fragment string) ([]model.Product, error)
	FindByNamePrefixInPriceRange(prefix string, minPrice, maxPrice float64) ([]model.Product, error)
	ListProjected(limit int) ([]ProductListing, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) BulkCreate(products []model.Product, batchSize int) error {
	logger.Debug("Bulk creating products", map[string]interface{}{
		"count":      len(products),
		"batch_size": batchSize,
	})

	if err := r.db.CreateInBatches(products, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create products", err, map[string]interface{}{
			"count": len(products),
		})
		return err
	}
	return nil
}

func (r *productRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Product{}).Count(&count).Error; err != nil {
		logger.Error("Failed to count products", err)
		return 0, err
	}
	return count, nil
}

func (r *productRepository) ActiveIDs() ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&model.Product{}).
		Where("is_active = ?", true).
		Pluck("id", &ids).Error; err != nil {
		logger.Error("Failed to fetch active product ids", err)
		return nil, err
	}
	return ids, nil
}

func (r *productRepository) PriceList() ([]ProductPrice, error) {
	var prices []ProductPrice
	if err := r.db.Model(&model.Product{}).
		Select("id", "price").
		Scan(&prices).Error; err != nil {
		logger.Error("Failed to fetch product price list", err)
		return nil, err
	}
	return prices, nil
}

func (r *productRepository) FindAll() ([]model.Product, error) {
	var products []model.Product
	if err := r.db.Find(&products).Error; err != nil {
		logger.Error("Failed to find products", err)
		return nil, err
	}
	return products, nil
}

// FindByNameContains scans with a leading-wildcard LOWER() match, which no
// index can serve. Kept as the slow half of the filter comparison.
func (r *productRepository) FindByNameContains(fragment string) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.
		Where("LOWER(name) LIKE LOWER(?)", "%"+fragment+"%").
		Find(&products).Error; err != nil {
		logger.Error("Failed to find products by name fragment", err, map[string]interface{}{
			"fragment": fragment,
		})
		return nil, err
	}
	return products, nil
}

// FindByNamePrefixInPriceRange is the sargable counterpart: a prefix match
// plus a bounded range, both index-friendly.
func (r *productRepository) FindByNamePrefixInPriceRange(prefix string, minPrice, maxPrice float64) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.
		Where("name LIKE ?", prefix+"%").
		Where("price BETWEEN ? AND ?", minPrice, maxPrice).
		Find(&products).Error; err != nil {
		logger.Error("Failed to find products by prefix and price range", err, map[string]interface{}{
			"prefix":    prefix,
			"min_price": minPrice,
			"max_price": maxPrice,
		})
		return nil, err
	}
	return products, nil
}

func (r *productRepository) ListProjected(limit int) ([]ProductListing, error) {
	var listings []ProductListing
	query := r.db.Model(&model.Product{}).Select("id", "name", "sku", "price")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&listings).Error; err != nil {
		logger.Error("Failed to list projected products", err)
		return nil, err
	}
	return listings, nil
}
