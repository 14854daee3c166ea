package model

import (
	"time"
)

type Product struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Name          string    `gorm:"size:200;not null" json:"name"`
	SKU           string    `gorm:"size:40;uniqueIndex;not null" json:"sku"`
	Description   string    `gorm:"type:text" json:"description"`
	Price         float64   `gorm:"not null" json:"price"`
	Cost          float64   `gorm:"not null" json:"cost"`
	StockQuantity int       `gorm:"default:0" json:"stock_quantity"`
	CategoryID    uint      `gorm:"not null;index" json:"category_id"`
	IsActive      bool      `gorm:"default:true;index" json:"is_active"`
	Rating        float64   `json:"rating"`       // advisory: 0 until the query layer recomputes it from reviews
	ReviewCount   int       `json:"review_count"` // advisory: not reconciled against review rows
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Category   Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	OrderItems []OrderItem `gorm:"foreignKey:ProductID" json:"-"`
	Reviews    []Review    `gorm:"foreignKey:ProductID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
