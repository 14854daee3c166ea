package model

import (
	"time"
)

// Category is a product grouping. Top-level ("main") categories have no
// parent; subcategories point at exactly one main category. The generator
// never nests deeper than one level.
type Category struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	Name             string    `gorm:"size:100;not null" json:"name"`
	Slug             string    `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Description      string    `gorm:"type:text" json:"description"`
	ParentCategoryID *uint     `gorm:"index" json:"parent_category_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Parent        *Category  `gorm:"foreignKey:ParentCategoryID" json:"parent,omitempty"`
	Subcategories []Category `gorm:"foreignKey:ParentCategoryID" json:"subcategories,omitempty"`
	Products      []Product  `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}
