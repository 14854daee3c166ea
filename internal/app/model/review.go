package model

import (
	"time"
)

type Review struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	ProductID          uint      `gorm:"not null;index" json:"product_id"`
	CustomerID         uint      `gorm:"not null;index" json:"customer_id"`
	Rating             int       `gorm:"not null" json:"rating"` // always within [1,5]
	Title              string    `gorm:"size:200" json:"title"`
	Comment            string    `gorm:"type:text" json:"comment"`
	IsVerifiedPurchase bool      `gorm:"default:false" json:"is_verified_purchase"`
	HelpfulCount       int       `gorm:"default:0" json:"helpful_count"`
	UnhelpfulCount     int       `gorm:"default:0" json:"unhelpful_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Product  Product  `gorm:"foreignKey:ProductID" json:"-"`
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}
