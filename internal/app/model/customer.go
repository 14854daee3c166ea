package model

import (
	"time"
)

type Customer struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	FirstName   string    `gorm:"size:100;not null" json:"first_name"`
	LastName    string    `gorm:"size:100;not null" json:"last_name"`
	Email       string    `gorm:"size:200;uniqueIndex;not null" json:"email"`
	Country     string    `gorm:"size:100" json:"country"`
	City        string    `gorm:"size:100" json:"city"`
	CreditLimit float64   `gorm:"not null" json:"credit_limit"`
	TotalOrders int       `json:"total_orders"` // advisory: seeded as 0, never reconciled; use the order aggregation for the real count
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Addresses []Address `gorm:"foreignKey:CustomerID" json:"addresses,omitempty"`
	Orders    []Order   `gorm:"foreignKey:CustomerID" json:"-"`
	Reviews   []Review  `gorm:"foreignKey:CustomerID" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}
