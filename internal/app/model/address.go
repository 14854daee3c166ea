package model

import (
	"time"
)

type AddressType string // address usage code

const (
	AddressTypeShipping AddressType = "shipping"
	AddressTypeBilling  AddressType = "billing"
	AddressTypeBoth     AddressType = "both"
)

// Address country is drawn independently of the owning customer's country:
// customers may bill or ship abroad.
type Address struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	CustomerID uint        `gorm:"not null;index" json:"customer_id"`
	Street     string      `gorm:"size:200;not null" json:"street"`
	City       string      `gorm:"size:100;not null" json:"city"`
	Country    string      `gorm:"size:100;not null" json:"country"`
	IsDefault  bool        `gorm:"default:false" json:"is_default"`
	Type       AddressType `gorm:"type:varchar(20);default:'shipping'" json:"type"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

func (Address) TableName() string {
	return "addresses"
}
