package model

import (
	"time"
)

type OrderStatus string // order state code

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

type Order struct {
	ID           uint        `gorm:"primarykey" json:"id"`
	OrderNumber  string      `gorm:"size:40;uniqueIndex;not null" json:"order_number"`
	CustomerID   uint        `gorm:"not null;index" json:"customer_id"`
	OrderDate    time.Time   `gorm:"not null;index" json:"order_date"`
	ShippedDate  *time.Time  `json:"shipped_date,omitempty"` // nil until shipped; never before OrderDate
	Status       OrderStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	TotalAmount  float64     `gorm:"not null" json:"total_amount"`
	Tax          float64     `gorm:"not null" json:"tax"`
	ShippingCost float64     `gorm:"not null" json:"shipping_cost"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`

	Customer Customer    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"order_id"`
	ProductID  uint      `gorm:"not null;index" json:"product_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitPrice  float64   `gorm:"not null" json:"unit_price"` // product price snapshot at generation time
	Discount   float64   `gorm:"not null" json:"discount"`   // fraction in [0,1)
	TotalPrice float64   `gorm:"not null" json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`

	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
