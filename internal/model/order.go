package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// OrderStatus 订单状态枚举
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusRejected  OrderStatus = "rejected"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
)

// OrderTransitions 合法的状态流转；不在表里的流转一律拒绝
var OrderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPlaced:   {OrderStatusAccepted, OrderStatusRejected},
	OrderStatusAccepted: {OrderStatusReady},
	OrderStatusReady:    {OrderStatusCompleted},
}

// CanTransition 判断订单状态流转是否合法
func CanTransition(from, to OrderStatus) bool {
	for _, next := range OrderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderItem 订单条目（JSONB 数组元素）
type OrderItem struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitCents  int64  `json:"unit_cents"`
	Note       string `json:"note,omitempty"`
}

// OrderItems 订单条目数组（JSONB）
type OrderItems []OrderItem

func (i *OrderItems) Scan(src interface{}) error { return jsonbScan(i, src) }
func (i OrderItems) Value() (driver.Value, error) {
	return json.Marshal(i)
}

// Order 商户订单模型

type Order struct {
	BaseModel
	PublicID     int64       `gorm:"uniqueIndex;not null" json:"public_id"`
	PartnerID    int64       `gorm:"not null;index:idx_orders_partner" json:"partner_id"`
	Status       OrderStatus `gorm:"type:varchar(16);not null;default:'placed';index:idx_orders_status" json:"status"`
	Items        OrderItems  `gorm:"type:jsonb;default:'[]'" json:"items"`
	TotalCents   int64       `gorm:"not null;default:0" json:"total_cents"`
	CustomerNote string      `gorm:"type:varchar(512);not null;default:''" json:"customer_note"`
	PlacedAt     time.Time   `gorm:"not null;default:now()" json:"placed_at"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
