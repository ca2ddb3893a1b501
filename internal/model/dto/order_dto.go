package dto

import "time"

// ========== Order 相关 DTO ==========

// ListOrdersRequest 订单列表查询
type ListOrdersRequest struct {
	Status string `query:"status"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

// OrderItemData 订单条目
type OrderItemData struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitCents int64  `json:"unit_cents"`
	Note      string `json:"note,omitempty"`
}

// OrderData 单笔订单视图
type OrderData struct {
	OrderID      string          `json:"order_id"`
	Status       string          `json:"status"`
	Items        []OrderItemData `json:"items"`
	TotalCents   int64           `json:"total_cents"`
	CustomerNote string          `json:"customer_note,omitempty"`
	PlacedAt     time.Time       `json:"placed_at"`
}

// ListOrdersResponse 订单列表响应
type ListOrdersResponse struct {
	Orders []OrderData `json:"orders"`
	Total  int64       `json:"total"`
}

// UpdateOrderStatusRequest 订单状态流转请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
