package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"BistroHub/internal/model"
	"BistroHub/internal/model/dto"
	"BistroHub/internal/queue"
	"BistroHub/internal/repository"
	pkgerrors "BistroHub/pkg/errors"
)

var (
	orderService *OrderService
	orderOnce    sync.Once
)

func Order() *OrderService {
	orderOnce.Do(func() {
		orderService = &OrderService{}
	})
	return orderService
}

type OrderService struct{}

// List 订单列表，limit 缺省 20、上限 100
func (s *OrderService) List(ctx context.Context, partnerID int64, req *dto.ListOrdersRequest) (*dto.ListOrdersResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	orders, total, err := repository.Order().ListByPartner(ctx, partnerID, req.Status, limit, req.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	resp := &dto.ListOrdersResponse{
		Orders: make([]dto.OrderData, 0, len(orders)),
		Total:  total,
	}
	for i := range orders {
		resp.Orders = append(resp.Orders, *toOrderData(&orders[i]))
	}
	return resp, nil
}

// Get 订单详情
func (s *OrderService) Get(ctx context.Context, partnerID, orderID int64) (*dto.OrderData, error) {
	order, err := repository.Order().GetByPublicID(ctx, partnerID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.OrderNotFound
		}
		return nil, fmt.Errorf("failed to query order: %w", err)
	}
	return toOrderData(order), nil
}

// UpdateStatus 订单状态流转。流转表之外的一律拒绝；
// 更新语句带前置状态条件，并发竞争时输家拿到流转无效错误。
func (s *OrderService) UpdateStatus(ctx context.Context, partnerID, orderID int64, rawStatus string) (*dto.OrderData, error) {
	to := model.OrderStatus(rawStatus)

	order, err := repository.Order().GetByPublicID(ctx, partnerID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.OrderNotFound
		}
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	if !model.CanTransition(order.Status, to) {
		return nil, pkgerrors.OrderTransitionInvalid
	}

	updated, err := repository.Order().UpdateStatus(ctx, partnerID, orderID, order.Status, to)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if !updated {
		return nil, pkgerrors.OrderTransitionInvalid
	}

	queue.PublishOrderStatusEvent(partnerID, orderID, string(order.Status), string(to))

	order.Status = to
	return toOrderData(order), nil
}

func toOrderData(o *model.Order) *dto.OrderData {
	items := make([]dto.OrderItemData, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemData{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitCents: it.UnitCents,
			Note:      it.Note,
		})
	}

	return &dto.OrderData{
		OrderID:      fmt.Sprintf("%d", o.PublicID),
		Status:       string(o.Status),
		Items:        items,
		TotalCents:   o.TotalCents,
		CustomerNote: o.CustomerNote,
		PlacedAt:     o.PlacedAt,
	}
}
