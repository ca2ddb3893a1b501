package repository

import (
	"context"
	"sync"

	"BistroHub/internal/model"
	"BistroHub/storage/database"

	"gorm.io/gorm"
)

// OrderRepo 订单数据访问
type OrderRepo struct {
	db *gorm.DB
}

var (
	orderOnce sync.Once
	orderRepo *OrderRepo
)

func Order() *OrderRepo {
	orderOnce.Do(func() {
		orderRepo = &OrderRepo{db: database.DB()}
	})
	return orderRepo
}

func (r *OrderRepo) ListByPartner(ctx context.Context, partnerID int64, status string, limit, offset int) ([]model.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{}).Where("partner_id = ?", partnerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.Order
	err := q.Order("placed_at DESC").Limit(limit).Offset(offset).Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *OrderRepo) GetByPublicID(ctx context.Context, partnerID, publicID int64) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Where("partner_id = ? AND public_id = ?", partnerID, publicID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatus 带前置状态条件的流转更新，返回是否真正更新。
// WHERE 里带上 from 状态，并发流转只有一个会赢。
func (r *OrderRepo) UpdateStatus(ctx context.Context, partnerID, publicID int64, from, to model.OrderStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("partner_id = ? AND public_id = ? AND status = ?", partnerID, publicID, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
