package repository

import (
	"context"
	"sync"

	"BistroHub/internal/model"
	"BistroHub/storage/database"

	"gorm.io/gorm"
)

// StaffRepo 门店成员数据访问
type StaffRepo struct {
	db *gorm.DB
}

var (
	staffOnce sync.Once
	staffRepo *StaffRepo
)

func Staff() *StaffRepo {
	staffOnce.Do(func() {
		staffRepo = &StaffRepo{db: database.DB()}
	})
	return staffRepo
}

func (r *StaffRepo) Create(ctx context.Context, m *model.StaffMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *StaffRepo) ListByPartner(ctx context.Context, partnerID int64) ([]model.StaffMember, error) {
	var members []model.StaffMember
	err := r.db.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

func (r *StaffRepo) GetByPublicID(ctx context.Context, partnerID, publicID int64) (*model.StaffMember, error) {
	var m model.StaffMember
	err := r.db.WithContext(ctx).
		Where("partner_id = ? AND public_id = ?", partnerID, publicID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *StaffRepo) CountByPartner(ctx context.Context, partnerID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.StaffMember{}).
		Where("partner_id = ?", partnerID).
		Count(&count).Error
	return count, err
}

func (r *StaffRepo) UpdateRole(ctx context.Context, partnerID, publicID int64, role model.StaffRole) error {
	return r.db.WithContext(ctx).Model(&model.StaffMember{}).
		Where("partner_id = ? AND public_id = ?", partnerID, publicID).
		Update("role", role).Error
}

func (r *StaffRepo) Delete(ctx context.Context, partnerID, publicID int64) error {
	return r.db.WithContext(ctx).
		Where("partner_id = ? AND public_id = ?", partnerID, publicID).
		Delete(&model.StaffMember{}).Error
}
