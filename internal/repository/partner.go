package repository

import (
	"context"
	"sync"
	"time"

	"BistroHub/internal/model"
	"BistroHub/storage/database"

	"gorm.io/gorm"
)

// PartnerRepo 商户账号数据访问
type PartnerRepo struct {
	db *gorm.DB
}

var (
	partnerOnce sync.Once
	partnerRepo *PartnerRepo
)

func Partner() *PartnerRepo {
	partnerOnce.Do(func() {
		partnerRepo = &PartnerRepo{db: database.DB()}
	})
	return partnerRepo
}

func (r *PartnerRepo) Create(ctx context.Context, p *model.Partner) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PartnerRepo) GetByEmail(ctx context.Context, email string) (*model.Partner, error) {
	var p model.Partner
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PartnerRepo) GetByPublicID(ctx context.Context, publicID int64) (*model.Partner, error) {
	var p model.Partner
	err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PartnerRepo) GetByPhoneHash(ctx context.Context, phoneHash string) (*model.Partner, error) {
	var p model.Partner
	err := r.db.WithContext(ctx).Where("phone_hash = ?", phoneHash).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PartnerRepo) UpdateStatus(ctx context.Context, publicID int64, status model.PartnerStatus) error {
	return r.db.WithContext(ctx).Model(&model.Partner{}).
		Where("public_id = ?", publicID).
		Update("status", status).Error
}

// ListStalledOnboarding 查询卡在入驻流程且最近无更新的商户
func (r *PartnerRepo) ListStalledOnboarding(ctx context.Context, updatedBefore time.Time, limit int) ([]*model.Partner, error) {
	var partners []*model.Partner
	err := r.db.WithContext(ctx).
		Where("status = ?", model.PartnerStatusOnboarding).
		Where("updated_at < ?", updatedBefore).
		Order("updated_at ASC").
		Limit(limit).
		Find(&partners).Error
	if err != nil {
		return nil, err
	}
	return partners, nil
}

func (r *PartnerRepo) UpdatePassword(ctx context.Context, publicID int64, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&model.Partner{}).
		Where("public_id = ?", publicID).
		Update("password_hash", passwordHash).Error
}
