package repository

import (
	"context"
	"sync"

	"BistroHub/internal/model"
	"BistroHub/storage/database"

	"gorm.io/gorm"
)

// ProfileRepo 商户业务档案数据访问
type ProfileRepo struct {
	db *gorm.DB
}

var (
	profileOnce sync.Once
	profileRepo *ProfileRepo
)

func Profile() *ProfileRepo {
	profileOnce.Do(func() {
		profileRepo = &ProfileRepo{db: database.DB()}
	})
	return profileRepo
}

func (r *ProfileRepo) Create(ctx context.Context, p *model.BusinessProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfileRepo) GetByPartnerID(ctx context.Context, partnerID int64) (*model.BusinessProfile, error) {
	var p model.BusinessProfile
	err := r.db.WithContext(ctx).Where("partner_id = ?", partnerID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save 整体保存档案。更新请求在服务层合并到结构体后整行落库，
// JSONB 子记录随之覆盖。
func (r *ProfileRepo) Save(ctx context.Context, p *model.BusinessProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}
