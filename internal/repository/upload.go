package repository

import (
	"context"
	"sync"

	"BistroHub/internal/model"
	"BistroHub/storage/database"

	"gorm.io/gorm"
)

// UploadRepo 上传文件登记数据访问
type UploadRepo struct {
	db *gorm.DB
}

var (
	uploadOnce sync.Once
	uploadRepo *UploadRepo
)

func Upload() *UploadRepo {
	uploadOnce.Do(func() {
		uploadRepo = &UploadRepo{db: database.DB()}
	})
	return uploadRepo
}

func (r *UploadRepo) Create(ctx context.Context, f *model.UploadedFile) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *UploadRepo) GetByStorageKey(ctx context.Context, partnerID int64, storageKey string) (*model.UploadedFile, error) {
	var f model.UploadedFile
	err := r.db.WithContext(ctx).
		Where("partner_id = ? AND storage_key = ?", partnerID, storageKey).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}
