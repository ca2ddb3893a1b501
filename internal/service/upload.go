package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"BistroHub/config"
	"BistroHub/internal/model"
	"BistroHub/internal/model/dto"
	"BistroHub/internal/repository"
	pkgerrors "BistroHub/pkg/errors"
	"BistroHub/pkg/logger"
)

var (
	uploadService *UploadService
	uploadOnce    sync.Once
)

func Upload() *UploadService {
	uploadOnce.Do(func() {
		uploadService = &UploadService{}
	})
	return uploadService
}

type UploadService struct{}

// Store 保存上传文件并返回存储键。
// 入驻表单之后只用存储键引用文件，原始内容不会再经过提交链路。
func (s *UploadService) Store(ctx context.Context, partnerID int64, kind string, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	uploadKind := model.UploadKind(kind)
	if !model.ValidUploadKinds[uploadKind] {
		return nil, pkgerrors.UploadKindInvalid
	}

	maxBytes := int64(config.Cfg.UploadMaxSizeMB) * 1024 * 1024
	if file.Size > maxBytes {
		return nil, pkgerrors.UploadTooLarge
	}

	storageKey := uuid.New().String()

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(config.Cfg.UploadDir, fmt.Sprintf("%d", partnerID))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	dstPath := filepath.Join(dir, storageKey)
	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return nil, fmt.Errorf("failed to write upload file: %w", err)
	}

	record := &model.UploadedFile{
		PartnerID:   partnerID,
		StorageKey:  storageKey,
		Kind:        uploadKind,
		FileName:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		SizeBytes:   file.Size,
	}

	if err := repository.Upload().Create(ctx, record); err != nil {
		os.Remove(dstPath)
		return nil, fmt.Errorf("failed to record upload: %w", err)
	}

	logger.Logger.Info("File uploaded",
		zap.Int64("partner_id", partnerID),
		zap.String("storage_key", storageKey),
		zap.String("kind", kind),
		zap.Int64("size_bytes", file.Size),
	)

	return &dto.UploadResponse{
		StorageKey: storageKey,
		Kind:       kind,
		FileName:   file.Filename,
		SizeBytes:  file.Size,
	}, nil
}

// Lookup 按存储键查询上传登记，只允许查自己的文件
func (s *UploadService) Lookup(ctx context.Context, partnerID int64, storageKey string) (*model.UploadedFile, error) {
	record, err := repository.Upload().GetByStorageKey(ctx, partnerID, storageKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.UploadNotFound
		}
		return nil, fmt.Errorf("failed to query upload: %w", err)
	}
	return record, nil
}
