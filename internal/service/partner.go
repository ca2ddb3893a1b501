package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"BistroHub/internal/model"
	"BistroHub/internal/model/dto"
	"BistroHub/internal/repository"
	pkgerrors "BistroHub/pkg/errors"
	"BistroHub/utils"
)

var (
	partnerService *PartnerService
	partnerOnce    sync.Once
)

func Partner() *PartnerService {
	partnerOnce.Do(func() {
		partnerService = &PartnerService{}
	})
	return partnerService
}

type PartnerService struct{}

// Me 当前登录商户的账号快照
func (s *PartnerService) Me(ctx context.Context, partnerID int64) (*dto.PartnerSnapshot, error) {
	partner, err := repository.Partner().GetByPublicID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.PartnerNotFound
		}
		return nil, fmt.Errorf("failed to query partner: %w", err)
	}

	return &dto.PartnerSnapshot{
		ID:            fmt.Sprintf("%d", partner.PublicID),
		ContactName:   partner.ContactName,
		Status:        model.StatusToStringMap[partner.Status],
		PhoneMasked:   maskedPhone(partner),
		PhoneVerified: partner.Status != model.PartnerStatusPendingVerification,
	}, nil
}

// maskedPhone 解密手机号并只保留末四位；解密失败按无手机号处理
func maskedPhone(partner *model.Partner) string {
	if len(partner.PhoneCipher) == 0 {
		return ""
	}
	phone, err := utils.DecryptSensitive(partner.PhoneCipher)
	if err != nil || len(phone) < 4 {
		return ""
	}
	return "****" + phone[len(phone)-4:]
}

// UpdateBusinessHours 营业后的营业时间调整，复用入驻的时段展开逻辑写回档案
func (s *PartnerService) UpdateBusinessHours(ctx context.Context, partnerID int64, form *dto.BusinessHoursForm) (*dto.ProfileData, error) {
	hours, err := ExpandBusinessHours(form)
	if err != nil {
		return nil, err
	}

	profile, err := Profile().Update(ctx, partnerID, &dto.ProfileUpdateRequest{
		OperatingHours: hours,
	})
	if err != nil {
		return nil, err
	}

	return ToProfileData(profile), nil
}
