package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"BistroHub/internal/model"
	"BistroHub/internal/model/dto"
	"BistroHub/internal/repository"
	pkgerrors "BistroHub/pkg/errors"
	"BistroHub/pkg/logger"
	"BistroHub/utils"
)

// ProfileAPI 入驻提交面向的档案服务入口。
// 生产环境由 ProfileService 实现，测试里可以注入假实现。
type ProfileAPI interface {
	Fetch(ctx context.Context, partnerID int64) (*model.BusinessProfile, error)
	Update(ctx context.Context, partnerID int64, req *dto.ProfileUpdateRequest) (*model.BusinessProfile, error)
}

var (
	profileService *ProfileService
	profileOnce    sync.Once
)

func Profile() *ProfileService {
	profileOnce.Do(func() {
		profileService = &ProfileService{}
	})
	return profileService
}

type ProfileService struct{}

// Fetch 读取商户档案；不存在时建一份空档案，入驻从 welcome 开始
func (s *ProfileService) Fetch(ctx context.Context, partnerID int64) (*model.BusinessProfile, error) {
	profile, err := repository.Profile().GetByPartnerID(ctx, partnerID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	profile = &model.BusinessProfile{
		PartnerID: partnerID,
		Onboarding: model.OnboardingRecord{
			CurrentStep:     string(model.StepWelcome),
			CompletedSteps:  []string{},
			CompletedPhases: []string{},
		},
	}

	if err := repository.Profile().Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	logger.Logger.Info("Business profile created",
		zap.Int64("partner_id", partnerID),
	)

	return profile, nil
}

// Update 应用扁平更新请求并返回更新后的完整档案。
// 请求里缺席的字段保持原值；onboarding 子记录由
// completeStep / currentStep / completePhase 指令驱动，追加是幂等的。
func (s *ProfileService) Update(ctx context.Context, partnerID int64, req *dto.ProfileUpdateRequest) (*model.BusinessProfile, error) {
	profile, err := s.Fetch(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	if err := s.applyFields(profile, req); err != nil {
		return nil, err
	}
	s.applyOnboarding(&profile.Onboarding, req)

	if err := repository.Profile().Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return profile, nil
}

func (s *ProfileService) applyFields(p *model.BusinessProfile, req *dto.ProfileUpdateRequest) error {
	if req.BusinessName != nil {
		p.BusinessName = *req.BusinessName
	}
	if req.BusinessEmail != nil {
		if !utils.ValidateEmail(*req.BusinessEmail) {
			return pkgerrors.ProfileUpdateRejected
		}
		p.BusinessEmail = *req.BusinessEmail
	}
	if req.BusinessPhone != nil {
		p.BusinessPhone = *req.BusinessPhone
	}

	if req.AddressLine1 != nil {
		p.Location.AddressLine1 = *req.AddressLine1
	}
	if req.AddressLine2 != nil {
		p.Location.AddressLine2 = *req.AddressLine2
	}
	if req.City != nil {
		p.Location.City = *req.City
	}
	if req.State != nil {
		p.Location.State = *req.State
	}
	if req.PostalCode != nil {
		p.Location.PostalCode = *req.PostalCode
	}
	if req.Latitude != nil {
		p.Location.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		p.Location.Longitude = *req.Longitude
	}

	if req.IdentityDocumentType != nil {
		p.Identity.DocumentType = *req.IdentityDocumentType
	}
	if req.IdentityFrontKey != nil {
		p.Identity.FrontDocKey = *req.IdentityFrontKey
	}
	if req.IdentityBackKey != nil {
		p.Identity.BackDocKey = *req.IdentityBackKey
	}

	if req.LegalEntityName != nil {
		p.LegalTax.LegalEntityName = *req.LegalEntityName
	}
	if req.TaxRegistrationNo != nil {
		p.LegalTax.TaxRegistrationNo = *req.TaxRegistrationNo
	}
	if req.FoodLicenseNo != nil {
		p.LegalTax.FoodLicenseNo = *req.FoodLicenseNo
	}
	if req.FoodLicenseKey != nil {
		p.LegalTax.FoodLicenseDocKey = *req.FoodLicenseKey
	}
	if req.RegistrationDocKey != nil {
		p.LegalTax.RegistrationDocKey = *req.RegistrationDocKey
	}

	if req.BankAccountHolder != nil {
		p.Banking.AccountHolder = *req.BankAccountHolder
	}
	if req.BankAccountNumber != nil {
		cipher, err := utils.EncryptSensitive(*req.BankAccountNumber)
		if err != nil {
			return fmt.Errorf("failed to encrypt bank account: %w", err)
		}
		p.Banking.AccountNumberCipher = cipher
		if n := len(*req.BankAccountNumber); n >= 4 {
			p.Banking.AccountNumberLast4 = (*req.BankAccountNumber)[n-4:]
		} else {
			p.Banking.AccountNumberLast4 = *req.BankAccountNumber
		}
	}
	if req.BankCode != nil {
		p.Banking.BankCode = *req.BankCode
	}
	if req.BankName != nil {
		p.Banking.BankName = *req.BankName
	}
	if req.BankStatementKey != nil {
		p.Banking.StatementDocKey = *req.BankStatementKey
	}

	if req.PackageCode != nil {
		p.Package.PackageCode = *req.PackageCode
	}
	if req.PaymentMethod != nil {
		p.PaymentMethod = *req.PaymentMethod
	}

	if req.MenuUploadKeys != nil {
		p.Verification.MenuImageKeys = req.MenuUploadKeys
	}
	if req.TrainingSlot != nil {
		p.Verification.TrainingCallSlot = *req.TrainingSlot
	}
	if req.TrainingPhone != nil {
		p.Verification.TrainingCallPhone = *req.TrainingPhone
	}
	if req.MonthlyOrderVolume != nil {
		p.Verification.MonthlyOrderVolume = *req.MonthlyOrderVolume
	}
	if req.OtherPlatforms != nil {
		p.Verification.OtherPlatforms = req.OtherPlatforms
	}
	if req.OnboardingFeeRef != nil {
		p.Verification.FeePaymentRef = *req.OnboardingFeeRef
	}
	if req.FeeScreenshotKey != nil {
		p.Verification.FeeScreenshotKey = *req.FeeScreenshotKey
	}

	if req.OperatingHours != nil {
		hours := make(model.OperatingHours, 0, len(req.OperatingHours))
		for _, e := range req.OperatingHours {
			hours = append(hours, model.OperatingHoursEntry{
				DayOfWeek: e.DayOfWeek,
				OpensAt:   e.OpensAt,
				ClosesAt:  e.ClosesAt,
				IsClosed:  e.IsClosed,
			})
		}
		p.Hours = hours
	}

	return nil
}

// applyOnboarding 进度指令，completed 集合的追加是幂等的
func (s *ProfileService) applyOnboarding(rec *model.OnboardingRecord, req *dto.ProfileUpdateRequest) {
	if req.CompleteStep != "" && !containsString(rec.CompletedSteps, req.CompleteStep) {
		rec.CompletedSteps = append(rec.CompletedSteps, req.CompleteStep)
	}
	if req.CompletePhase != "" && !containsString(rec.CompletedPhases, req.CompletePhase) {
		rec.CompletedPhases = append(rec.CompletedPhases, req.CompletePhase)
	}
	if req.CurrentStep != "" {
		rec.CurrentStep = req.CurrentStep
	}

	if req.CompleteStep == string(model.StepPortalSetupComplete) {
		rec.IsOnboardingCompleted = true
	}
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// ToProfileData 档案视图，银行账号只暴露 last4
func ToProfileData(p *model.BusinessProfile) *dto.ProfileData {
	hours := make([]dto.OperatingHourEntry, 0, len(p.Hours))
	for _, e := range p.Hours {
		hours = append(hours, dto.OperatingHourEntry{
			DayOfWeek: e.DayOfWeek,
			OpensAt:   e.OpensAt,
			ClosesAt:  e.ClosesAt,
			IsClosed:  e.IsClosed,
		})
	}

	return &dto.ProfileData{
		PartnerID:     fmt.Sprintf("%d", p.PartnerID),
		BusinessName:  p.BusinessName,
		BusinessEmail: p.BusinessEmail,
		BusinessPhone: p.BusinessPhone,

		AddressLine1: p.Location.AddressLine1,
		AddressLine2: p.Location.AddressLine2,
		City:         p.Location.City,
		State:        p.Location.State,
		PostalCode:   p.Location.PostalCode,
		Latitude:     p.Location.Latitude,
		Longitude:    p.Location.Longitude,

		LegalEntityName:   p.LegalTax.LegalEntityName,
		TaxRegistrationNo: p.LegalTax.TaxRegistrationNo,
		FoodLicenseNo:     p.LegalTax.FoodLicenseNo,

		BankAccountHolder: p.Banking.AccountHolder,
		BankAccountLast4:  p.Banking.AccountNumberLast4,
		BankName:          p.Banking.BankName,

		PackageCode:   p.Package.PackageCode,
		PaymentMethod: p.PaymentMethod,

		TrainingSlot:       p.Verification.TrainingCallSlot,
		MonthlyOrderVolume: p.Verification.MonthlyOrderVolume,
		OtherPlatforms:     p.Verification.OtherPlatforms,

		OperatingHours: hours,

		Onboarding: dto.OnboardingProgress{
			CurrentStep:           p.Onboarding.CurrentStep,
			CompletedSteps:        p.Onboarding.CompletedSteps,
			CompletedPhases:       p.Onboarding.CompletedPhases,
			IsOnboardingCompleted: p.Onboarding.IsOnboardingCompleted,
		},
	}
}
