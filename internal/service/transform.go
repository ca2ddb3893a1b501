package service

import (
	"encoding/json"
	"fmt"

	"BistroHub/internal/model"
	"BistroHub/internal/model/dto"
	pkgerrors "BistroHub/pkg/errors"
	"BistroHub/utils"
)

// BuildProfileUpdate 把步骤的表单载荷变换成档案服务的扁平更新请求。
// 表单是 UI 形态（12 小时制时间、按天分组的营业时段），请求是档案形态
// （24 小时制、每个营业时段一条记录）。没有表单的步骤返回空请求，
// 只携带进度指令的位置由调用方补上。
func BuildProfileUpdate(step model.Step, form model.StepFormData) (*dto.ProfileUpdateRequest, error) {
	req := &dto.ProfileUpdateRequest{}

	key, ok := model.StepFormKeys[step]
	if !ok {
		return req, nil
	}

	raw, ok := form[key]
	if !ok || len(raw) == 0 {
		return nil, pkgerrors.OnboardingFormDataMissing
	}

	switch step {
	case model.StepBusinessLocation:
		var f dto.BusinessLocationForm
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("failed to decode business location form: %w", err)
		}
		req.BusinessName = &f.BusinessName
		req.BusinessEmail = &f.BusinessEmail
		req.BusinessPhone = &f.BusinessPhone
		req.AddressLine1 = &f.AddressLine1
		req.AddressLine2 = &f.AddressLine2
		req.City = &f.City
		req.State = &f.State
		req.PostalCode = &f.PostalCode
		req.Latitude = &f.Latitude
		req.Longitude = &f.Longitude

	case model.StepOwnerIdentityUpload:
		var f dto.OwnerIdentityForm
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("failed to decode owner identity form: %w", err)
		}
		req.IdentityDocumentType = &f.DocumentType
		req.IdentityFrontKey = &f.FrontUploadKey
		if f.BackUploadKey != "" {
			req.IdentityBackKey = &f.BackUploadKey
		}

	case model.StepLegalTaxDetails:
		var f dto.LegalTaxForm
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("failed to decode legal tax form: %w", err)
		}
		req.LegalEntityName = &f.LegalEntityName
		req.TaxRegistrationNo = &f.TaxRegistrationNo
		req.FoodLicenseNo = &f.FoodLicenseNo
		if f.FoodLicenseUploadKey != "" {
			req.FoodLicenseKey = &f.FoodLicenseUploadKey
		}
		if f.RegistrationUploadKey != "" {
			req.RegistrationDocKey = &f.RegistrationUploadKey
		}

	case model.StepBankingDetails:
		var f dto.BankingDetailsForm
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("failed to decode banking details form: %w", err)
		}
		req.BankAccountHolder = &f.AccountHolder
		req.BankAccountNumber = &f.AccountNumber
		req.BankCode = &f.BankCode
		req.BankName = &f.BankName

	case model.StepBankStatementUpload:
		var f dto.BankStatementForm
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("failed to decode bank statement form: %w", err)
		}
		req.BankStatementKey = &f.UploadKey

	case model.StepPartnershipPackage:
		var f dto.PartnershipPackageForm
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("failed to decode partnership package form: %w", err)
		}
		req.PackageCode = &f.PackageCode

	case model.StepPaymentMethodSelection:
		var f dto.PaymentMethodForm
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("failed to decode payment method form: %w", err)
		}
		req.PaymentMethod = &f.Method

	case model.StepDineInMenuUpload:
		var f dto.DineInMenuForm
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("failed to decode dine-in menu form: %w", err)
		}
		req.MenuUploadKeys = f.UploadKeys

	case model.StepTrainingCallPreference:
		var f dto.TrainingCallForm
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("failed to decode training call form: %w", err)
		}
		slot, err := utils.To24Hour(f.SlotTime)
		if err != nil {
			return nil, fmt.Errorf("failed to convert training slot time: %w", err)
		}
		req.TrainingSlot = &slot
		req.TrainingPhone = &f.Phone

	case model.StepGrowthInformation:
		var f dto.GrowthInfoForm
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("failed to decode growth info form: %w", err)
		}
		req.MonthlyOrderVolume = &f.MonthlyOrderVolume
		req.OtherPlatforms = f.OtherPlatforms

	case model.StepOnboardingFeePayment:
		var f dto.OnboardingFeeForm
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("failed to decode onboarding fee form: %w", err)
		}
		req.OnboardingFeeRef = &f.PaymentRef
		if f.ScreenshotUploadKey != "" {
			req.FeeScreenshotKey = &f.ScreenshotUploadKey
		}

	case model.StepBusinessHoursSetup:
		var f dto.BusinessHoursForm
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("failed to decode business hours form: %w", err)
		}
		hours, err := ExpandBusinessHours(&f)
		if err != nil {
			return nil, err
		}
		req.OperatingHours = hours
	}

	return req, nil
}

// RebuildFormData 从档案的结构化子记录反推表单载荷，
// 商户中途回来继续填写时不用重新输入已提交的内容。
// 银行账号只存密文，不回填表单。
func RebuildFormData(p *model.BusinessProfile) model.StepFormData {
	form := make(model.StepFormData)

	put := func(key model.FormKey, v interface{}) {
		raw, err := json.Marshal(v)
		if err != nil {
			return
		}
		form[key] = raw
	}

	if p.BusinessName != "" || p.Location.AddressLine1 != "" {
		put(model.FormKeyBusinessLocation, dto.BusinessLocationForm{
			BusinessName:  p.BusinessName,
			BusinessEmail: p.BusinessEmail,
			BusinessPhone: p.BusinessPhone,
			AddressLine1:  p.Location.AddressLine1,
			AddressLine2:  p.Location.AddressLine2,
			City:          p.Location.City,
			State:         p.Location.State,
			PostalCode:    p.Location.PostalCode,
			Latitude:      p.Location.Latitude,
			Longitude:     p.Location.Longitude,
		})
	}

	if p.Identity.FrontDocKey != "" {
		put(model.FormKeyOwnerIdentity, dto.OwnerIdentityForm{
			DocumentType:   p.Identity.DocumentType,
			FrontUploadKey: p.Identity.FrontDocKey,
			BackUploadKey:  p.Identity.BackDocKey,
		})
	}

	if p.LegalTax.LegalEntityName != "" {
		put(model.FormKeyLegalTax, dto.LegalTaxForm{
			LegalEntityName:       p.LegalTax.LegalEntityName,
			TaxRegistrationNo:     p.LegalTax.TaxRegistrationNo,
			FoodLicenseNo:         p.LegalTax.FoodLicenseNo,
			FoodLicenseUploadKey:  p.LegalTax.FoodLicenseDocKey,
			RegistrationUploadKey: p.LegalTax.RegistrationDocKey,
		})
	}

	if p.Banking.AccountHolder != "" {
		put(model.FormKeyBankingDetails, dto.BankingDetailsForm{
			AccountHolder: p.Banking.AccountHolder,
			BankCode:      p.Banking.BankCode,
			BankName:      p.Banking.BankName,
		})
	}

	if p.Banking.StatementDocKey != "" {
		put(model.FormKeyBankStatement, dto.BankStatementForm{
			UploadKey: p.Banking.StatementDocKey,
		})
	}

	if p.Package.PackageCode != "" {
		put(model.FormKeyPartnershipPackage, dto.PartnershipPackageForm{
			PackageCode: p.Package.PackageCode,
		})
	}

	if p.PaymentMethod != "" {
		put(model.FormKeyPaymentMethod, dto.PaymentMethodForm{Method: p.PaymentMethod})
	}

	if len(p.Verification.MenuImageKeys) > 0 {
		put(model.FormKeyDineInMenu, dto.DineInMenuForm{
			UploadKeys: p.Verification.MenuImageKeys,
		})
	}

	if p.Verification.TrainingCallSlot != "" {
		put(model.FormKeyTrainingCall, dto.TrainingCallForm{
			SlotTime: p.Verification.TrainingCallSlot,
			Phone:    p.Verification.TrainingCallPhone,
		})
	}

	if p.Verification.MonthlyOrderVolume != "" {
		put(model.FormKeyGrowthInfo, dto.GrowthInfoForm{
			MonthlyOrderVolume: p.Verification.MonthlyOrderVolume,
			OtherPlatforms:     p.Verification.OtherPlatforms,
		})
	}

	if p.Verification.FeePaymentRef != "" {
		put(model.FormKeyOnboardingFee, dto.OnboardingFeeForm{
			PaymentRef:          p.Verification.FeePaymentRef,
			ScreenshotUploadKey: p.Verification.FeeScreenshotKey,
		})
	}

	if len(p.Hours) > 0 {
		put(model.FormKeyBusinessHours, collapseBusinessHours(p.Hours))
	}

	return form
}

// collapseBusinessHours 逐时段记录收拢回按天分组的表单。
// 时段已是 24 小时制，To24Hour 原样接受，往返无损。
func collapseBusinessHours(hours model.OperatingHours) dto.BusinessHoursForm {
	byDay := make(map[string]*dto.BusinessDayForm)
	order := make([]string, 0, 7)

	for _, entry := range hours {
		day, ok := byDay[entry.DayOfWeek]
		if !ok {
			day = &dto.BusinessDayForm{Day: entry.DayOfWeek}
			byDay[entry.DayOfWeek] = day
			order = append(order, entry.DayOfWeek)
		}
		if entry.IsClosed {
			continue
		}
		day.IsOpen = true
		day.Slots = append(day.Slots, dto.HoursSlotForm{
			Opens:  entry.OpensAt,
			Closes: entry.ClosesAt,
		})
	}

	f := dto.BusinessHoursForm{Days: make([]dto.BusinessDayForm, 0, len(order))}
	for _, name := range order {
		f.Days = append(f.Days, *byDay[name])
	}
	return f
}

// ExpandBusinessHours 按天分组的表单展开成逐时段记录。
// 营业日的每个时段一条记录；休息日一条 isClosed=true、00:00–00:00 的哨兵记录。
func ExpandBusinessHours(f *dto.BusinessHoursForm) ([]dto.OperatingHourEntry, error) {
	entries := make([]dto.OperatingHourEntry, 0, len(f.Days))

	for _, day := range f.Days {
		if !day.IsOpen {
			entries = append(entries, dto.OperatingHourEntry{
				DayOfWeek: day.Day,
				OpensAt:   "00:00",
				ClosesAt:  "00:00",
				IsClosed:  true,
			})
			continue
		}

		for _, slot := range day.Slots {
			opens, err := utils.To24Hour(slot.Opens)
			if err != nil {
				return nil, fmt.Errorf("failed to convert opening time for %s: %w", day.Day, err)
			}
			closes, err := utils.To24Hour(slot.Closes)
			if err != nil {
				return nil, fmt.Errorf("failed to convert closing time for %s: %w", day.Day, err)
			}
			entries = append(entries, dto.OperatingHourEntry{
				DayOfWeek: day.Day,
				OpensAt:   opens,
				ClosesAt:  closes,
			})
		}
	}

	return entries, nil
}
