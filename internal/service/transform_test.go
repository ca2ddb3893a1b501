package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BistroHub/internal/model"
	"BistroHub/internal/model/dto"
	pkgerrors "BistroHub/pkg/errors"
)

func formDataFor(t *testing.T, key model.FormKey, form interface{}) model.StepFormData {
	t.Helper()
	raw, err := json.Marshal(form)
	require.NoError(t, err)
	return model.StepFormData{key: raw}
}

func TestBuildProfileUpdateNoFormStep(t *testing.T) {
	// 没有表单的步骤返回空请求，进度指令由调用方补上
	req, err := BuildProfileUpdate(model.StepWelcome, model.StepFormData{})
	require.NoError(t, err)
	assert.Equal(t, &dto.ProfileUpdateRequest{}, req)

	req, err = BuildProfileUpdate(model.StepBusinessInfoReview, model.StepFormData{})
	require.NoError(t, err)
	assert.Equal(t, &dto.ProfileUpdateRequest{}, req)
}

func TestBuildProfileUpdateMissingPayload(t *testing.T) {
	_, err := BuildProfileUpdate(model.StepBankingDetails, model.StepFormData{})
	assert.ErrorIs(t, err, pkgerrors.OnboardingFormDataMissing)

	_, err = BuildProfileUpdate(model.StepBankingDetails, model.StepFormData{
		model.FormKeyBankingDetails: json.RawMessage{},
	})
	assert.ErrorIs(t, err, pkgerrors.OnboardingFormDataMissing)
}

func TestBuildProfileUpdateBusinessLocation(t *testing.T) {
	form := formDataFor(t, model.FormKeyBusinessLocation, dto.BusinessLocationForm{
		BusinessName:  "Spice Villa",
		BusinessEmail: "owner@spicevilla.in",
		BusinessPhone: "+919876543210",
		AddressLine1:  "12 MG Road",
		City:          "Bengaluru",
		State:         "KA",
		PostalCode:    "560001",
		Latitude:      12.9716,
		Longitude:     77.5946,
	})

	req, err := BuildProfileUpdate(model.StepBusinessLocation, form)
	require.NoError(t, err)
	require.NotNil(t, req.BusinessName)
	assert.Equal(t, "Spice Villa", *req.BusinessName)
	require.NotNil(t, req.Latitude)
	assert.InDelta(t, 12.9716, *req.Latitude, 1e-9)
}

func TestBuildProfileUpdateBankingDetails(t *testing.T) {
	form := formDataFor(t, model.FormKeyBankingDetails, dto.BankingDetailsForm{
		AccountHolder: "Spice Villa Pvt Ltd",
		AccountNumber: "123456789012",
		BankCode:      "HDFC0001234",
		BankName:      "HDFC Bank",
	})

	req, err := BuildProfileUpdate(model.StepBankingDetails, form)
	require.NoError(t, err)
	require.NotNil(t, req.BankAccountNumber)
	assert.Equal(t, "123456789012", *req.BankAccountNumber)
	assert.Equal(t, "HDFC0001234", *req.BankCode)
}

func TestBuildProfileUpdateOwnerIdentityOptionalBack(t *testing.T) {
	form := formDataFor(t, model.FormKeyOwnerIdentity, dto.OwnerIdentityForm{
		DocumentType:   "aadhaar",
		FrontUploadKey: "key-front",
	})

	req, err := BuildProfileUpdate(model.StepOwnerIdentityUpload, form)
	require.NoError(t, err)
	require.NotNil(t, req.IdentityFrontKey)
	assert.Equal(t, "key-front", *req.IdentityFrontKey)
	assert.Nil(t, req.IdentityBackKey)
}

func TestBuildProfileUpdateTrainingCallConvertsClock(t *testing.T) {
	form := formDataFor(t, model.FormKeyTrainingCall, dto.TrainingCallForm{
		SlotTime: "2:30 PM",
		Phone:    "+919876543210",
	})

	req, err := BuildProfileUpdate(model.StepTrainingCallPreference, form)
	require.NoError(t, err)
	require.NotNil(t, req.TrainingSlot)
	assert.Equal(t, "14:30", *req.TrainingSlot)
}

func TestBuildProfileUpdateTrainingCallRejectsBadClock(t *testing.T) {
	form := formDataFor(t, model.FormKeyTrainingCall, dto.TrainingCallForm{
		SlotTime: "half past two",
		Phone:    "+919876543210",
	})

	_, err := BuildProfileUpdate(model.StepTrainingCallPreference, form)
	assert.Error(t, err)
}

func TestExpandBusinessHours(t *testing.T) {
	form := &dto.BusinessHoursForm{
		Days: []dto.BusinessDayForm{
			{
				Day:    "monday",
				IsOpen: true,
				Slots: []dto.HoursSlotForm{
					{Opens: "9:00 AM", Closes: "2:30 PM"},
					{Opens: "6:00 PM", Closes: "11:00 PM"},
				},
			},
			{Day: "tuesday", IsOpen: false},
		},
	}

	entries, err := ExpandBusinessHours(form)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, dto.OperatingHourEntry{
		DayOfWeek: "monday", OpensAt: "09:00", ClosesAt: "14:30",
	}, entries[0])
	assert.Equal(t, dto.OperatingHourEntry{
		DayOfWeek: "monday", OpensAt: "18:00", ClosesAt: "23:00",
	}, entries[1])

	// 休息日是一条 00:00–00:00 的哨兵记录
	assert.Equal(t, dto.OperatingHourEntry{
		DayOfWeek: "tuesday", OpensAt: "00:00", ClosesAt: "00:00", IsClosed: true,
	}, entries[2])
}

func TestExpandBusinessHoursBadClock(t *testing.T) {
	form := &dto.BusinessHoursForm{
		Days: []dto.BusinessDayForm{
			{Day: "monday", IsOpen: true, Slots: []dto.HoursSlotForm{{Opens: "morning", Closes: "9:00 PM"}}},
		},
	}

	_, err := ExpandBusinessHours(form)
	assert.Error(t, err)
}

func TestRebuildFormDataFromProfile(t *testing.T) {
	profile := &model.BusinessProfile{
		BusinessName:  "Luigi's Kitchen",
		BusinessEmail: "owner@luigis.example",
		BusinessPhone: "+911234567890",
		Location: model.LocationRecord{
			AddressLine1: "12 Curry Lane",
			City:         "Pune",
			State:        "MH",
			PostalCode:   "411001",
			Latitude:     18.52,
			Longitude:    73.85,
		},
		Banking: model.BankingRecord{
			AccountHolder:       "Luigi Rossi",
			AccountNumberCipher: "b64cipher",
			AccountNumberLast4:  "4321",
			BankCode:            "HDFC0001",
			BankName:            "HDFC",
		},
		PaymentMethod: model.PaymentMethodBankTransfer,
		Verification: model.VerificationRecord{
			TrainingCallSlot:  "14:30",
			TrainingCallPhone: "+911234567890",
		},
	}

	form := RebuildFormData(profile)

	var loc dto.BusinessLocationForm
	require.NoError(t, json.Unmarshal(form[model.FormKeyBusinessLocation], &loc))
	assert.Equal(t, "Luigi's Kitchen", loc.BusinessName)
	assert.Equal(t, "12 Curry Lane", loc.AddressLine1)

	// 银行账号密文不回填表单
	var bank dto.BankingDetailsForm
	require.NoError(t, json.Unmarshal(form[model.FormKeyBankingDetails], &bank))
	assert.Equal(t, "Luigi Rossi", bank.AccountHolder)
	assert.Empty(t, bank.AccountNumber)

	var call dto.TrainingCallForm
	require.NoError(t, json.Unmarshal(form[model.FormKeyTrainingCall], &call))
	assert.Equal(t, "14:30", call.SlotTime)

	// 未填写过的部分不产生表单键
	assert.NotContains(t, form, model.FormKeyOwnerIdentity)
	assert.NotContains(t, form, model.FormKeyBusinessHours)
}

func TestRebuildFormDataRoundTripsBusinessHours(t *testing.T) {
	profile := &model.BusinessProfile{
		Hours: model.OperatingHours{
			{DayOfWeek: "monday", OpensAt: "09:00", ClosesAt: "14:30"},
			{DayOfWeek: "monday", OpensAt: "18:00", ClosesAt: "23:00"},
			{DayOfWeek: "tuesday", OpensAt: "00:00", ClosesAt: "00:00", IsClosed: true},
		},
	}

	form := RebuildFormData(profile)

	var hours dto.BusinessHoursForm
	require.NoError(t, json.Unmarshal(form[model.FormKeyBusinessHours], &hours))
	require.Len(t, hours.Days, 2)
	assert.True(t, hours.Days[0].IsOpen)
	assert.Len(t, hours.Days[0].Slots, 2)
	assert.False(t, hours.Days[1].IsOpen)
	assert.Empty(t, hours.Days[1].Slots)

	// 收拢再展开与档案里的记录一致
	entries, err := ExpandBusinessHours(&hours)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "monday", entries[0].DayOfWeek)
	assert.True(t, entries[2].IsClosed)
}
