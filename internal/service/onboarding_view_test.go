package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"BistroHub/internal/model"
)

func TestSessionDataOrdersCompletedStepsByTopology(t *testing.T) {
	svc := NewOnboardingService(nil)

	st := model.NewOnboardingState()
	st.Initialize(&model.OnboardingRecord{
		CurrentStep: string(model.StepLegalTaxDetails),
		// 记录里的顺序是乱的，视图要按向导拓扑排
		CompletedSteps: []string{
			string(model.StepOwnerIdentityUpload),
			string(model.StepAddBusinessIntro),
			string(model.StepBusinessLocation),
		},
		CompletedPhases: []string{},
	}, nil)

	data := svc.sessionData(st)

	assert.Equal(t, string(model.StepLegalTaxDetails), data.CurrentStep)
	assert.Equal(t, []string{
		string(model.StepAddBusinessIntro),
		string(model.StepBusinessLocation),
		string(model.StepOwnerIdentityUpload),
	}, data.CompletedSteps)
	assert.Empty(t, data.CompletedPhases)
	assert.False(t, data.IsSubmitting)
}

func TestSessionDataComputesNavigationFlags(t *testing.T) {
	svc := NewOnboardingService(nil)

	st := model.NewOnboardingState()
	st.Initialize(&model.OnboardingRecord{CurrentStep: string(model.StepWelcome)}, nil)

	data := svc.sessionData(st)
	assert.False(t, data.CanGoBack, "welcome has nowhere to go back to")
	assert.False(t, data.IsLastStepOfPhase)

	st2 := model.NewOnboardingState()
	st2.Initialize(&model.OnboardingRecord{CurrentStep: string(model.StepBusinessInfoReview)}, nil)

	data2 := svc.sessionData(st2)
	assert.True(t, data2.CanGoBack)
	assert.True(t, data2.IsLastStepOfPhase)
}

func TestSessionDataCarriesFormPayloads(t *testing.T) {
	svc := NewOnboardingService(nil)

	st := model.NewOnboardingState()
	st.Initialize(&model.OnboardingRecord{CurrentStep: string(model.StepBusinessLocation)}, nil)
	payload := json.RawMessage(`{"addressLine1":"12 Curry Lane"}`)
	st.SetStepFormData(model.FormKeyBusinessLocation, payload)

	data := svc.sessionData(st)
	raw, ok := data.FormData[string(model.FormKeyBusinessLocation)]
	assert.True(t, ok)
	assert.JSONEq(t, string(payload), string(raw))
}
