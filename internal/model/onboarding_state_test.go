package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOnboardingState(t *testing.T) {
	st := NewOnboardingState()
	assert.Equal(t, StepWelcome, st.CurrentStep)
	assert.Empty(t, st.CompletedSteps)
	assert.Empty(t, st.CompletedPhases)
	assert.False(t, st.Initialized())
}

func TestInitializeIsOneShot(t *testing.T) {
	st := NewOnboardingState()
	st.Initialize(&OnboardingRecord{
		CurrentStep:    "banking_details",
		CompletedSteps: []string{"business_location", "owner_identity_upload"},
	}, nil)

	assert.Equal(t, StepBankingDetails, st.CurrentStep)
	assert.True(t, st.CompletedSteps[StepBusinessLocation])
	assert.True(t, st.Initialized())

	// 重复水合是空操作
	st.Initialize(&OnboardingRecord{CurrentStep: "welcome"}, nil)
	assert.Equal(t, StepBankingDetails, st.CurrentStep)
}

func TestInitializeFallsBackOnUnknownStep(t *testing.T) {
	st := NewOnboardingState()
	st.Initialize(&OnboardingRecord{
		CurrentStep:    "step_from_the_future",
		CompletedSteps: []string{"business_location", "not_a_step"},
	}, nil)

	assert.Equal(t, StepWelcome, st.CurrentStep)
	assert.True(t, st.CompletedSteps[StepBusinessLocation])
	assert.Len(t, st.CompletedSteps, 1)
}

func TestGoToStepGuard(t *testing.T) {
	st := NewOnboardingState()
	st.CurrentStep = StepBusinessLocation
	st.CompletedSteps[StepAddBusinessIntro] = true

	// 原地跳转放行
	assert.True(t, st.GoToStep(StepBusinessLocation))

	// 已完成的步骤可以自由回看
	assert.True(t, st.GoToStep(StepAddBusinessIntro))
	assert.Equal(t, StepAddBusinessIntro, st.CurrentStep)

	// 未完成且不是直接后继：静默拒绝，指针不动
	assert.False(t, st.GoToStep(StepBankingDetails))
	assert.Equal(t, StepAddBusinessIntro, st.CurrentStep)

	// 直接后继放行（回顾页的去修改链接）
	assert.True(t, st.GoToStep(StepBusinessLocation))
	assert.Equal(t, StepBusinessLocation, st.CurrentStep)

	// 目录之外的目标拒绝
	assert.False(t, st.GoToStep(Step("bogus")))
}

func TestCompleteIsIdempotent(t *testing.T) {
	st := NewOnboardingState()
	st.CompleteStep(StepBusinessLocation)
	st.CompleteStep(StepBusinessLocation)
	st.CompletePhase(PhaseAddBusiness)
	st.CompletePhase(PhaseAddBusiness)

	assert.Len(t, st.CompletedSteps, 1)
	assert.Len(t, st.CompletedPhases, 1)
}

func TestRetreatStepRequiresCompletedPredecessor(t *testing.T) {
	st := NewOnboardingState()

	// welcome 不允许回退
	_, ok := st.RetreatStep()
	assert.False(t, ok)

	// 前驱未完成：空操作
	st.CurrentStep = StepBankingDetails
	_, ok = st.RetreatStep()
	assert.False(t, ok)
	assert.Equal(t, StepBankingDetails, st.CurrentStep)

	// 前驱已完成：后退一步
	st.CompletedSteps[StepLegalTaxDetails] = true
	prev, ok := st.RetreatStep()
	assert.True(t, ok)
	assert.Equal(t, StepLegalTaxDetails, prev)
}

func TestAdvanceStep(t *testing.T) {
	st := NewOnboardingState()

	next, ok := st.AdvanceStep()
	require.True(t, ok)
	assert.Equal(t, StepAddBusinessIntro, next)

	// 终点步骤没有后继，原地不动
	st.CurrentStep = StepPortalSetupComplete
	cur, ok := st.AdvanceStep()
	assert.False(t, ok)
	assert.Equal(t, StepPortalSetupComplete, cur)
}

func TestMergeProfileServerWins(t *testing.T) {
	st := NewOnboardingState()
	st.CurrentStep = StepBankingDetails
	st.CompletedSteps[StepBusinessLocation] = true

	st.MergeProfile(&OnboardingRecord{
		CurrentStep:     "bank_statement_upload",
		CompletedSteps:  []string{"business_location", "banking_details"},
		CompletedPhases: []string{"add_business"},
	})

	assert.Equal(t, StepBankStatementUpload, st.CurrentStep)
	assert.True(t, st.CompletedSteps[StepBankingDetails])
	assert.True(t, st.CompletedPhases[PhaseAddBusiness])
}

func TestMergeProfileKeepsLocalOnMissingFields(t *testing.T) {
	st := NewOnboardingState()
	st.CurrentStep = StepBankingDetails
	st.CompletedSteps[StepBusinessLocation] = true
	st.CompletedPhases[PhaseAddBusiness] = true

	// 响应缺失的字段保留本地值
	st.MergeProfile(&OnboardingRecord{})
	assert.Equal(t, StepBankingDetails, st.CurrentStep)
	assert.True(t, st.CompletedSteps[StepBusinessLocation])
	assert.True(t, st.CompletedPhases[PhaseAddBusiness])

	st.MergeProfile(nil)
	assert.Equal(t, StepBankingDetails, st.CurrentStep)
}

func TestSnapshotRoundTrip(t *testing.T) {
	st := NewOnboardingState()
	st.CurrentStep = StepTrainingCallPreference
	st.CompletedSteps[StepBusinessLocation] = true
	st.CompletedSteps[StepDineInMenuUpload] = true
	st.CompletedPhases[PhaseAddBusiness] = true
	st.SetStepFormData(FormKeyDineInMenu, json.RawMessage(`{"upload_keys":["k1"]}`))
	st.IsSubmitting = true
	st.OpenProgressDrawer()

	snap := st.Snapshot()

	restored := NewOnboardingState()
	restored.RestoreSnapshot(snap)

	assert.Equal(t, st.CurrentStep, restored.CurrentStep)
	assert.Equal(t, st.CompletedSteps, restored.CompletedSteps)
	assert.Equal(t, st.CompletedPhases, restored.CompletedPhases)
	assert.JSONEq(t, `{"upload_keys":["k1"]}`, string(restored.FormData[FormKeyDineInMenu]))

	// 瞬态标志不随快照持久化
	assert.False(t, restored.IsSubmitting)
	assert.False(t, restored.Overlays.ProgressDrawerOpen)
	assert.True(t, restored.Initialized())
}

func TestSnapshotCompletedStepsFollowStepOrder(t *testing.T) {
	st := NewOnboardingState()
	st.CompletedSteps[StepBankingDetails] = true
	st.CompletedSteps[StepBusinessLocation] = true

	snap := st.Snapshot()
	assert.Equal(t, []string{"business_location", "banking_details"}, snap.CompletedSteps)
}

func TestReset(t *testing.T) {
	st := NewOnboardingState()
	st.Initialize(&OnboardingRecord{CurrentStep: "banking_details"}, nil)
	st.CompleteStep(StepBusinessLocation)
	st.SetStepFormData(FormKeyBankingDetails, json.RawMessage(`{}`))
	st.IsSubmitting = true

	st.Reset()

	assert.Equal(t, StepWelcome, st.CurrentStep)
	assert.Empty(t, st.CompletedSteps)
	assert.Empty(t, st.FormData)
	assert.False(t, st.IsSubmitting)
	assert.False(t, st.Initialized())
}
