package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepOrderCoversAllSteps(t *testing.T) {
	assert.Len(t, StepOrder, 18)

	seen := make(map[Step]bool)
	for _, s := range StepOrder {
		assert.False(t, seen[s], "duplicate step %s", s)
		seen[s] = true

		_, ok := StepPhaseMap[s]
		assert.True(t, ok, "step %s has no phase", s)
	}
}

func TestStepOrderPhasesAreContiguous(t *testing.T) {
	// 阶段内步骤在 StepOrder 中必须连续
	var prev Phase
	seenPhases := make(map[Phase]bool)
	for _, s := range StepOrder {
		phase := StepPhaseMap[s]
		if phase != prev {
			assert.False(t, seenPhases[phase], "phase %s appears twice in order", phase)
			seenPhases[phase] = true
			prev = phase
		}
	}
}

func TestParseStep(t *testing.T) {
	step, ok := ParseStep("banking_details")
	assert.True(t, ok)
	assert.Equal(t, StepBankingDetails, step)

	// 目录外的值回退到 welcome
	step, ok = ParseStep("no_such_step")
	assert.False(t, ok)
	assert.Equal(t, StepWelcome, step)

	step, ok = ParseStep("")
	assert.False(t, ok)
	assert.Equal(t, StepWelcome, step)
}

func TestNextStepWelcomeActsAsPhaseSelector(t *testing.T) {
	// 新商户：进入第一阶段
	next, ok := NextStep(StepWelcome, map[Phase]bool{})
	require.True(t, ok)
	assert.Equal(t, StepAddBusinessIntro, next)

	// 第一阶段已完成：进入第二阶段
	next, ok = NextStep(StepWelcome, map[Phase]bool{PhaseAddBusiness: true})
	require.True(t, ok)
	assert.Equal(t, StepVerifyBusinessIntro, next)

	// 前两阶段已完成：进入第三阶段
	next, ok = NextStep(StepWelcome, map[Phase]bool{
		PhaseAddBusiness:    true,
		PhaseVerifyBusiness: true,
	})
	require.True(t, ok)
	assert.Equal(t, StepOpenBusinessIntro, next)
}

func TestNextStepPhaseLastReturnsToWelcome(t *testing.T) {
	next, ok := NextStep(StepBusinessInfoReview, map[Phase]bool{})
	require.True(t, ok)
	assert.Equal(t, StepWelcome, next)

	next, ok = NextStep(StepBusinessHoursSetup, map[Phase]bool{})
	require.True(t, ok)
	assert.Equal(t, StepWelcome, next)
}

func TestNextStepTerminalHasNoSuccessor(t *testing.T) {
	_, ok := NextStep(StepPortalSetupComplete, map[Phase]bool{})
	assert.False(t, ok)
}

func TestNextStepMidPhaseFollowsOrder(t *testing.T) {
	next, ok := NextStep(StepBusinessLocation, map[Phase]bool{})
	require.True(t, ok)
	assert.Equal(t, StepOwnerIdentityUpload, next)

	next, ok = NextStep(StepDineInMenuUpload, map[Phase]bool{})
	require.True(t, ok)
	assert.Equal(t, StepTrainingCallPreference, next)
}

func TestPrevStep(t *testing.T) {
	prev, ok := PrevStep(StepOwnerIdentityUpload)
	require.True(t, ok)
	assert.Equal(t, StepBusinessLocation, prev)

	_, ok = PrevStep(StepWelcome)
	assert.False(t, ok)
}

func TestCanGoBack(t *testing.T) {
	assert.False(t, CanGoBack(StepWelcome))
	assert.True(t, CanGoBack(StepAddBusinessIntro))
	assert.True(t, CanGoBack(StepPortalSetupComplete))
}

func TestIsLastStepOfPhase(t *testing.T) {
	assert.True(t, IsLastStepOfPhase(StepBusinessInfoReview))
	assert.True(t, IsLastStepOfPhase(StepPortalSetupComplete))
	assert.True(t, IsLastStepOfPhase(StepBusinessHoursSetup))
	assert.False(t, IsLastStepOfPhase(StepWelcome))
	assert.False(t, IsLastStepOfPhase(StepBankingDetails))
}

func TestStepFormKeysOnlyOnFormSteps(t *testing.T) {
	// 介绍页、回顾页和收尾页没有表单键
	for _, s := range []Step{
		StepWelcome, StepAddBusinessIntro, StepBusinessInfoReview,
		StepVerifyBusinessIntro, StepPortalSetupComplete, StepOpenBusinessIntro,
	} {
		_, ok := StepFormKeys[s]
		assert.False(t, ok, "step %s should not have a form key", s)
	}

	key, ok := StepFormKeys[StepBusinessHoursSetup]
	require.True(t, ok)
	assert.Equal(t, FormKeyBusinessHours, key)
}
