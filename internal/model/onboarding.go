package model

// Step 入驻向导的单个步骤标识，闭集，运行期不会新增
type Step string

const (
	StepWelcome                Step = "welcome"
	StepAddBusinessIntro       Step = "add_business_intro"
	StepBusinessLocation       Step = "business_location"
	StepOwnerIdentityUpload    Step = "owner_identity_upload"
	StepLegalTaxDetails        Step = "legal_tax_details"
	StepBankingDetails         Step = "banking_details"
	StepBankStatementUpload    Step = "bank_statement_upload"
	StepPartnershipPackage     Step = "partnership_package"
	StepPaymentMethodSelection Step = "payment_method_selection"
	StepBusinessInfoReview     Step = "business_info_review"
	StepVerifyBusinessIntro    Step = "verify_business_intro"
	StepDineInMenuUpload       Step = "dine_in_menu_upload"
	StepTrainingCallPreference Step = "training_call_preference"
	StepGrowthInformation      Step = "growth_information"
	StepOnboardingFeePayment   Step = "onboarding_fee_payment"
	StepPortalSetupComplete    Step = "portal_setup_complete"
	StepOpenBusinessIntro      Step = "open_business_intro"
	StepBusinessHoursSetup     Step = "business_hours_setup"
)

// Phase 步骤所属的阶段
type Phase string

const (
	PhaseAddBusiness    Phase = "add_business"
	PhaseVerifyBusiness Phase = "verify_business"
	PhaseOpenBusiness   Phase = "open_business"
)

// StepOrder 全部步骤的固定线性顺序，阶段内连续
var StepOrder = []Step{
	StepWelcome,
	StepAddBusinessIntro,
	StepBusinessLocation,
	StepOwnerIdentityUpload,
	StepLegalTaxDetails,
	StepBankingDetails,
	StepBankStatementUpload,
	StepPartnershipPackage,
	StepPaymentMethodSelection,
	StepBusinessInfoReview,
	StepVerifyBusinessIntro,
	StepDineInMenuUpload,
	StepTrainingCallPreference,
	StepGrowthInformation,
	StepOnboardingFeePayment,
	StepPortalSetupComplete,
	StepOpenBusinessIntro,
	StepBusinessHoursSetup,
}

var stepIndex = func() map[Step]int {
	m := make(map[Step]int, len(StepOrder))
	for i, s := range StepOrder {
		m[s] = i
	}
	return m
}()

// StepPhaseMap 步骤到阶段的全函数映射
var StepPhaseMap = map[Step]Phase{
	StepWelcome:                PhaseAddBusiness,
	StepAddBusinessIntro:       PhaseAddBusiness,
	StepBusinessLocation:       PhaseAddBusiness,
	StepOwnerIdentityUpload:    PhaseAddBusiness,
	StepLegalTaxDetails:        PhaseAddBusiness,
	StepBankingDetails:         PhaseAddBusiness,
	StepBankStatementUpload:    PhaseAddBusiness,
	StepPartnershipPackage:     PhaseAddBusiness,
	StepPaymentMethodSelection: PhaseAddBusiness,
	StepBusinessInfoReview:     PhaseAddBusiness,
	StepVerifyBusinessIntro:    PhaseVerifyBusiness,
	StepDineInMenuUpload:       PhaseVerifyBusiness,
	StepTrainingCallPreference: PhaseVerifyBusiness,
	StepGrowthInformation:      PhaseVerifyBusiness,
	StepOnboardingFeePayment:   PhaseVerifyBusiness,
	StepPortalSetupComplete:    PhaseVerifyBusiness,
	StepOpenBusinessIntro:      PhaseOpenBusiness,
	StepBusinessHoursSetup:     PhaseOpenBusiness,
}

// PhaseEntryStep 每个阶段的入口步骤
var PhaseEntryStep = map[Phase]Step{
	PhaseAddBusiness:    StepAddBusinessIntro,
	PhaseVerifyBusiness: StepVerifyBusinessIntro,
	PhaseOpenBusiness:   StepOpenBusinessIntro,
}

// PhaseLastStep 每个阶段的收尾步骤，完成它即完成该阶段
var PhaseLastStep = map[Phase]Step{
	PhaseAddBusiness:    StepBusinessInfoReview,
	PhaseVerifyBusiness: StepPortalSetupComplete,
	PhaseOpenBusiness:   StepBusinessHoursSetup,
}

// FormKey 表单数据的存储键，与步骤标识分离；纯展示类步骤没有表单键
type FormKey string

const (
	FormKeyBusinessLocation   FormKey = "businessLocation"
	FormKeyOwnerIdentity      FormKey = "ownerIdentity"
	FormKeyLegalTax           FormKey = "legalTax"
	FormKeyBankingDetails     FormKey = "bankingDetails"
	FormKeyBankStatement      FormKey = "bankStatement"
	FormKeyPartnershipPackage FormKey = "partnershipPackage"
	FormKeyPaymentMethod      FormKey = "paymentMethod"
	FormKeyDineInMenu         FormKey = "dineInMenu"
	FormKeyTrainingCall       FormKey = "trainingCall"
	FormKeyGrowthInfo         FormKey = "growthInfo"
	FormKeyOnboardingFee      FormKey = "onboardingFee"
	FormKeyBusinessHours      FormKey = "businessHours"
)

// StepFormKeys 步骤到表单键的偏函数映射；介绍页、回顾页和收尾页没有表单
var StepFormKeys = map[Step]FormKey{
	StepBusinessLocation:       FormKeyBusinessLocation,
	StepOwnerIdentityUpload:    FormKeyOwnerIdentity,
	StepLegalTaxDetails:        FormKeyLegalTax,
	StepBankingDetails:         FormKeyBankingDetails,
	StepBankStatementUpload:    FormKeyBankStatement,
	StepPartnershipPackage:     FormKeyPartnershipPackage,
	StepPaymentMethodSelection: FormKeyPaymentMethod,
	StepDineInMenuUpload:       FormKeyDineInMenu,
	StepTrainingCallPreference: FormKeyTrainingCall,
	StepGrowthInformation:      FormKeyGrowthInfo,
	StepOnboardingFeePayment:   FormKeyOnboardingFee,
	StepBusinessHoursSetup:     FormKeyBusinessHours,
}

// ParseStep 校验外部传入的步骤值；不在目录内时返回 false，调用方应回退到 welcome
func ParseStep(raw string) (Step, bool) {
	s := Step(raw)
	if _, ok := stepIndex[s]; !ok {
		return StepWelcome, false
	}
	return s, true
}

// StepPosition 返回步骤在 StepOrder 中的下标
func StepPosition(s Step) (int, bool) {
	i, ok := stepIndex[s]
	return i, ok
}

// OrderedSuccessor 返回 StepOrder 里紧随其后的步骤，不含阶段跳转逻辑
func OrderedSuccessor(s Step) (Step, bool) {
	i, ok := stepIndex[s]
	if !ok || i+1 >= len(StepOrder) {
		return "", false
	}
	return StepOrder[i+1], true
}

// NextStep 计算步骤的后继。
// welcome 是阶段选择器：返回第一个未完成阶段的入口步骤，老商户回来时可以跳过已完成的阶段；
// portal_setup_complete 是流程的收尾屏，没有自动后继；
// 其余阶段末步骤先回到 welcome 重新走阶段选择，阶段切换总是经过回顾屏。
func NextStep(current Step, completedPhases map[Phase]bool) (Step, bool) {
	if current == StepWelcome {
		switch {
		case completedPhases[PhaseVerifyBusiness]:
			return PhaseEntryStep[PhaseOpenBusiness], true
		case completedPhases[PhaseAddBusiness]:
			return PhaseEntryStep[PhaseVerifyBusiness], true
		default:
			return PhaseEntryStep[PhaseAddBusiness], true
		}
	}

	if current == StepPortalSetupComplete {
		return "", false
	}

	if IsLastStepOfPhase(current) {
		return StepWelcome, true
	}

	return OrderedSuccessor(current)
}

// PrevStep 返回 StepOrder 里的前驱
func PrevStep(current Step) (Step, bool) {
	i, ok := stepIndex[current]
	if !ok || i == 0 {
		return "", false
	}
	return StepOrder[i-1], true
}

// CanGoBack 只有 welcome 不允许回退
func CanGoBack(s Step) bool {
	return s != StepWelcome
}

// IsLastStepOfPhase 判断步骤是否是其所属阶段的收尾步骤
func IsLastStepOfPhase(s Step) bool {
	phase, ok := StepPhaseMap[s]
	if !ok {
		return false
	}
	return PhaseLastStep[phase] == s
}
