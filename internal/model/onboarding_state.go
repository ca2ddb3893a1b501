package model

import "encoding/json"

// StepFormData 按表单键暂存的各步骤表单载荷，原样保存前端提交的 JSON
type StepFormData map[FormKey]json.RawMessage

// ExampleImageConfig 示例图抽屉载荷
type ExampleImageConfig struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

// MapConfirmConfig 地图确认抽屉载荷
type MapConfirmConfig struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// ConfirmDialogConfig 通用确认对话框载荷
type ConfirmDialogConfig struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// EmailConfirmConfig 业务邮箱二次确认对话框载荷
type EmailConfirmConfig struct {
	Email string `json:"email"`
}

// OverlayState 辅助界面的开关状态。每项独立开合，互斥由调用方自行保证；
// 开启即持有配置，关闭即清空，整块状态不落盘。
type OverlayState struct {
	ProgressDrawerOpen bool                 `json:"progress_drawer_open"`
	ExampleImage       *ExampleImageConfig  `json:"example_image,omitempty"`
	MapConfirm         *MapConfirmConfig    `json:"map_confirm,omitempty"`
	ConfirmDialog      *ConfirmDialogConfig `json:"confirm_dialog,omitempty"`
	EmailConfirm       *EmailConfirmConfig  `json:"email_confirm,omitempty"`
}

// OnboardingState 一次入驻会话的全部可变状态。单写者：只能通过自身方法修改。
type OnboardingState struct {
	CurrentStep     Step
	CompletedSteps  map[Step]bool
	CompletedPhases map[Phase]bool
	FormData        StepFormData

	// 瞬态标志，不随快照持久化
	IsSubmitting bool
	IsUploading  bool
	Overlays     OverlayState

	initialized bool
}

// NewOnboardingState 返回初始状态：停在 welcome，集合为空
func NewOnboardingState() *OnboardingState {
	return &OnboardingState{
		CurrentStep:     StepWelcome,
		CompletedSteps:  make(map[Step]bool),
		CompletedPhases: make(map[Phase]bool),
		FormData:        make(StepFormData),
	}
}

// Initialize 用远端档案的 onboarding 子记录做一次性水合。
// 重复调用是空操作，直到显式 Reset。
func (s *OnboardingState) Initialize(rec *OnboardingRecord, formData StepFormData) {
	if s.initialized {
		return
	}

	if rec != nil {
		if rec.CurrentStep != "" {
			// 目录之外的步骤值回退到 welcome，防御性恢复而非崩溃
			step, _ := ParseStep(rec.CurrentStep)
			s.CurrentStep = step
		}
		for _, raw := range rec.CompletedSteps {
			if step, ok := ParseStep(raw); ok {
				s.CompletedSteps[step] = true
			}
		}
		for _, raw := range rec.CompletedPhases {
			s.CompletedPhases[Phase(raw)] = true
		}
	}

	for key, payload := range formData {
		s.FormData[key] = payload
	}

	s.initialized = true
}

// Initialized 是否已完成水合
func (s *OnboardingState) Initialized() bool {
	return s.initialized
}

// SetStepFormData 覆盖一个表单键的载荷，后写覆盖先写，不影响步骤指针和完成集合
func (s *OnboardingState) SetStepFormData(key FormKey, payload json.RawMessage) {
	s.FormData[key] = payload
}

// GoToStep 直接跳转。只放行：原地、已完成的步骤（自由回看）、当前步骤在
// StepOrder 中的直接后继（回顾页的"去修改"链接）。其余目标静默拒绝，
// 防止通过直接导航跳过未完成的步骤。
func (s *OnboardingState) GoToStep(target Step) bool {
	if _, ok := stepIndex[target]; !ok {
		return false
	}

	if target == s.CurrentStep {
		return true
	}

	if s.CompletedSteps[target] {
		s.CurrentStep = target
		return true
	}

	if succ, ok := OrderedSuccessor(s.CurrentStep); ok && succ == target {
		s.CurrentStep = target
		return true
	}

	return false
}

// AdvanceStep 按拓扑前进；没有后继时保持原地并返回 false
func (s *OnboardingState) AdvanceStep() (Step, bool) {
	next, ok := NextStep(s.CurrentStep, s.CompletedPhases)
	if !ok {
		return s.CurrentStep, false
	}
	s.CurrentStep = next
	return next, true
}

// RetreatStep 按线性顺序后退；前驱必须已完成或是 welcome，否则空操作
func (s *OnboardingState) RetreatStep() (Step, bool) {
	if !CanGoBack(s.CurrentStep) {
		return s.CurrentStep, false
	}

	prev, ok := PrevStep(s.CurrentStep)
	if !ok {
		return s.CurrentStep, false
	}

	if prev != StepWelcome && !s.CompletedSteps[prev] {
		return s.CurrentStep, false
	}

	s.CurrentStep = prev
	return prev, true
}

// CompleteStep 幂等地记录步骤完成
func (s *OnboardingState) CompleteStep(step Step) {
	s.CompletedSteps[step] = true
}

// CompletePhase 幂等地记录阶段完成
func (s *OnboardingState) CompletePhase(phase Phase) {
	s.CompletedPhases[phase] = true
}

// MergeProfile 提交成功后用响应里的 onboarding 子记录覆盖本地状态。
// 服务端出现的字段为准，缺失的字段保留本地值；这是唯一让服务端赢过
// 本地乐观状态的入口。
func (s *OnboardingState) MergeProfile(rec *OnboardingRecord) {
	if rec == nil {
		return
	}

	if rec.CurrentStep != "" {
		step, _ := ParseStep(rec.CurrentStep)
		s.CurrentStep = step
	}

	if rec.CompletedSteps != nil {
		merged := make(map[Step]bool, len(rec.CompletedSteps))
		for _, raw := range rec.CompletedSteps {
			if step, ok := ParseStep(raw); ok {
				merged[step] = true
			}
		}
		s.CompletedSteps = merged
	}

	if rec.CompletedPhases != nil {
		merged := make(map[Phase]bool, len(rec.CompletedPhases))
		for _, raw := range rec.CompletedPhases {
			merged[Phase(raw)] = true
		}
		s.CompletedPhases = merged
	}
}

// Reset 清回初始值：welcome、空集合、空表单、所有浮层关闭
func (s *OnboardingState) Reset() {
	s.CurrentStep = StepWelcome
	s.CompletedSteps = make(map[Step]bool)
	s.CompletedPhases = make(map[Phase]bool)
	s.FormData = make(StepFormData)
	s.IsSubmitting = false
	s.IsUploading = false
	s.Overlays = OverlayState{}
	s.initialized = false
}

// OpenProgressDrawer / CloseProgressDrawer 进度抽屉开关
func (s *OnboardingState) OpenProgressDrawer()  { s.Overlays.ProgressDrawerOpen = true }
func (s *OnboardingState) CloseProgressDrawer() { s.Overlays.ProgressDrawerOpen = false }

func (s *OnboardingState) OpenExampleImage(cfg ExampleImageConfig) { s.Overlays.ExampleImage = &cfg }
func (s *OnboardingState) CloseExampleImage()                      { s.Overlays.ExampleImage = nil }

func (s *OnboardingState) OpenMapConfirm(cfg MapConfirmConfig) { s.Overlays.MapConfirm = &cfg }
func (s *OnboardingState) CloseMapConfirm()                    { s.Overlays.MapConfirm = nil }

func (s *OnboardingState) OpenConfirmDialog(cfg ConfirmDialogConfig) { s.Overlays.ConfirmDialog = &cfg }
func (s *OnboardingState) CloseConfirmDialog()                       { s.Overlays.ConfirmDialog = nil }

func (s *OnboardingState) OpenEmailConfirm(cfg EmailConfirmConfig) { s.Overlays.EmailConfirm = &cfg }
func (s *OnboardingState) CloseEmailConfirm()                      { s.Overlays.EmailConfirm = nil }

// OnboardingSnapshot 会话快照，非瞬态字段的持久化形态
type OnboardingSnapshot struct {
	CurrentStep     string                     `json:"current_step"`
	CompletedSteps  []string                   `json:"completed_steps"`
	CompletedPhases []string                   `json:"completed_phases"`
	FormData        map[string]json.RawMessage `json:"form_data"`
}

// Snapshot 导出可持久化的会话快照
func (s *OnboardingState) Snapshot() OnboardingSnapshot {
	snap := OnboardingSnapshot{
		CurrentStep:     string(s.CurrentStep),
		CompletedSteps:  make([]string, 0, len(s.CompletedSteps)),
		CompletedPhases: make([]string, 0, len(s.CompletedPhases)),
		FormData:        make(map[string]json.RawMessage, len(s.FormData)),
	}
	for _, step := range StepOrder {
		if s.CompletedSteps[step] {
			snap.CompletedSteps = append(snap.CompletedSteps, string(step))
		}
	}
	for _, phase := range []Phase{PhaseAddBusiness, PhaseVerifyBusiness, PhaseOpenBusiness} {
		if s.CompletedPhases[phase] {
			snap.CompletedPhases = append(snap.CompletedPhases, string(phase))
		}
	}
	for key, payload := range s.FormData {
		snap.FormData[string(key)] = payload
	}
	return snap
}

// RestoreSnapshot 从快照恢复会话，页面刷新后回到同一步骤和表单
func (s *OnboardingState) RestoreSnapshot(snap OnboardingSnapshot) {
	s.Reset()

	if snap.CurrentStep != "" {
		step, _ := ParseStep(snap.CurrentStep)
		s.CurrentStep = step
	}
	for _, raw := range snap.CompletedSteps {
		if step, ok := ParseStep(raw); ok {
			s.CompletedSteps[step] = true
		}
	}
	for _, raw := range snap.CompletedPhases {
		s.CompletedPhases[Phase(raw)] = true
	}
	for key, payload := range snap.FormData {
		s.FormData[FormKey(key)] = payload
	}

	s.initialized = true
}
