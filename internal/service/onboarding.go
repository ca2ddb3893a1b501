package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"sync"
	"time"

	"go.uber.org/zap"

	"BistroHub/config"
	"BistroHub/internal/cache"
	"BistroHub/internal/model"
	"BistroHub/internal/model/dto"
	"BistroHub/internal/queue"
	"BistroHub/internal/repository"
	pkgerrors "BistroHub/pkg/errors"
	"BistroHub/pkg/logger"
	"BistroHub/pkg/metrics"
)

var (
	onboardingService *OnboardingService
	onboardingOnce    sync.Once
)

func Onboarding() *OnboardingService {
	onboardingOnce.Do(func() {
		onboardingService = NewOnboardingService(Profile())
	})
	return onboardingService
}

// NewOnboardingService 档案服务通过接口注入，测试里可以换成假实现
func NewOnboardingService(profile ProfileAPI) *OnboardingService {
	return &OnboardingService{
		profile:  profile,
		sessions: make(map[int64]*model.OnboardingState),
	}
}

// OnboardingService 入驻向导的会话管理与提交流程。
// 会话状态常驻内存，每次变更同步快照到 Redis，进程重启或换实例时从快照重建。
type OnboardingService struct {
	profile  ProfileAPI
	mu       sync.Mutex
	sessions map[int64]*model.OnboardingState
}

// session 取出或重建商户的入驻会话。调用方必须持有 s.mu。
func (s *OnboardingService) session(ctx context.Context, partnerID int64) (*model.OnboardingState, error) {
	if st, ok := s.sessions[partnerID]; ok {
		return st, nil
	}

	st := model.NewOnboardingState()

	snap, err := cache.LoadSession(ctx, fmt.Sprintf("%d", partnerID))
	if err != nil {
		logger.Logger.Warn("Failed to load session snapshot, falling back to profile",
			zap.Int64("partner_id", partnerID),
			zap.Error(err),
		)
	}

	if snap != nil {
		st.RestoreSnapshot(*snap)
	} else {
		profile, err := s.profile.Fetch(ctx, partnerID)
		if err != nil {
			return nil, pkgerrors.ProfileFetchFailed
		}
		st.Initialize(&profile.Onboarding, RebuildFormData(profile))
	}

	s.sessions[partnerID] = st
	return st, nil
}

// persist 把会话快照写入 Redis；失败只记日志，内存态仍是权威
func (s *OnboardingService) persist(ctx context.Context, partnerID int64, st *model.OnboardingState) {
	snap := st.Snapshot()
	if err := cache.SaveSession(ctx, fmt.Sprintf("%d", partnerID), &snap); err != nil {
		logger.Logger.Warn("Failed to persist session snapshot",
			zap.Int64("partner_id", partnerID),
			zap.Error(err),
		)
	}
}

func (s *OnboardingService) sessionData(st *model.OnboardingState) *dto.SessionData {
	data := &dto.SessionData{
		CurrentStep:       string(st.CurrentStep),
		CompletedSteps:    make([]string, 0, len(st.CompletedSteps)),
		CompletedPhases:   make([]string, 0, len(st.CompletedPhases)),
		CanGoBack:         model.CanGoBack(st.CurrentStep),
		IsLastStepOfPhase: model.IsLastStepOfPhase(st.CurrentStep),
		IsSubmitting:      st.IsSubmitting,
		FormData:          make(map[string]json.RawMessage, len(st.FormData)),
	}
	for _, step := range model.StepOrder {
		if st.CompletedSteps[step] {
			data.CompletedSteps = append(data.CompletedSteps, string(step))
		}
	}
	for _, phase := range []model.Phase{model.PhaseAddBusiness, model.PhaseVerifyBusiness, model.PhaseOpenBusiness} {
		if st.CompletedPhases[phase] {
			data.CompletedPhases = append(data.CompletedPhases, string(phase))
		}
	}
	for key, payload := range st.FormData {
		data.FormData[string(key)] = payload
	}
	return data
}

// GetSession 返回会话视图，必要时从快照或档案重建
func (s *OnboardingService) GetSession(ctx context.Context, partnerID int64) (*dto.SessionData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.session(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	return s.sessionData(st), nil
}

// SetFormData 暂存当前步骤的表单载荷。步骤必须在目录内且有表单键。
func (s *OnboardingService) SetFormData(ctx context.Context, partnerID int64, rawStep string, payload json.RawMessage) error {
	step, ok := model.ParseStep(rawStep)
	if !ok {
		return pkgerrors.OnboardingStepInvalid
	}
	key, ok := model.StepFormKeys[step]
	if !ok {
		return pkgerrors.OnboardingStepInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.session(ctx, partnerID)
	if err != nil {
		return err
	}

	st.SetStepFormData(key, payload)
	s.persist(ctx, partnerID, st)
	return nil
}

// GoToStep 直接跳转。目录外的步骤值回退到 welcome；
// 不满足跳转守卫时静默保持原步骤，返回的会话视图告诉前端实际落点。
func (s *OnboardingService) GoToStep(ctx context.Context, partnerID int64, rawStep string) (*dto.SessionData, error) {
	target, known := model.ParseStep(rawStep)

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.session(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	if !known {
		st.GoToStep(model.StepWelcome)
	} else {
		st.GoToStep(target)
	}

	s.persist(ctx, partnerID, st)
	return s.sessionData(st), nil
}

// GoBack 按线性顺序回退一步
func (s *OnboardingService) GoBack(ctx context.Context, partnerID int64) (*dto.SessionData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.session(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	st.RetreatStep()
	s.persist(ctx, partnerID, st)
	return s.sessionData(st), nil
}

// Submit 当前步骤的"继续"动作。
// 同一商户已有在途提交时直接拒绝（丢弃而不是排队）；
// 向档案服务的同步带超时，防止挂起的请求永久占住在途标志。
// 成功后以响应里的 onboarding 子记录为准合并本地状态。
func (s *OnboardingService) Submit(ctx context.Context, partnerID int64, req *dto.SubmitStepRequest) (*dto.SubmitStepResponse, error) {
	timeout := time.Duration(config.Cfg.OnboardingSubmitTimeoutSeconds) * time.Second

	s.mu.Lock()
	st, err := s.session(ctx, partnerID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	if st.IsSubmitting {
		s.mu.Unlock()
		metrics.GetMetrics().RecordOnboardingSubmitDropped(ctx, string(st.CurrentStep))
		return nil, pkgerrors.OnboardingSubmitInFlight
	}

	// 跨实例的在途防抖；锁的 TTL 略长于提交超时，崩溃后自动释放
	partnerKey := fmt.Sprintf("%d", partnerID)
	locked, err := cache.TrySubmitLock(ctx, partnerKey, timeout+5*time.Second)
	if err != nil {
		logger.Logger.Warn("Failed to acquire submit lock, proceeding with local guard only",
			zap.Int64("partner_id", partnerID),
			zap.Error(err),
		)
	} else if !locked {
		s.mu.Unlock()
		return nil, pkgerrors.OnboardingSubmitInFlight
	}

	st.IsSubmitting = true
	current := st.CurrentStep
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		st.IsSubmitting = false
		s.mu.Unlock()
		cache.ReleaseSubmitLock(context.Background(), partnerKey)
	}()

	// 终点步骤不再提交表单，发延迟交接消息后收尾
	if current == model.StepPortalSetupComplete {
		return s.finishFlow(ctx, partnerID, st)
	}

	// 回顾步骤要求业务邮箱二次确认通过
	if current == model.StepBusinessInfoReview {
		if err := s.checkEmailConfirmed(ctx, partnerID, req); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	update, err := BuildProfileUpdate(current, st.FormData)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	update.CompleteStep = string(current)
	var completedPhase model.Phase
	if model.IsLastStepOfPhase(current) {
		completedPhase = model.StepPhaseMap[current]
		update.CompletePhase = string(completedPhase)
	}

	s.mu.Lock()
	next, hasNext := model.NextStep(current, st.CompletedPhases)
	s.mu.Unlock()
	if hasNext {
		update.CurrentStep = string(next)
	}

	submitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	profile, err := s.profile.Update(submitCtx, partnerID, update)
	metrics.GetMetrics().RecordOnboardingSubmit(ctx, string(current), err == nil, time.Since(start).Seconds())
	if err != nil {
		logger.Logger.Error("Onboarding submission failed",
			zap.Int64("partner_id", partnerID),
			zap.String("step", string(current)),
			zap.Error(err),
		)
		// 状态保持原样，商户可以直接重试
		return nil, err
	}

	s.mu.Lock()
	st.CompleteStep(current)
	if completedPhase != "" {
		st.CompletePhase(completedPhase)
	}
	st.MergeProfile(&profile.Onboarding)
	if st.CurrentStep == current && hasNext {
		// 响应没有推进步骤指针时按本地拓扑前进
		st.GoToStep(next)
	}
	s.persist(ctx, partnerID, st)
	resp := &dto.SubmitStepResponse{
		CompletedStep:  string(current),
		CompletedPhase: string(completedPhase),
		NextStep:       string(st.CurrentStep),
	}
	s.mu.Unlock()

	return resp, nil
}

// finishFlow 终点步骤的收尾：商户转入 activation_pending，
// 延迟消息到期后由 worker 清理会话并触发激活邮件。
func (s *OnboardingService) finishFlow(ctx context.Context, partnerID int64, st *model.OnboardingState) (*dto.SubmitStepResponse, error) {
	if err := repository.Partner().UpdateStatus(ctx, partnerID, model.PartnerStatusActivationPending); err != nil {
		return nil, fmt.Errorf("failed to update partner status: %w", err)
	}

	err := queue.PublishActivationHandoff(model.ActivationHandoffMessage{
		PartnerID:    partnerID,
		DelaySeconds: config.Cfg.ActivationHandoffDelaySeconds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule activation handoff: %w", err)
	}

	if err := queue.PublishOnboardingCompletedEvent(partnerID); err != nil {
		logger.Logger.Warn("Failed to publish onboarding completed event",
			zap.Int64("partner_id", partnerID),
			zap.Error(err),
		)
	}

	s.mu.Lock()
	st.CompleteStep(model.StepPortalSetupComplete)
	st.CompletePhase(model.PhaseVerifyBusiness)
	s.persist(ctx, partnerID, st)
	s.mu.Unlock()

	metrics.GetMetrics().RecordOnboardingCompleted(ctx, partnerID)
	logger.Logger.Info("Onboarding flow completed",
		zap.Int64("partner_id", partnerID),
	)

	return &dto.SubmitStepResponse{
		CompletedStep: string(model.StepPortalSetupComplete),
		FlowCompleted: true,
	}, nil
}

func (s *OnboardingService) checkEmailConfirmed(ctx context.Context, partnerID int64, req *dto.SubmitStepRequest) error {
	partnerKey := fmt.Sprintf("%d", partnerID)

	if cache.IsEmailConfirmed(ctx, partnerKey) {
		return nil
	}

	if req == nil || req.EmailConfirmCode == "" {
		return pkgerrors.EmailConfirmRequired
	}

	stored, err := cache.GetEmailConfirmCode(ctx, partnerKey)
	if err != nil || stored != req.EmailConfirmCode {
		return pkgerrors.EmailConfirmCodeInvalid
	}

	if err := cache.MarkEmailConfirmed(ctx, partnerKey); err != nil {
		logger.Logger.Warn("Failed to mark email confirmed",
			zap.Int64("partner_id", partnerID),
			zap.Error(err),
		)
	}
	return nil
}

// RequestEmailConfirm 发送业务邮箱确认码，回顾步骤提交前的前置动作
func (s *OnboardingService) RequestEmailConfirm(ctx context.Context, partnerID int64) error {
	profile, err := s.profile.Fetch(ctx, partnerID)
	if err != nil {
		return pkgerrors.ProfileFetchFailed
	}
	if profile.BusinessEmail == "" {
		return pkgerrors.EmailConfirmRequired
	}

	code := generateEmailConfirmCode()
	partnerKey := fmt.Sprintf("%d", partnerID)
	if err := cache.SetEmailConfirmCode(ctx, partnerKey, code); err != nil {
		return fmt.Errorf("failed to store email confirm code: %w", err)
	}

	err = queue.PublishNotification(model.NotificationMessage{
		PartnerID: partnerID,
		Category:  "email_confirm",
		Channel:   "email",
		Recipient: profile.BusinessEmail,
		TemplateParams: map[string]string{
			"code": code,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue email confirmation: %w", err)
	}

	s.mu.Lock()
	if st, ok := s.sessions[partnerID]; ok {
		st.OpenEmailConfirm(model.EmailConfirmConfig{Email: profile.BusinessEmail})
	}
	s.mu.Unlock()

	return nil
}

// Reset 清空会话，重新从 welcome 开始
func (s *OnboardingService) Reset(ctx context.Context, partnerID int64) error {
	s.mu.Lock()
	if st, ok := s.sessions[partnerID]; ok {
		st.Reset()
	}
	delete(s.sessions, partnerID)
	s.mu.Unlock()

	return cache.DeleteSession(ctx, fmt.Sprintf("%d", partnerID))
}

// HandleActivationHandoff 延迟交接落地：清理会话快照、吊销 refresh token，
// 发激活邮件，商户下次回来走激活流程
func (s *OnboardingService) HandleActivationHandoff(ctx context.Context, partnerID int64) error {
	partnerKey := fmt.Sprintf("%d", partnerID)

	s.mu.Lock()
	delete(s.sessions, partnerID)
	s.mu.Unlock()

	if err := cache.DeleteSession(ctx, partnerKey); err != nil {
		logger.Logger.Warn("Failed to delete session snapshot",
			zap.Int64("partner_id", partnerID),
			zap.Error(err),
		)
	}

	if err := cache.DeleteRefreshToken(ctx, partnerKey); err != nil {
		logger.Logger.Warn("Failed to revoke refresh token",
			zap.Int64("partner_id", partnerID),
			zap.Error(err),
		)
	}

	partner, err := repository.Partner().GetByPublicID(ctx, partnerID)
	if err != nil {
		return fmt.Errorf("failed to query partner: %w", err)
	}

	err = queue.PublishNotification(model.NotificationMessage{
		PartnerID: partnerID,
		Category:  "activation",
		Channel:   "email",
		Recipient: partner.Email,
		TemplateParams: map[string]string{
			"contact_name": partner.ContactName,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue activation email: %w", err)
	}

	logger.Logger.Info("Activation handoff completed",
		zap.Int64("partner_id", partnerID),
	)
	return nil
}

func generateEmailConfirmCode() string {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return fmt.Sprintf("%06d", time.Now().UnixNano()%1000000)
	}
	return fmt.Sprintf("%06d", n.Int64())
}
