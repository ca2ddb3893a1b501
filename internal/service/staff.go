package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"BistroHub/internal/model"
	"BistroHub/internal/model/dto"
	"BistroHub/internal/queue"
	"BistroHub/internal/repository"
	pkgerrors "BistroHub/pkg/errors"
	"BistroHub/pkg/logger"
	"BistroHub/pkg/snowflake"
	"BistroHub/utils"
)

// 单店成员上限，含 owner
const maxStaffPerPartner = 20

var (
	staffService *StaffService
	staffOnce    sync.Once
)

func Staff() *StaffService {
	staffOnce.Do(func() {
		staffService = &StaffService{}
	})
	return staffService
}

type StaffService struct{}

// Invite 邀请成员并发邀请邮件。角色只能是 manager/staff，owner 不可指派。
func (s *StaffService) Invite(ctx context.Context, partnerID int64, req *dto.InviteStaffRequest) (*dto.StaffMemberData, error) {
	role := model.StaffRole(req.Role)
	if !model.ValidStaffRoles[role] {
		return nil, pkgerrors.StaffRoleInvalid
	}
	if !utils.ValidateEmail(req.Email) {
		return nil, pkgerrors.StaffRoleInvalid
	}

	count, err := repository.Staff().CountByPartner(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count staff: %w", err)
	}
	if count >= maxStaffPerPartner {
		return nil, pkgerrors.StaffLimitReached
	}

	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate staff ID: %w", err)
	}

	member := &model.StaffMember{
		PartnerID:   partnerID,
		PublicID:    publicID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        role,
		Invited:     true,
	}

	if err := repository.Staff().Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}

	err = queue.PublishNotification(model.NotificationMessage{
		PartnerID: partnerID,
		Category:  "staff_invite",
		Channel:   "email",
		Recipient: req.Email,
		TemplateParams: map[string]string{
			"display_name": req.DisplayName,
			"role":         req.Role,
		},
	})
	if err != nil {
		logger.Logger.Warn("Failed to enqueue staff invite email",
			zap.Int64("partner_id", partnerID),
			zap.String("email", req.Email),
			zap.Error(err),
		)
	}

	return toStaffData(member), nil
}

// List 成员列表
func (s *StaffService) List(ctx context.Context, partnerID int64) (*dto.ListStaffResponse, error) {
	members, err := repository.Staff().ListByPartner(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	resp := &dto.ListStaffResponse{
		Members: make([]dto.StaffMemberData, 0, len(members)),
	}
	for i := range members {
		resp.Members = append(resp.Members, *toStaffData(&members[i]))
	}
	return resp, nil
}

// UpdateRole 调整成员角色；owner 角色不可变更也不可授予
func (s *StaffService) UpdateRole(ctx context.Context, partnerID, staffID int64, rawRole string) error {
	role := model.StaffRole(rawRole)
	if !model.ValidStaffRoles[role] {
		return pkgerrors.StaffRoleInvalid
	}

	member, err := repository.Staff().GetByPublicID(ctx, partnerID, staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.StaffNotFound
		}
		return fmt.Errorf("failed to query staff member: %w", err)
	}

	if member.Role == model.StaffRoleOwner {
		return pkgerrors.StaffRoleInvalid
	}

	return repository.Staff().UpdateRole(ctx, partnerID, staffID, role)
}

// Remove 移除成员；owner 不可移除
func (s *StaffService) Remove(ctx context.Context, partnerID, staffID int64) error {
	member, err := repository.Staff().GetByPublicID(ctx, partnerID, staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.StaffNotFound
		}
		return fmt.Errorf("failed to query staff member: %w", err)
	}

	if member.Role == model.StaffRoleOwner {
		return pkgerrors.OwnerRequired
	}

	return repository.Staff().Delete(ctx, partnerID, staffID)
}

func toStaffData(m *model.StaffMember) *dto.StaffMemberData {
	return &dto.StaffMemberData{
		StaffID:     fmt.Sprintf("%d", m.PublicID),
		Email:       m.Email,
		DisplayName: m.DisplayName,
		Role:        string(m.Role),
		InvitedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}
