package services

import (
	"context"

	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/db/repositories"
	"igreja-digital/secretaria/internal/metrics"
	"igreja-digital/secretaria/internal/models/dtos"
	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"gorm.io/gorm"
)

// MemberService owns the canonical person records. Mutations are audited.
type MemberService struct {
	db      *gorm.DB
	members *repositories.MemberRepository
	audit   auditWriter
}

func NewMemberService(db *gorm.DB, members *repositories.MemberRepository,
	audit *repositories.AuditRepository, metricsReg *metrics.MetricsRegistry) *MemberService {
	return &MemberService{
		db:      db,
		members: members,
		audit:   auditWriter{audit: audit, metricsReg: metricsReg},
	}
}

func validateMemberRequest(req *dtos.MemberRequest) error {
	verr := newValidationError()
	verr.require("fullName", req.FullName)
	verr.require("admissionDate", req.AdmissionDate)
	return verr.orNil()
}

func memberFromRequest(req *dtos.MemberRequest) *gormModels.Member {
	communion := constants.CommunionStatus(req.CommunionStatus)
	if communion == "" {
		communion = constants.CommunionNonCommuning
	}
	ecclRole := constants.EcclesiasticalRole(req.EcclesiasticalRole)
	if ecclRole == "" {
		ecclRole = constants.EcclMember
	}
	status := constants.MemberStatus(req.MemberStatus)
	if status == "" {
		status = constants.MemberActive
	}

	return &gormModels.Member{
		FullName:           req.FullName,
		BirthDate:          req.BirthDate,
		Gender:             req.Gender,
		Phone:              req.Phone,
		Email:              req.Email,
		Address:            req.Address,
		CommunionStatus:    communion,
		EcclesiasticalRole: ecclRole,
		MemberStatus:       status,
		AdmissionDate:      req.AdmissionDate,
		LgpdConsentURL:     req.LgpdConsentURL,
		PastoralNotes:      req.PastoralNotes,
	}
}

func (s *MemberService) Create(ctx context.Context, req *dtos.MemberRequest, actorUserID *string) (*gormModels.Member, error) {
	if err := validateMemberRequest(req); err != nil {
		return nil, err
	}

	member := memberFromRequest(req)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		return s.audit.write(ctx, tx, actorUserID, constants.AuditCreate, member.TableName(), member.ID, nil, member)
	})
	if err != nil {
		return nil, err
	}

	return member, nil
}

func (s *MemberService) Get(ctx context.Context, id string) (*gormModels.Member, error) {
	return s.members.GetByID(ctx, id)
}

func (s *MemberService) List(ctx context.Context) ([]gormModels.Member, error) {
	return s.members.List(ctx)
}

func (s *MemberService) Update(ctx context.Context, id string, req *dtos.MemberRequest, actorUserID *string) (*gormModels.Member, error) {
	if err := validateMemberRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	member := memberFromRequest(req)
	member.ID = id
	// A manual edit of an auto-created record counts as completing it.
	member.NeedsCompletion = false

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewMemberRepository(tx).Update(ctx, member); err != nil {
			return err
		}
		return s.audit.write(ctx, tx, actorUserID, constants.AuditUpdate, member.TableName(), id, existing, member)
	})
	if err != nil {
		return nil, err
	}

	return member, nil
}

func (s *MemberService) Delete(ctx context.Context, id string, actorUserID *string) error {
	existing, err := s.members.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewMemberRepository(tx).Delete(ctx, id); err != nil {
			return err
		}
		return s.audit.write(ctx, tx, actorUserID, constants.AuditDelete, existing.TableName(), id, existing, nil)
	})
}
