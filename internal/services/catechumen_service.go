package services

import (
	"context"
	"fmt"
	"time"

	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/db/repositories"
	"igreja-digital/secretaria/internal/logging"
	"igreja-digital/secretaria/internal/metrics"
	"igreja-digital/secretaria/internal/models/dtos"
	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"gorm.io/gorm"
)

// PromotionResult reports the promotion side effect of a catechumen write.
type PromotionResult struct {
	MemberCreated bool
	MemberID      string
	MemberName    string
}

// CatechumenService tracks catechumens through the instruction program and
// promotes them into full members when their stage reaches "concluido".
//
// The stage write, the member insert and the audit rows run in one
// transaction: a failed promotion rolls the stage change back. There is
// deliberately no "already promoted" marker on the catechumen record, so
// reverting the stage and concluding again creates a second member. Two
// concurrent conclude requests can likewise both promote.
type CatechumenService struct {
	db          *gorm.DB
	catechumens *repositories.CatechumenRepository
	audit       auditWriter
	metricsReg  *metrics.MetricsRegistry
}

func NewCatechumenService(db *gorm.DB, catechumens *repositories.CatechumenRepository,
	audit *repositories.AuditRepository, metricsReg *metrics.MetricsRegistry) *CatechumenService {
	return &CatechumenService{
		db:          db,
		catechumens: catechumens,
		audit:       auditWriter{audit: audit, metricsReg: metricsReg},
		metricsReg:  metricsReg,
	}
}

func validateCatechumenRequest(req *dtos.CatechumenRequest) error {
	verr := newValidationError()
	verr.require("fullName", req.FullName)
	verr.require("startDate", req.StartDate)
	verr.require("professorId", req.ProfessorID)

	if req.Stage != "" && !constants.CatechumenStage(req.Stage).Valid() {
		verr.Fields["stage"] = "estágio inválido"
	}
	return verr.orNil()
}

// Create registers a catechumen. Creating directly in "concluido" fires the
// promotion exactly like the update path does.
func (s *CatechumenService) Create(ctx context.Context, req *dtos.CatechumenRequest, actorUserID *string) (*gormModels.Catechumen, *PromotionResult, error) {
	if err := validateCatechumenRequest(req); err != nil {
		return nil, nil, err
	}

	stage := constants.CatechumenStage(req.Stage)
	if stage == "" {
		stage = constants.StageInProgress
	}

	catechumen := &gormModels.Catechumen{
		FullName:               req.FullName,
		StartDate:              req.StartDate,
		ExpectedProfessionDate: req.ExpectedProfessionDate,
		Stage:                  stage,
		ProfessorID:            req.ProfessorID,
		Notes:                  req.Notes,
	}

	promotion := &PromotionResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.catechumens.WithTx(tx).Create(ctx, catechumen); err != nil {
			return err
		}

		if err := s.audit.write(ctx, tx, actorUserID, constants.AuditCreate, catechumen.TableName(), catechumen.ID, nil, catechumen); err != nil {
			return err
		}

		if stage == constants.StageConcluded {
			return s.promote(ctx, tx, catechumen, actorUserID, promotion)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return catechumen, promotion, nil
}

// Update applies a full update to a catechumen. The promotion fires when the
// resulting stage is "concluido" and the stored stage was not; a no-op
// update of an already concluded record does not re-promote.
func (s *CatechumenService) Update(ctx context.Context, id string, req *dtos.CatechumenRequest, actorUserID *string) (*gormModels.Catechumen, *PromotionResult, error) {
	if err := validateCatechumenRequest(req); err != nil {
		return nil, nil, err
	}

	existing, err := s.catechumens.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	priorStage := existing.Stage

	stage := constants.CatechumenStage(req.Stage)
	if stage == "" {
		stage = priorStage
	}

	updated := &gormModels.Catechumen{
		ID:                     id,
		FullName:               req.FullName,
		StartDate:              req.StartDate,
		ExpectedProfessionDate: req.ExpectedProfessionDate,
		Stage:                  stage,
		ProfessorID:            req.ProfessorID,
		Notes:                  req.Notes,
	}

	promotion := &PromotionResult{}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.catechumens.WithTx(tx).Update(ctx, updated); err != nil {
			return err
		}

		if err := s.audit.write(ctx, tx, actorUserID, constants.AuditUpdate, updated.TableName(), id, existing, updated); err != nil {
			return err
		}

		if stage == constants.StageConcluded && priorStage != constants.StageConcluded {
			return s.promote(ctx, tx, updated, actorUserID, promotion)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return updated, promotion, nil
}

func (s *CatechumenService) Get(ctx context.Context, id string) (*gormModels.Catechumen, error) {
	return s.catechumens.GetByID(ctx, id)
}

func (s *CatechumenService) List(ctx context.Context) ([]gormModels.Catechumen, error) {
	return s.catechumens.List(ctx)
}

func (s *CatechumenService) Delete(ctx context.Context, id string, actorUserID *string) error {
	existing, err := s.catechumens.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.catechumens.WithTx(tx).Delete(ctx, id); err != nil {
			return err
		}
		return s.audit.write(ctx, tx, actorUserID, constants.AuditDelete, existing.TableName(), id, existing, nil)
	})
}

// promote synthesizes the member record for a concluded catechumen. All
// personal fields the catechumen does not carry are filled with placeholder
// values the pastoral staff completes later.
func (s *CatechumenService) promote(ctx context.Context, tx *gorm.DB, catechumen *gormModels.Catechumen, actorUserID *string, result *PromotionResult) error {
	today := time.Now().Format("2006-01-02")

	admissionDate := today
	if catechumen.ExpectedProfessionDate != nil && *catechumen.ExpectedProfessionDate != "" {
		admissionDate = *catechumen.ExpectedProfessionDate
	}

	note := fmt.Sprintf(
		"Registro criado automaticamente a partir da conclusão do catecumenato em %s. Completar os dados pessoais.",
		today,
	)

	member := &gormModels.Member{
		FullName:           catechumen.FullName,
		BirthDate:          constants.PlaceholderBirthDate,
		Gender:             constants.PlaceholderText,
		Phone:              constants.PlaceholderText,
		Email:              common.Slugify(catechumen.FullName) + "@" + constants.PlaceholderEmailDomain,
		Address:            constants.PlaceholderText,
		CommunionStatus:    constants.CommunionCommuning,
		EcclesiasticalRole: constants.EcclMember,
		MemberStatus:       constants.MemberActive,
		AdmissionDate:      admissionDate,
		PastoralNotes:      &note,
		NeedsCompletion:    true,
	}

	if err := tx.WithContext(ctx).Create(member).Error; err != nil {
		return fmt.Errorf("failed to create member from catechumen %s: %w", catechumen.ID, err)
	}

	if err := s.audit.write(ctx, tx, actorUserID, constants.AuditCreate, member.TableName(), member.ID, nil, member); err != nil {
		return err
	}

	if s.metricsReg != nil {
		s.metricsReg.MembersPromotedTotal.Inc()
	}

	logging.Info("Catechumen promoted to member",
		"catechumen_id", catechumen.ID,
		"member_id", member.ID,
		"member_name", member.FullName,
	)

	result.MemberCreated = true
	result.MemberID = member.ID
	result.MemberName = member.FullName
	return nil
}
