package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/db"
	"igreja-digital/secretaria/internal/db/repositories"
	"igreja-digital/secretaria/internal/models/dtos"
	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"gorm.io/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.InitSQLiteORM()
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return gdb
}

func newCatechumenService(gdb *gorm.DB) *CatechumenService {
	return NewCatechumenService(gdb,
		repositories.NewCatechumenRepository(gdb),
		repositories.NewAuditRepository(gdb),
		nil)
}

func seedProfessor(t *testing.T, gdb *gorm.DB) *gormModels.Member {
	t.Helper()

	professor := &gormModels.Member{
		FullName:           "Pastor Titular",
		BirthDate:          "1970-05-10",
		Gender:             "masculino",
		Phone:              "11 99999-0000",
		Email:              "pastor@igreja.test",
		Address:            "Rua da Igreja, 1",
		CommunionStatus:    constants.CommunionCommuning,
		EcclesiasticalRole: constants.EcclPastor,
		MemberStatus:       constants.MemberActive,
		AdmissionDate:      "2000-01-01",
	}
	if err := gdb.Create(professor).Error; err != nil {
		t.Fatalf("Failed to seed professor: %v", err)
	}
	return professor
}

func countRows(t *testing.T, gdb *gorm.DB, model any) int64 {
	t.Helper()

	var n int64
	if err := gdb.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}

func TestCatechumenService_UpdateToConcludedPromotes(t *testing.T) {
	gdb := setupTestDB(t)
	professor := seedProfessor(t, gdb)
	service := newCatechumenService(gdb)
	ctx := context.Background()

	actor := "user-1"
	created, _, err := service.Create(ctx, &dtos.CatechumenRequest{
		FullName:    "Ana Souza",
		StartDate:   "2024-01-01",
		Stage:       "em_andamento",
		ProfessorID: professor.ID,
	}, &actor)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	membersBefore := countRows(t, gdb, &gormModels.Member{})

	updated, promotion, err := service.Update(ctx, created.ID, &dtos.CatechumenRequest{
		FullName:    "Ana Souza",
		StartDate:   "2024-01-01",
		Stage:       "concluido",
		ProfessorID: professor.ID,
	}, &actor)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Stage != constants.StageConcluded {
		t.Errorf("Expected stage concluido, got %s", updated.Stage)
	}
	if !promotion.MemberCreated {
		t.Fatal("Expected promotion to fire")
	}
	if promotion.MemberName != "Ana Souza" {
		t.Errorf("Expected promoted member name Ana Souza, got %s", promotion.MemberName)
	}

	if got := countRows(t, gdb, &gormModels.Member{}); got != membersBefore+1 {
		t.Fatalf("Expected exactly one new member row, had %d now %d", membersBefore, got)
	}

	var member gormModels.Member
	if err := gdb.First(&member, "id = ?", promotion.MemberID).Error; err != nil {
		t.Fatalf("Promoted member not found: %v", err)
	}
	if member.FullName != "Ana Souza" {
		t.Errorf("Expected fullName Ana Souza, got %s", member.FullName)
	}
	if member.CommunionStatus != constants.CommunionCommuning {
		t.Errorf("Expected communionStatus comungante, got %s", member.CommunionStatus)
	}
	if member.EcclesiasticalRole != constants.EcclMember {
		t.Errorf("Expected ecclesiasticalRole membro, got %s", member.EcclesiasticalRole)
	}
	if member.MemberStatus != constants.MemberActive {
		t.Errorf("Expected memberStatus ativo, got %s", member.MemberStatus)
	}
	if member.BirthDate != constants.PlaceholderBirthDate {
		t.Errorf("Expected placeholder birth date, got %s", member.BirthDate)
	}
	if member.Phone != constants.PlaceholderText || member.Address != constants.PlaceholderText {
		t.Error("Expected placeholder phone and address")
	}
	if !strings.HasSuffix(member.Email, "@"+constants.PlaceholderEmailDomain) {
		t.Errorf("Expected synthesized placeholder email, got %s", member.Email)
	}
	if !member.NeedsCompletion {
		t.Error("Expected NeedsCompletion to be set on the synthesized member")
	}
	if member.PastoralNotes == nil || !strings.Contains(*member.PastoralNotes, "automaticamente") {
		t.Error("Expected auto-generated pastoral note")
	}

	// audit trail carries a CREATE on members attributed to the actor
	var auditRows []gormModels.AuditLog
	if err := gdb.Where("table_name = ? AND record_id = ?", "members", member.ID).Find(&auditRows).Error; err != nil {
		t.Fatalf("Failed to load audit rows: %v", err)
	}
	if len(auditRows) != 1 {
		t.Fatalf("Expected 1 audit row for the member, got %d", len(auditRows))
	}
	if auditRows[0].Action != constants.AuditCreate {
		t.Errorf("Expected audit action CREATE, got %s", auditRows[0].Action)
	}
	if auditRows[0].UserID == nil || *auditRows[0].UserID != actor {
		t.Error("Expected audit row attributed to the acting user")
	}
}

func TestCatechumenService_CreateConcludedPromotesToo(t *testing.T) {
	gdb := setupTestDB(t)
	professor := seedProfessor(t, gdb)
	service := newCatechumenService(gdb)
	ctx := context.Background()

	expected := "2024-06-30"
	_, promotion, err := service.Create(ctx, &dtos.CatechumenRequest{
		FullName:               "Bruno Lima",
		StartDate:              "2024-01-01",
		ExpectedProfessionDate: &expected,
		Stage:                  "concluido",
		ProfessorID:            professor.ID,
	}, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !promotion.MemberCreated {
		t.Fatal("Expected creation directly in concluido to promote")
	}

	var member gormModels.Member
	if err := gdb.First(&member, "id = ?", promotion.MemberID).Error; err != nil {
		t.Fatalf("Promoted member not found: %v", err)
	}
	if member.AdmissionDate != expected {
		t.Errorf("Expected admission date %s (expectedProfessionDate), got %s", expected, member.AdmissionDate)
	}
}

func TestCatechumenService_ConcludedNoOpDoesNotRepromote(t *testing.T) {
	gdb := setupTestDB(t)
	professor := seedProfessor(t, gdb)
	service := newCatechumenService(gdb)
	ctx := context.Background()

	created, _, err := service.Create(ctx, &dtos.CatechumenRequest{
		FullName:    "Carla Dias",
		StartDate:   "2024-01-01",
		Stage:       "concluido",
		ProfessorID: professor.ID,
	}, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	membersAfterFirst := countRows(t, gdb, &gormModels.Member{})

	_, promotion, err := service.Update(ctx, created.ID, &dtos.CatechumenRequest{
		FullName:    "Carla Dias",
		StartDate:   "2024-01-01",
		Stage:       "concluido",
		ProfessorID: professor.ID,
	}, nil)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if promotion.MemberCreated {
		t.Error("Expected no promotion when already concluido")
	}
	if got := countRows(t, gdb, &gormModels.Member{}); got != membersAfterFirst {
		t.Errorf("Expected member count to stay at %d, got %d", membersAfterFirst, got)
	}
}

// Reverting the stage and concluding a second time promotes again: there is
// no promoted marker on the record, so a second member with the same name is
// created. This documents the behavior rather than preventing it.
func TestCatechumenService_RevertAndReconcludeCreatesDuplicate(t *testing.T) {
	gdb := setupTestDB(t)
	professor := seedProfessor(t, gdb)
	service := newCatechumenService(gdb)
	ctx := context.Background()

	created, _, err := service.Create(ctx, &dtos.CatechumenRequest{
		FullName:    "Davi Rocha",
		StartDate:   "2024-01-01",
		Stage:       "concluido",
		ProfessorID: professor.ID,
	}, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	for _, stage := range []string{"apto", "concluido"} {
		if _, _, err := service.Update(ctx, created.ID, &dtos.CatechumenRequest{
			FullName:    "Davi Rocha",
			StartDate:   "2024-01-01",
			Stage:       stage,
			ProfessorID: professor.ID,
		}, nil); err != nil {
			t.Fatalf("Update to %s failed: %v", stage, err)
		}
	}

	var n int64
	if err := gdb.Model(&gormModels.Member{}).Where("full_name = ?", "Davi Rocha").Count(&n).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected re-conclusion to create a duplicate member (2 rows), got %d", n)
	}
}

// Two concurrent conclude requests can both promote: nothing marks the
// record as already promoted, and each request reads the prior stage before
// the other commits. SQLite may abort one of the writers with a lock error;
// every request that does succeed creates its own member row. This documents
// the behavior rather than preventing it.
func TestCatechumenService_ConcurrentConcludesBothPromote(t *testing.T) {
	gdb := setupTestDB(t)
	professor := seedProfessor(t, gdb)
	service := newCatechumenService(gdb)
	ctx := context.Background()

	created, _, err := service.Create(ctx, &dtos.CatechumenRequest{
		FullName:    "Helena Prado",
		StartDate:   "2024-01-01",
		Stage:       "em_andamento",
		ProfessorID: professor.ID,
	}, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	start := make(chan struct{})
	results := make(chan *PromotionResult, 2)
	errs := make(chan error, 2)

	for i := 0; i < 2; i++ {
		go func() {
			<-start
			_, promotion, err := service.Update(ctx, created.ID, &dtos.CatechumenRequest{
				FullName:    "Helena Prado",
				StartDate:   "2024-01-01",
				Stage:       "concluido",
				ProfessorID: professor.ID,
			}, nil)
			if err != nil {
				errs <- err
				return
			}
			results <- promotion
		}()
	}
	close(start)

	promoted := 0
	for i := 0; i < 2; i++ {
		select {
		case promotion := <-results:
			if !promotion.MemberCreated {
				t.Error("Expected every successful conclude to promote")
			} else {
				promoted++
			}
		case err := <-errs:
			// only a lost lock may abort a writer
			msg := err.Error()
			if !strings.Contains(msg, "locked") && !strings.Contains(msg, "busy") {
				t.Errorf("Unexpected error from concurrent conclude: %v", err)
			}
		}
	}

	if promoted == 0 {
		t.Fatal("Expected at least one conclude to succeed")
	}

	var n int64
	if err := gdb.Model(&gormModels.Member{}).Where("full_name = ?", "Helena Prado").Count(&n).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != int64(promoted) {
		t.Errorf("Expected one member per successful conclude (%d), got %d rows", promoted, n)
	}
}

func TestCatechumenService_NonConcludeUpdateIsPlain(t *testing.T) {
	gdb := setupTestDB(t)
	professor := seedProfessor(t, gdb)
	service := newCatechumenService(gdb)
	ctx := context.Background()

	created, _, err := service.Create(ctx, &dtos.CatechumenRequest{
		FullName:    "Elisa Melo",
		StartDate:   "2024-01-01",
		Stage:       "em_andamento",
		ProfessorID: professor.ID,
	}, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	membersBefore := countRows(t, gdb, &gormModels.Member{})

	updated, promotion, err := service.Update(ctx, created.ID, &dtos.CatechumenRequest{
		FullName:    "Elisa Melo",
		StartDate:   "2024-01-01",
		Stage:       "apto",
		ProfessorID: professor.ID,
	}, nil)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Stage != constants.StageReady {
		t.Errorf("Expected stage apto, got %s", updated.Stage)
	}
	if promotion.MemberCreated {
		t.Error("Expected no promotion on apto")
	}
	if got := countRows(t, gdb, &gormModels.Member{}); got != membersBefore {
		t.Errorf("Expected no new member rows, had %d now %d", membersBefore, got)
	}
}

func TestCatechumenService_ValidationAndNotFound(t *testing.T) {
	gdb := setupTestDB(t)
	professor := seedProfessor(t, gdb)
	service := newCatechumenService(gdb)
	ctx := context.Background()

	_, _, err := service.Create(ctx, &dtos.CatechumenRequest{}, nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	for _, field := range []string{"fullName", "startDate", "professorId"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("Expected field error for %s", field)
		}
	}

	_, _, err = service.Create(ctx, &dtos.CatechumenRequest{
		FullName:    "Fulano",
		StartDate:   "2024-01-01",
		Stage:       "formado",
		ProfessorID: professor.ID,
	}, nil)
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError for bad stage, got %v", err)
	}

	_, _, err = service.Update(ctx, "missing-id", &dtos.CatechumenRequest{
		FullName:    "Fulano",
		StartDate:   "2024-01-01",
		ProfessorID: professor.ID,
	}, nil)
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestCatechumenService_DeleteWritesAudit(t *testing.T) {
	gdb := setupTestDB(t)
	professor := seedProfessor(t, gdb)
	service := newCatechumenService(gdb)
	ctx := context.Background()

	created, _, err := service.Create(ctx, &dtos.CatechumenRequest{
		FullName:    "Gabriel Nunes",
		StartDate:   "2024-01-01",
		ProfessorID: professor.ID,
	}, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := service.Delete(ctx, created.ID, nil); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := service.Get(ctx, created.ID); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}

	var auditRows []gormModels.AuditLog
	if err := gdb.Where("table_name = ? AND record_id = ? AND action = ?",
		"catechumens", created.ID, constants.AuditDelete).Find(&auditRows).Error; err != nil {
		t.Fatalf("Failed to load audit rows: %v", err)
	}
	if len(auditRows) != 1 {
		t.Errorf("Expected 1 DELETE audit row, got %d", len(auditRows))
	}
}
