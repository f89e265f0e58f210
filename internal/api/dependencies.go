package api

import (
	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/db/repositories"
	"igreja-digital/secretaria/internal/metrics"
	"igreja-digital/secretaria/internal/services"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type Repositories struct {
	Users          *repositories.UserRepository
	Members        *repositories.MemberRepository
	Catechumens    *repositories.CatechumenRepository
	Seminarians    *repositories.SeminarianRepository
	Visitors       *repositories.VisitorRepository
	Audit          *repositories.AuditRepository
	Tithes         *repositories.TitheRepository
	Offerings      *repositories.OfferingRepository
	BookstoreSales *repositories.BookstoreSaleRepository
	Loans          *repositories.LoanRepository
	Expenses       *repositories.ExpenseRepository
	DiaconalHelp   *repositories.DiaconalHelpRepository
	Bulletins      *repositories.BulletinRepository
	Lgpd           *repositories.LgpdRepository
	Reports        *repositories.ReportRepository
}

type Services struct {
	Auth       *services.AuthService
	Members    *services.MemberService
	Catechumen *services.CatechumenService
	Treasury   *services.TreasuryService
	Bulletins  *services.BulletinService
	Lgpd       *services.LgpdService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Sessions common.SessionStore
	Signer   *common.ExportSigner
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies wires repositories and services using the DI pattern.
func InitDependencies(gormDB *gorm.DB, sqlxDB *sqlx.DB, sessions common.SessionStore,
	signer *common.ExportSigner, metricsReg *metrics.MetricsRegistry) *Dependencies {

	repos := &Repositories{
		Users:          repositories.NewUserRepository(gormDB),
		Members:        repositories.NewMemberRepository(gormDB),
		Catechumens:    repositories.NewCatechumenRepository(gormDB),
		Seminarians:    repositories.NewSeminarianRepository(gormDB),
		Visitors:       repositories.NewVisitorRepository(gormDB),
		Audit:          repositories.NewAuditRepository(gormDB),
		Tithes:         repositories.NewTitheRepository(gormDB),
		Offerings:      repositories.NewOfferingRepository(gormDB),
		BookstoreSales: repositories.NewBookstoreSaleRepository(gormDB),
		Loans:          repositories.NewLoanRepository(gormDB),
		Expenses:       repositories.NewExpenseRepository(gormDB),
		DiaconalHelp:   repositories.NewDiaconalHelpRepository(gormDB),
		Bulletins:      repositories.NewBulletinRepository(gormDB),
		Lgpd:           repositories.NewLgpdRepository(gormDB),
		Reports:        repositories.NewReportRepository(sqlxDB),
	}

	svcs := &Services{
		Auth:       services.NewAuthService(repos.Users, sessions, metricsReg),
		Members:    services.NewMemberService(gormDB, repos.Members, repos.Audit, metricsReg),
		Catechumen: services.NewCatechumenService(gormDB, repos.Catechumens, repos.Audit, metricsReg),
		Treasury:   services.NewTreasuryService(gormDB, repos.Loans, repos.Expenses, repos.Reports),
		Bulletins:  services.NewBulletinService(repos.Bulletins),
		Lgpd:       services.NewLgpdService(repos.Lgpd, repos.Members, repos.Visitors, repos.Tithes, signer),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Sessions: sessions,
		Signer:   signer,
		Metrics:  metricsReg,
	}
}
