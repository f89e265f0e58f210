package routes

import (
	"igreja-digital/secretaria/internal/api"
	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API routes and handlers. Route groups map
// one to one onto the role matrix: pastor owns membership and pastoral
// records, the treasurer owns money, deacons own visitors, diaconal help and
// bulletins, and members and visitors get the LGPD self-service surface.
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, deps *api.Dependencies) {

	// Unauthenticated surface. Logout stays here so destroying an unknown or
	// already-expired session remains idempotent instead of answering 401.
	// The export download authenticates through its signed token.
	r.Group(func(public chi.Router) {
		public.With(middleware.LoginRateLimit).Post("/api/auth/login", handlers.Login())
		public.Post("/api/auth/logout", handlers.Logout())
		public.Get("/api/lgpd/export/download", handlers.LgpdExportDownload())
	})

	r.Group(func(authed chi.Router) {
		authed.Use(middleware.SessionAuth(deps.Sessions))
		authed.Use(middleware.CsrfValidation(deps.Metrics))

		authed.Get("/api/auth/session", handlers.SessionCheck())
		authed.Get("/api/csrf-token", handlers.CsrfToken())

		// Pastor-only group
		authed.Group(func(pastor chi.Router) {
			pastor.Use(middleware.RequireRoles(constants.RolePastor))

			pastor.Route("/api/members", func(members chi.Router) {
				members.Post("/", handlers.CreateMember())
				members.Get("/", handlers.ListMembers())
				members.Get("/{id}", handlers.GetMember())
				members.Put("/{id}", handlers.UpdateMember())
				members.Delete("/{id}", handlers.DeleteMember())
				members.Get("/{id}/audit", handlers.MemberAuditTrail())
			})

			pastor.Route("/api/catechumens", func(catechumens chi.Router) {
				catechumens.Post("/", handlers.CreateCatechumen())
				catechumens.Get("/", handlers.ListCatechumens())
				catechumens.Get("/{id}", handlers.GetCatechumen())
				catechumens.Put("/{id}", handlers.UpdateCatechumen())
				catechumens.Delete("/{id}", handlers.DeleteCatechumen())
			})

			pastor.Route("/api/seminarians", func(seminarians chi.Router) {
				seminarians.Post("/", handlers.CreateSeminarian())
				seminarians.Get("/", handlers.ListSeminarians())
				seminarians.Get("/{id}", handlers.GetSeminarian())
				seminarians.Put("/{id}", handlers.UpdateSeminarian())
				seminarians.Delete("/{id}", handlers.DeleteSeminarian())
			})
		})

		// Visitors: deacons manage them, pastors can also read.
		authed.Route("/api/visitors", func(visitors chi.Router) {
			visitors.With(middleware.RequireRoles(constants.RoleDeacon, constants.RolePastor)).
				Get("/", handlers.ListVisitors())
			visitors.With(middleware.RequireRoles(constants.RoleDeacon, constants.RolePastor)).
				Get("/{id}", handlers.GetVisitor())

			visitors.Group(func(write chi.Router) {
				write.Use(middleware.RequireRoles(constants.RoleDeacon))
				write.Post("/", handlers.CreateVisitor())
				write.Put("/{id}", handlers.UpdateVisitor())
				write.Delete("/{id}", handlers.DeleteVisitor())
			})
		})

		// Treasurer-only group
		authed.Group(func(treasurer chi.Router) {
			treasurer.Use(middleware.RequireRoles(constants.RoleTreasurer))

			treasurer.Route("/api/tithes", func(tithes chi.Router) {
				tithes.Post("/", handlers.CreateTithe())
				tithes.Get("/", handlers.ListTithes())
				tithes.Delete("/{id}", handlers.DeleteTithe())
			})

			treasurer.Route("/api/offerings", func(offerings chi.Router) {
				offerings.Post("/", handlers.CreateOffering())
				offerings.Get("/", handlers.ListOfferings())
				offerings.Delete("/{id}", handlers.DeleteOffering())
			})

			treasurer.Route("/api/bookstore-sales", func(sales chi.Router) {
				sales.Post("/", handlers.CreateBookstoreSale())
				sales.Get("/", handlers.ListBookstoreSales())
				sales.Delete("/{id}", handlers.DeleteBookstoreSale())
			})

			treasurer.Route("/api/loans", func(loans chi.Router) {
				loans.Post("/", handlers.CreateLoan())
				loans.Get("/", handlers.ListLoans())
				loans.Get("/{id}", handlers.GetLoan())
				loans.Delete("/{id}", handlers.DeleteLoan())
			})

			treasurer.Route("/api/expenses", func(expenses chi.Router) {
				expenses.Post("/", handlers.CreateExpense())
				expenses.Get("/", handlers.ListExpenses())
				expenses.Put("/{id}", handlers.UpdateExpense())
				expenses.Delete("/{id}", handlers.DeleteExpense())
			})
		})

		// Monthly report is read by both money and pastoral leadership.
		authed.With(middleware.RequireRoles(constants.RoleTreasurer, constants.RolePastor)).
			Get("/api/reports/treasury", handlers.TreasuryReport())

		// Deacon-only group
		authed.Group(func(deacon chi.Router) {
			deacon.Use(middleware.RequireRoles(constants.RoleDeacon))

			deacon.Route("/api/diaconal-help", func(help chi.Router) {
				help.Post("/", handlers.CreateDiaconalHelp())
				help.Get("/", handlers.ListDiaconalHelp())
				help.Put("/{id}", handlers.UpdateDiaconalHelp())
				help.Delete("/{id}", handlers.DeleteDiaconalHelp())
			})

			deacon.Route("/api/bulletins", func(bulletins chi.Router) {
				bulletins.Post("/", handlers.CreateBulletin())
				bulletins.Get("/", handlers.ListBulletins())
				bulletins.Put("/{id}", handlers.UpdateBulletin())
				bulletins.Post("/{id}/publish", handlers.PublishBulletin())
				bulletins.Delete("/{id}", handlers.DeleteBulletin())
			})
		})

		// LGPD self-service for data subjects
		authed.Group(func(subject chi.Router) {
			subject.Use(middleware.RequireRoles(constants.RoleMember, constants.RoleVisitor))

			subject.Route("/api/lgpd", func(lgpd chi.Router) {
				lgpd.Post("/consents", handlers.GrantLgpdConsent())
				lgpd.Get("/consents", handlers.ListLgpdConsents())
				lgpd.Delete("/consents/{id}", handlers.RevokeLgpdConsent())
				lgpd.Post("/requests", handlers.CreateLgpdRequest())
				lgpd.Get("/requests", handlers.ListLgpdRequests())
				lgpd.Get("/my-data", handlers.LgpdMyData())
				lgpd.Get("/export", handlers.LgpdExport())
				lgpd.Post("/export-link", handlers.LgpdExportLink())
			})
		})
	})
}
