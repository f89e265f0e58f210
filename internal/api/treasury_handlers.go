package api

import (
	"net/http"
	"time"

	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/models/dtos"
	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"github.com/go-chi/chi/v5"
)

// CreateTithe handles POST /api/tithes
func (h *Handlers) CreateTithe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.TitheRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}
		if req.MemberID == "" || req.Date == "" || req.Amount <= 0 {
			common.RespondError(w, initTime, nil, constants.MsgValidationFailed, http.StatusBadRequest)
			return
		}

		tithe := &gormModels.Tithe{
			MemberID: req.MemberID,
			Amount:   req.Amount,
			Date:     req.Date,
		}
		if err := h.deps.Repo.Tithes.Create(r.Context(), tithe); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Dízimo registrado", tithe)
	}
}

// ListTithes handles GET /api/tithes
func (h *Handlers) ListTithes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		tithes, err := h.deps.Repo.Tithes.List(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", tithes)
	}
}

// DeleteTithe handles DELETE /api/tithes/{id}
func (h *Handlers) DeleteTithe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Repo.Tithes.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Dízimo removido", nil)
	}
}

// CreateOffering handles POST /api/offerings
func (h *Handlers) CreateOffering() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.OfferingRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}
		if req.Date == "" || req.Amount <= 0 {
			common.RespondError(w, initTime, nil, constants.MsgValidationFailed, http.StatusBadRequest)
			return
		}

		offering := &gormModels.Offering{
			Amount:      req.Amount,
			Date:        req.Date,
			ServiceType: req.ServiceType,
		}
		if err := h.deps.Repo.Offerings.Create(r.Context(), offering); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Oferta registrada", offering)
	}
}

// ListOfferings handles GET /api/offerings
func (h *Handlers) ListOfferings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		offerings, err := h.deps.Repo.Offerings.List(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", offerings)
	}
}

// DeleteOffering handles DELETE /api/offerings/{id}
func (h *Handlers) DeleteOffering() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Repo.Offerings.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Oferta removida", nil)
	}
}

// CreateBookstoreSale handles POST /api/bookstore-sales
func (h *Handlers) CreateBookstoreSale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.BookstoreSaleRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}
		if req.Item == "" || req.Date == "" || req.Quantity <= 0 || req.Amount <= 0 {
			common.RespondError(w, initTime, nil, constants.MsgValidationFailed, http.StatusBadRequest)
			return
		}

		sale := &gormModels.BookstoreSale{
			Item:     req.Item,
			Quantity: req.Quantity,
			Amount:   req.Amount,
			Date:     req.Date,
		}
		if err := h.deps.Repo.BookstoreSales.Create(r.Context(), sale); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Venda registrada", sale)
	}
}

// ListBookstoreSales handles GET /api/bookstore-sales
func (h *Handlers) ListBookstoreSales() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		sales, err := h.deps.Repo.BookstoreSales.List(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", sales)
	}
}

// DeleteBookstoreSale handles DELETE /api/bookstore-sales/{id}
func (h *Handlers) DeleteBookstoreSale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Repo.BookstoreSales.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Venda removida", nil)
	}
}

// CreateLoan handles POST /api/loans. Installment expenses are generated in
// the same transaction.
func (h *Handlers) CreateLoan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoanRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		loan, err := h.deps.Services.Treasury.CreateLoan(r.Context(), &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Empréstimo criado", loan)
	}
}

// ListLoans handles GET /api/loans
func (h *Handlers) ListLoans() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		loans, err := h.deps.Services.Treasury.ListLoans(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", loans)
	}
}

// GetLoan handles GET /api/loans/{id}
func (h *Handlers) GetLoan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		loan, err := h.deps.Repo.Loans.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", loan)
	}
}

// DeleteLoan handles DELETE /api/loans/{id}, removing its installments too.
func (h *Handlers) DeleteLoan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Treasury.DeleteLoan(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Empréstimo removido", nil)
	}
}

// CreateExpense handles POST /api/expenses
func (h *Handlers) CreateExpense() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ExpenseRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}
		if req.Description == "" || req.Category == "" || req.DueDate == "" || req.Amount <= 0 {
			common.RespondError(w, initTime, nil, constants.MsgValidationFailed, http.StatusBadRequest)
			return
		}

		expense := &gormModels.Expense{
			Description: req.Description,
			Category:    req.Category,
			Amount:      req.Amount,
			DueDate:     req.DueDate,
			Paid:        req.Paid,
		}
		if err := h.deps.Repo.Expenses.Create(r.Context(), expense); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Despesa criada", expense)
	}
}

// ListExpenses handles GET /api/expenses
func (h *Handlers) ListExpenses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		expenses, err := h.deps.Repo.Expenses.List(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", expenses)
	}
}

// UpdateExpense handles PUT /api/expenses/{id}. Loan installments are
// immutable and answer 403.
func (h *Handlers) UpdateExpense() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ExpenseRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		expense, err := h.deps.Services.Treasury.UpdateExpense(r.Context(), chi.URLParam(r, "id"), &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Despesa atualizada", expense)
	}
}

// DeleteExpense handles DELETE /api/expenses/{id}. Loan installments are
// only removed through their loan.
func (h *Handlers) DeleteExpense() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Treasury.DeleteExpense(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Despesa removida", nil)
	}
}

// TreasuryReport handles GET /api/reports/treasury?month=YYYY-MM
func (h *Handlers) TreasuryReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		rows, err := h.deps.Services.Treasury.MonthlyReport(r.Context(), r.URL.Query().Get("month"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", rows)
	}
}
