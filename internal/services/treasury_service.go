package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/db/repositories"
	"igreja-digital/secretaria/internal/logging"
	"igreja-digital/secretaria/internal/models/dtos"
	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"gorm.io/gorm"
)

// ErrLoanLinkedExpense rejects direct writes to expenses generated by a
// loan. Handlers map it to HTTP 403.
var ErrLoanLinkedExpense = errors.New(constants.MsgLoanLinkedExpense)

// TreasuryService owns loans and their installment cascade plus the expense
// edit guard. The flat ledgers (tithes, offerings, bookstore sales) go
// straight through their repositories.
type TreasuryService struct {
	db       *gorm.DB
	loans    *repositories.LoanRepository
	expenses *repositories.ExpenseRepository
	reports  *repositories.ReportRepository
}

func NewTreasuryService(db *gorm.DB, loans *repositories.LoanRepository,
	expenses *repositories.ExpenseRepository, reports *repositories.ReportRepository) *TreasuryService {
	return &TreasuryService{
		db:       db,
		loans:    loans,
		expenses: expenses,
		reports:  reports,
	}
}

// CreateLoan persists a loan and generates one expense installment per
// month, starting at the loan's start date. The last installment absorbs
// the rounding remainder so the installments sum to the loan total.
func (s *TreasuryService) CreateLoan(ctx context.Context, req *dtos.LoanRequest) (*gormModels.Loan, error) {
	verr := newValidationError()
	verr.require("description", req.Description)
	verr.require("startDate", req.StartDate)
	if req.Installments < 1 {
		verr.Fields["installments"] = "deve ser pelo menos 1"
	}
	if req.TotalAmount <= 0 {
		verr.Fields["totalAmount"] = "deve ser maior que zero"
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"startDate": "data inválida"}}
	}

	loan := &gormModels.Loan{
		Description:  req.Description,
		TotalAmount:  req.TotalAmount,
		Installments: req.Installments,
		StartDate:    req.StartDate,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.loans.WithTx(tx).Create(ctx, loan); err != nil {
			return err
		}

		perInstallment := math.Floor(req.TotalAmount/float64(req.Installments)*100) / 100
		remainder := req.TotalAmount - perInstallment*float64(req.Installments)

		for i := 0; i < req.Installments; i++ {
			amount := perInstallment
			if i == req.Installments-1 {
				amount = math.Round((amount+remainder)*100) / 100
			}

			expense := &gormModels.Expense{
				Description: fmt.Sprintf("%s - parcela %d/%d", req.Description, i+1, req.Installments),
				Category:    "emprestimo",
				Amount:      amount,
				DueDate:     startDate.AddDate(0, i, 0).Format("2006-01-02"),
				LoanID:      &loan.ID,
			}
			if err := s.expenses.WithTx(tx).Create(ctx, expense); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Info("Loan created with installments",
		"loan_id", loan.ID,
		"installments", req.Installments,
		"total", req.TotalAmount,
	)

	// reload with generated installments
	return s.loans.GetByID(ctx, loan.ID)
}

func (s *TreasuryService) ListLoans(ctx context.Context) ([]gormModels.Loan, error) {
	return s.loans.List(ctx)
}

func (s *TreasuryService) DeleteLoan(ctx context.Context, id string) error {
	return s.loans.Delete(ctx, id)
}

// UpdateExpense rejects writes to loan-generated installments.
func (s *TreasuryService) UpdateExpense(ctx context.Context, id string, req *dtos.ExpenseRequest) (*gormModels.Expense, error) {
	existing, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.LoanID != nil {
		return nil, ErrLoanLinkedExpense
	}

	verr := newValidationError()
	verr.require("description", req.Description)
	verr.require("dueDate", req.DueDate)
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	expense := &gormModels.Expense{
		ID:          id,
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Paid:        req.Paid,
	}

	if err := s.expenses.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense rejects deletes of loan-generated installments; those only
// go away with their loan.
func (s *TreasuryService) DeleteExpense(ctx context.Context, id string) error {
	existing, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.LoanID != nil {
		return ErrLoanLinkedExpense
	}
	return s.expenses.Delete(ctx, id)
}

// MonthlyReport aggregates treasury movement for a YYYY-MM month.
func (s *TreasuryService) MonthlyReport(ctx context.Context, month string) ([]dtos.TreasuryReportRow, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, &ValidationError{Fields: map[string]string{"month": "use o formato YYYY-MM"}}
	}
	return s.reports.TreasuryMonthly(ctx, month)
}
