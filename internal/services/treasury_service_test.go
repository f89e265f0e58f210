package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"igreja-digital/secretaria/internal/db/repositories"
	"igreja-digital/secretaria/internal/models/dtos"
	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"gorm.io/gorm"
)

func newTreasuryService(gdb *gorm.DB) *TreasuryService {
	return NewTreasuryService(gdb,
		repositories.NewLoanRepository(gdb),
		repositories.NewExpenseRepository(gdb),
		nil)
}

func TestTreasuryService_LoanGeneratesInstallments(t *testing.T) {
	gdb := setupTestDB(t)
	service := newTreasuryService(gdb)
	ctx := context.Background()

	loan, err := service.CreateLoan(ctx, &dtos.LoanRequest{
		Description:  "Reforma do telhado",
		TotalAmount:  1000.00,
		Installments: 3,
		StartDate:    "2024-03-15",
	})
	if err != nil {
		t.Fatalf("CreateLoan failed: %v", err)
	}

	if len(loan.Expenses) != 3 {
		t.Fatalf("Expected 3 installments, got %d", len(loan.Expenses))
	}

	var sum float64
	for _, e := range loan.Expenses {
		sum += e.Amount
		if e.LoanID == nil || *e.LoanID != loan.ID {
			t.Error("Expected installment linked to the loan")
		}
		if e.Category != "emprestimo" {
			t.Errorf("Expected category emprestimo, got %s", e.Category)
		}
	}
	// 1000/3 floors to 333.33; the last installment absorbs the remainder
	if math.Abs(sum-1000.00) > 0.001 {
		t.Errorf("Expected installments to sum to the loan total, got %.2f", sum)
	}

	dueDates := map[string]bool{}
	descriptions := map[string]bool{}
	for _, e := range loan.Expenses {
		dueDates[e.DueDate] = true
		descriptions[e.Description] = true
	}
	for i, want := range []string{"2024-03-15", "2024-04-15", "2024-05-15"} {
		if !dueDates[want] {
			t.Errorf("Expected an installment due %s", want)
		}
		desc := fmt.Sprintf("Reforma do telhado - parcela %d/3", i+1)
		if !descriptions[desc] {
			t.Errorf("Expected installment description %q", desc)
		}
	}
}

func TestTreasuryService_LoanLinkedExpenseIsImmutable(t *testing.T) {
	gdb := setupTestDB(t)
	service := newTreasuryService(gdb)
	ctx := context.Background()

	loan, err := service.CreateLoan(ctx, &dtos.LoanRequest{
		Description:  "Van da igreja",
		TotalAmount:  5000,
		Installments: 2,
		StartDate:    "2024-01-01",
	})
	if err != nil {
		t.Fatalf("CreateLoan failed: %v", err)
	}
	installment := loan.Expenses[0]

	_, err = service.UpdateExpense(ctx, installment.ID, &dtos.ExpenseRequest{
		Description: "tentativa",
		Category:    "outros",
		Amount:      1,
		DueDate:     "2024-01-01",
	})
	if !errors.Is(err, ErrLoanLinkedExpense) {
		t.Fatalf("Expected ErrLoanLinkedExpense on update, got %v", err)
	}

	if err := service.DeleteExpense(ctx, installment.ID); !errors.Is(err, ErrLoanLinkedExpense) {
		t.Fatalf("Expected ErrLoanLinkedExpense on delete, got %v", err)
	}

	// a free-standing expense still updates normally
	free := &gormModels.Expense{
		Description: "Energia elétrica",
		Category:    "contas",
		Amount:      420.50,
		DueDate:     "2024-02-10",
	}
	if err := gdb.Create(free).Error; err != nil {
		t.Fatalf("Failed to seed expense: %v", err)
	}
	updated, err := service.UpdateExpense(ctx, free.ID, &dtos.ExpenseRequest{
		Description: "Energia elétrica",
		Category:    "contas",
		Amount:      430.00,
		DueDate:     "2024-02-10",
		Paid:        true,
	})
	if err != nil {
		t.Fatalf("UpdateExpense failed: %v", err)
	}
	if !updated.Paid || updated.Amount != 430.00 {
		t.Errorf("Unexpected updated expense: %+v", updated)
	}
}

func TestTreasuryService_DeleteLoanCascadesInstallments(t *testing.T) {
	gdb := setupTestDB(t)
	service := newTreasuryService(gdb)
	ctx := context.Background()

	loan, err := service.CreateLoan(ctx, &dtos.LoanRequest{
		Description:  "Instrumentos",
		TotalAmount:  1200,
		Installments: 4,
		StartDate:    "2024-01-01",
	})
	if err != nil {
		t.Fatalf("CreateLoan failed: %v", err)
	}

	if err := service.DeleteLoan(ctx, loan.ID); err != nil {
		t.Fatalf("DeleteLoan failed: %v", err)
	}

	var n int64
	if err := gdb.Model(&gormModels.Expense{}).Where("loan_id = ?", loan.ID).Count(&n).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected installments removed with the loan, %d left", n)
	}
}

func TestTreasuryService_LoanValidation(t *testing.T) {
	gdb := setupTestDB(t)
	service := newTreasuryService(gdb)
	ctx := context.Background()

	var verr *ValidationError

	_, err := service.CreateLoan(ctx, &dtos.LoanRequest{})
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}

	_, err = service.CreateLoan(ctx, &dtos.LoanRequest{
		Description:  "x",
		TotalAmount:  100,
		Installments: 1,
		StartDate:    "15/03/2024",
	})
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError for bad date, got %v", err)
	}
}

func TestTreasuryService_MonthlyReportValidatesMonth(t *testing.T) {
	gdb := setupTestDB(t)
	service := newTreasuryService(gdb)
	ctx := context.Background()

	var verr *ValidationError
	for _, month := range []string{"", "2024", "2024-13", "março"} {
		if _, err := service.MonthlyReport(ctx, month); !errors.As(err, &verr) {
			t.Errorf("Expected ValidationError for month %q, got %v", month, err)
		}
	}
}
