package repositories

import (
	"context"
	"fmt"

	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"gorm.io/gorm"
)

type LoanRepository struct {
	db *gorm.DB
}

func NewLoanRepository(db *gorm.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

func (r *LoanRepository) WithTx(tx *gorm.DB) *LoanRepository {
	return &LoanRepository{db: tx}
}

func (r *LoanRepository) Create(ctx context.Context, loan *gormModels.Loan) error {
	if err := r.db.WithContext(ctx).Create(loan).Error; err != nil {
		return fmt.Errorf("failed to create loan: %w", err)
	}
	return nil
}

func (r *LoanRepository) GetByID(ctx context.Context, id string) (*gormModels.Loan, error) {
	var loan gormModels.Loan

	err := r.db.WithContext(ctx).Preload("Expenses").Where("id = ?", id).First(&loan).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch loan: %w", err)
	}

	return &loan, nil
}

func (r *LoanRepository) List(ctx context.Context) ([]gormModels.Loan, error) {
	var loans []gormModels.Loan
	if err := r.db.WithContext(ctx).Preload("Expenses").Order("start_date desc").Find(&loans).Error; err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return loans, nil
}

// Delete removes a loan together with its generated installments.
func (r *LoanRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&gormModels.Expense{}, "loan_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete loan installments: %w", err)
		}

		res := tx.Delete(&gormModels.Loan{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete loan: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) WithTx(tx *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: tx}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *gormModels.Expense) error {
	if err := r.db.WithContext(ctx).Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*gormModels.Expense, error) {
	var expense gormModels.Expense

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&expense).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch expense: %w", err)
	}

	return &expense, nil
}

func (r *ExpenseRepository) List(ctx context.Context) ([]gormModels.Expense, error) {
	var expenses []gormModels.Expense
	if err := r.db.WithContext(ctx).Order("due_date").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, expense *gormModels.Expense) error {
	res := r.db.WithContext(ctx).Model(expense).Select("*").Omit("id", "created_at").Updates(expense)
	if res.Error != nil {
		return fmt.Errorf("failed to update expense: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.Expense{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
