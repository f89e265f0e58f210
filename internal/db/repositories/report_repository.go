package repositories

import (
	"context"
	"fmt"

	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/models/dtos"

	"github.com/jmoiron/sqlx"
)

// ReportRepository runs the aggregation queries the ORM layer is a poor fit
// for. It shares the database with GORM through a plain sqlx connection.
type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db}
}

// TreasuryMonthly returns the income/outgoing totals per category for a
// month given as YYYY-MM.
func (r *ReportRepository) TreasuryMonthly(ctx context.Context, month string) ([]dtos.TreasuryReportRow, error) {
	var rows []dtos.TreasuryReportRow

	err := r.db.SelectContext(ctx, &rows, constants.TreasuryMonthlyReport, month)
	if err != nil {
		return nil, fmt.Errorf("treasury report query failed: %w", err)
	}

	return rows, nil
}
