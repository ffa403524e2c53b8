// Package commission reconciles insurer commission statements against what
// the insurer actually paid, and exports statements as XLSX workbooks.
package commission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/insurtech-mx/polizas-crm/constants"
	"github.com/insurtech-mx/polizas-crm/internal/repository"
)

// DefaultTolerance is the per-line absolute difference (in statement
// currency) below which expected vs paid counts as reconciled.
var DefaultTolerance = decimal.RequireFromString("0.01")

// Discrepancy is one line whose paid amount diverges beyond tolerance.
type Discrepancy struct {
	PolicyNumber string          `json:"policy_number"`
	Concept      string          `json:"concept,omitempty"`
	Expected     decimal.Decimal `json:"expected"`
	Paid         decimal.Decimal `json:"paid"`
	Delta        decimal.Decimal `json:"delta"`
}

// ReconcileResult is the outcome of one reconciliation pass.
type ReconcileResult struct {
	ExpectedTotal decimal.Decimal            `json:"expected_total"`
	PaidTotal     decimal.Decimal            `json:"paid_total"`
	Status        constants.StatementStatus  `json:"status"`
	Discrepancies []Discrepancy              `json:"discrepancies"`
}

// Service reconciles and exports commission statements.
type Service struct {
	repo      repository.CommissionRepository
	tolerance decimal.Decimal
	logger    *slog.Logger
}

func NewService(repo repository.CommissionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, tolerance: DefaultTolerance, logger: logger}
}

// Reconcile sums the statement's lines, flags per-line discrepancies beyond
// tolerance and persists the totals and resulting status on the statement.
func (s *Service) Reconcile(ctx context.Context, agentID, statementID uuid.UUID) (ReconcileResult, error) {
	st, err := s.repo.GetStatementForAgent(ctx, agentID, statementID)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("load statement: %w", err)
	}
	lines, err := s.repo.Lines(ctx, st.ID)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("load lines: %w", err)
	}

	res := ReconcileResult{
		ExpectedTotal: decimal.Zero,
		PaidTotal:     decimal.Zero,
		Discrepancies: []Discrepancy{},
	}
	for _, ln := range lines {
		expected := parseAmount(ln.ExpectedAmount)
		paid := parseAmount(ln.PaidAmount)
		res.ExpectedTotal = res.ExpectedTotal.Add(expected)
		res.PaidTotal = res.PaidTotal.Add(paid)

		delta := paid.Sub(expected)
		if delta.Abs().GreaterThan(s.tolerance) {
			res.Discrepancies = append(res.Discrepancies, Discrepancy{
				PolicyNumber: ln.PolicyNumber,
				Concept:      ln.Concept,
				Expected:     expected,
				Paid:         paid,
				Delta:        delta,
			})
		}
	}

	res.Status = constants.StatementReconciled
	if len(res.Discrepancies) > 0 {
		res.Status = constants.StatementDiscrepant
	}

	err = s.repo.SetTotals(ctx, st.ID,
		res.ExpectedTotal.StringFixed(2),
		res.PaidTotal.StringFixed(2),
		res.Status,
	)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("persist totals: %w", err)
	}

	s.logger.Info("commission.reconcile.ok",
		"statement_id", st.ID,
		"period", st.Period,
		"lines", len(lines),
		"discrepancies", len(res.Discrepancies),
		"status", res.Status,
	)
	return res, nil
}

// ExportXLSX returns the statement's lines as an XLSX workbook.
func (s *Service) ExportXLSX(ctx context.Context, agentID, statementID uuid.UUID) ([]byte, error) {
	start := time.Now()

	st, err := s.repo.GetStatementForAgent(ctx, agentID, statementID)
	if err != nil {
		return nil, fmt.Errorf("load statement: %w", err)
	}
	lines, err := s.repo.Lines(ctx, st.ID)
	if err != nil {
		return nil, fmt.Errorf("load lines: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Comisiones"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Póliza",
		"Concepto",
		"Esperado",
		"Pagado",
		"Diferencia",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, ln := range lines {
		expected := parseAmount(ln.ExpectedAmount)
		paid := parseAmount(ln.PaidAmount)

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, ln.PolicyNumber)
		write(2, ln.Concept)
		write(3, expected.StringFixed(2))
		write(4, paid.StringFixed(2))
		write(5, paid.Sub(expected).StringFixed(2))
		row++
	}

	totalRow := row + 1
	writeTotal := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, totalRow)
		_ = f.SetCellValue(sheet, cell, v)
	}
	writeTotal(1, "TOTAL")
	writeTotal(3, parseAmount(st.ExpectedTotal).StringFixed(2))
	writeTotal(4, parseAmount(st.PaidTotal).StringFixed(2))

	_ = f.SetColWidth(sheet, "A", "A", 22)
	_ = f.SetColWidth(sheet, "B", "B", 32)
	_ = f.SetColWidth(sheet, "C", "E", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("commission.export.ok",
		"statement_id", st.ID,
		"period", st.Period,
		"rows", len(lines),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// parseAmount tolerates empty or malformed stored amounts; they count as 0.
func parseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
