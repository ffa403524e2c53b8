package commission

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/insurtech-mx/polizas-crm/constants"
	"github.com/insurtech-mx/polizas-crm/gen/ent"
	"github.com/insurtech-mx/polizas-crm/internal/repository"
)

type fakeCommissionRepo struct {
	statement *ent.CommissionStatement
	lines     []*ent.CommissionLine

	totalsExpected string
	totalsPaid     string
	totalsStatus   constants.StatementStatus
}

func (f *fakeCommissionRepo) CreateStatement(context.Context, repository.CreateStatementParams) (*ent.CommissionStatement, error) {
	panic("not used")
}

func (f *fakeCommissionRepo) AddLine(context.Context, repository.CreateLineParams) (*ent.CommissionLine, error) {
	panic("not used")
}

func (f *fakeCommissionRepo) GetStatementForAgent(_ context.Context, _, id uuid.UUID) (*ent.CommissionStatement, error) {
	return f.statement, nil
}

func (f *fakeCommissionRepo) Lines(context.Context, uuid.UUID) ([]*ent.CommissionLine, error) {
	return f.lines, nil
}

func (f *fakeCommissionRepo) SetTotals(_ context.Context, _ uuid.UUID, expected, paid string, status constants.StatementStatus) error {
	f.totalsExpected = expected
	f.totalsPaid = paid
	f.totalsStatus = status
	return nil
}

func line(policy, expected, paid string) *ent.CommissionLine {
	return &ent.CommissionLine{
		ID:             uuid.New(),
		PolicyNumber:   policy,
		Concept:        "comisión primer año",
		ExpectedAmount: expected,
		PaidAmount:     paid,
	}
}

func newTestService(repo repository.CommissionRepository) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestReconcileMatchingStatement(t *testing.T) {
	repo := &fakeCommissionRepo{
		statement: &ent.CommissionStatement{ID: uuid.New(), Period: "2026-08"},
		lines: []*ent.CommissionLine{
			line("POL-1", "1000.00", "1000.00"),
			line("POL-2", "250.50", "250.51"), // within the 0.01 tolerance
		},
	}
	svc := newTestService(repo)

	res, err := svc.Reconcile(context.Background(), uuid.New(), repo.statement.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatementReconciled, res.Status)
	assert.Empty(t, res.Discrepancies)
	assert.Equal(t, "1250.50", res.ExpectedTotal.StringFixed(2))
	assert.Equal(t, "1250.51", res.PaidTotal.StringFixed(2))
	assert.Equal(t, constants.StatementReconciled, repo.totalsStatus)
}

func TestReconcileFlagsDiscrepancies(t *testing.T) {
	repo := &fakeCommissionRepo{
		statement: &ent.CommissionStatement{ID: uuid.New(), Period: "2026-08"},
		lines: []*ent.CommissionLine{
			line("POL-1", "1000.00", "900.00"),
			line("POL-2", "300.00", "300.00"),
		},
	}
	svc := newTestService(repo)

	res, err := svc.Reconcile(context.Background(), uuid.New(), repo.statement.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatementDiscrepant, res.Status)
	require.Len(t, res.Discrepancies, 1)
	assert.Equal(t, "POL-1", res.Discrepancies[0].PolicyNumber)
	assert.Equal(t, "-100.00", res.Discrepancies[0].Delta.StringFixed(2))
	assert.Equal(t, constants.StatementDiscrepant, repo.totalsStatus)
	assert.Equal(t, "1300.00", repo.totalsExpected)
}

func TestReconcileTreatsMalformedAmountsAsZero(t *testing.T) {
	repo := &fakeCommissionRepo{
		statement: &ent.CommissionStatement{ID: uuid.New(), Period: "2026-08"},
		lines: []*ent.CommissionLine{
			line("POL-1", "not-a-number", "50.00"),
		},
	}
	svc := newTestService(repo)

	res, err := svc.Reconcile(context.Background(), uuid.New(), repo.statement.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.00", res.ExpectedTotal.StringFixed(2))
	assert.Equal(t, constants.StatementDiscrepant, res.Status)
}

func TestExportXLSXLayout(t *testing.T) {
	repo := &fakeCommissionRepo{
		statement: &ent.CommissionStatement{
			ID: uuid.New(), Period: "2026-08",
			ExpectedTotal: "1250.50", PaidTotal: "1150.50",
		},
		lines: []*ent.CommissionLine{
			line("POL-1", "1000.00", "900.00"),
			line("POL-2", "250.50", "250.50"),
		},
	}
	svc := newTestService(repo)

	data, err := svc.ExportXLSX(context.Background(), uuid.New(), repo.statement.ID)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Comisiones")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, []string{"Póliza", "Concepto", "Esperado", "Pagado", "Diferencia"}, rows[0])
	assert.Equal(t, "POL-1", rows[1][0])
	assert.Equal(t, "-100.00", rows[1][4])

	cell, err := wb.GetCellValue("Comisiones", "A5")
	require.NoError(t, err)
	assert.Equal(t, "TOTAL", cell)
}
