package expense_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cfed-mr/backoffice/internal/expense"
)

func TestService_Create_Validation(t *testing.T) {
	type testCase struct {
		name    string
		params  expense.CreateParams
		wantErr error
	}

	missionID := uuid.New()

	tests := []testCase{
		{
			name: "MissingReceipt",
			params: expense.CreateParams{
				Name:      "Carburant",
				Amount:    1500,
				MissionID: missionID,
			},
			wantErr: expense.ErrReceiptRequired,
		},
		{
			name: "BlankReceipt",
			params: expense.CreateParams{
				Name:       "Carburant",
				Amount:     1500,
				ReceiptRef: "   ",
				MissionID:  missionID,
			},
			wantErr: expense.ErrReceiptRequired,
		},
		{
			name: "MissingMission",
			params: expense.CreateParams{
				Name:       "Carburant",
				Amount:     1500,
				ReceiptRef: "JUSTIF-001",
			},
			wantErr: expense.ErrMissingMission,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			svc := expense.NewService(repo)

			got, err := svc.Create(context.Background(), tt.params)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	svc := expense.NewService(repo)

	repo.EXPECT().
		CreateExpense(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *expense.Expense) error {
			e.ID = uuid.New()
			e.CreatedAt = time.Now()
			return nil
		})

	got, err := svc.Create(context.Background(), expense.CreateParams{
		Name:       "Hebergement",
		Date:       time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		Amount:     12000,
		ReceiptRef: "JUSTIF-014",
		MissionID:  uuid.New(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
}

func TestService_ImportBatch_NoConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	itx := expense.NewMockImportTx(ctrl)
	svc := expense.NewService(repo)

	missionID := uuid.New()
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	params := []expense.CreateParams{
		{
			Name:       "PAIEMENT FOURNISSEUR",
			Date:       date,
			Amount:     30000,
			ReceiptRef: "BNM-0001",
		},
	}

	repo.EXPECT().BeginImport(gomock.Any(), missionID, date, date).Return(itx, nil)
	itx.EXPECT().FindDuplicates(gomock.Any(), gomock.Any()).Return(nil, nil)
	itx.EXPECT().CreateExpenses(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), missionID, params)
	require.NoError(t, err)
	assert.Len(t, result.Imported, 1)
	assert.Equal(t, missionID, result.Imported[0].MissionID)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.New)
}

func TestService_ImportBatch_WithConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	itx := expense.NewMockImportTx(ctrl)
	svc := expense.NewService(repo)

	missionID := uuid.New()
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	params := []expense.CreateParams{
		{
			Name:       "PAIEMENT FOURNISSEUR",
			Date:       date,
			Amount:     30000,
			ReceiptRef: "BNM-0001",
		},
		{
			Name:       "FRAIS TRANSPORT",
			Date:       date,
			Amount:     8000,
			ReceiptRef: "BNM-0002",
		},
	}

	existing := &expense.Expense{
		ID:        uuid.New(),
		Name:      "PAIEMENT FOURNISSEUR",
		Date:      date,
		Amount:    30000,
		MissionID: missionID,
	}

	repo.EXPECT().BeginImport(gomock.Any(), missionID, date, date).Return(itx, nil)
	itx.EXPECT().FindDuplicates(gomock.Any(), gomock.Any()).Return([]*expense.Expense{existing}, nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), missionID, params)
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Len(t, result.New, 1)
	assert.Len(t, result.Conflicts, 1)
	assert.Equal(t, "PAIEMENT FOURNISSEUR", result.Conflicts[0].Incoming.Name)
	assert.Equal(t, existing, result.Conflicts[0].Existing)
}

func TestService_ImportBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	svc := expense.NewService(repo)

	result, err := svc.ImportBatch(context.Background(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.New)
}

func TestService_ImportBatch_MissingReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	svc := expense.NewService(repo)

	params := []expense.CreateParams{
		{
			Name:   "SANS JUSTIFICATIF",
			Date:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Amount: 4000,
		},
	}

	result, err := svc.ImportBatch(context.Background(), uuid.New(), params)
	require.ErrorIs(t, err, expense.ErrReceiptRequired)
	assert.Nil(t, result)
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	itx := expense.NewMockImportTx(ctrl)
	svc := expense.NewService(repo)

	missionID := uuid.New()
	early := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	params := []expense.CreateParams{
		{Name: "A", Date: late, Amount: 100, ReceiptRef: "R-1"},
		{Name: "B", Date: early, Amount: 200, ReceiptRef: "R-2"},
	}

	repo.EXPECT().BeginImport(gomock.Any(), missionID, early, late).Return(itx, nil)
	itx.EXPECT().CreateExpenses(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	expenses, err := svc.CreateBatch(context.Background(), missionID, params)
	require.NoError(t, err)
	assert.Len(t, expenses, 2)

	for _, e := range expenses {
		assert.Equal(t, missionID, e.MissionID)
	}
}
