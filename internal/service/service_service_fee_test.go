package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/internal/mock"
	"github.com/MKhiriev/court-fund/internal/store"
	"github.com/MKhiriev/court-fund/internal/validators"
	"github.com/MKhiriev/court-fund/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

func newTestFeeSvc(t *testing.T) (ServiceFeeService, *mock.MockServiceFeeRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockServiceFeeRepository(ctrl)

	inner := NewServiceFeeService(repo, logger.Nop())
	inner.(*serviceFeeService).now = func() time.Time { return fixedNow }

	return NewServiceFeeValidationService().Wrap(inner), repo
}

func validCreateFeeRequest() models.CreateServiceFeeRequest {
	courtID := int64(7)
	amount := dec("150000")
	due := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)

	return models.CreateServiceFeeRequest{
		CourtID: &courtID,
		Amount:  &amount,
		Month:   "2025-06",
		DueDate: &due,
	}
}

// ── CreateServiceFee ──────────────────────────────────────────────────────────

func TestServiceFeeService_Create_DefaultsToPending(t *testing.T) {
	svc, repo := newTestFeeSvc(t)

	repo.EXPECT().CreateServiceFee(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fee models.ServiceFee) (models.ServiceFee, error) {
			assert.Equal(t, models.FeeStatusPending, fee.Status)
			assert.Equal(t, int64(7), fee.CourtID)
			assert.Equal(t, "2025-06", fee.Month)
			fee.ID = 11
			return fee, nil
		},
	)

	fee, err := svc.CreateServiceFee(context.Background(), validCreateFeeRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(11), fee.ID)
	assert.Equal(t, models.FeeStatusPending, fee.Status)
}

func TestServiceFeeService_Create_Invalid(t *testing.T) {
	negative := dec("-1")

	tests := []struct {
		name    string
		mutate  func(r *models.CreateServiceFeeRequest)
		wantErr error
	}{
		{"missing court", func(r *models.CreateServiceFeeRequest) { r.CourtID = nil }, validators.ErrCourtIDRequired},
		{"missing amount", func(r *models.CreateServiceFeeRequest) { r.Amount = nil }, validators.ErrAmountRequired},
		{"negative amount", func(r *models.CreateServiceFeeRequest) { r.Amount = &negative }, validators.ErrNegativeAmount},
		{"missing due date", func(r *models.CreateServiceFeeRequest) { r.DueDate = nil }, validators.ErrDueDateRequired},
		{"bad month", func(r *models.CreateServiceFeeRequest) { r.Month = "June" }, validators.ErrInvalidMonth},
		{"bad status", func(r *models.CreateServiceFeeRequest) { r.Status = "cancelled" }, validators.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestFeeSvc(t)
			req := validCreateFeeRequest()
			tt.mutate(&req)

			_, err := svc.CreateServiceFee(context.Background(), req)

			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── UpdateServiceFeeStatus ────────────────────────────────────────────────────

func TestServiceFeeService_Complete_StampsPaidDate(t *testing.T) {
	svc, repo := newTestFeeSvc(t)

	repo.EXPECT().
		UpdateServiceFeeStatus(gomock.Any(), int64(4), models.FeeStatusCompleted, &fixedNow).
		Return(models.ServiceFee{ID: 4, Status: models.FeeStatusCompleted, PaidDate: &fixedNow}, nil)

	fee, err := svc.UpdateServiceFeeStatus(context.Background(), models.UpdateFeeStatusRequest{
		ID:     4,
		Status: models.FeeStatusCompleted,
	})

	require.NoError(t, err)
	require.NotNil(t, fee.PaidDate)
	assert.Equal(t, fixedNow, *fee.PaidDate)
}

func TestServiceFeeService_Complete_KeepsGivenPaidDate(t *testing.T) {
	svc, repo := newTestFeeSvc(t)
	paid := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		UpdateServiceFeeStatus(gomock.Any(), int64(4), models.FeeStatusCompleted, &paid).
		Return(models.ServiceFee{ID: 4, Status: models.FeeStatusCompleted, PaidDate: &paid}, nil)

	_, err := svc.UpdateServiceFeeStatus(context.Background(), models.UpdateFeeStatusRequest{
		ID:       4,
		Status:   models.FeeStatusCompleted,
		PaidDate: &paid,
	})

	require.NoError(t, err)
}

func TestServiceFeeService_MarkOverdue_LeavesPaidDateEmpty(t *testing.T) {
	svc, repo := newTestFeeSvc(t)

	repo.EXPECT().
		UpdateServiceFeeStatus(gomock.Any(), int64(4), models.FeeStatusOverdue, gomock.Nil()).
		Return(models.ServiceFee{ID: 4, Status: models.FeeStatusOverdue}, nil)

	fee, err := svc.UpdateServiceFeeStatus(context.Background(), models.UpdateFeeStatusRequest{
		ID:     4,
		Status: models.FeeStatusOverdue,
	})

	require.NoError(t, err)
	assert.Nil(t, fee.PaidDate)
}

func TestServiceFeeService_UpdateStatus_Invalid(t *testing.T) {
	svc, _ := newTestFeeSvc(t)

	_, err := svc.UpdateServiceFeeStatus(context.Background(), models.UpdateFeeStatusRequest{ID: 4, Status: "lost"})
	assert.ErrorIs(t, err, validators.ErrInvalidStatus)

	_, err = svc.UpdateServiceFeeStatus(context.Background(), models.UpdateFeeStatusRequest{Status: models.FeeStatusPending})
	assert.ErrorIs(t, err, validators.ErrInvalidFeeID)
}

func TestServiceFeeService_UpdateStatus_NotFound(t *testing.T) {
	svc, repo := newTestFeeSvc(t)
	repo.EXPECT().
		UpdateServiceFeeStatus(gomock.Any(), int64(99), models.FeeStatusPending, gomock.Nil()).
		Return(models.ServiceFee{}, store.ErrServiceFeeNotFound)

	_, err := svc.UpdateServiceFeeStatus(context.Background(), models.UpdateFeeStatusRequest{ID: 99, Status: models.FeeStatusPending})

	assert.ErrorIs(t, err, store.ErrServiceFeeNotFound)
}

// ── reads and delete ──────────────────────────────────────────────────────────

func TestServiceFeeService_ListServiceFees(t *testing.T) {
	svc, repo := newTestFeeSvc(t)
	filter := models.ServiceFeeFilter{CourtID: 7, Status: models.FeeStatusOverdue}
	repo.EXPECT().ListServiceFees(gomock.Any(), filter).Return([]models.ServiceFee{{ID: 1}}, nil)

	fees, err := svc.ListServiceFees(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, fees, 1)
}

func TestServiceFeeService_ListServiceFees_BadFilter(t *testing.T) {
	svc, _ := newTestFeeSvc(t)

	_, err := svc.ListServiceFees(context.Background(), models.ServiceFeeFilter{Status: "unknown"})
	assert.ErrorIs(t, err, validators.ErrInvalidStatus)

	_, err = svc.ListServiceFees(context.Background(), models.ServiceFeeFilter{Month: "2025-13"})
	assert.ErrorIs(t, err, validators.ErrInvalidMonth)
}

func TestServiceFeeService_GetAndDelete(t *testing.T) {
	svc, repo := newTestFeeSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetServiceFee(ctx, int64(5)).Return(models.ServiceFee{ID: 5}, nil)
	repo.EXPECT().DeleteServiceFee(ctx, int64(5)).Return(nil)
	repo.EXPECT().DeleteServiceFee(ctx, int64(6)).Return(store.ErrServiceFeeNotFound)

	fee, err := svc.GetServiceFee(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), fee.ID)

	require.NoError(t, svc.DeleteServiceFee(ctx, 5))
	assert.ErrorIs(t, svc.DeleteServiceFee(ctx, 6), store.ErrServiceFeeNotFound)
	assert.ErrorIs(t, svc.DeleteServiceFee(ctx, 0), validators.ErrInvalidFeeID)

	_, err = svc.GetServiceFee(ctx, -1)
	assert.ErrorIs(t, err, ErrValidation)
}
