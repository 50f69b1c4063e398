package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/armonia-apps/msa-client-api/internal/gateway"
	"github.com/armonia-apps/msa-client-api/internal/models"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
)

type mockPaymentAPI struct {
	lastFilter models.PaymentFilter
	created    *gateway.CreatePaymentRequest
}

func (m *mockPaymentAPI) ListPayments(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error) {
	m.lastFilter = filter
	return nil, nil
}

func (m *mockPaymentAPI) CreatePayment(ctx context.Context, req gateway.CreatePaymentRequest) (*models.Payment, error) {
	m.created = &req
	return &models.Payment{ID: "p1", UserID: req.UserID, Amount: req.Amount}, nil
}

func (m *mockPaymentAPI) UpdatePayment(ctx context.Context, id string, req gateway.UpdatePaymentRequest) (*models.Payment, error) {
	return &models.Payment{ID: id}, nil
}

func (m *mockPaymentAPI) DeletePayment(ctx context.Context, id string) error {
	return nil
}

func TestPaymentListScopesNonAdmins(t *testing.T) {
	api := &mockPaymentAPI{}
	svc := NewPaymentService(api, validator.New(), zap.NewNop())

	cases := []struct {
		name   string
		actor  *models.User
		wantID string
	}{
		{name: "student", actor: &models.User{ID: "s1", Role: models.RoleStudent}, wantID: "s1"},
		{name: "teacher", actor: &models.User{ID: "t1", Role: models.RoleTeacher}, wantID: "t1"},
		{name: "admin", actor: &models.User{ID: "a1", Role: models.RoleAdmin}, wantID: "other"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.List(context.Background(), tc.actor, models.PaymentFilter{UserID: "other"})
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, api.lastFilter.UserID)
		})
	}
}

func TestPaymentCreateRejectsNonPositiveAmount(t *testing.T) {
	api := &mockPaymentAPI{}
	svc := NewPaymentService(api, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreatePaymentRequest{
		UserID:      "s1",
		Type:        "mensile",
		Amount:      0,
		Description: "Marzo",
		DueDate:     "2026-03-10",
	})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
	assert.Nil(t, api.created)
}
