//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"payconnect/internal/domain/order"
	"payconnect/internal/handler/dto/request"
	"payconnect/internal/infra"
	"payconnect/internal/infra/gateway"
	"payconnect/internal/pkg/errs"
	"payconnect/internal/pkg/phone"
	"payconnect/internal/usecase/commands"
	portsmock "payconnect/tests/mock/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type paymentFixture struct {
	processor *portsmock.MockProcessorGateway
	pending   *portsmock.MockPendingStore
	cmds      commands.PaymentCommands
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &paymentFixture{
		processor: portsmock.NewMockProcessorGateway(ctrl),
		pending:   portsmock.NewMockPendingStore(ctrl),
	}
	f.cmds = commands.NewPaymentCommands(f.processor, f.pending)
	return f
}

func TestInitiateValidation(t *testing.T) {
	t.Run("phone without digits is rejected before any upstream call", func(t *testing.T) {
		f := newPaymentFixture(t)
		_, err := f.cmds.Initiate(context.Background(), request.InitiatePaymentRequest{Phone: "none", Amount: 10})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		f := newPaymentFixture(t)
		_, err := f.cmds.Initiate(context.Background(), request.InitiatePaymentRequest{Phone: "0531300654", Amount: -1})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestInitiateChargeRequestShape(t *testing.T) {
	f := newPaymentFixture(t)

	var got gateway.ChargeRequest
	f.processor.EXPECT().Charge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req gateway.ChargeRequest) (*gateway.ChargeResult, error) {
			got = req
			return &gateway.ChargeResult{Status: 1, Message: "prompt sent"}, nil
		})

	result, err := f.cmds.Initiate(context.Background(), request.InitiatePaymentRequest{
		Phone:  "+233 24-123 4567",
		Amount: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, got.Type)
	assert.Equal(t, "GHS", got.Currency)
	assert.Equal(t, "233241234567", got.Payer)
	assert.Equal(t, "10.00", got.Amount)
	assert.Equal(t, phone.ChannelMTN, got.Channel)
	assert.Equal(t, result.OrderID, got.ExternalRef)

	// generated reference: fixed prefix plus fifteen digits
	require.Len(t, result.OrderID, 16)
	assert.True(t, strings.HasPrefix(result.OrderID, "T"))
	assert.Equal(t, order.StatusPromptSent, result.Status)
	assert.True(t, result.Success())
}

func TestInitiateUsesCallerReference(t *testing.T) {
	f := newPaymentFixture(t)

	f.processor.EXPECT().Charge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req gateway.ChargeRequest) (*gateway.ChargeResult, error) {
			assert.Equal(t, "ORDER-77", req.ExternalRef)
			return &gateway.ChargeResult{Status: 1}, nil
		})

	result, err := f.cmds.Initiate(context.Background(), request.InitiatePaymentRequest{
		Phone:       "0531300654",
		Amount:      10,
		ExternalRef: "ORDER-77",
	})
	require.NoError(t, err)
	assert.Equal(t, "ORDER-77", result.OrderID)
}

func TestInitiateOTPRequired(t *testing.T) {
	f := newPaymentFixture(t)

	f.processor.EXPECT().Charge(gomock.Any(), gomock.Any()).
		Return(&gateway.ChargeResult{Status: 0, Code: gateway.CodeOTPRequired, Message: "OTP sent", SessionID: "sess-1"}, nil)

	var stored order.PendingTransaction
	f.pending.EXPECT().Put(gomock.Any(), gomock.Any()).
		Do(func(ref string, tx order.PendingTransaction) {
			stored = tx
		})

	result, err := f.cmds.Initiate(context.Background(), request.InitiatePaymentRequest{
		Phone:     "0531300654",
		Amount:    10,
		DataPlan:  "5GB (Express)",
		Recipient: "0241234567",
		Email:     "buyer@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, order.StatusOTPRequired, result.Status)
	assert.Equal(t, "0531300654", stored.Payer)
	assert.Equal(t, "10.00", stored.Amount)
	assert.Equal(t, "5GB (Express)", stored.DataPlan)
	assert.Equal(t, "0241234567", stored.Recipient)
	assert.Equal(t, "buyer@example.com", stored.Email)
	assert.Equal(t, "sess-1", stored.SessionID)
	assert.Equal(t, order.StateOTPPending, stored.State)
}

func TestInitiateOTPVerified(t *testing.T) {
	f := newPaymentFixture(t)

	f.processor.EXPECT().Charge(gomock.Any(), gomock.Any()).
		Return(&gateway.ChargeResult{Status: 1, Message: "verified"}, nil)
	f.pending.EXPECT().Delete("ORDER-77")

	result, err := f.cmds.Initiate(context.Background(), request.InitiatePaymentRequest{
		Phone:       "0531300654",
		Amount:      10,
		ExternalRef: "ORDER-77",
		OTPCode:     "1234",
	})
	require.NoError(t, err)
	assert.Equal(t, order.StatusVerifiedAndPromptSent, result.Status)
}

func TestInitiateOTPFailed(t *testing.T) {
	f := newPaymentFixture(t)

	f.processor.EXPECT().Charge(gomock.Any(), gomock.Any()).
		Return(&gateway.ChargeResult{Status: 0, Code: "TP40", Message: "wrong otp", SessionID: "sess-2"}, nil)
	// entry retained for resubmission, session id refreshed
	f.pending.EXPECT().MergeSessionID("ORDER-77", "sess-2")

	result, err := f.cmds.Initiate(context.Background(), request.InitiatePaymentRequest{
		Phone:       "0531300654",
		Amount:      10,
		ExternalRef: "ORDER-77",
		OTPCode:     "0000",
	})
	require.NoError(t, err)
	assert.Equal(t, order.StatusOTPFailed, result.Status)
	assert.False(t, result.Success())
	assert.Equal(t, "wrong otp", result.Message)
}

func TestInitiateUpstreamFailures(t *testing.T) {
	t.Run("unreachable processor", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.processor.EXPECT().Charge(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapGatewayErr(infra.KindUpstreamFailure, "connection refused", nil))

		_, err := f.cmds.Initiate(context.Background(), request.InitiatePaymentRequest{Phone: "0531300654", Amount: 10})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUpstream)
	})

	t.Run("processor timeout", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.processor.EXPECT().Charge(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapGatewayErr(infra.KindUpstreamTimeout, "deadline exceeded", nil))

		_, err := f.cmds.Initiate(context.Background(), request.InitiatePaymentRequest{Phone: "0531300654", Amount: 10})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUpstreamTimeout)
	})

	t.Run("missing credentials", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.processor.EXPECT().Charge(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapGatewayErr(infra.KindMisconfigured, "moolre credentials missing", nil))

		_, err := f.cmds.Initiate(context.Background(), request.InitiatePaymentRequest{Phone: "0531300654", Amount: 10})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConfiguration)
	})
}

func TestInitiateUnexpectedResponse(t *testing.T) {
	f := newPaymentFixture(t)

	f.processor.EXPECT().Charge(gomock.Any(), gomock.Any()).
		Return(&gateway.ChargeResult{Status: 0, Code: "TP99", Message: "odd", Raw: []byte(`{"status":0}`)}, nil)

	_, err := f.cmds.Initiate(context.Background(), request.InitiatePaymentRequest{Phone: "0531300654", Amount: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnexpectedResponse)
}
