package commands

import (
	"context"
	"log/slog"

	"payconnect/internal/domain/order"
	"payconnect/internal/handler/dto/request"
	"payconnect/internal/infra"
	"payconnect/internal/infra/gateway"
	"payconnect/internal/pkg/errs"
	"payconnect/internal/pkg/phone"
)

const (
	chargeType      = 1
	chargeCurrency  = "GHS"
	chargeReference = "Data Purchase"
)

type InitiatePaymentResult struct {
	OrderID string
	Status  order.InitiationStatus
	Message string
}

// Success is false only for a rejected OTP; every other initiation
// status reports success to the caller and the final outcome arrives
// via webhook.
func (r *InitiatePaymentResult) Success() bool {
	return r.Status != order.StatusOTPFailed
}

type PaymentCommands interface {
	Initiate(ctx context.Context, req request.InitiatePaymentRequest) (*InitiatePaymentResult, error)
}

type paymentCommandsImpl struct {
	processor ProcessorGateway
	pending   PendingStore
}

func NewPaymentCommands(processor ProcessorGateway, pending PendingStore) PaymentCommands {
	return &paymentCommandsImpl{
		processor: processor,
		pending:   pending,
	}
}

// Initiate runs the charge state machine: validate, resolve channel,
// charge the processor, then branch on whether an OTP round-trip is
// demanded. Metadata for the eventual webhook is parked in the pending
// store keyed by order reference.
func (c *paymentCommandsImpl) Initiate(ctx context.Context, req request.InitiatePaymentRequest) (*InitiatePaymentResult, error) {
	payer := phone.Normalize(req.Phone)
	if payer == "" {
		return nil, errs.Mark(errs.New("phone contains no digits"), errs.ErrValidation)
	}

	amount, err := order.FormatAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	orderID := req.ExternalRef
	if orderID == "" {
		orderID, err = order.NewReference()
		if err != nil {
			return nil, err
		}
	}

	res, err := c.processor.Charge(ctx, gateway.ChargeRequest{
		Type:        chargeType,
		Channel:     phone.Channel(payer),
		Currency:    chargeCurrency,
		Payer:       payer,
		Amount:      amount,
		ExternalRef: orderID,
		OTPCode:     req.OTPCode,
		Reference:   chargeReference,
	})
	if err != nil {
		// Nothing was stored for this reference yet, so a failed
		// upstream call leaves no state behind.
		switch {
		case infra.IsKind(err, infra.KindUpstreamTimeout):
			return nil, errs.Mark(err, errs.ErrUpstreamTimeout)
		case infra.IsKind(err, infra.KindMisconfigured):
			return nil, errs.Mark(err, errs.ErrConfiguration)
		default:
			return nil, errs.Mark(err, errs.ErrUpstream)
		}
	}

	if req.OTPCode == "" && res.OTPRequired() {
		c.pending.Put(orderID, order.PendingTransaction{
			Payer:     payer,
			Amount:    amount,
			DataPlan:  req.DataPlan,
			Recipient: req.Recipient,
			Email:     req.Email,
			SessionID: res.SessionID,
			State:     order.StateOTPPending,
		})
		return &InitiatePaymentResult{OrderID: orderID, Status: order.StatusOTPRequired, Message: res.Message}, nil
	}

	if req.OTPCode != "" {
		if res.Successful() {
			// Consumed here rather than in the webhook; the webhook
			// falls back to processor metadata if it needs display
			// fields for this reference.
			c.pending.Delete(orderID)
			return &InitiatePaymentResult{OrderID: orderID, Status: order.StatusVerifiedAndPromptSent, Message: res.Message}, nil
		}
		// Entry retained so the caller can resubmit a corrected OTP.
		if res.SessionID != "" {
			c.pending.MergeSessionID(orderID, res.SessionID)
		}
		return &InitiatePaymentResult{OrderID: orderID, Status: order.StatusOTPFailed, Message: res.Message}, nil
	}

	if res.Successful() {
		return &InitiatePaymentResult{OrderID: orderID, Status: order.StatusPromptSent, Message: res.Message}, nil
	}

	slog.Error("unexpected processor response",
		"ref", orderID,
		"status", res.Status,
		"code", res.Code,
		"payload", string(res.Raw),
	)
	return nil, errs.Mark(
		errs.Newf("processor returned status %d code %q", res.Status, res.Code),
		errs.ErrUnexpectedResponse,
	)
}
