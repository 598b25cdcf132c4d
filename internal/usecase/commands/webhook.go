package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"payconnect/internal/domain/order"
	"payconnect/internal/handler/dto/request"
	"payconnect/internal/infra/gateway"
	"payconnect/internal/pkg/errs"
	"payconnect/internal/pkg/phone"
)

const (
	txStatusSuccess = 1

	// Delivery starts in Pending; fulfilment flips it downstream.
	recordStatusPending = "Pending"
)

type WebhookResult struct {
	Success bool
	Message string
}

type WebhookCommands interface {
	Confirm(ctx context.Context, evt request.MoolreWebhookRequest) (*WebhookResult, error)
}

type webhookCommandsImpl struct {
	secret  string
	sms     SMSGateway
	orders  OrderStoreGateway
	pending PendingStore
	window  SuppressionWindow
}

func NewWebhookCommands(
	secret string,
	sms SMSGateway,
	orders OrderStoreGateway,
	pending PendingStore,
	window SuppressionWindow,
) WebhookCommands {
	return &webhookCommandsImpl{
		secret:  secret,
		sms:     sms,
		orders:  orders,
		pending: pending,
		window:  window,
	}
}

// Confirm runs the webhook state machine: authenticate, deduplicate,
// reconcile metadata from the pending store, notify the buyer and
// persist the final order record. Errors are returned only for
// authentication and malformed-request rejections; every downstream
// failure is logged and swallowed into the acknowledgment so the
// processor never enters a retry loop.
func (c *webhookCommandsImpl) Confirm(ctx context.Context, evt request.MoolreWebhookRequest) (*WebhookResult, error) {
	// An unset secret rejects everything; authentication is never
	// disabled.
	if c.secret == "" || evt.SharedSecret() != c.secret {
		return nil, errs.Mark(errs.New("webhook secret mismatch"), errs.ErrAuthentication)
	}

	ref := evt.Data.ExternalRef
	if ref == "" {
		return nil, errs.Mark(errs.New("webhook missing order reference"), errs.ErrMissingOrderRef)
	}

	if !c.window.ShouldProcess(ref) {
		slog.Info("duplicate webhook suppressed", "ref", ref)
		return &WebhookResult{Success: true, Message: "Duplicate webhook ignored"}, nil
	}
	c.window.RecordProcessed(ref)

	if evt.Data.TxStatus != txStatusSuccess {
		// No record is ever created for failed or pending charges;
		// clearing the entry frees the correlation slot.
		c.pending.Delete(ref)
		slog.Info("webhook reported non-success status", "ref", ref, "txstatus", evt.Data.TxStatus)
		return &WebhookResult{Success: true, Message: "Payment not successful"}, nil
	}

	// Durable idempotency guard: the order store outlives both
	// process-local structures.
	exists, err := c.orders.Exists(ctx, ref)
	if err != nil {
		slog.Error("order store existence check failed, proceeding with creation", "ref", ref, "error", err)
	}
	if exists {
		slog.Info("order already recorded, skipping", "ref", ref)
		return &WebhookResult{Success: true, Message: "Order already recorded"}, nil
	}

	pendingTx, found := c.pending.Get(ref)
	state := order.StateConfirmed
	if !found {
		state = order.StatePendingConfirmationLost
		slog.Warn("no pending metadata for confirmed order, using placeholders", "ref", ref)
	}

	dataPlan := firstNonEmpty(pendingTx.DataPlan, evt.Data.Metadata.DataPlan, order.Placeholder)
	recipient := firstNonEmpty(pendingTx.Recipient, evt.Data.Metadata.Recipient, order.Placeholder)
	email := firstNonEmpty(pendingTx.Email, evt.Data.Metadata.Email, order.Placeholder)

	customerPhone := phone.Normalize(phone.ExtractPayerNumber(evt.Data.Payer, evt.Data.Metadata.CustomerID))
	if customerPhone == "" {
		customerPhone = pendingTx.Payer
	}

	smsSent := false
	smsResponse := ""
	smsRes, smsErr := c.sms.Send(ctx, customerPhone, order.ComposeDeliverySMS(dataPlan, recipient, ref))
	if smsErr != nil {
		// Notification failure never aborts record creation.
		slog.Error("sms send failed", "ref", ref, "error", smsErr)
		smsResponse = smsErr.Error()
	} else {
		smsSent = true
		smsResponse = string(smsRes.Body)
	}

	rawPayload, err := json.Marshal(evt)
	if err != nil {
		rawPayload = []byte("{}")
	}

	c.pending.Delete(ref)

	rec := gateway.OrderRecord{
		OrderID:         ref,
		CustomerPhone:   customerPhone,
		CustomerEmail:   email,
		RecipientNumber: recipient,
		DataPlan:        dataPlan,
		Amount:          evt.Data.Amount,
		Status:          recordStatusPending,
		HubtelSent:      smsSent,
		HubtelResponse:  smsResponse,
		MoolreResponse:  string(rawPayload),
	}
	if err := c.orders.CreateRecord(ctx, rec); err != nil {
		slog.Error("order record creation failed", "ref", ref, "error", err)
		return &WebhookResult{Success: false, Message: "Internal webhook error"}, nil
	}

	slog.Info("order record created", "ref", ref, "state", string(state), "sms_sent", smsSent)
	return &WebhookResult{Success: true, Message: "SMS sent and order record created"}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
