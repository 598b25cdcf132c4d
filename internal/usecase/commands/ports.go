package commands

import (
	"context"

	"payconnect/internal/domain/order"
	"payconnect/internal/infra/gateway"
)

// ProcessorGateway initiates mobile-money charges with the payment
// processor.
type ProcessorGateway interface {
	Charge(ctx context.Context, req gateway.ChargeRequest) (*gateway.ChargeResult, error)
}

// SMSGateway delivers buyer notifications.
type SMSGateway interface {
	Send(ctx context.Context, to, message string) (*gateway.SMSResult, error)
}

// OrderStoreGateway is the external system of record for completed
// orders.
type OrderStoreGateway interface {
	Exists(ctx context.Context, ref string) (bool, error)
	CreateRecord(ctx context.Context, rec gateway.OrderRecord) error
}

// PendingStore correlates initiation-time metadata with the eventual
// confirmation webhook. Owned by the payment flows; nothing else reads
// it.
type PendingStore interface {
	Put(ref string, tx order.PendingTransaction)
	Get(ref string) (order.PendingTransaction, bool)
	Delete(ref string)
	MergeSessionID(ref, sessionID string)
}

// SuppressionWindow is the advisory time-boxed guard against duplicate
// webhook delivery.
type SuppressionWindow interface {
	ShouldProcess(ref string) bool
	RecordProcessed(ref string)
}
