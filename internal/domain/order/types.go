package order

import "time"

// LifecycleState tracks one payment attempt across the two code paths
// that touch it: the synchronous initiation call and the asynchronous
// confirmation webhook.
type LifecycleState string

const (
	StateInitiated               LifecycleState = "INITIATED"
	StateOTPPending              LifecycleState = "OTP_PENDING"
	StatePromptSent              LifecycleState = "PROMPT_SENT"
	StateConfirmed               LifecycleState = "CONFIRMED"
	StatePendingConfirmationLost LifecycleState = "PENDING_CONFIRMATION_LOST"
)

// InitiationStatus is the status string returned to initiation callers.
type InitiationStatus string

const (
	StatusOTPRequired           InitiationStatus = "OTP_REQUIRED"
	StatusPromptSent            InitiationStatus = "PROMPT_SENT"
	StatusVerifiedAndPromptSent InitiationStatus = "VERIFIED_AND_PROMPT_SENT"
	StatusOTPFailed             InitiationStatus = "OTP_FAILED"
)

// Placeholder fills display fields whose source metadata was lost,
// typically after a process restart between initiation and webhook.
const Placeholder = "N/A"

// PendingTransaction is the initiation-time metadata held in memory
// until the confirmation webhook arrives. Process-memory only; lost on
// restart.
type PendingTransaction struct {
	Ref       string
	Payer     string
	Amount    string
	DataPlan  string
	Recipient string
	Email     string
	SessionID string
	State     LifecycleState
	CreatedAt time.Time
}
