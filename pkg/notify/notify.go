// Package notify publishes request decision and capital release events to whoever delivers them to users.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notify.go -destination=mock_notify.go -package=notify

const (
	DepositApproved    = "deposit.approved"
	DepositRejected    = "deposit.rejected"
	WithdrawalApproved = "withdrawal.approved"
	WithdrawalRejected = "withdrawal.rejected"
	CapitalReturned    = "capital.returned"
)

type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	AccountID  int64     `json:"account_id"`
	RequestID  int64     `json:"request_id"`
	Amount     string    `json:"amount"`
	Reason     string    `json:"reason,omitempty"`
	TxHash     string    `json:"tx_hash,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType string, accountID, requestID int64, amount string) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		AccountID:  accountID,
		RequestID:  requestID,
		Amount:     amount,
		OccurredAt: time.Now().UTC(),
	}
}

type Notifier interface {
	Notify(ctx context.Context, e Event) error
	Close() error
}

// Noop only logs; used when no transport is configured.
type Noop struct{}

func (Noop) Notify(_ context.Context, e Event) error {
	zap.L().Debug("notification dropped, no transport configured",
		zap.String("type", e.Type), zap.Int64("requestID", e.RequestID))
	return nil
}

func (Noop) Close() error {
	return nil
}
