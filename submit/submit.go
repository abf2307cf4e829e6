// Package submit drives a gateway submission to a terminal commit
// outcome.
//
// A submission starts out pending and moves through a three-state
// machine: Pending covers every non-terminal status the gateway can
// report, Committed and Invalid are terminal. Polling is strictly
// sequential: a pending response causes exactly one controlled pause
// before the next attempt.
package submit

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/certsource/certreg"
	"github.com/certsource/certreg/types"
)

// State is the poller's view of a submission.
type State uint8

const (
	// Pending: any non-terminal enumerator value, including unknown
	// and unset.
	Pending State = iota
	// Committed: terminal success.
	Committed
	// Invalid: terminal failure with a ledger-supplied diagnostic.
	Invalid
)

func (s State) String() string {
	switch s {
	case Committed:
		return "Committed"
	case Invalid:
		return "Invalid"
	default:
		return "Pending"
	}
}

// stateOf maps a gateway status enumerator to a poller state.
func stateOf(status string) State {
	switch status {
	case types.StatusCommitted:
		return Committed
	case types.StatusInvalid:
		return Invalid
	default:
		return Pending
	}
}

// DefaultInterval is the pause between polls of a pending submission.
const DefaultInterval = 3 * time.Second

// ErrMaxAttempts is returned when MaxAttempts polls have completed
// without the submission reaching a terminal state. The ledger-side
// outcome is unresolved at that point.
var ErrMaxAttempts = errors.New("maximum poll attempts reached without a terminal status")

// Waiter polls a submission handle until a terminal outcome. The zero
// value polls every DefaultInterval with no attempt bound.
type Waiter struct {
	// Interval is the pause between polls. Zero means DefaultInterval.
	Interval time.Duration
	// MaxAttempts bounds the number of polls. Zero means poll until a
	// terminal status or context cancellation.
	MaxAttempts int
	// Logger reports poll progress. Nil disables logging.
	Logger *zap.SugaredLogger

	// Test seam for the inter-poll pause.
	sleep func(ctx context.Context, d time.Duration) error
}

// Wait polls the link until the submission commits or is rejected.
// It returns nil on commit, a LedgerRejectionError carrying the first
// invalid-transaction diagnostic on rejection, ErrMaxAttempts when the
// attempt bound is exhausted, or the context's error on cancellation.
func (w *Waiter) Wait(ctx context.Context, gw certreg.Gateway, link string) error {
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	pause := w.sleep
	if pause == nil {
		pause = sleepContext
	}

	for attempt := 1; ; attempt++ {
		status, err := gw.BatchStatus(ctx, link)
		if err != nil {
			return err
		}
		if len(status.Data) == 0 {
			return &certreg.ResponseParseError{Op: "fetch batch status", Reason: "no status records"}
		}

		// One submission reports one batch per polled link; only the
		// first record is inspected.
		record := status.Data[0]
		switch stateOf(record.Status) {
		case Committed:
			if w.Logger != nil {
				w.Logger.Infow("batch committed", "batch", record.ID, "attempts", attempt)
			}
			return nil
		case Invalid:
			rej := &certreg.LedgerRejectionError{
				BatchID: record.ID,
				Message: "batch " + record.ID + " rejected by the ledger",
			}
			if len(record.InvalidTransactions) > 0 {
				rej.TransactionID = record.InvalidTransactions[0].ID
				rej.Message = record.InvalidTransactions[0].Message
			}
			return rej
		}

		if w.MaxAttempts > 0 && attempt >= w.MaxAttempts {
			return ErrMaxAttempts
		}
		if w.Logger != nil {
			w.Logger.Debugw("batch still pending", "batch", record.ID, "attempt", attempt)
		}
		if err := pause(ctx, interval); err != nil {
			return err
		}
		// Re-poll with the link from the latest response.
		link = status.Link
	}
}

// Run submits the batch list and waits for its outcome.
func (w *Waiter) Run(ctx context.Context, gw certreg.Gateway, list *types.BatchList) error {
	link, err := gw.SubmitBatchList(ctx, list)
	if err != nil {
		return err
	}
	return w.Wait(ctx, gw, link)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
