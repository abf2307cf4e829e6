package submit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certsource/certreg"
	certtest "github.com/certsource/certreg/testing"
	"github.com/certsource/certreg/types"
)

// countingSleep replaces the inter-poll pause and records each wait.
type countingSleep struct {
	waits []time.Duration
}

func (c *countingSleep) sleep(_ context.Context, d time.Duration) error {
	c.waits = append(c.waits, d)
	return nil
}

func TestWaitCommitsAfterPending(t *testing.T) {
	gw := &certtest.ScriptedGateway{
		Statuses: []types.StatusData{
			certtest.Pending("b1", "/batch_statuses?id=b1"),
			certtest.Pending("b1", "/batch_statuses?id=b1"),
			certtest.Committed("b1", "/batch_statuses?id=b1"),
		},
	}

	sleeper := &countingSleep{}
	w := &Waiter{Interval: 3 * time.Second, sleep: sleeper.sleep}

	err := w.Wait(context.Background(), gw, "/batch_statuses?id=b1")
	require.NoError(t, err)

	// Two pending responses: exactly two waits of the configured
	// interval, success on the third poll.
	assert.Equal(t, 3, gw.StatusCalls())
	require.Len(t, sleeper.waits, 2)
	for _, d := range sleeper.waits {
		assert.Equal(t, 3*time.Second, d)
	}
}

func TestWaitSurfacesLedgerDiagnostic(t *testing.T) {
	gw := &certtest.ScriptedGateway{
		Statuses: []types.StatusData{
			certtest.Invalid("b1", "/batch_statuses?id=b1", "t1", "insufficient permission"),
		},
	}

	w := &Waiter{}
	err := w.Wait(context.Background(), gw, "/batch_statuses?id=b1")
	require.Error(t, err)
	assert.Equal(t, "insufficient permission", err.Error())

	rej, ok := certreg.AsLedgerRejection(err)
	require.True(t, ok)
	assert.Equal(t, "b1", rej.BatchID)
	assert.Equal(t, "t1", rej.TransactionID)
}

func TestWaitInvalidWithoutDetails(t *testing.T) {
	gw := &certtest.ScriptedGateway{
		Statuses: []types.StatusData{{
			Data: []types.Status{{ID: "b1", Status: types.StatusInvalid}},
		}},
	}

	err := (&Waiter{}).Wait(context.Background(), gw, "/x?id=b1")
	rej, ok := certreg.AsLedgerRejection(err)
	require.True(t, ok)
	assert.NotEmpty(t, rej.Message)
}

func TestWaitMaxAttempts(t *testing.T) {
	gw := &certtest.ScriptedGateway{
		Statuses: []types.StatusData{certtest.Pending("b1", "/x?id=b1")},
	}

	sleeper := &countingSleep{}
	w := &Waiter{MaxAttempts: 3, sleep: sleeper.sleep}

	err := w.Wait(context.Background(), gw, "/x?id=b1")
	assert.ErrorIs(t, err, ErrMaxAttempts)
	assert.Equal(t, 3, gw.StatusCalls())
	// The bound is reached on the last poll, without a trailing wait.
	assert.Len(t, sleeper.waits, 2)
}

func TestWaitCancellation(t *testing.T) {
	gw := &certtest.ScriptedGateway{
		Statuses: []types.StatusData{certtest.Pending("b1", "/x?id=b1")},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &Waiter{Interval: time.Hour}
	err := w.Wait(ctx, gw, "/x?id=b1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWaitEmptyStatusData(t *testing.T) {
	gw := &certtest.ScriptedGateway{
		Statuses: []types.StatusData{{Link: "/x?id=b1"}},
	}

	err := (&Waiter{}).Wait(context.Background(), gw, "/x?id=b1")
	require.Error(t, err)
	var perr *certreg.ResponseParseError
	assert.ErrorAs(t, err, &perr)
}

// Non-terminal enumerators beyond the explicit PENDING value keep the
// poller in the pending state.
func TestUnknownStatusTreatedAsPending(t *testing.T) {
	gw := &certtest.ScriptedGateway{
		Statuses: []types.StatusData{
			{Data: []types.Status{{ID: "b1", Status: "UNKNOWN"}}, Link: "/x?id=b1"},
			{Data: []types.Status{{ID: "b1", Status: ""}}, Link: "/x?id=b1"},
			certtest.Committed("b1", "/x?id=b1"),
		},
	}

	sleeper := &countingSleep{}
	err := (&Waiter{sleep: sleeper.sleep}).Wait(context.Background(), gw, "/x?id=b1")
	require.NoError(t, err)
	assert.Equal(t, 3, gw.StatusCalls())
}

// Each re-poll uses the link from the latest response.
func TestWaitFollowsResponseLink(t *testing.T) {
	gw := &certtest.ScriptedGateway{
		Statuses: []types.StatusData{
			certtest.Pending("b1", "/batch_statuses?id=b1&cursor=2"),
			certtest.Committed("b1", "/batch_statuses?id=b1&cursor=2"),
		},
	}

	sleeper := &countingSleep{}
	err := (&Waiter{sleep: sleeper.sleep}).Wait(context.Background(), gw, "/batch_statuses?id=b1")
	require.NoError(t, err)

	links := gw.LinksPolled()
	require.Len(t, links, 2)
	assert.Equal(t, "/batch_statuses?id=b1", links[0])
	assert.Equal(t, "/batch_statuses?id=b1&cursor=2", links[1])
}

func TestRunSubmitsThenWaits(t *testing.T) {
	gw := &certtest.ScriptedGateway{
		Link: "/batch_statuses?id=b1",
		Statuses: []types.StatusData{
			certtest.Pending("b1", "/batch_statuses?id=b1"),
			certtest.Committed("b1", "/batch_statuses?id=b1"),
		},
	}

	sleeper := &countingSleep{}
	w := &Waiter{sleep: sleeper.sleep}
	err := w.Run(context.Background(), gw, &types.BatchList{})
	require.NoError(t, err)
	assert.Len(t, gw.Submitted(), 1)
	assert.Equal(t, 2, gw.StatusCalls())
}

func TestRunSubmitFailureSkipsPolling(t *testing.T) {
	gw := &certtest.ScriptedGateway{
		SubmitErr: &certreg.TransportError{Op: "submit batch list", Err: context.DeadlineExceeded},
		Statuses:  []types.StatusData{certtest.Committed("b1", "/x")},
	}

	err := (&Waiter{}).Run(context.Background(), gw, &types.BatchList{})
	require.Error(t, err)
	assert.Equal(t, 0, gw.StatusCalls())
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "Pending", Pending.String())
	assert.Equal(t, "Committed", Committed.String())
	assert.Equal(t, "Invalid", Invalid.String())
	assert.Equal(t, Pending, stateOf("SOMETHING_ELSE"))
	assert.Equal(t, Committed, stateOf(types.StatusCommitted))
	assert.Equal(t, Invalid, stateOf(types.StatusInvalid))
}
