// Package certtest provides test doubles for the gateway seam: an
// in-memory scripted gateway and an HTTP server speaking the
// gateway's REST surface.
package certtest

import (
	"context"
	"sync"

	"github.com/certsource/certreg"
	"github.com/certsource/certreg/types"
)

// Compile-time interface check.
var _ certreg.Gateway = (*ScriptedGateway)(nil)

// ScriptedGateway implements certreg.Gateway in memory. Status
// responses are consumed in order; the last one repeats once the
// script is exhausted.
type ScriptedGateway struct {
	// Link returned from SubmitBatchList.
	Link string
	// Statuses scripts the BatchStatus responses.
	Statuses []types.StatusData
	// SubmitErr, when set, makes SubmitBatchList fail.
	SubmitErr error

	mu          sync.Mutex
	submitted   []*types.BatchList
	linksPolled []string
	statusCalls int
}

func (g *ScriptedGateway) SubmitBatchList(_ context.Context, list *types.BatchList) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.SubmitErr != nil {
		return "", g.SubmitErr
	}
	g.submitted = append(g.submitted, list)
	return g.Link, nil
}

func (g *ScriptedGateway) BatchStatus(_ context.Context, link string) (*types.StatusData, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.linksPolled = append(g.linksPolled, link)
	i := g.statusCalls
	if i >= len(g.Statuses) {
		i = len(g.Statuses) - 1
	}
	g.statusCalls++
	status := g.Statuses[i]
	return &status, nil
}

// Submitted returns the batch lists submitted so far.
func (g *ScriptedGateway) Submitted() []*types.BatchList {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]*types.BatchList(nil), g.submitted...)
}

// StatusCalls returns how many times BatchStatus was invoked.
func (g *ScriptedGateway) StatusCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.statusCalls
}

// LinksPolled returns the links BatchStatus was invoked with, in
// order.
func (g *ScriptedGateway) LinksPolled() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.linksPolled...)
}

// Pending builds a still-processing status record for one batch.
func Pending(batchID, link string) types.StatusData {
	return types.StatusData{
		Data: []types.Status{{ID: batchID, Status: types.StatusPending}},
		Link: link,
	}
}

// Committed builds a terminal-success status record for one batch.
func Committed(batchID, link string) types.StatusData {
	return types.StatusData{
		Data: []types.Status{{ID: batchID, Status: types.StatusCommitted}},
		Link: link,
	}
}

// Invalid builds a terminal-failure status record carrying one
// invalid-transaction diagnostic.
func Invalid(batchID, link, txnID, message string) types.StatusData {
	return types.StatusData{
		Data: []types.Status{{
			ID:     batchID,
			Status: types.StatusInvalid,
			InvalidTransactions: []types.InvalidTransaction{
				{ID: txnID, Message: message},
			},
		}},
		Link: link,
	}
}
