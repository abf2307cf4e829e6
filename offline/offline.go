// Package offline provides a file-backed, in-process Gateway for
// staging batch lists that are loaded into the ledger out of band,
// genesis bootstrap files in particular, instead of being submitted
// over the network.
//
// Submissions accumulate into one batch file and report an
// immediately committed synthetic status, so the same submit-and-wait
// pipeline works unchanged against it.
package offline

import (
	"context"
	"os"
	"sync"

	"github.com/certsource/certreg"
	"github.com/certsource/certreg/types"
)

// Compile-time interface check.
var _ certreg.Gateway = (*Connection)(nil)

const stagedLink = "/batch_statuses?id=staged"

// Connection implements certreg.Gateway against the local filesystem.
type Connection struct {
	path string

	mu      sync.Mutex
	staged  types.BatchList
	lastIDs []string
}

// NewConnection returns a Connection writing to the given batch file.
// The file is created (or truncated) on the first submission.
func NewConnection(path string) *Connection {
	return &Connection{path: path}
}

// SubmitBatchList appends the batches to the staged list and rewrites
// the batch file with the full accumulated encoding.
func (c *Connection) SubmitBatchList(_ context.Context, list *types.BatchList) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.staged.Batches = append(c.staged.Batches, list.Batches...)
	c.lastIDs = c.lastIDs[:0]
	for _, b := range list.Batches {
		c.lastIDs = append(c.lastIDs, b.ID())
	}

	data, err := c.staged.Encode()
	if err != nil {
		return "", &certreg.SerializationError{What: "batch list", Err: err}
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return "", &certreg.TransportError{Op: "write batch file", Err: err}
	}
	return stagedLink, nil
}

// BatchStatus reports every batch of the last submission as
// committed: a staged file has no asynchronous outcome to wait for.
func (c *Connection) BatchStatus(_ context.Context, link string) (*types.StatusData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	status := &types.StatusData{Link: link}
	for _, id := range c.lastIDs {
		status.Data = append(status.Data, types.Status{
			ID:     id,
			Status: types.StatusCommitted,
		})
	}
	if len(status.Data) == 0 {
		status.Data = []types.Status{{Status: types.StatusCommitted}}
	}
	return status, nil
}

// Path returns the batch file the connection writes to.
func (c *Connection) Path() string { return c.path }
