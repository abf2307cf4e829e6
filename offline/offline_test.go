package offline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certsource/certreg/offline"
	"github.com/certsource/certreg/signing"
	"github.com/certsource/certreg/submit"
	"github.com/certsource/certreg/txn"
	"github.com/certsource/certreg/types"
)

func testBatch(t *testing.T) types.Batch {
	t.Helper()
	signer, err := signing.NewRandom()
	require.NoError(t, err)
	addrs := []types.Address{types.AgentAddress(signer.PublicKeyHex())}
	transaction, err := txn.NewTransaction(signer, []byte("payload"), addrs, addrs)
	require.NoError(t, err)
	batch, err := txn.NewBatch(signer, transaction)
	require.NoError(t, err)
	return batch
}

func TestSubmitWritesBatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genesis.batch")
	conn := offline.NewConnection(path)

	first := testBatch(t)
	second := testBatch(t)

	_, err := conn.SubmitBatchList(context.Background(), txn.NewBatchList(first))
	require.NoError(t, err)
	_, err = conn.SubmitBatchList(context.Background(), txn.NewBatchList(second))
	require.NoError(t, err)

	// Submissions accumulate into one decodable file.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	list, err := types.DecodeBatchList(data)
	require.NoError(t, err)
	require.Len(t, list.Batches, 2)
	assert.Equal(t, first.ID(), list.Batches[0].ID())
	assert.Equal(t, second.ID(), list.Batches[1].ID())
}

func TestPipelineCommitsImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staged.batch")
	conn := offline.NewConnection(path)

	w := &submit.Waiter{}
	err := w.Run(context.Background(), conn, txn.NewBatchList(testBatch(t)))
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}
