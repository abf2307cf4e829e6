package certrest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certsource/certreg"
	certrest "github.com/certsource/certreg/rest"
	"github.com/certsource/certreg/signing"
	certtest "github.com/certsource/certreg/testing"
	"github.com/certsource/certreg/txn"
	"github.com/certsource/certreg/types"
)

func testBatchList(t *testing.T) *types.BatchList {
	t.Helper()
	signer, err := signing.NewRandom()
	require.NoError(t, err)
	addrs := []types.Address{types.AgentAddress(signer.PublicKeyHex())}
	transaction, err := txn.NewTransaction(signer, []byte("payload"), addrs, addrs)
	require.NoError(t, err)
	batch, err := txn.NewBatch(signer, transaction)
	require.NoError(t, err)
	return txn.NewBatchList(batch)
}

// Unsupported and missing schemes are rejected before any network I/O
// is attempted.
func TestNewRejectsSchemes(t *testing.T) {
	for _, baseURL := range []string{
		"https://gateway:9009",
		"file:///tmp/gateway",
		"ftp://gateway",
	} {
		_, err := certrest.New(baseURL)
		require.Error(t, err, "expected rejection for %s", baseURL)
		_, ok := certreg.AsScheme(err)
		assert.True(t, ok, "expected SchemeError for %s, got %v", baseURL, err)
	}

	_, err := certrest.New("//gateway:9009")
	require.Error(t, err)
	s, ok := certreg.AsScheme(err)
	require.True(t, ok)
	assert.Empty(t, s.Scheme)
}

func TestNewAcceptsHTTP(t *testing.T) {
	c, err := certrest.New("http://localhost:9009/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9009", c.BaseURL())
}

func TestSubmitBatchList(t *testing.T) {
	server := certtest.NewGatewayServer(t, certtest.Pending("b1", certtest.StatusLink))
	client, err := certrest.New(server.URL)
	require.NoError(t, err)

	list := testBatchList(t)
	link, err := client.SubmitBatchList(context.Background(), list)
	require.NoError(t, err)
	assert.Equal(t, certtest.StatusLink, link)

	// The gateway received the exact wire encoding.
	submissions := server.Submissions()
	require.Len(t, submissions, 1)
	decoded, err := types.DecodeBatchList(submissions[0])
	require.NoError(t, err)
	require.Len(t, decoded.Batches, 1)
	assert.Equal(t, list.Batches[0].ID(), decoded.Batches[0].ID())
}

func TestSubmitTransportFailure(t *testing.T) {
	// Unroutable port: the server is never started.
	client, err := certrest.New("http://127.0.0.1:1")
	require.NoError(t, err)

	_, err = client.SubmitBatchList(context.Background(), testBatchList(t))
	require.Error(t, err)
	var terr *certreg.TransportError
	assert.ErrorAs(t, err, &terr)
}

func TestBatchStatus(t *testing.T) {
	server := certtest.NewGatewayServer(t,
		certtest.Invalid("b1", certtest.StatusLink, "t1", "insufficient permission"))
	client, err := certrest.New(server.URL)
	require.NoError(t, err)

	status, err := client.BatchStatus(context.Background(), certtest.StatusLink)
	require.NoError(t, err)
	require.Len(t, status.Data, 1)
	assert.Equal(t, types.StatusInvalid, status.Data[0].Status)
	require.Len(t, status.Data[0].InvalidTransactions, 1)
	assert.Equal(t, "insufficient permission", status.Data[0].InvalidTransactions[0].Message)
	assert.Equal(t, certtest.StatusLink, status.Link)
}
