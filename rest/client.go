// Package certrest provides the REST transport to the registry
// gateway: batch list submission and status polling.
package certrest

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/certsource/certreg"
	"github.com/certsource/certreg/types"
)

const (
	batchesPath      = "/api/batches"
	statusPathPrefix = "/api"

	contentTypeOctetStream = "application/octet-stream"
)

// Compile-time interface check.
var _ certreg.Gateway = (*Client)(nil)

// Client submits encoded batch lists to the gateway and fetches batch
// statuses. Submission resolves when the gateway has accepted (not
// committed) the batch list.
type Client struct {
	baseURL string
	http    *resty.Client
}

// New validates the base URL and returns a Client. Only the plain
// http scheme is supported; any other scheme, or a missing one, is
// rejected here before any network I/O.
func New(baseURL string) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, &certreg.InputError{Msg: "invalid gateway URL: " + baseURL}
	}
	switch parsed.Scheme {
	case "http":
	case "":
		return nil, &certreg.SchemeError{URL: baseURL}
	default:
		return nil, &certreg.SchemeError{URL: baseURL, Scheme: parsed.Scheme}
	}

	base := strings.TrimSuffix(baseURL, "/")
	return &Client{
		baseURL: base,
		http:    resty.New().SetBaseURL(base),
	}, nil
}

// BaseURL returns the gateway base URL the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// acceptance is the gateway's submission response body.
type acceptance struct {
	Link string `json:"link"`
}

// SubmitBatchList POSTs the encoded batch list to the batches endpoint
// and returns the status link from the acceptance body.
func (c *Client) SubmitBatchList(ctx context.Context, list *types.BatchList) (string, error) {
	body, err := list.Encode()
	if err != nil {
		return "", &certreg.SerializationError{What: "batch list", Err: err}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentTypeOctetStream).
		SetContentLength(true).
		SetBody(body).
		Post(batchesPath)
	if err != nil {
		return "", &certreg.TransportError{Op: "submit batch list", Err: err}
	}
	if resp.IsError() {
		return "", &certreg.ResponseParseError{
			Op:     "submit batch list",
			Reason: "gateway returned " + resp.Status(),
		}
	}

	var accepted acceptance
	if err := json.Unmarshal(resp.Body(), &accepted); err != nil {
		return "", &certreg.ResponseParseError{Op: "submit batch list", Err: err}
	}
	if accepted.Link == "" {
		return "", &certreg.ResponseParseError{
			Op:     "submit batch list",
			Reason: "acceptance body carries no link",
		}
	}
	return accepted.Link, nil
}

// BatchStatus GETs the status of a prior submission. The link already
// carries its own query prefix; the appended wait parameter asks the
// gateway to block server-side until the status changes, which lowers
// polling frequency without changing the poller's contract.
func (c *Client) BatchStatus(ctx context.Context, link string) (*types.StatusData, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(statusPathPrefix + link + "&wait=true")
	if err != nil {
		return nil, &certreg.TransportError{Op: "fetch batch status", Err: err}
	}
	if resp.IsError() {
		return nil, &certreg.ResponseParseError{
			Op:     "fetch batch status",
			Reason: "gateway returned " + resp.Status(),
		}
	}

	var status types.StatusData
	if err := json.Unmarshal(resp.Body(), &status); err != nil {
		return nil, &certreg.ResponseParseError{Op: "fetch batch status", Err: err}
	}
	return &status, nil
}
