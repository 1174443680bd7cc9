package dynaclient

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"

	"github.com/truora/dynaclient/types"
)

const (
	contentType  = "application/x-amz-json-1.0"
	targetPrefix = "DynamoDB_20120810."
	serviceName  = "dynamodb"

	requestIDHeader = "X-Amzn-Requestid"
)

// Response is the raw protocol reply handed back by a Transport.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport delivers one protocol request to the service and returns the raw
// reply. Implementations must not interpret the response envelope; the client
// does that.
type Transport interface {
	Send(ctx context.Context, target string, body []byte) (*Response, error)
}

// httpTransport is the default Transport: a SigV4-signed POST / against the
// endpoint.
type httpTransport struct {
	endpoint    string
	region      string
	credentials aws.CredentialsProvider
	signer      *v4.Signer
	client      *http.Client
}

func newHTTPTransport(endpoint, region string, credentials aws.CredentialsProvider, client *http.Client) *httpTransport {
	return &httpTransport{
		endpoint:    endpoint,
		region:      region,
		credentials: credentials,
		signer:      v4.NewSigner(),
		client:      client,
	}
}

// Send posts one request with the protocol headers and a SigV4 signature.
func (t *httpTransport) Send(ctx context.Context, target string, body []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, types.NewError(types.ErrCodeRequestError, "unable to build request", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Amz-Target", target)

	if err := t.sign(ctx, req, body); err != nil {
		return nil, err
	}

	res, err := t.client.Do(req)
	if err != nil {
		return nil, mapTransportError(err)
	}

	defer func() {
		_ = res.Body.Close()
	}()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, types.NewError(types.ErrCodeRequestError, "unable to read response body", err)
	}

	return &Response{
		StatusCode: res.StatusCode,
		Header:     res.Header,
		Body:       payload,
	}, nil
}

func (t *httpTransport) sign(ctx context.Context, req *http.Request, body []byte) error {
	creds, err := t.credentials.Retrieve(ctx)
	if err != nil {
		return types.NewError(types.ErrCodeNoCredentials, "unable to retrieve credentials", err)
	}

	hash := sha256.Sum256(body)

	err = t.signer.SignHTTP(ctx, creds, req, hex.EncodeToString(hash[:]), serviceName, t.region, time.Now().UTC())
	if err != nil {
		return types.NewError(types.ErrCodeRequestError, "unable to sign request", err)
	}

	return nil
}

func mapTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return types.NewError(types.ErrCodeRequestTimeout, "request timed out", err)
	}

	return types.NewError(types.ErrCodeRequestError, "request failed", err)
}
