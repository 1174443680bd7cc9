package dynaclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/rs/zerolog"

	"github.com/truora/dynaclient/attr"
	"github.com/truora/dynaclient/types"
)

const (
	// DefaultMaxClients caps the simultaneous requests the default transport
	// keeps open against the endpoint.
	DefaultMaxClients = 100

	defaultRegion          = "us-east-1"
	defaultRequestTimeout  = 20 * time.Second
	defaultEndpointPattern = "https://dynamodb.%s.amazonaws.com"
)

// Client talks the DynamoDB JSON protocol. Every operation takes a context
// and blocks until the reply arrives; run operations in goroutines to issue
// them concurrently.
type Client struct {
	transport  Transport
	logger     zerolog.Logger
	decodeOpts []func(*attr.DecodeOptions)
}

// Option configures the client.
type Option func(*Options)

// Options collect the client configuration applied by New.
type Options struct {
	region            string
	profile           string
	accessKey         string
	secretKey         string
	endpoint          string
	maxClients        int
	httpClient        *http.Client
	logger            zerolog.Logger
	transport         Transport
	credentials       aws.CredentialsProvider
	disableIDRecovery bool
}

func defaultOptions() *Options {
	return &Options{
		maxClients: DefaultMaxClients,
		logger:     zerolog.Nop(),
	}
}

// WithRegion sets the region requests are signed for and, unless an endpoint
// override is given, sent to.
func WithRegion(region string) Option {
	return func(o *Options) {
		o.region = region
	}
}

// WithProfile selects a shared configuration profile.
func WithProfile(profile string) Option {
	return func(o *Options) {
		o.profile = profile
	}
}

// WithCredentials sets a static access/secret key pair.
func WithCredentials(accessKey, secretKey string) Option {
	return func(o *Options) {
		o.accessKey = accessKey
		o.secretKey = secretKey
	}
}

// WithCredentialsProvider sets the credentials source directly.
func WithCredentialsProvider(provider aws.CredentialsProvider) Option {
	return func(o *Options) {
		o.credentials = provider
	}
}

// WithEndpoint overrides the service endpoint, for example to point at a
// local emulator.
func WithEndpoint(endpoint string) Option {
	return func(o *Options) {
		o.endpoint = endpoint
	}
}

// WithMaxClients caps the simultaneous requests of the default transport.
// Values below one keep the default.
func WithMaxClients(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.maxClients = n
		}
	}
}

// WithHTTPClient supplies the http.Client the default transport sends with,
// replacing the pooled client built from WithMaxClients.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) {
		o.httpClient = client
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// WithTransport injects the transport directly. Region, credential and
// endpoint options are not used when a transport is given.
func WithTransport(transport Transport) Option {
	return func(o *Options) {
		o.transport = transport
	}
}

// WithIDRecoveryDisabled turns off the UUID recovery heuristic applied to S
// payloads when responses are decoded.
func WithIDRecoveryDisabled() Option {
	return func(o *Options) {
		o.disableIDRecovery = true
	}
}

// New resolves configuration and credentials and returns a ready client.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	c := &Client{
		logger: options.logger,
	}

	if options.disableIDRecovery {
		c.decodeOpts = append(c.decodeOpts, attr.DisableIDRecovery)
	}

	if options.transport != nil {
		c.transport = options.transport
		return c, nil
	}

	transport, err := newDefaultTransport(ctx, options)
	if err != nil {
		return nil, err
	}

	c.transport = transport

	return c, nil
}

func newDefaultTransport(ctx context.Context, options *Options) (*httpTransport, error) {
	cfg, err := loadConfig(ctx, options)
	if err != nil {
		return nil, err
	}

	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	endpoint := options.endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf(defaultEndpointPattern, region)
	}

	client := options.httpClient
	if client == nil {
		client = newPooledHTTPClient(options.maxClients)
	}

	return newHTTPTransport(endpoint, region, cfg.Credentials, client), nil
}

func loadConfig(ctx context.Context, options *Options) (aws.Config, error) {
	var loadOpts []func(*config.LoadOptions) error

	if options.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(options.region))
	}

	if options.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(options.profile))
	}

	if options.accessKey != "" || options.secretKey != "" {
		provider := credentials.NewStaticCredentialsProvider(options.accessKey, options.secretKey, "")
		loadOpts = append(loadOpts, config.WithCredentialsProvider(provider))
	}

	if options.credentials != nil {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(options.credentials))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, mapConfigError(err)
	}

	return cfg, nil
}

func mapConfigError(err error) error {
	var notExist config.SharedConfigProfileNotExistError
	if errors.As(err, &notExist) {
		return types.NewError(types.ErrCodeNoProfile, "shared config profile not found", err)
	}

	return types.NewError(types.ErrCodeConfigError, "unable to load configuration", err)
}

func newPooledHTTPClient(maxClients int) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxConnsPerHost = maxClients
	transport.MaxIdleConnsPerHost = maxClients

	return &http.Client{
		Transport: transport,
		Timeout:   defaultRequestTimeout,
	}
}

// send serializes payload, posts it under the given action and decodes the
// reply into out. A nil out discards the reply body after the envelope check.
func (c *Client) send(ctx context.Context, action string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return types.NewError(types.ErrCodeSerialization, "unable to encode request", err)
	}

	started := time.Now()

	res, err := c.transport.Send(ctx, targetPrefix+action, body)
	if err != nil {
		c.logger.Debug().Str("action", action).Err(err).Msg("request failed")

		return err
	}

	requestID := res.Header.Get(requestIDHeader)

	c.logger.Debug().
		Str("action", action).
		Int("status", res.StatusCode).
		Str("request_id", requestID).
		Dur("duration", time.Since(started)).
		Msg("request complete")

	return c.processResponse(res, requestID, out)
}

func (c *Client) processResponse(res *Response, requestID string, out interface{}) error {
	if len(res.Body) == 0 {
		return types.NewUnmarshalError(nil, "empty response body", nil)
	}

	if res.StatusCode != http.StatusOK {
		return decodeAPIError(res, requestID)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(res.Body, out); err != nil {
		return types.NewUnmarshalError(err, "unable to decode response", res.Body)
	}

	return nil
}

func decodeAPIError(res *Response, requestID string) error {
	var envelope struct {
		Type    string `json:"__type"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(res.Body, &envelope); err != nil {
		return types.NewUnmarshalError(err, "unable to decode error response", res.Body)
	}

	return types.MapAPIError(envelope.Type, envelope.Message, res.StatusCode, requestID)
}
