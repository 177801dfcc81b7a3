// Package client is a typed client for the OpenOcean aggregation API.
//
// Every method sends exactly one request and returns either the decoded response or one
// error from the errors package (*errors.NetworkError, *errors.HTTPError,
// *errors.ParseError or *errors.InternalError). A successful return only means the
// response was well formed; the envelope code is checked by Result on the response.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"finco/openocean/common"
	"finco/openocean/errors"
	"finco/openocean/gateways"

	log "github.com/sirupsen/logrus"
)

// Config of a Client. Zero fields take the defaults of DefaultConfig.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// HTTPClient is used as given; the timeout is applied per request.
	HTTPClient *http.Client
	// Logger receives debug traces of each request. Nothing is logged by default.
	Logger log.FieldLogger
}

func DefaultConfig() Config {
	return Config{
		BaseURL:   common.DefaultBaseURL,
		Timeout:   common.DefaultTimeout,
		UserAgent: common.DefaultUserAgent,
	}
}

// ConfigFrom maps the client section of a loaded configuration file.
func ConfigFrom(cfg common.ClientConfigurations) Config {
	return Config{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
	}
}

// Client is immutable once built and safe for concurrent use.
type Client struct {
	http *gateways.HTTPService

	common service

	Swap       *SwapService
	Gasless    *GaslessService
	DCA        *DCAService
	LimitOrder *LimitOrderService
	Zap        *ZapService
	SweepSwap  *SweepSwapService
	Ticket     *TicketService
}

type service struct {
	client *Client
}

// New validates cfg and builds a Client. A malformed base URL is an *errors.InternalError.
func New(cfg Config) (*Client, error) {
	defaults := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if cfg.Timeout < 0 {
		return nil, errors.Internal(errors.ClientError, errors.New("timeout must not be negative"))
	}

	base, err := gateways.ParseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		http: gateways.NewHTTPService(base, cfg.HTTPClient, cfg.Timeout, cfg.UserAgent, cfg.Logger),
	}
	c.common.client = c
	c.Swap = (*SwapService)(&c.common)
	c.Gasless = (*GaslessService)(&c.common)
	c.DCA = (*DCAService)(&c.common)
	c.LimitOrder = (*LimitOrderService)(&c.common)
	c.Zap = (*ZapService)(&c.common)
	c.SweepSwap = (*SweepSwapService)(&c.common)
	c.Ticket = (*TicketService)(&c.common)
	return c, nil
}

// NewDefault is New(DefaultConfig()).
func NewDefault() (*Client, error) {
	return New(DefaultConfig())
}

// BaseURL returns the API origin requests are sent to.
func (c *Client) BaseURL() string {
	return c.http.BaseURL().String()
}

// get sends a GET with params encoded as the query string. params may be nil.
func (c *Client) get(ctx context.Context, path string, params interface{}, out interface{}) error {
	values, err := gateways.EncodeQuery(params)
	if err != nil {
		return err
	}
	return c.http.Do(ctx, gateways.RequestParams{
		Method:      gateways.MethodGet,
		Path:        path,
		QueryParams: values,
	}, out)
}

// post sends params as a JSON body.
func (c *Client) post(ctx context.Context, path string, params interface{}, out interface{}) error {
	body, err := gateways.EncodeBody(params)
	if err != nil {
		return err
	}
	return c.http.Do(ctx, gateways.RequestParams{
		Method: gateways.MethodPost,
		Path:   path,
		Body:   body,
	}, out)
}

func getJSON[T any](ctx context.Context, c *Client, path string, params interface{}) (*T, error) {
	out := new(T)
	if err := c.get(ctx, path, params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func postJSON[T any](ctx context.Context, c *Client, path string, params interface{}) (*T, error) {
	out := new(T)
	if err := c.post(ctx, path, params, out); err != nil {
		return nil, err
	}
	return out, nil
}

// chainPath renders a path template whose first verb is the chain slug. The remaining
// segments are path escaped, e.g. chainPath(common.Bsc, "/v2/%s/dca/address/%s", addr).
func chainPath(chain common.Chain, format string, segments ...string) (string, error) {
	slug, err := chain.Slug()
	if err != nil {
		return "", errors.Internal(errors.UnsupportedChainError, err)
	}
	args := make([]interface{}, 0, len(segments)+1)
	args = append(args, slug)
	for _, s := range segments {
		if s == "" {
			return "", errors.Internal(errors.EmptyInputsError, errors.New("empty path segment"))
		}
		args = append(args, gateways.PathSegment(s))
	}
	return fmt.Sprintf(format, args...), nil
}
