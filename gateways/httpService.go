package gateways

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"finco/openocean/codec"
	"finco/openocean/common"
	"finco/openocean/errors"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

// HTTP Method Constants
const (
	// MethodGet HTTP method
	MethodGet = "GET"

	// MethodPost HTTP method
	MethodPost = "POST"
)

// RequestParams describes one API call. Path is relative to the base URL.
type RequestParams struct {
	Method      string
	Path        string
	QueryParams url.Values
	Body        []byte
}

// HTTPService sends requests to one API origin and decodes the responses.
// It is safe for concurrent use.
type HTTPService struct {
	client  *resty.Client
	baseURL *url.URL
	timeout time.Duration
	logger  log.FieldLogger
}

// NewHTTPService wraps httpClient, or a fresh client when nil. The timeout is applied per
// request through the request context, so httpClient is used as given.
func NewHTTPService(baseURL *url.URL, httpClient *http.Client, timeout time.Duration, userAgent string, logger log.FieldLogger) *HTTPService {
	var client *resty.Client
	if httpClient != nil {
		client = resty.NewWithClient(httpClient)
	} else {
		client = resty.New()
	}
	if logger == nil {
		logger = common.DiscardLogger()
	}
	client.SetLogger(logger).
		SetHeader(common.HeaderAccept, common.MIMEApplicationJSON).
		SetHeader(common.HeaderUserAgent, userAgent)

	return &HTTPService{
		client:  client,
		baseURL: baseURL,
		timeout: timeout,
		logger:  logger,
	}
}

// BaseURL returns a copy of the configured origin.
func (s *HTTPService) BaseURL() *url.URL {
	u := *s.baseURL
	return &u
}

// Do runs fetch, status check and decode in that order:
//   - transport failure is *errors.NetworkError
//   - a non 2xx status is *errors.HTTPError and the body is not decoded
//   - a 2xx body that does not fit out is *errors.ParseError
func (s *HTTPService) Do(ctx context.Context, params RequestParams, out interface{}) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	endpoint := BuildURL(s.baseURL, params.Path, params.QueryParams)
	req := s.client.R().SetContext(ctx)
	if params.Body != nil {
		req.SetHeader(common.HeaderContentType, common.MIMEApplicationJSON).
			SetBody(params.Body)
	}

	started := time.Now()
	resp, err := req.Execute(params.Method, endpoint)
	if err != nil {
		return errors.Network(err)
	}
	s.logger.WithFields(log.Fields{
		"method":   params.Method,
		"url":      endpoint,
		"status":   resp.StatusCode(),
		"duration": time.Since(started).String(),
	}).Debug("openocean request")

	if !resp.IsSuccess() {
		return errors.HTTP(resp.StatusCode(), resp.Body(), resp.Header().Get(common.HeaderContentType))
	}
	return codec.Decode(resp.Body(), out)
}
