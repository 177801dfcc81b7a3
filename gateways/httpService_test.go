package gateways

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finco/openocean/common"
	"finco/openocean/errors"
	"finco/openocean/models"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *HTTPService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	base, err := ParseBaseURL(srv.URL + "/api")
	require.NoError(t, err)
	return NewHTTPService(base, nil, timeout, "openocean-go/test", nil)
}

func TestDoDecodesSuccess(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v4/bsc/dexList", r.URL.Path)
		assert.Equal(t, "openocean-go/test", r.Header.Get(common.HeaderUserAgent))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"code":200,"data":[{"index":1,"code":"pancake","name":"PancakeSwap"}]}`)
	}, time.Second)

	var resp models.DexListResponse
	require.NoError(t, svc.Do(context.Background(), RequestParams{Method: MethodGet, Path: "/v4/bsc/dexList"}, &resp))
	dexes, err := resp.Result()
	require.NoError(t, err)
	assert.Equal(t, "pancake", (*dexes)[0].Code)
}

func TestDoPostsJSON(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, common.MIMEApplicationJSON, r.Header.Get(common.HeaderContentType))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"orderHash":"0x1","signature":"0x2"}`, string(body))
		_, _ = io.WriteString(w, `{"code":200}`)
	}, time.Second)

	body, err := EncodeBody(&models.DcaCancelParams{OrderHash: "0x1", Signature: "0x2"})
	require.NoError(t, err)
	var resp models.CodeResponse
	require.NoError(t, svc.Do(context.Background(), RequestParams{Method: MethodPost, Path: "/v2/bsc/dca/cancel", Body: body}, &resp))
	assert.NoError(t, resp.Err())
}

func TestDoNon2xxSkipsDecoding(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"not found"}`)
	}, time.Second)

	var resp models.QuoteResponse
	err := svc.Do(context.Background(), RequestParams{Method: MethodGet, Path: "/v4/bsc/quote"}, &resp)

	var he *errors.HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, `{"error":"not found"}`, he.Body)
	assert.Equal(t, "application/json", he.ContentType)
}

func TestDoHTTPErrorExcerpt(t *testing.T) {
	long := strings.Repeat("x", common.BodyExcerptLimit*2)
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, long)
	}, time.Second)

	var resp models.QuoteResponse
	err := svc.Do(context.Background(), RequestParams{Method: MethodGet, Path: "/v4/bsc/quote"}, &resp)
	var he *errors.HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, common.BodyExcerptLimit+len(common.ExcerptEllipsis), len(he.Body))
	assert.True(t, strings.HasSuffix(he.Body, common.ExcerptEllipsis))
}

func TestDoParseErrorOn2xx(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>maintenance</html>`)
	}, time.Second)

	var resp models.QuoteResponse
	err := svc.Do(context.Background(), RequestParams{Method: MethodGet, Path: "/v4/bsc/quote"}, &resp)
	assert.Equal(t, errors.KindParse, errors.KindOf(err))
	var pe *errors.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, `<html>maintenance</html>`, pe.Body)
}

func TestDoTimeout(t *testing.T) {
	release := make(chan struct{})
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, 50*time.Millisecond)
	defer close(release)

	var resp models.QuoteResponse
	err := svc.Do(context.Background(), RequestParams{Method: MethodGet, Path: "/v4/bsc/quote"}, &resp)
	require.Error(t, err)
	assert.True(t, errors.IsTimeout(err))
	assert.Contains(t, err.Error(), "timeout")
}

func TestDoConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base, err := ParseBaseURL(srv.URL)
	require.NoError(t, err)
	srv.Close()

	svc := NewHTTPService(base, &http.Client{}, time.Second, "ua", nil)
	var resp models.QuoteResponse
	err = svc.Do(context.Background(), RequestParams{Method: MethodGet, Path: "/v4/bsc/quote"}, &resp)
	assert.Equal(t, errors.KindNetwork, errors.KindOf(err))
	assert.False(t, errors.IsTimeout(err))
}

func TestDoTracesAtDebug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"code":200,"data":[]}`)
	}))
	t.Cleanup(srv.Close)

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	base, err := ParseBaseURL(srv.URL)
	require.NoError(t, err)
	svc := NewHTTPService(base, nil, time.Second, "openocean-go/test", logger)

	var resp models.DexListResponse
	require.NoError(t, svc.Do(context.Background(), RequestParams{Method: MethodGet, Path: "/v4/bsc/dexList"}, &resp))

	var traced *log.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "openocean request" {
			traced = e
		}
	}
	require.NotNil(t, traced)
	assert.Equal(t, log.DebugLevel, traced.Level)
	assert.Equal(t, http.StatusOK, traced.Data["status"])
	assert.Equal(t, MethodGet, traced.Data["method"])

	// a transport failure is returned, not logged
	hook.Reset()
	srv.Close()
	err = svc.Do(context.Background(), RequestParams{Method: MethodGet, Path: "/v4/bsc/dexList"}, &resp)
	assert.Equal(t, errors.KindNetwork, errors.KindOf(err))
	for _, e := range hook.AllEntries() {
		assert.NotEqual(t, "openocean request", e.Message)
	}
}
