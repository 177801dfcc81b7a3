package errors

import (
	"context"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"finco/openocean/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

var _ net.Error = timeoutErr{}

func TestNetworkClassification(t *testing.T) {
	deadline := Network(fmt.Errorf("Get \"https://x\": %w", context.DeadlineExceeded))
	assert.True(t, deadline.Timeout)
	assert.Equal(t, CauseTimeout, deadline.Cause)
	assert.Contains(t, deadline.Error(), "timeout")

	netTimeout := Network(&net.OpError{Op: "dial", Err: timeoutErr{}})
	assert.True(t, netTimeout.Timeout)
	assert.True(t, IsTimeout(netTimeout))

	canceled := Network(context.Canceled)
	assert.False(t, canceled.Timeout)
	assert.Equal(t, CauseCanceled, canceled.Cause)

	refused := Network(fmt.Errorf("dial tcp 127.0.0.1:1: connect: connection refused"))
	assert.False(t, refused.Timeout)
	assert.Equal(t, "network error: dial tcp 127.0.0.1:1: connect: connection refused", refused.Error())
}

func TestKindOfIsExhaustive(t *testing.T) {
	cases := []struct {
		err  error
		kind Kind
	}{
		{Network(context.DeadlineExceeded), KindNetwork},
		{HTTP(404, []byte(`{"error":"not found"}`), "application/json"), KindHTTP},
		{Parse(fmt.Errorf("bad"), "data.code", nil), KindParse},
		{Internal(UnsupportedChainError, fmt.Errorf("chain 99")), KindInternal},
		{fmt.Errorf("wrapped: %w", Internal(BaseURLError, fmt.Errorf("x"))), KindInternal},
		{fmt.Errorf("plain"), KindUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, KindOf(tc.err), tc.err.Error())
	}
}

func TestTypeSwitch(t *testing.T) {
	describe := func(err Error) string {
		switch e := err.(type) {
		case *NetworkError:
			return "network:" + e.Cause
		case *HTTPError:
			return fmt.Sprintf("http:%d", e.Status)
		case *ParseError:
			return "parse:" + e.Path
		case *InternalError:
			return "internal"
		}
		return "unreachable"
	}
	assert.Equal(t, "http:502", describe(HTTP(502, nil, "")))
	assert.Equal(t, "parse:data[1]", describe(Parse(fmt.Errorf("x"), "data[1]", nil)))
}

func TestHTTPErrorKeepsBodyVerbatim(t *testing.T) {
	e := HTTP(404, []byte(`{"error":"not found"}`), "application/json; charset=utf-8")
	assert.Equal(t, 404, e.Status)
	assert.Equal(t, `{"error":"not found"}`, e.Body)
	assert.Equal(t, "application/json; charset=utf-8", e.ContentType)
}

func TestInternalMessageFormat(t *testing.T) {
	e := Internal(UnsupportedChainError, fmt.Errorf("unsupported chain: 99"))
	assert.Equal(t, "internal error: Error unsupported chain : unsupported chain: 99", e.Error())
}

func TestParseErrorMessage(t *testing.T) {
	assert.Equal(t, "parse error at data.x: boom", Parse(fmt.Errorf("boom"), "data.x", nil).Error())
	assert.Equal(t, "parse error: boom", Parse(fmt.Errorf("boom"), "", nil).Error())
}

func TestExcerpt(t *testing.T) {
	limit := common.BodyExcerptLimit

	short := strings.Repeat("a", limit)
	assert.Equal(t, short, Excerpt([]byte(short)))

	long := strings.Repeat("b", limit+10)
	got := Excerpt([]byte(long))
	assert.Equal(t, strings.Repeat("b", limit)+common.ExcerptEllipsis, got)

	// multi byte characters count once each
	wide := strings.Repeat("é", limit)
	assert.Equal(t, wide, Excerpt([]byte(wide)))
	wider := strings.Repeat("é", limit+1)
	require.Equal(t, strings.Repeat("é", limit)+common.ExcerptEllipsis, Excerpt([]byte(wider)))
}

func TestNetworkWithClientTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()
	assert.True(t, IsTimeout(Network(ctx.Err())))
}
