package gateways

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"finco/openocean/common"
	"finco/openocean/errors"

	"github.com/google/go-querystring/query"
)

// ParseBaseURL validates the API origin: an absolute http(s) URL with a host and no query
// or fragment.
func ParseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, errors.Internal(errors.BaseURLError, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Internal(errors.BaseURLError, fmt.Errorf("scheme must be http or https: %q", raw))
	}
	if u.Host == "" {
		return nil, errors.Internal(errors.BaseURLError, fmt.Errorf("missing host: %q", raw))
	}
	if u.RawQuery != "" || u.ForceQuery || u.Fragment != "" {
		return nil, errors.Internal(errors.BaseURLError, fmt.Errorf("query and fragment are not allowed: %q", raw))
	}
	if u.User != nil {
		return nil, errors.Internal(errors.BaseURLError, fmt.Errorf("user info is not allowed: %q", raw))
	}
	return u, nil
}

// JoinPath appends rel to the path of base with exactly one slash between them. Dot
// segments are kept as they are. base is not modified.
func JoinPath(base *url.URL, rel string) *url.URL {
	u := *base
	left := strings.TrimSuffix(base.EscapedPath(), "/")
	right := strings.TrimPrefix(rel, "/")

	joined := left + "/" + right
	if path, err := url.PathUnescape(joined); err == nil {
		u.Path = path
		u.RawPath = joined
	} else {
		u.Path = joined
		u.RawPath = ""
	}
	u.RawQuery = ""
	u.Fragment = ""
	return &u
}

// PathSegment escapes a caller supplied value for use as one path segment.
func PathSegment(s string) string {
	return url.PathEscape(s)
}

// EncodeQuery serializes a parameter struct with its url tags, after validating it.
// An untyped nil yields no values; a nil pointer is rejected.
func EncodeQuery(params interface{}) (url.Values, error) {
	if params == nil {
		return url.Values{}, nil
	}
	if isNil(params) {
		return nil, errors.Internal(errors.EmptyInputsError, fmt.Errorf("query parameters are required"))
	}
	if err := common.ValidateStruct(params); err != nil {
		return nil, errors.Internal(errors.IncorrectInputs, err)
	}
	values, err := query.Values(params)
	if err != nil {
		return nil, errors.Internal(errors.QueryEncodeError, err)
	}
	return values, nil
}

// EncodeBody validates and marshals a JSON request body. A nil body is rejected.
func EncodeBody(params interface{}) ([]byte, error) {
	if isNil(params) {
		return nil, errors.Internal(errors.EmptyInputsError, fmt.Errorf("request body is required"))
	}
	if err := common.ValidateStruct(params); err != nil {
		return nil, errors.Internal(errors.IncorrectInputs, err)
	}
	body, err := json.Marshal(params)
	if err != nil {
		return nil, errors.Internal(errors.MarshallError, err)
	}
	return body, nil
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// BuildURL resolves path against base and attaches the encoded query.
func BuildURL(base *url.URL, path string, values url.Values) string {
	u := JoinPath(base, path)
	if len(values) > 0 {
		u.RawQuery = values.Encode()
	}
	return u.String()
}
