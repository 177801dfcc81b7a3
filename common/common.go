package common

import "net/http"

// Exception is a failed gateway request, written by SendErrorResponse.
type Exception struct {
	Code      int    `json:"code"`
	ErrorType string `json:"type"`
	Message   string `json:"message"`
}

type ApiError struct {
	Status bool         `json:"status"`
	Err    ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Type    string      `json:"type"`
	Message interface{} `json:"message"`
}

type ApiSuccess struct {
	Status bool        `json:"status"`
	Result interface{} `json:"result"`
}

// Error types reported by the gateway
const (
	ValidationErrorType     = "VALIDATION_ERROR"
	UpstreamErrorType       = "UPSTREAM_ERROR"
	UpstreamTimeoutType     = "UPSTREAM_TIMEOUT"
	UpstreamRejectedType    = "UPSTREAM_REJECTED"
	InternalServerErrorType = "INTERNAL_ERROR"
)

// ErrorTypeMap is the error type written for a bare status code.
var ErrorTypeMap = map[int]string{
	http.StatusBadRequest:          ValidationErrorType,
	http.StatusUnprocessableEntity: UpstreamRejectedType,
	http.StatusBadGateway:          UpstreamErrorType,
	http.StatusGatewayTimeout:      UpstreamTimeoutType,
	http.StatusInternalServerError: InternalServerErrorType,
}

// ChainInfo describes one supported chain on the chains route.
type ChainInfo struct {
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	ChainID int64  `json:"chainId,omitempty"`
	EVM     bool   `json:"evm"`
}

// HealthStatus is the body of the health route.
type HealthStatus struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Upstream string `json:"upstream"`
}
