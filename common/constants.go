package common

import (
	"time"
)

// Version is reported in the default user agent.
const Version = "0.3.0"

// Client defaults
const (
	DefaultBaseURL   = "https://open-api.openocean.finance"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "openocean-go/" + Version
)

// BodyExcerptLimit caps the number of characters of a response body kept on errors.
const BodyExcerptLimit = 4096

// ExcerptEllipsis marks a truncated body excerpt.
const ExcerptEllipsis = "..."

// SuccessCode is the envelope code the API uses for a successful call.
const SuccessCode = 200

// Header names and values
const (
	HeaderContentType   = "Content-Type"
	HeaderUserAgent     = "User-Agent"
	HeaderAccept        = "Accept"
	MIMEApplicationJSON = "application/json"
)

// Environment variables read by the gateway program, never by the client library.
const (
	EnvPrefix     = "OPENOCEAN"
	LambdaRuntime = "AWS_LAMBDA_FUNCTION_NAME"
)

// Retry policy used by the gateway for timeout classified failures.
const (
	RetryMaxElapsed     = 10 * time.Second
	RetryInitialBackoff = 250 * time.Millisecond
)
