package models

import (
	"fmt"

	"finco/openocean/common"
)

// LogicalError is a call that succeeded at the HTTP level but was refused by the API,
// signalled by a non success envelope code.
type LogicalError struct {
	Code    int
	Message string
}

func (e *LogicalError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: code=%d", e.Code)
	}
	return fmt.Sprintf("api error: code=%d, message=%s", e.Code, e.Message)
}

func result[T any](code int, data *T, message string) (*T, error) {
	if code != common.SuccessCode {
		return nil, &LogicalError{Code: code, Message: message}
	}
	if data == nil {
		return nil, &LogicalError{Code: code, Message: "response carries no data"}
	}
	return data, nil
}

// Envelopes differ between API versions and are declared separately on purpose.

// BaseResponse is the v4 envelope: {code, data, message}.
type BaseResponse[T any] struct {
	Code    int    `json:"code"`
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Result returns Data, or a *LogicalError when the envelope reports a failure.
func (r *BaseResponse[T]) Result() (*T, error) {
	return result(r.Code, r.Data, r.Message)
}

// MsgResponse is the envelope of gasless, dca, zap and ticket endpoints: {code, data, msg}.
type MsgResponse[T any] struct {
	Code int    `json:"code"`
	Data *T     `json:"data,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

func (r *MsgResponse[T]) Result() (*T, error) {
	return result(r.Code, r.Data, r.Msg)
}

// ErrorMsgResponse is the limit order envelope: {code, data, errorMsg}.
type ErrorMsgResponse[T any] struct {
	Code     int    `json:"code"`
	Data     *T     `json:"data,omitempty"`
	ErrorMsg string `json:"errorMsg,omitempty"`
}

func (r *ErrorMsgResponse[T]) Result() (*T, error) {
	return result(r.Code, r.Data, r.ErrorMsg)
}

// CodeResponse carries only a status code.
type CodeResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// Err returns a *LogicalError when Code is not the success code.
func (r *CodeResponse) Err() error {
	if r.Code != common.SuccessCode {
		return &LogicalError{Code: r.Code, Message: r.Message}
	}
	return nil
}
