package oai

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ConfigError reports a problem detected locally, before any network call is
// attempted: a missing credential, an invalid request parameter, or a builder
// that was already consumed.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "oai: " + e.Reason
}

// TransportError reports a network-level failure: connection refused,
// timeout, DNS resolution, or a canceled context. It unwraps to the
// underlying error, so checks like errors.Is(err, context.DeadlineExceeded)
// work as expected.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "oai: transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a well-formed error response from the OpenAI API. It carries
// the HTTP status and the error envelope's fields verbatim for caller
// diagnosis.
//
// https://platform.openai.com/docs/guides/error-codes
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Type, Code, and Message are taken from the response's error envelope.
	Type    string
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("oai: API error: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// DecodeError reports a response body that does not match the expected
// result shape. It unwraps to the underlying decoding error.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "oai: decode response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// apiErrorFromResponse builds an APIError from a non-200 response. The
// OpenAI API wraps errors in a {"error": {...}} envelope; when the body is
// not that envelope, the raw body is kept as the message so nothing is lost.
func apiErrorFromResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}

	var envelope struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
			Code    string `json:"code"`
		} `json:"error"`
	}

	if json.Unmarshal(body, &envelope) == nil && envelope.Error.Message != "" {
		apiErr.Type = envelope.Error.Type
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	} else {
		apiErr.Message = string(body)
	}

	return apiErr
}
