package oai

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/shoenig/test/must"
)

func errorResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestAPIErrorFromEnvelope(t *testing.T) {
	resp := errorResponse(http.StatusTooManyRequests,
		`{"error": {"message": "Rate limit reached", "type": "requests", "code": "rate_limit_exceeded"}}`)

	err := apiErrorFromResponse(resp)

	apiErr, ok := err.(*APIError)
	must.True(t, ok)
	must.Eq(t, http.StatusTooManyRequests, apiErr.StatusCode)
	must.Eq(t, "Rate limit reached", apiErr.Message)
	must.Eq(t, "requests", apiErr.Type)
	must.Eq(t, "rate_limit_exceeded", apiErr.Code)
	must.StrContains(t, apiErr.Error(), "429")
	must.StrContains(t, apiErr.Error(), "Rate limit reached")
}

func TestAPIErrorFromNonEnvelopeBody(t *testing.T) {
	// Proxies and gateways answer with whatever they like; the raw body is
	// kept as the message so nothing is lost.
	resp := errorResponse(http.StatusBadGateway, "upstream unavailable")

	err := apiErrorFromResponse(resp)

	apiErr, ok := err.(*APIError)
	must.True(t, ok)
	must.Eq(t, http.StatusBadGateway, apiErr.StatusCode)
	must.Eq(t, "upstream unavailable", apiErr.Message)
	must.Eq(t, "", apiErr.Code)
}

func TestErrorMessages(t *testing.T) {
	must.StrContains(t, (&ConfigError{Reason: "API key is not set"}).Error(), "API key is not set")
	must.StrContains(t, (&TransportError{Err: io.ErrUnexpectedEOF}).Error(), "transport")
	must.StrContains(t, (&DecodeError{Err: io.ErrUnexpectedEOF}).Error(), "decode")
}
