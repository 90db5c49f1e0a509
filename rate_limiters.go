package oai

import (
	"time"

	"golang.org/x/time/rate"
)

// limitFamily selects which advisory rate limiter applies to a request.
type limitFamily int

const (
	limitNone limitFamily = iota
	limitText
	limitImages
)

// RateLimiters holds token-bucket limiters for the OpenAI API's endpoint
// families, sized to the published default per-minute quotas.
//
// They are not enforced by default. A client built with WithRateLimiters
// waits on the matching family's request limiter before each call; callers
// managing their own pacing can use the limiters directly instead:
//
//	if oai.RateLimits.Text.Requests.Allow() {
//		completion, err := builder.Complete(ctx)
//		...
//	}
type RateLimiters struct {
	// Text covers the completions and edits endpoints.
	Text struct {
		Requests *rate.Limiter
		Tokens   *rate.Limiter
	}

	// Images covers the image generation, edit, and variation endpoints.
	Images struct {
		Requests *rate.Limiter
	}
}

// RateLimits is the default set of rate limiters for the OpenAI API.
//
// When one credential is shared across multiple organizations, build a
// separate set per organization with NewRateLimiters.
var RateLimits = NewRateLimiters()

// NewRateLimiters returns a new set of rate limiters for the OpenAI API.
func NewRateLimiters() *RateLimiters {
	rl := &RateLimiters{}

	rl.Text.Requests = rate.NewLimiter(rate.Every(1*time.Minute), 3500)
	rl.Text.Tokens = rate.NewLimiter(rate.Every(1*time.Minute), 350000)

	rl.Images.Requests = rate.NewLimiter(rate.Every(1*time.Minute), 50)

	return rl
}

// requests returns the request limiter for the given family, or nil when the
// receiver is nil or the family is unlimited.
func (rl *RateLimiters) requests(family limitFamily) *rate.Limiter {
	if rl == nil {
		return nil
	}

	switch family {
	case limitText:
		return rl.Text.Requests
	case limitImages:
		return rl.Images.Requests
	default:
		return nil
	}
}
