package oai

import (
	"context"
	"fmt"
)

// CreateCompletionRequest is the serialized body for a completions call,
// assembled by a CompletionBuilder.
//
// https://platform.openai.com/docs/api-reference/completions/create
type CreateCompletionRequest struct {
	// ID of the model to use.
	Model string `json:"model"`

	// The prompt(s) to generate completions for: a string or an array of
	// strings, depending on which setter was used last.
	Prompt any `json:"prompt,omitempty"`

	// The suffix that comes after a completion of inserted text.
	Suffix string `json:"suffix,omitempty"`

	// The maximum number of tokens to generate in the completion. The token
	// count of the prompt plus max_tokens cannot exceed the model's context
	// length. Defaults to 16 if not specified.
	MaxTokens int `json:"max_tokens,omitempty"`

	// What sampling temperature to use. Defaults to 1 if not specified.
	Temperature *float64 `json:"temperature,omitempty"`

	// Nucleus sampling: only the tokens comprising the top_p probability
	// mass are considered. Defaults to 1 if not specified.
	TopP *float64 `json:"top_p,omitempty"`

	// How many completions to generate for each prompt. Defaults to 1.
	N int `json:"n,omitempty"`

	// Include the log probabilities on the logprobs most likely tokens.
	// The maximum value is 5.
	LogProbs int `json:"logprobs,omitempty"`

	// Echo back the prompt in addition to the completion.
	Echo bool `json:"echo,omitempty"`

	// Up to 4 sequences where the API will stop generating further tokens.
	Stop []string `json:"stop,omitempty"`

	// Number between -2.0 and 2.0. Positive values penalize tokens that
	// already appear in the text so far.
	PresencePenalty *float64 `json:"presence_penalty,omitempty"`

	// Number between -2.0 and 2.0. Positive values penalize tokens by their
	// existing frequency in the text so far.
	FrequencyPenalty *float64 `json:"frequency_penalty,omitempty"`

	// Generates best_of completions server-side and returns the one with the
	// highest log probability per token. Defaults to 1.
	BestOf int `json:"best_of,omitempty"`

	// A unique identifier representing the end-user.
	User string `json:"user,omitempty"`
}

// CompletionChoice is one generated completion.
type CompletionChoice struct {
	Text         string `json:"text"`
	Index        int    `json:"index"`
	LogProbs     any    `json:"logprobs"`
	FinishReason string `json:"finish_reason"`
}

// Completion is the parsed response from the completions endpoint.
//
// https://platform.openai.com/docs/api-reference/completions/object
type Completion struct {
	ID      string             `json:"id"`
	Object  string             `json:"object"`
	Created int64              `json:"created"`
	Model   string             `json:"model"`
	Choices []CompletionChoice `json:"choices"`
	Usage   Usage              `json:"usage"`
}

// CompletionBuilder accumulates parameters for a completions call. Each
// setter overwrites any prior value and returns the builder for chaining;
// Complete consumes the builder and performs the request.
//
// A builder is single-use and is not safe for concurrent mutation. Distinct
// builders may be used concurrently.
type CompletionBuilder struct {
	builderCore
	req CreateCompletionRequest
}

// NewCompletion returns a fresh builder for the completions endpoint, scoped
// to the given model. The terminal Complete call reads the API key from the
// environment unless the builder is bound to a client with WithClient.
//
// # Example
//
//	completion, err := oai.NewCompletion(oai.TextDavinci003).
//		Prompt("Ice cream or cookies?").
//		MaxTokens(32).
//		Complete(ctx)
func NewCompletion(model CompletionModel) *CompletionBuilder {
	return &CompletionBuilder{
		req: CreateCompletionRequest{Model: string(model)},
	}
}

// NewCompletion returns a completion builder bound to this client.
func (c *Client) NewCompletion(model CompletionModel) *CompletionBuilder {
	b := NewCompletion(model)
	b.client = c
	return b
}

// WithClient binds the builder to an explicit client instead of one
// constructed from the environment at completion time.
func (b *CompletionBuilder) WithClient(c *Client) *CompletionBuilder {
	b.client = c
	return b
}

// Prompt sets the prompt to generate completions for, encoded as a string.
//
// https://platform.openai.com/docs/api-reference/completions/create#completions/create-prompt
func (b *CompletionBuilder) Prompt(text string) *CompletionBuilder {
	b.req.Prompt = text
	return b
}

// Prompts sets multiple prompts to generate completions for, replacing any
// single prompt set earlier.
func (b *CompletionBuilder) Prompts(texts []string) *CompletionBuilder {
	b.req.Prompt = texts
	return b
}

// Suffix sets the suffix that comes after a completion of inserted text.
func (b *CompletionBuilder) Suffix(text string) *CompletionBuilder {
	b.req.Suffix = text
	return b
}

// MaxTokens bounds the number of tokens generated for the completion. The
// count must be positive; the remote service owns any further range checks
// against the model's context length.
func (b *CompletionBuilder) MaxTokens(count int) *CompletionBuilder {
	if count <= 0 {
		b.setErr(&ConfigError{Reason: fmt.Sprintf("max_tokens must be positive, got %d", count)})
		return b
	}
	b.req.MaxTokens = count
	return b
}

// Temperature sets the sampling temperature. Higher values mean the model
// takes more risks; 0 is argmax sampling. Alter this or TopP, not both.
func (b *CompletionBuilder) Temperature(t float64) *CompletionBuilder {
	b.req.Temperature = &t
	return b
}

// TopP sets the nucleus sampling probability mass. Alter this or
// Temperature, not both.
func (b *CompletionBuilder) TopP(p float64) *CompletionBuilder {
	b.req.TopP = &p
	return b
}

// N sets how many completions to generate for each prompt.
//
// Because this parameter generates many completions, it can quickly consume
// the token quota.
func (b *CompletionBuilder) N(n int) *CompletionBuilder {
	if n <= 0 {
		b.setErr(&ConfigError{Reason: fmt.Sprintf("n must be positive, got %d", n)})
		return b
	}
	b.req.N = n
	return b
}

// LogProbs includes the log probabilities on the n most likely tokens. The
// maximum accepted by the service is 5.
func (b *CompletionBuilder) LogProbs(n int) *CompletionBuilder {
	if n <= 0 {
		b.setErr(&ConfigError{Reason: fmt.Sprintf("logprobs must be positive, got %d", n)})
		return b
	}
	b.req.LogProbs = n
	return b
}

// Echo sets whether to echo back the prompt in addition to the completion.
// Calling it again replaces the previous value.
func (b *CompletionBuilder) Echo(on bool) *CompletionBuilder {
	b.req.Echo = on
	return b
}

// Stop sets one sequence where the API will stop generating further tokens.
// The returned text will not contain the stop sequence.
func (b *CompletionBuilder) Stop(sequence string) *CompletionBuilder {
	b.req.Stop = []string{sequence}
	return b
}

// Stops sets up to 4 sequences where the API will stop generating further
// tokens, replacing any single sequence set earlier.
func (b *CompletionBuilder) Stops(sequences []string) *CompletionBuilder {
	b.req.Stop = sequences
	return b
}

// PresencePenalty sets the presence penalty, between -2.0 and 2.0.
func (b *CompletionBuilder) PresencePenalty(p float64) *CompletionBuilder {
	b.req.PresencePenalty = &p
	return b
}

// FrequencyPenalty sets the frequency penalty, between -2.0 and 2.0.
func (b *CompletionBuilder) FrequencyPenalty(p float64) *CompletionBuilder {
	b.req.FrequencyPenalty = &p
	return b
}

// BestOf generates best_of completions server-side and returns the best.
// When used with N, best_of must be greater than n.
func (b *CompletionBuilder) BestOf(n int) *CompletionBuilder {
	if n <= 0 {
		b.setErr(&ConfigError{Reason: fmt.Sprintf("best_of must be positive, got %d", n)})
		return b
	}
	b.req.BestOf = n
	return b
}

// User sets a unique identifier representing the end-user, which can help
// OpenAI monitor and detect abuse.
func (b *CompletionBuilder) User(id string) *CompletionBuilder {
	b.req.User = id
	return b
}

// Complete sends the accumulated request to the completions endpoint and
// suspends until the response arrives, the request fails, or ctx is done.
// It is the builder's single point of I/O and may be called at most once;
// deferred validation errors and missing credentials surface here, before
// any network call. The builder counts as consumed even when the call
// fails, so a retry needs a fresh builder.
func (b *CompletionBuilder) Complete(ctx context.Context) (*Completion, error) {
	if err := b.consume("completion"); err != nil {
		return nil, err
	}

	c, err := b.resolveClient()
	if err != nil {
		return nil, err
	}

	var out Completion
	if err := c.post(ctx, "/completions", &b.req, &out, limitText); err != nil {
		return nil, err
	}

	return &out, nil
}
