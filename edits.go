package oai

import (
	"context"
	"fmt"
)

// CreateEditRequest is the serialized body for an edits call, assembled by
// an EditBuilder.
//
// https://platform.openai.com/docs/api-reference/edits/create
type CreateEditRequest struct {
	// ID of the model to use.
	Model string `json:"model"`

	// The instruction that tells the model how to edit the input.
	Instruction string `json:"instruction"`

	// The input text to generate edits for.
	Input string `json:"input,omitempty"`

	// How many edits to generate for the input and instruction.
	N int `json:"n,omitempty"`

	// What sampling temperature to use.
	Temperature *float64 `json:"temperature,omitempty"`

	// Nucleus sampling probability mass.
	TopP *float64 `json:"top_p,omitempty"`
}

// EditChoice is one generated edit.
type EditChoice struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
}

// Edit is the parsed response from the edits endpoint.
type Edit struct {
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Choices []EditChoice `json:"choices"`
	Usage   Usage        `json:"usage"`
}

// EditBuilder accumulates parameters for an edits call. Same contract as
// CompletionBuilder: chained setters, single terminal call, single-use.
type EditBuilder struct {
	builderCore
	req CreateEditRequest
}

// NewEdit returns a fresh builder for the edits endpoint, scoped to the
// given model and instruction.
//
// # Example
//
//	edit, err := oai.NewEdit(oai.TextDavinciEdit001, "Fix the spelling and grammar mistakes").
//		Input("Im bad at splling, hopefuly AI can fox this.").
//		Edit(ctx)
func NewEdit(model EditModel, instruction string) *EditBuilder {
	return &EditBuilder{
		req: CreateEditRequest{
			Model:       string(model),
			Instruction: instruction,
		},
	}
}

// NewEdit returns an edit builder bound to this client.
func (c *Client) NewEdit(model EditModel, instruction string) *EditBuilder {
	b := NewEdit(model, instruction)
	b.client = c
	return b
}

// WithClient binds the builder to an explicit client.
func (b *EditBuilder) WithClient(c *Client) *EditBuilder {
	b.client = c
	return b
}

// Input sets the text to generate edits for.
func (b *EditBuilder) Input(text string) *EditBuilder {
	b.req.Input = text
	return b
}

// N sets how many edits to generate for the input and instruction.
func (b *EditBuilder) N(n int) *EditBuilder {
	if n <= 0 {
		b.setErr(&ConfigError{Reason: fmt.Sprintf("n must be positive, got %d", n)})
		return b
	}
	b.req.N = n
	return b
}

// Temperature sets the sampling temperature. Alter this or TopP, not both.
func (b *EditBuilder) Temperature(t float64) *EditBuilder {
	b.req.Temperature = &t
	return b
}

// TopP sets the nucleus sampling probability mass.
func (b *EditBuilder) TopP(p float64) *EditBuilder {
	b.req.TopP = &p
	return b
}

// Edit sends the accumulated request to the edits endpoint and suspends
// until the response arrives, the request fails, or ctx is done. May be
// called at most once per builder; the builder counts as consumed even
// when the call fails, so a retry needs a fresh builder.
func (b *EditBuilder) Edit(ctx context.Context) (*Edit, error) {
	if err := b.consume("edit"); err != nil {
		return nil, err
	}

	c, err := b.resolveClient()
	if err != nil {
		return nil, err
	}

	var out Edit
	if err := c.post(ctx, "/edits", &b.req, &out, limitText); err != nil {
		return nil, err
	}

	return &out, nil
}
