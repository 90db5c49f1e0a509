package oai

import (
	"context"
	"fmt"
)

// Image sizes accepted by the images endpoint.
const (
	ImageSize256  = "256x256"
	ImageSize512  = "512x512"
	ImageSize1024 = "1024x1024"
)

// Image response formats accepted by the images endpoint.
const (
	ImageFormatURL     = "url"
	ImageFormatB64JSON = "b64_json"
)

// CreateImageRequest is the serialized body for an images call. The three
// image operations (generations, edits, variations) share it; unset fields
// are omitted.
//
// https://platform.openai.com/docs/api-reference/images
type CreateImageRequest struct {
	// A text description of the desired image(s). Max of 1,000 characters.
	Prompt string `json:"prompt,omitempty"`

	// The image to edit or vary.
	Image string `json:"image,omitempty"`

	// An additional image whose fully transparent areas indicate where the
	// image should be edited. Must have the same dimensions as image.
	Mask string `json:"mask,omitempty"`

	// How many images to generate. Must be between 1 and 10.
	N int `json:"n,omitempty"`

	// The size of the generated images: 256x256, 512x512, or 1024x1024.
	Size string `json:"size,omitempty"`

	// The format of the returned images: url or b64_json.
	ResponseFormat string `json:"response_format,omitempty"`

	// A unique identifier representing the end-user.
	User string `json:"user,omitempty"`
}

// ImageData is one generated image, as a URL or base64-encoded payload
// depending on the requested response format.
type ImageData struct {
	URL     string `json:"url,omitempty"`
	B64JSON string `json:"b64_json,omitempty"`
}

// Images is the parsed response from the images endpoint.
type Images struct {
	Created int64       `json:"created"`
	Data    []ImageData `json:"data"`
}

// imageBuilder is the shared core of the three image request builders.
type imageBuilder struct {
	builderCore
	req CreateImageRequest
}

func (b *imageBuilder) setN(n int) {
	if n < 1 || n > 10 {
		b.setErr(&ConfigError{Reason: fmt.Sprintf("n must be between 1 and 10, got %d", n)})
		return
	}
	b.req.N = n
}

func (b *imageBuilder) done(ctx context.Context, path string) (*Images, error) {
	if err := b.consume("image"); err != nil {
		return nil, err
	}

	c, err := b.resolveClient()
	if err != nil {
		return nil, err
	}

	var out Images
	if err := c.post(ctx, path, &b.req, &out, limitImages); err != nil {
		return nil, err
	}

	return &out, nil
}

// ImageGenerationBuilder accumulates parameters for generating images from a
// text prompt.
type ImageGenerationBuilder struct {
	imageBuilder
}

// NewImageGeneration returns a builder that generates image(s) for the given
// prompt.
//
// # Example
//
//	images, err := oai.NewImageGeneration("A gopher mascot made of brass gears").
//		N(3).
//		Size(oai.ImageSize256).
//		Done(ctx)
func NewImageGeneration(prompt string) *ImageGenerationBuilder {
	b := &ImageGenerationBuilder{}
	b.req.Prompt = prompt
	return b
}

// NewImageGeneration returns an image generation builder bound to this client.
func (c *Client) NewImageGeneration(prompt string) *ImageGenerationBuilder {
	b := NewImageGeneration(prompt)
	b.client = c
	return b
}

// WithClient binds the builder to an explicit client.
func (b *ImageGenerationBuilder) WithClient(c *Client) *ImageGenerationBuilder {
	b.client = c
	return b
}

// N sets how many images to generate, between 1 and 10.
func (b *ImageGenerationBuilder) N(n int) *ImageGenerationBuilder {
	b.setN(n)
	return b
}

// Size sets the size of the generated images.
func (b *ImageGenerationBuilder) Size(size string) *ImageGenerationBuilder {
	b.req.Size = size
	return b
}

// ResponseFormat sets the format of the returned images, url or b64_json.
func (b *ImageGenerationBuilder) ResponseFormat(format string) *ImageGenerationBuilder {
	b.req.ResponseFormat = format
	return b
}

// User sets a unique identifier representing the end-user.
func (b *ImageGenerationBuilder) User(id string) *ImageGenerationBuilder {
	b.req.User = id
	return b
}

// Done sends the request to the image generations endpoint. May be called
// at most once per builder; the builder counts as consumed even when the
// call fails, so a retry needs a fresh builder.
func (b *ImageGenerationBuilder) Done(ctx context.Context) (*Images, error) {
	return b.done(ctx, "/images/generations")
}

// ImageEditBuilder accumulates parameters for editing or extending an image
// according to a prompt.
type ImageEditBuilder struct {
	imageBuilder
}

// NewImageEdit returns a builder that creates an edited or extended image
// given an original image and a prompt.
func NewImageEdit(image, prompt string) *ImageEditBuilder {
	b := &ImageEditBuilder{}
	b.req.Image = image
	b.req.Prompt = prompt
	return b
}

// NewImageEdit returns an image edit builder bound to this client.
func (c *Client) NewImageEdit(image, prompt string) *ImageEditBuilder {
	b := NewImageEdit(image, prompt)
	b.client = c
	return b
}

// WithClient binds the builder to an explicit client.
func (b *ImageEditBuilder) WithClient(c *Client) *ImageEditBuilder {
	b.client = c
	return b
}

// Mask sets an additional image whose fully transparent areas indicate
// where the image should be edited.
func (b *ImageEditBuilder) Mask(mask string) *ImageEditBuilder {
	b.req.Mask = mask
	return b
}

// N sets how many images to generate, between 1 and 10.
func (b *ImageEditBuilder) N(n int) *ImageEditBuilder {
	b.setN(n)
	return b
}

// Size sets the size of the generated images.
func (b *ImageEditBuilder) Size(size string) *ImageEditBuilder {
	b.req.Size = size
	return b
}

// ResponseFormat sets the format of the returned images, url or b64_json.
func (b *ImageEditBuilder) ResponseFormat(format string) *ImageEditBuilder {
	b.req.ResponseFormat = format
	return b
}

// User sets a unique identifier representing the end-user.
func (b *ImageEditBuilder) User(id string) *ImageEditBuilder {
	b.req.User = id
	return b
}

// Done sends the request to the image edits endpoint. May be called at most
// once per builder; the builder counts as consumed even when the call fails,
// so a retry needs a fresh builder.
func (b *ImageEditBuilder) Done(ctx context.Context) (*Images, error) {
	return b.done(ctx, "/images/edits")
}

// ImageVariationBuilder accumulates parameters for creating variations of a
// given image.
type ImageVariationBuilder struct {
	imageBuilder
}

// NewImageVariation returns a builder that creates a variation of the given
// image.
func NewImageVariation(image string) *ImageVariationBuilder {
	b := &ImageVariationBuilder{}
	b.req.Image = image
	return b
}

// NewImageVariation returns an image variation builder bound to this client.
func (c *Client) NewImageVariation(image string) *ImageVariationBuilder {
	b := NewImageVariation(image)
	b.client = c
	return b
}

// WithClient binds the builder to an explicit client.
func (b *ImageVariationBuilder) WithClient(c *Client) *ImageVariationBuilder {
	b.client = c
	return b
}

// N sets how many images to generate, between 1 and 10.
func (b *ImageVariationBuilder) N(n int) *ImageVariationBuilder {
	b.setN(n)
	return b
}

// Size sets the size of the generated images.
func (b *ImageVariationBuilder) Size(size string) *ImageVariationBuilder {
	b.req.Size = size
	return b
}

// ResponseFormat sets the format of the returned images, url or b64_json.
func (b *ImageVariationBuilder) ResponseFormat(format string) *ImageVariationBuilder {
	b.req.ResponseFormat = format
	return b
}

// User sets a unique identifier representing the end-user.
func (b *ImageVariationBuilder) User(id string) *ImageVariationBuilder {
	b.req.User = id
	return b
}

// Done sends the request to the image variations endpoint. May be called at
// most once per builder; the builder counts as consumed even when the call
// fails, so a retry needs a fresh builder.
func (b *ImageVariationBuilder) Done(ctx context.Context) (*Images, error) {
	return b.done(ctx, "/images/variations")
}
