package oai

import "context"

// CompletionModel is an enumerated identifier for a model served by the
// completions endpoint.
//
// https://platform.openai.com/docs/models
type CompletionModel string

const (
	// TextDavinci003 is the most capable GPT-3 model. Can do any task the
	// other models can do, often with higher quality, longer output and
	// better instruction-following.
	TextDavinci003 CompletionModel = "text-davinci-003"

	// TextDavinci002 is the second generation model. Can do any task
	// earlier models can do, often with less context.
	TextDavinci002 CompletionModel = "text-davinci-002"

	// TextDavinci001 is an older version of the most advanced model.
	TextDavinci001 CompletionModel = "text-davinci-001"

	// TextCurie001 is very capable but faster and lower cost than the
	// davinci models. Good at language translation, complex classification,
	// text sentiment, and summarization.
	TextCurie001 CompletionModel = "text-curie-001"

	// TextBabbage001 is capable of straightforward tasks, very fast, and
	// lower cost.
	TextBabbage001 CompletionModel = "text-babbage-001"

	// TextAda001 is capable of simple tasks, usually the fastest model in
	// the GPT-3 series, and lowest cost.
	TextAda001 CompletionModel = "text-ada-001"
)

// CompletionModelID wraps an arbitrary identifier as a CompletionModel, for
// models outside the enumerated set such as fine-tuned variants.
func CompletionModelID(id string) CompletionModel {
	return CompletionModel(id)
}

// EditModel is an enumerated identifier for a model served by the edits
// endpoint.
type EditModel string

const (
	// TextDavinciEdit001 modifies supplied text according to an
	// instruction.
	TextDavinciEdit001 EditModel = "text-davinci-edit-001"

	// CodeDavinciEdit001 is the edits model specialized for code.
	CodeDavinciEdit001 EditModel = "code-davinci-edit-001"
)

// EditModelID wraps an arbitrary identifier as an EditModel.
func EditModelID(id string) EditModel {
	return EditModel(id)
}

// ModelPermissions describes what a model allows, as reported by the models
// endpoint.
type ModelPermissions struct {
	ID                 string `json:"id"`
	Object             string `json:"object"`
	Created            int64  `json:"created"`
	AllowCreateEngine  bool   `json:"allow_create_engine"`
	AllowSampling      bool   `json:"allow_sampling"`
	AllowLogprobs      bool   `json:"allow_logprobs"`
	AllowSearchIndices bool   `json:"allow_search_indices"`
	AllowView          bool   `json:"allow_view"`
	AllowFineTuning    bool   `json:"allow_fine_tuning"`
	Organization       string `json:"organization"`
	Group              string `json:"group"`
	IsBlocking         bool   `json:"is_blocking"`
}

// Model describes a model available through the API.
//
// https://platform.openai.com/docs/api-reference/models
type Model struct {
	ID         string             `json:"id"`
	Object     string             `json:"object"`
	OwnedBy    string             `json:"owned_by"`
	Permission []ModelPermissions `json:"permission"`
}

// The models list endpoint wraps its results in a data array.
type modelList struct {
	Data []Model `json:"data"`
}

// ListModels lists the models currently available to the credential.
//
// https://platform.openai.com/docs/api-reference/models/list
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	var list modelList
	if err := c.get(ctx, "/models", &list); err != nil {
		return nil, err
	}

	return list.Data, nil
}

// GetModel returns information about a single model by its identifier.
//
// https://platform.openai.com/docs/api-reference/models/retrieve
func (c *Client) GetModel(ctx context.Context, id string) (*Model, error) {
	var m Model
	if err := c.get(ctx, "/models/"+id, &m); err != nil {
		return nil, err
	}

	return &m, nil
}

// ListModels lists available models using a client constructed from the
// environment.
func ListModels(ctx context.Context) ([]Model, error) {
	c, err := NewClientFromEnv()
	if err != nil {
		return nil, err
	}

	return c.ListModels(ctx)
}

// GetModel returns a single model by identifier using a client constructed
// from the environment.
func GetModel(ctx context.Context, id string) (*Model, error) {
	c, err := NewClientFromEnv()
	if err != nil {
		return nil, err
	}

	return c.GetModel(ctx, id)
}
