// Package oai is a small, hand-written Go client for the OpenAI HTTP API.
//
// Requests are assembled with fluent builders: a builder is created for a
// specific model, configured with chained setter calls, and consumed exactly
// once by a terminal call that performs a single authenticated HTTPS request.
//
//	completion, err := oai.NewCompletion(oai.TextDavinci003).
//		Prompt("Ice cream or cookies?").
//		MaxTokens(32).
//		Complete(ctx)
//
// The terminal call reads the OPENAI_API_KEY environment variable at the
// point of use (loading a .env file once, if one is present). To control the
// credential, endpoint, or HTTP client explicitly, bind the builder to a
// [Client]:
//
//	client := oai.NewClient(apiKey, oai.WithHTTPClient(httpClient))
//
//	completion, err := client.NewCompletion(oai.TextDavinci003).
//		Prompt("Ice cream or cookies?").
//		Complete(ctx)
//
// Failures are distinguishable with errors.As: [ConfigError] for local
// validation and credential problems, [TransportError] for network failures,
// [APIError] for error responses from the service, and [DecodeError] for
// response bodies that do not match the expected shape. The library never
// retries; callers own retry policy around rate limits and transient
// transport errors.
package oai
