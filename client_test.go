package oai_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	oai "github.com/motorlatitude/oai-go"
	"github.com/shoenig/test/must"
	"golang.org/x/time/rate"
)

func TestNewClientFromEnv(t *testing.T) {
	t.Setenv(oai.APIKeyEnvVar, "env-key")

	client, err := oai.NewClientFromEnv()
	must.NoError(t, err)
	must.Eq(t, "env-key", client.APIKey)

	// The variable is read at the point of use, not cached, so a changed
	// credential is picked up without a process restart.
	t.Setenv(oai.APIKeyEnvVar, "rotated-key")

	client, err = oai.NewClientFromEnv()
	must.NoError(t, err)
	must.Eq(t, "rotated-key", client.APIKey)
}

func TestNewClientFromEnv_MissingKey(t *testing.T) {
	t.Setenv(oai.APIKeyEnvVar, "")

	_, err := oai.NewClientFromEnv()
	must.Error(t, err)

	var cfgErr *oai.ConfigError
	must.True(t, errors.As(err, &cfgErr))
}

func TestCompletionBuilder_MissingCredential(t *testing.T) {
	t.Setenv(oai.APIKeyEnvVar, "")

	// Unbound builder: client construction from the environment fails
	// before a request could even be built.
	_, err := oai.NewCompletion(oai.TextDavinci003).
		Prompt("hello").
		Complete(t.Context())
	must.Error(t, err)

	var cfgErr *oai.ConfigError
	must.True(t, errors.As(err, &cfgErr))

	// Bound client with an empty key: still no network call.
	var requests atomic.Int64

	client := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	})
	client.APIKey = ""

	_, err = client.NewCompletion(oai.TextDavinci003).
		Prompt("hello").
		Complete(t.Context())
	must.Error(t, err)
	must.True(t, errors.As(err, &cfgErr))
	must.Eq(t, int64(0), requests.Load())
}

func TestClient_OrganizationHeader(t *testing.T) {
	var organization string

	client := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		organization = r.Header.Get("OpenAI-Organization")
		fmt.Fprint(w, completionPayload("ok"))
	})
	client.Organization = "org-test"

	_, err := client.NewCompletion(oai.TextDavinci003).
		Prompt("hello").
		Complete(t.Context())
	must.NoError(t, err)
	must.Eq(t, "org-test", organization)
}

func TestClient_RateLimiterWait(t *testing.T) {
	var requests atomic.Int64

	client := newMockClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		fmt.Fprint(w, completionPayload("ok"))
	})

	// One request per hour: the first call drains the bucket, the second
	// cannot be served within its deadline.
	limits := &oai.RateLimiters{}
	limits.Text.Requests = rate.NewLimiter(rate.Every(time.Hour), 1)
	limits.Text.Tokens = rate.NewLimiter(rate.Every(time.Hour), 1000)
	limits.Images.Requests = rate.NewLimiter(rate.Every(time.Hour), 1)
	client.Limits = limits

	_, err := client.NewCompletion(oai.TextDavinci003).
		Prompt("hello").
		Complete(t.Context())
	must.NoError(t, err)

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	_, err = client.NewCompletion(oai.TextDavinci003).
		Prompt("hello").
		Complete(ctx)
	must.Error(t, err)

	var transportErr *oai.TransportError
	must.True(t, errors.As(err, &transportErr))
	must.Eq(t, int64(1), requests.Load())
}

func ExampleNewCompletion() {
	ctx := context.Background()

	completion, err := oai.NewCompletion(oai.TextDavinci003).
		Prompt("Ice cream or cookies?").
		MaxTokens(32).
		Complete(ctx)
	if err != nil {
		panic(err)
	}

	fmt.Println(completion.Choices[0].Text)
}
