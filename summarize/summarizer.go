// Package summarize provides the optional article summarization
// capability. The aggregation core never depends on a concrete engine;
// callers probe Available before offering summaries and treat any
// failure as "no summary produced".
package summarize

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

const (
	defaultModel   = "command-r-08-2024"
	requestTimeout = 60 * time.Second
	maxInputRunes  = 6000
)

// Capability is the summarization contract: an availability probe plus
// a best-effort summarize operation. A false second return means no
// summary; it is never an error condition for the caller.
type Capability interface {
	Available() bool
	Summarize(ctx context.Context, text string) (string, bool)
}

// New probes the environment and returns a Cohere-backed capability
// when COHERE_API_KEY is set, or an unavailable stub otherwise.
func New() Capability {
	apiKey := os.Getenv("COHERE_API_KEY")
	if apiKey == "" {
		return unavailable{}
	}
	// Force HTTP/1.1 to avoid HTTP/2 protocol errors against the API
	httpClient := &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &cohereSummarizer{client: client, model: defaultModel}
}

// cohereSummarizer implements Capability over the Cohere Chat API.
type cohereSummarizer struct {
	client *cohereclient.Client
	model  string
}

func (c *cohereSummarizer) Available() bool { return true }

func (c *cohereSummarizer) Summarize(ctx context.Context, text string) (string, bool) {
	if text == "" {
		return "", false
	}
	runes := []rune(text)
	if len(runes) > maxInputRunes {
		text = string(runes[:maxInputRunes])
	}
	prompt := "Summarize the following AI article in 3 bullet points with key takeaways. " +
		"Keep it factual and concise.\n\n" + text

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message: prompt,
		Model:   &c.model,
	})
	if err != nil || resp == nil || resp.Text == "" {
		return "", false
	}
	return resp.Text, true
}

// unavailable is the capability-absent stub.
type unavailable struct{}

func (unavailable) Available() bool { return false }

func (unavailable) Summarize(ctx context.Context, text string) (string, bool) {
	return "", false
}
