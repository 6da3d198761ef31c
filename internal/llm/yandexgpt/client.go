// Package yandexgpt is a completion client for the YandexGPT foundation models API.
package yandexgpt

import (
	"context"
	"errors"

	"github.com/lomakinroman97/release-orchestrator-server/config"
	"github.com/lomakinroman97/release-orchestrator-server/internal/llm"
	"github.com/lomakinroman97/release-orchestrator-server/internal/transport/http/client"

	"go.uber.org/zap"
)

var _ llm.Completer = (*Client)(nil)

// Client sends single-turn completion requests.
type Client struct {
	log         *zap.SugaredLogger
	api         *client.Client
	modelURI    string
	temperature float64
	maxTokens   int
}

// New creates a client from the YandexGPT configuration.
func New(log *zap.SugaredLogger, cfg config.YandexGPTConfig) *Client {
	api := client.New(client.Config{
		BaseURL: cfg.URL,
		Headers: map[string]string{
			"Authorization": "Api-Key " + cfg.APIKey,
			"x-folder-id":   cfg.FolderID,
		},
		Timeout:   cfg.Timeout,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
	})

	return &Client{
		log:         log.Named("llm.yandexgpt"),
		api:         api,
		modelURI:    cfg.ModelURI(),
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// Complete sends prompt as one user message. It never returns an error:
// failures are reported through the completion's reason.
func (c *Client) Complete(ctx context.Context, prompt string) llm.Completion {
	req := completionRequest{
		ModelURI: c.modelURI,
		CompletionOptions: completionOptions{
			Stream:      false,
			Temperature: c.temperature,
			MaxTokens:   c.maxTokens,
		},
		Messages: []message{{Role: "user", Text: prompt}},
	}

	c.log.Debugw("sending completion request", "model", c.modelURI, "prompt_bytes", len(prompt))
	resp, err := c.api.Post(ctx, "", req)
	if err != nil {
		var httpErr *client.HTTPError
		if errors.As(err, &httpErr) {
			return llm.Unusable(llm.ReasonStatus, httpErr.Error())
		}
		return llm.Unusable(llm.ReasonTransport, err.Error())
	}

	return decode(resp.Body)
}
