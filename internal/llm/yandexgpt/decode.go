package yandexgpt

import (
	"encoding/json"
	"strings"

	"github.com/lomakinroman97/release-orchestrator-server/internal/llm"
)

type completionRequest struct {
	ModelURI          string            `json:"modelUri"`
	CompletionOptions completionOptions `json:"completionOptions"`
	Messages          []message         `json:"messages"`
}

type completionOptions struct {
	Stream      bool    `json:"stream"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"maxTokens,string"`
}

type message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type completionResponse struct {
	Result *struct {
		Alternatives []struct {
			Message *struct {
				Role string  `json:"role"`
				Text *string `json:"text"`
			} `json:"message"`
			Status string `json:"status"`
		} `json:"alternatives"`
		ModelVersion string `json:"modelVersion"`
	} `json:"result"`
}

// decode maps a response body to text from the first alternative, or to the
// reason that body is unusable.
func decode(body []byte) llm.Completion {
	var resp completionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return llm.Unusable(llm.ReasonDecode, err.Error())
	}

	switch {
	case resp.Result == nil:
		return llm.Unusable(llm.ReasonDecode, "missing result")
	case len(resp.Result.Alternatives) == 0:
		return llm.Unusable(llm.ReasonEmpty, "no alternatives")
	case resp.Result.Alternatives[0].Message == nil:
		return llm.Unusable(llm.ReasonDecode, "missing message")
	case resp.Result.Alternatives[0].Message.Text == nil:
		return llm.Unusable(llm.ReasonDecode, "missing text")
	}

	text := strings.TrimSpace(*resp.Result.Alternatives[0].Message.Text)
	if text == "" {
		return llm.Unusable(llm.ReasonEmpty, "blank text")
	}
	return llm.Text(text)
}
