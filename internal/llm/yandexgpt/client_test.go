package yandexgpt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lomakinroman97/release-orchestrator-server/config"
	"github.com/lomakinroman97/release-orchestrator-server/internal/llm"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newClient(t *testing.T, h http.HandlerFunc, timeout time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return New(zap.NewNop().Sugar(), config.YandexGPTConfig{
		APIKey:      "key",
		FolderID:    "folder",
		URL:         srv.URL + "/foundationModels/v1/completion",
		Model:       "yandexgpt-lite",
		Timeout:     timeout,
		Temperature: 0.3,
		MaxTokens:   2000,
		RateLimit:   1000,
		RateBurst:   100,
	})
}

func TestCompleteSendsRequestAndReadsText(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/foundationModels/v1/completion", r.URL.Path)
		require.Equal(t, "Api-Key key", r.Header.Get("Authorization"))
		require.Equal(t, "folder", r.Header.Get("x-folder-id"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "gpt://folder/yandexgpt-lite", req["modelUri"])
		opts := req["completionOptions"].(map[string]any)
		require.Equal(t, "2000", opts["maxTokens"])
		msgs := req["messages"].([]any)
		require.Len(t, msgs, 1)
		require.Equal(t, "user", msgs[0].(map[string]any)["role"])
		require.Equal(t, "write notes", msgs[0].(map[string]any)["text"])

		_, _ = w.Write([]byte(`{"result":{"alternatives":[{"message":{"role":"assistant","text":"  ## Notes  \n"},"status":"ALTERNATIVE_STATUS_FINAL"}],"modelVersion":"23.10.2024"}}`))
	}, time.Second)

	text, ok := c.Complete(context.Background(), "write notes").Text()
	require.True(t, ok)
	require.Equal(t, "## Notes", text)
}

func TestCompleteReasons(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		timeout time.Duration
		sleep   time.Duration
		want    llm.Reason
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`, want: llm.ReasonStatus},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{}`, want: llm.ReasonStatus},
		{name: "timeout", status: http.StatusOK, body: `{}`, timeout: 20 * time.Millisecond, sleep: 200 * time.Millisecond, want: llm.ReasonTransport},
		{name: "not json", status: http.StatusOK, body: `oops`, want: llm.ReasonDecode},
		{name: "no result", status: http.StatusOK, body: `{}`, want: llm.ReasonDecode},
		{name: "no alternatives", status: http.StatusOK, body: `{"result":{"alternatives":[]}}`, want: llm.ReasonEmpty},
		{name: "no message", status: http.StatusOK, body: `{"result":{"alternatives":[{}]}}`, want: llm.ReasonDecode},
		{name: "no text", status: http.StatusOK, body: `{"result":{"alternatives":[{"message":{"role":"assistant"}}]}}`, want: llm.ReasonDecode},
		{name: "blank text", status: http.StatusOK, body: `{"result":{"alternatives":[{"message":{"text":"  "}}]}}`, want: llm.ReasonEmpty},
		{name: "wrong shape", status: http.StatusOK, body: `{"result":"nope"}`, want: llm.ReasonDecode},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			timeout := tt.timeout
			if timeout == 0 {
				timeout = time.Second
			}
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(tt.sleep)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, timeout)

			got := c.Complete(context.Background(), "prompt")
			_, ok := got.Text()
			require.False(t, ok)
			require.Equal(t, tt.want, got.Reason())
		})
	}
}

func TestCompleteUnreachable(t *testing.T) {
	c := New(zap.NewNop().Sugar(), config.YandexGPTConfig{
		URL:     "http://127.0.0.1:1/completion",
		Timeout: time.Second,
	})

	got := c.Complete(context.Background(), "prompt")
	require.Equal(t, llm.ReasonTransport, got.Reason())
}
