package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasparl/openai-translation/pkg/providers"
	"github.com/gasparl/openai-translation/pkg/translation"
)

// chatRequest 捕获发往mock服务器的请求体
type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float32 `json:"temperature"`
}

func newMockServer(t *testing.T, status int, body string, captured *chatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		if captured != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func newTestProvider(serverURL string) *Provider {
	cfg := DefaultConfig()
	cfg.BaseConfig = providers.BaseConfig{
		APIKey:      "sk-test-key-0123456789",
		APIEndpoint: serverURL + "/v1",
		Timeout:     10 * time.Second,
	}
	return New(cfg, nil)
}

func TestProviderComplete(t *testing.T) {
	t.Run("Sends System And User Messages", func(t *testing.T) {
		respBody := `{"choices":[{"message":{"role":"assistant","content":"  szia vilag  "}}]}`
		var captured chatRequest
		server := newMockServer(t, http.StatusOK, respBody, &captured)
		defer server.Close()

		p := newTestProvider(server.URL)
		result, err := p.Complete(context.Background(), "system prompt", "user prompt", 1024, 0.3)
		require.NoError(t, err)

		// 响应原样返回，首尾空白由调用方处理
		assert.Equal(t, "  szia vilag  ", result)

		assert.Equal(t, "gpt-4", captured.Model)
		require.Len(t, captured.Messages, 2)
		assert.Equal(t, "system", captured.Messages[0].Role)
		assert.Equal(t, "system prompt", captured.Messages[0].Content)
		assert.Equal(t, "user", captured.Messages[1].Role)
		assert.Equal(t, "user prompt", captured.Messages[1].Content)
		assert.Equal(t, 1024, captured.MaxTokens)
		assert.InDelta(t, 0.3, captured.Temperature, 0.001)
	})

	t.Run("API Errors Are Retryable", func(t *testing.T) {
		respBody := `{"error":{"message":"rate limit exceeded","type":"requests","code":"rate_limit_exceeded"}}`
		server := newMockServer(t, http.StatusTooManyRequests, respBody, nil)
		defer server.Close()

		p := newTestProvider(server.URL)
		_, err := p.Complete(context.Background(), "s", "u", 64, 0.3)
		require.Error(t, err)
		assert.True(t, translation.IsRetryable(err))
	})

	t.Run("Server Errors Are Retryable", func(t *testing.T) {
		server := newMockServer(t, http.StatusInternalServerError, `{"error":{"message":"boom"}}`, nil)
		defer server.Close()

		p := newTestProvider(server.URL)
		_, err := p.Complete(context.Background(), "s", "u", 64, 0.3)
		require.Error(t, err)
		assert.True(t, translation.IsRetryable(err))
	})

	t.Run("Empty Choices Is Retryable", func(t *testing.T) {
		server := newMockServer(t, http.StatusOK, `{"choices":[]}`, nil)
		defer server.Close()

		p := newTestProvider(server.URL)
		_, err := p.Complete(context.Background(), "s", "u", 64, 0.3)
		require.Error(t, err)
		assert.True(t, translation.IsRetryable(err))
	})
}

func TestClassifyError(t *testing.T) {
	t.Run("Client Timeout Is Retryable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(500 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"too late"}}]}`))
		}))
		defer server.Close()

		cfg := DefaultConfig()
		cfg.BaseConfig = providers.BaseConfig{
			APIKey:      "sk-test-key-0123456789",
			APIEndpoint: server.URL + "/v1",
			Timeout:     100 * time.Millisecond,
		}
		p := New(cfg, nil)

		_, err := p.Complete(context.Background(), "s", "u", 64, 0.3)
		require.Error(t, err)
		assert.True(t, translation.IsRetryable(err))
	})

	t.Run("Connection Failure Is Retryable", func(t *testing.T) {
		// 立刻关闭服务器，让连接被拒绝
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		serverURL := server.URL
		server.Close()

		cfg := DefaultConfig()
		cfg.BaseConfig = providers.BaseConfig{
			APIKey:      "sk-test-key-0123456789",
			APIEndpoint: serverURL + "/v1",
			Timeout:     time.Second,
		}
		p := New(cfg, nil)

		_, err := p.Complete(context.Background(), "s", "u", 64, 0.3)
		require.Error(t, err)
		assert.True(t, translation.IsRetryable(err))
	})

	t.Run("Url Errors Are Retryable", func(t *testing.T) {
		wrapped := &url.Error{Op: "Post", URL: "https://api.openai.com/v1/chat/completions",
			Err: errors.New("connection reset by peer")}
		assert.True(t, translation.IsRetryable(classifyError(wrapped)))
	})

	t.Run("Non Transport Errors Stay Fatal", func(t *testing.T) {
		plain := errors.New("invalid request construction")
		assert.False(t, translation.IsRetryable(classifyError(plain)))
	})
}

func TestMaskAuthToken(t *testing.T) {
	assert.Equal(t, "***", maskAuthToken("short"))
	assert.Equal(t, "sk-a...wxyz", maskAuthToken("sk-abcdefghijklmnopqrstuvwxyz"))
}
