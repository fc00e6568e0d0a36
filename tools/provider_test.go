package tools

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProvider(t *testing.T) {
	cases := []struct {
		model string
		want  Provider
	}{
		{"claude-sonnet-4-20250514", PROVIDER_ANTHROPIC},
		{"claude-3-5-haiku-20241022", PROVIDER_ANTHROPIC},
		{"dall-e-3", PROVIDER_DALLE},
		{"dall-e-2", PROVIDER_DALLE},
		{"gpt-4o", PROVIDER_OPENAI},
		{"gpt-4.1-mini", PROVIDER_OPENAI},
		{"mistral-large", PROVIDER_OPENAI}, // fallback
		{"", PROVIDER_OPENAI},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ResolveProvider(tc.model), "model %q", tc.model)
	}
}

func TestRunPrompt_AnthropicBackend(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"resposta"}]}`))
	}))
	defer server.Close()

	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("ANTHROPIC_BASE_URL", server.URL)

	result, err := RunPrompt(
		context.Background(),
		"Write about {topic}.",
		map[string]interface{}{"topic": "go"},
		"claude-sonnet-4-20250514",
	)
	require.NoError(t, err)
	assert.Equal(t, "resposta", result.Output)
	assert.Equal(t, "text", result.OutputType)

	assert.Equal(t, "/v1/messages", gotPath)
	assert.Equal(t, "claude-sonnet-4-20250514", gotBody["model"])
	assert.Equal(t, float64(2048), gotBody["max_tokens"])

	// o backend recebe o prompt já substituído
	messages := gotBody["messages"].([]interface{})
	first := messages[0].(map[string]interface{})
	assert.Equal(t, "Write about go.", first["content"])
}

func TestRunPrompt_AnthropicFailureSurfacesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"type":"api_error","message":"boom"}}`))
	}))
	defer server.Close()

	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("ANTHROPIC_BASE_URL", server.URL)

	_, err := RunPrompt(context.Background(), "x", map[string]interface{}{}, "claude-x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic error 500")
}

func TestRunPrompt_OpenAIBackend(t *testing.T) {
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"hi there"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", server.URL)

	result, err := RunPrompt(
		context.Background(),
		"Say {word}.",
		map[string]interface{}{"word": "hi"},
		"gpt-4o",
	)
	require.NoError(t, err)
	assert.Equal(t, "hi there", result.Output)
	assert.Equal(t, "text", result.OutputType)

	assert.Equal(t, "gpt-4o", gotBody["model"])
	assert.Equal(t, float64(2000), gotBody["max_tokens"])
	assert.Equal(t, 0.7, gotBody["temperature"])
}

func TestRunPrompt_DalleBackend(t *testing.T) {
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"created":1,"data":[{"url":"https://img.example/abc.png"}]}`))
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", server.URL)

	result, err := RunPrompt(
		context.Background(),
		"A picture of {subject}",
		map[string]interface{}{"subject": "a lighthouse"},
		"dall-e-3",
	)
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/abc.png", result.Output)
	assert.Equal(t, "image", result.OutputType)

	assert.Equal(t, "dall-e-3", gotBody["model"])
	assert.Equal(t, "A picture of a lighthouse", gotBody["prompt"])
	assert.Equal(t, float64(1), gotBody["n"])
	assert.Equal(t, "1024x1024", gotBody["size"])
	assert.Equal(t, "standard", gotBody["quality"])
}

func TestGenerateWithAnthropic_RequiresAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	_, err := GenerateWithAnthropic(context.Background(), "x", "claude-x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}
