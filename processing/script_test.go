package processing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vipinsoniofficial/AI-ad-Generator/models"
	"github.com/vipinsoniofficial/AI-ad-Generator/pipeline"
)

const testScript = "Meet the Aurora earbuds.\nSilence the commute with active noise cancelling.\nThirty hours of battery, zero excuses.\nOrder yours today."

func completionStub(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		if status != http.StatusOK {
			http.Error(w, `{"error":{"message":"boom"}}`, status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"id": "chatcmpl-test",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": %s}
			}]
		}`, mustJSON(t, content))
	}))
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func testProduct() models.ProductInfo {
	return models.ProductInfo{
		Title:       "Aurora Wireless Earbuds",
		Description: "Active noise cancellation and 30-hour battery life.",
		ImageURL:    "https://example.com/aurora.jpg",
	}
}

func TestScriptGenerator_Generate(t *testing.T) {
	payload := mustJSON(t, ScriptResponse{Script: testScript})
	srv := completionStub(t, payload, http.StatusOK)
	defer srv.Close()

	gen := NewScriptGenerator("sk-test", "gpt-4o-mini", zap.NewNop(), WithBaseURL(srv.URL))
	script, err := gen.Generate(context.Background(), testProduct())
	require.NoError(t, err)

	// The script text must reach downstream consumers unmodified.
	assert.Equal(t, testScript, script.Text)
	assert.Len(t, script.Lines(), 4)
}

func TestScriptGenerator_MissingKey(t *testing.T) {
	gen := NewScriptGenerator("", "gpt-4o-mini", zap.NewNop())
	_, err := gen.Generate(context.Background(), testProduct())
	require.Error(t, err)

	var genErr *pipeline.GenerationError
	assert.True(t, errors.As(err, &genErr))
}

func TestScriptGenerator_APIError(t *testing.T) {
	srv := completionStub(t, "", http.StatusBadRequest)
	defer srv.Close()

	gen := NewScriptGenerator("sk-test", "gpt-4o-mini", zap.NewNop(), WithBaseURL(srv.URL))
	_, err := gen.Generate(context.Background(), testProduct())
	require.Error(t, err)

	var genErr *pipeline.GenerationError
	assert.True(t, errors.As(err, &genErr))
}

func TestScriptGenerator_EmptyScript(t *testing.T) {
	payload := mustJSON(t, ScriptResponse{Script: "   "})
	srv := completionStub(t, payload, http.StatusOK)
	defer srv.Close()

	gen := NewScriptGenerator("sk-test", "gpt-4o-mini", zap.NewNop(), WithBaseURL(srv.URL))
	_, err := gen.Generate(context.Background(), testProduct())
	require.Error(t, err)

	var genErr *pipeline.GenerationError
	assert.True(t, errors.As(err, &genErr))
	assert.Contains(t, err.Error(), "empty script")
}
