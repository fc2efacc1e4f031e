// Package processing turns scraped product metadata into a spoken-ad
// script with a single OpenAI chat completion.
package processing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"

	"github.com/vipinsoniofficial/AI-ad-Generator/models"
	"github.com/vipinsoniofficial/AI-ad-Generator/pipeline"
)

// ScriptResponse is the structured output of the completion call.
type ScriptResponse struct {
	Script string `json:"script" jsonschema_description:"The full spoken ad script, one sentence per line, at most 4 lines"`
}

// GenerateSchema generates a JSON schema for structured outputs.
func GenerateSchema[T any]() interface{} {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

// scriptResponseSchema is the cached schema
var scriptResponseSchema = GenerateSchema[ScriptResponse]()

// ScriptGenerator calls the OpenAI chat completion API to write a short
// ad script for one product. The API key is explicit configuration, not
// an ambient lookup at call time.
type ScriptGenerator struct {
	client openai.Client
	apiKey string
	model  openai.ChatModel
	logger *zap.Logger
}

// Option customizes the ScriptGenerator.
type Option func(*options)

type options struct {
	baseURL string
}

// WithBaseURL points the generator at a different completion endpoint.
// Tests use it to talk to a stub server.
func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = url }
}

// NewScriptGenerator creates a ScriptGenerator.
func NewScriptGenerator(apiKey, model string, logger *zap.Logger, opts ...Option) *ScriptGenerator {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	clientOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if o.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(o.baseURL))
	}

	return &ScriptGenerator{
		client: openai.NewClient(clientOpts...),
		apiKey: apiKey,
		model:  openai.ChatModel(model),
		logger: logger,
	}
}

// Generate asks the model for a ~30 second spoken ad for the product.
func (g *ScriptGenerator) Generate(ctx context.Context, product models.ProductInfo) (models.AdScript, error) {
	if g.apiKey == "" {
		return models.AdScript{}, &pipeline.GenerationError{Err: fmt.Errorf("OpenAI API key is not configured")}
	}

	g.logger.Info("generating ad script", zap.String("title", product.Title))

	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "ad_script",
		Description: openai.String("A short spoken video ad script"),
		Schema:      scriptResponseSchema,
		Strict:      openai.Bool(true),
	}

	chatCompletion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(product)),
		},
		Model:       g.model,
		Temperature: openai.Float(0.8),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: schemaParam,
			},
		},
	})
	if err != nil {
		return models.AdScript{}, &pipeline.GenerationError{Err: fmt.Errorf("OpenAI API error: %w", err)}
	}

	if len(chatCompletion.Choices) == 0 {
		return models.AdScript{}, &pipeline.GenerationError{Err: fmt.Errorf("no response from OpenAI")}
	}

	rawResponse := chatCompletion.Choices[0].Message.Content
	if rawResponse == "" {
		return models.AdScript{}, &pipeline.GenerationError{
			Err: fmt.Errorf("OpenAI returned empty response, finish reason: %s", chatCompletion.Choices[0].FinishReason),
		}
	}

	var scriptResp ScriptResponse
	if err := json.Unmarshal([]byte(rawResponse), &scriptResp); err != nil {
		return models.AdScript{}, &pipeline.GenerationError{
			Err: fmt.Errorf("failed to parse OpenAI JSON response: %w", err),
		}
	}

	script := strings.TrimSpace(scriptResp.Script)
	if script == "" {
		return models.AdScript{}, &pipeline.GenerationError{Err: fmt.Errorf("OpenAI returned empty script")}
	}

	g.logger.Info("generated ad script", zap.String("script", strings.ReplaceAll(script, "\n", " | ")))
	return models.AdScript{Text: script}, nil
}

func buildPrompt(product models.ProductInfo) string {
	return fmt.Sprintf(`You are a creative marketing assistant. Write a short video ad script for the following product, meant to be read aloud in about 30 seconds. Focus on the top 3 benefits and end with a call to action.

Product name: %s
Product description: %s

Write one sentence per line, at most 4 lines. Do not include stage directions or speaker labels, only the spoken text.`,
		product.Title, product.Description)
}
