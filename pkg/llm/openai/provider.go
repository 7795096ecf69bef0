package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"beauty-advisor-be/pkg/llm"

	openai "github.com/sashabaranov/go-openai"
)

// Provider talks to the OpenAI chat-completions API. It builds requests from
// go-openai types but performs the HTTP exchange itself so the untouched
// response body stays available for ChatRaw.
type Provider struct {
	APIKey    string
	BaseURL   string
	ModelName string
	Client    *http.Client
}

var _ llm.LLMProvider = &Provider{}

func NewProvider(apiKey, baseURL, modelName string) *Provider {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if modelName == "" {
		modelName = openai.GPT4o
	}
	return &Provider{
		APIKey:    apiKey,
		BaseURL:   baseURL,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

func (p *Provider) buildRequest(history []llm.Message, opts ...llm.Option) openai.ChatCompletionRequest {
	options := &llm.Options{
		Temperature: 0.7, // Default
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]openai.ChatCompletionMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = openai.ChatMessageRoleAssistant
		}
		messages[i] = openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		}
	}

	model := p.ModelName
	if options.Model != "" {
		model = options.Model
	}

	return openai.ChatCompletionRequest{
		Model:            model,
		Messages:         messages,
		MaxTokens:        options.MaxTokens,
		Temperature:      float32(options.Temperature),
		FrequencyPenalty: float32(options.FrequencyPenalty),
	}
}

func (p *Provider) post(ctx context.Context, reqPayload openai.ChatCompletionRequest) ([]byte, int, error) {
	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal request: %w", err)
	}

	url := p.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}
	return bodyBytes, resp.StatusCode, nil
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	body, status, err := p.post(ctx, p.buildRequest(history, opts...))
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("openai error: status %d, body: %s", status, string(body))
	}

	var completion openai.ChatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai response has no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// ChatRaw returns the upstream body untouched, whatever the status was.
func (p *Provider) ChatRaw(ctx context.Context, history []llm.Message, opts ...llm.Option) ([]byte, error) {
	body, _, err := p.post(ctx, p.buildRequest(history, opts...))
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (p *Provider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}
