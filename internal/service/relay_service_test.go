package service

import (
	"context"
	"errors"
	"testing"

	"beauty-advisor-be/internal/constant"
	"beauty-advisor-be/internal/dto"
	"beauty-advisor-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

type fakeProvider struct {
	body    []byte
	err     error
	history []llm.Message
	options llm.Options
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeProvider) ChatRaw(ctx context.Context, history []llm.Message, options ...llm.Option) ([]byte, error) {
	f.history = history
	for _, opt := range options {
		opt(&f.options)
	}
	return f.body, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return "", errors.New("not used")
}

func TestForwardPrependsPersona(t *testing.T) {
	provider := &fakeProvider{body: []byte(`{"assistant":"hi"}`)}
	svc := NewRelayService(provider, noopLogger{})

	body, err := svc.Forward(context.Background(), &dto.RelayRequest{
		Type: constant.RelayTypeChatMessage,
		Messages: []dto.RelayTurn{
			{Role: "user", Content: "hello"},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, `{"assistant":"hi"}`, string(body))

	assert.Len(t, provider.history, 2)
	assert.Equal(t, constant.ChatMessageRoleSystem, provider.history[0].Role)
	assert.Equal(t, constant.AdvisorPersonaPrompt, provider.history[0].Content)
	assert.Equal(t, "hello", provider.history[1].Content)
}

func TestForwardAppendsProductSummary(t *testing.T) {
	provider := &fakeProvider{body: []byte(`{}`)}
	svc := NewRelayService(provider, noopLogger{})

	_, err := svc.Forward(context.Background(), &dto.RelayRequest{
		Type: constant.RelayTypeGenerateRoutine,
		Products: []dto.RoutineProduct{
			{Name: "Serum", Brand: "BrandA", Category: "skincare", Description: "Hydrates."},
			{Name: "Soap", Brand: "BrandB", Category: "personal care"},
		},
	})
	assert.NoError(t, err)

	assert.Len(t, provider.history, 2)
	last := provider.history[1]
	assert.Equal(t, constant.ChatMessageRoleUser, last.Role)
	assert.Equal(t, "Selected products:\n- Serum (BrandA) — skincare: Hydrates.\n- Soap (BrandB) — personal care: ", last.Content)
}

func TestForwardUsesFixedGenerationParameters(t *testing.T) {
	provider := &fakeProvider{body: []byte(`{}`)}
	svc := NewRelayService(provider, noopLogger{})

	_, err := svc.Forward(context.Background(), &dto.RelayRequest{Type: constant.RelayTypeChatMessage})
	assert.NoError(t, err)

	assert.Equal(t, constant.UpstreamModel, provider.options.Model)
	assert.Equal(t, constant.UpstreamMaxTokens, provider.options.MaxTokens)
	assert.Equal(t, constant.UpstreamTemperature, provider.options.Temperature)
	assert.Equal(t, constant.UpstreamFrequencyPenalty, provider.options.FrequencyPenalty)
}

func TestForwardPropagatesTransportError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	svc := NewRelayService(provider, noopLogger{})

	_, err := svc.Forward(context.Background(), &dto.RelayRequest{Type: constant.RelayTypeChatMessage})
	assert.Error(t, err)
}
