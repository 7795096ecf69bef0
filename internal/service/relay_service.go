package service

import (
	"context"
	"fmt"
	"strings"

	"beauty-advisor-be/internal/constant"
	"beauty-advisor-be/internal/dto"
	"beauty-advisor-be/internal/pkg/logger"
	"beauty-advisor-be/pkg/llm"
)

// IRelayService is the proxy core: one request in, one upstream exchange, the
// upstream body out verbatim. No retries, no state across invocations.
type IRelayService interface {
	Forward(ctx context.Context, request *dto.RelayRequest) ([]byte, error)
}

type relayService struct {
	provider llm.LLMProvider
	logger   logger.ILogger
}

func NewRelayService(provider llm.LLMProvider, log logger.ILogger) IRelayService {
	return &relayService{
		provider: provider,
		logger:   log,
	}
}

func (rs *relayService) Forward(ctx context.Context, request *dto.RelayRequest) ([]byte, error) {
	messages := rs.buildUpstreamMessages(request)

	rs.logger.Info("Relay", "Forwarding to upstream", map[string]interface{}{
		"type":     request.Type,
		"turns":    len(request.Messages),
		"products": len(request.Products),
	})

	body, err := rs.provider.ChatRaw(ctx, messages,
		llm.WithModel(constant.UpstreamModel),
		llm.WithMaxTokens(constant.UpstreamMaxTokens),
		llm.WithTemperature(constant.UpstreamTemperature),
		llm.WithFrequencyPenalty(constant.UpstreamFrequencyPenalty),
	)
	if err != nil {
		rs.logger.Error("Relay", "Upstream exchange failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	return body, nil
}

// buildUpstreamMessages puts the persona instruction first, then the client's
// turns, then a synthetic turn summarizing any structured product records so
// the model sees the selection whichever field it reads.
func (rs *relayService) buildUpstreamMessages(request *dto.RelayRequest) []llm.Message {
	messages := make([]llm.Message, 0, len(request.Messages)+2)
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: constant.AdvisorPersonaPrompt,
	})

	for _, turn := range request.Messages {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}

	if len(request.Products) > 0 {
		messages = append(messages, llm.Message{
			Role:    constant.ChatMessageRoleUser,
			Content: productSummary(request.Products),
		})
	}
	return messages
}

func productSummary(products []dto.RoutineProduct) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("- %s (%s) — %s: %s", p.Name, p.Brand, p.Category, p.Description))
	}
	return "Selected products:\n" + strings.Join(lines, "\n")
}
