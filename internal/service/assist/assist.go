// Package assist generates optional text content (job descriptions, review
// coaching) through a chat completion model. Without an API key the service
// stays constructed but every call returns ErrAssistDisabled, so the rest of
// the console keeps working offline.
package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var ErrAssistDisabled = errors.New("assist is not configured")

type AssistService interface {
	GenerateJobDescription(ctx context.Context, title, department string) (string, error)
	GeneratePerformanceSuggestion(ctx context.Context, employeeName, feedback string, rating int) (string, error)
}

type assistServiceImpl struct {
	client  openai.Client
	model   string
	enabled bool
}

func NewAssistService(apiKey string) AssistService {
	if apiKey == "" {
		return &assistServiceImpl{enabled: false}
	}
	return &assistServiceImpl{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		model:   openai.ChatModelGPT4oMini,
		enabled: true,
	}
}

func (s *assistServiceImpl) GenerateJobDescription(ctx context.Context, title, department string) (string, error) {
	prompt := fmt.Sprintf(
		"Escreva uma descrição de vaga profissional e atraente para a posição de %q no departamento de %s. "+
			"Use parágrafos curtos e uma lista de responsabilidades e requisitos.",
		title, department,
	)
	return s.complete(ctx,
		"Você é uma pessoa recrutadora sênior escrevendo anúncios de vaga em português do Brasil.",
		prompt,
	)
}

func (s *assistServiceImpl) GeneratePerformanceSuggestion(ctx context.Context, employeeName, feedback string, rating int) (string, error) {
	prompt := fmt.Sprintf(
		"Com base nesta avaliação de desempenho de %s (nota %d de 5):\n\n%s\n\n"+
			"Sugira de forma construtiva dois ou três pontos de desenvolvimento e próximos passos.",
		employeeName, rating, feedback,
	)
	return s.complete(ctx,
		"Você é uma pessoa especialista em gestão de pessoas dando conselhos práticos em português do Brasil.",
		prompt,
	)
}

func (s *assistServiceImpl) complete(ctx context.Context, system, user string) (string, error) {
	if !s.enabled {
		return "", ErrAssistDisabled
	}

	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: s.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return "", fmt.Errorf("assist completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("assist completion: empty response")
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
