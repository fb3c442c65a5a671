package services

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Advisor answers the questions the rule-based intents cannot. The question
// and the aggregate context travel as-is; no prompt engineering happens here.
type Advisor interface {
	Answer(ctx context.Context, question, contextJSON string) (string, error)
}

const geminiModel = "gemini-2.5-flash"

const advisorPreamble = "Você é o assistente da pousada. Use apenas as informações no JSON.\n" +
	"Se não houver dados suficientes, diga isso claramente.\n" +
	"Se a pergunta for quantitativa, use apenas os valores de 'totais'."

// GeminiAdvisor is the Gemini-backed Advisor.
type GeminiAdvisor struct {
	client *genai.Client
	logger *zap.Logger
}

func NewGeminiAdvisor(ctx context.Context, apiKey string, logger *zap.Logger) (*GeminiAdvisor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiAdvisor{client: client, logger: logger}, nil
}

func (g *GeminiAdvisor) Answer(ctx context.Context, question, contextJSON string) (string, error) {
	prompt := advisorPreamble + "\n\nJSON de contexto:\n" + contextJSON + "\n\nPergunta: " + question

	contents := []*genai.Content{
		{Parts: []*genai.Part{{Text: prompt}}},
	}

	resp, err := g.client.Models.GenerateContent(ctx, geminiModel, contents, nil)
	if err != nil {
		g.logger.Error("gemini request failed", zap.Error(err))
		return "", err
	}
	return resp.Text(), nil
}
