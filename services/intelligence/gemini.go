package intelligence

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"vipqueens/config"
)

// GeminiClient answers open-ended questions the keyword tables can't.
// It is optional: when no API key is configured the engine falls back to
// a canned reply.
type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{model: client.GenerativeModel("models/gemini-1.5-pro")}, nil
}

// AnswerInquiry asks the model to reply as the salon's receptionist.
func (g *GeminiClient) AnswerInquiry(ctx context.Context, message string) (string, error) {
	cfg := config.AppConfig
	prompt := fmt.Sprintf(
		"You are the friendly receptionist of %s, a hair and beauty salon at %s (phone %s, hours %s). "+
			"Answer the customer's question briefly and warmly. If they want to book, tell them you can help right here in the chat.\n\nCustomer: %s",
		cfg.SalonName, cfg.SalonAddress, cfg.SalonPhone, cfg.SalonHours, message)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
