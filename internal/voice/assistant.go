package voice

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/glowdesk/salon-api/internal/config"
	"github.com/glowdesk/salon-api/internal/models"
)

// Assistant turns a raw call transcript into a structured booking intent via
// the language-model collaborator. Failures never propagate: the caller
// always gets a usable Result so the voice interaction stays responsive.
type Assistant struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewAssistant(cfg *config.Config) *Assistant {
	return &Assistant{
		client:  openai.NewClient(cfg.OpenAIKey),
		model:   cfg.OpenAIModel,
		timeout: cfg.LLMTimeout,
	}
}

func (a *Assistant) Process(
	ctx context.Context,
	salon *models.Salon,
	services []models.Service,
	transcript string,
) Result {

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: BuildPrompt(salon, services),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: transcript,
			},
		},
	})
	if err != nil {
		log.Println("voice: completion failed:", err)
		return Fallback()
	}

	if len(resp.Choices) == 0 {
		return Fallback()
	}

	result, err := ParseResult(resp.Choices[0].Message.Content)
	if err != nil {
		log.Println("voice: unparsable reply:", err)
		return Fallback()
	}

	return result
}

// BuildPrompt shapes the salon context the model needs: what the salon
// offers, when it is reachable, and the exact JSON contract of the reply.
func BuildPrompt(salon *models.Salon, services []models.Service) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are the phone assistant for %s, a beauty salon.\n", salon.Name)
	b.WriteString("Available services:\n")
	for _, svc := range services {
		fmt.Fprintf(&b, "- %s (%d min, $%.2f)\n", svc.Name, svc.DurationMin, svc.Price)
	}

	b.WriteString("\nClassify the caller's request and answer ONLY with a JSON object:\n")
	b.WriteString(`{"intent":"book|reschedule|cancel|inquiry|unknown",`)
	b.WriteString(`"entities":{"service":"","date":"","time":"","name":"","phone":""},`)
	b.WriteString(`"response":"<short spoken reply>","confidence":0.0}`)
	b.WriteString("\nOmit entity keys you did not hear. Keep the reply under two sentences.")

	return b.String()
}
