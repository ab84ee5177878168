package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"
)

const extractInstruction = `You are a financial data extractor. ` +
	`Respond with a JSON array: [{"category": "food", "amount": -10, "label": "pizza"}]. ` +
	`Expenses are negative, income is positive.`

const adviseInstruction = `You are an expert financial advisor. ` +
	`Analyze the user's history and balance with regard to the specific topic they ask about. ` +
	`Give one short, direct and actionable piece of advice.`

// historyLimit caps how much ledger history is sent with an advice request.
const historyLimit = 10

// Gemini is the Client backed by the Gemini API.
type Gemini struct {
	client  *genai.Client
	extract *genai.GenerativeModel
	advise  *genai.GenerativeModel
}

// NewGemini creates a Gemini gateway. Both operations use the same model,
// configured once per operation since the system instruction differs.
func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	extract := client.GenerativeModel(modelName)
	extract.SetTemperature(0.3) // Lower for more consistent JSON output
	extract.ResponseMIMEType = "application/json"
	extract.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(extractInstruction)},
	}

	advise := client.GenerativeModel(modelName)
	advise.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(adviseInstruction)},
	}

	return &Gemini{
		client:  client,
		extract: extract,
		advise:  advise,
	}, nil
}

func (g *Gemini) Extract(ctx context.Context, text string) ExtractResult {
	raw, err := generate(ctx, g.extract, text)
	if err != nil {
		log.Error().Err(err).Msg("extraction call failed")
		return ExtractResult{Failed: true}
	}

	entries := parseEntries(raw)
	if entries == nil {
		log.Error().Str("response", raw).Msg("extraction response not parseable")
		return ExtractResult{Failed: true}
	}

	return ExtractResult{Entries: entries}
}

func (g *Gemini) Advise(ctx context.Context, history []HistoryEntry, balance decimal.Decimal, topic string) AdviceResult {
	// Callers pass the most recent entries first
	if len(history) > historyLimit {
		history = history[:historyLimit]
	}

	historyJSON, err := json.Marshal(history)
	if err != nil {
		log.Error().Err(err).Msg("could not marshal advice history")
		return AdviceResult{Text: FallbackAdvice, Fallback: true}
	}

	prompt := fmt.Sprintf("TOPIC: %s.\nCURRENT BALANCE: %s.\nHISTORY: %s", topic, balance, historyJSON)

	text, err := generate(ctx, g.advise, prompt)
	if err != nil || text == "" {
		log.Error().Err(err).Msg("advice call failed")
		return AdviceResult{Text: FallbackAdvice, Fallback: true}
	}

	return AdviceResult{Text: text}
}

// Close closes the underlying API client.
func (g *Gemini) Close() error {
	return g.client.Close()
}

// generate runs one prompt against a model and concatenates the text parts
// of the first candidate.
func generate(ctx context.Context, model *genai.GenerativeModel, prompt string) (string, error) {
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model")
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text += string(t)
		}
	}

	return text, nil
}
