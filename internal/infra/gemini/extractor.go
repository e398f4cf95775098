package gemini

import (
	"context"
	"encoding/json"
	"strings"

	"carmommy/internal/pkg/config"
	"carmommy/internal/pkg/errs"
	"carmommy/internal/usecase/commands"

	"google.golang.org/genai"
)

const transcriptPrompt = `You are an information-extraction model. Extract the final price that the user provided from the email and provide a summary of the email content.

Return a JSON object following this TypeScript interface:

ParsedEmail {
  final_price: number | null;
  summary: string;
}

Rules:
- Output only the JSON object.
- Do not wrap the result in code blocks or add any commentary.
- Parse only from the content of the email.
- Remove currency symbols and commas from the final price (e.g., $23,500 → 23500).
- If the final price is missing, unclear, or cannot be confidently interpreted as a number, set it to null.
- The summary should be a concise 1-2 sentence overview of the email's main content.
- Include no extra fields.


Data to parse:
`

const emailPrompt = `You are an information-extraction model. Extract numerical values from the email exactly as instructed.

Return a JSON object following this TypeScript interface:

ParsedEmail {
  final_price: number | null;
  tax: number | null;
  fees: number | null;
}

Rules:
- Output only the JSON object.
- Do not wrap the result in code blocks or add any commentary.
- Parse only from the content of the email.
- Remove currency symbols and commas (e.g., $23,500 → 23500).
- If a value is missing, unclear, or cannot be confidently interpreted as a number, set it to null.
- If multiple values exist, choose the most final or explicit one.
- Include no extra fields.

Email to parse:
`

// Extractor pulls structured price data out of free-form transcript and email
// text. The model is instructed to answer with bare JSON; stray code fences
// are stripped anyway because the instruction is not a guarantee.
type Extractor struct {
	client *genai.Client
	model  string
}

func NewExtractor(ctx context.Context, cfg config.GeminiConfig) (*Extractor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create genai client")
	}

	return &Extractor{
		client: client,
		model:  cfg.Model,
	}, nil
}

func (e *Extractor) ExtractFromTranscript(ctx context.Context, transcript string) (*commands.TranscriptExtraction, error) {
	text, err := e.generate(ctx, transcriptPrompt+transcript)
	if err != nil {
		return nil, err
	}

	var parsed commands.TranscriptExtraction
	if err := json.Unmarshal([]byte(stripFences(text)), &parsed); err != nil {
		return nil, errs.Wrap(err, "model response is not valid JSON")
	}
	return &parsed, nil
}

func (e *Extractor) ParseEmail(ctx context.Context, emailContent string) (*commands.EmailExtraction, error) {
	text, err := e.generate(ctx, emailPrompt+emailContent)
	if err != nil {
		return nil, err
	}

	var parsed commands.EmailExtraction
	if err := json.Unmarshal([]byte(stripFences(text)), &parsed); err != nil {
		return nil, errs.Wrap(err, "model response is not valid JSON")
	}
	return &parsed, nil
}

func (e *Extractor) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), nil)
	if err != nil {
		return "", errs.Wrap(err, "generate content failed")
	}

	text := resp.Text()
	if text == "" {
		return "", errs.New("empty model response")
	}
	return text, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
