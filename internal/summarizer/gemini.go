package summarizer

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// genaiGenerator adapts the genai client to the generator interface.
type genaiGenerator struct {
	client *genai.Client
}

func (g *genaiGenerator) generate(ctx context.Context, model string, req Request) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(req.CombinedText)}
	for _, p := range req.Parts {
		parts = append(parts, genai.NewPartFromBytes(p.Data, p.MIMEType))
	}

	contents := []*genai.Content{{Role: "user", Parts: parts}}

	result, err := g.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from provider")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text, nil
}
