package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"docstore/internal/domain/services"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// maxPromptChars bounds how much page markdown is sent to the model.
const maxPromptChars = 60000

const systemPrompt = `You are a technical writer. Given the markdown rendering of a web page, produce a documentation entry.

Return ONLY a JSON object with keys:
- title: short, human-readable title for the doc
- summary: one sentence summary
- content: markdown body capturing the main article/tutorial/reference content. Keep the full page content but ignore navigation menus, headers/footers, cookie banners, popups, and ads. Preserve all code blocks from the page. Include important links as markdown links.

Rules:
- Keep content under 800 words.
- Maintain headings and code fences where appropriate.
- Do not include any extra keys outside the required object.`

// Ensure GeminiExtractor implements services.DocExtractor at compile time.
var _ services.DocExtractor = (*GeminiExtractor)(nil)

// GeminiExtractor distills fetched HTML into draft document content using
// Google Gemini. The HTML is cleaned and converted to markdown before the
// model call to keep the prompt small.
type GeminiExtractor struct {
	client *genai.Client
	model  string
}

// NewGeminiExtractor creates a new extractor. A nil client is allowed and
// makes every Extract call fail, which keeps the import route wired even
// when no API key is configured.
func NewGeminiExtractor(client *genai.Client, model string) *GeminiExtractor {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiExtractor{client: client, model: model}
}

// Extract asks the model to turn the page into {title, summary, content}.
func (e *GeminiExtractor) Extract(ctx context.Context, in services.ExtractInput) (*services.ExtractedDoc, error) {
	if e.client == nil {
		return nil, errors.New("gemini client not configured (set GEMINI_API_KEY)")
	}

	markdown, err := PageToMarkdown(in.HTML)
	if err != nil {
		return nil, fmt.Errorf("convert page: %w", err)
	}
	if len(markdown) > maxPromptChars {
		markdown = markdown[:maxPromptChars] + "\n<!-- truncated -->"
	}

	prompt := buildUserPrompt(markdown, in.URL, in.Name)
	config := buildConfig()

	result, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, errors.New("gemini returned nil result")
	}

	var extracted services.ExtractedDoc
	if err := json.Unmarshal([]byte(result.Text()), &extracted); err != nil {
		return nil, fmt.Errorf("parse model response: %w", err)
	}

	return &extracted, nil
}

// buildConfig returns the GenerateContentConfig for Gemini API calls.
func buildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// buildUserPrompt builds the user prompt containing the page and hints.
func buildUserPrompt(markdown, url, name string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Doc name hint: %s\n", name)
	fmt.Fprintf(&sb, "Source URL: %s\n\n", url)
	sb.WriteString("Page:\n")
	sb.WriteString(markdown)
	return sb.String()
}
