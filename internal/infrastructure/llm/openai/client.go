// Package openai provides a Researcher implementation using OpenAI.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/ersonp/person-search/internal/infrastructure/config"
)

const researchSystemPrompt = `You look up real, verifiable public information about people.

Consider:
1. Professional profiles (LinkedIn, X, Facebook, Instagram, company websites, academic institutions)
2. News articles or press releases mentioning the person
3. Social media profiles that appear to belong to a real person
4. Publicly available records or achievements
5. Forums, blogs and discussion boards

Be precise. Do not explain how you searched. If you cannot find anything credible, say so clearly and do not make anything up.`

const researchUserPrompt = `Person: %q

Context from the user: %s

Format your response as:
- Name: %s
- Seems real: [real if there is consistent, credible information; might not be real if found on only a few sites; not real otherwise]
- Who is this: [short descriptive tags such as "software engineer, cyclist" or "unknown"]
- Searched: [sites or platforms where information was found, or "Not found anywhere"]`

const defaultModel = "gpt-4o-mini"

// Client implements the Researcher interface using OpenAI.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new OpenAI research client.
func NewClient(cfg config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	client := openai.NewClient(cfg.APIKey)

	model := defaultModel
	if cfg.Model != "" {
		model = cfg.Model
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// Research asks the model for a short web-presence summary of the named person.
func (c *Client) Research(ctx context.Context, name, extra string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    buildMessages(name, extra),
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("calling OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}

	summary := cleanResponse(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", errors.New("empty response from OpenAI")
	}
	return summary, nil
}

func buildMessages(name, extra string) []openai.ChatCompletionMessage {
	extra = strings.TrimSpace(extra)
	if extra == "" {
		extra = "none"
	}

	return []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: researchSystemPrompt,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: fmt.Sprintf(researchUserPrompt, name, extra, name),
		},
	}
}

// cleanResponse removes markdown code fences if present.
func cleanResponse(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```markdown")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}

	return strings.TrimSpace(content)
}
