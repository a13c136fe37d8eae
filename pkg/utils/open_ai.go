package utils

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gabriel-vasile/mimetype"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIContentGenerator is the alternative provider behind the same
// interface, selected with AI_PROVIDER=openai.
type OpenAIContentGenerator struct {
	apiKey string
	model  string
}

func NewOpenAIContentGenerator(apiKey, model string) ContentGeneratorInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIContentGenerator{
		apiKey: apiKey,
		model:  model,
	}
}

func (g *OpenAIContentGenerator) GenerateContent(ctx context.Context, prompt string, imagePaths []string) (string, error) {
	if g.apiKey == "" {
		return MockReadingResponse, nil
	}

	content := []openai.ChatMessagePart{
		{Type: openai.ChatMessagePartTypeText, Text: prompt},
	}

	for _, path := range imagePaths {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read image %s: %w", path, err)
		}
		dataURL := fmt.Sprintf("data:%s;base64,%s",
			mimetype.Detect(data).String(),
			base64.StdEncoding.EncodeToString(data))
		content = append(content, openai.ChatMessagePart{
			Type:     openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
		})
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client := openai.NewClient(g.apiKey)
	resp, err := client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, MultiContent: content},
		},
	})
	if err != nil {
		log.Printf("OpenAI API error: %v", err)
		return GenerationFailedResponse, nil
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return noTextResponse, nil
	}

	return resp.Choices[0].Message.Content, nil
}
