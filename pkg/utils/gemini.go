package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	// Returned when no API credential is configured, so the app keeps working
	// offline. A deliberate fallback, not an error path.
	MockReadingResponse = "The stars align in a mysterious way. (Mock Response: No API Key provided)"

	// Stored as the reading result when the generator call itself fails.
	GenerationFailedResponse = "Error generating reading. Please try again later."

	noTextResponse = "No text generated."
)

// ContentGeneratorInterface turns a prompt plus optional local image files
// into a single text result. Implementations never surface API-level
// failures as errors; a returned error means the attempt must be discarded.
type ContentGeneratorInterface interface {
	GenerateContent(ctx context.Context, prompt string, imagePaths []string) (string, error)
}

type GeminiContentGenerator struct {
	apiKey string
	model  string
}

func NewGeminiContentGenerator(apiKey, model string) ContentGeneratorInterface {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiContentGenerator{
		apiKey: apiKey,
		model:  model,
	}
}

func (g *GeminiContentGenerator) GenerateContent(ctx context.Context, prompt string, imagePaths []string) (string, error) {
	if g.apiKey == "" {
		return MockReadingResponse, nil
	}

	parts := []genai.Part{genai.Text(prompt)}
	for _, path := range imagePaths {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read image %s: %w", path, err)
		}
		parts = append(parts, genai.ImageData(imageFormat(data), data))
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctxWithTimeout, option.WithAPIKey(g.apiKey))
	if err != nil {
		log.Printf("Gemini client error: %v", err)
		return GenerationFailedResponse, nil
	}
	defer client.Close()

	resp, err := client.GenerativeModel(g.model).GenerateContent(ctxWithTimeout, parts...)
	if err != nil {
		log.Printf("Gemini API error: %v", err)
		return GenerationFailedResponse, nil
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return noTextResponse, nil
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// imageFormat maps sniffed content to the short format name the Gemini API
// expects in inline data parts ("jpeg", "png", ...).
func imageFormat(data []byte) string {
	mime := mimetype.Detect(data).String()
	return strings.TrimPrefix(mime, "image/")
}
