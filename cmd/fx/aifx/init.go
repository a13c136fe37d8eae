package aifx

import (
	"log"

	"go.uber.org/fx"

	"arcana/internal/infra"
	"arcana/pkg/utils"
)

var Module = fx.Provide(
	provideContentGenerator)

func provideContentGenerator(cfg *infra.Config) utils.ContentGeneratorInterface {
	switch cfg.AIProvider {
	case "openai":
		return utils.NewOpenAIContentGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		if cfg.GeminiAPIKey == "" {
			log.Println("No GEMINI_API_KEY configured, generator runs in mock mode")
		}
		return utils.NewGeminiContentGenerator(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
}
