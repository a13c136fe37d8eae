package services

import (
	"fmt"

	"arcana/internal/models/db_models"
)

// Prompt templates are deterministic per reading type; only the horoscope
// one interpolates request data.

func HoroscopePrompt(input db_models.HoroscopeInput) string {
	return fmt.Sprintf(
		"Act as an expert astrologer. Generate a detailed %s horoscope reading for %s, born on %s at %s in %s. Include insights on love, career, and health for the coming week.",
		input.Period, input.Name, input.DOB, input.Time, input.Location)
}

func PalmPrompt() string {
	return "Analyze this palm reading image. Focus on the heart line, head line, life line, and fate line. Provide a mystical and insightful reading about the person's character and future."
}

func CoffeePrompt() string {
	return "You are a gifted coffee cup reader (Tasseographer). Analyze these images of a coffee cup from different angles. Identify symbols, shapes, and patterns formed by the coffee grounds. Interpret their meaning in a mystical and fortune-telling manner, providing advice and predictions for the future."
}
