package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arcana/internal/models/db_models"
)

func TestHoroscopePrompt(t *testing.T) {
	input := db_models.HoroscopeInput{
		Name:     "Ada",
		DOB:      "1990-01-01",
		Time:     "14:30",
		Location: "London",
		Period:   "weekly",
	}

	prompt := HoroscopePrompt(input)

	assert.Contains(t, prompt, "expert astrologer")
	assert.Contains(t, prompt, "weekly horoscope reading for Ada")
	assert.Contains(t, prompt, "born on 1990-01-01 at 14:30 in London")
	assert.Contains(t, prompt, "love, career, and health")

	// Same input, same prompt.
	assert.Equal(t, prompt, HoroscopePrompt(input))
}

func TestImagePromptsAreFixed(t *testing.T) {
	assert.Contains(t, PalmPrompt(), "heart line, head line, life line, and fate line")
	assert.Contains(t, CoffeePrompt(), "Tasseographer")
	assert.Contains(t, CoffeePrompt(), "different angles")
}
