// Package ai generates text for the pull request assistant endpoints.
package ai

import (
	"context"
	"fmt"
)

// Generator turns a prompt into generated text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const placeholderKey = "your_gemini_key_here"

// MockResponse is returned instead of calling the model when no API key is configured.
func MockResponse(prompt string) string {
	return fmt.Sprintf("[MOCK AI RESPONSE]\n\n"+
		"This is a simulated AI response. To get real AI-powered features:\n"+
		"1. Get API key from https://aistudio.google.com/app/apikey\n"+
		"2. Set GEMINI_API_KEY in .env\n"+
		"3. Restart the server\n\n"+
		"Prompt received: %s...", truncate(prompt, 100))
}

// ErrorResponse renders an upstream failure as response text.
func ErrorResponse(err error) string {
	return fmt.Sprintf("[AI ERROR]\n\nFailed to generate AI response: %s\n\n"+
		"Please check your GEMINI_API_KEY configuration.", err)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
