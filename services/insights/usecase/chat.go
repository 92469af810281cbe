package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/piresc/ecotrack/internal/pkg/logger"
	"github.com/piresc/ecotrack/internal/pkg/models"
	"github.com/piresc/ecotrack/services/insights"
)

// Fallback answers. These are returned with a normal response.
const (
	AnswerMissingAPIKey = "Missing API key. Please add GEMINI_API_KEY to your environment."
	AnswerModelError    = "Sorry, I had trouble connecting to the AI service. Please check your API key and internet connection."
	AnswerEmpty         = "Sorry, I could not generate a response."
)

const promptTemplate = `
  I am here to give you insights regarding your sustainable practices and how you can improve them.
  Please respond in plain text only, with no Markdown formatting or asterisks.
  Provide a concise, direct answer unless further elaboration is requested.

  Below is my transaction data in JSON format:
  %s

  Below is my brand data in JSON format:
  %s

  Below is my store data in JSON format:
  %s

  Based on this data, please answer the following question in plain text (no asterisks or Markdown formatting):
  %s
  `

func (uc *insightsUC) Chat(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", insights.ErrEmptyQuestion
	}

	if uc.cfg.Gemini.APIKey == "" || uc.modelGW == nil {
		logger.WarnCtx(ctx, "Missing Gemini API key")
		return AnswerMissingAPIKey, nil
	}

	fixtures, err := uc.fixtureRepo.LoadFixtures(ctx)
	if err != nil {
		return "", err
	}

	answer, err := uc.modelGW.GenerateText(ctx, BuildPrompt(fixtures, question))
	if err != nil {
		logger.ErrorCtx(ctx, "Gemini API error", logger.Err(err))
		return AnswerModelError, nil
	}
	if strings.TrimSpace(answer) == "" {
		return AnswerEmpty, nil
	}

	return answer, nil
}

// BuildPrompt embeds the datasets as two-space indented JSON ahead of the
// question
func BuildPrompt(fixtures *models.AssistantFixtures, question string) string {
	return fmt.Sprintf(promptTemplate,
		indentJSON(fixtures.Transactions),
		indentJSON(fixtures.Brands),
		indentJSON(fixtures.Stores),
		question)
}

func indentJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "[]"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
